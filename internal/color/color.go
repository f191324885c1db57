// Package color holds the colour-space helpers shared by the palette,
// gradient and box-shadow tools.
package color

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	deverrors "github.com/alexisbeaulieu97/devkit/pkg/errors"
)

// HSLToHex converts hue (degrees), saturation and lightness (percent) to a
// lowercase "#rrggbb" string. Hue wraps into [0,360); s and l are clamped to
// [0,100].
func HSLToHex(h, s, l float64) string {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := colorful.Hsl(h, clampUnit(s/100), clampUnit(l/100))
	return c.Clamped().Hex()
}

// HexToHSL is the inverse of HSLToHex, rounding each component to the nearest
// integer. Greys (max == min channel) report hue 0 and saturation 0.
func HexToHSL(hex string) (h, s, l int, err error) {
	c, err := ParseHex(hex)
	if err != nil {
		return 0, 0, 0, err
	}

	hue, sat, light := c.Hsl()
	max := math.Max(c.R, math.Max(c.G, c.B))
	min := math.Min(c.R, math.Min(c.G, c.B))
	if max == min {
		hue, sat = 0, 0
	}

	h = int(math.Round(hue)) % 360
	return h, int(math.Round(sat * 100)), int(math.Round(light * 100)), nil
}

// ParseHex accepts "#rgb" or "#rrggbb", with or without the leading '#'.
func ParseHex(hex string) (colorful.Color, error) {
	normalized, err := NormalizeHex(hex)
	if err != nil {
		return colorful.Color{}, err
	}
	c, err := colorful.Hex(normalized)
	if err != nil {
		return colorful.Color{}, deverrors.NewValidationError("color", fmt.Sprintf("invalid hex colour %q", hex), err)
	}
	return c, nil
}

// NormalizeHex lowercases hex and expands it to the "#rrggbb" form.
func NormalizeHex(hex string) (string, error) {
	v := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(hex), "#"))
	if len(v) == 3 {
		v = string([]byte{v[0], v[0], v[1], v[1], v[2], v[2]})
	}
	if len(v) != 6 {
		return "", deverrors.NewValidationError("color", fmt.Sprintf("invalid hex colour %q", hex), nil)
	}
	if _, err := strconv.ParseUint(v, 16, 32); err != nil {
		return "", deverrors.NewValidationError("color", fmt.Sprintf("invalid hex colour %q", hex), err)
	}
	return "#" + v, nil
}

// RGBA renders hex combined with alpha as a CSS rgba() value.
func RGBA(hex string, alpha float64) (string, error) {
	c, err := ParseHex(hex)
	if err != nil {
		return "", err
	}
	r, g, b := c.RGB255()
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, FormatNumber(alpha)), nil
}

// FormatNumber prints f using the shortest representation that round-trips,
// so 0.3 stays "0.3" and 1 becomes "1".
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func clampUnit(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
