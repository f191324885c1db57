// Package palette generates five-colour palettes from a random base hue or
// from a chosen colour's lightness range.
package palette

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"

	"github.com/alexisbeaulieu97/devkit/internal/color"
)

// Size is the number of colours in every palette.
const Size = 5

// Mode selects how harmonic hues are spread around the colour wheel.
type Mode string

const (
	// ModeHarmonic steps 72° per colour, splitting the wheel evenly.
	ModeHarmonic Mode = "harmonic"
	// ModePentagram steps 144° per colour, visiting the points of a five-point star.
	ModePentagram Mode = "pentagram"
)

// ParseMode validates a mode name. An empty name selects ModeHarmonic.
func ParseMode(name string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(name))) {
	case "", ModeHarmonic:
		return ModeHarmonic, nil
	case ModePentagram:
		return ModePentagram, nil
	default:
		return "", fmt.Errorf("unknown palette mode %q", name)
	}
}

func (m Mode) step() float64 {
	if m == ModePentagram {
		return 144
	}
	return 72
}

// Saturation and lightness bands for generated colours, in percent.
const (
	satMin    = 60
	satSpan   = 30
	lightMin  = 45
	lightSpan = 20

	shadeMin = 5
	shadeMax = 95
)

var shadeOffsets = [Size]float64{-30, -15, 0, 15, 30}

// Color is one swatch of a generated palette.
type Color struct {
	Hex  string `json:"hex"`
	Name string `json:"name"`
}

// Generator produces palettes. It is not safe for concurrent use because the
// underlying random source is not.
type Generator struct {
	rng *rand.Rand
}

// New returns a Generator drawing from rng. A nil rng seeds from the runtime.
func New(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Generator{rng: rng}
}

// Generate builds a palette for mode from a fresh random base hue.
func (g *Generator) Generate(mode Mode) []Color {
	base := g.rng.Float64() * 360
	step := mode.step()

	colors := make([]Color, 0, Size)
	for i := 0; i < Size; i++ {
		hue := math.Mod(math.Floor(base)+float64(i)*step, 360)
		sat := satMin + g.rng.Float64()*satSpan
		light := lightMin + g.rng.Float64()*lightSpan
		colors = append(colors, Color{
			Hex:  color.HSLToHex(hue, sat, light),
			Name: color.Name(hue),
		})
	}
	return colors
}

// Harmonic is shorthand for Generate(ModeHarmonic).
func (g *Generator) Harmonic() []Color { return g.Generate(ModeHarmonic) }

// Pentagram is shorthand for Generate(ModePentagram).
func (g *Generator) Pentagram() []Color { return g.Generate(ModePentagram) }

// Shades derives five lightness variants of hex, keeping its hue and
// saturation. Lightness is clamped to [5,95].
func Shades(hex string) ([]Color, error) {
	h, s, l, err := color.HexToHSL(hex)
	if err != nil {
		return nil, err
	}

	colors := make([]Color, 0, Size)
	for _, offset := range shadeOffsets {
		light := math.Max(shadeMin, math.Min(shadeMax, float64(l)+offset))
		colors = append(colors, Color{
			Hex:  color.HSLToHex(float64(h), float64(s), light),
			Name: color.Name(float64(h)),
		})
	}
	return colors, nil
}

// CSSVariables renders colors as custom properties on :root.
func CSSVariables(colors []Color) string {
	var b strings.Builder
	b.WriteString(":root {\n")
	for i, c := range colors {
		fmt.Fprintf(&b, "  --color-%d: %s;\n", i+1, c.Hex)
	}
	b.WriteString("}")
	return b.String()
}

// Hexes lists the hex codes of colors in order.
func Hexes(colors []Color) []string {
	out := make([]string, len(colors))
	for i, c := range colors {
		out[i] = c.Hex
	}
	return out
}
