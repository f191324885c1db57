// Package shadow composes CSS box-shadow declarations.
package shadow

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/devkit/internal/color"
	deverrors "github.com/alexisbeaulieu97/devkit/pkg/errors"
)

// Slider bounds.
const (
	OffsetMin = -100
	OffsetMax = 100
	BlurMin   = 0
	BlurMax   = 100
	SpreadMin = -50
	SpreadMax = 50

	// OpacityStep is the granularity of the opacity slider.
	OpacityStep  = 0.01
	opacityScale = 100
)

// Shadow holds the inputs of a single box-shadow layer.
type Shadow struct {
	OffsetX int     `json:"offsetX" validate:"min=-100,max=100"`
	OffsetY int     `json:"offsetY" validate:"min=-100,max=100"`
	Blur    int     `json:"blur" validate:"min=0,max=100"`
	Spread  int     `json:"spread" validate:"min=-50,max=50"`
	Color   string  `json:"color" validate:"required,hexcolor"`
	Opacity float64 `json:"opacity" validate:"min=0,max=1"`
}

// Default returns the shadow the tool starts with.
func Default() Shadow {
	return Shadow{
		OffsetX: 0,
		OffsetY: 10,
		Blur:    20,
		Spread:  0,
		Color:   "#000000",
		Opacity: 0.3,
	}
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// Validate checks every field against its slider range.
func (s Shadow) Validate() error {
	validateOnce.Do(func() { validate = validator.New() })

	if err := validate.Struct(s); err != nil {
		var ves validator.ValidationErrors
		if errors.As(err, &ves) && len(ves) > 0 {
			fe := ves[0]
			field := strings.ToLower(fe.Field())
			return deverrors.NewValidationError(field, fmt.Sprintf("%v is outside the allowed range (%s=%s)", fe.Value(), fe.Tag(), fe.Param()), err)
		}
		return deverrors.NewValidationError("shadow", err.Error(), err)
	}
	return nil
}

// Clamp pulls every numeric field into range and snaps opacity to the slider
// step. The colour is left as is.
func (s Shadow) Clamp() Shadow {
	s.OffsetX = clampInt(s.OffsetX, OffsetMin, OffsetMax)
	s.OffsetY = clampInt(s.OffsetY, OffsetMin, OffsetMax)
	s.Blur = clampInt(s.Blur, BlurMin, BlurMax)
	s.Spread = clampInt(s.Spread, SpreadMin, SpreadMax)
	s.Opacity = math.Round(math.Max(0, math.Min(1, s.Opacity))*opacityScale) / opacityScale
	return s
}

// Value renders the shadow value, e.g. "0px 10px 20px 0px rgba(0, 0, 0, 0.3)".
func (s Shadow) Value() (string, error) {
	rgba, err := color.RGBA(s.Color, s.Opacity)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%dpx %dpx %dpx %dpx %s", s.OffsetX, s.OffsetY, s.Blur, s.Spread, rgba), nil
}

// CSS renders the full declaration, e.g. "box-shadow: ...;".
func (s Shadow) CSS() (string, error) {
	value, err := s.Value()
	if err != nil {
		return "", err
	}
	return "box-shadow: " + value + ";", nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
