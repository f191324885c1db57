package shadow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	deverrors "github.com/alexisbeaulieu97/devkit/pkg/errors"
)

func TestDefaultCSS(t *testing.T) {
	css, err := Default().CSS()
	require.NoError(t, err)
	assert.Equal(t, "box-shadow: 0px 10px 20px 0px rgba(0, 0, 0, 0.3);", css)
}

func TestValueWithColorAndNegativeOffsets(t *testing.T) {
	s := Shadow{OffsetX: -5, OffsetY: -8, Blur: 0, Spread: -2, Color: "#667EEA", Opacity: 1}
	value, err := s.Value()
	require.NoError(t, err)
	assert.Equal(t, "-5px -8px 0px -2px rgba(102, 126, 234, 1)", value)
}

func TestValidate(t *testing.T) {
	require.NoError(t, Default().Validate())

	cases := []struct {
		name   string
		mutate func(*Shadow)
		field  string
	}{
		{"offset x too large", func(s *Shadow) { s.OffsetX = 101 }, "offsetx"},
		{"offset y too small", func(s *Shadow) { s.OffsetY = -101 }, "offsety"},
		{"negative blur", func(s *Shadow) { s.Blur = -1 }, "blur"},
		{"spread too large", func(s *Shadow) { s.Spread = 51 }, "spread"},
		{"opacity above one", func(s *Shadow) { s.Opacity = 1.5 }, "opacity"},
		{"bad colour", func(s *Shadow) { s.Color = "black" }, "color"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := Default()
			tc.mutate(&s)

			var valErr *deverrors.ValidationError
			require.ErrorAs(t, s.Validate(), &valErr)
			assert.Equal(t, tc.field, valErr.Field)
		})
	}
}

func TestClamp(t *testing.T) {
	s := Shadow{OffsetX: 500, OffsetY: -500, Blur: -3, Spread: 99, Color: "#fff", Opacity: 0.337}.Clamp()
	assert.Equal(t, 100, s.OffsetX)
	assert.Equal(t, -100, s.OffsetY)
	assert.Equal(t, 0, s.Blur)
	assert.Equal(t, 50, s.Spread)
	assert.Equal(t, 0.34, s.Opacity)
	require.NoError(t, s.Validate())
}

func TestCSSRejectsInvalidColor(t *testing.T) {
	s := Default()
	s.Color = "#12"
	_, err := s.CSS()
	require.Error(t, err)
}
