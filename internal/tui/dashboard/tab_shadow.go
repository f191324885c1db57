package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/devkit/internal/color"
	"github.com/alexisbeaulieu97/devkit/internal/shadow"
)

type shadowField int

const (
	fieldOffsetX shadowField = iota
	fieldOffsetY
	fieldBlur
	fieldSpread
	fieldOpacity
	fieldColor
	shadowFieldCount
)

var shadowLabels = [shadowFieldCount]string{
	fieldOffsetX: "Offset X",
	fieldOffsetY: "Offset Y",
	fieldBlur:    "Blur",
	fieldSpread:  "Spread",
	fieldOpacity: "Opacity",
	fieldColor:   "Color",
}

type shadowTab struct {
	value      shadow.Shadow
	cursor     shadowField
	editing    bool
	colorInput textinput.Model
	bar        progress.Model
}

func newShadowTab() shadowTab {
	ti := textinput.New()
	ti.Placeholder = "#000000"
	ti.CharLimit = 7
	ti.Prompt = "# "

	return shadowTab{
		value:      shadow.Default(),
		colorInput: ti,
		bar: progress.New(
			progress.WithSolidFill(string(primaryColor)),
			progress.WithoutPercentage(),
			progress.WithWidth(24),
		),
	}
}

func (t *shadowTab) stopEditing() {
	t.editing = false
	t.colorInput.Blur()
}

// adjust moves the selected slider by steps increments, clamped to its range.
func (t *shadowTab) adjust(steps int) {
	switch t.cursor {
	case fieldOffsetX:
		t.value.OffsetX += steps
	case fieldOffsetY:
		t.value.OffsetY += steps
	case fieldBlur:
		t.value.Blur += steps
	case fieldSpread:
		t.value.Spread += steps
	case fieldOpacity:
		t.value.Opacity += float64(steps) * shadow.OpacityStep
	}
	t.value = t.value.Clamp()
}

func (m Model) updateShadow(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	t := &m.shadow

	if t.editing {
		switch msg.String() {
		case "enter":
			hex, err := color.NormalizeHex(t.colorInput.Value())
			if err != nil {
				m.setError(err.Error())
				return m, nil
			}
			t.value.Color = hex
			t.stopEditing()
			return m, nil
		case "esc":
			t.stopEditing()
			return m, nil
		}
		var cmd tea.Cmd
		t.colorInput, cmd = t.colorInput.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "up", "k":
		t.cursor = (t.cursor + shadowFieldCount - 1) % shadowFieldCount
	case "down", "j":
		t.cursor = (t.cursor + 1) % shadowFieldCount
	case "left", "h":
		t.adjust(-1)
	case "right", "l":
		t.adjust(1)
	case "shift+left", "H":
		t.adjust(-10)
	case "shift+right", "L":
		t.adjust(10)
	case "enter", "e":
		if t.cursor == fieldColor {
			t.editing = true
			t.colorInput.SetValue(strings.TrimPrefix(t.value.Color, "#"))
			t.colorInput.CursorEnd()
			return m, t.colorInput.Focus()
		}
	case "r":
		t.value = shadow.Default()
	case "c":
		css, err := t.value.CSS()
		if err != nil {
			m.setError(err.Error())
			return m, nil
		}
		return m, m.copy("box-shadow", css)
	}
	return m, nil
}

func (m Model) renderShadowTab() string {
	t := m.shadow
	var rows []string

	for f := shadowField(0); f < shadowFieldCount; f++ {
		var value, bar string
		switch f {
		case fieldOffsetX:
			value, bar = fmt.Sprintf("%dpx", t.value.OffsetX), t.bar.ViewAs(fraction(t.value.OffsetX, shadow.OffsetMin, shadow.OffsetMax))
		case fieldOffsetY:
			value, bar = fmt.Sprintf("%dpx", t.value.OffsetY), t.bar.ViewAs(fraction(t.value.OffsetY, shadow.OffsetMin, shadow.OffsetMax))
		case fieldBlur:
			value, bar = fmt.Sprintf("%dpx", t.value.Blur), t.bar.ViewAs(fraction(t.value.Blur, shadow.BlurMin, shadow.BlurMax))
		case fieldSpread:
			value, bar = fmt.Sprintf("%dpx", t.value.Spread), t.bar.ViewAs(fraction(t.value.Spread, shadow.SpreadMin, shadow.SpreadMax))
		case fieldOpacity:
			value, bar = color.FormatNumber(t.value.Opacity), t.bar.ViewAs(t.value.Opacity)
		case fieldColor:
			bar = swatch(t.value.Color, 4, 1)
			value = t.value.Color
			if t.editing {
				value = t.colorInput.View()
			}
		}

		line := lipgloss.JoinHorizontal(lipgloss.Top,
			labelStyle.Render(shadowLabels[f]), bar, "  ", valueStyle.Render(value))
		if f == t.cursor {
			rows = append(rows, selectedItemStyle.Render(line))
		} else {
			rows = append(rows, itemStyle.Render(line))
		}
	}

	css, err := t.value.CSS()
	if err != nil {
		css = errorTextStyle.Render(err.Error())
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinVertical(lipgloss.Left, rows...),
		m.renderShadowPreview(),
		codeStyle.Render(css),
	)
}

// renderShadowPreview draws a card with a block offset by the shadow, scaled
// down to terminal cells.
func (m Model) renderShadowPreview() string {
	v := m.shadow.value
	card := lipgloss.NewStyle().
		Width(16).
		Height(3).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(mutedColor).
		Align(lipgloss.Center, lipgloss.Center).
		Render("preview")

	shade := m.shadow.value.Color
	if rgba, err := color.ParseHex(shade); err == nil {
		bg, _ := color.ParseHex("#1c1c1c")
		shade = bg.BlendRgb(rgba, v.Opacity).Clamped().Hex()
	}

	dx := clampInt(v.OffsetX/10, -4, 4)
	dy := clampInt(v.OffsetY/10, -2, 2)
	shadowBlock := lipgloss.NewStyle().
		MarginLeft(clampInt(dx+2, 0, 8)).
		MarginTop(clampInt(dy+1, 0, 4)).
		Render(swatch(shade, 18, 5))

	return sectionStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, card, shadowBlock))
}

func fraction(v, lo, hi int) float64 {
	if hi == lo {
		return 0
	}
	return float64(v-lo) / float64(hi-lo)
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
