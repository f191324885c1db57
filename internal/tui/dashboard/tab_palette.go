package dashboard

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/devkit/internal/palette"
)

type paletteTab struct {
	mode       palette.Mode
	colors     []palette.Color
	cursor     int
	shades     []palette.Color
	showShades bool
}

func newPaletteTab(mode palette.Mode) paletteTab {
	return paletteTab{mode: mode}
}

func (t *paletteTab) generate(gen *palette.Generator, showShades bool) {
	t.colors = gen.Generate(t.mode)
	t.cursor = clampInt(t.cursor, 0, len(t.colors)-1)
	t.showShades = showShades
	t.refreshShades()
}

func (t *paletteTab) refreshShades() {
	t.shades = nil
	if !t.showShades || len(t.colors) == 0 {
		return
	}
	if shades, err := palette.Shades(t.colors[t.cursor].Hex); err == nil {
		t.shades = shades
	}
}

// selectShades replaces the palette with the shades of hex.
func (t *paletteTab) selectShades(hex string) {
	shades, err := palette.Shades(hex)
	if err != nil {
		return
	}
	t.colors = shades
	t.cursor = 0
	t.refreshShades()
}

func (m Model) updatePalette(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	t := &m.palette

	switch msg.String() {
	case " ", "g", "enter":
		t.generate(m.deps.Palette, t.showShades)
	case "m":
		if t.mode == palette.ModeHarmonic {
			t.mode = palette.ModePentagram
		} else {
			t.mode = palette.ModeHarmonic
		}
		t.generate(m.deps.Palette, t.showShades)
	case "left", "h":
		if t.cursor > 0 {
			t.cursor--
			t.refreshShades()
		}
	case "right", "l":
		if t.cursor < len(t.colors)-1 {
			t.cursor++
			t.refreshShades()
		}
	case "s":
		t.showShades = !t.showShades
		t.refreshShades()
	case "c":
		if len(t.colors) == 0 {
			break
		}
		hex := t.colors[t.cursor].Hex
		if t.showShades {
			t.selectShades(hex)
		}
		return m, m.copy(hex, hex)
	case "v":
		return m, m.copy("CSS variables", palette.CSSVariables(t.colors))
	}
	return m, nil
}

func (m Model) renderPaletteTab() string {
	t := m.palette

	var cards []string
	for i, c := range t.colors {
		label := lipgloss.JoinVertical(lipgloss.Left,
			valueStyle.Render(c.Hex),
			mutedStyle.Render(c.Name),
		)
		card := lipgloss.JoinVertical(lipgloss.Left, swatch(c.Hex, 12, 4), label)

		style := lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.HiddenBorder())
		if i == t.cursor {
			style = style.Border(lipgloss.RoundedBorder()).BorderForeground(accentColor)
		}
		cards = append(cards, style.Render(card))
	}

	parts := []string{
		labelStyle.Render("Mode") + " " + valueStyle.Render(string(t.mode)),
		lipgloss.JoinHorizontal(lipgloss.Top, cards...),
	}

	if len(t.shades) > 0 {
		var row []string
		for _, s := range t.shades {
			row = append(row, lipgloss.JoinVertical(lipgloss.Left,
				swatch(s.Hex, 10, 2), mutedStyle.Render(s.Hex)))
		}
		parts = append(parts, sectionStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, row...)))
	}

	parts = append(parts, codeStyle.Render(strings.TrimSpace(palette.CSSVariables(t.colors))))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
