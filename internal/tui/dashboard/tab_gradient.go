package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/devkit/internal/gradient"
)

const angleStep = 5

type gradientTab struct {
	cursor     int
	editing    bool
	colorInput textinput.Model
}

func newGradientTab() gradientTab {
	ti := textinput.New()
	ti.Placeholder = "667eea"
	ti.CharLimit = 7
	ti.Prompt = "# "
	return gradientTab{colorInput: ti}
}

func (t *gradientTab) stopEditing() {
	t.editing = false
	t.colorInput.Blur()
}

// follow keeps the cursor on the stop with id after a re-sort.
func (t *gradientTab) follow(g *gradient.Gradient, id string) {
	for i, s := range g.Stops() {
		if s.ID == id {
			t.cursor = i
			return
		}
	}
	t.cursor = clampInt(t.cursor, 0, len(g.Stops())-1)
}

func (m Model) updateGradient(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	t := &m.gradient
	g := m.deps.Gradient
	stops := g.Stops()
	t.cursor = clampInt(t.cursor, 0, len(stops)-1)
	selected := stops[t.cursor]

	if t.editing {
		switch msg.String() {
		case "enter":
			value := t.colorInput.Value()
			if err := g.Update(selected.ID, gradient.StopUpdate{Color: &value}); err != nil {
				m.setError(err.Error())
				return m, nil
			}
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

	move := func(delta int) {
		pos := selected.Position + delta
		_ = g.Update(selected.ID, gradient.StopUpdate{Position: &pos})
		t.follow(g, selected.ID)
	}

	switch msg.String() {
	case "up", "k":
		if t.cursor > 0 {
			t.cursor--
		}
	case "down", "j":
		if t.cursor < len(stops)-1 {
			t.cursor++
		}
	case "left", "h":
		move(-1)
	case "right", "l":
		move(1)
	case "shift+left", "H":
		move(-10)
	case "shift+right", "L":
		move(10)
	case "[":
		g.SetAngle(g.Angle() - angleStep)
	case "]":
		g.SetAngle(g.Angle() + angleStep)
	case "t":
		next := gradient.Radial
		if g.Type() == gradient.Radial {
			next = gradient.Linear
		}
		_ = g.SetType(next)
	case "n", "a":
		added := g.Add()
		t.follow(g, added.ID)
	case "d", "delete":
		if !g.Remove(selected.ID) {
			m.setError(fmt.Sprintf("A gradient needs at least %d color stops", gradient.MinStops))
			return m, nil
		}
		t.cursor = clampInt(t.cursor, 0, len(g.Stops())-1)
	case "enter", "e":
		t.editing = true
		t.colorInput.SetValue(strings.TrimPrefix(selected.Color, "#"))
		t.colorInput.CursorEnd()
		return m, t.colorInput.Focus()
	case "c":
		return m, m.copy("gradient", g.Declaration())
	}
	return m, nil
}

func (m Model) renderGradientTab() string {
	t := m.gradient
	g := m.deps.Gradient

	width := m.width - 8
	if width < 20 {
		width = 20
	}
	var cells []string
	for _, hex := range g.Sample(width) {
		cells = append(cells, swatch(hex, 1, 3))
	}
	preview := lipgloss.JoinHorizontal(lipgloss.Top, cells...)

	settings := fmt.Sprintf("%s %s", labelStyle.Render("Type"), valueStyle.Render(string(g.Type())))
	if g.Type() == gradient.Linear {
		settings += "\n" + fmt.Sprintf("%s %s", labelStyle.Render("Angle"), valueStyle.Render(fmt.Sprintf("%d°", g.Angle())))
	}

	var rows []string
	for i, s := range g.Stops() {
		value := s.Color
		if t.editing && i == t.cursor {
			value = t.colorInput.View()
		}
		line := lipgloss.JoinHorizontal(lipgloss.Top,
			swatch(s.Color, 4, 1), "  ",
			valueStyle.Render(fmt.Sprintf("%3d%%", s.Position)), "  ",
			value)
		if i == t.cursor {
			rows = append(rows, selectedItemStyle.Render(line))
		} else {
			rows = append(rows, itemStyle.Render(line))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		sectionStyle.Render(preview),
		"",
		settings,
		"",
		lipgloss.JoinVertical(lipgloss.Left, rows...),
		codeStyle.Render(g.Declaration()),
	)
}
