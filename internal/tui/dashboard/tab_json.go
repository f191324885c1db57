package dashboard

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/devkit/internal/jsonfmt"
)

type jsonTab struct {
	input    textarea.Model
	result   jsonfmt.Result
	err      error
	mode     jsonfmt.Mode
	sortKeys bool
}

func newJSONTab() jsonTab {
	ta := textarea.New()
	ta.Placeholder = `{"paste": "your JSON here"}`
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetHeight(8)
	return jsonTab{input: ta, mode: jsonfmt.Pretty}
}

// format runs the formatter in mode; on failure the output is cleared.
func (t *jsonTab) format(mode jsonfmt.Mode) {
	t.mode = mode
	res, err := jsonfmt.Format(t.input.Value(), jsonfmt.Options{Mode: mode, SortKeys: t.sortKeys})
	t.result = res
	t.err = err
}

func (m Model) updateJSON(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	t := &m.json

	switch msg.String() {
	case "ctrl+f":
		t.format(jsonfmt.Pretty)
		return m, nil
	case "ctrl+n":
		t.format(jsonfmt.Minify)
		return m, nil
	case "ctrl+k":
		t.sortKeys = !t.sortKeys
		if t.result.Output != "" {
			t.format(t.mode)
		}
		return m, nil
	case "ctrl+y":
		return m, m.copy("JSON", t.result.Output)
	case "ctrl+l":
		t.input.Reset()
		t.result = jsonfmt.Result{}
		t.err = nil
		return m, nil
	}

	if !t.input.Focused() {
		switch msg.String() {
		case "enter", "i":
			return m, t.input.Focus()
		case "f":
			t.format(jsonfmt.Pretty)
		case "n":
			t.format(jsonfmt.Minify)
		case "c":
			return m, m.copy("JSON", t.result.Output)
		}
		return m, nil
	}

	if msg.String() == "esc" {
		t.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	return m, cmd
}

func (m Model) renderJSONTab() string {
	t := m.json

	sort := "off"
	if t.sortKeys {
		sort = "on"
	}
	settings := fmt.Sprintf("%s %s   %s %s",
		labelStyle.Render("Mode"), valueStyle.Render(string(t.mode)),
		mutedStyle.Render("sort keys"), valueStyle.Render(sort))

	parts := []string{settings, sectionStyle.Render(t.input.View())}

	switch {
	case t.err != nil:
		parts = append(parts, errorTextStyle.Render(t.err.Error()))
	case t.result.Output != "":
		s := t.result.Stats
		parts = append(parts,
			codeStyle.Render(truncateLines(t.result.Output, m.height-22)),
			mutedStyle.Render(fmt.Sprintf("%d characters  •  %d lines  •  %d keys", s.Characters, s.Lines, s.Keys)),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
