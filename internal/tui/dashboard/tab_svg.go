package dashboard

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/devkit/internal/svgjsx"
)

type svgOutput int

const (
	svgOutputJSX svgOutput = iota
	svgOutputComponent
	svgOutputOutline
	svgOutputDiff
	svgOutputCount
)

var svgOutputTitles = [svgOutputCount]string{
	svgOutputJSX:       "JSX",
	svgOutputComponent: "React component",
	svgOutputOutline:   "Outline",
	svgOutputDiff:      "Diff",
}

type svgTab struct {
	input  textarea.Model
	output svgOutput
	report svgjsx.Report
}

func newSVGTab() svgTab {
	ta := textarea.New()
	ta.Placeholder = `<svg viewBox="0 0 24 24"><path stroke-width="2" d="..."/></svg>`
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetHeight(8)
	return svgTab{input: ta}
}

// rendered returns the text of the selected output view.
func (t svgTab) rendered() (string, error) {
	src := t.input.Value()
	switch t.output {
	case svgOutputComponent:
		return svgjsx.Component(src, ""), nil
	case svgOutputOutline:
		return svgjsx.Outline(src)
	case svgOutputDiff:
		return svgjsx.Diff(src), nil
	default:
		return t.report.JSX, nil
	}
}

func (m Model) updateSVG(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	t := &m.svg

	switch msg.String() {
	case "ctrl+o":
		t.output = (t.output + 1) % svgOutputCount
		return m, nil
	case "ctrl+y":
		out, err := t.rendered()
		if err != nil {
			m.setError(err.Error())
			return m, nil
		}
		return m, m.copy(svgOutputTitles[t.output], out)
	case "ctrl+l":
		t.input.Reset()
		t.report = svgjsx.Report{}
		return m, nil
	}

	if !t.input.Focused() {
		switch msg.String() {
		case "enter", "i":
			return m, t.input.Focus()
		case "o":
			t.output = (t.output + 1) % svgOutputCount
		case "c":
			out, err := t.rendered()
			if err != nil {
				m.setError(err.Error())
				return m, nil
			}
			return m, m.copy(svgOutputTitles[t.output], out)
		}
		return m, nil
	}

	if msg.String() == "esc" {
		t.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	t.report = svgjsx.Analyze(t.input.Value())
	return m, cmd
}

func (m Model) renderSVGTab() string {
	t := m.svg

	var tabs []string
	for o := svgOutput(0); o < svgOutputCount; o++ {
		if o == t.output {
			tabs = append(tabs, activeTabStyle.Render(svgOutputTitles[o]))
		} else {
			tabs = append(tabs, tabStyle.Render(svgOutputTitles[o]))
		}
	}

	parts := []string{sectionStyle.Render(t.input.View()), lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)}

	out, err := t.rendered()
	switch {
	case err != nil:
		parts = append(parts, errorTextStyle.Render(err.Error()))
	case out == "":
		parts = append(parts, emptyStateStyle.Render("Paste SVG markup above to see the result."))
	default:
		parts = append(parts, codeStyle.Render(truncateLines(out, m.height-24)))
	}

	if n := len(t.report.Hits); n > 0 {
		total := 0
		for _, h := range t.report.Hits {
			total += h.Count
		}
		parts = append(parts, mutedStyle.Render(fmt.Sprintf("%d attribute(s) renamed by %d rule(s)", total, n)))
	}
	for _, w := range t.report.Warnings {
		parts = append(parts, warningStyle.Render("⚠ "+w))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
