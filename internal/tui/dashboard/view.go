package dashboard

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the current model state
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}
	if m.showHelp {
		return m.renderHelpView()
	}

	var content strings.Builder

	content.WriteString(m.renderHeader())
	content.WriteString("\n")

	if m.showError {
		content.WriteString(m.renderErrorBanner())
		content.WriteString("\n")
	}

	content.WriteString(m.renderActiveTab())
	content.WriteString("\n")

	content.WriteString(m.renderFooter())

	return content.String()
}

// renderHeader renders the title, the tab bar and the copy indicator
func (m Model) renderHeader() string {
	title := titleStyle.Render("devkit")

	var tabs []string
	for t := Tab(0); t < tabCount; t++ {
		if t == m.active {
			tabs = append(tabs, activeTabStyle.Render(t.String()))
		} else {
			tabs = append(tabs, tabStyle.Render(t.String()))
		}
	}

	status := ""
	switch {
	case m.copying:
		status = m.spinner.View() + " copying..."
	case m.copied:
		status = copiedStyle.Render("✓ Copied " + m.copiedLabel)
	}

	headerContent := lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Bottom, title, status),
		lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...),
	)

	return headerStyle.Render(headerContent)
}

func (m Model) renderActiveTab() string {
	switch m.active {
	case TabShadow:
		return m.renderShadowTab()
	case TabGradient:
		return m.renderGradientTab()
	case TabPalette:
		return m.renderPaletteTab()
	case TabJSON:
		return m.renderJSONTab()
	case TabSVG:
		return m.renderSVGTab()
	case TabSnippets:
		return m.renderSnippetsTab()
	}
	return ""
}

// footerHints lists the shortcuts of the active tab
func (m Model) footerHints() []string {
	var hints []string
	switch m.active {
	case TabShadow:
		if m.shadow.editing {
			return []string{"enter: apply color", "esc: cancel"}
		}
		hints = []string{"↑/↓: field", "←/→: adjust", "shift: ×10", "e: edit color", "r: reset", "c: copy CSS"}
	case TabGradient:
		if m.gradient.editing {
			return []string{"enter: apply color", "esc: cancel"}
		}
		hints = []string{"↑/↓: stop", "←/→: position", "[/]: angle", "t: type", "n: add", "d: remove", "e: color", "c: copy CSS"}
	case TabPalette:
		hints = []string{"space: generate", "m: mode", "←/→: select", "s: shades", "c: copy hex", "v: copy variables"}
	case TabJSON:
		if m.json.input.Focused() {
			return []string{"ctrl+f: format", "ctrl+n: minify", "ctrl+k: sort keys", "ctrl+y: copy", "ctrl+l: clear", "esc: stop editing"}
		}
		hints = []string{"i: edit", "f: format", "n: minify", "c: copy"}
	case TabSVG:
		if m.svg.input.Focused() {
			return []string{"ctrl+o: output", "ctrl+y: copy", "ctrl+l: clear", "esc: stop editing"}
		}
		hints = []string{"i: edit", "o: output", "c: copy"}
	case TabSnippets:
		switch {
		case m.snippets.view == snippetViewForm:
			return []string{"tab: next field", "←/→: category", "ctrl+s: save", "esc: cancel"}
		case m.snippets.view == snippetViewConfirm:
			return []string{"y: delete", "n: keep"}
		case m.snippets.search.Focused():
			return []string{"enter/esc: done"}
		}
		hints = []string{"/: search", "f: category", "n: new", "enter: copy", "d: delete"}
	}

	hints = append(hints, "tab: next tool", "?: help")
	if m.showError {
		hints = append(hints, "x: dismiss error")
	}
	return append(hints, "q: quit")
}

// renderFooter renders the footer with keyboard shortcuts
func (m Model) renderFooter() string {
	return footerStyle.Render(strings.Join(m.footerHints(), "  •  "))
}

// renderErrorBanner renders an error message banner
func (m Model) renderErrorBanner() string {
	return errorBannerStyle.Render(m.errorMsg)
}

// renderHelpView renders the help overlay
func (m Model) renderHelpView() string {
	title := helpTitleStyle.Render("devkit: Keyboard Shortcuts")

	helpContent := `Global:
  Tab / Shift+Tab   Next / previous tool
  1-6               Jump to a tool
  ?                 Toggle this help
  x, Esc            Dismiss error banner
  q, Ctrl+C         Quit

Box Shadow:
  ↑/↓  ←/→          Pick a slider and move it (Shift: ×10)
  e                 Edit the shadow color
  c                 Copy the box-shadow declaration

Gradient:
  ↑/↓  ←/→          Pick a stop and move it
  [ ]               Rotate the angle
  t  n  d           Toggle type, add stop, remove stop
  c                 Copy the background declaration

Palette:
  Space             Generate a new palette
  m                 Switch harmonic / pentagram
  c  v              Copy hex, copy CSS variables

JSON / SVG→JSX:
  i                 Start editing, Esc to stop
  Ctrl+F  Ctrl+N    Format / minify JSON
  Ctrl+O            Cycle SVG output view
  Ctrl+Y            Copy the output

Snippets:
  /  f              Search, cycle category
  n                 New snippet (Ctrl+S saves)
  Enter  d          Copy code, delete
`

	helpText := lipgloss.NewStyle().
		Padding(1, 2).
		Render(helpContent)

	footer := footerStyle.Render("Press ? or Esc to close")

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		helpText,
		footer,
	)
}
