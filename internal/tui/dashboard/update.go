package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	minWidth  = 80
	minHeight = 24
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	// System messages
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		ApplyMaxWidth(m.width)
		m.resizeInputs()

		// Check minimum terminal size
		if m.width < minWidth || m.height < minHeight {
			m.setError(fmt.Sprintf("Terminal too small (%dx%d). Minimum size: %dx%d",
				m.width, m.height, minWidth, minHeight))
		} else if m.showError && strings.HasPrefix(m.errorMsg, "Terminal too small") {
			m.clearError()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	// Spinner tick while a copy is in flight
	case spinner.TickMsg:
		if !m.copying {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	// Clipboard messages
	case CopiedMsg:
		m.copying = false
		m.copied = true
		m.copiedLabel = msg.Label
		m.copySeq++
		return m, clearCopiedCmd(m.copySeq)

	case CopyFailedMsg:
		m.copying = false
		m.deps.Logger.Error(m.ctx, "clipboard write failed", "target", msg.Label, "error", msg.Err)
		m.setError(fmt.Sprintf("Copy failed: %v", msg.Err))
		return m, nil

	case clearCopiedMsg:
		if msg.Seq == m.copySeq {
			m.copied = false
			m.copiedLabel = ""
			m.snippets.copiedID = ""
		}
		return m, nil

	// Snippet messages
	case SnippetsLoadedMsg:
		if msg.Err != nil {
			m.setError(fmt.Sprintf("Failed to load snippets: %v", msg.Err))
		}
		m.snippets.clampCursor(len(m.visibleSnippets()))
		return m, nil

	// Error messages
	case ErrorMsg:
		m.setError(msg.Message)
		return m, nil

	case ClearErrorMsg:
		m.clearError()
		return m, nil
	}

	// Cursor blink and other input-internal messages
	return m.updateFocusedInput(msg)
}

// handleKeyPress handles global keys, then hands the rest to the active tab
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return m, tea.Quit
	}

	if m.showHelp {
		switch key {
		case "?", "esc", "q":
			m.showHelp = false
		}
		return m, nil
	}

	formOpen := m.active == TabSnippets && m.snippets.view == snippetViewForm
	if !formOpen {
		switch key {
		case "tab":
			m.NextTab()
			return m, nil
		case "shift+tab":
			m.PrevTab()
			return m, nil
		}
	}

	if !m.capturesKeys() {
		switch key {
		case "q":
			return m, tea.Quit
		case "?":
			m.showHelp = true
			return m, nil
		case "x":
			if m.showError {
				m.clearError()
				return m, nil
			}
		case "esc":
			if m.showError {
				m.clearError()
				return m, nil
			}
		case "1", "2", "3", "4", "5", "6":
			if m.active != TabSnippets || m.snippets.view == snippetViewList {
				m.blurAll()
				m.active = Tab(key[0] - '1')
				return m, nil
			}
		}
	}

	switch m.active {
	case TabShadow:
		return m.updateShadow(msg)
	case TabGradient:
		return m.updateGradient(msg)
	case TabPalette:
		return m.updatePalette(msg)
	case TabJSON:
		return m.updateJSON(msg)
	case TabSVG:
		return m.updateSVG(msg)
	case TabSnippets:
		return m.updateSnippets(msg)
	}
	return m, nil
}

// updateFocusedInput forwards non-key messages to whichever input has focus
func (m Model) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.active {
	case TabShadow:
		if m.shadow.editing {
			m.shadow.colorInput, cmd = m.shadow.colorInput.Update(msg)
		}
	case TabGradient:
		if m.gradient.editing {
			m.gradient.colorInput, cmd = m.gradient.colorInput.Update(msg)
		}
	case TabJSON:
		m.json.input, cmd = m.json.input.Update(msg)
	case TabSVG:
		m.svg.input, cmd = m.svg.input.Update(msg)
	case TabSnippets:
		cmd = m.snippets.updateFocused(msg)
	}
	return m, cmd
}

func (m *Model) resizeInputs() {
	width := m.width - 6
	if width < 20 {
		width = 20
	}
	m.json.input.SetWidth(width)
	m.svg.input.SetWidth(width)
	m.snippets.form.code.SetWidth(width)
	m.snippets.search.Width = width / 2
}
