package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/devkit/internal/snippet"
)

type snippetView int

const (
	snippetViewList snippetView = iota
	snippetViewForm
	snippetViewConfirm
)

// Form focus order.
const (
	formTitle = iota
	formDescription
	formCategory
	formTags
	formCode
	formFieldCount
)

type snippetForm struct {
	title       textinput.Model
	description textinput.Model
	tags        textinput.Model
	code        textarea.Model
	category    int
	focus       int
}

func newSnippetForm() snippetForm {
	newInput := func(placeholder string) textinput.Model {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.Prompt = ""
		return ti
	}

	code := textarea.New()
	code.Placeholder = "Paste your code here"
	code.ShowLineNumbers = false
	code.CharLimit = 0
	code.SetHeight(6)

	return snippetForm{
		title:       newInput("useDebounce"),
		description: newInput("What does this snippet do?"),
		tags:        newInput("react, hooks, performance"),
		code:        code,
	}
}

func (f *snippetForm) blur() {
	f.title.Blur()
	f.description.Blur()
	f.tags.Blur()
	f.code.Blur()
}

// setFocus moves focus to field i and returns the blink command.
func (f *snippetForm) setFocus(i int) tea.Cmd {
	f.focus = (i + formFieldCount) % formFieldCount
	f.blur()

	switch f.focus {
	case formTitle:
		return f.title.Focus()
	case formDescription:
		return f.description.Focus()
	case formTags:
		return f.tags.Focus()
	case formCode:
		return f.code.Focus()
	}
	return nil
}

func (f snippetForm) draft() snippet.Draft {
	return snippet.Draft{
		Title:       f.title.Value(),
		Description: f.description.Value(),
		Code:        f.code.Value(),
		Category:    snippet.Categories[f.category],
		Tags:        snippet.ParseTags(f.tags.Value()),
	}
}

type snippetsTab struct {
	view          snippetView
	search        textinput.Model
	categoryIndex int // -1 selects every category
	cursor        int
	form          snippetForm
	formErr       string
	pendingDelete string
	copiedID      string
}

func newSnippetsTab() snippetsTab {
	search := textinput.New()
	search.Placeholder = "Search title, description or tags"
	search.Prompt = "/ "

	return snippetsTab{
		search:        search,
		categoryIndex: -1,
		form:          newSnippetForm(),
	}
}

func (t snippetsTab) category() snippet.Category {
	if t.categoryIndex < 0 {
		return snippet.CategoryAll
	}
	return snippet.Categories[t.categoryIndex]
}

func (t *snippetsTab) clampCursor(n int) {
	t.cursor = clampInt(t.cursor, 0, n-1)
	if n == 0 {
		t.cursor = 0
	}
}

// updateFocused forwards a non-key message to the focused input.
func (t *snippetsTab) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch {
	case t.search.Focused():
		t.search, cmd = t.search.Update(msg)
	case t.view == snippetViewForm:
		switch t.form.focus {
		case formTitle:
			t.form.title, cmd = t.form.title.Update(msg)
		case formDescription:
			t.form.description, cmd = t.form.description.Update(msg)
		case formTags:
			t.form.tags, cmd = t.form.tags.Update(msg)
		case formCode:
			t.form.code, cmd = t.form.code.Update(msg)
		}
	}
	return cmd
}

// visibleSnippets applies the search box and category filter.
func (m Model) visibleSnippets() []snippet.Snippet {
	return m.deps.Snippets.Filter(m.snippets.search.Value(), m.snippets.category())
}

func (m Model) updateSnippets(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.snippets.view {
	case snippetViewForm:
		return m.updateSnippetForm(msg)
	case snippetViewConfirm:
		return m.updateSnippetConfirm(msg)
	}

	t := &m.snippets
	if t.search.Focused() {
		switch msg.String() {
		case "esc", "enter":
			t.search.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		t.search, cmd = t.search.Update(msg)
		t.clampCursor(len(m.visibleSnippets()))
		return m, cmd
	}

	visible := m.visibleSnippets()
	switch msg.String() {
	case "/":
		return m, t.search.Focus()
	case "up", "k":
		if t.cursor > 0 {
			t.cursor--
		}
	case "down", "j":
		if t.cursor < len(visible)-1 {
			t.cursor++
		}
	case "f":
		t.categoryIndex++
		if t.categoryIndex >= len(snippet.Categories) {
			t.categoryIndex = -1
		}
		t.clampCursor(len(m.visibleSnippets()))
	case "n":
		t.form = newSnippetForm()
		t.formErr = ""
		t.view = snippetViewForm
		return m, t.form.setFocus(formTitle)
	case "enter", "c":
		if len(visible) == 0 {
			return m, nil
		}
		s := visible[t.cursor]
		t.copiedID = s.ID
		return m, m.copy(s.Title, s.Code)
	case "d", "delete":
		if len(visible) == 0 {
			return m, nil
		}
		t.pendingDelete = visible[t.cursor].ID
		t.view = snippetViewConfirm
	}
	return m, nil
}

func (m Model) updateSnippetForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	t := &m.snippets
	f := &t.form

	switch msg.String() {
	case "esc":
		t.view = snippetViewList
		f.blur()
		return m, nil
	case "tab":
		return m, f.setFocus(f.focus + 1)
	case "shift+tab":
		return m, f.setFocus(f.focus - 1)
	case "ctrl+s":
		created, err := m.deps.Snippets.Create(m.ctx, f.draft())
		if err != nil {
			t.formErr = err.Error()
			return m, nil
		}
		t.view = snippetViewList
		t.formErr = ""
		f.blur()
		for i, s := range m.visibleSnippets() {
			if s.ID == created.ID {
				t.cursor = i
			}
		}
		return m, nil
	}

	if f.focus == formCategory {
		switch msg.String() {
		case "left", "h":
			f.category = (f.category + len(snippet.Categories) - 1) % len(snippet.Categories)
		case "right", "l", " ":
			f.category = (f.category + 1) % len(snippet.Categories)
		case "enter":
			return m, f.setFocus(f.focus + 1)
		}
		return m, nil
	}

	var cmd tea.Cmd
	switch f.focus {
	case formTitle:
		if msg.String() == "enter" {
			return m, f.setFocus(f.focus + 1)
		}
		f.title, cmd = f.title.Update(msg)
	case formDescription:
		if msg.String() == "enter" {
			return m, f.setFocus(f.focus + 1)
		}
		f.description, cmd = f.description.Update(msg)
	case formTags:
		if msg.String() == "enter" {
			return m, f.setFocus(f.focus + 1)
		}
		f.tags, cmd = f.tags.Update(msg)
	case formCode:
		f.code, cmd = f.code.Update(msg)
	}
	return m, cmd
}

func (m Model) updateSnippetConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	t := &m.snippets

	switch msg.String() {
	case "y", "Y":
		id := t.pendingDelete
		t.pendingDelete = ""
		t.view = snippetViewList
		if _, err := m.deps.Snippets.Delete(m.ctx, id); err != nil {
			m.setError(fmt.Sprintf("Failed to delete snippet: %v", err))
			return m, nil
		}
		t.clampCursor(len(m.visibleSnippets()))
	case "n", "N", "esc":
		t.pendingDelete = ""
		t.view = snippetViewList
	}
	return m, nil
}

func (m Model) renderSnippetsTab() string {
	switch m.snippets.view {
	case snippetViewForm:
		return m.renderSnippetForm()
	case snippetViewConfirm:
		return m.renderSnippetConfirm()
	}

	t := m.snippets
	filter := fmt.Sprintf("%s %s", labelStyle.Render("Category"), valueStyle.Render(string(t.category())))
	parts := []string{t.search.View(), filter}

	visible := m.visibleSnippets()
	if len(visible) == 0 {
		msg := "No snippets yet. Press n to add one."
		if len(m.deps.Snippets.List()) > 0 {
			msg = "No snippets match the current search."
		}
		parts = append(parts, emptyStateStyle.Render(msg))
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}

	var items []string
	for i, s := range visible {
		items = append(items, m.renderSnippetItem(s, i == t.cursor))
	}
	parts = append(parts, lipgloss.JoinVertical(lipgloss.Left, items...))

	sel := visible[clampInt(t.cursor, 0, len(visible)-1)]
	parts = append(parts, codeStyle.Render(truncateLines(sel.Code, 8)))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) renderSnippetItem(s snippet.Snippet, selected bool) string {
	title := lipgloss.NewStyle().Bold(true).Render(s.Title)
	if s.ID == m.snippets.copiedID && m.copied {
		title += " " + copiedStyle.Render("✓ copied")
	}

	var badges []string
	badges = append(badges, badgeStyle.Foreground(accentColor).Render(string(s.Category)))
	for _, tag := range s.Tags {
		badges = append(badges, badgeStyle.Render(tag))
	}

	desc := s.Description
	if len(desc) > 60 {
		desc = desc[:57] + "..."
	}
	if desc == "" {
		desc = mutedStyle.Render("No description")
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		title,
		desc,
		lipgloss.JoinHorizontal(lipgloss.Top, badges...),
	)
	if selected {
		return selectedItemStyle.Render(content)
	}
	return itemStyle.Render(content)
}

func (m Model) renderSnippetForm() string {
	f := m.snippets.form

	label := func(i int, name string) string {
		if f.focus == i {
			return labelStyle.Foreground(accentColor).Render(name)
		}
		return labelStyle.Render(name)
	}

	var cats []string
	for i, c := range snippet.Categories {
		if i == f.category {
			cats = append(cats, activeTabStyle.Render(string(c)))
		} else {
			cats = append(cats, tabStyle.Render(string(c)))
		}
	}

	parts := []string{
		helpTitleStyle.Render("New snippet"),
		label(formTitle, "Title") + " " + f.title.View(),
		label(formDescription, "Description") + " " + f.description.View(),
		label(formCategory, "Category") + " " + lipgloss.JoinHorizontal(lipgloss.Bottom, cats...),
		label(formTags, "Tags") + " " + f.tags.View(),
		label(formCode, "Code"),
		sectionStyle.Render(f.code.View()),
	}
	if m.snippets.formErr != "" {
		parts = append(parts, errorTextStyle.Render(m.snippets.formErr))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) renderSnippetConfirm() string {
	title := m.snippets.pendingDelete
	if s, ok := m.deps.Snippets.Get(m.snippets.pendingDelete); ok {
		title = s.Title
	}

	dialog := confirmBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Center,
		warningStyle.Render(fmt.Sprintf("Delete snippet %q?", title)),
		"",
		mutedStyle.Render("y = Yes    n = No    Esc = Cancel"),
	))

	return lipgloss.NewStyle().
		Width(m.width).
		Align(lipgloss.Center).
		Render(dialog)
}

// truncateLines keeps at most n lines of s, noting how many were cut.
func truncateLines(s string, n int) string {
	if n < 3 {
		n = 3
	}
	lines := strings.Split(s, "\n")
	if len(lines) <= n {
		return s
	}
	return strings.Join(lines[:n], "\n") + "\n" + mutedStyle.Render(fmt.Sprintf("... (%d more lines)", len(lines)-n))
}
