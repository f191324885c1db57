package dashboard

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/devkit/internal/clipboard"
	"github.com/alexisbeaulieu97/devkit/internal/gradient"
	"github.com/alexisbeaulieu97/devkit/internal/logging"
	"github.com/alexisbeaulieu97/devkit/internal/palette"
	"github.com/alexisbeaulieu97/devkit/internal/ports"
	"github.com/alexisbeaulieu97/devkit/internal/snippet"
	"github.com/alexisbeaulieu97/devkit/internal/storage"
)

// Deps are the collaborators the workbench drives. Zero fields get working
// defaults in NewModel.
type Deps struct {
	Snippets       *snippet.Manager
	Clipboard      ports.Clipboard
	Logger         ports.Logger
	Palette        *palette.Generator
	PaletteMode    palette.Mode
	ShadesOnSelect bool
	Gradient       *gradient.Gradient
}

// Model is the main dashboard model
type Model struct {
	ctx  context.Context
	deps Deps

	// UI state
	active   Tab
	showHelp bool

	// Clipboard state
	spinner     spinner.Model
	copying     bool
	copied      bool
	copiedLabel string
	copySeq     int

	// Error banner
	showError bool
	errorMsg  string

	// Per-tab state
	shadow   shadowTab
	gradient gradientTab
	palette  paletteTab
	json     jsonTab
	svg      svgTab
	snippets snippetsTab

	// Dimensions
	width  int
	height int
}

// NewModel creates a new dashboard model
func NewModel(ctx context.Context, deps Deps) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	if deps.Logger == nil {
		deps.Logger = logging.Discard
	}
	if deps.Clipboard == nil {
		deps.Clipboard = clipboard.New(deps.Logger, false)
	}
	if deps.Palette == nil {
		deps.Palette = palette.New(nil)
	}
	if deps.PaletteMode == "" {
		deps.PaletteMode = palette.ModeHarmonic
	}
	if deps.Gradient == nil {
		deps.Gradient = gradient.New()
	}
	if deps.Snippets == nil {
		deps.Snippets = snippet.NewManager(storage.NewMemoryStore(), snippet.WithLogger(deps.Logger))
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	m := Model{
		ctx:      ctx,
		deps:     deps,
		active:   TabShadow,
		spinner:  s,
		shadow:   newShadowTab(),
		gradient: newGradientTab(),
		palette:  newPaletteTab(deps.PaletteMode),
		json:     newJSONTab(),
		svg:      newSVGTab(),
		snippets: newSnippetsTab(),
		width:    80,
		height:   24,
	}
	m.palette.generate(deps.Palette, deps.ShadesOnSelect)

	return m
}

// Init initializes the model and returns initial commands
func (m Model) Init() tea.Cmd {
	return loadSnippetsCmd(m.ctx, m.deps.Snippets)
}

// Active returns the selected tab.
func (m Model) Active() Tab {
	return m.active
}

// Copied reports whether the transient copied indicator is showing.
func (m Model) Copied() bool {
	return m.copied
}

// NextTab moves to the following tab, wrapping around.
func (m *Model) NextTab() {
	m.blurAll()
	m.active = (m.active + 1) % tabCount
}

// PrevTab moves to the previous tab, wrapping around.
func (m *Model) PrevTab() {
	m.blurAll()
	m.active = (m.active + tabCount - 1) % tabCount
}

// capturesKeys reports whether a text field owns the keyboard, in which case
// single-letter shortcuts are typed rather than interpreted.
func (m Model) capturesKeys() bool {
	switch m.active {
	case TabShadow:
		return m.shadow.editing
	case TabGradient:
		return m.gradient.editing
	case TabJSON:
		return m.json.input.Focused()
	case TabSVG:
		return m.svg.input.Focused()
	case TabSnippets:
		return m.snippets.search.Focused() || m.snippets.view == snippetViewForm
	}
	return false
}

func (m *Model) blurAll() {
	m.shadow.stopEditing()
	m.gradient.stopEditing()
	m.json.input.Blur()
	m.svg.input.Blur()
	m.snippets.search.Blur()
}

// copy starts a clipboard write of text and shows the spinner until it ends.
func (m *Model) copy(label, text string) tea.Cmd {
	if text == "" {
		return nil
	}
	m.copying = true
	return tea.Batch(copyCmd(m.ctx, m.deps.Clipboard, label, text), m.spinner.Tick)
}

func (m *Model) setError(msg string) {
	m.showError = true
	m.errorMsg = msg
}

func (m *Model) clearError() {
	m.showError = false
	m.errorMsg = ""
}
