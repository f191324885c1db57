package dashboard

import (
	"context"
	"math/rand/v2"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/devkit/internal/clipboard"
	"github.com/alexisbeaulieu97/devkit/internal/palette"
	"github.com/alexisbeaulieu97/devkit/internal/snippet"
	"github.com/alexisbeaulieu97/devkit/internal/storage"
)

func newTestModel(t *testing.T) (Model, *clipboard.Memory) {
	t.Helper()

	cb := &clipboard.Memory{}
	mgr := snippet.NewManager(storage.NewMemoryStore())
	require.NoError(t, mgr.Load(context.Background()))

	m := NewModel(context.Background(), Deps{
		Snippets:  mgr,
		Clipboard: cb,
		Palette:   palette.New(rand.New(rand.NewPCG(7, 7))),
	})
	m.width = 120
	m.height = 40
	return m, cb
}

// press feeds keys to the model one by one. Plain text is delivered as a
// single rune message.
func press(t *testing.T, m Model, keys ...tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(k)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyOf(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

// collect executes cmd and expands batches, returning every message except
// those from tea.Tick, which would block.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		out = append(out, collect(c)...)
	}
	return out
}

func findMsg[T any](msgs []tea.Msg) (T, bool) {
	for _, msg := range msgs {
		if v, ok := msg.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func TestNewModelDefaults(t *testing.T) {
	m := NewModel(context.Background(), Deps{})

	assert.Equal(t, TabShadow, m.Active())
	assert.Len(t, m.palette.colors, palette.Size)
	assert.Equal(t, palette.ModeHarmonic, m.palette.mode)
	assert.NotNil(t, m.deps.Snippets)
	assert.NotNil(t, m.deps.Gradient)
	assert.False(t, m.Copied())
}

func TestTabNavigationWraps(t *testing.T) {
	m, _ := newTestModel(t)

	m.PrevTab()
	assert.Equal(t, TabSnippets, m.Active())
	m.NextTab()
	assert.Equal(t, TabShadow, m.Active())

	m, _ = press(t, m, keyOf(tea.KeyTab), keyOf(tea.KeyTab))
	assert.Equal(t, TabPalette, m.Active())
	m, _ = press(t, m, keyOf(tea.KeyShiftTab))
	assert.Equal(t, TabGradient, m.Active())
	m, _ = press(t, m, runes("5"))
	assert.Equal(t, TabSVG, m.Active())
}

func TestTabTitles(t *testing.T) {
	assert.Equal(t, "Box Shadow", TabShadow.String())
	assert.Equal(t, "SVG→JSX", TabSVG.String())
	assert.Equal(t, "unknown", Tab(42).String())
}

func TestInitLoadsSnippets(t *testing.T) {
	m, _ := newTestModel(t)
	msgs := collect(m.Init())

	loaded, ok := findMsg[SnippetsLoadedMsg](msgs)
	require.True(t, ok)
	assert.NoError(t, loaded.Err)
}
