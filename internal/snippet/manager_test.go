package snippet

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/devkit/internal/logging"
	"github.com/alexisbeaulieu97/devkit/internal/storage"
	deverrors "github.com/alexisbeaulieu97/devkit/pkg/errors"
)

var epoch = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() func() time.Time {
	return func() time.Time { return epoch }
}

func newTestManager(t *testing.T) (*Manager, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	m := NewManager(store, WithClock(fixedClock()))
	require.NoError(t, m.Load(context.Background()))
	return m, store
}

func hookDraft() Draft {
	return Draft{
		Title:       "useDebounce",
		Description: "Debounce a value",
		Code:        "export function useDebounce() {}",
		Category:    CategoryReactHooks,
		Tags:        ParseTags("react, hooks,,timing"),
	}
}

func TestParseTags(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, ParseTags("a, b,,c"))
	assert.Equal(t, []string{}, ParseTags(" , "))
}

func TestParseCategory(t *testing.T) {
	tests := map[string]Category{
		"CSS":               CategoryCSS,
		"react hooks":       CategoryReactHooks,
		"utility-functions": CategoryUtility,
		"ALL":               CategoryAll,
		"Outros":            CategoryOther,
	}
	for input, want := range tests {
		got, err := ParseCategory(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got)
	}

	_, err := ParseCategory("Go")
	require.Error(t, err)
}

func TestCreatePersistsNewestFirst(t *testing.T) {
	ctx := context.Background()
	m, store := newTestManager(t)

	first, err := m.Create(ctx, hookDraft())
	require.NoError(t, err)
	assert.Equal(t, "1772366400000", first.ID)
	assert.Equal(t, epoch, first.CreatedAt)
	assert.Equal(t, []string{"react", "hooks", "timing"}, first.Tags)

	d := hookDraft()
	d.Title = "clamp"
	d.Category = CategoryUtility
	second, err := m.Create(ctx, d)
	require.NoError(t, err)
	assert.Equal(t, "1772366400001", second.ID, "ids are bumped until unique")

	list := m.List()
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)

	raw, found, err := store.Get(ctx, DefaultKey)
	require.NoError(t, err)
	require.True(t, found)

	var stored []map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &stored))
	require.Len(t, stored, 2)
	assert.Equal(t, "clamp", stored[0]["title"])
	assert.Equal(t, "2026-03-01T12:00:00Z", stored[1]["createdAt"])
	assert.ElementsMatch(t, []string{"id", "title", "description", "code", "category", "tags", "createdAt"}, keys(stored[0]))
}

func TestCreateRejectsInvalidDrafts(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(t)

	tests := []struct {
		name  string
		edit  func(*Draft)
		field string
	}{
		{"empty title", func(d *Draft) { d.Title = "" }, "title"},
		{"blank title", func(d *Draft) { d.Title = "  " }, "title"},
		{"empty code", func(d *Draft) { d.Code = "" }, "code"},
		{"unknown category", func(d *Draft) { d.Category = "Go" }, "category"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := hookDraft()
			tt.edit(&d)

			_, err := m.Create(ctx, d)
			var verr *deverrors.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
	assert.Empty(t, m.List())
}

func TestCreateAcceptsLongDescription(t *testing.T) {
	m, _ := newTestManager(t)

	d := hookDraft()
	d.Description = strings.Repeat("x", 5000)
	s, err := m.Create(context.Background(), d)
	require.NoError(t, err)
	assert.Len(t, s.Description, 5000)
	assert.Len(t, m.List(), 1)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(t)
	s, err := m.Create(ctx, hookDraft())
	require.NoError(t, err)

	removed, err := m.Delete(ctx, "nope")
	require.NoError(t, err)
	assert.False(t, removed)
	assert.Len(t, m.List(), 1)

	removed, err = m.Delete(ctx, s.ID)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Empty(t, m.List())

	_, ok := m.Get(s.ID)
	assert.False(t, ok)
}

func TestLoadMalformedDataStartsEmpty(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(ctx, DefaultKey, "{not an array"))

	var logs bytes.Buffer
	logger, err := logging.New(logging.Options{Writer: &logs, Format: "json"})
	require.NoError(t, err)

	m := NewManager(store, WithLogger(logger))
	require.NoError(t, m.Load(ctx))
	assert.Empty(t, m.List())
	assert.Contains(t, logs.String(), "malformed")
}

func TestLoadMapsLegacyCategory(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(ctx, DefaultKey, `[{"id":"1","title":"a","description":"","code":"x","category":"Outros","tags":["misc"],"createdAt":"2024-01-01T00:00:00Z"}]`))

	m := NewManager(store)
	require.NoError(t, m.Load(ctx))
	require.Len(t, m.List(), 1)
	assert.Equal(t, CategoryOther, m.List()[0].Category)
	assert.Len(t, m.Filter("", CategoryOther), 1)
}

func TestLoadReadsExistingList(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(ctx, "custom", `[{"id":"1","title":"a","description":"","code":"x","category":"CSS","createdAt":"2024-01-01T00:00:00Z"}]`))

	m := NewManager(store, WithKey("custom"))
	require.NoError(t, m.Load(ctx))

	s, ok := m.Get("1")
	require.True(t, ok)
	assert.Equal(t, CategoryCSS, s.Category)
	assert.Equal(t, []string{}, s.Tags)
}

func TestFilter(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(t)

	_, err := m.Create(ctx, hookDraft())
	require.NoError(t, err)
	_, err = m.Create(ctx, Draft{Title: "Flex center", Description: "Center things", Code: ".c{}", Category: CategoryCSS, Tags: []string{"Layout"}})
	require.NoError(t, err)

	titles := func(list []Snippet) []string {
		out := []string{}
		for _, s := range list {
			out = append(out, s.Title)
		}
		return out
	}

	assert.Equal(t, []string{"Flex center", "useDebounce"}, titles(m.Filter("", CategoryAll)))
	assert.Equal(t, []string{"useDebounce"}, titles(m.Filter("DEBOUNCE", CategoryAll)))
	assert.Equal(t, []string{"Flex center"}, titles(m.Filter("lay", CategoryAll)), "tag substring")
	assert.Equal(t, []string{"Flex center"}, titles(m.Filter("things", "")), "description")
	assert.Empty(t, titles(m.Filter("debounce", CategoryCSS)))
	assert.Equal(t, []string{"useDebounce"}, titles(m.Filter("", CategoryReactHooks)))
}

func TestFuzzyFind(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(t)

	for _, title := range []string{"useLocalStorage", "useDebounce", "debounce helper"} {
		d := hookDraft()
		d.Title = title
		_, err := m.Create(ctx, d)
		require.NoError(t, err)
	}

	found := m.FuzzyFind("udb")
	require.Len(t, found, 1)
	assert.Equal(t, "useDebounce", found[0].Title)

	assert.Len(t, m.FuzzyFind(""), 3)
	assert.Empty(t, m.FuzzyFind("zzz"))
}

type failingStore struct {
	*storage.MemoryStore
}

func (failingStore) Set(context.Context, string, string) error {
	return deverrors.NewStorageError("test", "set", DefaultKey, errors.New("disk full"))
}

func TestCreateKeepsStateWhenPersistFails(t *testing.T) {
	m := NewManager(failingStore{storage.NewMemoryStore()})
	_, err := m.Create(context.Background(), hookDraft())

	var storageErr *deverrors.StorageError
	require.ErrorAs(t, err, &storageErr)
	assert.Empty(t, m.List())
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
