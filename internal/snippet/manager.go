package snippet

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/alexisbeaulieu97/devkit/internal/logging"
	"github.com/alexisbeaulieu97/devkit/internal/ports"
)

// DefaultKey is the storage key holding the snippet array.
const DefaultKey = "devtools-snippets"

// Manager owns the in-memory snippet list and mirrors every change to the
// store. Snippets are kept newest first.
type Manager struct {
	store  ports.KVStore
	key    string
	logger ports.Logger
	now    func() time.Time

	mu       sync.RWMutex
	snippets []Snippet
}

// Option customises NewManager.
type Option func(*Manager)

// WithKey overrides the storage key.
func WithKey(key string) Option {
	return func(m *Manager) {
		if key != "" {
			m.key = key
		}
	}
}

// WithClock replaces time.Now, used for ids and creation timestamps.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// WithLogger sets the logger used for recoverable problems.
func WithLogger(logger ports.Logger) Option {
	return func(m *Manager) { m.logger = logger }
}

// NewManager returns an empty manager over store. Call Load to read what is
// already persisted.
func NewManager(store ports.KVStore, opts ...Option) *Manager {
	m := &Manager{
		store:  store,
		key:    DefaultKey,
		logger: logging.Discard,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Load replaces the in-memory list with the stored one. An absent key gives
// an empty list. Malformed stored data also gives an empty list and is
// logged; only store failures are returned.
func (m *Manager) Load(ctx context.Context) error {
	raw, found, err := m.store.Get(ctx, m.key)
	if err != nil {
		return fmt.Errorf("load snippets: %w", err)
	}

	var list []Snippet
	if found && strings.TrimSpace(raw) != "" {
		if err := json.Unmarshal([]byte(raw), &list); err != nil {
			m.logger.Warn(ctx, "stored snippets are malformed; starting empty", "key", m.key, "error", err)
			list = nil
		}
	}

	for i := range list {
		list[i].Category = list[i].Category.Canonical()
		if list[i].Tags == nil {
			list[i].Tags = []string{}
		}
	}

	m.mu.Lock()
	m.snippets = list
	m.mu.Unlock()

	m.logger.Debug(ctx, "snippets loaded", "count", len(list))
	return nil
}

// Create validates d, prepends the new snippet and persists the list.
func (m *Manager) Create(ctx context.Context, d Draft) (Snippet, error) {
	if err := d.Validate(); err != nil {
		return Snippet{}, err
	}

	tags := []string{}
	for _, t := range d.Tags {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	s := Snippet{
		ID:          nextID(m.snippets, now),
		Title:       d.Title,
		Description: d.Description,
		Code:        d.Code,
		Category:    d.Category,
		Tags:        tags,
		CreatedAt:   now.UTC(),
	}

	next := make([]Snippet, 0, len(m.snippets)+1)
	next = append(next, s)
	next = append(next, m.snippets...)
	if err := m.persist(ctx, next); err != nil {
		return Snippet{}, err
	}
	m.snippets = next

	m.logger.Info(ctx, "snippet created", "id", s.ID, "category", string(s.Category))
	return s, nil
}

// Delete removes the snippet with id and persists. An unknown id is a no-op
// reported as false.
func (m *Manager) Delete(ctx context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := indexOf(m.snippets, id)
	if idx < 0 {
		return false, nil
	}

	next := make([]Snippet, 0, len(m.snippets)-1)
	next = append(next, m.snippets[:idx]...)
	next = append(next, m.snippets[idx+1:]...)
	if err := m.persist(ctx, next); err != nil {
		return false, err
	}
	m.snippets = next

	m.logger.Info(ctx, "snippet deleted", "id", id)
	return true, nil
}

// Get returns the snippet with id.
func (m *Manager) Get(id string) (Snippet, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if idx := indexOf(m.snippets, id); idx >= 0 {
		return m.snippets[idx], true
	}
	return Snippet{}, false
}

// List returns every snippet, newest first.
func (m *Manager) List() []Snippet {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Snippet, len(m.snippets))
	copy(out, m.snippets)
	return out
}

// Filter keeps snippets whose title, description or any tag contains query
// (case-insensitive), restricted to category unless it is CategoryAll or
// empty. Order is preserved.
func (m *Manager) Filter(query string, category Category) []Snippet {
	m.mu.RLock()
	defer m.mu.RUnlock()

	q := strings.ToLower(query)
	out := []Snippet{}
	for _, s := range m.snippets {
		if category != CategoryAll && category != "" && s.Category != category {
			continue
		}
		if matches(s, q) {
			out = append(out, s)
		}
	}
	return out
}

func matches(s Snippet, lowerQuery string) bool {
	if strings.Contains(strings.ToLower(s.Title), lowerQuery) ||
		strings.Contains(strings.ToLower(s.Description), lowerQuery) {
		return true
	}
	for _, tag := range s.Tags {
		if strings.Contains(strings.ToLower(tag), lowerQuery) {
			return true
		}
	}
	return false
}

// FuzzyFind ranks snippets whose title fuzzily matches query, closest first.
// An empty query returns the full list.
func (m *Manager) FuzzyFind(query string) []Snippet {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if strings.TrimSpace(query) == "" {
		out := make([]Snippet, len(m.snippets))
		copy(out, m.snippets)
		return out
	}

	titles := make([]string, len(m.snippets))
	for i, s := range m.snippets {
		titles[i] = s.Title
	}

	ranks := fuzzy.RankFindFold(query, titles)
	sort.Stable(ranks)

	out := make([]Snippet, 0, len(ranks))
	for _, r := range ranks {
		out = append(out, m.snippets[r.OriginalIndex])
	}
	return out
}

// nextID derives an id from now in Unix milliseconds, bumped until unused
// in list.
func nextID(list []Snippet, now time.Time) string {
	ms := now.UnixMilli()
	for {
		id := strconv.FormatInt(ms, 10)
		if indexOf(list, id) < 0 {
			return id
		}
		ms++
	}
}

func indexOf(list []Snippet, id string) int {
	for i, s := range list {
		if s.ID == id {
			return i
		}
	}
	return -1
}

func (m *Manager) persist(ctx context.Context, list []Snippet) error {
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encode snippets: %w", err)
	}
	if err := m.store.Set(ctx, m.key, string(data)); err != nil {
		m.logger.Error(ctx, "failed to persist snippets", "key", m.key, "error", err)
		return fmt.Errorf("save snippets: %w", err)
	}
	return nil
}
