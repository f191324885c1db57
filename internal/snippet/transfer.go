package snippet

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is a serialisation used by Export and Import.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts "json", "yaml" or "yml".
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported format %q (expected json or yaml)", name)
	}
}

// FormatFromPath picks the format from a file extension, defaulting to JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Export serialises the whole library.
func (m *Manager) Export(format Format) ([]byte, error) {
	list := m.List()

	switch format {
	case FormatJSON, "":
		data, err := json.MarshalIndent(list, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode snippets: %w", err)
		}
		return append(data, '\n'), nil
	case FormatYAML:
		data, err := yaml.Marshal(list)
		if err != nil {
			return nil, fmt.Errorf("encode snippets: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}

// Import merges snippets from data. Entries whose id already exists are
// skipped; entries without an id or timestamp get fresh ones. Every entry
// must pass the same validation as Create. It returns how many were added.
func (m *Manager) Import(ctx context.Context, data []byte, format Format) (int, error) {
	var incoming []Snippet
	switch format {
	case FormatJSON, "":
		if err := json.Unmarshal(data, &incoming); err != nil {
			return 0, fmt.Errorf("decode snippets: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &incoming); err != nil {
			return 0, fmt.Errorf("decode snippets: %w", err)
		}
	default:
		return 0, fmt.Errorf("unsupported format %q", format)
	}

	for i, s := range incoming {
		s.Category = s.Category.Canonical()
		incoming[i].Category = s.Category
		d := Draft{Title: s.Title, Description: s.Description, Code: s.Code, Category: s.Category}
		if err := d.Validate(); err != nil {
			return 0, fmt.Errorf("snippet %d: %w", i+1, err)
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	next := make([]Snippet, len(m.snippets), len(m.snippets)+len(incoming))
	copy(next, m.snippets)

	added := 0
	now := m.now()
	for _, s := range incoming {
		if s.ID != "" && indexOf(next, s.ID) >= 0 {
			continue
		}
		if s.CreatedAt.IsZero() {
			s.CreatedAt = now.UTC()
		}
		if s.ID == "" {
			s.ID = nextID(next, s.CreatedAt)
		}
		if s.Tags == nil {
			s.Tags = []string{}
		}
		next = append(next, s)
		added++
	}

	if added == 0 {
		return 0, nil
	}

	sort.SliceStable(next, func(i, j int) bool {
		return next[i].CreatedAt.After(next[j].CreatedAt)
	})
	if err := m.persist(ctx, next); err != nil {
		return 0, err
	}
	m.snippets = next

	m.logger.Info(ctx, "snippets imported", "added", added, "skipped", len(incoming)-added)
	return added, nil
}
