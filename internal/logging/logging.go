// Package logging provides the ports.Logger adapters used across devkit: a
// human-readable charmbracelet/log backend for terminals and a zerolog JSON
// backend for machine consumption.
package logging

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/alexisbeaulieu97/devkit/internal/ports"
)

// Supported output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Options configures a logger created through New.
type Options struct {
	Writer     io.Writer
	Level      string
	Format     string
	TimeFormat string
	Component  string
	Fields     map[string]interface{}
}

// New builds the adapter matching opts.Format. An empty format selects text.
func New(opts Options) (ports.Logger, error) {
	if opts.Writer == nil {
		opts.Writer = os.Stderr
	}

	switch strings.ToLower(opts.Format) {
	case "", FormatText:
		return NewCharm(opts)
	case FormatJSON:
		return NewZero(opts)
	default:
		return nil, fmt.Errorf("unsupported log format %q", opts.Format)
	}
}

func mapToFields(input map[string]interface{}) []interface{} {
	if len(input) == 0 {
		return nil
	}
	keys := make([]string, 0, len(input))
	for k := range input {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	res := make([]interface{}, 0, len(input)*2)
	for _, k := range keys {
		res = append(res, k, input[k])
	}
	return res
}

// mergeFields flattens base, per-call and extra key/value pairs into one list.
// Later keys overwrite earlier ones while keeping first-seen order.
func mergeFields(base []interface{}, additions []interface{}, extras map[string]interface{}) []interface{} {
	store := make(map[string]interface{})
	order := make([]string, 0)

	addPair := func(key string, value interface{}) {
		if key == "" {
			return
		}
		if _, exists := store[key]; !exists {
			order = append(order, key)
		}
		store[key] = value
	}

	process := func(values []interface{}) {
		for i := 0; i+1 < len(values); i += 2 {
			key, ok := values[i].(string)
			if !ok {
				continue
			}
			addPair(key, values[i+1])
		}
	}

	process(base)
	process(additions)

	extraKeys := make([]string, 0, len(extras))
	for key, value := range extras {
		if value == nil {
			continue
		}
		if s, ok := value.(string); ok && s == "" {
			continue
		}
		extraKeys = append(extraKeys, key)
	}
	sort.Strings(extraKeys)
	for _, key := range extraKeys {
		addPair(key, extras[key])
	}

	result := make([]interface{}, 0, len(order)*2)
	for _, key := range order {
		result = append(result, key, store[key])
	}
	return result
}

func contextExtras(id string) map[string]interface{} {
	if id == "" {
		return nil
	}
	return map[string]interface{}{"correlation_id": id}
}
