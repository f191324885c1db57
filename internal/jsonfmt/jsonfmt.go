// Package jsonfmt validates, pretty-prints and minifies JSON documents.
package jsonfmt

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// ErrInvalidJSON is returned for any input that does not parse as JSON.
var ErrInvalidJSON = errors.New("invalid JSON: check the syntax")

// ErrPathNotFound is returned by Query when the path matches nothing.
var ErrPathNotFound = errors.New("path not found")

var keyPattern = regexp.MustCompile(`"[^"]+"\s*:`)

// Mode selects the output layout.
type Mode string

const (
	Pretty Mode = "pretty"
	Minify Mode = "minify"
)

// ParseMode validates a mode name; the empty string means Pretty.
func ParseMode(name string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(name))) {
	case "", Pretty:
		return Pretty, nil
	case Minify, "min", "minified":
		return Minify, nil
	default:
		return "", fmt.Errorf("unknown json mode %q", name)
	}
}

// Options configures Format.
type Options struct {
	Mode     Mode
	SortKeys bool
}

// Stats describes a formatted document.
type Stats struct {
	Characters int
	Lines      int
	Keys       int
}

// Result is the formatted output plus its stats.
type Result struct {
	Output string
	Stats  Stats
}

const indent = "  "

// Format re-serialises input in the requested layout. On invalid input it
// returns a zero Result and ErrInvalidJSON.
func Format(input string, opts Options) (Result, error) {
	if !gjson.Valid(input) {
		return Result{}, ErrInvalidJSON
	}

	// Width 0 keeps every array expanded, one element per line.
	expanded := pretty.PrettyOptions(canonical(gjson.Parse(input), nil), &pretty.Options{
		Width:    0,
		Indent:   indent,
		SortKeys: opts.SortKeys,
	})
	minified := pretty.Ugly(expanded)

	var output string
	switch opts.Mode {
	case Minify:
		output = string(minified)
	case Pretty, "":
		output = strings.TrimRight(string(expanded), "\n")
	default:
		return Result{}, fmt.Errorf("unknown json mode %q", opts.Mode)
	}

	return Result{
		Output: output,
		Stats: Stats{
			Characters: utf8.RuneCountInString(output),
			Lines:      strings.Count(output, "\n") + 1,
			Keys:       len(keyPattern.FindAll(minified, -1)),
		},
	}, nil
}

// canonical appends the compact form of v to buf. A key repeated within an
// object keeps its first position and takes the last value. Scalars are
// copied verbatim.
func canonical(v gjson.Result, buf []byte) []byte {
	switch {
	case v.IsObject():
		type member struct {
			key   string
			value gjson.Result
		}
		var members []member
		seen := map[string]int{}
		v.ForEach(func(key, value gjson.Result) bool {
			if i, ok := seen[key.Str]; ok {
				members[i].value = value
				return true
			}
			seen[key.Str] = len(members)
			members = append(members, member{key: key.Raw, value: value})
			return true
		})

		buf = append(buf, '{')
		for i, m := range members {
			if i > 0 {
				buf = append(buf, ',')
			}
			buf = append(buf, m.key...)
			buf = append(buf, ':')
			buf = canonical(m.value, buf)
		}
		return append(buf, '}')
	case v.IsArray():
		buf = append(buf, '[')
		first := true
		v.ForEach(func(_, value gjson.Result) bool {
			if !first {
				buf = append(buf, ',')
			}
			first = false
			buf = canonical(value, buf)
			return true
		})
		return append(buf, ']')
	default:
		return append(buf, v.Raw...)
	}
}

// Query returns the raw JSON addressed by a gjson path, e.g. "users.0.name".
func Query(input, path string) (string, error) {
	if !gjson.Valid(input) {
		return "", ErrInvalidJSON
	}
	res := gjson.Get(input, path)
	if !res.Exists() {
		return "", fmt.Errorf("%w: %s", ErrPathNotFound, path)
	}
	return res.Raw, nil
}
