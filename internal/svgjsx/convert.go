// Package svgjsx rewrites SVG markup into JSX-compatible markup using
// literal attribute substitutions, and offers terminal and HTML previews.
package svgjsx

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/alexisbeaulieu97/devkit/pkg/diff"
)

// DefaultComponentName names the generated component when none is given.
const DefaultComponentName = "IconComponent"

// Rule is one literal substitution applied to the markup.
type Rule struct {
	From string
	To   string
}

// Rules lists the substitutions in the order Convert applies them.
var Rules = []Rule{
	{"class=", "className="},
	{"for=", "htmlFor="},
	{"stroke-width=", "strokeWidth="},
	{"stroke-linecap=", "strokeLinecap="},
	{"stroke-linejoin=", "strokeLinejoin="},
	{"fill-rule=", "fillRule="},
	{"clip-rule=", "clipRule="},
	{"fill-opacity=", "fillOpacity="},
	{"stroke-opacity=", "strokeOpacity="},
	{"stop-color=", "stopColor="},
	{"stop-opacity=", "stopOpacity="},
	{"stroke-dasharray=", "strokeDasharray="},
	{"stroke-dashoffset=", "strokeDashoffset="},
	{"xmlns:xlink=", "xmlnsXlink="},
	{"xlink:href=", "xlinkHref="},
}

// VoidElements are SVG elements expected to be written self-closed in JSX.
var VoidElements = []string{"path", "circle", "rect", "line", "polyline", "polygon", "ellipse", "stop", "use"}

var openTag = regexp.MustCompile(`<(\w+)([^>]*)>`)

// Convert applies Rules to svg. Blank input yields "". Anything that is not
// matched by a rule passes through untouched.
func Convert(svg string) string {
	if strings.TrimSpace(svg) == "" {
		return ""
	}
	out := svg
	for _, r := range Rules {
		out = strings.ReplaceAll(out, r.From, r.To)
	}
	return out
}

// Hit counts how many times a rule fired.
type Hit struct {
	Rule  Rule
	Count int
}

// Report is the result of Analyze.
type Report struct {
	JSX      string
	Hits     []Hit
	Warnings []string
}

// Analyze converts svg and reports which rules fired and which void
// elements were left open. The JSX is identical to Convert's.
func Analyze(svg string) Report {
	if strings.TrimSpace(svg) == "" {
		return Report{}
	}

	var hits []Hit
	out := svg
	for _, r := range Rules {
		if n := strings.Count(out, r.From); n > 0 {
			hits = append(hits, Hit{Rule: r, Count: n})
			out = strings.ReplaceAll(out, r.From, r.To)
		}
	}

	return Report{JSX: out, Hits: hits, Warnings: openVoidElements(out)}
}

func openVoidElements(markup string) []string {
	void := make(map[string]bool, len(VoidElements))
	for _, name := range VoidElements {
		void[name] = true
	}

	open := map[string]int{}
	for _, m := range openTag.FindAllStringSubmatch(markup, -1) {
		name := strings.ToLower(m[1])
		if !void[name] || strings.HasSuffix(m[0], "/>") {
			continue
		}
		open[name]++
	}

	var warnings []string
	for name, n := range open {
		closed := strings.Count(strings.ToLower(markup), "</"+name+">")
		if missing := n - closed; missing > 0 {
			warnings = append(warnings, fmt.Sprintf("<%s> left open %d time(s); JSX requires <%s ... />", name, missing, name))
		}
	}
	sort.Strings(warnings)
	return warnings
}

// Component wraps the converted markup in a React function component. An
// empty name falls back to DefaultComponentName.
func Component(svg, name string) string {
	if strings.TrimSpace(svg) == "" {
		return ""
	}
	return fmt.Sprintf("export function %s() {\n  return (\n    %s\n  );\n}", ComponentName(name), Convert(svg))
}

// ComponentName turns free text such as "arrow-left icon" into a valid
// PascalCase identifier ("ArrowLeftIcon").
func ComponentName(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	if len(words) == 0 {
		return DefaultComponentName
	}

	title := cases.Title(language.Und, cases.NoLower)
	var b strings.Builder
	for _, w := range words {
		b.WriteString(title.String(w))
	}

	out := b.String()
	if unicode.IsDigit([]rune(out)[0]) {
		out = "Icon" + out
	}
	return out
}

// Diff returns a unified diff between svg and its JSX form.
func Diff(svg string) string {
	return diff.Unified(svg, Convert(svg), "input.svg", "output.jsx")
}
