package svgjsx

import (
	"fmt"
	"html"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/microcosm-cc/bluemonday"
)

// Outline parses svg as XML and renders its element tree, one element per
// line, indented two spaces per level.
func Outline(svg string) (string, error) {
	if strings.TrimSpace(svg) == "" {
		return "", nil
	}

	doc, err := xmlquery.Parse(strings.NewReader(svg))
	if err != nil {
		return "", fmt.Errorf("parse svg: %w", err)
	}

	var b strings.Builder
	var walk func(n *xmlquery.Node, depth int)
	walk = func(n *xmlquery.Node, depth int) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != xmlquery.ElementNode {
				continue
			}
			b.WriteString(strings.Repeat("  ", depth))
			b.WriteString(qualifiedName(c.Prefix, c.Data))
			for _, a := range c.Attr {
				fmt.Fprintf(&b, " %s=%q", qualifiedName(a.Name.Space, a.Name.Local), a.Value)
			}
			b.WriteByte('\n')
			walk(c, depth+1)
		}
	}
	walk(doc, 0)

	return strings.TrimRight(b.String(), "\n"), nil
}

// Elements counts elements by name, using an XPath query over the document.
func Elements(svg, name string) (int, error) {
	doc, err := xmlquery.Parse(strings.NewReader(svg))
	if err != nil {
		return 0, fmt.Errorf("parse svg: %w", err)
	}
	nodes, err := xmlquery.QueryAll(doc, "//*[local-name()='"+name+"']")
	if err != nil {
		return 0, fmt.Errorf("query %s: %w", name, err)
	}
	return len(nodes), nil
}

func qualifiedName(prefix, local string) string {
	if prefix == "" {
		return local
	}
	return prefix + ":" + local
}

const previewTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
<style>body{display:flex;align-items:center;justify-content:center;min-height:100vh;margin:0;background:#f8fafc}</style>
</head>
<body>
%s
</body>
</html>
`

// PreviewHTML embeds svg in a standalone HTML page. With sanitize the markup
// is first filtered through an SVG allow-list that drops scripts, event
// handlers and foreign content.
func PreviewHTML(svg, title string, sanitize bool) string {
	markup := svg
	if sanitize {
		markup = svgPolicy().Sanitize(svg)
	}
	if title == "" {
		title = "SVG preview"
	}
	return fmt.Sprintf(previewTemplate, html.EscapeString(title), markup)
}

func svgPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements(append([]string{"svg", "g", "defs", "title", "desc", "symbol",
		"lineargradient", "radialgradient", "clippath", "mask", "text", "tspan"}, VoidElements...)...)
	p.AllowAttrs(
		"viewbox", "width", "height", "xmlns", "fill", "stroke", "stroke-width",
		"stroke-linecap", "stroke-linejoin", "fill-rule", "clip-rule", "fill-opacity",
		"stroke-opacity", "stop-color", "stop-opacity", "stroke-dasharray",
		"stroke-dashoffset", "d", "cx", "cy", "r", "rx", "ry", "x", "y", "x1", "y1",
		"x2", "y2", "points", "offset", "transform", "opacity", "id", "class",
		"gradientunits", "gradienttransform", "clip-path", "mask",
	).Globally()
	return p
}
