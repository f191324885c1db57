package svgjsx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"blank", "   \n", ""},
		{"stroke width", `<path stroke-width="2"/>`, `<path strokeWidth="2"/>`},
		{"class and for", `<label class="a" for="b">`, `<label className="a" htmlFor="b">`},
		{"unknown attribute untouched", `<rect data-x="1" aria-hidden="true"/>`, `<rect data-x="1" aria-hidden="true"/>`},
		{"xlink", `<svg xmlns:xlink="x"><use xlink:href="#a"/></svg>`, `<svg xmlnsXlink="x"><use xlinkHref="#a"/></svg>`},
		{"every occurrence", `<a stop-color="1"/><b stop-color="2"/>`, `<a stopColor="1"/><b stopColor="2"/>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Convert(tt.input))
		})
	}
}

func TestAnalyze(t *testing.T) {
	svg := `<svg class="icon"><path stroke-width="2" stroke-linecap="round"><circle r="2"/><rect></rect><path d="M0"></svg>`

	rep := Analyze(svg)
	assert.Equal(t, Convert(svg), rep.JSX)
	require.Len(t, rep.Hits, 3)
	assert.Equal(t, "className=", rep.Hits[0].Rule.To)
	assert.Equal(t, 1, rep.Hits[1].Count)
	assert.Equal(t, []string{"<path> left open 2 time(s); JSX requires <path ... />"}, rep.Warnings)

	assert.Zero(t, Analyze(""))
}

func TestComponent(t *testing.T) {
	got := Component(`<svg class="x"/>`, "")
	assert.Equal(t, "export function IconComponent() {\n  return (\n    <svg className=\"x\"/>\n  );\n}", got)

	assert.Contains(t, Component(`<svg/>`, "arrow-left icon"), "export function ArrowLeftIcon()")
	assert.Empty(t, Component(" ", "x"))
}

func TestComponentName(t *testing.T) {
	assert.Equal(t, "ArrowLeft", ComponentName("arrow left"))
	assert.Equal(t, "MyIcon", ComponentName("myIcon"))
	assert.Equal(t, "Icon24", ComponentName("24"))
	assert.Equal(t, DefaultComponentName, ComponentName("--"))
}

func TestOutline(t *testing.T) {
	svg := `<svg viewBox="0 0 24 24"><g><path d="M0 0"/></g><circle r="4"/></svg>`

	out, err := Outline(svg)
	require.NoError(t, err)
	assert.Equal(t, "svg viewBox=\"0 0 24 24\"\n  g\n    path d=\"M0 0\"\n  circle r=\"4\"", out)

	out, err = Outline("")
	require.NoError(t, err)
	assert.Empty(t, out)

	_, err = Outline(`<svg><path d="`)
	require.Error(t, err)
}

func TestElements(t *testing.T) {
	n, err := Elements(`<svg><path/><g><path/></g></svg>`, "path")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestPreviewHTML(t *testing.T) {
	svg := `<svg width="10"><script>alert(1)</script><path d="M0" onclick="x()"/></svg>`

	raw := PreviewHTML(svg, "", false)
	assert.Contains(t, raw, "<title>SVG preview</title>")
	assert.Contains(t, raw, "<script>")

	safe := PreviewHTML(svg, "<b>", true)
	assert.Contains(t, safe, "&lt;b&gt;")
	assert.NotContains(t, safe, "script")
	assert.NotContains(t, safe, "onclick")
	assert.Contains(t, safe, `d="M0"`)
}

func TestDiff(t *testing.T) {
	d := Diff("<svg>\n<path stroke-width=\"1\"/>\n</svg>")
	assert.Contains(t, d, "+<path strokeWidth=\"1\"/>")
	assert.Empty(t, Diff(`<svg/>`))
}
