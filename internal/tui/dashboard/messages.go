package dashboard

// Tab identifies one of the workbench tools.
type Tab int

const (
	TabShadow Tab = iota
	TabGradient
	TabPalette
	TabJSON
	TabSVG
	TabSnippets
	tabCount
)

var tabTitles = [tabCount]string{
	TabShadow:   "Box Shadow",
	TabGradient: "Gradient",
	TabPalette:  "Palette",
	TabJSON:     "JSON",
	TabSVG:      "SVG→JSX",
	TabSnippets: "Snippets",
}

// String returns the tab title.
func (t Tab) String() string {
	if t < 0 || t >= tabCount {
		return "unknown"
	}
	return tabTitles[t]
}

// Clipboard Messages

// CopiedMsg reports a successful clipboard write
type CopiedMsg struct {
	Label string
}

// CopyFailedMsg reports that no clipboard backend accepted the text
type CopyFailedMsg struct {
	Label string
	Err   error
}

// clearCopiedMsg resets the copied indicator. Seq guards against an older
// tick clearing a newer copy.
type clearCopiedMsg struct {
	Seq int
}

// Snippet Messages

// SnippetsLoadedMsg carries the result of the initial snippet load
type SnippetsLoadedMsg struct {
	Err error
}

// Error Messages

// ErrorMsg indicates a general error occurred
type ErrorMsg struct {
	Message string
}

// ClearErrorMsg requests error banner dismissal
type ClearErrorMsg struct{}
