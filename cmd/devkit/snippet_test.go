package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addSnippet(t *testing.T, args ...string) string {
	t.Helper()
	res, err := executeCommand(t, nil, append([]string{"snippet", "add"}, args...)...)
	require.NoError(t, err)
	require.Contains(t, res.stdout, "Added snippet")

	start := strings.LastIndex(res.stdout, "(")
	end := strings.LastIndex(res.stdout, ")")
	require.True(t, start >= 0 && end > start, res.stdout)
	return res.stdout[start+1 : end]
}

func TestSnippetAddAndList(t *testing.T) {
	home := setupHome(t)
	useFakeClipboard(t)

	id := addSnippet(t, "--title", "useDebounce", "--category", "react-hooks", "--tags", "react, hooks", "--code", "const x = 1")
	addSnippet(t, "--title", "Flex center", "--category", "CSS", "--tags", "layout", "--code", ".c { display: flex; }")

	_, err := os.Stat(filepath.Join(home, ".devkit", "storage.json"))
	require.NoError(t, err, "default file store should be created")

	res, err := executeCommand(t, nil, "snippet", "list")
	require.NoError(t, err)
	assert.Contains(t, res.stdout, "ID")
	assert.Contains(t, res.stdout, "TITLE")
	assert.Contains(t, res.stdout, id)
	assert.Contains(t, res.stdout, "React Hooks")
	assert.Contains(t, res.stdout, "react, hooks")
	assert.Less(t, strings.Index(res.stdout, "Flex center"), strings.Index(res.stdout, "useDebounce"), "newest first")

	res, err = executeCommand(t, nil, "snippet", "list", "LAYOUT")
	require.NoError(t, err)
	assert.Contains(t, res.stdout, "Flex center")
	assert.NotContains(t, res.stdout, "useDebounce")

	res, err = executeCommand(t, nil, "snippet", "list", "--category", "react-hooks", "--json")
	require.NoError(t, err)
	var payload snippetJSONPayload
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &payload))
	require.Equal(t, 1, payload.Count)
	assert.Equal(t, "useDebounce", payload.Snippets[0].Title)
	assert.Equal(t, []string{"react", "hooks"}, payload.Snippets[0].Tags)

	res, err = executeCommand(t, nil, "snippet", "list", "--fuzzy", "fcen")
	require.NoError(t, err)
	assert.Contains(t, res.stdout, "Flex center")
	assert.NotContains(t, res.stdout, "useDebounce")
}

func TestSnippetListEmpty(t *testing.T) {
	setupHome(t)
	useFakeClipboard(t)

	res, err := executeCommand(t, nil, "snippet", "list")
	require.NoError(t, err)
	assert.Contains(t, res.stdout, "No snippets saved yet.")

	res, err = executeCommand(t, nil, "snippet", "list", "--json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"count":0,"snippets":[]}`, res.stdout)
}

func TestSnippetAddValidation(t *testing.T) {
	setupHome(t)
	useFakeClipboard(t)

	_, err := executeCommand(t, nil, "snippet", "add", "--title", "   ", "--code", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to add snippet: saving the snippet")
	assert.Contains(t, err.Error(), "title")

	_, err = executeCommand(t, nil, "snippet", "add", "--title", "t", "--code", "x", "--category", "golang")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "react-hooks, utility-functions")

	_, err = executeCommand(t, nil, "snippet", "add", "--title", "t", "--code", "x", "--category", "all")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing the category")
}

func TestSnippetAddReadsCodeFromStdin(t *testing.T) {
	setupHome(t)
	useFakeClipboard(t)

	res, err := executeCommand(t, strings.NewReader("echo hi\n"), "snippet", "add", "--title", "greet")
	require.NoError(t, err)
	id := res.stdout[strings.LastIndex(res.stdout, "(")+1 : strings.LastIndex(res.stdout, ")")]

	res, err = executeCommand(t, nil, "snippet", "show", id)
	require.NoError(t, err)
	assert.Contains(t, res.stdout, "greet")
	assert.Contains(t, res.stdout, "Category:    Other")
	assert.Contains(t, res.stdout, "Description: (none)")
	assert.True(t, strings.HasSuffix(res.stdout, "\necho hi\n"))
}

func TestSnippetCopy(t *testing.T) {
	setupHome(t)
	cb := useFakeClipboard(t)

	id := addSnippet(t, "--title", "curl", "--code", "curl -sSL example.com")

	res, err := executeCommand(t, nil, "snippet", "copy", id)
	require.NoError(t, err)
	assert.Equal(t, "curl -sSL example.com", cb.Last())
	assert.Contains(t, res.stderr, `Copied "curl"`)

	_, err = executeCommand(t, nil, "snippet", "copy", "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "snippet not found")
}

func TestSnippetRemove(t *testing.T) {
	setupHome(t)
	useFakeClipboard(t)

	id := addSnippet(t, "--title", "tmp", "--code", "x")

	_, err := executeCommand(t, strings.NewReader("y\n"), "snippet", "rm", id)
	require.Error(t, err, "non-interactive removal needs --force")
	assert.Contains(t, err.Error(), "--force")

	res, err := executeCommand(t, nil, "snippet", "rm", "--force", id)
	require.NoError(t, err)
	assert.Contains(t, res.stdout, "Removed snippet")

	res, err = executeCommand(t, nil, "snippet", "list")
	require.NoError(t, err)
	assert.Contains(t, res.stdout, "No snippets saved yet.")
}

func TestSnippetRemoveConfirmsOnTerminal(t *testing.T) {
	setupHome(t)
	useFakeClipboard(t)

	id := addSnippet(t, "--title", "tmp", "--code", "x")

	original := termIsTerminal
	termIsTerminal = func(int) bool { return true }
	t.Cleanup(func() { termIsTerminal = original })

	stdin, err := os.CreateTemp(t.TempDir(), "stdin")
	require.NoError(t, err)
	_, err = stdin.WriteString("n\n")
	require.NoError(t, err)
	_, err = stdin.Seek(0, 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = stdin.Close() })

	res, err := executeCommand(t, stdin, "snippet", "rm", id)
	require.NoError(t, err)
	assert.Contains(t, res.stdout, `Delete snippet "tmp"`)
	assert.Contains(t, res.stdout, "Cancelled.")
}

func TestSnippetExportImport(t *testing.T) {
	setupHome(t)
	useFakeClipboard(t)

	addSnippet(t, "--title", "one", "--code", "1", "--tags", "a")
	addSnippet(t, "--title", "two", "--code", "2")

	exportPath := filepath.Join(t.TempDir(), "snippets.yaml")
	res, err := executeCommand(t, nil, "snippet", "export", "--output", exportPath)
	require.NoError(t, err)
	assert.Contains(t, res.stdout, "Exported 2 snippet(s)")

	data, err := os.ReadFile(exportPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "title: two")

	res, err = executeCommand(t, nil, "snippet", "export")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(res.stdout)))

	// A fresh home starts empty; importing restores both entries.
	setupHome(t)
	res, err = executeCommand(t, nil, "snippet", "import", exportPath)
	require.NoError(t, err)
	assert.Contains(t, res.stdout, "Imported 2 snippet(s)")

	res, err = executeCommand(t, nil, "snippet", "import", exportPath)
	require.NoError(t, err)
	assert.Contains(t, res.stdout, "Imported 0 snippet(s)", "existing ids are skipped")

	res, err = executeCommand(t, nil, "snippet", "list")
	require.NoError(t, err)
	assert.Contains(t, res.stdout, "one")
	assert.Contains(t, res.stdout, "two")
}

func TestSnippetImportRejectsInvalidEntries(t *testing.T) {
	setupHome(t)
	useFakeClipboard(t)

	path := writeFile(t, t.TempDir(), "bad.json", `[{"title":"ok","code":"1","category":"CSS"},{"title":"","code":"2","category":"CSS"}]`)
	_, err := executeCommand(t, nil, "snippet", "import", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "snippet 2")
}

func TestSnippetsWithSQLiteBackend(t *testing.T) {
	home := setupHome(t)
	useFakeClipboard(t)
	dbPath := filepath.Join(home, "snippets.db")
	cfg := writeFile(t, home, "config.toml", "version = \"1.0\"\n\n[storage]\nbackend = \"sqlite\"\npath = \""+filepath.ToSlash(dbPath)+"\"\n")

	res, err := executeCommand(t, nil, "--config", cfg, "snippet", "add", "--title", "persisted", "--code", "x")
	require.NoError(t, err)
	require.Contains(t, res.stdout, "Added snippet")

	_, err = os.Stat(dbPath)
	require.NoError(t, err)

	res, err = executeCommand(t, nil, "--config", cfg, "snippet", "list")
	require.NoError(t, err)
	assert.Contains(t, res.stdout, "persisted")
}
