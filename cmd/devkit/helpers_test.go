package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/devkit/internal/clipboard"
	"github.com/alexisbeaulieu97/devkit/internal/ports"
)

type commandResult struct {
	stdout string
	stderr string
}

// executeCommand runs the root command with args, feeding stdin when given.
func executeCommand(t *testing.T, stdin io.Reader, args ...string) (commandResult, error) {
	t.Helper()

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	if stdin != nil {
		root.SetIn(stdin)
	}
	root.SetArgs(args)

	err := root.Execute()
	return commandResult{stdout: stdout.String(), stderr: stderr.String()}, err
}

// setupHome isolates HOME and the config override so the default file store
// lands in a temp directory.
func setupHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("DEVKIT_CONFIG", "")
	return home
}

// useFakeClipboard replaces the system clipboard for the duration of the test.
func useFakeClipboard(t *testing.T) *clipboard.Memory {
	t.Helper()
	fake := &clipboard.Memory{}
	original := newClipboard
	newClipboard = func(ports.Logger, bool) ports.Clipboard { return fake }
	t.Cleanup(func() { newClipboard = original })
	return fake
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
