package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVersionCommandOutputsBuildInfo(t *testing.T) {
	originalVersion := version
	originalCommit := commit
	originalDate := date
	t.Cleanup(func() {
		version = originalVersion
		commit = originalCommit
		date = originalDate
	})

	version = "1.2.3"
	commit = "abcdef1"
	date = "2026-03-01"

	// A broken config must not stop version from printing.
	t.Setenv("DEVKIT_CONFIG", writeFile(t, t.TempDir(), "config.yaml", "version: [\n"))

	res, err := executeCommand(t, nil, "version")
	require.NoError(t, err)

	require.Contains(t, res.stdout, "devkit 1.2.3")
	require.Contains(t, res.stdout, "abcdef1")
	require.Contains(t, res.stdout, "2026-03-01")
}
