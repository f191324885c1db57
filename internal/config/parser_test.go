package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	deverrors "github.com/alexisbeaulieu97/devkit/pkg/errors"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "nope.yaml"))
	require.NoError(t, err)
	require.Equal(t, DefaultVersion, cfg.Version)
	require.Equal(t, "file", cfg.Storage.Backend)
	require.Equal(t, filepath.Join(home, ".devkit", "storage.json"), cfg.Storage.Path)
	require.Equal(t, DefaultStorageKey, cfg.Storage.Key)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, "text", cfg.Log.Format)
	require.Equal(t, "harmonic", cfg.Palette.Mode)
}

func TestParseConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cases := []struct {
		name     string
		file     string
		contents string
		assert   func(t *testing.T, cfg *Config, err error)
	}{
		{
			name: "yaml with sqlite backend",
			file: "config.yaml",
			contents: `version: "1.0"
log:
  level: debug
  format: json
storage:
  backend: sqlite
palette:
  mode: pentagram
  shades_on_select: true
`,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, "debug", cfg.Log.Level)
				require.Equal(t, "json", cfg.Log.Format)
				require.Equal(t, filepath.Join(home, ".devkit", "storage.db"), cfg.Storage.Path)
				require.Equal(t, "pentagram", cfg.Palette.Mode)
				require.True(t, cfg.Palette.ShadesOnSelect)
			},
		},
		{
			name: "toml with home-relative path",
			file: "config.toml",
			contents: `version = "1.0"

[storage]
backend = "file"
path = "~/snips.json"

[clipboard]
disable_osc52 = true
`,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, filepath.Join(home, "snips.json"), cfg.Storage.Path)
				require.True(t, cfg.Clipboard.DisableOSC52)
			},
		},
		{
			name:     "memory backend needs no path",
			file:     "config.yml",
			contents: "storage:\n  backend: memory\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, "", cfg.Storage.Path)
			},
		},
		{
			name:     "empty yaml is all defaults",
			file:     "config.yaml",
			contents: "",
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, "file", cfg.Storage.Backend)
			},
		},
		{
			name:     "yaml syntax error carries line",
			file:     "config.yaml",
			contents: "version: \"1.0\"\nlog:\n  level: [debug\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				var parseErr *deverrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Nil(t, cfg)
			},
		},
		{
			name:     "unknown yaml field is rejected",
			file:     "config.yaml",
			contents: "colour: blue\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				var parseErr *deverrors.ParseError
				require.ErrorAs(t, err, &parseErr)
			},
		},
		{
			name:     "bad backend fails validation",
			file:     "config.yaml",
			contents: "storage:\n  backend: redis\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				var valErr *deverrors.ValidationError
				require.ErrorAs(t, err, &valErr)
				require.Equal(t, "storage.backend", valErr.Field)
			},
		},
		{
			name:     "bad log level fails validation",
			file:     "config.toml",
			contents: "[log]\nlevel = \"chatty\"\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				var valErr *deverrors.ValidationError
				require.ErrorAs(t, err, &valErr)
				require.Equal(t, "log.level", valErr.Field)
			},
		},
		{
			name:     "bad storage key fails validation",
			file:     "config.yaml",
			contents: "storage:\n  key: \"has spaces\"\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				var valErr *deverrors.ValidationError
				require.ErrorAs(t, err, &valErr)
				require.Equal(t, "storage.key", valErr.Field)
			},
		},
		{
			name:     "unsupported extension",
			file:     "config.ini",
			contents: "x=1",
			assert: func(t *testing.T, cfg *Config, err error) {
				var valErr *deverrors.ValidationError
				require.ErrorAs(t, err, &valErr)
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tc.file)
			require.NoError(t, os.WriteFile(path, []byte(tc.contents), 0o644))

			cfg, err := Load(path)
			tc.assert(t, cfg, err)
		})
	}
}

func TestResolvePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("DEVKIT_CONFIG", "")

	path, err := ResolvePath("")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, ".devkit", "config.yaml"), path)

	t.Setenv("DEVKIT_CONFIG", "~/alt.toml")
	path, err = ResolvePath("")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, "alt.toml"), path)

	path, err = ResolvePath("/etc/devkit.yaml")
	require.NoError(t, err)
	require.Equal(t, "/etc/devkit.yaml", path)
}
