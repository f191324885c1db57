package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	deverrors "github.com/alexisbeaulieu97/devkit/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Default returns a configuration with every default applied.
func Default() (*Config, error) {
	cfg := &Config{}
	if err := applyDefaults(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads the configuration at path. A missing file yields the defaults;
// any other read, decode or validation failure is returned.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default()
		}
		return nil, deverrors.NewParseError(path, 0, err)
	}

	cfg, err := Parse(path, data)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes data using the format implied by path's extension, applies
// defaults and validates the result.
func Parse(path string, data []byte) (*Config, error) {
	var cfg Config

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml", "":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, deverrors.NewParseError(path, extractLine(err), err)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return nil, deverrors.NewParseError(path, tomlLine(err), err)
		}
	default:
		return nil, deverrors.NewValidationError("config", fmt.Sprintf("unsupported configuration file extension %q", ext), nil)
	}

	if err := applyDefaults(&cfg); err != nil {
		return nil, err
	}
	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyDefaults(cfg *Config) error {
	if cfg.Version == "" {
		cfg.Version = DefaultVersion
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}
	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = DefaultBackend
	}
	if cfg.Storage.Key == "" {
		cfg.Storage.Key = DefaultStorageKey
	}
	if cfg.Palette.Mode == "" {
		cfg.Palette.Mode = DefaultPaletteMode
	}

	if cfg.Storage.Path == "" && cfg.Storage.Backend != "memory" {
		dir, err := DataDir()
		if err != nil {
			return fmt.Errorf("resolve data directory: %w", err)
		}
		name := defaultFileStore
		if cfg.Storage.Backend == "sqlite" {
			name = defaultSQLiteStore
		}
		cfg.Storage.Path = filepath.Join(dir, name)
	}

	expanded, err := ExpandHome(cfg.Storage.Path)
	if err != nil {
		return err
	}
	cfg.Storage.Path = expanded

	if cfg.Log.File != "" {
		if cfg.Log.File, err = ExpandHome(cfg.Log.File); err != nil {
			return err
		}
	}
	return nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}

func tomlLine(err error) int {
	var perr toml.ParseError
	if errors.As(err, &perr) {
		return perr.Position.Line
	}
	return 0
}
