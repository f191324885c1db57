package config

import (
	"os"
	"path/filepath"
	"strings"
)

// DataDir returns the directory holding devkit's state (~/.devkit).
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, defaultDirName), nil
}

// ResolvePath picks the configuration file: an explicit flag value wins, then
// $DEVKIT_CONFIG, then ~/.devkit/config.yaml.
func ResolvePath(flagValue string) (string, error) {
	if strings.TrimSpace(flagValue) != "" {
		return ExpandHome(flagValue)
	}
	if env := os.Getenv(configPathEnvVar); env != "" {
		return ExpandHome(env)
	}
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, defaultConfigName), nil
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
