package config

// Config is the devkit configuration document, read from YAML or TOML.
type Config struct {
	Version   string          `yaml:"version" toml:"version" validate:"required,semver"`
	Log       LogConfig       `yaml:"log,omitempty" toml:"log"`
	Storage   StorageConfig   `yaml:"storage,omitempty" toml:"storage"`
	Clipboard ClipboardConfig `yaml:"clipboard,omitempty" toml:"clipboard"`
	Palette   PaletteConfig   `yaml:"palette,omitempty" toml:"palette"`
}

// LogConfig controls the ports.Logger built at startup.
type LogConfig struct {
	Level  string `yaml:"level,omitempty" toml:"level" validate:"omitempty,oneof=debug info warn error"`
	Format string `yaml:"format,omitempty" toml:"format" validate:"omitempty,oneof=text json"`
	// File receives log output while the dashboard owns the terminal.
	File string `yaml:"file,omitempty" toml:"file"`
}

// StorageConfig selects the key/value backend holding snippets.
type StorageConfig struct {
	Backend string `yaml:"backend,omitempty" toml:"backend" validate:"required,oneof=file sqlite memory"`
	Path    string `yaml:"path,omitempty" toml:"path" validate:"required_unless=Backend memory"`
	Key     string `yaml:"key,omitempty" toml:"key" validate:"required,storage_key"`
}

// ClipboardConfig tunes clipboard writes.
type ClipboardConfig struct {
	DisableOSC52 bool `yaml:"disable_osc52,omitempty" toml:"disable_osc52"`
}

// PaletteConfig holds palette generator defaults.
type PaletteConfig struct {
	Mode           string `yaml:"mode,omitempty" toml:"mode" validate:"omitempty,oneof=harmonic pentagram"`
	ShadesOnSelect bool   `yaml:"shades_on_select,omitempty" toml:"shades_on_select"`
}

// Defaults.
const (
	DefaultVersion     = "1.0"
	DefaultStorageKey  = "devtools-snippets"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultBackend     = "file"
	DefaultPaletteMode = "harmonic"

	defaultDirName     = ".devkit"
	defaultConfigName  = "config.yaml"
	defaultFileStore   = "storage.json"
	defaultSQLiteStore = "storage.db"
	configPathEnvVar   = "DEVKIT_CONFIG"
)
