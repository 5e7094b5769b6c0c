// Package config provides configuration loading and management for the
// pack CLI: the user's settings file, PACK_* environment overrides, and
// the standard on-disk layout under ~/.pack.
package config

// Config represents the pack CLI user configuration, loaded from
// ~/.pack/user.yaml.
type Config struct {
	// Collection is the name of the package database (collection) to use.
	// Env: PACK_COLLECTION, Default: "default"
	Collection string `yaml:"collection,omitempty" mapstructure:"collection"`

	// CompilerURL is the source URL of the compiler distribution,
	// recorded in freshly initialized databases.
	// Env: PACK_COMPILER_URL
	CompilerURL string `yaml:"compilerUrl,omitempty" mapstructure:"compilerUrl"`

	// InstallDir is the shared package-installation directory.
	// Env: PACK_INSTALL_DIR, Default: ~/.pack/install
	InstallDir string `yaml:"installDir,omitempty" mapstructure:"installDir"`

	// BinDir is the directory launchers are installed into.
	// Env: PACK_BIN_DIR, Default: ~/.pack/bin
	BinDir string `yaml:"binDir,omitempty" mapstructure:"binDir"`

	// Log contains logging-related settings.
	Log LogConfig `yaml:"log,omitempty" mapstructure:"log"`
}

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: false. Override with --timestamps flag.
	Timestamps *bool `yaml:"timestamps,omitempty" mapstructure:"timestamps"`
}

// DefaultCompilerURL is the canonical compiler distribution repository.
const DefaultCompilerURL = "https://github.com/idris-lang/Idris2"

// DefaultConfig returns a Config with all default values populated.
// Used by `pack config init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		Collection:  "default",
		CompilerURL: DefaultCompilerURL,
		InstallDir:  "~/.pack/install",
		BinDir:      "~/.pack/bin",
	}
}

// WithDefaults returns a copy of the config with empty fields replaced
// by their defaults.
func (c *Config) WithDefaults() *Config {
	out := *c
	def := DefaultConfig()

	if out.Collection == "" {
		out.Collection = def.Collection
	}
	if out.CompilerURL == "" {
		out.CompilerURL = def.CompilerURL
	}
	if out.InstallDir == "" {
		out.InstallDir = def.InstallDir
	}
	if out.BinDir == "" {
		out.BinDir = def.BinDir
	}
	return &out
}
