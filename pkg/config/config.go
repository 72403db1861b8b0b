package config

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	vcerrors "github.com/vcode-cli/vcode/pkg/errors"
)

// Config represents the application configuration
type Config struct {
	ProjectsRoot  string                  `mapstructure:"projects_root" toml:"projects_root"`
	DefaultEditor string                  `mapstructure:"default_editor" toml:"default_editor"`
	Editors       map[string]EditorConfig `mapstructure:"editors" toml:"editors"`
	Registry      RegistryConfig          `mapstructure:"registry" toml:"registry"`
	Scan          ScanConfig              `mapstructure:"scan" toml:"scan"`
}

// EditorConfig describes how to launch one editor.
type EditorConfig struct {
	Command   string   `mapstructure:"command" toml:"command"`
	Args      []string `mapstructure:"args" toml:"args,omitempty"`
	ReuseFlag string   `mapstructure:"reuse_flag" toml:"reuse_flag,omitempty"`
}

// RegistryConfig holds project registry configuration
type RegistryConfig struct {
	DatabasePath string `mapstructure:"database_path" toml:"database_path"`
}

// ScanConfig holds project scan defaults
type ScanConfig struct {
	DefaultDepth  int    `mapstructure:"default_depth" toml:"default_depth"`
	DefaultFilter string `mapstructure:"default_filter" toml:"default_filter"`
}

// GetEditor returns the configured launch settings for name. Unknown
// editors fall back to a bare command so any binary on PATH still
// works.
func (c *Config) GetEditor(name string) EditorConfig {
	if ec, ok := c.Editors[name]; ok {
		return ec
	}
	return EditorConfig{Command: name, ReuseFlag: "-r"}
}

// Load loads the configuration from file and environment variables
func Load() (*Config, error) {
	config := &Config{}

	// Set defaults
	setDefaults()

	// Unmarshal the config
	if err := viper.Unmarshal(config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	// Expand paths
	if err := expandPaths(config); err != nil {
		return nil, errors.Wrap(err, "failed to expand paths")
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "config validation failed")
	}

	return config, nil
}

// Validate validates the configuration and returns any validation errors.
func (c *Config) Validate() error {
	if c.Scan.DefaultDepth < 1 {
		return vcerrors.NewConfigError("scan.default_depth", "must be at least 1")
	}
	if c.Scan.DefaultFilter != "auto" && c.Scan.DefaultFilter != "all" {
		return vcerrors.NewConfigError("scan.default_filter", "must be 'auto' or 'all'")
	}
	if c.DefaultEditor == "" {
		return vcerrors.NewConfigError("default_editor", "must not be empty")
	}
	return nil
}

// Path returns the location of the config file.
func Path() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get home directory")
	}
	return filepath.Join(homeDir, ".config", "vcode", "config.toml"), nil
}

// Save writes the configuration to the default config file as TOML.
func Save(c *Config) error {
	path, err := Path()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return vcerrors.NewConfigErrorWithCause("", "failed to create config directory", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return vcerrors.NewConfigErrorWithCause("", "failed to encode config", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return vcerrors.NewConfigErrorWithCause("", "failed to write config file", err)
	}
	return nil
}

// DefaultEditors returns the built-in editor launch table.
func DefaultEditors() map[string]EditorConfig {
	vscodeLike := func(command string) EditorConfig {
		return EditorConfig{
			Command:   command,
			Args:      []string{"--no-sandbox"},
			ReuseFlag: "-r",
		}
	}
	return map[string]EditorConfig{
		"code":     vscodeLike("code"),
		"cursor":   vscodeLike("cursor"),
		"vscodium": vscodeLike("vscodium"),
		"zed":      {Command: "zed", ReuseFlag: "-r"},
		"nvim":     {Command: "nvim", ReuseFlag: "-r"},
		"vim":      {Command: "vim", ReuseFlag: "-r"},
		"emacs":    {Command: "emacs", ReuseFlag: "-r"},
		"sublime":  {Command: "subl", ReuseFlag: "-r"},
	}
}

// setDefaults sets default configuration values
func setDefaults() {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fall back to current directory if home dir can't be determined
		homeDir = "."
	}

	viper.SetDefault("projects_root", filepath.Join(homeDir, "projects"))
	viper.SetDefault("default_editor", "code")
	viper.SetDefault("editors", DefaultEditors())

	// Registry defaults
	viper.SetDefault("registry.database_path", filepath.Join(homeDir, ".local", "share", "vcode", "projects.db"))

	// Scan defaults
	viper.SetDefault("scan.default_depth", 1)
	viper.SetDefault("scan.default_filter", "auto")
}

// expandPaths expands ~ in paths
func expandPaths(config *Config) error {
	var err error

	config.ProjectsRoot, err = expandPath(config.ProjectsRoot)
	if err != nil {
		return err
	}

	config.Registry.DatabasePath, err = expandPath(config.Registry.DatabasePath)
	if err != nil {
		return err
	}

	return nil
}

// expandPath expands ~ to home directory
func expandPath(path string) (string, error) {
	if len(path) == 0 || path[0] != '~' {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, path[1:]), nil
}
