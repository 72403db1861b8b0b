package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vcerrors "github.com/vcode-cli/vcode/pkg/errors"
)

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "projects"), cfg.ProjectsRoot)
	assert.Equal(t, "code", cfg.DefaultEditor)
	assert.Equal(t, filepath.Join(home, ".local", "share", "vcode", "projects.db"), cfg.Registry.DatabasePath)
	assert.Equal(t, 1, cfg.Scan.DefaultDepth)
	assert.Equal(t, "auto", cfg.Scan.DefaultFilter)
}

func TestLoadExpandsTilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("projects_root", "~/src")
	viper.Set("registry.database_path", "~/data/projects.db")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "src"), cfg.ProjectsRoot)
	assert.Equal(t, filepath.Join(home, "data", "projects.db"), cfg.Registry.DatabasePath)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			DefaultEditor: "code",
			Scan:          ScanConfig{DefaultDepth: 1, DefaultFilter: "auto"},
		}
	}

	require.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"depth below one", func(c *Config) { c.Scan.DefaultDepth = 0 }},
		{"unknown filter", func(c *Config) { c.Scan.DefaultFilter = "some" }},
		{"empty editor", func(c *Config) { c.DefaultEditor = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, vcerrors.IsConfigError(err))
		})
	}
}

func TestGetEditor(t *testing.T) {
	cfg := &Config{Editors: DefaultEditors()}

	code := cfg.GetEditor("code")
	assert.Equal(t, "code", code.Command)
	assert.Contains(t, code.Args, "--no-sandbox")
	assert.Equal(t, "-r", code.ReuseFlag)

	zed := cfg.GetEditor("zed")
	assert.Empty(t, zed.Args)

	// Unknown editors fall back to a bare command.
	other := cfg.GetEditor("helix")
	assert.Equal(t, "helix", other.Command)
	assert.Equal(t, "-r", other.ReuseFlag)
}

func TestSave(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := &Config{
		ProjectsRoot:  "/srv/projects",
		DefaultEditor: "zed",
		Editors:       DefaultEditors(),
		Registry:      RegistryConfig{DatabasePath: "/srv/projects.db"},
		Scan:          ScanConfig{DefaultDepth: 2, DefaultFilter: "all"},
	}
	require.NoError(t, Save(cfg))

	path, err := Path()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "vcode", "config.toml"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var loaded Config
	require.NoError(t, toml.Unmarshal(data, &loaded))
	assert.Equal(t, cfg.ProjectsRoot, loaded.ProjectsRoot)
	assert.Equal(t, cfg.DefaultEditor, loaded.DefaultEditor)
	assert.Equal(t, cfg.Scan, loaded.Scan)
}
