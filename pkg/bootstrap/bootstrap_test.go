package bootstrap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreParseGlobalFlags(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		wantConfig  string
		wantVerbose bool
	}{
		{"no flags", []string{"vcode"}, "", false},
		{"config long", []string{"vcode", "--config", "/tmp/c.toml"}, "/tmp/c.toml", false},
		{"config equals", []string{"vcode", "--config=/tmp/c.toml"}, "/tmp/c.toml", false},
		{"config short", []string{"vcode", "-C", "/tmp/c.toml"}, "/tmp/c.toml", false},
		{"config short joined", []string{"vcode", "-C/tmp/c.toml"}, "/tmp/c.toml", false},
		{"verbose long", []string{"vcode", "--verbose"}, "", true},
		{"verbose short", []string{"vcode", "-v"}, "", true},
		{"both", []string{"vcode", "-v", "--config", "/tmp/c.toml", "list"}, "/tmp/c.toml", true},
		{"stops at subcommand", []string{"vcode", "list", "--verbose"}, "", false},
		{"stops at double dash", []string{"vcode", "--", "--verbose"}, "", false},
		{"config without value", []string{"vcode", "--config"}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfgFile, verbose := PreParseGlobalFlags(tt.args)
			assert.Equal(t, tt.wantConfig, cfgFile)
			assert.Equal(t, tt.wantVerbose, verbose)
		})
	}
}

func TestInitConfigDefaults(t *testing.T) {
	t.Setenv("GO_TEST", "true")
	t.Setenv("HOME", t.TempDir())
	Reset()
	t.Cleanup(func() {
		Reset()
		viper.Reset()
	})

	cfg, verbose, err := InitConfig("", false)
	require.NoError(t, err)
	assert.False(t, verbose)
	assert.Equal(t, "code", cfg.DefaultEditor)
	assert.Equal(t, 1, cfg.Scan.DefaultDepth)
}

func TestInitConfigFromFile(t *testing.T) {
	t.Setenv("GO_TEST", "true")
	t.Setenv("HOME", t.TempDir())
	Reset()
	t.Cleanup(func() {
		Reset()
		viper.Reset()
	})

	cfgFile := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, cfgFile, "default_editor = \"zed\"\n\n[scan]\ndefault_depth = 3\n")

	cfg, _, err := InitConfig(cfgFile, false)
	require.NoError(t, err)
	assert.Equal(t, "zed", cfg.DefaultEditor)
	assert.Equal(t, 3, cfg.Scan.DefaultDepth)
	// Unset keys keep their defaults.
	assert.Equal(t, "auto", cfg.Scan.DefaultFilter)
}

func TestInitConfigEnvOverride(t *testing.T) {
	t.Setenv("GO_TEST", "true")
	t.Setenv("HOME", t.TempDir())
	t.Setenv("VCODE_DEFAULT_EDITOR", "nvim")
	Reset()
	t.Cleanup(func() {
		Reset()
		viper.Reset()
	})

	cfg, _, err := InitConfig("", false)
	require.NoError(t, err)
	assert.Equal(t, "nvim", cfg.DefaultEditor)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
}
