package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	assert.Equal(t, DefaultStorePath, cfg.StorePath)
	assert.True(t, cfg.CheckMissing)
	assert.Equal(t, "default", cfg.Theme.Name)
}

func TestLoadFrom_Nonexistent(t *testing.T) {
	t.Setenv(EnvStore, "")

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFrom_Settings(t *testing.T) {
	t.Setenv(EnvStore, "")

	path := writeConfig(t, `
store_path = "/data/projects.toml"
check_missing = false

[theme]
name = "nord"
accent = "#ff79c6"
`)

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "/data/projects.toml", cfg.StorePath)
	assert.False(t, cfg.CheckMissing)
	assert.Equal(t, "nord", cfg.Theme.Name)
	assert.Equal(t, "#ff79c6", cfg.Theme.Accent)
}

func TestLoadFrom_AbsentKeysKeepDefaults(t *testing.T) {
	t.Setenv(EnvStore, "")

	cfg, err := LoadFrom(writeConfig(t, "[theme]\nname = \"none\"\n"))
	require.NoError(t, err)
	assert.Equal(t, DefaultStorePath, cfg.StorePath)
	assert.True(t, cfg.CheckMissing)
	assert.Equal(t, "none", cfg.Theme.Name)
}

func TestLoadFrom_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"parse error", `store_path = [`, "failed to parse config file"},
		{"relative store path", `store_path = "projects.toml"`, "store_path must be absolute"},
		{"unknown theme", "[theme]\nname = \"solarized\"", `invalid theme.name "solarized"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvStore, "")

			cfg, err := LoadFrom(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Equal(t, Default(), cfg, "invalid config falls back to defaults")
		})
	}
}

func TestLoadFrom_EnvStoreOverride(t *testing.T) {
	t.Setenv(EnvStore, "/override/store.toml")

	cfg, err := LoadFrom(writeConfig(t, `store_path = "/data/projects.toml"`))
	require.NoError(t, err)
	assert.Equal(t, "/override/store.toml", cfg.StorePath)
}

func TestLoadFrom_EnvStoreOverrideSurvivesBadConfig(t *testing.T) {
	t.Setenv(EnvStore, "/override/store.toml")

	cfg, err := LoadFrom(writeConfig(t, `store_path = [`))
	require.Error(t, err)
	assert.Equal(t, "/override/store.toml", cfg.StorePath)
}

func TestLoadFrom_EnvStoreRelative(t *testing.T) {
	t.Setenv(EnvStore, "relative.toml")

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvStore)
	assert.Equal(t, DefaultStorePath, cfg.StorePath)
}

func TestLoad_UsesEnvConfig(t *testing.T) {
	t.Setenv(EnvStore, "")
	t.Setenv(EnvConfig, writeConfig(t, `store_path = "/from/env/config.toml"`))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/from/env/config.toml", cfg.StorePath)
}

func TestStoreFile(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name      string
		storePath string
		want      string
	}{
		{"default", "", filepath.Join(home, ".teleproj.toml")},
		{"tilde", "~/sync/teleproj.toml", filepath.Join(home, "sync", "teleproj.toml")},
		{"absolute", "/data/teleproj.toml", "/data/teleproj.toml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{StorePath: tt.storePath}
			got, err := cfg.StoreFile()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidatePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path    string
		wantErr bool
	}{
		{"", false},
		{"~", false},
		{"~/x.toml", false},
		{"/abs/x.toml", false},
		{"x.toml", true},
		{"./x.toml", true},
		{"../x.toml", true},
	}

	for _, tt := range tests {
		err := ValidatePath(tt.path, "store_path")
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
		}
	}
}

func TestFormatOptions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `"a"`, formatOptions([]string{"a"}))
	assert.Equal(t, `"a" or "b"`, formatOptions([]string{"a", "b"}))
	assert.Equal(t, `"a", "b", or "c"`, formatOptions([]string{"a", "b", "c"}))
}

func TestWithConfig_FromContext(t *testing.T) {
	t.Parallel()

	cfg := &Config{StorePath: "/x.toml"}
	ctx := WithConfig(context.Background(), cfg)
	assert.Same(t, cfg, FromContext(ctx))

	fallback := FromContext(context.Background())
	require.NotNil(t, fallback)
	assert.Equal(t, Default(), *fallback)
}
