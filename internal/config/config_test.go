package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, "log_level: debug\nlenient: true\ncomma: true\nunit: H\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, &Config{LogLevel: "debug", Lenient: true, Comma: true, Unit: "H"}, cfg)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]string{
		"bad yaml":   "log_level: [",
		"bad format": "log_format: xml\n",
		"bad unit":   "unit: fortnight\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			writeFile(t, path, content)
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadDefault(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_CONFIG_DIRS", filepath.Join(dir, "none"))
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	cfg, path, err := LoadDefault()
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Equal(t, &Config{}, cfg)

	writeFile(t, filepath.Join(dir, RelPath), "log_format: json\nunit: s\n")
	cfg, path, err = LoadDefault()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, RelPath), path)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "s", cfg.Unit)
}
