package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000", cfg.Backend.URL)
	assert.Equal(t, 2*time.Minute, cfg.Backend.Timeout)
	assert.Equal(t, "tokyo-night", cfg.TUI.Theme)
	assert.Equal(t, []string{"TCS", "Google"}, cfg.Experiences.Companies)
	assert.Equal(t, "Ninja", cfg.Companies().DefaultRole("TCS"))
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Len(t, cfg.Catalog, 9)
}

func TestLoad_Overrides(t *testing.T) {
	path := writeConfig(t, `
backend:
  url: http://pal.internal:9000/
  timeout: 45s
catalog:
  - company: Infosys
    roles: [Systems Engineer, Specialist Programmer]
experiences:
  companies: [Infosys]
tui:
  theme: gruvbox
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://pal.internal:9000", cfg.Backend.URL, "trailing slash is trimmed")
	assert.Equal(t, 45*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, []string{"Infosys"}, cfg.Companies().Companies())
	assert.Equal(t, "Systems Engineer", cfg.Companies().DefaultRole("infosys"))
	assert.Equal(t, "gruvbox", cfg.TUI.Theme)
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "tui:\n  theme: light\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "light", cfg.TUI.Theme)
	assert.Equal(t, "http://localhost:8000", cfg.Backend.URL)
	assert.Len(t, cfg.Catalog, 9)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "backend: [not, a, map")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config file")
}

func TestLoad_InvalidTheme(t *testing.T) {
	path := writeConfig(t, "tui:\n  theme: neon\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown theme")
}
