package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "TEMPLATES", cfg.TemplatesDir)
	assert.Equal(t, "BD/PRECOSTEOS", cfg.OutputDir)
	assert.Equal(t, "PRECOSTEO", cfg.OutputPrefix)
	assert.Equal(t, []string{"1.21"}, cfg.ExcludedItems)
	assert.Equal(t, "gemini-1.5-flash", cfg.GeminiModel)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PRECOSTEO_OUTPUT_DIR", "/srv/precosteos")
	t.Setenv("GEMINI_API_KEY", "test-key")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/srv/precosteos", cfg.OutputDir)
	assert.Equal(t, "test-key", cfg.GeminiAPIKey)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "precosteo.yaml")
	content := "output_prefix: COTIZACION\nexcluded_items:\n  - \"1.21\"\n  - \"9.99\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "COTIZACION", cfg.OutputPrefix)
	assert.Equal(t, []string{"1.21", "9.99"}, cfg.ExcludedItems)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
