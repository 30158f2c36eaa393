package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "docstream.db", cfg.Storage.Path)
	assert.False(t, cfg.Storage.InMemory)
	assert.Equal(t, "uploaded_files", cfg.Intake.UploadDir)
	assert.Equal(t, "local", cfg.Extraction.Provider)
	assert.Equal(t, 10, cfg.Extraction.MaxKeywords)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadParsesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
storage:
  path: /var/lib/docstream/db
intake:
  upload_dir: /srv/uploads
extraction:
  provider: llm
  max_keywords: 5
  llm:
    host: http://ollama:11434/v1
log_level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/docstream/db", cfg.Storage.Path)
	assert.Equal(t, "/srv/uploads", cfg.Intake.UploadDir)
	assert.Equal(t, "llm", cfg.Extraction.Provider)
	assert.Equal(t, 5, cfg.Extraction.MaxKeywords)
	require.NotNil(t, cfg.Extraction.LLM)
	assert.Equal(t, "http://ollama:11434/v1", cfg.Extraction.LLM.Host)
	assert.Equal(t, "qwen2.5:3b", cfg.Extraction.LLM.Model, "defaults fill unset llm fields")
	assert.Equal(t, "DOCSTREAM_API_KEY", cfg.Extraction.LLM.APIKeyEnv)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadLLMProviderWithoutBlock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
extraction:
  provider: llm
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	require.NotNil(t, cfg.Extraction.LLM)
	assert.Equal(t, "http://localhost:11434/v1", cfg.Extraction.LLM.Host)
	assert.Equal(t, "qwen2.5:3b", cfg.Extraction.LLM.Model)
	assert.Equal(t, "DOCSTREAM_API_KEY", cfg.Extraction.LLM.APIKeyEnv)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\t:::not yaml"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Storage.InMemory = true
	cfg.LogLevel = "warn"
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLLMConfigAPIKey(t *testing.T) {
	t.Setenv("DOCSTREAM_TEST_KEY", "secret")

	cfg := &LLMConfig{APIKeyEnv: "DOCSTREAM_TEST_KEY"}
	assert.Equal(t, "secret", cfg.APIKey())

	var nilCfg *LLMConfig
	assert.Empty(t, nilCfg.APIKey())
}
