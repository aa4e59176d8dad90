package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("LUMUS_DB", t.TempDir()+"/lumus.db")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, ":8080", cfg.ServerAddr)
	assert.True(t, cfg.SaveHistory)
	assert.NotEmpty(t, cfg.DBPath)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("LUMUS_ENV", "prod")
	t.Setenv("LUMUS_SERVER_ADDR", ":9999")
	t.Setenv("LUMUS_DB_PATH", "/tmp/custom.db")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, ":9999", cfg.ServerAddr)
	assert.Equal(t, "/tmp/custom.db", cfg.DBPath)
}

func TestLLM_ExplicitProvider(t *testing.T) {
	t.Setenv("LUMUS_LLM_PROVIDER", "mock")

	cfg := &Config{}
	llmCfg, err := cfg.LLM()
	require.NoError(t, err)
	assert.Equal(t, "mock", llmCfg.Provider)
}

func TestLLM_Discovery(t *testing.T) {
	t.Setenv("LUMUS_LLM_PROVIDER", "")
	t.Setenv("GOOGLE_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg := &Config{}
	llmCfg, err := cfg.LLM()
	require.NoError(t, err)
	assert.Equal(t, "openai", llmCfg.Provider)
	assert.Equal(t, "sk-test", llmCfg.OpenAI.APIKey)
}

func TestLLM_NoCredentials(t *testing.T) {
	for _, env := range []string{
		"LUMUS_LLM_PROVIDER", "GOOGLE_API_KEY", "GEMINI_API_KEY",
		"OPENAI_API_KEY", "ANTHROPIC_API_KEY",
	} {
		t.Setenv(env, "")
	}

	cfg := &Config{}
	_, err := cfg.LLM()
	assert.Error(t, err)
}
