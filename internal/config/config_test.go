package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, []string{"anthropic", "openai", "gemini"}, cfg.Advice.Order)
	assert.Equal(t, 8, cfg.Advice.AttemptTimeoutSecs)
	assert.Equal(t, 20, cfg.Advice.BudgetSecs)
	assert.True(t, cfg.Advice.Cache)
	assert.Equal(t, "https://api.openai.com/v1", cfg.OpenAI.BaseURL)
	assert.Empty(t, cfg.Taxonomy.Path)
	assert.Empty(t, cfg.Anthropic.Key)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("CAREERCRAFT_SERVER_PORT", "9090")
	t.Setenv("CAREERCRAFT_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_EnvOnlyKeys(t *testing.T) {
	// Credential and path keys carry no default; they must still be
	// reachable from the environment alone.
	t.Setenv("CAREERCRAFT_ANTHROPIC_KEY", "sk-ant-test")
	t.Setenv("CAREERCRAFT_OPENAI_KEY", "sk-openai-test")
	t.Setenv("CAREERCRAFT_GEMINI_KEY", "gm-test")
	t.Setenv("CAREERCRAFT_TAXONOMY_PATH", "/tmp/catalog.yaml")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "sk-ant-test", cfg.Anthropic.Key)
	assert.Equal(t, "sk-openai-test", cfg.OpenAI.Key)
	assert.Equal(t, "gm-test", cfg.Gemini.Key)
	assert.Equal(t, "/tmp/catalog.yaml", cfg.Taxonomy.Path)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg, err := Load()
		require.NoError(t, err)
		return cfg
	}

	cfg := base()
	assert.NoError(t, cfg.Validate())

	cfg = base()
	cfg.Advice.Order = []string{"anthropic", "psychic"}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown advice provider")

	cfg = base()
	cfg.Advice.AttemptTimeoutSecs = 0
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Advice.BudgetSecs = -1
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Server.Port = 70000
	assert.Error(t, cfg.Validate())
}

func TestInitLogger(t *testing.T) {
	assert.NoError(t, InitLogger(LogConfig{Level: "debug", Format: "console"}))
	assert.NoError(t, InitLogger(LogConfig{Level: "info", Format: "json"}))
	assert.Error(t, InitLogger(LogConfig{Level: "shouting", Format: "json"}))
}
