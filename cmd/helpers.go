package main

import (
	"time"

	"go.uber.org/zap"

	"github.com/tapiwanashenyerenyere-afk/Career-Craft-V7/internal/advice"
	"github.com/tapiwanashenyerenyere-afk/Career-Craft-V7/internal/config"
	"github.com/tapiwanashenyerenyere-afk/Career-Craft-V7/internal/taxonomy"
)

// loadCatalog returns the configured catalog override or the embedded
// default. Validation happens inside the loaders; a malformed catalog
// refuses to start the command.
func loadCatalog() (*taxonomy.Catalog, error) {
	if cfg.Taxonomy.Path != "" {
		return taxonomy.Load(cfg.Taxonomy.Path)
	}
	return taxonomy.Default()
}

// newChain wires the advisory chain from config: providers in configured
// priority order, with per-attempt and overall time bounds. Providers with
// missing credentials are constructed anyway and report unavailable when
// tried.
func newChain(c *config.Config) *advice.Chain {
	var providers []advice.Provider
	for _, name := range c.Advice.Order {
		switch name {
		case "anthropic":
			providers = append(providers, advice.NewAnthropicProvider(c.Anthropic.Key, c.Anthropic.Model))
		case "openai":
			providers = append(providers, advice.NewOpenAIProvider(c.OpenAI.Key, c.OpenAI.BaseURL, c.OpenAI.Model))
		case "gemini":
			providers = append(providers, advice.NewGeminiProvider(c.Gemini.Key, c.Gemini.Model))
		}
	}

	opts := []advice.ChainOption{
		advice.WithAttemptTimeout(time.Duration(c.Advice.AttemptTimeoutSecs) * time.Second),
		advice.WithBudget(time.Duration(c.Advice.BudgetSecs) * time.Second),
		advice.WithCache(c.Advice.Cache),
	}
	if c.Advice.RatePerSecond > 0 {
		opts = append(opts, advice.WithRateLimit(c.Advice.RatePerSecond, c.Advice.RateBurst))
	}

	zap.L().Debug("advice chain configured",
		zap.Strings("order", c.Advice.Order),
		zap.Int("attempt_timeout_secs", c.Advice.AttemptTimeoutSecs),
		zap.Int("budget_secs", c.Advice.BudgetSecs),
	)

	return advice.NewChain(providers, opts...)
}
