package advice

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"
)

const (
	defaultAttemptTimeout = 8 * time.Second
	defaultBudget         = 20 * time.Second
)

// Chain tries ordered providers and guarantees a usable result. It writes
// nothing to shared assessment state, so caller-driven abandonment (context
// cancellation) is safe at any point.
type Chain struct {
	providers      []Provider
	attemptTimeout time.Duration
	budget         time.Duration
	limiter        *rate.Limiter

	sf singleflight.Group

	mu           sync.Mutex
	cache        map[string]Result
	cacheEnabled bool
}

// ChainOption configures the chain.
type ChainOption func(*Chain)

// WithAttemptTimeout bounds each single provider attempt.
func WithAttemptTimeout(d time.Duration) ChainOption {
	return func(c *Chain) {
		if d > 0 {
			c.attemptTimeout = d
		}
	}
}

// WithBudget bounds the overall wall clock across all attempts combined.
func WithBudget(d time.Duration) ChainOption {
	return func(c *Chain) {
		if d > 0 {
			c.budget = d
		}
	}
}

// WithRateLimit throttles outbound attempts across the whole chain.
func WithRateLimit(perSecond float64, burst int) ChainOption {
	return func(c *Chain) {
		c.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
}

// WithCache memoizes results by question+context. Purely an optimization:
// matching and plan synthesis never depend on it, and identical in-flight
// questions are deduped through singleflight either way.
func WithCache(enabled bool) ChainOption {
	return func(c *Chain) {
		c.cacheEnabled = enabled
	}
}

// NewChain creates a chain over the given providers in priority order.
func NewChain(providers []Provider, opts ...ChainOption) *Chain {
	c := &Chain{
		providers:      providers,
		attemptTimeout: defaultAttemptTimeout,
		budget:         defaultBudget,
		cache:          make(map[string]Result),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Ask returns advisory prose for the question. It never returns an error:
// under total provider failure the deterministic local fallback is used and
// tagged with ProvenanceFallback.
func (c *Chain) Ask(ctx context.Context, question string, actx Context) Result {
	key := cacheKey(question, actx)

	if c.cacheEnabled {
		c.mu.Lock()
		cached, ok := c.cache[key]
		c.mu.Unlock()
		if ok {
			return cached
		}
	}

	v, _, _ := c.sf.Do(key, func() (any, error) {
		return c.ask(ctx, question, actx), nil
	})
	res := v.(Result)

	// Only live provider responses are worth memoizing.
	if c.cacheEnabled && res.Provenance != ProvenanceFallback {
		c.mu.Lock()
		c.cache[key] = res
		c.mu.Unlock()
	}

	return res
}

func (c *Chain) ask(ctx context.Context, question string, actx Context) Result {
	ctx, cancel := context.WithTimeout(ctx, c.budget)
	defer cancel()

	var outcomes []Outcome

	for _, p := range c.providers {
		if ctx.Err() != nil {
			outcomes = append(outcomes, Outcome{
				Provider: p.Name(),
				Status:   StatusTransport,
				Err:      fmt.Errorf("advice: budget exhausted before attempt: %w", ctx.Err()),
			})
			break
		}

		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				outcomes = append(outcomes, Outcome{Provider: p.Name(), Status: StatusTransport, Err: err})
				break
			}
		}

		attemptCtx, attemptCancel := context.WithTimeout(ctx, c.attemptTimeout)
		start := time.Now()
		text, err := p.Ask(attemptCtx, question, actx)
		attemptCancel()

		if err == nil && strings.TrimSpace(text) != "" {
			zap.L().Info("advice: provider answered",
				zap.String("provider", p.Name()),
				zap.Duration("elapsed", time.Since(start)),
			)
			return Result{
				Text:       strings.TrimSpace(text),
				Provenance: p.Name(),
				Diagnostic: diagnostic(outcomes),
			}
		}

		if err == nil {
			err = fmt.Errorf("advice: %s returned empty response", p.Name())
		}
		status := classify(err)
		outcomes = append(outcomes, Outcome{Provider: p.Name(), Status: status, Err: err})

		zap.L().Warn("advice: provider failed, moving to next",
			zap.String("provider", p.Name()),
			zap.String("status", string(status)),
			zap.Bool("transient", isTransient(err)),
			zap.Error(err),
		)
	}

	return Result{
		Text:       FallbackText(actx),
		Provenance: ProvenanceFallback,
		Diagnostic: diagnostic(outcomes),
	}
}

// diagnostic flattens the attempt ledger into a short note the caller may
// surface or log. Empty when nothing failed.
func diagnostic(outcomes []Outcome) string {
	if len(outcomes) == 0 {
		return ""
	}
	parts := make([]string, 0, len(outcomes))
	for _, o := range outcomes {
		parts = append(parts, fmt.Sprintf("%s: %s (%v)", o.Provider, o.Status, o.Err))
	}
	return strings.Join(parts, "; ")
}

func cacheKey(question string, actx Context) string {
	return fmt.Sprintf("%s|%s|%s|%s",
		question,
		actx.TargetRole,
		strings.Join(actx.Strengths, ","),
		strings.Join(actx.Gaps, ","),
	)
}
