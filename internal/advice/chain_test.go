package advice

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockProvider implements Provider for testing.
type mockProvider struct {
	name  string
	text  string
	err   error
	delay time.Duration
	calls atomic.Int32
}

func (m *mockProvider) Name() string { return m.name }

func (m *mockProvider) Ask(ctx context.Context, _ string, _ Context) (string, error) {
	m.calls.Add(1)
	if m.delay > 0 {
		select {
		case <-time.After(m.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return m.text, m.err
}

func testContext() Context {
	return Context{
		Strengths:  []string{"Problem solving", "Explaining ideas"},
		Gaps:       []string{"Working with data"},
		TargetRole: "Data Analyst",
	}
}

func TestChain_FirstSuccessWins(t *testing.T) {
	first := &mockProvider{name: "anthropic", text: "first answer"}
	second := &mockProvider{name: "openai", text: "second answer"}

	chain := NewChain([]Provider{first, second})
	res := chain.Ask(context.Background(), "where do I start?", testContext())

	assert.Equal(t, "first answer", res.Text)
	assert.Equal(t, "anthropic", res.Provenance)
	assert.Empty(t, res.Diagnostic)
	assert.Equal(t, int32(1), first.calls.Load())
	assert.Equal(t, int32(0), second.calls.Load())
}

func TestChain_MovesPastFailures(t *testing.T) {
	down := &mockProvider{name: "anthropic", err: errors.New("connection refused")}
	unconfigured := &mockProvider{name: "openai", err: ErrUnavailable}
	up := &mockProvider{name: "gemini", text: "third answer"}

	chain := NewChain([]Provider{down, unconfigured, up})
	res := chain.Ask(context.Background(), "where do I start?", testContext())

	assert.Equal(t, "third answer", res.Text)
	assert.Equal(t, "gemini", res.Provenance)
	// The attempt ledger records both failed hops.
	assert.Contains(t, res.Diagnostic, "anthropic: transport")
	assert.Contains(t, res.Diagnostic, "openai: unavailable")
}

func TestChain_EmptyResponseIsAFailure(t *testing.T) {
	blank := &mockProvider{name: "anthropic", text: "   "}
	up := &mockProvider{name: "openai", text: "real answer"}

	chain := NewChain([]Provider{blank, up})
	res := chain.Ask(context.Background(), "q", testContext())

	assert.Equal(t, "real answer", res.Text)
	assert.Equal(t, "openai", res.Provenance)
}

func TestChain_FallbackGuarantee(t *testing.T) {
	tests := []struct {
		name      string
		providers []Provider
	}{
		{name: "no providers", providers: nil},
		{name: "all failing", providers: []Provider{
			&mockProvider{name: "anthropic", err: ErrUnavailable},
			&mockProvider{name: "openai", err: errors.New("dial tcp: i/o timeout")},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chain := NewChain(tt.providers)
			res := chain.Ask(context.Background(), "q", testContext())

			assert.NotEmpty(t, res.Text)
			assert.Equal(t, ProvenanceFallback, res.Provenance)
		})
	}
}

func TestChain_BudgetBoundsSlowProviders(t *testing.T) {
	slow := &mockProvider{name: "anthropic", text: "too late", delay: time.Second}
	alsoSlow := &mockProvider{name: "openai", text: "too late", delay: time.Second}

	chain := NewChain([]Provider{slow, alsoSlow},
		WithAttemptTimeout(50*time.Millisecond),
		WithBudget(80*time.Millisecond),
	)

	start := time.Now()
	res := chain.Ask(context.Background(), "q", testContext())
	elapsed := time.Since(start)

	assert.Equal(t, ProvenanceFallback, res.Provenance)
	assert.NotEmpty(t, res.Text)
	assert.Less(t, elapsed, 500*time.Millisecond)
}

func TestChain_CallerCancellation(t *testing.T) {
	slow := &mockProvider{name: "anthropic", text: "answer", delay: time.Second}
	chain := NewChain([]Provider{slow})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := chain.Ask(ctx, "q", testContext())
	assert.Equal(t, ProvenanceFallback, res.Provenance)
	assert.NotEmpty(t, res.Text)
}

func TestChain_CacheMemoizesLiveAnswers(t *testing.T) {
	p := &mockProvider{name: "anthropic", text: "cached answer"}
	chain := NewChain([]Provider{p}, WithCache(true))

	first := chain.Ask(context.Background(), "q", testContext())
	second := chain.Ask(context.Background(), "q", testContext())

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), p.calls.Load())

	// A different question misses.
	chain.Ask(context.Background(), "other q", testContext())
	assert.Equal(t, int32(2), p.calls.Load())
}

func TestChain_FallbackIsNotCached(t *testing.T) {
	p := &mockProvider{name: "anthropic", err: errors.New("connection refused")}
	chain := NewChain([]Provider{p}, WithCache(true))

	chain.Ask(context.Background(), "q", testContext())
	chain.Ask(context.Background(), "q", testContext())

	// Both calls reach the provider: fallback results are never memoized.
	assert.Equal(t, int32(2), p.calls.Load())
}

func TestChain_SingleflightDedupesConcurrentAsks(t *testing.T) {
	p := &mockProvider{name: "anthropic", text: "shared answer", delay: 50 * time.Millisecond}
	chain := NewChain([]Provider{p})

	var wg sync.WaitGroup
	results := make([]Result, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = chain.Ask(context.Background(), "q", testContext())
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, "shared answer", r.Text)
	}
	assert.Equal(t, int32(1), p.calls.Load())
}

func TestFallbackText_Deterministic(t *testing.T) {
	actx := testContext()

	first := FallbackText(actx)
	second := FallbackText(actx)
	require.Equal(t, first, second)

	assert.Contains(t, first, "Data Analyst")
	assert.Contains(t, first, "Problem solving")
	assert.Contains(t, first, "Working with data")

	// Empty context still yields usable prose.
	assert.NotEmpty(t, FallbackText(Context{}))
}

func TestContextSummary(t *testing.T) {
	assert.Equal(t, "The user is exploring career directions.", Context{}.Summary())

	s := testContext().Summary()
	assert.Contains(t, s, "Data Analyst")
	assert.Contains(t, s, "Problem solving, Explaining ideas")
	assert.Contains(t, s, "Working with data")
}
