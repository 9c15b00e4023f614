// Package advice obtains free-text coaching commentary by delegating to an
// ordered list of external providers, falling back to a deterministic local
// template when none succeed. The chain never propagates a failure to the
// caller; the provenance tag is the only quality signal.
package advice

import (
	"context"
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
)

// systemPrompt is the coaching preamble sent to every provider.
const systemPrompt = "You are a gentle, honest career coach. Help people think through career decisions. Keep responses under 300 words. Be warm but direct."

// ProvenanceFallback tags responses synthesized locally after provider
// exhaustion.
const ProvenanceFallback = "fallback"

// ErrUnavailable marks a provider that cannot be attempted at all: missing
// credential, disabled capability, or exhausted quota. Distinct from a
// transport failure on a live attempt.
var ErrUnavailable = eris.New("advice: provider unavailable")

// Context summarizes the assessment state injected ahead of the user's
// question.
type Context struct {
	Strengths  []string `json:"strengths"`
	Gaps       []string `json:"gaps"`
	TargetRole string   `json:"target_role"`
}

// Summary renders the context as the preamble line providers receive.
func (c Context) Summary() string {
	var parts []string
	if c.TargetRole != "" {
		parts = append(parts, fmt.Sprintf("The user is exploring a move into %s.", c.TargetRole))
	}
	if len(c.Strengths) > 0 {
		parts = append(parts, fmt.Sprintf("Their strongest skills are %s.", strings.Join(c.Strengths, ", ")))
	}
	if len(c.Gaps) > 0 {
		parts = append(parts, fmt.Sprintf("Their skill gaps are %s.", strings.Join(c.Gaps, ", ")))
	}
	if len(parts) == 0 {
		return "The user is exploring career directions."
	}
	return strings.Join(parts, " ")
}

// Provider is one external advice source. Ask performs a single bounded
// attempt; no internal retries.
type Provider interface {
	Name() string
	Ask(ctx context.Context, question string, actx Context) (string, error)
}

// Status classifies the outcome of one provider attempt.
type Status string

const (
	StatusSuccess     Status = "success"
	StatusUnavailable Status = "unavailable"
	StatusTransport   Status = "transport"
)

// Outcome records one provider attempt, keeping the fallback logic
// auditable per branch instead of implicit in nested error handling.
type Outcome struct {
	Provider string
	Status   Status
	Err      error
}

// Result is the advisory response handed back to the caller. Provenance
// names the producing provider, or ProvenanceFallback.
type Result struct {
	Text       string `json:"text"`
	Provenance string `json:"provenance"`
	Diagnostic string `json:"diagnostic,omitempty"`
}
