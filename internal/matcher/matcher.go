// Package matcher turns a set of recorded skill scores into ranked,
// explained role recommendations. Matching is a pure function of its
// inputs: no I/O, no caching, recomputed in full on every call.
package matcher

import (
	"math"
	"sort"

	"github.com/tapiwanashenyerenyere-afk/Career-Craft-V7/internal/taxonomy"
)

const (
	// NeutralScore stands in for a skill the user never answered.
	NeutralScore = 50
	// GapThreshold marks a skill as a gap when the user's score is
	// strictly below it. The neutral default sits exactly on the
	// threshold, so an unanswered skill is not a gap.
	GapThreshold = 50
	// MaxSkillDifference is the worst plausible single-skill mismatch
	// used to normalize the match percentage.
	MaxSkillDifference = 80
	// UpliftRate scales the compensation spread into a per-gap uplift.
	UpliftRate = 0.08
)

// Band is the coarse readiness classification for a role.
type Band string

const (
	BandReady    Band = "Ready"
	BandStretch  Band = "Stretch"
	BandLongShot Band = "Long-shot"
)

// Result is one ranked role match. Derived, never persisted.
type Result struct {
	RoleID       string   `json:"role_id"`
	Title        string   `json:"title"`
	Subtitle     string   `json:"subtitle"`
	MatchPercent int      `json:"match_percent"`
	Gaps         []string `json:"gaps,omitempty"`
	Band         Band     `json:"band"`
	UpliftUSD    int      `json:"uplift_usd"`
	CompLow      int      `json:"comp_low"`
	CompMedian   int      `json:"comp_median"`
	CompHigh     int      `json:"comp_high"`
}

// Match scores every catalog role against the recorded responses and
// returns them sorted descending by match percentage, ties broken by
// catalog declaration order. An empty response set is a legitimate,
// displayable state and yields an empty list, not an error. The list is
// non-nil so callers serialize it as an empty array.
func Match(responses map[string]int, catalog *taxonomy.Catalog) []Result {
	if len(responses) == 0 || catalog == nil {
		return []Result{}
	}

	results := make([]Result, 0, len(catalog.Roles))
	for _, role := range catalog.Roles {
		results = append(results, scoreRole(responses, role))
	}

	// Stable: equal percentages keep catalog order, so output is
	// deterministic for identical inputs.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].MatchPercent > results[j].MatchPercent
	})

	return results
}

func scoreRole(responses map[string]int, role taxonomy.RoleProfile) Result {
	var total int
	var gaps []string

	for _, rs := range role.Skills {
		score, answered := responses[rs.Name]
		if !answered {
			score = NeutralScore
		}

		diff := score - rs.Importance
		if diff < 0 {
			diff = -diff
		}
		total += diff

		if score < GapThreshold {
			gaps = append(gaps, rs.Name)
		}
	}

	// Halfway values round down: an all-neutral answer set against a
	// three-skill role at importance 80 lands on exactly .5 and must
	// come out as 63, not 62.
	n := len(role.Skills)
	raw := 100 * float64(total) / float64(n*MaxSkillDifference)
	pct := 100 - int(math.Ceil(raw-0.5))
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}

	return Result{
		RoleID:       role.ID,
		Title:        role.Title,
		Subtitle:     role.Subtitle,
		MatchPercent: pct,
		Gaps:         gaps,
		Band:         BandForGaps(len(gaps)),
		UpliftUSD:    Uplift(len(gaps), role.CompLow, role.CompHigh),
		CompLow:      role.CompLow,
		CompMedian:   role.CompMedian,
		CompHigh:     role.CompHigh,
	}
}

// BandForGaps maps a gap count onto a readiness band. An auditable step
// function, not a probabilistic classifier.
func BandForGaps(gaps int) Band {
	switch {
	case gaps <= 1:
		return BandReady
	case gaps <= 3:
		return BandStretch
	default:
		return BandLongShot
	}
}

// Uplift estimates the annual compensation uplift from closing the
// remaining gaps: proportional to both the gap count and the role's
// compensation spread. An expectation range, not a guarantee.
func Uplift(gaps, compLow, compHigh int) int {
	return gaps * int(math.Round(float64(compHigh-compLow)*UpliftRate))
}

// TopStrengths returns up to n answered skills with the highest recorded
// scores, ties broken by catalog walk order.
func TopStrengths(responses map[string]int, catalog *taxonomy.Catalog, n int) []string {
	type entry struct {
		name  string
		score int
		order int
	}

	var entries []entry
	for i, name := range catalog.SkillNames() {
		if score, ok := responses[name]; ok {
			entries = append(entries, entry{name: name, score: score, order: i})
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].score != entries[j].score {
			return entries[i].score > entries[j].score
		}
		return entries[i].order < entries[j].order
	})

	if n > len(entries) {
		n = len(entries)
	}
	out := make([]string, 0, n)
	for _, e := range entries[:n] {
		out = append(out, e.name)
	}
	return out
}
