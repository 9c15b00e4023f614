// Package plan turns a top role match into a short-horizon action plan:
// a long direction, a medium phase, and a concrete short sprint. Output is
// deterministic and templated from the readiness band; the caller owns any
// later edits.
package plan

import (
	"fmt"

	"github.com/tapiwanashenyerenyere-afk/Career-Craft-V7/internal/matcher"
)

// Plan is the three-horizon action plan for a target role.
type Plan struct {
	Direction string `json:"direction"` // 6-12 months
	Phase     string `json:"phase"`     // ~3 months
	Sprint    string `json:"sprint"`    // ~4 weeks
}

// bandTemplates keys the phase and sprint wording by readiness band.
var bandTemplates = map[matcher.Band]struct {
	phase  string
	sprint string
}{
	matcher.BandReady: {
		phase:  "Positioning: you already have the core skills for %s. Sharpen your story and start applying.",
		sprint: "Update your profile for %s, apply to 3 openings, and ask for one referral.",
	},
	matcher.BandStretch: {
		phase:  "Exploration and foundations: understand the day-to-day of %s and close your first gap.",
		sprint: "Talk to 2 people working as a %s and start 1 mini project that uses the skills you're missing.",
	},
	matcher.BandLongShot: {
		phase:  "Groundwork: %s needs several skills you haven't built yet. Pick the two most central and start there.",
		sprint: "Choose one skill %s needs that you lack, find an intro course or practice project, and commit 3 hours a week to it.",
	},
}

// Synthesize builds the plan for the top match. strengths are the user's
// highest-scored skills; the first two are woven into the direction line.
func Synthesize(top matcher.Result, strengths []string) Plan {
	tmpl := bandTemplates[top.Band]

	direction := fmt.Sprintf("Explore and move toward %s while building new skills.", top.Title)
	switch len(strengths) {
	case 0:
	case 1:
		direction = fmt.Sprintf("Move toward %s, leading with your strength in %s.", top.Title, strengths[0])
	default:
		direction = fmt.Sprintf("Move toward %s, leading with your strengths in %s and %s.",
			top.Title, strengths[0], strengths[1])
	}

	return Plan{
		Direction: direction,
		Phase:     fmt.Sprintf(tmpl.phase, top.Title),
		Sprint:    fmt.Sprintf(tmpl.sprint, top.Title),
	}
}
