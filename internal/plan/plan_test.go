package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tapiwanashenyerenyere-afk/Career-Craft-V7/internal/matcher"
)

func topMatch(band matcher.Band) matcher.Result {
	return matcher.Result{
		RoleID:       "data",
		Title:        "Data Analyst",
		MatchPercent: 74,
		Band:         band,
	}
}

func TestSynthesize_Deterministic(t *testing.T) {
	top := topMatch(matcher.BandStretch)
	strengths := []string{"Problem solving", "Explaining ideas"}

	first := Synthesize(top, strengths)
	second := Synthesize(top, strengths)
	assert.Equal(t, first, second)
}

func TestSynthesize_WeavesStrengthsIntoDirection(t *testing.T) {
	top := topMatch(matcher.BandReady)

	p := Synthesize(top, nil)
	assert.Contains(t, p.Direction, "Data Analyst")

	p = Synthesize(top, []string{"Problem solving"})
	assert.Contains(t, p.Direction, "Problem solving")

	p = Synthesize(top, []string{"Problem solving", "Explaining ideas", "Leading people"})
	assert.Contains(t, p.Direction, "Problem solving")
	assert.Contains(t, p.Direction, "Explaining ideas")
	// Only the first two strengths are used.
	assert.NotContains(t, p.Direction, "Leading people")
}

func TestSynthesize_BandShapesPhaseAndSprint(t *testing.T) {
	ready := Synthesize(topMatch(matcher.BandReady), nil)
	stretch := Synthesize(topMatch(matcher.BandStretch), nil)
	longShot := Synthesize(topMatch(matcher.BandLongShot), nil)

	assert.Contains(t, ready.Phase, "already have the core skills")
	assert.Contains(t, stretch.Phase, "close your first gap")
	assert.Contains(t, longShot.Phase, "Groundwork")

	for _, p := range []Plan{ready, stretch, longShot} {
		assert.NotEmpty(t, p.Direction)
		assert.NotEmpty(t, p.Phase)
		assert.NotEmpty(t, p.Sprint)
		assert.Contains(t, p.Phase, "Data Analyst")
	}
}
