package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedger_UnansweredIsDistinctFromZero(t *testing.T) {
	l := NewLedger()

	_, ok := l.Score("Problem solving")
	assert.False(t, ok)

	l.set("Problem solving", 0)
	score, ok := l.Score("Problem solving")
	require.True(t, ok)
	assert.Equal(t, 0, score)
	assert.Equal(t, 1, l.Answered())
}

func TestLedger_ScoresReturnsCopy(t *testing.T) {
	l := NewLedger()
	l.set("Problem solving", 70)

	snapshot := l.Scores()
	snapshot["Problem solving"] = 20
	snapshot["Juggling"] = 95

	score, _ := l.Score("Problem solving")
	assert.Equal(t, 70, score)
	assert.Equal(t, 1, l.Answered())
}

func TestLedger_RolesReturnsCopy(t *testing.T) {
	l := NewLedger()
	require.True(t, l.selectRole("pm"))
	require.True(t, l.selectRole("dev"))

	roles := l.Roles()
	roles[0] = "mutated"

	assert.Equal(t, []string{"pm", "dev"}, l.Roles())
}

func TestLedger_Clear(t *testing.T) {
	l := NewLedger()
	l.set("Problem solving", 70)
	require.True(t, l.selectRole("pm"))

	l.clear()

	assert.Equal(t, 0, l.Answered())
	assert.Empty(t, l.Roles())

	// Usable again after clearing.
	l.set("Problem solving", 45)
	assert.Equal(t, 1, l.Answered())
}
