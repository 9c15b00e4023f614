// Package session owns one user's assessment state: the response ledger
// and the wizard state machine that fills it. A Session is constructed per
// user flow and never shared; nothing here touches globals, so concurrent
// sessions are trivially safe.
package session

// MaxRoleSelections bounds how many roles a user may explore at once.
const MaxRoleSelections = 3

// Ledger records a user's answers: skill name → proficiency score, plus the
// role IDs the user opted to explore. An absent skill is unanswered, which
// is distinct from an answered zero. The wizard is the sole writer.
type Ledger struct {
	scores map[string]int
	roles  []string
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{scores: make(map[string]int)}
}

// Score returns the recorded score for a skill and whether it was answered.
func (l *Ledger) Score(skill string) (int, bool) {
	s, ok := l.scores[skill]
	return s, ok
}

func (l *Ledger) set(skill string, score int) {
	l.scores[skill] = score
}

// Answered returns how many skills have a recorded score.
func (l *Ledger) Answered() int {
	return len(l.scores)
}

// Scores returns a copy of the recorded answers. Callers may not mutate
// ledger state through it.
func (l *Ledger) Scores() map[string]int {
	out := make(map[string]int, len(l.scores))
	for k, v := range l.scores {
		out[k] = v
	}
	return out
}

// Roles returns the selected role IDs in selection order.
func (l *Ledger) Roles() []string {
	out := make([]string, len(l.roles))
	copy(out, l.roles)
	return out
}

// selectRole adds a role selection. Refuses duplicates and a selection
// beyond MaxRoleSelections; refusal is an expected user-flow condition,
// not an error.
func (l *Ledger) selectRole(id string) bool {
	if len(l.roles) >= MaxRoleSelections {
		return false
	}
	for _, r := range l.roles {
		if r == id {
			return false
		}
	}
	l.roles = append(l.roles, id)
	return true
}

func (l *Ledger) deselectRole(id string) bool {
	for i, r := range l.roles {
		if r == id {
			l.roles = append(l.roles[:i], l.roles[i+1:]...)
			return true
		}
	}
	return false
}

// clear empties all recorded state.
func (l *Ledger) clear() {
	l.scores = make(map[string]int)
	l.roles = nil
}
