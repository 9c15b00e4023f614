package session

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tapiwanashenyerenyere-afk/Career-Craft-V7/internal/taxonomy"
)

// State identifies where the wizard is in the capture flow.
type State int

const (
	StateLanding State = iota
	StateSkillCapture
	StateRoleCapture
	StateResults
)

func (s State) String() string {
	switch s {
	case StateLanding:
		return "landing"
	case StateSkillCapture:
		return "skills"
	case StateRoleCapture:
		return "roles"
	case StateResults:
		return "results"
	default:
		return "unknown"
	}
}

// Mode is the entry mode chosen on the landing screen.
type Mode string

const (
	ModeSkills Mode = "skills"
	ModeRoles  Mode = "roles"
)

// MinAnswersForResults is the fixed minimum number of answered skills
// required before Results may be entered from skill capture. It does not
// scale with catalog size.
const MinAnswersForResults = 4

// Session walks one user through skill or role capture without losing
// entered data. All guard failures are no-op refusals, reported as false.
type Session struct {
	id      string
	catalog *taxonomy.Catalog
	ledger  *Ledger

	state State
	mode  Mode
	group int // index into catalog.Groups
	skill int // index within the current group
}

// New creates a session in the Landing state. The session ID follows the
// date-plus-fragment form the surrounding application logs by.
func New(catalog *taxonomy.Catalog) *Session {
	return &Session{
		id:      fmt.Sprintf("%s_%s", time.Now().Format("20060102"), uuid.NewString()[:8]),
		catalog: catalog,
		ledger:  NewLedger(),
		state:   StateLanding,
	}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// State returns the current wizard state.
func (s *Session) State() State { return s.state }

// Mode returns the entry mode, empty until Start.
func (s *Session) Mode() Mode { return s.mode }

// Ledger exposes the session's response ledger for reading.
func (s *Session) Ledger() *Ledger { return s.ledger }

// Start leaves Landing for the chosen capture mode. Refused outside
// Landing.
func (s *Session) Start(mode Mode) bool {
	if s.state != StateLanding {
		return false
	}
	switch mode {
	case ModeSkills:
		s.state = StateSkillCapture
	case ModeRoles:
		s.state = StateRoleCapture
	default:
		return false
	}
	s.mode = mode
	s.group, s.skill = 0, 0
	return true
}

// CurrentGroup returns the skill group under the cursor, or nil outside
// skill capture.
func (s *Session) CurrentGroup() *taxonomy.SkillGroup {
	if s.state != StateSkillCapture {
		return nil
	}
	return &s.catalog.Groups[s.group]
}

// CurrentSkill returns the skill under the cursor, or nil outside skill
// capture.
func (s *Session) CurrentSkill() *taxonomy.Skill {
	g := s.CurrentGroup()
	if g == nil {
		return nil
	}
	return &g.Skills[s.skill]
}

// Progress returns answered and total skill counts.
func (s *Session) Progress() (answered, total int) {
	return s.ledger.Answered(), len(s.catalog.SkillNames())
}

// MinimumMet reports whether the session has enough input to enter Results:
// at least MinAnswersForResults answers in skill mode, at least one role
// selection in role mode.
func (s *Session) MinimumMet() bool {
	switch s.state {
	case StateSkillCapture:
		return s.ledger.Answered() >= MinAnswersForResults
	case StateRoleCapture:
		return len(s.ledger.roles) >= 1
	default:
		return false
	}
}

// RecordAnswer writes or overwrites the ledger entry for a skill. The score
// must be one of the catalog's level anchors and the skill must exist. The
// cursor does not move; re-answering only changes the stored value.
func (s *Session) RecordAnswer(skill string, score int) bool {
	if s.state != StateSkillCapture {
		return false
	}
	if !s.catalog.ValidScore(score) || !s.catalog.HasSkill(skill) {
		return false
	}
	s.ledger.set(skill, score)
	return true
}

// SelectRole adds a role to the exploration set during role capture.
func (s *Session) SelectRole(id string) bool {
	if s.state != StateRoleCapture {
		return false
	}
	if s.catalog.Role(id) == nil {
		return false
	}
	return s.ledger.selectRole(id)
}

// DeselectRole removes a role from the exploration set.
func (s *Session) DeselectRole(id string) bool {
	if s.state != StateRoleCapture {
		return false
	}
	return s.ledger.deselectRole(id)
}

// Advance moves the cursor to the next skill. The current skill must be
// answered. Advancing past the last skill of the last group is the sole
// transition into Results and additionally requires MinimumMet. From role
// capture, Advance transitions to Results once at least one role is
// selected.
func (s *Session) Advance() bool {
	switch s.state {
	case StateRoleCapture:
		if !s.MinimumMet() {
			return false
		}
		s.state = StateResults
		return true
	case StateSkillCapture:
		// guarded below
	default:
		return false
	}

	cur := s.CurrentSkill()
	if _, answered := s.ledger.Score(cur.Name); !answered {
		return false
	}

	if s.skill < len(s.catalog.Groups[s.group].Skills)-1 {
		s.skill++
		return true
	}
	if s.group < len(s.catalog.Groups)-1 {
		s.group++
		s.skill = 0
		return true
	}

	// Last skill of the last group.
	if !s.MinimumMet() {
		return false
	}
	s.state = StateResults
	return true
}

// Retreat is the symmetric inverse of Advance. From the first skill of the
// first group it returns to Landing; that is a terminal boundary, not an
// error. From Results it returns to the capture state the session entered
// from.
func (s *Session) Retreat() bool {
	switch s.state {
	case StateSkillCapture:
		if s.skill > 0 {
			s.skill--
			return true
		}
		if s.group > 0 {
			s.group--
			s.skill = len(s.catalog.Groups[s.group].Skills) - 1
			return true
		}
		s.state = StateLanding
		return true
	case StateRoleCapture:
		s.state = StateLanding
		return true
	case StateResults:
		if s.mode == ModeRoles {
			s.state = StateRoleCapture
		} else {
			s.state = StateSkillCapture
		}
		return true
	default:
		return false
	}
}

// Reset clears the ledger and returns to Landing. No partial state remains
// observable afterward.
func (s *Session) Reset() {
	s.ledger.clear()
	s.state = StateLanding
	s.mode = ""
	s.group, s.skill = 0, 0
}
