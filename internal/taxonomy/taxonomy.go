// Package taxonomy holds the static reference data the assessment runs
// against: skill groups, proficiency level anchors, and the target-role
// catalog. Everything here is immutable after load.
package taxonomy

import (
	"fmt"

	"github.com/rotisserie/eris"
)

// Skill is a single assessable capability.
type Skill struct {
	Name   string `yaml:"name" json:"name"`
	Prompt string `yaml:"prompt" json:"prompt"`
}

// SkillGroup is a named cluster of related skills, walked in order by the
// wizard.
type SkillGroup struct {
	Name   string  `yaml:"name" json:"name"`
	Intro  string  `yaml:"intro" json:"intro"`
	Skills []Skill `yaml:"skills" json:"skills"`
}

// LevelOption is one of the fixed proficiency anchors shared by all skills.
// Scores must be strictly increasing across the ordered set.
type LevelOption struct {
	Label       string `yaml:"label" json:"label"`
	Score       int    `yaml:"score" json:"score"`
	Description string `yaml:"description" json:"description"`
}

// RoleSkill pairs a skill name with the role's ideal importance (0-100).
// Declaration order is preserved and drives gap ordering in match results.
type RoleSkill struct {
	Name       string `yaml:"name" json:"name"`
	Importance int    `yaml:"importance" json:"importance"`
}

// RoleProfile describes a target occupation: title, compensation band, and
// its ideal skill-importance profile.
type RoleProfile struct {
	ID         string      `yaml:"id" json:"id"`
	Title      string      `yaml:"title" json:"title"`
	Subtitle   string      `yaml:"subtitle" json:"subtitle"`
	CompLow    int         `yaml:"comp_low" json:"comp_low"`
	CompMedian int         `yaml:"comp_median" json:"comp_median"`
	CompHigh   int         `yaml:"comp_high" json:"comp_high"`
	Skills     []RoleSkill `yaml:"skills" json:"skills"`
}

// Importance returns the role's ideal importance for a skill, and whether
// the role declares that skill at all.
func (r *RoleProfile) Importance(skill string) (int, bool) {
	for _, rs := range r.Skills {
		if rs.Name == skill {
			return rs.Importance, true
		}
	}
	return 0, false
}

// Catalog is the full taxonomy: groups, level anchors, and roles.
type Catalog struct {
	Groups []SkillGroup  `yaml:"groups" json:"groups"`
	Levels []LevelOption `yaml:"levels" json:"levels"`
	Roles  []RoleProfile `yaml:"roles" json:"roles"`
}

// SkillNames returns all skill names in wizard walk order.
func (c *Catalog) SkillNames() []string {
	var names []string
	for _, g := range c.Groups {
		for _, s := range g.Skills {
			names = append(names, s.Name)
		}
	}
	return names
}

// HasSkill reports whether the catalog defines the named skill.
func (c *Catalog) HasSkill(name string) bool {
	for _, g := range c.Groups {
		for _, s := range g.Skills {
			if s.Name == name {
				return true
			}
		}
	}
	return false
}

// Role returns the role with the given ID, or nil if unknown.
func (c *Catalog) Role(id string) *RoleProfile {
	for i := range c.Roles {
		if c.Roles[i].ID == id {
			return &c.Roles[i]
		}
	}
	return nil
}

// ValidScore reports whether score is one of the fixed level anchors.
func (c *Catalog) ValidScore(score int) bool {
	for _, l := range c.Levels {
		if l.Score == score {
			return true
		}
	}
	return false
}

// Validate checks catalog integrity. A role referencing an unknown skill,
// non-monotonic level anchors, or an inverted compensation band is a fatal
// configuration error: the process should refuse to start rather than
// produce silently wrong matches.
func (c *Catalog) Validate() error {
	if len(c.Groups) == 0 {
		return eris.New("taxonomy: no skill groups defined")
	}
	if len(c.Levels) < 2 {
		return eris.New("taxonomy: at least two level options are required")
	}

	seen := make(map[string]bool)
	for _, g := range c.Groups {
		if g.Name == "" {
			return eris.New("taxonomy: skill group with empty name")
		}
		if len(g.Skills) == 0 {
			return eris.Errorf("taxonomy: group %q has no skills", g.Name)
		}
		for _, s := range g.Skills {
			if s.Name == "" {
				return eris.Errorf("taxonomy: group %q has a skill with empty name", g.Name)
			}
			if seen[s.Name] {
				return eris.Errorf("taxonomy: duplicate skill %q", s.Name)
			}
			seen[s.Name] = true
		}
	}

	prev := -1
	for i, l := range c.Levels {
		if l.Score < 0 || l.Score > 100 {
			return eris.Errorf("taxonomy: level %q score %d out of range", l.Label, l.Score)
		}
		if l.Score <= prev {
			return eris.Errorf("taxonomy: level scores must be strictly increasing (position %d)", i)
		}
		prev = l.Score
	}

	roleIDs := make(map[string]bool)
	for _, r := range c.Roles {
		if r.ID == "" {
			return eris.Errorf("taxonomy: role %q has empty id", r.Title)
		}
		if roleIDs[r.ID] {
			return eris.Errorf("taxonomy: duplicate role id %q", r.ID)
		}
		roleIDs[r.ID] = true

		if len(r.Skills) == 0 {
			return eris.Errorf("taxonomy: role %q declares no skills", r.ID)
		}
		for _, rs := range r.Skills {
			if !seen[rs.Name] {
				return eris.Errorf("taxonomy: role %q references unknown skill %q", r.ID, rs.Name)
			}
			if rs.Importance < 0 || rs.Importance > 100 {
				return eris.Errorf("taxonomy: role %q skill %q importance %d out of range", r.ID, rs.Name, rs.Importance)
			}
		}
		if r.CompLow <= 0 || r.CompLow > r.CompMedian || r.CompMedian > r.CompHigh {
			return eris.New(fmt.Sprintf("taxonomy: role %q compensation band is not ordered", r.ID))
		}
	}

	return nil
}
