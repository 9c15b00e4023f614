package taxonomy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCatalog() *Catalog {
	return &Catalog{
		Groups: []SkillGroup{
			{Name: "Thinking", Skills: []Skill{
				{Name: "Problem solving", Prompt: "How often do you untangle messy problems?"},
				{Name: "Explaining ideas", Prompt: "How often do you explain complex things simply?"},
			}},
			{Name: "People", Skills: []Skill{
				{Name: "Leading people", Prompt: "How often do you guide others' work?"},
			}},
		},
		Levels: []LevelOption{
			{Label: "Rarely", Score: 20},
			{Label: "Sometimes", Score: 45},
			{Label: "Often", Score: 70},
			{Label: "Daily", Score: 95},
		},
		Roles: []RoleProfile{
			{
				ID: "pm", Title: "Product Manager", Subtitle: "Shapes what gets built",
				CompLow: 95000, CompMedian: 140000, CompHigh: 180000,
				Skills: []RoleSkill{
					{Name: "Problem solving", Importance: 85},
					{Name: "Explaining ideas", Importance: 80},
				},
			},
		},
	}
}

func TestValidate_AcceptsWellFormedCatalog(t *testing.T) {
	assert.NoError(t, validCatalog().Validate())
}

func TestValidate_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Catalog)
		wantErr string
	}{
		{
			name:    "no groups",
			mutate:  func(c *Catalog) { c.Groups = nil },
			wantErr: "no skill groups",
		},
		{
			name:    "single level",
			mutate:  func(c *Catalog) { c.Levels = c.Levels[:1] },
			wantErr: "at least two level options",
		},
		{
			name: "duplicate skill across groups",
			mutate: func(c *Catalog) {
				c.Groups[1].Skills = append(c.Groups[1].Skills, Skill{Name: "Problem solving"})
			},
			wantErr: "duplicate skill",
		},
		{
			name: "non-increasing level scores",
			mutate: func(c *Catalog) {
				c.Levels[2].Score = 45
			},
			wantErr: "strictly increasing",
		},
		{
			name: "level score out of range",
			mutate: func(c *Catalog) {
				c.Levels[3].Score = 120
			},
			wantErr: "out of range",
		},
		{
			name: "role references unknown skill",
			mutate: func(c *Catalog) {
				c.Roles[0].Skills[0].Name = "Juggling"
			},
			wantErr: "unknown skill",
		},
		{
			name: "duplicate role id",
			mutate: func(c *Catalog) {
				c.Roles = append(c.Roles, c.Roles[0])
			},
			wantErr: "duplicate role id",
		},
		{
			name: "role with no skills",
			mutate: func(c *Catalog) {
				c.Roles[0].Skills = nil
			},
			wantErr: "declares no skills",
		},
		{
			name: "importance out of range",
			mutate: func(c *Catalog) {
				c.Roles[0].Skills[0].Importance = 101
			},
			wantErr: "importance",
		},
		{
			name: "inverted compensation band",
			mutate: func(c *Catalog) {
				c.Roles[0].CompMedian = 200000
			},
			wantErr: "compensation band",
		},
		{
			name: "zero compensation floor",
			mutate: func(c *Catalog) {
				c.Roles[0].CompLow = 0
			},
			wantErr: "compensation band",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCatalog()
			tt.mutate(c)
			err := c.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCatalogLookups(t *testing.T) {
	c := validCatalog()

	assert.Equal(t, []string{"Problem solving", "Explaining ideas", "Leading people"}, c.SkillNames())

	assert.True(t, c.HasSkill("Leading people"))
	assert.False(t, c.HasSkill("Juggling"))

	require.NotNil(t, c.Role("pm"))
	assert.Equal(t, "Product Manager", c.Role("pm").Title)
	assert.Nil(t, c.Role("astronaut"))

	assert.True(t, c.ValidScore(45))
	assert.False(t, c.ValidScore(50))

	imp, ok := c.Role("pm").Importance("Explaining ideas")
	require.True(t, ok)
	assert.Equal(t, 80, imp)
	_, ok = c.Role("pm").Importance("Leading people")
	assert.False(t, ok)
}

func TestDefault_LoadsAndValidates(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Len(t, c.Groups, 4)
	assert.Len(t, c.Levels, 4)
	assert.Len(t, c.Roles, 6)
	assert.Len(t, c.SkillNames(), 12)

	// Every role profile references only defined skills at valid scores;
	// Validate already ran inside Default.
	for _, r := range c.Roles {
		for _, rs := range r.Skills {
			assert.True(t, c.HasSkill(rs.Name))
		}
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/catalog.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read catalog")
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	data := `
groups:
  - name: Thinking
    skills:
      - name: Problem solving
        prompt: How often?
levels:
  - {label: Rarely, score: 20}
  - {label: Daily, score: 95}
roles:
  - id: pm
    title: Product Manager
    comp_low: 95000
    comp_median: 140000
    comp_high: 180000
    skills:
      - {name: Problem solving, importance: 85}
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.True(t, c.HasSkill("Problem solving"))
	assert.Equal(t, 140000, c.Role("pm").CompMedian)
}
