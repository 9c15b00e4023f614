package main

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/tapiwanashenyerenyere-afk/Career-Craft-V7/internal/taxonomy"
)

// answersFile is the on-disk shape accepted by `match` and `advise`:
// recorded skill scores plus optional role selections.
type answersFile struct {
	Skills map[string]int `yaml:"skills" json:"skills"`
	Roles  []string       `yaml:"roles,omitempty" json:"roles,omitempty"`
}

// readAnswers loads an answers file (YAML, or JSON by extension) and drops
// entries that don't exist in the catalog. Unknown skills are logged, not
// fatal: the file is user input, not configuration.
func readAnswers(path string, catalog *taxonomy.Catalog) (*answersFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "answers: read %s", path)
	}

	var af answersFile
	if filepath.Ext(path) == ".json" {
		err = json.Unmarshal(data, &af)
	} else {
		err = yaml.Unmarshal(data, &af)
	}
	if err != nil {
		return nil, eris.Wrapf(err, "answers: parse %s", path)
	}

	for name := range af.Skills {
		if !catalog.HasSkill(name) {
			zap.L().Warn("answers: skipping unknown skill", zap.String("skill", name))
			delete(af.Skills, name)
		}
	}
	var roles []string
	for _, id := range af.Roles {
		if catalog.Role(id) == nil {
			zap.L().Warn("answers: skipping unknown role", zap.String("role", id))
			continue
		}
		roles = append(roles, id)
	}
	af.Roles = roles

	return &af, nil
}
