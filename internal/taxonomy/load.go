package taxonomy

import (
	_ "embed"
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultCatalog []byte

// Default returns the built-in catalog: four skill groups of three skills
// each, the Rarely/Sometimes/Often/Daily level anchors, and six roles.
func Default() (*Catalog, error) {
	return parse(defaultCatalog)
}

// Load reads a catalog from a YAML file. Malformed entries fail here, at
// load time, not at match time.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "taxonomy: read catalog %s", path)
	}
	return parse(data)
}

func parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, eris.Wrap(err, "taxonomy: parse catalog")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}
