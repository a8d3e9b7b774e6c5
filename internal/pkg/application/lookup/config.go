package lookup

import (
	"io"

	yaml "gopkg.in/yaml.v2"
)

// Request describes a single lookup of a compound. An empty operation means
// a property lookup and an empty property list means every known property.
type Request struct {
	Namespace  string    `yaml:"namespace"`
	Identifier string    `yaml:"identifier"`
	Operation  Operation `yaml:"operation"`
	Properties []string  `yaml:"properties"`
}

type Config struct {
	Lookups []Request `yaml:"lookups"`
}

func LoadConfiguration(data io.Reader) (*Config, error) {

	buf, err := io.ReadAll(data)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	err = yaml.Unmarshal(buf, &cfg)

	return cfg, err
}
