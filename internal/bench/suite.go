package bench

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// LoadSuite reads a TOML benchmark suite. Cases with no key get a
// generated one so export rows stay addressable.
func LoadSuite(path string) (Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Suite{}, err
	}

	var s Suite
	if err := toml.Unmarshal(data, &s); err != nil {
		return Suite{}, fmt.Errorf("parse suite %s: %w", path, err)
	}
	if len(s.Models) == 0 {
		return Suite{}, fmt.Errorf("suite %s lists no models", path)
	}
	if len(s.Cases) == 0 {
		return Suite{}, fmt.Errorf("suite %s lists no cases", path)
	}

	for i := range s.Cases {
		if s.Cases[i].Key == "" {
			s.Cases[i].Key = fmt.Sprintf("case_%03d", i+1)
		}
		if s.Cases[i].LastType == "" {
			s.Cases[i].LastType = "none"
		}
	}
	return s, nil
}
