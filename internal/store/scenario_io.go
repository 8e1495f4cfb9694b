package store

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"gravlab/internal/domain"
)

// LoadScenario reads a YAML scenario file and validates it. Fields absent
// from the file keep their defaults, so a scenario can override just the
// values under study.
func LoadScenario(path string) (domain.Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Scenario{}, fmt.Errorf("reading scenario: %w", err)
	}

	sc := domain.DefaultScenario()
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return domain.Scenario{}, fmt.Errorf("parsing scenario %s: %w", path, err)
	}
	if err := sc.Validate(); err != nil {
		return domain.Scenario{}, err
	}
	return sc, nil
}
