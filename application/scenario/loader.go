package scenario

import (
	"fmt"

	"ui_automation/domain/entities"
	"ui_automation/infrastructure/utils"

	"github.com/spf13/afero"
)

// Load reads and validates a scenario file
func Load(fs afero.Fs, path string) (*entities.Scenario, error) {
	s, err := utils.LoadYAML[entities.Scenario](fs, path)
	if err != nil {
		return nil, err
	}
	if err := Validate(&s); err != nil {
		return nil, fmt.Errorf("invalid scenario %s: %w", path, err)
	}
	return &s, nil
}
