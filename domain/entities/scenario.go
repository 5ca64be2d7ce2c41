package entities

// Scenario represents a named sequence of page actions
type Scenario struct {
	Name  string `yaml:"name"`
	URL   string `yaml:"url,omitempty"`
	Steps []Step `yaml:"steps"`
}

// ScenarioStatus represents the outcome of a scenario run
type ScenarioStatus string

const (
	ScenarioStatusPending    ScenarioStatus = "pending"
	ScenarioStatusInProgress ScenarioStatus = "in_progress"
	ScenarioStatusPassed     ScenarioStatus = "passed"
	ScenarioStatusFailed     ScenarioStatus = "failed"
	ScenarioStatusCanceled   ScenarioStatus = "canceled"
)
