package entities

import (
	"fmt"
	"time"
)

// Step represents a single page action of a scenario
type Step struct {
	Page   string   `yaml:"page"`
	Action string   `yaml:"action"`
	Args   []string `yaml:"args,omitempty"`
}

// Key returns the registry key of the step, e.g. "login.click_login"
func (s Step) Key() string {
	return fmt.Sprintf("%s.%s", s.Page, s.Action)
}

// StepResult represents the result of a step
type StepResult struct {
	Step       Step          `yaml:"step"`
	Success    bool          `yaml:"success"`
	Output     string        `yaml:"output,omitempty"`
	Error      string        `yaml:"error,omitempty"`
	Screenshot string        `yaml:"screenshot,omitempty"`
	Duration   time.Duration `yaml:"duration"`
}

// Report is the persisted record of one scenario run
type Report struct {
	ID         string         `yaml:"id"`
	Scenario   string         `yaml:"scenario"`
	Status     ScenarioStatus `yaml:"status"`
	Driver     string         `yaml:"driver,omitempty"`
	StartedAt  time.Time      `yaml:"started_at"`
	FinishedAt time.Time      `yaml:"finished_at"`
	Steps      []StepResult   `yaml:"steps"`
	Error      string         `yaml:"error,omitempty"`
}

// Failed reports whether the run did not pass
func (r *Report) Failed() bool {
	return r.Status != ScenarioStatusPassed
}
