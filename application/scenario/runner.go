package scenario

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"ui_automation/domain/entities"
	"ui_automation/domain/interfaces"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// screenshotRecorder is implemented by page actions that remember their last screenshot
type screenshotRecorder interface {
	LastScreenshot() string
}

// Runner executes scenarios against one driver session
type Runner struct {
	actions interfaces.PageActions
	pages   *Pages
	reports interfaces.ReportStore
	baseURL string
	logger  *logrus.Logger
	now     func() time.Time
}

// NewRunner - creates a runner. reports may be nil to skip persisting reports.
func NewRunner(actions interfaces.PageActions, reports interfaces.ReportStore, baseURL string, logger *logrus.Logger) *Runner {
	return &Runner{
		actions: actions,
		pages:   NewPages(actions),
		reports: reports,
		baseURL: baseURL,
		logger:  logger,
		now:     time.Now,
	}
}

// Run - executes the steps of s in order and stops at the first failure.
// The returned report is complete even when an error is returned.
func (r *Runner) Run(ctx context.Context, s *entities.Scenario) (*entities.Report, error) {
	report := &entities.Report{
		ID:        uuid.NewString(),
		Scenario:  s.Name,
		Status:    entities.ScenarioStatusInProgress,
		Driver:    r.actions.Driver().Name(),
		StartedAt: r.now(),
	}
	r.logger.Infof("Scenario started: %s (run %s)", s.Name, report.ID)

	runErr := r.run(ctx, s, report)

	report.FinishedAt = r.now()
	switch {
	case runErr == nil:
		report.Status = entities.ScenarioStatusPassed
		r.logger.Infof("Scenario passed: %s", s.Name)
	case ctx.Err() != nil:
		report.Status = entities.ScenarioStatusCanceled
		report.Error = runErr.Error()
		r.logger.Warnf("Scenario canceled: %s: %v", s.Name, runErr)
	default:
		report.Status = entities.ScenarioStatusFailed
		report.Error = runErr.Error()
		r.logger.Errorf("Scenario failed: %s: %v", s.Name, runErr)
	}

	if r.reports != nil {
		path, err := r.reports.SaveReport(report)
		if err != nil {
			r.logger.Warnf("Failed to save report: %v", err)
			if runErr == nil {
				runErr = err
			}
		} else {
			r.logger.Infof("Report saved: %s", path)
		}
	}

	return report, runErr
}

func (r *Runner) run(ctx context.Context, s *entities.Scenario, report *entities.Report) error {
	if err := Validate(s); err != nil {
		return err
	}

	if s.URL != "" {
		target, err := resolveURL(r.baseURL, s.URL)
		if err != nil {
			return err
		}
		if err := r.actions.Driver().Navigate(ctx, target); err != nil {
			return err
		}
	}

	for i, step := range s.Steps {
		select {
		case <-ctx.Done():
			return fmt.Errorf("scenario canceled before step %d: %w", i+1, ctx.Err())
		default:
		}

		result := r.executeStep(ctx, step)
		report.Steps = append(report.Steps, result)
		if !result.Success {
			return fmt.Errorf("step %d (%s) failed: %s", i+1, step.Key(), result.Error)
		}
	}
	return nil
}

// executeStep - executes single step
func (r *Runner) executeStep(ctx context.Context, step entities.Step) entities.StepResult {
	def := registry[step.Key()]
	before := r.lastScreenshot()
	started := r.now()

	r.logger.Infof("Step: %s %v", step.Key(), step.Args)
	output, err := def.run(ctx, r.pages, step.Args)

	result := entities.StepResult{
		Step:     step,
		Success:  err == nil,
		Output:   output,
		Duration: r.now().Sub(started),
	}
	if err != nil {
		result.Error = err.Error()
		if shot := r.lastScreenshot(); shot != before {
			result.Screenshot = shot
		}
	}
	return result
}

func (r *Runner) lastScreenshot() string {
	if rec, ok := r.actions.(screenshotRecorder); ok {
		return rec.LastScreenshot()
	}
	return ""
}

// resolveURL - resolves ref against base; absolute refs are kept as they are
func resolveURL(base, ref string) (string, error) {
	refURL, err := url.Parse(ref)
	if err != nil {
		return "", fmt.Errorf("invalid scenario url %q: %w", ref, err)
	}
	if refURL.IsAbs() || base == "" {
		return ref, nil
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid base url %q: %w", base, err)
	}
	return baseURL.ResolveReference(refURL).String(), nil
}
