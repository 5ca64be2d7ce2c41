package terminal

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"ui_automation/application/pages"
	"ui_automation/application/scenario"
	"ui_automation/domain/entities"
	"ui_automation/domain/interfaces"
	"ui_automation/infrastructure/browser"
	"ui_automation/infrastructure/config"
	"ui_automation/infrastructure/storage"
	"ui_automation/infrastructure/utils"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// DriverFactory opens a browser session for a config
type DriverFactory func(cfg *config.Config, logger *logrus.Logger) (interfaces.Driver, error)

type TerminalInterface struct {
	fs        afero.Fs
	out       io.Writer
	newDriver DriverFactory
	console   *logrus.Logger
}

// Option configures a TerminalInterface
type Option func(*TerminalInterface)

// WithFs - replaces the filesystem used for scenarios, logs and artifacts
func WithFs(fs afero.Fs) Option {
	return func(t *TerminalInterface) { t.fs = fs }
}

// WithDriverFactory - replaces the browser backend factory
func WithDriverFactory(f DriverFactory) Option {
	return func(t *TerminalInterface) { t.newDriver = f }
}

func NewTerminalInterface(opts ...Option) *TerminalInterface {
	console := logrus.New()
	console.SetLevel(logrus.InfoLevel)
	console.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	t := &TerminalInterface{
		fs:        afero.NewOsFs(),
		out:       os.Stdout,
		newDriver: browser.NewDriver,
		console:   console,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Validate - parses scenario files without opening a browser
func (t *TerminalInterface) Validate(paths []string) error {
	var failed int
	for _, path := range paths {
		s, err := scenario.Load(t.fs, path)
		if err != nil {
			failed++
			fmt.Fprintf(t.out, "%s %s: %v\n", color.RedString("INVALID"), path, err)
			continue
		}
		fmt.Fprintf(t.out, "%s      %s (%s, %d steps)\n", color.GreenString("OK"), path, s.Name, len(s.Steps))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d scenario(s) invalid", failed, len(paths))
	}
	return nil
}

// Run - executes scenario files against one browser session
func (t *TerminalInterface) Run(ctx context.Context, cfg *config.Config, paths []string) error {
	scenarios := make([]*entities.Scenario, 0, len(paths))
	for _, path := range paths {
		s, err := scenario.Load(t.fs, path)
		if err != nil {
			return err
		}
		scenarios = append(scenarios, s)
	}

	for _, dir := range []string{cfg.LogDir, cfg.ScreenshotDir} {
		if err := t.fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}

	logger, logCloser, err := utils.CreateLogger(t.fs, cfg.LogDir, cfg.LogName)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logCloser.Close()

	reports, err := storage.NewReportStore(t.fs, cfg.ReportDir)
	if err != nil {
		return err
	}

	t.console.Infof("Opening %s browser", cfg.Driver)
	driver, err := t.newDriver(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize browser: %w", err)
	}
	defer func() {
		if err := driver.Close(); err != nil {
			t.console.Warnf("Failed to close browser: %v", err)
		}
	}()

	base := pages.NewBasePage(driver, storage.NewArtifactStore(t.fs, cfg.ScreenshotDir), logger,
		pages.WithTimeout(cfg.WaitTimeout))
	runner := scenario.NewRunner(base, reports, cfg.BaseURL, logger)

	var failed int
	for _, s := range scenarios {
		report, err := runner.Run(ctx, s)
		if err != nil {
			failed++
			fmt.Fprintf(t.out, "%s %s: %v\n", color.RedString("FAIL"), s.Name, err)
			for _, step := range report.Steps {
				if step.Screenshot != "" {
					fmt.Fprintf(t.out, "     screenshot: %s\n", step.Screenshot)
				}
			}
			if ctx.Err() != nil {
				break
			}
			continue
		}
		fmt.Fprintf(t.out, "%s %s (%s)\n", color.GreenString("PASS"), s.Name, report.FinishedAt.Sub(report.StartedAt).Round(time.Millisecond))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d scenario(s) failed", failed, len(scenarios))
	}
	return nil
}
