package browser

import (
	"fmt"

	"ui_automation/domain/interfaces"
	"ui_automation/infrastructure/config"

	"github.com/sirupsen/logrus"
)

// NewDriver - opens a browser session on the backend named by cfg.Driver
func NewDriver(cfg *config.Config, logger *logrus.Logger) (interfaces.Driver, error) {
	switch cfg.Driver {
	case config.DriverPlaywright:
		return NewPlaywrightDriver(cfg, logger)
	case config.DriverSelenium:
		controller, err := NewSeleniumController(cfg, logger)
		if err != nil {
			return nil, err
		}
		return controller, nil
	default:
		return nil, fmt.Errorf("unknown driver %q", cfg.Driver)
	}
}
