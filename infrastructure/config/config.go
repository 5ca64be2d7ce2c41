package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	DriverPlaywright = "playwright"
	DriverSelenium   = "selenium"

	DefaultWaitTimeout   = 10 * time.Second
	DefaultSeleniumPort  = 9515
	DefaultScreenshotDir = "./screenshots"
	DefaultLogDir        = "./logs"
	DefaultReportDir     = "./reports"
)

// Config holds the settings of a UI test run
type Config struct {
	Driver        string
	BaseURL       string
	Headless      bool
	SlowMo        float64
	WaitTimeout   time.Duration
	ScreenshotDir string
	LogDir        string
	LogName       string
	ReportDir     string

	ChromeDriverPath string
	ChromeBinaryPath string
	SeleniumPort     int
}

// Default returns the configuration used when no variables are set
func Default() *Config {
	return &Config{
		Driver:        DriverPlaywright,
		Headless:      true,
		WaitTimeout:   DefaultWaitTimeout,
		ScreenshotDir: DefaultScreenshotDir,
		LogDir:        DefaultLogDir,
		ReportDir:     DefaultReportDir,
		SeleniumPort:  DefaultSeleniumPort,
	}
}

// Load reads .env if present, then the process environment
func Load(logger *logrus.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env file is optional
		logger.Debug("No .env file found, using environment variables")
	}
	return FromEnv()
}

// FromEnv builds a config from environment variables over the defaults
func FromEnv() (*Config, error) {
	cfg := Default()

	if v := os.Getenv("UI_DRIVER"); v != "" {
		cfg.Driver = v
	}
	cfg.BaseURL = os.Getenv("UI_BASE_URL")

	if v := os.Getenv("HEADLESS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid HEADLESS value %q: %w", v, err)
		}
		cfg.Headless = b
	}

	if v := os.Getenv("SLOW_MO"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid SLOW_MO value %q: %w", v, err)
		}
		cfg.SlowMo = f
	}

	if v := os.Getenv("UI_WAIT_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid UI_WAIT_TIMEOUT value %q: %w", v, err)
		}
		cfg.WaitTimeout = d
	}

	if v := os.Getenv("SCREENSHOT_DIR"); v != "" {
		cfg.ScreenshotDir = v
	}
	if v := os.Getenv("LOG_DIR"); v != "" {
		cfg.LogDir = v
	}
	cfg.LogName = os.Getenv("LOG_NAME")
	if v := os.Getenv("REPORT_DIR"); v != "" {
		cfg.ReportDir = v
	}

	cfg.ChromeDriverPath = os.Getenv("BROWSER_DRIVER_PATH")
	cfg.ChromeBinaryPath = os.Getenv("CHROME_BINARY_PATH")
	if v := os.Getenv("SELENIUM_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SELENIUM_PORT value %q: %w", v, err)
		}
		cfg.SeleniumPort = port
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the config for unusable values
func (c *Config) Validate() error {
	switch c.Driver {
	case DriverPlaywright, DriverSelenium:
	default:
		return fmt.Errorf("unknown driver %q (expected %s or %s)", c.Driver, DriverPlaywright, DriverSelenium)
	}
	if c.WaitTimeout <= 0 {
		return fmt.Errorf("wait timeout must be positive, got %s", c.WaitTimeout)
	}
	if c.SeleniumPort <= 0 || c.SeleniumPort > 65535 {
		return fmt.Errorf("invalid selenium port %d", c.SeleniumPort)
	}
	return nil
}
