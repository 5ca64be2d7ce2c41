package browser

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"ui_automation/domain/entities"
	"ui_automation/domain/interfaces"
	"ui_automation/infrastructure/config"

	"github.com/sirupsen/logrus"
	"github.com/tebeka/selenium"
	"github.com/tebeka/selenium/chrome"
)

// legacyNoSuchElement is the JSON wire protocol status for a missing element
const legacyNoSuchElement = 7

type SeleniumController struct {
	wd      selenium.WebDriver
	service *selenium.Service
	logger  *logrus.Logger
}

// findChromeDriver - finds ChromeDriver executable path
func findChromeDriver(configured string) (string, error) {
	if configured != "" {
		if _, err := os.Stat(configured); err == nil {
			return configured, nil
		}
	}

	commonPaths := []string{
		"/usr/local/bin/chromedriver",
		"/usr/bin/chromedriver",
		"/opt/homebrew/bin/chromedriver",
		filepath.Join(os.Getenv("HOME"), "bin", "chromedriver"),
	}

	for _, path := range commonPaths {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	if path, err := exec.LookPath("chromedriver"); err == nil {
		return path, nil
	}

	return "", fmt.Errorf("chromedriver not found. Please install it or set BROWSER_DRIVER_PATH environment variable")
}

// findChromeBinary - finds Chrome/Chromium browser executable path
func findChromeBinary(configured string) string {
	if configured != "" {
		if _, err := os.Stat(configured); err == nil {
			return configured
		}
	}

	chromePaths := []string{
		"/Applications/Google Chrome.app/Contents/MacOS/Google Chrome",
		"/Applications/Chromium.app/Contents/MacOS/Chromium",
		"/usr/bin/google-chrome",
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		`C:\Program Files\Google\Chrome\Application\chrome.exe`,
		`C:\Program Files (x86)\Google\Chrome\Application\chrome.exe`,
	}

	for _, path := range chromePaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	for _, name := range []string{"google-chrome", "chromium", "chromium-browser"} {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}

	return ""
}

// chromeArgs - builds chrome command line arguments for the config
func chromeArgs(cfg *config.Config) []string {
	args := []string{
		"--disable-dev-shm-usage",
		"--no-sandbox",
		"--window-size=1280,720",
	}
	if cfg.Headless {
		args = append(args, "--headless=new")
	}
	return args
}

// NewSeleniumController - starts chromedriver and opens a WebDriver session
func NewSeleniumController(cfg *config.Config, logger *logrus.Logger) (*SeleniumController, error) {
	driverPath, err := findChromeDriver(cfg.ChromeDriverPath)
	if err != nil {
		return nil, fmt.Errorf("failed to find chromedriver: %w", err)
	}
	logger.Infof("Using ChromeDriver at: %s", driverPath)

	service, err := selenium.NewChromeDriverService(driverPath, cfg.SeleniumPort)
	if err != nil {
		return nil, fmt.Errorf("failed to start chromedriver: %w", err)
	}

	caps := selenium.Capabilities{
		"browserName": "chrome",
	}
	chromeCaps := chrome.Capabilities{
		Args: chromeArgs(cfg),
	}
	if chromeBinary := findChromeBinary(cfg.ChromeBinaryPath); chromeBinary != "" {
		logger.Infof("Using Chrome binary at: %s", chromeBinary)
		chromeCaps.Path = chromeBinary
	}
	caps.AddChrome(chromeCaps)

	wd, err := selenium.NewRemote(caps, fmt.Sprintf("http://localhost:%d/wd/hub", cfg.SeleniumPort))
	if err != nil {
		service.Stop()
		if strings.Contains(err.Error(), "cannot find Chrome binary") {
			return nil, fmt.Errorf("failed to create webdriver: Chrome browser not found. Please install Google Chrome or set CHROME_BINARY_PATH environment variable. Error: %w", err)
		}
		return nil, fmt.Errorf("failed to create webdriver: %w", err)
	}

	return &SeleniumController{
		wd:      wd,
		service: service,
		logger:  logger,
	}, nil
}

// Name - returns the backend name
func (s *SeleniumController) Name() string {
	return config.DriverSelenium
}

// Navigate - navigates browser to specified URL
func (s *SeleniumController) Navigate(ctx context.Context, url string) error {
	s.logger.Infof("Navigating to: %s", url)
	if err := s.wd.Get(url); err != nil {
		return fmt.Errorf("failed to navigate to %s: %w", url, err)
	}
	return nil
}

// FindElementByXPath - finds the first element matching xpath without waiting
func (s *SeleniumController) FindElementByXPath(ctx context.Context, xpath string) (interfaces.Element, error) {
	element, err := s.wd.FindElement(selenium.ByXPATH, xpath)
	if err != nil {
		if isNoSuchElement(err) {
			return nil, fmt.Errorf("%w: %s", entities.ErrElementNotFound, xpath)
		}
		return nil, fmt.Errorf("failed to query %s: %w", xpath, err)
	}
	return &seleniumElement{el: element}, nil
}

// Title - returns current page title
func (s *SeleniumController) Title(ctx context.Context) (string, error) {
	return s.wd.Title()
}

// Screenshot - takes screenshot of current page
func (s *SeleniumController) Screenshot(ctx context.Context) ([]byte, error) {
	return s.wd.Screenshot()
}

// SwitchToTab - switches to a window by index
func (s *SeleniumController) SwitchToTab(ctx context.Context, index int) error {
	handles, err := s.wd.WindowHandles()
	if err != nil {
		return fmt.Errorf("failed to list windows: %w", err)
	}
	if index < 0 || index >= len(handles) {
		return fmt.Errorf("invalid tab index: %d (available tabs: %d)", index, len(handles))
	}
	return s.wd.SwitchWindow(handles[index])
}

// TabsCount - returns the number of open windows
func (s *SeleniumController) TabsCount(ctx context.Context) (int, error) {
	handles, err := s.wd.WindowHandles()
	if err != nil {
		return 0, fmt.Errorf("failed to list windows: %w", err)
	}
	return len(handles), nil
}

// Close - closes browser and stops ChromeDriver service
func (s *SeleniumController) Close() error {
	var closeErr error
	if s.wd != nil {
		if err := s.wd.Quit(); err != nil {
			closeErr = fmt.Errorf("failed to quit webdriver: %w", err)
		}
		s.wd = nil
	}
	if s.service != nil {
		if err := s.service.Stop(); err != nil && closeErr == nil {
			closeErr = fmt.Errorf("failed to stop chromedriver: %w", err)
		}
		s.service = nil
	}
	s.logger.Info("Selenium driver closed")
	return closeErr
}

// isNoSuchElement - reports whether a WebDriver error means nothing matched
func isNoSuchElement(err error) bool {
	var serr *selenium.Error
	if errors.As(err, &serr) {
		return serr.Err == "no such element" || serr.LegacyCode == legacyNoSuchElement
	}
	return strings.Contains(err.Error(), "no such element")
}

type seleniumElement struct {
	el selenium.WebElement
}

func (e *seleniumElement) Click(ctx context.Context) error {
	return e.el.Click()
}

func (e *seleniumElement) Clear(ctx context.Context) error {
	return e.el.Clear()
}

func (e *seleniumElement) SendKeys(ctx context.Context, text string) error {
	return e.el.SendKeys(text)
}

func (e *seleniumElement) Submit(ctx context.Context) error {
	return e.el.Submit()
}

func (e *seleniumElement) Value(ctx context.Context) (string, error) {
	return e.el.GetAttribute("value")
}

func (e *seleniumElement) IsDisplayed(ctx context.Context) (bool, error) {
	return e.el.IsDisplayed()
}

func (e *seleniumElement) IsEnabled(ctx context.Context) (bool, error) {
	return e.el.IsEnabled()
}

// Ensure SeleniumController implements the driver interfaces
var (
	_ interfaces.Driver      = (*SeleniumController)(nil)
	_ interfaces.TabSwitcher = (*SeleniumController)(nil)
	_ interfaces.Element     = (*seleniumElement)(nil)
)
