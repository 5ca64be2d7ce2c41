package browser

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"ui_automation/domain/entities"
	"ui_automation/domain/interfaces"
	"ui_automation/infrastructure/config"

	"github.com/playwright-community/playwright-go"
	"github.com/sirupsen/logrus"
)

type playwrightDriver struct {
	pw         *playwright.Playwright
	browser    playwright.Browser
	context    playwright.BrowserContext
	page       playwright.Page
	pages      []playwright.Page
	pagesMutex sync.Mutex
	timeoutMS  float64
	logger     *logrus.Logger
}

// NewPlaywrightDriver - launches Chromium through Playwright and opens one page
func NewPlaywrightDriver(cfg *config.Config, logger *logrus.Logger) (interfaces.Driver, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to start playwright: %w", err)
	}

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(cfg.Headless),
		SlowMo:   playwright.Float(cfg.SlowMo),
		Args: []string{
			"--disable-dev-shm-usage",
			"--no-sandbox",
			"--disable-popup-blocking",
		},
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	context, err := browser.NewContext(playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{
			Width:  1280,
			Height: 720,
		},
		IgnoreHttpsErrors: playwright.Bool(true),
	})
	if err != nil {
		browser.Close()
		pw.Stop()
		return nil, fmt.Errorf("failed to create context: %w", err)
	}

	page, err := context.NewPage()
	if err != nil {
		context.Close()
		browser.Close()
		pw.Stop()
		return nil, fmt.Errorf("failed to create page: %w", err)
	}

	d := &playwrightDriver{
		pw:        pw,
		browser:   browser,
		context:   context,
		page:      page,
		pages:     []playwright.Page{page},
		timeoutMS: float64(cfg.WaitTimeout.Milliseconds()),
		logger:    logger,
	}
	page.SetDefaultTimeout(d.timeoutMS)

	// Popups opened by the page under test become the current page
	context.OnPage(func(newPage playwright.Page) {
		d.pagesMutex.Lock()
		defer d.pagesMutex.Unlock()

		if d.indexOf(newPage) >= 0 {
			return
		}
		newPage.SetDefaultTimeout(d.timeoutMS)
		d.pages = append(d.pages, newPage)
		d.page = newPage
		d.logger.Infof("Switched to new page (%d open)", len(d.pages))

		newPage.OnClose(d.forget)
	})
	page.OnClose(d.forget)

	logger.Infof("Playwright driver started (headless=%t)", cfg.Headless)
	return d, nil
}

// forget - drops a closed page and falls back to the first remaining one
func (d *playwrightDriver) forget(closedPage playwright.Page) {
	d.pagesMutex.Lock()
	defer d.pagesMutex.Unlock()

	if i := d.indexOf(closedPage); i >= 0 {
		d.pages = append(d.pages[:i], d.pages[i+1:]...)
	}
	if d.page == closedPage && len(d.pages) > 0 {
		d.page = d.pages[0]
	}
}

// indexOf - must be called with pagesMutex held
func (d *playwrightDriver) indexOf(p playwright.Page) int {
	for i, candidate := range d.pages {
		if candidate == p {
			return i
		}
	}
	return -1
}

func (d *playwrightDriver) currentPage() playwright.Page {
	d.pagesMutex.Lock()
	defer d.pagesMutex.Unlock()
	return d.page
}

// Name - returns the backend name
func (d *playwrightDriver) Name() string {
	return config.DriverPlaywright
}

// Navigate - navigates the current page to url
func (d *playwrightDriver) Navigate(ctx context.Context, url string) error {
	d.logger.Infof("Navigating to: %s", url)
	_, err := d.currentPage().Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateLoad,
	})
	if err != nil {
		return fmt.Errorf("failed to navigate to %s: %w", url, err)
	}
	return nil
}

// FindElementByXPath - resolves the first element matching xpath without waiting
func (d *playwrightDriver) FindElementByXPath(ctx context.Context, xpath string) (interfaces.Element, error) {
	locator := d.currentPage().Locator("xpath=" + xpath)

	count, err := locator.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", xpath, err)
	}
	if count == 0 {
		return nil, fmt.Errorf("%w: %s", entities.ErrElementNotFound, xpath)
	}

	return &playwrightElement{locator: locator.First()}, nil
}

// Title - returns the current page title
func (d *playwrightDriver) Title(ctx context.Context) (string, error) {
	return d.currentPage().Title()
}

// Screenshot - captures the current viewport
func (d *playwrightDriver) Screenshot(ctx context.Context) ([]byte, error) {
	return d.currentPage().Screenshot()
}

// SwitchToTab - switches to a tab by index
func (d *playwrightDriver) SwitchToTab(ctx context.Context, index int) error {
	d.pagesMutex.Lock()
	defer d.pagesMutex.Unlock()

	if index < 0 || index >= len(d.pages) {
		return fmt.Errorf("invalid tab index: %d (available tabs: %d)", index, len(d.pages))
	}
	d.page = d.pages[index]
	return d.page.BringToFront()
}

// TabsCount - returns the number of open tabs
func (d *playwrightDriver) TabsCount(ctx context.Context) (int, error) {
	d.pagesMutex.Lock()
	defer d.pagesMutex.Unlock()
	return len(d.pages), nil
}

// Close - closes the context, the browser and the Playwright driver
func (d *playwrightDriver) Close() error {
	var errs []string

	if d.context != nil {
		if err := d.context.Close(); err != nil && !isClosedErr(err) {
			errs = append(errs, fmt.Sprintf("failed to close context: %v", err))
		}
		d.context = nil
	}
	if d.browser != nil {
		if err := d.browser.Close(); err != nil && !isClosedErr(err) {
			errs = append(errs, fmt.Sprintf("failed to close browser: %v", err))
		}
		d.browser = nil
	}
	if d.pw != nil {
		if err := d.pw.Stop(); err != nil {
			errs = append(errs, fmt.Sprintf("failed to stop playwright: %v", err))
		}
		d.pw = nil
	}

	d.logger.Info("Playwright driver closed")
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func isClosedErr(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "closed") || strings.Contains(msg, "target closed")
}

type playwrightElement struct {
	locator playwright.Locator
}

func (e *playwrightElement) Click(ctx context.Context) error {
	return e.locator.Click()
}

func (e *playwrightElement) Clear(ctx context.Context) error {
	return e.locator.Clear()
}

// SendKeys - presses one key per character so existing content is kept
func (e *playwrightElement) SendKeys(ctx context.Context, text string) error {
	return e.locator.PressSequentially(text)
}

func (e *playwrightElement) Submit(ctx context.Context) error {
	_, err := e.locator.Evaluate(`el => {
		const form = el.form || el.closest('form');
		if (!form) { throw new Error('element is not inside a form'); }
		form.requestSubmit ? form.requestSubmit() : form.submit();
	}`, nil)
	return err
}

func (e *playwrightElement) Value(ctx context.Context) (string, error) {
	return e.locator.InputValue()
}

func (e *playwrightElement) IsDisplayed(ctx context.Context) (bool, error) {
	return e.locator.IsVisible()
}

func (e *playwrightElement) IsEnabled(ctx context.Context) (bool, error) {
	return e.locator.IsEnabled()
}

var (
	_ interfaces.Driver      = (*playwrightDriver)(nil)
	_ interfaces.TabSwitcher = (*playwrightDriver)(nil)
	_ interfaces.Element     = (*playwrightElement)(nil)
)
