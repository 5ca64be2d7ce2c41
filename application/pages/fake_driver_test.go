package pages

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"
	"time"

	"ui_automation/domain/entities"
	"ui_automation/domain/interfaces"
	"ui_automation/infrastructure/storage"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// fakeElement is an in-memory element with just enough behaviour for the page layer
type fakeElement struct {
	name      string
	value     string
	hidden    bool
	disabled  bool
	clicks    int
	submitted bool
	onClick   func()

	// displayErrs are returned by successive IsDisplayed calls before the real state
	displayErrs []error
}

func (e *fakeElement) Click(ctx context.Context) error {
	e.clicks++
	if e.onClick != nil {
		e.onClick()
	}
	return nil
}

func (e *fakeElement) Clear(ctx context.Context) error {
	e.value = ""
	return nil
}

func (e *fakeElement) SendKeys(ctx context.Context, text string) error {
	e.value += text
	return nil
}

func (e *fakeElement) Submit(ctx context.Context) error {
	e.submitted = true
	return nil
}

func (e *fakeElement) Value(ctx context.Context) (string, error) {
	return e.value, nil
}

func (e *fakeElement) IsDisplayed(ctx context.Context) (bool, error) {
	if len(e.displayErrs) > 0 {
		err := e.displayErrs[0]
		e.displayErrs = e.displayErrs[1:]
		return false, err
	}
	return !e.hidden, nil
}

func (e *fakeElement) IsEnabled(ctx context.Context) (bool, error) {
	return !e.disabled, nil
}

// fakeDriver serves elements keyed by their exact XPath
type fakeDriver struct {
	elements    map[string]*fakeElement
	appearAfter map[string]int
	lookups     map[string]int
	title       string
	screenshots int
	queryErr    error
}

func newFakeDriver() *fakeDriver {
	return &fakeDriver{
		elements:    make(map[string]*fakeElement),
		appearAfter: make(map[string]int),
		lookups:     make(map[string]int),
		title:       "Fake Page",
	}
}

func (d *fakeDriver) add(xpath entities.Locator, el *fakeElement) *fakeElement {
	el.name = xpath.String()
	d.elements[xpath.String()] = el
	return el
}

func (d *fakeDriver) Navigate(ctx context.Context, url string) error { return nil }

func (d *fakeDriver) FindElementByXPath(ctx context.Context, xpath string) (interfaces.Element, error) {
	d.lookups[xpath]++
	if d.queryErr != nil {
		return nil, d.queryErr
	}
	el, ok := d.elements[xpath]
	if !ok || d.lookups[xpath] <= d.appearAfter[xpath] {
		return nil, fmt.Errorf("%w: %s", entities.ErrElementNotFound, xpath)
	}
	return el, nil
}

func (d *fakeDriver) Title(ctx context.Context) (string, error) { return d.title, nil }

func (d *fakeDriver) Screenshot(ctx context.Context) ([]byte, error) {
	d.screenshots++
	return []byte("\x89PNG fake"), nil
}

func (d *fakeDriver) Name() string { return "fake" }

func (d *fakeDriver) Close() error { return nil }

var (
	errQuery = errors.New("session deleted")
	errStale = errors.New("stale element reference: element is not attached to the page document")
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

var testInstant = time.Date(2024, time.April, 5, 10, 11, 12, 0, time.Local)

const testScreenshotDir = "screenshots"

// newTestPage returns a BasePage over driver with a short wait and an in-memory screenshot dir
func newTestPage(t *testing.T, driver interfaces.Driver) (*BasePage, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll(testScreenshotDir, 0o755))
	store := storage.NewArtifactStore(fs, testScreenshotDir, storage.WithClock(func() time.Time { return testInstant }))
	page := NewBasePage(driver, store, testLogger(),
		WithTimeout(60*time.Millisecond),
		WithPollInterval(5*time.Millisecond))
	return page, fs
}

func screenshotNames(t *testing.T, fs afero.Fs) []string {
	t.Helper()
	entries, err := afero.ReadDir(fs, testScreenshotDir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}
