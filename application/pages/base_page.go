// Package pages implements page objects: wait-safe interaction primitives in
// BasePage and the per-screen objects built on them.
package pages

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ui_automation/domain/entities"
	"ui_automation/domain/interfaces"

	"github.com/sirupsen/logrus"
)

// ErrorScreenshotTag prefixes screenshots taken when an element is missing
const ErrorScreenshotTag = "error"

// BasePage mediates element interaction through explicit waits and captures
// a screenshot when an element cannot be found.
type BasePage struct {
	driver    interfaces.Driver
	wait      *Wait
	artifacts interfaces.ArtifactStore
	logger    *logrus.Logger

	lastScreenshot string
}

// Option configures a BasePage
type Option func(*pageOptions)

type pageOptions struct {
	timeout  time.Duration
	interval time.Duration
}

// WithTimeout overrides the wait bound
func WithTimeout(d time.Duration) Option {
	return func(o *pageOptions) {
		o.timeout = d
	}
}

// WithPollInterval overrides the delay between lookups
func WithPollInterval(d time.Duration) Option {
	return func(o *pageOptions) {
		o.interval = d
	}
}

// NewBasePage wraps driver. The driver stays owned by the caller.
func NewBasePage(driver interfaces.Driver, artifacts interfaces.ArtifactStore, logger *logrus.Logger, opts ...Option) *BasePage {
	o := pageOptions{
		timeout:  DefaultTimeout,
		interval: DefaultPollInterval,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &BasePage{
		driver:    driver,
		wait:      NewWait(driver, o.timeout, o.interval),
		artifacts: artifacts,
		logger:    logger,
	}
}

// Driver returns the wrapped driver handle
func (p *BasePage) Driver() interfaces.Driver {
	return p.driver
}

// Wait returns the wait-helper of the page
func (p *BasePage) Wait() *Wait {
	return p.wait
}

// LastScreenshot returns the path of the most recent screenshot, if any
func (p *BasePage) LastScreenshot() string {
	return p.lastScreenshot
}

// ClickElementByXPath waits until the element is clickable, then clicks it
func (p *BasePage) ClickElementByXPath(ctx context.Context, xpath entities.Locator) error {
	el, err := p.wait.Until(ctx, xpath, entities.ConditionClickable)
	if err != nil {
		return p.onWaitError(ctx, xpath, err)
	}

	p.logger.Infof("Clicking on: %s", xpath)
	return el.Click(ctx)
}

// EnterTextByXPath waits until the element is visible, clears it and types phrase
func (p *BasePage) EnterTextByXPath(ctx context.Context, xpath entities.Locator, phrase string) error {
	el, err := p.wait.Until(ctx, xpath, entities.ConditionVisible)
	if err != nil {
		return p.onWaitError(ctx, xpath, err)
	}

	p.logger.Infof("Typing text into: %s", xpath)
	if err := el.Clear(ctx); err != nil {
		return err
	}
	return el.SendKeys(ctx, phrase)
}

// TakeScreenshot saves the current viewport as <tag><timestamp>.png
func (p *BasePage) TakeScreenshot(ctx context.Context, tag string) error {
	png, err := p.driver.Screenshot(ctx)
	if err != nil {
		return fmt.Errorf("failed to capture screenshot: %w", err)
	}

	path, err := p.artifacts.SaveScreenshot(tag, png)
	if err != nil {
		return err
	}
	p.lastScreenshot = path
	p.logger.Infof("Screenshot saved: %s", path)
	return nil
}

// Title returns the current window title
func (p *BasePage) Title(ctx context.Context) (string, error) {
	return p.driver.Title(ctx)
}

// onWaitError records evidence for a missing element and hands the original
// error back unchanged.
func (p *BasePage) onWaitError(ctx context.Context, xpath entities.Locator, err error) error {
	if !errors.Is(err, entities.ErrElementNotFound) {
		return err
	}

	p.logger.Errorf("Element not found: %s", xpath)
	if shotErr := p.TakeScreenshot(ctx, ErrorScreenshotTag); shotErr != nil {
		p.logger.Warnf("Failed to take error screenshot: %v", shotErr)
	}
	return err
}

var _ interfaces.PageActions = (*BasePage)(nil)
