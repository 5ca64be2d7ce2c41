package pages

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ui_automation/domain/entities"
	"ui_automation/domain/interfaces"
)

const (
	// DefaultTimeout bounds every wait of a page object
	DefaultTimeout = 10 * time.Second
	// DefaultPollInterval is the delay between two lookups
	DefaultPollInterval = 500 * time.Millisecond
)

// Wait polls a driver until an element satisfies a condition
type Wait struct {
	driver   interfaces.Driver
	timeout  time.Duration
	interval time.Duration
}

// NewWait creates a wait-helper bound to timeout
func NewWait(driver interfaces.Driver, timeout, interval time.Duration) *Wait {
	return &Wait{
		driver:   driver,
		timeout:  timeout,
		interval: interval,
	}
}

// Timeout returns the upper bound of a single wait
func (w *Wait) Timeout() time.Duration {
	return w.timeout
}

// Until blocks until an element matching xpath satisfies cond or the timeout
// elapses. Lookups that find nothing and state checks that fail (a stale
// element after a re-render) are retried; any other lookup error is returned
// immediately. A timeout yields *entities.ElementNotFoundError.
func (w *Wait) Until(ctx context.Context, xpath entities.Locator, cond entities.WaitCondition) (interfaces.Element, error) {
	switch cond {
	case entities.ConditionPresent, entities.ConditionVisible, entities.ConditionClickable:
	default:
		return nil, fmt.Errorf("unknown wait condition %q", cond)
	}

	deadline := time.Now().Add(w.timeout)
	var lastErr error

	for {
		el, err := w.driver.FindElementByXPath(ctx, xpath.String())
		switch {
		case err == nil:
			ok, cerr := satisfies(ctx, el, cond)
			switch {
			case cerr != nil:
				lastErr = fmt.Errorf("failed to check %s on %s: %w", cond, xpath, cerr)
			case ok:
				return el, nil
			default:
				lastErr = nil
			}
		case errors.Is(err, entities.ErrElementNotFound):
			lastErr = err
		default:
			return nil, err
		}

		remaining := time.Until(deadline)
		if remaining <= 0 {
			return nil, &entities.ElementNotFoundError{
				Locator:   xpath,
				Condition: cond,
				Timeout:   w.timeout,
				Err:       lastErr,
			}
		}

		timer := time.NewTimer(min(w.interval, remaining))
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, fmt.Errorf("wait for %s canceled: %w", xpath, ctx.Err())
		case <-timer.C:
		}
	}
}

func satisfies(ctx context.Context, el interfaces.Element, cond entities.WaitCondition) (bool, error) {
	switch cond {
	case entities.ConditionPresent:
		return true, nil
	case entities.ConditionVisible:
		return el.IsDisplayed(ctx)
	case entities.ConditionClickable:
		visible, err := el.IsDisplayed(ctx)
		if err != nil || !visible {
			return false, err
		}
		return el.IsEnabled(ctx)
	default:
		return false, fmt.Errorf("unknown wait condition %q", cond)
	}
}
