package entities

import (
	"errors"
	"fmt"
	"time"
)

// ErrElementNotFound is reported by drivers and waits when no element
// matches a locator.
var ErrElementNotFound = errors.New("element not found")

// ElementNotFoundError describes a wait that ended without a matching element
type ElementNotFoundError struct {
	Locator   Locator
	Condition WaitCondition
	Timeout   time.Duration
	Err       error
}

func (e *ElementNotFoundError) Error() string {
	msg := fmt.Sprintf("element '%s' not %s after %s timeout", e.Locator, e.Condition, e.Timeout)
	if e.Err != nil && !errors.Is(e.Err, ErrElementNotFound) {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is reports ErrElementNotFound so callers can use errors.Is
func (e *ElementNotFoundError) Is(target error) bool {
	return target == ErrElementNotFound
}

func (e *ElementNotFoundError) Unwrap() error {
	return e.Err
}
