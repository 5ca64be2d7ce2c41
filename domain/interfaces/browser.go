package interfaces

import (
	"context"
)

// Driver defines the capability set of a browser session used by page objects
type Driver interface {
	// Navigate navigates to a URL
	Navigate(ctx context.Context, url string) error

	// FindElementByXPath returns the first element matching xpath without waiting.
	// It returns entities.ErrElementNotFound when nothing matches.
	FindElementByXPath(ctx context.Context, xpath string) (Element, error)

	// Title returns the current window title
	Title(ctx context.Context) (string, error)

	// Screenshot captures the current viewport as PNG
	Screenshot(ctx context.Context) ([]byte, error)

	// Name returns the backend name
	Name() string

	// Close closes the browser session
	Close() error
}

// Element is a resolved handle to one element on the current page
type Element interface {
	Click(ctx context.Context) error

	// Clear removes the current value of an input
	Clear(ctx context.Context) error

	// SendKeys types text at the current cursor position
	SendKeys(ctx context.Context, text string) error

	// Submit submits the form owning the element
	Submit(ctx context.Context) error

	Value(ctx context.Context) (string, error)

	IsDisplayed(ctx context.Context) (bool, error)

	IsEnabled(ctx context.Context) (bool, error)
}

// TabSwitcher is implemented by drivers that can move between open tabs and popups
type TabSwitcher interface {
	// SwitchToTab makes the tab at index current
	SwitchToTab(ctx context.Context, index int) error

	// TabsCount returns the number of open tabs
	TabsCount(ctx context.Context) (int, error)
}
