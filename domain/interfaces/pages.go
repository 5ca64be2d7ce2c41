package interfaces

import (
	"context"

	"ui_automation/domain/entities"
)

//go:generate mockgen -package=pages -destination=../../application/pages/mock_page_actions_test.go ui_automation/domain/interfaces PageActions

// PageActions defines the wait-safe primitives page objects are built from
type PageActions interface {
	// ClickElementByXPath waits until the element is clickable and clicks it
	ClickElementByXPath(ctx context.Context, xpath entities.Locator) error

	// EnterTextByXPath waits until the element is visible, clears it and types phrase
	EnterTextByXPath(ctx context.Context, xpath entities.Locator, phrase string) error

	// TakeScreenshot saves the current viewport tagged with tag
	TakeScreenshot(ctx context.Context, tag string) error

	// Driver returns the wrapped driver handle
	Driver() Driver
}
