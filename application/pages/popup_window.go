package pages

import (
	"context"

	"ui_automation/domain/entities"
	"ui_automation/domain/interfaces"
)

// Pop-up window page locators
const (
	PopUpOpenWindowButton entities.Locator = "//button[@id='openwindow']"
	PopUpSearchBox        entities.Locator = "//input[@id='search-courses']"
)

// PopUpWindow is the page object of the screen that opens a course search window
type PopUpWindow struct {
	actions interfaces.PageActions
}

// NewPopUpWindow wraps actions with the pop-up screen locators
func NewPopUpWindow(actions interfaces.PageActions) *PopUpWindow {
	return &PopUpWindow{actions: actions}
}

// ClickOpenWindow clicks the button that opens the course search window
func (p *PopUpWindow) ClickOpenWindow(ctx context.Context) error {
	return p.actions.ClickElementByXPath(ctx, PopUpOpenWindowButton)
}

// SearchText types text into the search box and submits its form.
//
// Unlike the other actions it looks the box up directly on the driver: there
// is no wait and no error screenshot, so a missing box fails immediately.
func (p *PopUpWindow) SearchText(ctx context.Context, text string) error {
	el, err := p.actions.Driver().FindElementByXPath(ctx, PopUpSearchBox.String())
	if err != nil {
		return err
	}
	if err := el.Clear(ctx); err != nil {
		return err
	}
	if err := el.SendKeys(ctx, text); err != nil {
		return err
	}
	return el.Submit(ctx)
}
