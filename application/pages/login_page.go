package pages

import (
	"context"

	"ui_automation/domain/entities"
	"ui_automation/domain/interfaces"
)

// Login page locators
const (
	LoginUsernameBox entities.Locator = "//input[@id='username']"
	LoginPasswordBox entities.Locator = "//input[@id='password']"
	LoginButton      entities.Locator = "//i[@class='fa fa-2x fa-sign-in']"
)

// Login is the page object of the sign-in screen
type Login struct {
	actions interfaces.PageActions
}

// NewLogin wraps actions with the sign-in screen locators
func NewLogin(actions interfaces.PageActions) *Login {
	return &Login{actions: actions}
}

// EnterUsername types username into the user name box
func (l *Login) EnterUsername(ctx context.Context, username string) error {
	return l.actions.EnterTextByXPath(ctx, LoginUsernameBox, username)
}

// EnterPassword types password into the password box
func (l *Login) EnterPassword(ctx context.Context, password string) error {
	return l.actions.EnterTextByXPath(ctx, LoginPasswordBox, password)
}

// ClickLogin clicks the sign-in button once it is clickable
func (l *Login) ClickLogin(ctx context.Context) error {
	return l.actions.ClickElementByXPath(ctx, LoginButton)
}

// GetTitle returns the browser window title without waiting
func (l *Login) GetTitle(ctx context.Context) (string, error) {
	return l.actions.Driver().Title(ctx)
}
