package scenario

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"ui_automation/application/pages"
	"ui_automation/domain/entities"
	"ui_automation/domain/interfaces"
)

// Pages bundles the page objects a scenario can address
type Pages struct {
	Base  interfaces.PageActions
	Login *pages.Login
	PopUp *pages.PopUpWindow
}

// NewPages builds every page object over the same page actions
func NewPages(actions interfaces.PageActions) *Pages {
	return &Pages{
		Base:  actions,
		Login: pages.NewLogin(actions),
		PopUp: pages.NewPopUpWindow(actions),
	}
}

// stepFunc executes one step; the returned string is recorded as step output
type stepFunc func(ctx context.Context, p *Pages, args []string) (string, error)

type stepDef struct {
	args int
	run  stepFunc
}

var registry = map[string]stepDef{
	"login.enter_username": {1, func(ctx context.Context, p *Pages, args []string) (string, error) {
		return "", p.Login.EnterUsername(ctx, args[0])
	}},
	"login.enter_password": {1, func(ctx context.Context, p *Pages, args []string) (string, error) {
		return "", p.Login.EnterPassword(ctx, args[0])
	}},
	"login.click_login": {0, func(ctx context.Context, p *Pages, args []string) (string, error) {
		return "", p.Login.ClickLogin(ctx)
	}},
	"login.get_title": {0, func(ctx context.Context, p *Pages, args []string) (string, error) {
		return p.Login.GetTitle(ctx)
	}},
	"popup.click_openwindow": {0, func(ctx context.Context, p *Pages, args []string) (string, error) {
		return "", p.PopUp.ClickOpenWindow(ctx)
	}},
	"popup.search_text": {1, func(ctx context.Context, p *Pages, args []string) (string, error) {
		return "", p.PopUp.SearchText(ctx, args[0])
	}},
	"base.click": {1, func(ctx context.Context, p *Pages, args []string) (string, error) {
		return "", p.Base.ClickElementByXPath(ctx, entities.Locator(args[0]))
	}},
	"base.enter_text": {2, func(ctx context.Context, p *Pages, args []string) (string, error) {
		return "", p.Base.EnterTextByXPath(ctx, entities.Locator(args[0]), args[1])
	}},
	"base.screenshot": {1, func(ctx context.Context, p *Pages, args []string) (string, error) {
		return "", p.Base.TakeScreenshot(ctx, args[0])
	}},
	"base.switch_tab": {1, func(ctx context.Context, p *Pages, args []string) (string, error) {
		index, err := strconv.Atoi(args[0])
		if err != nil {
			return "", fmt.Errorf("tab index must be an integer: %w", err)
		}
		switcher, ok := p.Base.Driver().(interfaces.TabSwitcher)
		if !ok {
			return "", fmt.Errorf("driver %s cannot switch tabs", p.Base.Driver().Name())
		}
		return "", switcher.SwitchToTab(ctx, index)
	}},
}

// Actions returns the sorted list of known step keys
func Actions() []string {
	keys := make([]string, 0, len(registry))
	for k := range registry {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Validate checks every step against the registry
func Validate(s *entities.Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("scenario has no name")
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("scenario %q has no steps", s.Name)
	}
	for i, step := range s.Steps {
		def, ok := registry[step.Key()]
		if !ok {
			return fmt.Errorf("scenario %q step %d: unknown action %s", s.Name, i+1, step.Key())
		}
		if len(step.Args) != def.args {
			return fmt.Errorf("scenario %q step %d: %s takes %d argument(s), got %d", s.Name, i+1, step.Key(), def.args, len(step.Args))
		}
	}
	return nil
}
