package pages

import (
	"fmt"
	"strings"

	"github.com/entrhq/pilot/pkg/browser"
	"github.com/entrhq/pilot/pkg/config"
)

// Dashboard page selectors.
const (
	userMenuSelector         = `[data-testid="user-menu"]`
	dashboardHeadingSelector = `main h1`
	logoutButtonSelector     = `[data-testid="logout"]`
)

// DashboardPage wraps the post-login landing page.
type DashboardPage struct {
	session *browser.Session
	cfg     config.Config
}

// NewDashboardPage creates a dashboard page object over an open session.
func NewDashboardPage(session *browser.Session, cfg config.Config) *DashboardPage {
	return &DashboardPage{
		session: session,
		cfg:     cfg,
	}
}

// Open navigates to the dashboard and waits for the authenticated shell.
// Fails if the session is not authenticated.
func (p *DashboardPage) Open() error {
	err := p.session.Navigate(p.cfg.BaseURL+"/dashboard", browser.NavigateOptions{
		WaitUntil: "networkidle",
	})
	if err != nil {
		return err
	}

	if err := p.session.WaitForSelector(browser.WaitOptions{
		Selector: userMenuSelector,
		State:    "visible",
	}); err != nil {
		return fmt.Errorf("dashboard did not render an authenticated shell: %w", err)
	}

	return nil
}

// Heading returns the dashboard's main heading text, trimmed.
func (p *DashboardPage) Heading() (string, error) {
	text, err := p.session.TextContent(dashboardHeadingSelector)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// Logout clicks the logout control and waits for the login form to
// reappear, invalidating the browser-side session.
func (p *DashboardPage) Logout() error {
	if err := p.session.Click(browser.ClickOptions{
		Selector: logoutButtonSelector,
	}); err != nil {
		return fmt.Errorf("failed to click logout: %w", err)
	}

	return p.session.WaitForSelector(browser.WaitOptions{
		Selector: loginUsernameSelector,
		State:    "visible",
	})
}
