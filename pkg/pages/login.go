package pages

import (
	"context"
	"fmt"

	"github.com/entrhq/pilot/pkg/auth"
	"github.com/entrhq/pilot/pkg/browser"
	"github.com/entrhq/pilot/pkg/config"
)

// Login page selectors.
const (
	loginUsernameSelector = `input[name="username"]`
	loginPasswordSelector = `input[name="password"]`
	loginSubmitSelector   = `button[type="submit"]`
)

// LoginPage wraps the application's login screen.
type LoginPage struct {
	session *browser.Session
	cfg     config.Config
}

// NewLoginPage creates a login page object over an open session.
func NewLoginPage(session *browser.Session, cfg config.Config) *LoginPage {
	return &LoginPage{
		session: session,
		cfg:     cfg,
	}
}

// Open navigates to the login route and waits for the form to render.
func (p *LoginPage) Open() error {
	err := p.session.Navigate(p.cfg.LoginURL(), browser.NavigateOptions{
		WaitUntil: "domcontentloaded",
	})
	if err != nil {
		return err
	}

	return p.session.WaitForSelector(browser.WaitOptions{
		Selector: loginUsernameSelector,
		State:    "visible",
	})
}

// Login drives the full login flow: open the form, fill both fields,
// submit, and wait for the post-login landing page to settle.
func (p *LoginPage) Login(ctx context.Context, creds config.Credentials) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := p.Open(); err != nil {
		return fmt.Errorf("failed to open login page: %w", err)
	}

	if err := p.session.Fill(browser.FillOptions{
		Selector: loginUsernameSelector,
		Value:    creds.Username,
	}); err != nil {
		return fmt.Errorf("failed to fill username: %w", err)
	}

	if err := p.session.Fill(browser.FillOptions{
		Selector: loginPasswordSelector,
		Value:    creds.Password,
	}); err != nil {
		return fmt.Errorf("failed to fill password: %w", err)
	}

	if err := p.session.Click(browser.ClickOptions{
		Selector: loginSubmitSelector,
	}); err != nil {
		return fmt.Errorf("failed to submit login form: %w", err)
	}

	// Logged in once the authenticated shell renders
	if err := p.session.WaitForSelector(browser.WaitOptions{
		Selector: userMenuSelector,
		State:    "visible",
	}); err != nil {
		return fmt.Errorf("post-login condition not reached: %w", err)
	}

	return nil
}

// LoginProcedure returns the black-box login callback the session
// state cache drives during regeneration.
func LoginProcedure(cfg config.Config) auth.LoginProcedure {
	return func(ctx context.Context, s *browser.Session, creds config.Credentials) error {
		return NewLoginPage(s, cfg).Login(ctx, creds)
	}
}
