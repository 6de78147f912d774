// Package pages holds the page objects for the application under test.
//
// Each page object wraps one screen: it owns the screen's selectors and
// exposes the operations a test performs there, passing through to the
// browser session's primitives. Tests and fixtures talk to pages, never
// to raw selectors.
//
// LoginPage doubles as the source of the login procedure the auth
// package's session state cache drives when the persisted state has
// gone stale; see LoginProcedure.
package pages
