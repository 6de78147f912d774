// Package browser wraps Playwright for end-to-end test suites.
//
// The package is built around two core concepts:
//
// 1. Session: Encapsulates a Playwright browser instance with its context and page
// 2. Manager: Owns the Playwright runtime and the lifecycle of all sessions
//
// # Session Lifecycle
//
// Browser sessions follow this lifecycle:
//
//  1. Open: Manager.OpenSession launches a browser, context, and page,
//     optionally restoring a previously captured storage state
//  2. Use: Navigation, fill, click, and wait primitives operate on the session
//  3. Capture: Manager.CaptureState persists the context's storage state to disk
//  4. Close: Manager.CloseSession (or Manager.Shutdown) releases all resources
//
// # Storage State
//
// A context opened with SessionOptions.StorageStatePath starts with the
// cookies and storage captured from an earlier authenticated session,
// skipping the login flow entirely. The state file is an opaque blob
// produced and consumed by Playwright; nothing in this package inspects
// its contents. The auth package decides when a captured state is fresh
// enough to reuse.
//
// # Example Usage
//
//	manager := browser.NewManager()
//	if err := manager.Initialize(); err != nil {
//	    // handle
//	}
//	defer manager.Shutdown()
//
//	session, err := manager.OpenSession(ctx, browser.SessionOptions{
//	    Headless: true,
//	    StorageStatePath: ".auth/user.json",
//	})
//	if err != nil {
//	    // handle
//	}
//	defer manager.CloseSession(session)
//
//	err = session.Navigate("https://app.example.com/dashboard", browser.NavigateOptions{
//	    WaitUntil: "networkidle",
//	})
package browser
