// Package auth caches authenticated browser session state between test
// runs.
//
// Logging into the application under test is the slowest, flakiest part
// of an end-to-end suite, and every test needs an authenticated page.
// Instead of logging in per test, the suite logs in once, captures the
// browser context's storage state (cookies, local/session storage) to a
// file, and reuses that file to open pre-authenticated contexts until
// it goes stale.
//
// # State Lifecycle
//
// Per state path: ABSENT -> (login) -> FRESH -> (time passes) -> STALE
// -> (login) -> FRESH. Invalidate forces any state back to ABSENT. A
// state is stale when its age exceeds the freshness window or when it
// cannot be read at all; read failures are never surfaced, they simply
// force one more login.
//
// # Typical Use
//
//	cache := auth.NewCache(manager, auth.Options{
//	    Path:   cfg.StatePath,
//	    MaxAge: cfg.MaxStateAge,
//	})
//
//	scoped, err := cache.AcquireContext(ctx, config.LoadCredentials(), loginPage.Procedure(cfg))
//	if err != nil {
//	    t.Fatal(err)
//	}
//	t.Cleanup(scoped.Release)
//
// # Parallel Workers
//
// Nothing coordinates workers sharing a state path. Two workers racing
// past a stale check both regenerate; last writer wins and either
// result is valid, so the race costs one redundant login. Suites that
// run many parallel workers can warm the cache first (see
// cmd/pilot-auth) to make the race window irrelevant in practice.
package auth
