package auth

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/entrhq/pilot/pkg/browser"
	"github.com/entrhq/pilot/pkg/config"
	"github.com/entrhq/pilot/pkg/logging"
)

// Driver is the slice of the browser layer the cache drives. It is
// satisfied by *browser.Manager; tests substitute a stub so the cache
// logic runs without a real browser.
type Driver interface {
	// OpenSession opens a browser session. When opts.StorageStatePath is
	// set the context starts from the persisted state at that path.
	OpenSession(ctx context.Context, opts browser.SessionOptions) (*browser.Session, error)

	// CaptureState persists the session's storage state to path,
	// creating parent directories as needed.
	CaptureState(s *browser.Session, path string) error

	// CloseSession releases all of the session's resources.
	CloseSession(s *browser.Session) error
}

// LoginProcedure drives an unauthenticated session through the
// application's login flow: navigate to the login page, fill the
// credentials, submit, and wait for a stable post-login condition. The
// cache treats it as a black box.
type LoginProcedure func(ctx context.Context, s *browser.Session, creds config.Credentials) error

// State describes the persisted session-state file. The file content is
// an opaque blob written and read only by the browser layer.
type State struct {
	Path    string
	ModTime time.Time
}

// Options configures a Cache.
type Options struct {
	// Path is where the storage state lives. Defaults to .auth/user.json.
	Path string

	// MaxAge is the freshness window. State older than this forces a
	// fresh login. Defaults to one hour.
	MaxAge time.Duration

	// Session is the base options for sessions the cache opens. The
	// cache sets StorageStatePath itself; any value here is ignored.
	Session browser.SessionOptions

	// Now supplies the current time. Defaults to time.Now. Injected so
	// freshness decisions are testable without real waiting.
	Now func() time.Time

	// Logger receives staleness decisions and regeneration progress.
	// Optional; a nil logger disables logging.
	Logger *logging.Logger
}

// Cache decides, per test run, whether the persisted authenticated
// storage state is fresh enough to reuse or must be regenerated by
// driving the login flow again.
//
// Concurrent invocations against the same path are not coordinated: two
// parallel workers racing past a stale check will both log in and both
// write the state file. Regeneration is idempotent (last writer wins,
// either result is a valid authenticated state), and a torn read of a
// file mid-rewrite surfaces as staleness on the next check, so the race
// costs a redundant login, never a wrong result.
type Cache struct {
	path    string
	maxAge  time.Duration
	session browser.SessionOptions
	driver  Driver
	now     func() time.Time
	log     *logging.Logger
}

// NewCache creates a session state cache over the given driver.
func NewCache(driver Driver, opts Options) *Cache {
	if opts.Path == "" {
		opts.Path = config.DefaultStatePath
	}
	if opts.MaxAge == 0 {
		opts.MaxAge = config.DefaultMaxStateAge
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	opts.Session.StorageStatePath = ""

	return &Cache{
		path:    opts.Path,
		maxAge:  opts.MaxAge,
		session: opts.Session,
		driver:  driver,
		now:     opts.Now,
		log:     opts.Logger,
	}
}

// Path returns the state file path this cache manages.
func (c *Cache) Path() string {
	return c.path
}

// IsStale reports whether the persisted state must be regenerated:
// the file is absent, cannot be statted, or is older than the freshness
// window. Never returns an error; any I/O failure counts as stale so
// the cache always fails open toward regeneration.
func (c *Cache) IsStale() bool {
	stale, _, reason := c.staleness()
	if stale {
		c.debugf("state %s is stale: %s", c.path, reason)
	}
	return stale
}

// staleness stats the state file once and classifies the result. The
// reason distinguishes absent from unreadable for the log; callers of
// IsStale see only the boolean.
func (c *Cache) staleness() (stale bool, modTime time.Time, reason string) {
	info, err := os.Stat(c.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return true, time.Time{}, "absent"
		}
		return true, time.Time{}, fmt.Sprintf("unreadable (%v)", err)
	}

	age := c.now().Sub(info.ModTime())
	if age > c.maxAge {
		return true, info.ModTime(), fmt.Sprintf("expired (age %s exceeds %s)", age, c.maxAge)
	}

	return false, info.ModTime(), ""
}

// Invalidate deletes the state file if present. Idempotent; deletion is
// best-effort cleanup, so errors are logged and swallowed.
func (c *Cache) Invalidate() {
	if err := os.Remove(c.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		c.warnf("failed to remove state file %s: %v", c.path, err)
	}
}

// EnsureFresh returns a fresh persisted state, reusing the existing file
// when it is within the freshness window and regenerating it through the
// login procedure otherwise.
//
// Regeneration validates the credentials first (ErrMissingCredentials,
// before any browser work), removes any old or partial state, opens a
// fresh unauthenticated session, runs login against it, and captures
// the resulting storage state to the cache's path. The session is
// closed on every exit path. Login and persistence failures propagate;
// no partial state is ever reported as fresh.
func (c *Cache) EnsureFresh(ctx context.Context, creds config.Credentials, login LoginProcedure) (State, error) {
	stale, modTime, reason := c.staleness()
	if !stale {
		c.debugf("reusing session state %s (age %s)", c.path, c.now().Sub(modTime))
		return State{Path: c.path, ModTime: modTime}, nil
	}
	c.infof("session state %s is stale (%s), regenerating", c.path, reason)

	if !creds.IsComplete() {
		return State{}, ErrMissingCredentials
	}

	c.Invalidate()

	session, err := c.driver.OpenSession(ctx, c.session)
	if err != nil {
		return State{}, fmt.Errorf("auth: failed to open login session: %w", err)
	}
	defer c.driver.CloseSession(session)

	if err := login(ctx, session, creds); err != nil {
		return State{}, &LoginError{Err: err}
	}

	if err := c.driver.CaptureState(session, c.path); err != nil {
		return State{}, &PersistError{Path: c.path, Err: err}
	}

	info, err := os.Stat(c.path)
	if err != nil {
		return State{}, &PersistError{Path: c.path, Err: err}
	}

	c.infof("session state regenerated at %s", c.path)
	return State{Path: c.path, ModTime: info.ModTime()}, nil
}

// AcquireContext ensures fresh state and opens a new browser session
// initialized from it. The returned ScopedContext must be released by
// the caller on every exit path, including test failure; Release closes
// the underlying session and is safe to call more than once.
func (c *Cache) AcquireContext(ctx context.Context, creds config.Credentials, login LoginProcedure) (*ScopedContext, error) {
	state, err := c.EnsureFresh(ctx, creds, login)
	if err != nil {
		return nil, err
	}

	opts := c.session
	opts.StorageStatePath = state.Path
	session, err := c.driver.OpenSession(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("auth: failed to open authenticated session: %w", err)
	}

	return &ScopedContext{
		Session: session,
		driver:  c.driver,
	}, nil
}

func (c *Cache) debugf(format string, v ...interface{}) {
	if c.log != nil {
		c.log.Debugf(format, v...)
	}
}

func (c *Cache) infof(format string, v ...interface{}) {
	if c.log != nil {
		c.log.Infof(format, v...)
	}
}

func (c *Cache) warnf(format string, v ...interface{}) {
	if c.log != nil {
		c.log.Warnf(format, v...)
	}
}

// ScopedContext is an authenticated browser session whose cleanup is
// guaranteed by a single Release call, typically deferred or registered
// with t.Cleanup.
type ScopedContext struct {
	Session *browser.Session

	driver      Driver
	releaseOnce sync.Once
}

// Release closes the underlying browser session. Safe to call multiple
// times; only the first call does work.
func (s *ScopedContext) Release() {
	s.releaseOnce.Do(func() {
		_ = s.driver.CloseSession(s.Session)
	})
}
