package auth

import (
	"errors"
	"fmt"
)

// ErrMissingCredentials indicates the admin username or password is not
// configured. Surfaced before any browser work starts; never retried.
var ErrMissingCredentials = errors.New("auth: admin credentials are not configured")

// LoginError wraps a failure inside the login procedure: navigation
// failure, a form element not found, or the post-login condition never
// reached. Fatal for the acquiring test; retries, if any, belong to the
// caller.
type LoginError struct {
	Err error
}

func (e *LoginError) Error() string {
	return fmt.Sprintf("auth: login flow failed: %v", e.Err)
}

func (e *LoginError) Unwrap() error {
	return e.Err
}

// PersistError wraps a failure to write the captured session state to
// disk. Fatal: the next run depends on the state file being durable, so
// a test is never handed a context whose state could not be persisted.
type PersistError struct {
	Path string
	Err  error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("auth: failed to persist session state to %s: %v", e.Path, e.Err)
}

func (e *PersistError) Unwrap() error {
	return e.Err
}
