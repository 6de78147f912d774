package config

import "os"

// Credentials is the admin username/password pair used to drive the
// login flow. Read from the environment at call time and never
// persisted anywhere; the captured storage state holds session cookies,
// not the password.
type Credentials struct {
	Username string
	Password string
}

// IsComplete reports whether both fields are non-empty. A login attempt
// must not proceed with blank credentials.
func (c Credentials) IsComplete() bool {
	return c.Username != "" && c.Password != ""
}

// LoadCredentials reads the admin credentials from the environment
// (after loading a .env file, if one exists). Validation is the
// caller's job: an incomplete pair is returned as-is so the auth layer
// can fail fast with its own error.
func LoadCredentials() Credentials {
	loadDotenv()

	return Credentials{
		Username: os.Getenv("PILOT_ADMIN_USERNAME"),
		Password: os.Getenv("PILOT_ADMIN_PASSWORD"),
	}
}
