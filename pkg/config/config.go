package config

import (
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Default values applied when the settings file or an env override is absent.
const (
	DefaultLoginPath   = "/login"
	DefaultStatePath   = ".auth/user.json"
	DefaultMaxStateAge = time.Hour
	DefaultTimeoutMs   = 30000.0
)

// Config holds the settings for a test run. Values come from an optional
// YAML file, then from environment variables, which win.
type Config struct {
	// BaseURL is the root URL of the application under test
	BaseURL string `yaml:"base_url"`

	// LoginPath is the login route relative to BaseURL
	LoginPath string `yaml:"login_path"`

	// Headless controls whether browsers run without a visible window
	Headless bool `yaml:"headless"`

	// TimeoutMs is the default Playwright operation timeout in milliseconds
	TimeoutMs float64 `yaml:"timeout_ms"`

	// StatePath is where the authenticated storage state is persisted
	StatePath string `yaml:"state_path"`

	// MaxStateAge is how old the persisted state may be before a fresh
	// login is forced
	MaxStateAge time.Duration `yaml:"max_state_age"`

	// LogDir optionally overrides the directory run logs are written to
	LogDir string `yaml:"log_dir"`
}

// dotenvOnce loads a .env file at most once per process. A missing .env
// is not an error; explicit environment always wins over file contents.
var dotenvOnce sync.Once

func loadDotenv() {
	dotenvOnce.Do(func() {
		_ = godotenv.Load()
	})
}

// Default returns a Config populated with default values.
func Default() Config {
	return Config{
		LoginPath:   DefaultLoginPath,
		Headless:    true,
		TimeoutMs:   DefaultTimeoutMs,
		StatePath:   DefaultStatePath,
		MaxStateAge: DefaultMaxStateAge,
	}
}

// Load reads the settings file at path and applies environment overrides.
// A missing file is not an error; defaults are used. An unreadable or
// malformed file is an error, since silently ignoring a present config
// would run the suite against the wrong target.
func Load(path string) (Config, error) {
	loadDotenv()

	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
			}
		} else if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// applyEnv overlays PILOT_* environment variables onto the config.
func (c *Config) applyEnv() error {
	if v := os.Getenv("PILOT_BASE_URL"); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv("PILOT_LOGIN_PATH"); v != "" {
		c.LoginPath = v
	}
	if v := os.Getenv("PILOT_STATE_PATH"); v != "" {
		c.StatePath = v
	}
	if v := os.Getenv("PILOT_HEADLESS"); v != "" {
		headless, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid PILOT_HEADLESS value %q: %w", v, err)
		}
		c.Headless = headless
	}
	if v := os.Getenv("PILOT_MAX_STATE_AGE"); v != "" {
		age, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid PILOT_MAX_STATE_AGE value %q: %w", v, err)
		}
		c.MaxStateAge = age
	}
	return nil
}

// LoginURL returns the absolute URL of the login page.
func (c Config) LoginURL() string {
	return c.BaseURL + c.LoginPath
}
