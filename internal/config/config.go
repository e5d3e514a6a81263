// Package config handles XDG configuration directory and file paths.
package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

const (
	// AppName is the application directory name.
	AppName = "tido"

	// SessionFile is the persisted session filename.
	SessionFile = "session.json"

	// DefaultAPIBaseURL is used when TIDO_API_URL is not set.
	DefaultAPIBaseURL = "https://todolistapi-npox.onrender.com/api"

	// apiURLEnv is the environment variable overriding the API base URL.
	apiURLEnv = "TIDO_API_URL"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// APIBaseURL is the base URL of the remote TaskItems API.
	APIBaseURL string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool
}

// New creates a new Config with the default or specified config directory.
// If configDir is empty, uses XDG_CONFIG_HOME/tido or $HOME/.config/tido.
// The API base URL comes from TIDO_API_URL, honoring a .env file in the
// working directory when present.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}

	// A missing .env is not an error; plain env vars still apply.
	_ = godotenv.Load()

	base := os.Getenv(apiURLEnv)
	if base == "" {
		base = DefaultAPIBaseURL
	}

	return &Config{Dir: dir, APIBaseURL: base}, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// SessionPath returns the path to the persisted session file.
func (c *Config) SessionPath() string {
	return filepath.Join(c.Dir, SessionFile)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

// HasSession checks if a persisted session file exists.
func (c *Config) HasSession() bool {
	_, err := os.Stat(c.SessionPath())
	return err == nil
}

// RemoveSession deletes the session file.
func (c *Config) RemoveSession() error {
	return os.Remove(c.SessionPath())
}
