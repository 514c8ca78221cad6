// Package config loads warpstore settings from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"

	"github.com/warpdl/warpstore/common"
)

// Config is the runtime configuration. Command line flags override the
// values loaded here.
type Config struct {
	DataDir        string `env:"WARPSTORE_DATA_DIR"`
	URL            string `env:"WARPSTORE_URL"             envDefault:"https://localhost/"`
	Backend        string `env:"WARPSTORE_BACKEND"         envDefault:"localStorage"`
	Debug          bool   `env:"WARPSTORE_DEBUG"`
	DisableCookies bool   `env:"WARPSTORE_DISABLE_COOKIES"`
	DisableLocal   bool   `env:"WARPSTORE_DISABLE_LOCAL"`
	DisableSession bool   `env:"WARPSTORE_DISABLE_SESSION"`
	SessionQuota   int    `env:"WARPSTORE_SESSION_QUOTA"   envDefault:"5242880"`
}

var userConfigDir = os.UserConfigDir

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses the environment and fills in the default data directory.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.DataDir == "" {
		dir, err := DefaultDataDir()
		if err != nil {
			return Config{}, err
		}
		cfg.DataDir = dir
	}
	return cfg, nil
}

// DefaultDataDir returns <user config dir>/warpstore.
func DefaultDataDir() (string, error) {
	base, err := userConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve data dir: %w", err)
	}
	return filepath.Join(base, common.AppName), nil
}

// CookieJournal is the path of the persisted cookie writes.
func (c Config) CookieJournal() string {
	return filepath.Join(c.DataDir, common.CookieJournalFile)
}

// LocalStorageDB is the path of the local storage database.
func (c Config) LocalStorageDB() string {
	return filepath.Join(c.DataDir, common.LocalStorageFile)
}
