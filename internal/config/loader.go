package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnvPath names the environment variable holding a scene file path.
const EnvPath = "VAINT_CONFIG"

// Loader locates and loads the scene file.
type Loader struct {
	OverridePath string // Explicit path, e.g. from the command line
}

// NewLoader creates a new Loader.
func NewLoader(overridePath string) *Loader {
	return &Loader{OverridePath: overridePath}
}

// Load reads the scene file. With no file anywhere it returns the defaults.
// An explicit path that cannot be opened is an error.
func (l *Loader) Load() (*Config, error) {
	path := l.GetConfigPath()
	if path == "" {
		return New(), nil // No config file found, return defaults
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening scene: %w", err)
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// GetConfigPath returns the path to the scene file, or empty string if not found.
func (l *Loader) GetConfigPath() string {
	// 1. Explicit path, returned even if missing so Load reports it
	if l.OverridePath != "" {
		return l.OverridePath
	}

	// 2. Environment
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}

	// 3. Working directory
	if wd, err := os.Getwd(); err == nil {
		local := filepath.Join(wd, "vaint.json")
		if _, err := os.Stat(local); err == nil {
			return local
		}
	}

	// 4. XDG config path
	if home, err := os.UserHomeDir(); err == nil {
		xdg := filepath.Join(home, ".config", "vaint", "config.json")
		if _, err := os.Stat(xdg); err == nil {
			return xdg
		}
	}

	return ""
}

// Load is shorthand for NewLoader(path).Load().
func Load(path string) (*Config, error) {
	return NewLoader(path).Load()
}
