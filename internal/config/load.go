package config

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// fileName is the config file looked up in the working directory.
const fileName = "shaderbuild.yaml"

// FallbackError reports a discovered config file that was ignored in favour
// of the defaults. Load returns it together with a usable config.
type FallbackError struct {
	Path string
	Err  error
}

func (e *FallbackError) Error() string {
	return "ignoring config " + e.Path + ": " + e.Err.Error()
}

func (e *FallbackError) Unwrap() error { return e.Err }

// Load loads configuration with priority: defaults < file < flags.
//
// An explicit --config path must load and validate. A file found in a
// standard location that does not is skipped; Load then returns the
// defaults with flags applied and a *FallbackError.
func Load() (*Config, error) {
	if path := ConfigPath(); path != "" {
		cfg, err := loadPath(path)
		if err != nil {
			return nil, err
		}
		return cfg, nil
	}

	path := findConfigFile()
	if path == "" {
		return loadPath("")
	}

	cfg, err := loadPath(path)
	if err == nil {
		return cfg, nil
	}

	cfg, ferr := loadPath("")
	if ferr != nil {
		return nil, ferr
	}
	return cfg, &FallbackError{Path: path, Err: err}
}

// loadPath builds a config from defaults, an optional file and the flags.
func loadPath(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, errors.Wrapf(err, "loading config from %s", path)
		}
	}

	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return cfg, nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		filepath.Join(".", fileName),
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "shaderbuild")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "shaderbuild")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "shaderbuild")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "shaderbuild")
	}
}

// loadFromFile merges a YAML file over the existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
