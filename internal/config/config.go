// Package config handles build driver configuration loading and management.
package config

import (
	"github.com/pkg/errors"

	"github.com/Faultbox/shaderbuild/internal/shaderbuild"
)

// Config holds all driver settings.
type Config struct {
	Compiler CompilerConfig `yaml:"compiler"`
	Build    BuildConfig    `yaml:"build"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// CompilerConfig holds the external compiler settings.
type CompilerConfig struct {
	Path string `yaml:"path"` // Binary name or path, resolved via PATH
}

// BuildConfig holds settings for a build run.
type BuildConfig struct {
	ExitPolicy string `yaml:"exit_policy"` // always-succeed or fail-on-error
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Compiler: CompilerConfig{
			Path: shaderbuild.DefaultCompiler,
		},
		Build: BuildConfig{
			ExitPolicy: shaderbuild.AlwaysSucceed.String(),
		},
		Logging: LoggingConfig{
			Level:   "warn",
			LogFile: "",
		},
	}
}

// ExitPolicy returns the parsed build exit policy.
func (c *Config) ExitPolicy() (shaderbuild.ExitPolicy, error) {
	return shaderbuild.ParseExitPolicy(c.Build.ExitPolicy)
}

// Validate checks that the config can drive a build.
func (c *Config) Validate() error {
	if c.Compiler.Path == "" {
		return errors.New("compiler.path must not be empty")
	}
	if _, err := c.ExitPolicy(); err != nil {
		return errors.Wrap(err, "build.exit_policy")
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return errors.Errorf("logging.level: unknown level %q", c.Logging.Level)
	}
	return nil
}
