package config

import (
	"flag"

	"github.com/Faultbox/shaderbuild/internal/shaderbuild"
)

var (
	flagConfig      = flag.String("config", "", "Path to config file")
	flagDebug       = flag.Bool("debug", false, "Enable debug logging")
	flagCompiler    = flag.String("compiler", "", "Shader compiler binary")
	flagStrict      = flag.Bool("strict", false, "Exit non-zero if any shader fails")
	flagLogFile     = flag.String("log-file", "", "Write logs to this file")
	flagWriteConfig = flag.String("write-config", "", "Write the effective config to this path and exit")
	flagSaveConfig  = flag.Bool("save-config", false, "Write the effective config to the user config directory and exit")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// WriteConfigPath returns the --write-config destination, if any.
func WriteConfigPath() string {
	return *flagWriteConfig
}

// SaveConfigRequested reports whether --save-config was given.
func SaveConfigRequested() bool {
	return *flagSaveConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagCompiler != "" {
		cfg.Compiler.Path = *flagCompiler
	}
	if *flagStrict {
		cfg.Build.ExitPolicy = shaderbuild.FailOnError.String()
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
}
