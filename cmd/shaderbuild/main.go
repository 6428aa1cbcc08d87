// shaderbuild compiles the ray tracing shaders in the working directory to
// SPIR-V with glslc.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/shaderbuild/internal/config"
	"github.com/Faultbox/shaderbuild/internal/logger"
	"github.com/Faultbox/shaderbuild/internal/shaderbuild"
)

// exitConfig is returned for an explicit --config that cannot be used or a
// failed config write. Shader failures follow the configured exit policy.
const exitConfig = 2

func main() {
	config.ParseFlags()
	os.Exit(start(os.Stdout, os.Stderr, nil))
}

// start loads configuration, sets up logging and runs the build. A nil
// invoker runs the real compiler.
func start(stdout, stderr io.Writer, inv shaderbuild.Invoker) int {
	cfg, err := config.Load()
	var fallback *config.FallbackError
	if err != nil && !errors.As(err, &fallback) {
		fmt.Fprintf(stderr, "Config error: %v\n", err)
		return exitConfig
	}

	if path := config.WriteConfigPath(); path != "" {
		return writeConfig(stderr, func() error { return cfg.SaveTo(path) })
	}
	if config.SaveConfigRequested() {
		return writeConfig(stderr, cfg.Save)
	}

	var fileCfg logger.FileConfig
	if cfg.Logging.LogFile != "" {
		fileCfg = logger.DefaultFileConfig(cfg.Logging.LogFile)
	}
	logErr := logger.InitWithFileConfig(cfg.Logging.Level, fileCfg, stderr)
	if logErr != nil {
		_ = logger.InitWithFileConfig(cfg.Logging.Level, logger.FileConfig{}, stderr)
		logger.Warn("file logging disabled",
			zap.String("log_file", cfg.Logging.LogFile),
			zap.String("error", logErr.Error()))
	}
	defer logger.Sync()

	if fallback != nil {
		logger.Warn("ignoring config file, using defaults",
			zap.String("path", fallback.Path),
			zap.String("error", fallback.Err.Error()))
	}
	logger.Info("shaderbuild starting", zap.String("compiler", cfg.Compiler.Path))
	logger.Sugar.Debugf("Config: %+v", cfg)

	return run(cfg, stdout, inv)
}

func writeConfig(stderr io.Writer, save func() error) int {
	if err := save(); err != nil {
		fmt.Fprintf(stderr, "Config error: %v\n", err)
		return exitConfig
	}
	return 0
}

// run builds the shader set and returns the process exit code.
func run(cfg *config.Config, stdout io.Writer, inv shaderbuild.Invoker) int {
	policy, err := cfg.ExitPolicy()
	if err != nil {
		logger.Error("invalid exit policy", zap.String("error", err.Error()))
		return exitConfig
	}

	log := logger.Named("shaderbuild")
	logger.Debug("starting build",
		zap.String("compiler", cfg.Compiler.Path),
		zap.Stringer("exit_policy", policy))

	opts := []shaderbuild.Option{
		shaderbuild.WithCompiler(cfg.Compiler.Path),
		shaderbuild.WithOutput(stdout),
		shaderbuild.WithLogger(log),
	}
	if inv != nil {
		opts = append(opts, shaderbuild.WithInvoker(inv))
	}

	report := shaderbuild.New(opts...).Run()
	if err := report.Err(); err != nil {
		log.Info("shader failures", zap.String("errors", err.Error()))
	}
	return policy.Code(report)
}
