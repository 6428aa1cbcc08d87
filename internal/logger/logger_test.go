package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLogLevels(t *testing.T) {
	tempDir := t.TempDir()

	tests := []struct {
		level    string
		expected []string
		excluded []string
	}{
		{
			level:    "error",
			expected: []string{"ERROR"},
			excluded: []string{"WARN", "INFO", "DEBUG"},
		},
		{
			level:    "warn",
			expected: []string{"ERROR", "WARN"},
			excluded: []string{"INFO", "DEBUG"},
		},
		{
			level:    "info",
			expected: []string{"ERROR", "WARN", "INFO"},
			excluded: []string{"DEBUG"},
		},
		{
			level:    "debug",
			expected: []string{"ERROR", "WARN", "INFO", "DEBUG"},
		},
		{
			// Unknown levels fall back to warn
			level:    "verbose",
			expected: []string{"ERROR", "WARN"},
			excluded: []string{"INFO", "DEBUG"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logFile := filepath.Join(tempDir, tt.level+".log")

			cfg := FileConfig{
				Path:       logFile,
				MaxSizeMB:  1,
				MaxBackups: 1,
				MaxAgeDays: 1,
			}
			if err := InitWithFileConfig(tt.level, cfg, nil); err != nil {
				t.Fatalf("failed to init logger: %v", err)
			}

			Debug("debug message")
			Info("info message")
			Warn("warn message")
			Error("error message")
			Sync()

			content, err := os.ReadFile(logFile)
			if err != nil {
				t.Fatalf("failed to read log file: %v", err)
			}
			logContent := string(content)

			for _, exp := range tt.expected {
				if !strings.Contains(logContent, exp) {
					t.Errorf("expected %s in log output", exp)
				}
			}
			for _, exc := range tt.excluded {
				if strings.Contains(logContent, exc) {
					t.Errorf("unexpected %s in log output for level %s", exc, tt.level)
				}
			}
		})
	}
}

func TestConsoleWriter(t *testing.T) {
	var console bytes.Buffer
	if err := InitWithFileConfig("info", FileConfig{}, &console); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}

	Named("driver").Info("build finished")
	Sugar.Infof("compiled %d shaders", 4)
	Sync()

	out := console.String()
	for _, want := range []string{"INFO", "driver", "build finished", "compiled 4 shaders"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in console output %q", want, out)
		}
	}
}

func TestNoSinks(t *testing.T) {
	if err := InitWithFileConfig("debug", FileConfig{}, nil); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}
	// Must not panic with every core disabled
	Info("dropped")
	Sync()
}

func TestDefaultFileConfig(t *testing.T) {
	cfg := DefaultFileConfig("/tmp/shaderbuild.log")

	if cfg.Path != "/tmp/shaderbuild.log" {
		t.Errorf("expected path /tmp/shaderbuild.log, got %s", cfg.Path)
	}
	if cfg.MaxSizeMB != 10 {
		t.Errorf("expected MaxSizeMB 10, got %d", cfg.MaxSizeMB)
	}
	if cfg.MaxBackups != 3 {
		t.Errorf("expected MaxBackups 3, got %d", cfg.MaxBackups)
	}
	if cfg.MaxAgeDays != 14 {
		t.Errorf("expected MaxAgeDays 14, got %d", cfg.MaxAgeDays)
	}
	if !cfg.Compress {
		t.Error("expected Compress to be true")
	}
}

func TestUnusableLogFile(t *testing.T) {
	// A regular file where a directory is expected
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatalf("failed to write blocker: %v", err)
	}

	var console bytes.Buffer
	if err := InitWithFileConfig("info", FileConfig{}, &console); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}

	err := InitWithFileConfig("info", DefaultFileConfig(filepath.Join(blocker, "build.log")), &console)
	if err == nil {
		t.Fatal("expected error for unusable log path")
	}

	// The previous logger stays installed
	Info("still logging")
	Sync()
	if !strings.Contains(console.String(), "still logging") {
		t.Errorf("expected previous logger to remain, got %q", console.String())
	}
}

func TestLogFileCreatedOnInit(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "logs", "build.log")
	if err := InitWithFileConfig("warn", DefaultFileConfig(logFile), nil); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}
	if _, err := os.Stat(logFile); err != nil {
		t.Errorf("expected log file to exist before the first write: %v", err)
	}
}
