package shaderbuild

import (
	"bytes"
	"os/exec"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Invoker runs an external program to completion and reports its exit code.
// A non-nil error means the program could not be started or waited on; the
// exit code is then -1.
type Invoker interface {
	Invoke(name string, args []string) (int, error)
}

// ExecInvoker runs programs with os/exec.
type ExecInvoker struct {
	Dir string   // Working directory; empty means the current one
	Env []string // Environment; nil inherits the driver's

	// Log receives the child's combined output at debug level.
	Log *zap.Logger
}

// Invoke runs name synchronously. The child's output never reaches the
// driver's standard output.
func (e *ExecInvoker) Invoke(name string, args []string) (int, error) {
	cmd := exec.Command(name, args...)
	cmd.Dir = e.Dir
	if e.Env != nil {
		cmd.Env = e.Env
	}

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	err := cmd.Run()
	if e.Log != nil && out.Len() > 0 {
		e.Log.Debug("compiler output",
			zap.String("cmd", name),
			zap.Strings("args", args),
			zap.ByteString("output", bytes.TrimSpace(out.Bytes())))
	}

	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, errors.Wrapf(err, "running %s", name)
}
