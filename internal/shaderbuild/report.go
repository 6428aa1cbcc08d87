package shaderbuild

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// Outcome records one compiler invocation.
type Outcome struct {
	Shader   Shader
	Output   string
	ExitCode int
	Err      error // Set when the compiler could not be run at all
}

// Failed reports whether the invocation should be counted as an error.
func (o Outcome) Failed() bool {
	return o.Err != nil || o.ExitCode != 0
}

// Report holds the outcomes of a build in invocation order.
type Report struct {
	Outcomes []Outcome
}

// Failures returns the number of failed invocations.
func (r *Report) Failures() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Failed() {
			n++
		}
	}
	return n
}

// Succeeded returns the number of successful invocations.
func (r *Report) Succeeded() int {
	return len(r.Outcomes) - r.Failures()
}

// Err combines every failure into a single error, or returns nil.
func (r *Report) Err() error {
	var err error
	for _, o := range r.Outcomes {
		if !o.Failed() {
			continue
		}
		cause := o.Err
		if cause == nil {
			cause = fmt.Errorf("exit status %d", o.ExitCode)
		}
		err = multierr.Append(err, errors.Wrapf(cause, "compiling %s", o.Shader))
	}
	return err
}

// ExitPolicy decides the driver's own exit code from a report.
type ExitPolicy int

const (
	// AlwaysSucceed exits 0 regardless of compiler failures.
	AlwaysSucceed ExitPolicy = iota

	// FailOnError exits 1 if any shader failed to compile.
	FailOnError
)

func (p ExitPolicy) String() string {
	switch p {
	case FailOnError:
		return "fail-on-error"
	default:
		return "always-succeed"
	}
}

// ParseExitPolicy parses the configuration form of a policy.
func ParseExitPolicy(s string) (ExitPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "always-succeed":
		return AlwaysSucceed, nil
	case "fail-on-error":
		return FailOnError, nil
	}
	return AlwaysSucceed, errors.Errorf("unknown exit policy %q", s)
}

// Code returns the process exit code for the report.
func (p ExitPolicy) Code(r *Report) int {
	if p == FailOnError && r.Failures() > 0 {
		return 1
	}
	return 0
}
