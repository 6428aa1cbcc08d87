package shaderbuild

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
)

// Driver compiles a fixed shader set one file at a time.
type Driver struct {
	compiler string
	shaders  []Shader
	invoker  Invoker
	out      io.Writer
	log      *zap.Logger
}

// Option configures a Driver.
type Option func(*Driver)

// WithCompiler sets the compiler binary.
func WithCompiler(bin string) Option {
	return func(d *Driver) {
		if bin != "" {
			d.compiler = bin
		}
	}
}

// WithInvoker replaces the process runner.
func WithInvoker(inv Invoker) Option {
	return func(d *Driver) { d.invoker = inv }
}

// WithOutput sets where status lines are written.
func WithOutput(w io.Writer) Option {
	return func(d *Driver) { d.out = w }
}

// WithLogger sets the diagnostic logger.
func WithLogger(log *zap.Logger) Option {
	return func(d *Driver) { d.log = log }
}

// WithShaders overrides the shader set. The slice is copied.
func WithShaders(shaders []Shader) Option {
	return func(d *Driver) {
		d.shaders = append([]Shader(nil), shaders...)
	}
}

// New creates a driver for DefaultShaders writing status to stdout.
func New(opts ...Option) *Driver {
	d := &Driver{
		compiler: DefaultCompiler,
		shaders:  DefaultShaders(),
		out:      os.Stdout,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.invoker == nil {
		d.invoker = &ExecInvoker{Log: d.log}
	}
	return d
}

// Compiler returns the compiler binary the driver invokes.
func (d *Driver) Compiler() string {
	return d.compiler
}

// Run compiles every shader in order. A failed compilation prints
// ErrorMessage and the build continues; DoneMessage is printed last.
// Failures are recorded in the report, never returned.
func (d *Driver) Run() *Report {
	report := &Report{Outcomes: make([]Outcome, 0, len(d.shaders))}

	for _, shader := range d.shaders {
		outcome := d.compile(shader)
		report.Outcomes = append(report.Outcomes, outcome)
		if outcome.Failed() {
			d.println(ErrorMessage)
		}
	}
	d.println(DoneMessage)

	d.log.Info("build finished",
		zap.Int("compiled", report.Succeeded()),
		zap.Int("failed", report.Failures()))
	return report
}

func (d *Driver) compile(shader Shader) Outcome {
	log := d.log.With(zap.String("shader", string(shader)))

	stage := shader.Stage()
	if stage == StageUnknown {
		log.Warn("unknown shader stage, compilation may fail")
	}

	outcome := Outcome{Shader: shader, Output: shader.Output()}
	args := shader.Args()
	log.Debug("compiling",
		zap.Stringer("stage", stage),
		zap.String("compiler", d.compiler),
		zap.Strings("args", args))

	outcome.ExitCode, outcome.Err = d.invoker.Invoke(d.compiler, args)

	switch {
	case outcome.Err != nil:
		// Plain message; zap.Error adds the pkg/errors stack.
		log.Error("compiler could not be run", zap.String("error", outcome.Err.Error()))
	case outcome.ExitCode != 0:
		log.Warn("compiler failed", zap.Int("exit_code", outcome.ExitCode))
	default:
		log.Debug("compiled", zap.String("output", outcome.Output))
	}
	return outcome
}

func (d *Driver) println(msg string) {
	// Status lines are best effort.
	_, _ = fmt.Fprintln(d.out, msg)
}
