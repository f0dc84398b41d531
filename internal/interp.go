package internal

import (
	"io"
	"io/ioutil"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// IPrinter printer interface
type IPrinter interface {
	Println(a ...interface{}) (n int, err error)
	Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error)
	Fprintln(w io.Writer, a ...interface{}) (n int, err error)
}

// Result of running a piece of source code
type Result int

// Possible results of Run
const (
	ResultOK Result = iota
	ResultStaticError
	ResultRuntimeError
)

func (r Result) String() string {
	switch r {
	case ResultStaticError:
		return "static error"
	case ResultRuntimeError:
		return "runtime error"
	}
	return "ok"
}

// DefaultMaxCallDepth is the call depth at which a stack overflow is reported
const DefaultMaxCallDepth = 10000

// Interpreter is an interpreter session. Globals and resolved bindings
// survive between calls to Run until Reset is called.
type Interpreter struct {
	printer      IPrinter
	log          *logrus.Logger
	maxCallDepth int

	ids  nodeIDs
	exec *exec
	last *interpreterState
}

// Option configures an Interpreter
type Option func(*Interpreter)

// WithLogger sets the logger used for phase and diagnostic logs
func WithLogger(log *logrus.Logger) Option {
	return func(in *Interpreter) {
		in.log = log
	}
}

// WithMaxCallDepth sets the call depth limit, zero disables it
func WithMaxCallDepth(depth int) Option {
	return func(in *Interpreter) {
		in.maxCallDepth = depth
	}
}

// NewInterpreter creates a session that writes program output to p
func NewInterpreter(p IPrinter, opts ...Option) *Interpreter {
	in := &Interpreter{
		printer:      p,
		log:          discardLogger(),
		maxCallDepth: DefaultMaxCallDepth,
	}
	for _, opt := range opts {
		opt(in)
	}
	in.Reset()
	return in
}

func discardLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(ioutil.Discard)
	return log
}

// Reset drops every global and resolved binding of the session
func (in *Interpreter) Reset() {
	globals := newEnv(nil)
	defineGlobals(globals)

	in.ids = nodeIDs{}
	in.exec = &exec{
		globals:  globals,
		env:      globals,
		locals:   make(map[int]int),
		maxDepth: in.maxCallDepth,
	}
	in.last = nil
}

// Run scans, parses, resolves and evaluates source. Diagnostics are written
// to the printer's error stream as they are found.
func (in *Interpreter) Run(source string) Result {
	start := time.Now()
	log := in.log.WithField("run", uuid.NewString())

	state := &interpreterState{
		source: source,
		errors: make([]parseError, 0),
		logger: in.printer,
		log:    log,
	}
	in.last = state

	lexer := &lexer{
		line:  1,
		state: state,
	}
	lexer.scan()
	log.WithFields(logrus.Fields{
		"phase":  "scan",
		"tokens": len(state.tokens),
	}).Debug("Source scanned")

	parser := &parser{
		state: state,
		ids:   &in.ids,
	}
	parser.parse()
	log.WithFields(logrus.Fields{
		"phase":      "parse",
		"statements": len(state.stmts),
	}).Debug("Source parsed")

	if state.PrintErrors() {
		return ResultStaticError
	}

	if in.log.IsLevelEnabled(logrus.TraceLevel) {
		log.WithField("phase", "parse").Trace("\n" + printTree(state.stmts))
	}

	resolver := newResolver(state, in.exec)
	resolver.resolveStmts(state.stmts)
	log.WithField("phase", "resolve").Debug("Source resolved")

	if state.PrintErrors() {
		return ResultStaticError
	}

	in.exec.state = state
	ok := in.exec.interpret()
	log.WithFields(logrus.Fields{
		"phase":   "interpret",
		"elapsed": time.Since(start),
	}).Debug("Source interpreted")

	if !ok {
		return ResultRuntimeError
	}
	return ResultOK
}

// Err returns the diagnostics of the last run as a single error, or nil
func (in *Interpreter) Err() error {
	if in.last == nil {
		return nil
	}
	return in.last.compositeError()
}

// RunSourceWithPrinter runs source code on a fresh interpreter instance
func RunSourceWithPrinter(source string, p IPrinter) Result {
	return NewInterpreter(p).Run(source)
}
