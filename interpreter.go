// interpreter.go — public surface of the interpreter.
//
// An Interpreter owns one persistent global environment. Parse and the Eval*
// methods are the only entry points; each recovers the core's internal
// raises and returns them as a plain (result, error) pair, so a driver can
// report the failure and keep its loop going. A successful evaluation may
// yield the Terminate sentinel (from (exit)), which tells the driver to stop
// — it is a value, not an error.
//
// Evaluation is single-threaded, depth-first recursion on the host stack.
// There is no tail-call elimination: deeply recursive programs exhaust the
// host stack. That is an accepted limitation of the design, not something
// this implementation papers over.
package scheme

import (
	"io"
	"os"
)

// Version of the interpreter, reported by the REPL banner.
const Version = "0.3.0"

// Interpreter evaluates Scheme forms against a persistent global
// environment.
type Interpreter struct {
	global *Env

	// Out is where the display primitive writes. Defaults to os.Stdout.
	Out io.Writer
}

// NewInterpreter returns an interpreter with an empty global environment.
// The keyword and primitive tables are package-level constants; there is no
// per-instance setup beyond the environment.
func NewInterpreter() *Interpreter {
	return &Interpreter{global: NewEnv(), Out: os.Stdout}
}

// Parse resolves a syntax tree into an expression tree against the current
// global environment (used only to detect lexical shadowing of keywords and
// primitives). Malformed forms yield an *Error of kind SyntaxError.
func (ip *Interpreter) Parse(stx Syntax) (expr Expr, err error) {
	defer recoverError(&err)
	return parseSyntax(stx, ip.global.head), nil
}

// Eval reduces an expression tree to a Value in the global environment.
func (ip *Interpreter) Eval(expr Expr) (v Value, err error) {
	defer recoverError(&err)
	return ip.eval(expr, ip.global), nil
}

// EvalForm parses and evaluates a single syntax tree.
func (ip *Interpreter) EvalForm(stx Syntax) (v Value, err error) {
	defer recoverError(&err)
	return ip.eval(parseSyntax(stx, ip.global.head), ip.global), nil
}

// EvalSource reads, parses and evaluates every form in src in order,
// returning the last form's value. Forms are parsed one at a time so that a
// define in an earlier form is visible while later forms parse. Evaluation
// stops early when a form yields the Terminate sentinel.
func (ip *Interpreter) EvalSource(src string) (Value, error) {
	r := NewReader(src)
	last := Void
	for {
		stx, err := r.Read()
		if err == io.EOF {
			return last, nil
		}
		if err != nil {
			return Void, err
		}
		v, err := ip.EvalForm(stx)
		if err != nil {
			return Void, err
		}
		if v.Tag == VTTerminate {
			return v, nil
		}
		last = v
	}
}

func recoverError(err *error) {
	if rec := recover(); rec != nil {
		e, ok := rec.(*Error)
		if !ok {
			panic(rec)
		}
		*err = e
	}
}
