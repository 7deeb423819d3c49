// errors.go: the single error currency of the core.
//
// Every failure the parser or evaluator can produce is an *Error carrying a
// Kind and a message. Detection sites raise (panic) immediately; the public
// entry points in interpreter.go recover and hand the *Error back as a plain
// Go error. There is no local recovery anywhere in between: each top-level
// form is all-or-nothing.
package scheme

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a core failure.
type ErrorKind int

const (
	SyntaxError       ErrorKind = iota // malformed special form or unreadable input
	UndefinedVariable                  // name absent from env and primitive table
	TypeMismatch                       // primitive applied to the wrong Value variant
	DivisionByZero                     // zero divisor or zero denominator
	ArityMismatch                      // wrong number of arguments for a closure
	RedefinitionError                  // define targeting a primitive or reserved name
)

func (k ErrorKind) String() string {
	switch k {
	case SyntaxError:
		return "SyntaxError"
	case UndefinedVariable:
		return "UndefinedVariable"
	case TypeMismatch:
		return "TypeMismatch"
	case DivisionByZero:
		return "DivisionByZero"
	case ArityMismatch:
		return "ArityMismatch"
	case RedefinitionError:
		return "RedefinitionError"
	default:
		return "Error"
	}
}

// Error is the error type surfaced by Parse/Eval and the reader.
type Error struct {
	Kind ErrorKind
	Msg  string

	// incomplete marks a SyntaxError caused by running out of input, so a
	// REPL can keep reading instead of reporting. See IsIncomplete.
	incomplete bool
}

func (e *Error) Error() string {
	return e.Kind.String() + ": " + e.Msg
}

// IsIncomplete reports whether err is a read error that more input could fix
// (unterminated list or string). REPL drivers use it to prompt for
// continuation lines.
func IsIncomplete(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.incomplete
}

// raise aborts the current parse/eval with an *Error. Recovered at the
// public API boundary.
func raise(kind ErrorKind, format string, args ...any) {
	panic(&Error{Kind: kind, Msg: fmt.Sprintf(format, args...)})
}
