// value.go
//
// The runtime value model: a closed tagged sum. The tag determines which Go
// type Value.Data holds (see ValueTag). Heap variants (pairs, procedures,
// strings, rationals) are carried by pointer so that sharing and `eq?`
// identity behave the way the language requires: mutating a pair through one
// reference is visible through every other, and two structurally equal pairs
// are still distinct objects.
package scheme

// ValueTag enumerates the runtime kinds a Value may hold.
type ValueTag int

const (
	VTInt       ValueTag = iota // int64
	VTRational                  // *Rational
	VTBool                      // bool
	VTStr                       // *StrObject
	VTSym                       // string (symbol name)
	VTPair                      // *PairObject
	VTNull                      // no payload: the empty list
	VTVoid                      // no payload: the unspecified value
	VTProc                      // *Proc (closure)
	VTTerminate                 // no payload: interpreter shutdown sentinel
)

// Value is the universal runtime carrier.
type Value struct {
	Tag  ValueTag
	Data any
}

// Rational is an exact fraction over int64. Construction goes through
// RationalV, which normalizes: GCD-reduced, sign on the numerator, and a
// denominator of 1 collapses to an Integer. One policy on every path.
type Rational struct {
	Num int64
	Den int64
}

// StrObject boxes a string so `eq?` can compare string identities.
type StrObject struct {
	S string
}

// PairObject is a mutable cons cell. Both slots are freely reassignable
// through setCar/setCdr, which is how shared and cyclic structure arises.
type PairObject struct {
	Car Value
	Cdr Value
}

// Proc is a closure: parameter names in order, the body expression (owned and
// immutable after construction), and the frame chain captured where the
// lambda was evaluated. variadicPrim marks the wrappers that make variadic
// primitives first-class values; only those accept any argument count, a
// user-written closure never does.
type Proc struct {
	Params       []string
	Body         Expr
	Env          *Frame
	variadicPrim bool
}

// Singleton payload-free values.
var (
	Null      = Value{Tag: VTNull}
	Void      = Value{Tag: VTVoid}
	Terminate = Value{Tag: VTTerminate}
	True      = Value{Tag: VTBool, Data: true}
	False     = Value{Tag: VTBool, Data: false}
)

// Constructors.

func IntV(n int64) Value { return Value{Tag: VTInt, Data: n} }

func BoolV(b bool) Value {
	if b {
		return True
	}
	return False
}

func StrV(s string) Value { return Value{Tag: VTStr, Data: &StrObject{S: s}} }
func SymV(name string) Value { return Value{Tag: VTSym, Data: name} }

func PairV(car, cdr Value) Value {
	return Value{Tag: VTPair, Data: &PairObject{Car: car, Cdr: cdr}}
}

func ProcV(p *Proc) Value { return Value{Tag: VTProc, Data: p} }

// RationalV builds an exact fraction, normalizing on construction. A zero
// denominator raises DivisionByZero.
func RationalV(num, den int64) Value {
	if den == 0 {
		raise(DivisionByZero, "rational with zero denominator")
	}
	if den < 0 {
		num, den = -num, -den
	}
	if g := gcd(abs64(num), den); g > 1 {
		num /= g
		den /= g
	}
	if den == 1 {
		return IntV(num)
	}
	return Value{Tag: VTRational, Data: &Rational{Num: num, Den: den}}
}

func abs64(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// eqValues implements `eq?`: value equality for Integer, Boolean, Symbol,
// Null and Void; object identity for everything else.
func eqValues(a, b Value) bool {
	if a.Tag != b.Tag {
		return false
	}
	switch a.Tag {
	case VTInt:
		return a.Data.(int64) == b.Data.(int64)
	case VTBool:
		return a.Data.(bool) == b.Data.(bool)
	case VTSym:
		return a.Data.(string) == b.Data.(string)
	case VTNull, VTVoid:
		return true
	case VTStr:
		return a.Data.(*StrObject) == b.Data.(*StrObject)
	case VTPair:
		return a.Data.(*PairObject) == b.Data.(*PairObject)
	case VTProc:
		return a.Data.(*Proc) == b.Data.(*Proc)
	case VTRational:
		return a.Data.(*Rational) == b.Data.(*Rational)
	default:
		return false
	}
}

// isTruthy: only the boolean #f is false. Null, 0 and "" all count as true.
func isTruthy(v Value) bool {
	return !(v.Tag == VTBool && !v.Data.(bool))
}
