// expr.go
//
// Expr is the parser's output: a closed typed AST with one node kind per
// semantic construct. Nodes are built once by the parser and never mutated;
// the evaluator is a single type switch over these kinds.
package scheme

// PrimOp tags a built-in operation. The parser resolves primitive names to
// these tags through the primitives table and bakes them into Unary/Binary/
// Variadic nodes; the evaluator dispatches on the tag with pure operator
// functions (interpreter_ops.go).
type PrimOp int

const (
	OpAdd PrimOp = iota
	OpSub
	OpMul
	OpDiv
	OpModulo
	OpExpt
	OpLess
	OpLessEq
	OpNumEq
	OpGreaterEq
	OpGreater
	OpCons
	OpCar
	OpCdr
	OpSetCar
	OpSetCdr
	OpList
	OpIsList
	OpNot
	OpEq
	OpIsBoolean
	OpIsNumber
	OpIsNull
	OpIsPair
	OpIsProcedure
	OpIsSymbol
	OpIsString
	OpVoid
	OpExit
	OpDisplay
)

// Form tags a reserved keyword (special form).
type Form int

const (
	FormQuote Form = iota
	FormIf
	FormCond
	FormLambda
	FormDefine
	FormLet
	FormLetrec
	FormSet
	FormBegin
	FormAnd
	FormOr
)

type Expr interface{ exprNode() }

// Literal nodes.

type Fixnum struct{ N int64 }

type RationalLit struct{ Num, Den int64 }

type StringLit struct{ S string }

type BoolLit struct{ B bool }

// VoidLit is the (void) form; it evaluates to the Void value.
type VoidLit struct{}

// ExitLit is the (exit) form; it evaluates to the Terminate sentinel.
type ExitLit struct{}

// Var is a variable reference, resolved at evaluation time.
type Var struct{ Name string }

// Unary, Binary and Variadic are primitive applications of fixed or open
// arity. Operands are evaluated left to right, then the operator function
// for Op runs over the resulting Values.
type Unary struct {
	Op   PrimOp
	Rand Expr
}

type Binary struct {
	Op    PrimOp
	Rand1 Expr
	Rand2 Expr
}

type Variadic struct {
	Op    PrimOp
	Rands []Expr
}

// Special forms.

// If with a nil Alter returns Void when the condition is false.
type If struct {
	Cond   Expr
	Conseq Expr
	Alter  Expr
}

// CondClause with a nil Test is an else clause. A clause with an empty Body
// yields the test's own value.
type CondClause struct {
	Test Expr
	Body []Expr
}

type Cond struct{ Clauses []CondClause }

type Lambda struct {
	Params []string
	Body   Expr
}

type Define struct {
	Name string
	Rhs  Expr
}

type Binding struct {
	Name string
	Rhs  Expr
}

type Let struct {
	Bindings []Binding
	Body     Expr
}

type Letrec struct {
	Bindings []Binding
	Body     Expr
}

type Set struct {
	Name string
	Rhs  Expr
}

type Begin struct{ Seq []Expr }

// Quote retains the operand as unparsed Syntax; conversion to a Value
// happens lazily at evaluation time.
type Quote struct{ Datum Syntax }

// And and Or short-circuit over their unevaluated operands.
type And struct{ Rands []Expr }
type Or struct{ Rands []Expr }

// Apply is a generic application: operator expression plus operand
// expressions. Whether the operator name is bound is decided at evaluation
// time, not parse time.
type Apply struct {
	Rator Expr
	Rands []Expr
}

func (*Fixnum) exprNode()      {}
func (*RationalLit) exprNode() {}
func (*StringLit) exprNode()   {}
func (*BoolLit) exprNode()     {}
func (*VoidLit) exprNode()     {}
func (*ExitLit) exprNode()     {}
func (*Var) exprNode()         {}
func (*Unary) exprNode()       {}
func (*Binary) exprNode()      {}
func (*Variadic) exprNode()    {}
func (*If) exprNode()          {}
func (*Cond) exprNode()        {}
func (*Lambda) exprNode()      {}
func (*Define) exprNode()      {}
func (*Let) exprNode()         {}
func (*Letrec) exprNode()      {}
func (*Set) exprNode()         {}
func (*Begin) exprNode()       {}
func (*Quote) exprNode()       {}
func (*And) exprNode()         {}
func (*Or) exprNode()          {}
func (*Apply) exprNode()       {}
