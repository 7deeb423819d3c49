// tables.go
//
// The two static name-resolution tables: reserved keyword names to special
// form tags, and primitive names to operation tags. Built once at package
// init, read-only afterwards. The parser queries them but never writes.
package scheme

var reservedWords = map[string]Form{
	"quote":  FormQuote,
	"if":     FormIf,
	"cond":   FormCond,
	"lambda": FormLambda,
	"define": FormDefine,
	"let":    FormLet,
	"letrec": FormLetrec,
	"set!":   FormSet,
	"begin":  FormBegin,
	"and":    FormAnd,
	"or":     FormOr,
}

var primitives = map[string]PrimOp{
	"+":          OpAdd,
	"-":          OpSub,
	"*":          OpMul,
	"/":          OpDiv,
	"modulo":     OpModulo,
	"expt":       OpExpt,
	"<":          OpLess,
	"<=":         OpLessEq,
	"=":          OpNumEq,
	">=":         OpGreaterEq,
	">":          OpGreater,
	"cons":       OpCons,
	"car":        OpCar,
	"cdr":        OpCdr,
	"set-car!":   OpSetCar,
	"set-cdr!":   OpSetCdr,
	"list":       OpList,
	"list?":      OpIsList,
	"not":        OpNot,
	"eq?":        OpEq,
	"boolean?":   OpIsBoolean,
	"number?":    OpIsNumber,
	"null?":      OpIsNull,
	"pair?":      OpIsPair,
	"procedure?": OpIsProcedure,
	"symbol?":    OpIsSymbol,
	"string?":    OpIsString,
	"void":       OpVoid,
	"exit":       OpExit,
	"display":    OpDisplay,
}

// arities of the fixed-arity primitives; the rest are variadic. The
// comparison chain ops appear in both worlds: exactly two operands build a
// Binary node, any other count builds a Variadic one.
var unaryOps = map[PrimOp]bool{
	OpCar: true, OpCdr: true, OpIsList: true, OpNot: true,
	OpIsBoolean: true, OpIsNumber: true, OpIsNull: true, OpIsPair: true,
	OpIsProcedure: true, OpIsSymbol: true, OpIsString: true, OpDisplay: true,
}

var binaryOps = map[PrimOp]bool{
	OpCons: true, OpSetCar: true, OpSetCdr: true,
	OpModulo: true, OpExpt: true, OpEq: true,
}

var comparisonOps = map[PrimOp]bool{
	OpLess: true, OpLessEq: true, OpNumEq: true, OpGreaterEq: true, OpGreater: true,
}

var zeroOps = map[PrimOp]bool{
	OpVoid: true, OpExit: true,
}
