// interpreter_ops.go — the primitive operator functions.
//
// Operands reach these functions already evaluated; everything here is a
// pure function over Values, except display, which writes to the
// interpreter's Out. Arithmetic covers the Integer/Rational pair: mixed
// operands cross-multiply, and every rational result goes through the one
// normalization path in RationalV.
package scheme

import (
	"fmt"
	"math"
)

func typeName(v Value) string {
	switch v.Tag {
	case VTInt:
		return "integer"
	case VTRational:
		return "rational"
	case VTBool:
		return "boolean"
	case VTStr:
		return "string"
	case VTSym:
		return "symbol"
	case VTPair:
		return "pair"
	case VTNull:
		return "null"
	case VTVoid:
		return "void"
	case VTProc:
		return "procedure"
	case VTTerminate:
		return "terminate"
	default:
		return "unknown"
	}
}

func (ip *Interpreter) applyUnary(op PrimOp, rand Value) Value {
	switch op {
	case OpCar:
		return asPair("car", rand).Car
	case OpCdr:
		return asPair("cdr", rand).Cdr
	case OpIsList:
		return BoolV(isProperList(rand))
	case OpNot:
		return BoolV(!isTruthy(rand))
	case OpIsBoolean:
		return BoolV(rand.Tag == VTBool)
	case OpIsNumber:
		return BoolV(rand.Tag == VTInt)
	case OpIsNull:
		return BoolV(rand.Tag == VTNull)
	case OpIsPair:
		return BoolV(rand.Tag == VTPair)
	case OpIsProcedure:
		return BoolV(rand.Tag == VTProc)
	case OpIsSymbol:
		return BoolV(rand.Tag == VTSym)
	case OpIsString:
		return BoolV(rand.Tag == VTStr)
	case OpDisplay:
		if rand.Tag == VTStr {
			fmt.Fprint(ip.Out, rand.Data.(*StrObject).S)
		} else {
			fmt.Fprint(ip.Out, FormatValue(rand))
		}
		return Void
	default:
		raise(TypeMismatch, "unknown unary operation %d", op)
		return Void
	}
}

func (ip *Interpreter) applyBinary(op PrimOp, rand1, rand2 Value) Value {
	switch op {
	case OpCons:
		return PairV(rand1, rand2)
	case OpSetCar:
		asPair("set-car!", rand1).Car = rand2
		return Void
	case OpSetCdr:
		asPair("set-cdr!", rand1).Cdr = rand2
		return Void
	case OpModulo:
		return moduloValues(rand1, rand2)
	case OpExpt:
		return exptValues(rand1, rand2)
	case OpEq:
		return BoolV(eqValues(rand1, rand2))
	case OpLess:
		return BoolV(compareNumeric(rand1, rand2) < 0)
	case OpLessEq:
		return BoolV(compareNumeric(rand1, rand2) <= 0)
	case OpNumEq:
		return BoolV(compareNumeric(rand1, rand2) == 0)
	case OpGreaterEq:
		return BoolV(compareNumeric(rand1, rand2) >= 0)
	case OpGreater:
		return BoolV(compareNumeric(rand1, rand2) > 0)
	default:
		raise(TypeMismatch, "unknown binary operation %d", op)
		return Void
	}
}

func (ip *Interpreter) applyVariadic(op PrimOp, args []Value) Value {
	switch op {
	case OpAdd:
		result := IntV(0)
		for _, arg := range args {
			result = addValues(result, arg)
		}
		return result
	case OpMul:
		result := IntV(1)
		for _, arg := range args {
			result = multiplyValues(result, arg)
		}
		return result
	case OpSub:
		if len(args) == 0 {
			raise(ArityMismatch, "- requires at least one argument")
		}
		if len(args) == 1 {
			return subtractValues(IntV(0), args[0])
		}
		result := args[0]
		for _, arg := range args[1:] {
			result = subtractValues(result, arg)
		}
		return result
	case OpDiv:
		if len(args) == 0 {
			raise(ArityMismatch, "/ requires at least one argument")
		}
		if len(args) == 1 {
			return divideValues(IntV(1), args[0])
		}
		result := args[0]
		for _, arg := range args[1:] {
			result = divideValues(result, arg)
		}
		return result
	case OpList:
		result := Null
		for i := len(args) - 1; i >= 0; i-- {
			result = PairV(args[i], result)
		}
		return result
	case OpLess:
		return chainCompare(args, func(c int) bool { return c < 0 })
	case OpLessEq:
		return chainCompare(args, func(c int) bool { return c <= 0 })
	case OpNumEq:
		return chainCompare(args, func(c int) bool { return c == 0 })
	case OpGreaterEq:
		return chainCompare(args, func(c int) bool { return c >= 0 })
	case OpGreater:
		return chainCompare(args, func(c int) bool { return c > 0 })
	default:
		raise(TypeMismatch, "unknown variadic operation %d", op)
		return Void
	}
}

func asPair(who string, v Value) *PairObject {
	if v.Tag != VTPair {
		raise(TypeMismatch, "%s: expected a pair, got %s", who, typeName(v))
	}
	return v.Data.(*PairObject)
}

// numericParts splits an Integer or Rational into numerator/denominator.
func numericParts(who string, v Value) (num, den int64) {
	switch v.Tag {
	case VTInt:
		return v.Data.(int64), 1
	case VTRational:
		r := v.Data.(*Rational)
		return r.Num, r.Den
	default:
		raise(TypeMismatch, "wrong operand type in %s: %s", who, typeName(v))
		return 0, 0
	}
}

func addValues(v1, v2 Value) Value {
	if v1.Tag == VTInt && v2.Tag == VTInt {
		return IntV(v1.Data.(int64) + v2.Data.(int64))
	}
	n1, d1 := numericParts("addition", v1)
	n2, d2 := numericParts("addition", v2)
	return RationalV(n1*d2+n2*d1, d1*d2)
}

func subtractValues(v1, v2 Value) Value {
	if v1.Tag == VTInt && v2.Tag == VTInt {
		return IntV(v1.Data.(int64) - v2.Data.(int64))
	}
	n1, d1 := numericParts("subtraction", v1)
	n2, d2 := numericParts("subtraction", v2)
	return RationalV(n1*d2-n2*d1, d1*d2)
}

func multiplyValues(v1, v2 Value) Value {
	if v1.Tag == VTInt && v2.Tag == VTInt {
		return IntV(v1.Data.(int64) * v2.Data.(int64))
	}
	n1, d1 := numericParts("multiplication", v1)
	n2, d2 := numericParts("multiplication", v2)
	return RationalV(n1*n2, d1*d2)
}

func divideValues(v1, v2 Value) Value {
	n1, d1 := numericParts("division", v1)
	n2, d2 := numericParts("division", v2)
	if n2 == 0 {
		raise(DivisionByZero, "division by zero")
	}
	return RationalV(n1*d2, d1*n2)
}

// compareNumeric orders two Integer/Rational values by cross-multiplying
// denominators: -1, 0 or 1.
func compareNumeric(v1, v2 Value) int {
	n1, d1 := numericParts("comparison", v1)
	n2, d2 := numericParts("comparison", v2)
	left := n1 * d2
	right := n2 * d1
	switch {
	case left < right:
		return -1
	case left > right:
		return 1
	default:
		return 0
	}
}

// chainCompare succeeds only if every adjacent pair satisfies the relation.
// Fewer than two operands is trivially true.
func chainCompare(args []Value, ok func(int) bool) Value {
	for i := 0; i+1 < len(args); i++ {
		if !ok(compareNumeric(args[i], args[i+1])) {
			return False
		}
	}
	return True
}

func moduloValues(v1, v2 Value) Value {
	if v1.Tag != VTInt || v2.Tag != VTInt {
		raise(TypeMismatch, "modulo is only defined for integers")
	}
	dividend := v1.Data.(int64)
	divisor := v2.Data.(int64)
	if divisor == 0 {
		raise(DivisionByZero, "division by zero")
	}
	return IntV(dividend % divisor)
}

func exptValues(v1, v2 Value) Value {
	if v1.Tag != VTInt || v2.Tag != VTInt {
		raise(TypeMismatch, "expt is only defined for integers")
	}
	base := v1.Data.(int64)
	exp := v2.Data.(int64)
	if exp < 0 {
		raise(TypeMismatch, "expt: negative exponent not supported for integers")
	}
	if base == 0 && exp == 0 {
		raise(TypeMismatch, "expt: 0^0 is undefined")
	}
	// square-and-multiply with overflow detection
	result := int64(1)
	b := base
	for exp > 0 {
		if exp%2 == 1 {
			if mulOverflows(result, b) {
				raise(TypeMismatch, "integer overflow in expt")
			}
			result *= b
		}
		exp /= 2
		if exp > 0 {
			if mulOverflows(b, b) {
				raise(TypeMismatch, "integer overflow in expt")
			}
			b *= b
		}
	}
	return IntV(result)
}

func mulOverflows(a, b int64) bool {
	if a == 0 || b == 0 {
		return false
	}
	if a == math.MinInt64 || b == math.MinInt64 {
		return !(a == 1 || b == 1)
	}
	prod := a * b
	return prod/b != a
}

// isProperList is the cycle-safe list? check: tortoise/hare over the cdr
// chain. A proper list ends at Null before the two pointers ever meet.
func isProperList(v Value) bool {
	slow, fast := v, v
	for {
		if fast.Tag == VTNull {
			return true
		}
		if fast.Tag != VTPair {
			return false
		}
		fast = fast.Data.(*PairObject).Cdr
		if fast.Tag == VTNull {
			return true
		}
		if fast.Tag != VTPair {
			return false
		}
		fast = fast.Data.(*PairObject).Cdr
		slow = slow.Data.(*PairObject).Cdr
		if fast.Tag == VTPair && slow.Tag == VTPair &&
			fast.Data.(*PairObject) == slow.Data.(*PairObject) {
			return false
		}
	}
}
