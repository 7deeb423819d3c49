// interpreter_exec.go — the evaluator.
//
// eval is one structural recursion over the Expr kinds, threading an *Env.
// The *Env head pointer is what lets define push a frame that the following
// forms in the same sequence can see, while closures capture only the
// *Frame snapshot current at lambda time. Bodies of let/letrec and calls run
// in a child Env so their extensions never leak back to the caller.
package scheme

func (ip *Interpreter) eval(e Expr, env *Env) Value {
	switch n := e.(type) {
	case *Fixnum:
		return IntV(n.N)
	case *RationalLit:
		return RationalV(n.Num, n.Den)
	case *StringLit:
		return StrV(n.S)
	case *BoolLit:
		return BoolV(n.B)
	case *VoidLit:
		return Void
	case *ExitLit:
		return Terminate

	case *Var:
		return ip.lookupVar(n.Name, env)

	case *Unary:
		return ip.applyUnary(n.Op, ip.eval(n.Rand, env))
	case *Binary:
		v1 := ip.eval(n.Rand1, env)
		v2 := ip.eval(n.Rand2, env)
		return ip.applyBinary(n.Op, v1, v2)
	case *Variadic:
		args := make([]Value, len(n.Rands))
		for i, rand := range n.Rands {
			args[i] = ip.eval(rand, env)
		}
		return ip.applyVariadic(n.Op, args)

	case *If:
		if isTruthy(ip.eval(n.Cond, env)) {
			return ip.eval(n.Conseq, env)
		}
		if n.Alter == nil {
			return Void
		}
		return ip.eval(n.Alter, env)

	case *Cond:
		return ip.evalCond(n, env)

	case *And:
		v := True
		for _, rand := range n.Rands {
			v = ip.eval(rand, env)
			if !isTruthy(v) {
				return False
			}
		}
		return v

	case *Or:
		for _, rand := range n.Rands {
			if v := ip.eval(rand, env); isTruthy(v) {
				return v
			}
		}
		return False

	case *Lambda:
		// lexical capture: the frame chain as it is right now
		return ProcV(&Proc{Params: n.Params, Body: n.Body, Env: env.head})

	case *Define:
		return ip.evalDefine(n, env)

	case *Let:
		vals := make([]Value, len(n.Bindings))
		for i, b := range n.Bindings {
			// binding expressions see only the pre-extension environment
			vals[i] = ip.eval(b.Rhs, env)
		}
		frame := env.head
		for i, b := range n.Bindings {
			frame = Extend(b.Name, vals[i], frame)
		}
		return ip.eval(n.Body, &Env{head: frame})

	case *Letrec:
		return ip.evalLetrec(n, env)

	case *Set:
		v := ip.eval(n.Rhs, env)
		if !env.head.Modify(n.Name, v) {
			raise(UndefinedVariable, "set!: undefined variable %s", n.Name)
		}
		return Void

	case *Begin:
		return ip.evalSequence(n.Seq, env)

	case *Quote:
		return datumToValue(n.Datum)

	case *Apply:
		fn := ip.eval(n.Rator, env)
		args := make([]Value, len(n.Rands))
		for i, rand := range n.Rands {
			// operands evaluate in the caller's environment
			args[i] = ip.eval(rand, env)
		}
		return ip.apply(fn, args)

	default:
		raise(TypeMismatch, "cannot evaluate expression node %T", e)
		return Void
	}
}

// lookupVar resolves a name: the value environment first, then the
// primitive table (wrapping the primitive as a first-class closure over the
// current environment), then UndefinedVariable.
func (ip *Interpreter) lookupVar(name string, env *Env) Value {
	if v, ok := env.head.Find(name); ok {
		return v
	}
	if op, ok := primitives[name]; ok {
		return primitiveProc(op, env.head)
	}
	raise(UndefinedVariable, "undefined variable: %s", name)
	return Void
}

// primitiveProc wraps a primitive operation as a closure so primitives can
// be passed as first-class values. Fixed-arity primitives get fresh formal
// parameters feeding the operation node; variadic ones carry the
// variadicPrim mark so apply feeds the call's arguments into the fold
// directly instead of arity-checking.
func primitiveProc(op PrimOp, frame *Frame) Value {
	switch {
	case zeroOps[op]:
		var body Expr = &VoidLit{}
		if op == OpExit {
			body = &ExitLit{}
		}
		return ProcV(&Proc{Params: []string{}, Body: body, Env: frame})
	case unaryOps[op]:
		return ProcV(&Proc{
			Params: []string{"parm"},
			Body:   &Unary{Op: op, Rand: &Var{Name: "parm"}},
			Env:    frame,
		})
	case binaryOps[op]:
		return ProcV(&Proc{
			Params: []string{"parm1", "parm2"},
			Body:   &Binary{Op: op, Rand1: &Var{Name: "parm1"}, Rand2: &Var{Name: "parm2"}},
			Env:    frame,
		})
	default:
		return ProcV(&Proc{Body: &Variadic{Op: op}, Env: frame, variadicPrim: true})
	}
}

// apply calls a procedure value with already-evaluated arguments.
func (ip *Interpreter) apply(fn Value, args []Value) Value {
	if fn.Tag != VTProc {
		raise(TypeMismatch, "attempt to apply a non-procedure")
	}
	p := fn.Data.(*Proc)

	// variadic primitive wrapper: no formals, arguments feed the fold
	if p.variadicPrim {
		return ip.applyVariadic(p.Body.(*Variadic).Op, args)
	}

	if len(args) != len(p.Params) {
		raise(ArityMismatch, "wrong number of arguments: want %d, got %d", len(p.Params), len(args))
	}
	frame := p.Env
	for i, name := range p.Params {
		frame = Extend(name, args[i], frame)
	}
	return ip.eval(p.Body, &Env{head: frame})
}

func (ip *Interpreter) evalCond(n *Cond, env *Env) Value {
	for _, clause := range n.Clauses {
		if clause.Test == nil {
			return ip.evalBody(clause.Body, env)
		}
		t := ip.eval(clause.Test, env)
		if !isTruthy(t) {
			continue
		}
		if len(clause.Body) == 0 {
			// a test-only clause yields the test's own value
			return t
		}
		return ip.evalBody(clause.Body, env)
	}
	return Void
}

func (ip *Interpreter) evalBody(body []Expr, env *Env) Value {
	last := Void
	for _, e := range body {
		last = ip.eval(e, env)
	}
	return last
}

// evalDefine installs a binding using the placeholder-then-mutate idiom:
// the name is bound to Void first, the right-hand side evaluates with that
// placeholder visible (enabling self-recursion), then the placeholder frame
// is overwritten in place.
func (ip *Interpreter) evalDefine(n *Define, env *Env) Value {
	checkRedefinable(n.Name)
	placeholder := Extend(n.Name, Void, env.head)
	env.head = placeholder
	v := ip.eval(n.Rhs, env)
	placeholder.Modify(n.Name, v)
	return Void
}

func (ip *Interpreter) evalLetrec(n *Letrec, env *Env) Value {
	frame := env.head
	placeholders := make([]*Frame, len(n.Bindings))
	for i, b := range n.Bindings {
		frame = Extend(b.Name, Void, frame)
		placeholders[i] = frame
	}
	recEnv := &Env{head: frame}

	// all right-hand sides run against the placeholder-populated chain
	// before any placeholder is overwritten
	vals := make([]Value, len(n.Bindings))
	for i, b := range n.Bindings {
		vals[i] = ip.eval(b.Rhs, recEnv)
	}
	for i, b := range n.Bindings {
		placeholders[i].Modify(b.Name, vals[i])
	}
	return ip.eval(n.Body, recEnv)
}

// evalSequence runs a begin body. A leading contiguous run of defines gets
// letrec-style mutual visibility: placeholders for every name first, then
// each right-hand side in order.
func (ip *Interpreter) evalSequence(seq []Expr, env *Env) Value {
	if len(seq) == 0 {
		return Void
	}
	lead := 0
	for lead < len(seq) {
		if _, isDefine := seq[lead].(*Define); !isDefine {
			break
		}
		lead++
	}
	if lead > 0 {
		defs := make([]*Define, lead)
		placeholders := make([]*Frame, lead)
		for i := 0; i < lead; i++ {
			defs[i] = seq[i].(*Define)
			checkRedefinable(defs[i].Name)
			env.head = Extend(defs[i].Name, Void, env.head)
			placeholders[i] = env.head
		}
		for i, def := range defs {
			v := ip.eval(def.Rhs, env)
			placeholders[i].Modify(def.Name, v)
		}
		if lead == len(seq) {
			return Void
		}
		seq = seq[lead:]
	}
	return ip.evalBody(seq, env)
}

func checkRedefinable(name string) {
	if _, isPrim := primitives[name]; isPrim {
		raise(RedefinitionError, "cannot redefine primitive %s", name)
	}
	if _, isForm := reservedWords[name]; isForm {
		raise(RedefinitionError, "cannot redefine reserved word %s", name)
	}
}

// datumToValue converts a quoted syntax node into a runtime Value. Lists
// convert recursively to nested pairs, honoring the dotted-pair marker.
func datumToValue(stx Syntax) Value {
	switch s := stx.(type) {
	case *Number:
		return IntV(s.N)
	case *RationalSyntax:
		return RationalV(s.Num, s.Den)
	case *SymbolSyntax:
		return SymV(s.Name)
	case *StringSyntax:
		return StrV(s.Text)
	case *TrueSyntax:
		return True
	case *FalseSyntax:
		return False
	case *List:
		return listToValue(s.Elems)
	default:
		raise(SyntaxError, "unrecognized syntax node %T in quote", stx)
		return Void
	}
}

func listToValue(elems []Syntax) Value {
	if len(elems) == 0 {
		return Null
	}
	tail := Null
	rest := elems
	if len(elems) >= 3 {
		if sym, ok := elems[len(elems)-2].(*SymbolSyntax); ok && sym.Name == "." {
			tail = datumToValue(elems[len(elems)-1])
			rest = elems[:len(elems)-2]
		}
	}
	result := tail
	for i := len(rest) - 1; i >= 0; i-- {
		result = PairV(datumToValue(rest[i]), result)
	}
	return result
}
