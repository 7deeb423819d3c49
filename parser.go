// parser.go
//
// Syntax → Expr resolution. For a list form whose head is a symbol the
// resolution order is fixed and load-bearing:
//
//  1. a lexical binding in the parse-time environment wins — user code may
//     shadow keywords and primitive names, so a parameter called `if` turns
//     `if` into an ordinary variable for the extent of that scope;
//  2. reserved keywords dispatch to their special-form builder;
//  3. primitive names build fixed-arity or variadic primitive nodes;
//  4. anything else becomes a generic application of Var(head), resolved at
//     evaluation time.
//
// Shape violations raise SyntaxError before any evaluation happens.
package scheme

func parseSyntax(stx Syntax, env *Frame) Expr {
	switch s := stx.(type) {
	case *Number:
		return &Fixnum{N: s.N}
	case *RationalSyntax:
		return &RationalLit{Num: s.Num, Den: s.Den}
	case *StringSyntax:
		return &StringLit{S: s.Text}
	case *TrueSyntax:
		return &BoolLit{B: true}
	case *FalseSyntax:
		return &BoolLit{B: false}
	case *SymbolSyntax:
		if !isValidSymbol(s.Name) {
			raise(SyntaxError, "invalid variable name %q", s.Name)
		}
		return &Var{Name: s.Name}
	case *List:
		return parseList(s, env)
	default:
		raise(SyntaxError, "unrecognized syntax node %T", stx)
		return nil
	}
}

func parseList(s *List, env *Frame) Expr {
	if len(s.Elems) == 0 {
		// () is the empty-list datum
		return &Quote{Datum: &List{}}
	}

	head, ok := s.Elems[0].(*SymbolSyntax)
	if !ok {
		// operator position holds an expression that must evaluate to a
		// procedure
		return &Apply{Rator: parseSyntax(s.Elems[0], env), Rands: parseArgs(s.Elems[1:], env)}
	}
	op := head.Name

	// Lexical shadowing check runs before keyword and primitive lookup.
	if _, bound := env.Find(op); bound {
		return &Apply{Rator: &Var{Name: op}, Rands: parseArgs(s.Elems[1:], env)}
	}
	if form, isForm := reservedWords[op]; isForm {
		return parseForm(form, op, s, env)
	}
	if prim, isPrim := primitives[op]; isPrim {
		return parsePrimitive(prim, op, s, env)
	}
	return &Apply{Rator: &Var{Name: op}, Rands: parseArgs(s.Elems[1:], env)}
}

func parseArgs(stxs []Syntax, env *Frame) []Expr {
	out := make([]Expr, len(stxs))
	for i, stx := range stxs {
		out[i] = parseSyntax(stx, env)
	}
	return out
}

// parseBody parses a non-empty body sequence, wrapping in begin when there
// is more than one expression.
func parseBody(owner string, stxs []Syntax, env *Frame) Expr {
	if len(stxs) == 0 {
		raise(SyntaxError, "%s must have a body", owner)
	}
	exprs := parseArgs(stxs, env)
	if len(exprs) == 1 {
		return exprs[0]
	}
	return &Begin{Seq: exprs}
}

func parsePrimitive(op PrimOp, name string, s *List, env *Frame) Expr {
	rands := parseArgs(s.Elems[1:], env)
	switch {
	case zeroOps[op]:
		if len(rands) != 0 {
			raise(SyntaxError, "wrong number of arguments for %s", name)
		}
		if op == OpExit {
			return &ExitLit{}
		}
		return &VoidLit{}
	case unaryOps[op]:
		if len(rands) != 1 {
			raise(SyntaxError, "wrong number of arguments for %s", name)
		}
		return &Unary{Op: op, Rand: rands[0]}
	case binaryOps[op]:
		if len(rands) != 2 {
			raise(SyntaxError, "wrong number of arguments for %s", name)
		}
		return &Binary{Op: op, Rand1: rands[0], Rand2: rands[1]}
	case comparisonOps[op]:
		if len(rands) == 2 {
			return &Binary{Op: op, Rand1: rands[0], Rand2: rands[1]}
		}
		return &Variadic{Op: op, Rands: rands}
	default:
		return &Variadic{Op: op, Rands: rands}
	}
}

func parseForm(form Form, name string, s *List, env *Frame) Expr {
	operands := s.Elems[1:]
	switch form {
	case FormQuote:
		if len(operands) != 1 {
			raise(SyntaxError, "wrong number of arguments for quote")
		}
		// the datum stays a Syntax node; conversion happens at eval time
		return &Quote{Datum: operands[0]}

	case FormIf:
		if len(operands) < 2 || len(operands) > 3 {
			raise(SyntaxError, "wrong number of arguments for if")
		}
		node := &If{
			Cond:   parseSyntax(operands[0], env),
			Conseq: parseSyntax(operands[1], env),
		}
		if len(operands) == 3 {
			node.Alter = parseSyntax(operands[2], env)
		}
		return node

	case FormCond:
		clauses := make([]CondClause, 0, len(operands))
		for _, stx := range operands {
			clauseList, ok := stx.(*List)
			if !ok || len(clauseList.Elems) == 0 {
				raise(SyntaxError, "cond clause must be a non-empty list")
			}
			if sym, isSym := clauseList.Elems[0].(*SymbolSyntax); isSym && sym.Name == "else" {
				if len(clauseList.Elems) < 2 {
					raise(SyntaxError, "else clause must have a body")
				}
				clauses = append(clauses, CondClause{Body: parseArgs(clauseList.Elems[1:], env)})
				continue
			}
			clauses = append(clauses, CondClause{
				Test: parseSyntax(clauseList.Elems[0], env),
				Body: parseArgs(clauseList.Elems[1:], env),
			})
		}
		return &Cond{Clauses: clauses}

	case FormLambda:
		if len(operands) < 2 {
			raise(SyntaxError, "wrong number of arguments for lambda")
		}
		params := parseParamList("lambda", operands[0])
		bodyEnv := extendParams(params, env)
		return &Lambda{Params: params, Body: parseBody("lambda", operands[1:], bodyEnv)}

	case FormDefine:
		if len(operands) < 2 {
			raise(SyntaxError, "wrong number of arguments for define")
		}
		if funcHead, isList := operands[0].(*List); isList {
			// (define (name params...) body...)
			if len(funcHead.Elems) == 0 {
				raise(SyntaxError, "malformed define")
			}
			nameSym, ok := funcHead.Elems[0].(*SymbolSyntax)
			if !ok {
				raise(SyntaxError, "define function name must be a symbol")
			}
			params := parseParams("define", funcHead.Elems[1:])
			bodyEnv := extendParams(params, env)
			return &Define{
				Name: nameSym.Name,
				Rhs:  &Lambda{Params: params, Body: parseBody("define", operands[1:], bodyEnv)},
			}
		}
		if len(operands) != 2 {
			raise(SyntaxError, "wrong number of arguments for define")
		}
		nameSym, ok := operands[0].(*SymbolSyntax)
		if !ok {
			raise(SyntaxError, "define variable must be a symbol")
		}
		return &Define{Name: nameSym.Name, Rhs: parseSyntax(operands[1], env)}

	case FormLet, FormLetrec:
		if len(operands) < 2 {
			raise(SyntaxError, "wrong number of arguments for %s", name)
		}
		bindList, ok := operands[0].(*List)
		if !ok {
			raise(SyntaxError, "%s bindings must be a list", name)
		}
		names := make([]string, len(bindList.Elems))
		rhsStxs := make([]Syntax, len(bindList.Elems))
		for i, bindStx := range bindList.Elems {
			pair, ok := bindStx.(*List)
			if !ok || len(pair.Elems) != 2 {
				raise(SyntaxError, "%s binding must be a (variable value) pair", name)
			}
			sym, ok := pair.Elems[0].(*SymbolSyntax)
			if !ok {
				raise(SyntaxError, "%s variable must be a symbol", name)
			}
			names[i] = sym.Name
			rhsStxs[i] = pair.Elems[1]
		}

		bindings := make([]Binding, len(names))
		if form == FormLet {
			// right-hand sides see only the outer scope
			for i := range names {
				bindings[i] = Binding{Name: names[i], Rhs: parseSyntax(rhsStxs[i], env)}
			}
			bodyEnv := extendParams(names, env)
			return &Let{Bindings: bindings, Body: parseBody("let", operands[1:], bodyEnv)}
		}
		// letrec: every name is visible to every right-hand side and the body
		recEnv := extendParams(names, env)
		for i := range names {
			bindings[i] = Binding{Name: names[i], Rhs: parseSyntax(rhsStxs[i], recEnv)}
		}
		return &Letrec{Bindings: bindings, Body: parseBody("letrec", operands[1:], recEnv)}

	case FormSet:
		if len(operands) != 2 {
			raise(SyntaxError, "wrong number of arguments for set!")
		}
		sym, ok := operands[0].(*SymbolSyntax)
		if !ok {
			raise(SyntaxError, "set! variable must be a symbol")
		}
		return &Set{Name: sym.Name, Rhs: parseSyntax(operands[1], env)}

	case FormBegin:
		return &Begin{Seq: parseArgs(operands, env)}

	case FormAnd:
		return &And{Rands: parseArgs(operands, env)}

	case FormOr:
		return &Or{Rands: parseArgs(operands, env)}

	default:
		raise(SyntaxError, "unknown reserved word %s", name)
		return nil
	}
}

func parseParamList(owner string, stx Syntax) []string {
	paramList, ok := stx.(*List)
	if !ok {
		raise(SyntaxError, "%s parameters must be a list", owner)
	}
	return parseParams(owner, paramList.Elems)
}

func parseParams(owner string, stxs []Syntax) []string {
	params := make([]string, len(stxs))
	for i, stx := range stxs {
		sym, ok := stx.(*SymbolSyntax)
		if !ok {
			raise(SyntaxError, "%s parameter must be a symbol", owner)
		}
		params[i] = sym.Name
	}
	return params
}

// extendParams pushes parse-time placeholder bindings so the names shadow
// keywords and primitives while the body is parsed.
func extendParams(names []string, env *Frame) *Frame {
	for _, name := range names {
		env = Extend(name, Void, env)
	}
	return env
}
