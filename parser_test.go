package scheme

import (
	"errors"
	"testing"
)

func parseSrc(t *testing.T, src string) Expr {
	t.Helper()
	ip := NewInterpreter()
	return parseSrcIn(t, ip, src)
}

func parseSrcIn(t *testing.T, ip *Interpreter, src string) Expr {
	t.Helper()
	stx, err := NewReader(src).Read()
	if err != nil {
		t.Fatalf("Read(%q) error: %v", src, err)
	}
	expr, err := ip.Parse(stx)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", src, err)
	}
	return expr
}

func wantParseErr(t *testing.T, src string) {
	t.Helper()
	stx, err := NewReader(src).Read()
	if err != nil {
		t.Fatalf("Read(%q) error: %v", src, err)
	}
	_, err = NewInterpreter().Parse(stx)
	if err == nil {
		t.Fatalf("expected parse error for %q", src)
	}
	var e *Error
	if !errors.As(err, &e) || e.Kind != SyntaxError {
		t.Fatalf("Parse(%q): want SyntaxError, got %v", src, err)
	}
}

func Test_Parse_Literals(t *testing.T) {
	if n, ok := parseSrc(t, "42").(*Fixnum); !ok || n.N != 42 {
		t.Fatalf("42 did not parse to a fixnum")
	}
	if r, ok := parseSrc(t, "3/4").(*RationalLit); !ok || r.Num != 3 || r.Den != 4 {
		t.Fatalf("3/4 did not parse to a rational literal")
	}
	if s, ok := parseSrc(t, `"hi"`).(*StringLit); !ok || s.S != "hi" {
		t.Fatalf(`"hi" did not parse to a string literal`)
	}
	if b, ok := parseSrc(t, "#f").(*BoolLit); !ok || b.B {
		t.Fatalf("#f did not parse to a false literal")
	}
	if v, ok := parseSrc(t, "x").(*Var); !ok || v.Name != "x" {
		t.Fatalf("x did not parse to a variable reference")
	}
}

func Test_Parse_Arithmetic_Is_Always_Variadic(t *testing.T) {
	for _, src := range []string{"(+)", "(+ 1 2)", "(+ 1 2 3)", "(- 1 2)", "(* 1 2)", "(/ 1 2)"} {
		if _, ok := parseSrc(t, src).(*Variadic); !ok {
			t.Fatalf("%q should parse to a variadic node, got %T", src, parseSrc(t, src))
		}
	}
}

func Test_Parse_Comparison_Splits_Binary_Vs_Variadic(t *testing.T) {
	if _, ok := parseSrc(t, "(< 1 2)").(*Binary); !ok {
		t.Fatalf("two-operand comparison should be a binary node")
	}
	if _, ok := parseSrc(t, "(< 1 2 3)").(*Variadic); !ok {
		t.Fatalf("three-operand comparison should be a variadic node")
	}
	if _, ok := parseSrc(t, "(< 1)").(*Variadic); !ok {
		t.Fatalf("one-operand comparison should be a variadic node")
	}
}

func Test_Parse_Fixed_Arity_Primitives(t *testing.T) {
	if u, ok := parseSrc(t, "(car x)").(*Unary); !ok || u.Op != OpCar {
		t.Fatalf("(car x) should be a unary car node")
	}
	if b, ok := parseSrc(t, "(cons 1 2)").(*Binary); !ok || b.Op != OpCons {
		t.Fatalf("(cons 1 2) should be a binary cons node")
	}
	wantParseErr(t, "(car)")
	wantParseErr(t, "(car x y)")
	wantParseErr(t, "(cons 1)")
	wantParseErr(t, "(set-car! p)")
	wantParseErr(t, "(void 1)")
	wantParseErr(t, "(exit 0)")
}

func Test_Parse_Unknown_Head_Becomes_Application(t *testing.T) {
	app, ok := parseSrc(t, "(frob 1 2)").(*Apply)
	if !ok {
		t.Fatalf("unknown head should parse to an application")
	}
	rator, ok := app.Rator.(*Var)
	if !ok || rator.Name != "frob" {
		t.Fatalf("operator should be the variable frob, got %#v", app.Rator)
	}
	if len(app.Rands) != 2 {
		t.Fatalf("want 2 operands, got %d", len(app.Rands))
	}
}

func Test_Parse_Expression_In_Operator_Position(t *testing.T) {
	app, ok := parseSrc(t, "((lambda (x) x) 1)").(*Apply)
	if !ok {
		t.Fatalf("want an application node")
	}
	if _, ok := app.Rator.(*Lambda); !ok {
		t.Fatalf("operator should be a lambda, got %T", app.Rator)
	}
}

func Test_Parse_Global_Binding_Shadows_Primitive(t *testing.T) {
	ip := NewInterpreter()
	if _, err := ip.EvalSource("(define car 'mine)"); err == nil {
		t.Fatalf("primitive names must not be redefinable at the top level")
	}
	if _, err := ip.EvalSource("(define mylist 1)"); err != nil {
		t.Fatalf("define: %v", err)
	}
	if _, ok := parseSrcIn(t, ip, "(mylist 2)").(*Apply); !ok {
		t.Fatalf("globally bound head should parse to an application")
	}
}

func Test_Parse_Parameter_Shadows_Keyword(t *testing.T) {
	lam, ok := parseSrc(t, "(lambda (if) (if 1 2))").(*Lambda)
	if !ok {
		t.Fatalf("want a lambda node")
	}
	if _, ok := lam.Body.(*Apply); !ok {
		t.Fatalf("shadowed if should parse as an application, got %T", lam.Body)
	}
	// without the shadow the same body is a special form
	lam, _ = parseSrc(t, "(lambda (x) (if 1 2))").(*Lambda)
	if _, ok := lam.Body.(*If); !ok {
		t.Fatalf("unshadowed if should parse as a conditional, got %T", lam.Body)
	}
}

func Test_Parse_Let_Binding_Shadows_For_Body_Only(t *testing.T) {
	let, ok := parseSrc(t, "(let ((car 1)) (car 2))").(*Let)
	if !ok {
		t.Fatalf("want a let node")
	}
	if _, ok := let.Body.(*Apply); !ok {
		t.Fatalf("let-bound car should parse as an application in the body, got %T", let.Body)
	}
	// a sibling right-hand side is not shadowed
	let, _ = parseSrc(t, "(let ((car 1) (y (car p))) y)").(*Let)
	if _, ok := let.Bindings[1].Rhs.(*Unary); !ok {
		t.Fatalf("let right-hand side should see the primitive, got %T", let.Bindings[1].Rhs)
	}
}

func Test_Parse_Letrec_Names_Visible_In_Rhs(t *testing.T) {
	rec, ok := parseSrc(t, "(letrec ((loop (lambda () (loop)))) (loop))").(*Letrec)
	if !ok {
		t.Fatalf("want a letrec node")
	}
	lam := rec.Bindings[0].Rhs.(*Lambda)
	if _, ok := lam.Body.(*Apply); !ok {
		t.Fatalf("recursive reference should be an application, got %T", lam.Body)
	}
}

func Test_Parse_Quote_Keeps_Datum_Unparsed(t *testing.T) {
	q, ok := parseSrc(t, "'(if 1 2)").(*Quote)
	if !ok {
		t.Fatalf("want a quote node")
	}
	if _, ok := q.Datum.(*List); !ok {
		t.Fatalf("quoted datum should stay a syntax list, got %T", q.Datum)
	}
}

func Test_Parse_Define_Function_Sugar(t *testing.T) {
	def, ok := parseSrc(t, "(define (f x y) (+ x y))").(*Define)
	if !ok || def.Name != "f" {
		t.Fatalf("want a define of f, got %#v", parseSrc(t, "(define (f x y) (+ x y))"))
	}
	lam, ok := def.Rhs.(*Lambda)
	if !ok || len(lam.Params) != 2 {
		t.Fatalf("sugar should desugar to a two-parameter lambda")
	}
}

func Test_Parse_Multi_Expression_Body_Wraps_In_Begin(t *testing.T) {
	lam := parseSrc(t, "(lambda (x) (display x) x)").(*Lambda)
	if _, ok := lam.Body.(*Begin); !ok {
		t.Fatalf("multi-expression body should wrap in begin, got %T", lam.Body)
	}
	lam = parseSrc(t, "(lambda (x) x)").(*Lambda)
	if _, ok := lam.Body.(*Begin); ok {
		t.Fatalf("single-expression body should not wrap in begin")
	}
}

func Test_Parse_Cond_Else_And_Test_Only_Clauses(t *testing.T) {
	cond := parseSrc(t, "(cond (#f 1) (2) (else 3))").(*Cond)
	if len(cond.Clauses) != 3 {
		t.Fatalf("want 3 clauses, got %d", len(cond.Clauses))
	}
	if cond.Clauses[1].Test == nil || len(cond.Clauses[1].Body) != 0 {
		t.Fatalf("test-only clause parsed wrong")
	}
	if cond.Clauses[2].Test != nil {
		t.Fatalf("else clause should have a nil test")
	}
}

func Test_Parse_Form_Shape_Errors(t *testing.T) {
	for _, src := range []string{
		"(quote)",
		"(quote a b)",
		"(if 1)",
		"(if 1 2 3 4)",
		"(lambda (x))",
		"(lambda x 1)",
		"(lambda (1) x)",
		"(define x)",
		"(define 1 2)",
		"(define x 1 2)",
		"(define ())",
		"(let ((x)) x)",
		"(let ((x 1)))",
		"(let (x 1) x)",
		"(letrec ((1 2)) 3)",
		"(set! 1 2)",
		"(set! x)",
		"(cond ())",
		"(cond (else))",
	} {
		wantParseErr(t, src)
	}
}
