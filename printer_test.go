package scheme

import "testing"

func wantFormat(t *testing.T, src, want string) {
	t.Helper()
	if got := FormatValue(evalSrc(t, src)); got != want {
		t.Fatalf("format of %q: want %q, got %q", src, want, got)
	}
}

func Test_Format_Atoms(t *testing.T) {
	wantFormat(t, "42", "42")
	wantFormat(t, "-7", "-7")
	wantFormat(t, "(/ 1 2)", "1/2")
	wantFormat(t, "(/ -1 2)", "-1/2")
	wantFormat(t, "#t", "#t")
	wantFormat(t, "#f", "#f")
	wantFormat(t, "'sym", "sym")
	wantFormat(t, "'()", "()")
	wantFormat(t, "(void)", "#<void>")
	wantFormat(t, "(lambda (x) x)", "#<procedure>")
}

func Test_Format_Strings_Requote_Escapes(t *testing.T) {
	wantFormat(t, `"plain"`, `"plain"`)
	wantFormat(t, `"a\nb"`, `"a\nb"`)
	wantFormat(t, `"tab\there"`, `"tab\there"`)
	wantFormat(t, `"q\"q"`, `"q\"q"`)
	wantFormat(t, `"b\\s"`, `"b\\s"`)
}

func Test_Format_Lists(t *testing.T) {
	wantFormat(t, "'(1 2 3)", "(1 2 3)")
	wantFormat(t, "(list 1 (list 2 3) '())", "(1 (2 3) ())")
	wantFormat(t, "(cons 1 2)", "(1 . 2)")
	wantFormat(t, "'(1 2 . 3)", "(1 2 . 3)")
	wantFormat(t, "(cons (cons 1 2) 3)", "((1 . 2) . 3)")
	wantFormat(t, "(cons 1/2 '(#t \"s\"))", `(1/2 #t "s")`)
}
