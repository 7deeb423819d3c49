// syntax.go
//
// Syntax is the reader's output: a generic structured form of the source
// text, prior to any semantic interpretation. The parser turns Syntax into
// Expr; quote retains Syntax as-is and converts it to a Value lazily at
// evaluation time.
package scheme

type Syntax interface{ syntaxNode() }

// Number is an integer literal token.
type Number struct {
	N int64
}

// RationalSyntax is an exact fraction literal token (e.g. 3/4).
type RationalSyntax struct {
	Num int64
	Den int64
}

// SymbolSyntax is an identifier token.
type SymbolSyntax struct {
	Name string
}

// StringSyntax is a double-quoted string literal token.
type StringSyntax struct {
	Text string
}

// TrueSyntax and FalseSyntax are the #t / #f tokens.
type TrueSyntax struct{}
type FalseSyntax struct{}

// List is a parenthesized sequence. A symbol "." as the second-to-last
// element marks an improper (dotted) tail.
type List struct {
	Elems []Syntax
}

func (*Number) syntaxNode()         {}
func (*RationalSyntax) syntaxNode() {}
func (*SymbolSyntax) syntaxNode()   {}
func (*StringSyntax) syntaxNode()   {}
func (*TrueSyntax) syntaxNode()     {}
func (*FalseSyntax) syntaxNode()    {}
func (*List) syntaxNode()           {}
