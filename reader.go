// reader.go
//
// The reader turns source text into Syntax trees. It understands integers,
// exact rationals (3/4), #t/#f, double-quoted strings with escapes, symbols,
// quote sugar ('x), dotted pairs and ; line comments. Token shapes that look
// numeric must parse as numbers; a token such as 1abc is a read error, never
// a symbol.
package scheme

import (
	"io"
	"strconv"
	"strings"
)

// Reader scans one source string and yields successive top-level forms.
type Reader struct {
	src string
	pos int
}

func NewReader(src string) *Reader { return &Reader{src: src} }

// Read returns the next form, or io.EOF when the input is exhausted. Errors
// are *Error with the SyntaxError kind; IsIncomplete distinguishes the ones
// more input could fix.
func (r *Reader) Read() (stx Syntax, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			e, ok := rec.(*Error)
			if !ok {
				panic(rec)
			}
			stx, err = nil, e
		}
	}()
	r.skipSpace()
	if r.pos >= len(r.src) {
		return nil, io.EOF
	}
	return r.readForm(), nil
}

// ReadAll reads every form in src.
func ReadAll(src string) ([]Syntax, error) {
	r := NewReader(src)
	var out []Syntax
	for {
		stx, err := r.Read()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		out = append(out, stx)
	}
}

func (r *Reader) skipSpace() {
	for r.pos < len(r.src) {
		c := r.src[r.pos]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			r.pos++
		case c == ';':
			for r.pos < len(r.src) && r.src[r.pos] != '\n' {
				r.pos++
			}
		default:
			return
		}
	}
}

func (r *Reader) readForm() Syntax {
	r.skipSpace()
	if r.pos >= len(r.src) {
		panic(&Error{Kind: SyntaxError, Msg: "unexpected end of input", incomplete: true})
	}
	switch c := r.src[r.pos]; c {
	case '(':
		r.pos++
		return r.readList()
	case ')':
		raise(SyntaxError, "unexpected )")
		return nil
	case '\'':
		r.pos++
		quoted := r.readForm()
		return &List{Elems: []Syntax{&SymbolSyntax{Name: "quote"}, quoted}}
	case '"':
		r.pos++
		return r.readString()
	default:
		return r.readAtom()
	}
}

func (r *Reader) readList() Syntax {
	elems := []Syntax{}
	for {
		r.skipSpace()
		if r.pos >= len(r.src) {
			panic(&Error{Kind: SyntaxError, Msg: "unexpected end of input in list", incomplete: true})
		}
		if r.src[r.pos] == ')' {
			r.pos++
			return &List{Elems: elems}
		}
		elems = append(elems, r.readForm())
	}
}

func (r *Reader) readString() Syntax {
	var b strings.Builder
	for {
		if r.pos >= len(r.src) {
			panic(&Error{Kind: SyntaxError, Msg: "unterminated string", incomplete: true})
		}
		c := r.src[r.pos]
		r.pos++
		switch c {
		case '"':
			return &StringSyntax{Text: b.String()}
		case '\\':
			if r.pos >= len(r.src) {
				panic(&Error{Kind: SyntaxError, Msg: "unterminated string", incomplete: true})
			}
			esc := r.src[r.pos]
			r.pos++
			switch esc {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case '\\', '"':
				b.WriteByte(esc)
			default:
				raise(SyntaxError, "unknown escape \\%c in string", esc)
			}
		default:
			b.WriteByte(c)
		}
	}
}

func isDelimiter(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '(', ')', '"', '\'', ';':
		return true
	}
	return false
}

func (r *Reader) readAtom() Syntax {
	start := r.pos
	for r.pos < len(r.src) && !isDelimiter(r.src[r.pos]) {
		r.pos++
	}
	tok := r.src[start:r.pos]

	switch tok {
	case "#t":
		return &TrueSyntax{}
	case "#f":
		return &FalseSyntax{}
	case ".":
		// dotted-pair marker; only meaningful inside a list
		return &SymbolSyntax{Name: "."}
	}

	if n, ok := parseIntToken(tok); ok {
		return &Number{N: n}
	}
	if num, den, ok := parseRationalToken(tok); ok {
		return &RationalSyntax{Num: num, Den: den}
	}
	if looksNumeric(tok) {
		raise(SyntaxError, "malformed number %q", tok)
	}
	if !isValidSymbol(tok) {
		raise(SyntaxError, "invalid symbol %q", tok)
	}
	return &SymbolSyntax{Name: tok}
}

func parseIntToken(tok string) (int64, bool) {
	if tok == "" || tok == "+" || tok == "-" {
		return 0, false
	}
	n, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func parseRationalToken(tok string) (num, den int64, ok bool) {
	slash := strings.IndexByte(tok, '/')
	if slash <= 0 || slash == len(tok)-1 {
		return 0, 0, false
	}
	num, err := strconv.ParseInt(tok[:slash], 10, 64)
	if err != nil {
		return 0, 0, false
	}
	den, err = strconv.ParseInt(tok[slash+1:], 10, 64)
	if err != nil || den < 0 {
		return 0, 0, false
	}
	return num, den, true
}

// looksNumeric reports whether tok starts the way a number would, so a
// failed numeric parse is an error rather than a symbol.
func looksNumeric(tok string) bool {
	if tok == "" {
		return false
	}
	c := tok[0]
	if c >= '0' && c <= '9' {
		return true
	}
	if (c == '+' || c == '-') && len(tok) > 1 {
		d := tok[1]
		return d >= '0' && d <= '9'
	}
	return false
}

// isValidSymbol enforces the variable-name invariants: the first character
// must not be a digit, '.' or '@', and the name must not contain '#', quote,
// double quote or backtick anywhere.
func isValidSymbol(s string) bool {
	if s == "" {
		return false
	}
	c := s[0]
	if (c >= '0' && c <= '9') || c == '.' || c == '@' {
		return false
	}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '#', '\'', '"', '`':
			return false
		}
	}
	return true
}
