// printer.go — value formatting for the REPL and display.
package scheme

import (
	"strconv"
	"strings"
)

// FormatValue renders a Value the way the REPL prints results: rationals as
// n/d, booleans as #t/#f, strings quoted with escapes, pairs in list
// notation with a dotted tail when improper. Note that printing follows the
// pair graph naively; a cyclic structure does not terminate, matching the
// recursive printer this interpreter inherits.
func FormatValue(v Value) string {
	switch v.Tag {
	case VTInt:
		return strconv.FormatInt(v.Data.(int64), 10)
	case VTRational:
		r := v.Data.(*Rational)
		return strconv.FormatInt(r.Num, 10) + "/" + strconv.FormatInt(r.Den, 10)
	case VTBool:
		if v.Data.(bool) {
			return "#t"
		}
		return "#f"
	case VTStr:
		return quoteString(v.Data.(*StrObject).S)
	case VTSym:
		return v.Data.(string)
	case VTNull:
		return "()"
	case VTVoid:
		return "#<void>"
	case VTPair:
		return formatPair(v.Data.(*PairObject))
	case VTProc:
		return "#<procedure>"
	case VTTerminate:
		return "#<terminate>"
	default:
		return "#<unknown>"
	}
}

func formatPair(p *PairObject) string {
	var b strings.Builder
	b.WriteByte('(')
	for {
		b.WriteString(FormatValue(p.Car))
		switch p.Cdr.Tag {
		case VTNull:
			b.WriteByte(')')
			return b.String()
		case VTPair:
			b.WriteByte(' ')
			p = p.Cdr.Data.(*PairObject)
		default:
			b.WriteString(" . ")
			b.WriteString(FormatValue(p.Cdr))
			b.WriteByte(')')
			return b.String()
		}
	}
}

func quoteString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}
