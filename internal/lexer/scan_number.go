package lexer

import (
	"oneassert/internal/token"
)

func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Offset()
	kind := token.IntLit

	// Radix prefixes: 0x, 0o, 0b.
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '0' && (b1 == 'x' || b1 == 'o' || b1 == 'b') {
		lx.cursor.AdvanceN(2)
		digits := 0
		for !lx.cursor.EOF() && (isRadixDigit(lx.cursor.Peek(), b1) || lx.cursor.Peek() == '_') {
			if lx.cursor.Peek() != '_' {
				digits++
			}
			lx.cursor.Advance()
		}
		span := lx.cursor.SpanFrom(start)
		if digits == 0 {
			lx.report("bad-number", span, "radix prefix without digits")
			return token.Token{Kind: token.Invalid, Span: span, Text: lx.cursor.Text(start)}
		}
		return token.Token{Kind: kind, Span: span, Text: lx.cursor.Text(start)}
	}

	lx.scanDecimalDigits()

	// Fractional part. A lone '.' may also start a range or a method call
	// on an integer; only consume when a digit follows.
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && isDec(b1) {
		kind = token.FloatLit
		lx.cursor.Advance()
		lx.scanDecimalDigits()
	}

	// Exponent.
	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		save := lx.cursor
		lx.cursor.Advance()
		if s := lx.cursor.Peek(); s == '+' || s == '-' {
			lx.cursor.Advance()
		}
		if isDec(lx.cursor.Peek()) {
			kind = token.FloatLit
			lx.scanDecimalDigits()
		} else {
			lx.cursor = save // "e" belongs to a following identifier
		}
	}

	return token.Token{Kind: kind, Span: lx.cursor.SpanFrom(start), Text: lx.cursor.Text(start)}
}

func (lx *Lexer) scanDecimalDigits() {
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if isDec(b) || b == '_' {
			lx.cursor.Advance()
			continue
		}
		break
	}
}

func isRadixDigit(b, radix byte) bool {
	switch radix {
	case 'x':
		return isDec(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
	case 'o':
		return b >= '0' && b <= '7'
	case 'b':
		return b == '0' || b == '1'
	default:
		return false
	}
}
