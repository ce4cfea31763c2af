package lexer

import (
	"oneassert/internal/token"
)

func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Offset()
	lx.cursor.Advance() // opening quote

	for {
		if lx.cursor.EOF() || lx.cursor.Peek() == '\n' {
			span := lx.cursor.SpanFrom(start)
			lx.report("unterminated-string", span, "unterminated string literal")
			return token.Token{Kind: token.Invalid, Span: span, Text: lx.cursor.Text(start)}
		}
		switch lx.cursor.Peek() {
		case '\\':
			lx.cursor.AdvanceN(2)
		case '"':
			lx.cursor.Advance()
			return token.Token{Kind: token.StringLit, Span: lx.cursor.SpanFrom(start), Text: lx.cursor.Text(start)}
		default:
			lx.cursor.Advance()
		}
	}
}

func (lx *Lexer) scanChar() token.Token {
	start := lx.cursor.Offset()
	lx.cursor.Advance() // opening quote

	for {
		if lx.cursor.EOF() || lx.cursor.Peek() == '\n' {
			span := lx.cursor.SpanFrom(start)
			lx.report("unterminated-char", span, "unterminated character literal")
			return token.Token{Kind: token.Invalid, Span: span, Text: lx.cursor.Text(start)}
		}
		switch lx.cursor.Peek() {
		case '\\':
			lx.cursor.AdvanceN(2)
		case '\'':
			lx.cursor.Advance()
			return token.Token{Kind: token.CharLit, Span: lx.cursor.SpanFrom(start), Text: lx.cursor.Text(start)}
		default:
			lx.cursor.Advance()
		}
	}
}
