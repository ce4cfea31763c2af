package lexer

import (
	"unicode"
	"unicode/utf8"

	"oneassert/internal/token"
)

func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Offset()

	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if isIdentContinueByte(b) {
			lx.cursor.Advance()
			continue
		}
		if b >= utf8RuneSelf {
			r, size := utf8.DecodeRune(lx.file.Content[lx.cursor.Offset():])
			if r == utf8.RuneError || !(unicode.IsLetter(r) || unicode.IsDigit(r)) {
				break
			}
			lx.cursor.AdvanceN(uint32(size)) //nolint:gosec // rune sizes are 1..4
			continue
		}
		break
	}

	text := lx.cursor.Text(start)
	span := lx.cursor.SpanFrom(start)

	if kw, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: kw, Span: span, Text: text}
	}
	return token.Token{Kind: token.Ident, Span: span, Text: text}
}
