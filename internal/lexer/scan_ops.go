package lexer

import (
	"oneassert/internal/token"
)

// scanOperatorOrPunct scans operators and punctuation with longest match.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Offset()
	ch := lx.cursor.Peek()
	_, b1, have2 := lx.cursor.Peek2()

	emit := func(kind token.Kind, width uint32) token.Token {
		lx.cursor.AdvanceN(width)
		return token.Token{Kind: kind, Span: lx.cursor.SpanFrom(start), Text: lx.cursor.Text(start)}
	}

	// Three-byte operators first.
	if have2 {
		var b2 byte
		rest := lx.file.Content[lx.cursor.Offset():]
		if len(rest) >= 3 {
			b2 = rest[2]
			switch {
			case ch == '<' && b1 == '<' && b2 == '=':
				return emit(token.ShlAssign, 3)
			case ch == '>' && b1 == '>' && b2 == '=':
				return emit(token.ShrAssign, 3)
			case ch == '.' && b1 == '.' && b2 == '=':
				return emit(token.DotDotEq, 3)
			}
		}
	}

	if have2 {
		switch {
		case ch == '=' && b1 == '=':
			return emit(token.EqEq, 2)
		case ch == '=' && b1 == '>':
			return emit(token.FatArrow, 2)
		case ch == '!' && b1 == '=':
			return emit(token.BangEq, 2)
		case ch == '<' && b1 == '=':
			return emit(token.LtEq, 2)
		case ch == '>' && b1 == '=':
			return emit(token.GtEq, 2)
		case ch == '<' && b1 == '<':
			return emit(token.Shl, 2)
		case ch == '>' && b1 == '>':
			return emit(token.Shr, 2)
		case ch == '&' && b1 == '&':
			return emit(token.AndAnd, 2)
		case ch == '|' && b1 == '|':
			return emit(token.OrOr, 2)
		case ch == '&' && b1 == '=':
			return emit(token.AmpAssign, 2)
		case ch == '|' && b1 == '=':
			return emit(token.PipeAssign, 2)
		case ch == '^' && b1 == '=':
			return emit(token.CaretAssign, 2)
		case ch == '+' && b1 == '=':
			return emit(token.PlusAssign, 2)
		case ch == '-' && b1 == '=':
			return emit(token.MinusAssign, 2)
		case ch == '*' && b1 == '=':
			return emit(token.StarAssign, 2)
		case ch == '/' && b1 == '=':
			return emit(token.SlashAssign, 2)
		case ch == '%' && b1 == '=':
			return emit(token.PercentAssign, 2)
		case ch == ':' && b1 == ':':
			return emit(token.ColonColon, 2)
		case ch == '.' && b1 == '.':
			return emit(token.DotDot, 2)
		case ch == '-' && b1 == '>':
			return emit(token.Arrow, 2)
		}
	}

	switch ch {
	case '+':
		return emit(token.Plus, 1)
	case '-':
		return emit(token.Minus, 1)
	case '*':
		return emit(token.Star, 1)
	case '/':
		return emit(token.Slash, 1)
	case '%':
		return emit(token.Percent, 1)
	case '=':
		return emit(token.Assign, 1)
	case '!':
		return emit(token.Bang, 1)
	case '<':
		return emit(token.Lt, 1)
	case '>':
		return emit(token.Gt, 1)
	case '&':
		return emit(token.Amp, 1)
	case '|':
		return emit(token.Pipe, 1)
	case '^':
		return emit(token.Caret, 1)
	case '?':
		return emit(token.Question, 1)
	case ':':
		return emit(token.Colon, 1)
	case ';':
		return emit(token.Semicolon, 1)
	case ',':
		return emit(token.Comma, 1)
	case '.':
		return emit(token.Dot, 1)
	case '(':
		return emit(token.LParen, 1)
	case ')':
		return emit(token.RParen, 1)
	case '{':
		return emit(token.LBrace, 1)
	case '}':
		return emit(token.RBrace, 1)
	case '[':
		return emit(token.LBracket, 1)
	case ']':
		return emit(token.RBracket, 1)
	case '_':
		return emit(token.Underscore, 1)
	default:
		tok := emit(token.Invalid, 1)
		lx.report("unknown-char", tok.Span, "unknown character")
		return tok
	}
}
