package parser

import (
	"oneassert/internal/ast"
	"oneassert/internal/diag"
	"oneassert/internal/source"
	"oneassert/internal/token"
)

// parseExpr is the precedence-climbing loop over infix operators.
func (p *Parser) parseExpr(minPrec int) (ast.ExprID, bool) {
	left, ok := p.parseUnary()
	if !ok {
		return ast.NoExprID, false
	}

	for {
		kind := p.lx.Peek().Kind
		prec, rightAssoc := p.getBinaryOperatorPrec(kind)
		if prec < 0 || prec < minPrec {
			return left, true
		}
		opTok := p.advance()

		if isAssignToken(kind) {
			right, rok := p.parseExpr(prec)
			if !rok {
				return ast.NoExprID, false
			}
			span := p.exprSpan(left).Cover(p.exprSpan(right))
			left = p.arenas.Exprs.NewAssign(span, p.tokenKindToAssignOp(kind), left, right)
			continue
		}

		if kind == token.DotDot || kind == token.DotDotEq {
			end := ast.NoExprID
			if p.canStartExpr() {
				var eok bool
				end, eok = p.parseExpr(prec + 1)
				if !eok {
					return ast.NoExprID, false
				}
			}
			span := p.exprSpan(left).Cover(opTok.Span)
			if end.IsValid() {
				span = span.Cover(p.exprSpan(end))
			}
			left = p.arenas.Exprs.NewRange(span, left, end, kind == token.DotDotEq)
			continue
		}

		nextMin := prec + 1
		if rightAssoc {
			nextMin = prec
		}
		right, rok := p.parseExpr(nextMin)
		if !rok {
			return ast.NoExprID, false
		}
		span := p.exprSpan(left).Cover(p.exprSpan(right))
		left = p.arenas.Exprs.NewBinary(span, p.tokenKindToBinaryOp(kind), opTok.Span, left, right)
	}
}

// parseUnary handles prefix operators before delegating to the postfix chain.
func (p *Parser) parseUnary() (ast.ExprID, bool) {
	kind := p.lx.Peek().Kind

	if op, ok := p.getUnaryOperator(kind); ok {
		opTok := p.advance()
		operand, ook := p.parseUnary()
		if !ook {
			return ast.NoExprID, false
		}
		span := opTok.Span.Cover(p.exprSpan(operand))
		return p.arenas.Exprs.NewUnary(span, op, operand), true
	}

	switch kind {
	case token.Amp, token.AndAnd:
		opTok := p.advance()
		mutable := false
		if p.at(token.KwMut) {
			p.advance()
			mutable = true
		}
		operand, ook := p.parseUnary()
		if !ook {
			return ast.NoExprID, false
		}
		span := opTok.Span.Cover(p.exprSpan(operand))
		inner := p.arenas.Exprs.NewReference(span, mutable, operand)
		if kind == token.AndAnd {
			// && in prefix position is a reference to a reference.
			inner = p.arenas.Exprs.NewReference(span, false, inner)
		}
		return inner, true

	case token.DotDot, token.DotDotEq:
		opTok := p.advance()
		end := ast.NoExprID
		span := opTok.Span
		if p.canStartExpr() {
			var eok bool
			end, eok = p.parseExpr(precRange + 1)
			if !eok {
				return ast.NoExprID, false
			}
			span = span.Cover(p.exprSpan(end))
		}
		return p.arenas.Exprs.NewRange(span, ast.NoExprID, end, kind == token.DotDotEq), true
	}

	return p.parsePostfixChain()
}

// canStartExpr reports whether the next token can begin an expression.
// Used where an operand is optional, after `..` and `return`.
func (p *Parser) canStartExpr() bool {
	switch p.lx.Peek().Kind {
	case token.Ident, token.Underscore,
		token.IntLit, token.FloatLit, token.StringLit, token.CharLit,
		token.KwTrue, token.KwFalse,
		token.LParen, token.LBracket, token.LBrace,
		token.Bang, token.Minus, token.Star, token.Amp, token.AndAnd,
		token.Pipe, token.OrOr, token.KwMove,
		token.KwIf, token.KwMatch, token.KwUnsafe, token.KwConst, token.KwAsync,
		token.KwLoop, token.KwWhile, token.KwFor,
		token.KwReturn, token.KwBreak, token.KwContinue, token.KwLet:
		return true
	default:
		return false
	}
}

func (p *Parser) exprSpan(id ast.ExprID) source.Span {
	return p.arenas.Exprs.Get(id).Span
}

// parsePrimary recognizes the leading token of an operand.
func (p *Parser) parsePrimary() (ast.ExprID, bool) {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.Ident, token.Underscore:
		return p.parsePathOrStruct()

	case token.IntLit:
		p.advance()
		return p.arenas.Exprs.NewLiteral(tok.Span, ast.ExprLitInt, p.intern(tok.Text)), true
	case token.FloatLit:
		p.advance()
		return p.arenas.Exprs.NewLiteral(tok.Span, ast.ExprLitFloat, p.intern(tok.Text)), true
	case token.StringLit:
		p.advance()
		return p.arenas.Exprs.NewLiteral(tok.Span, ast.ExprLitString, p.intern(tok.Text)), true
	case token.CharLit:
		p.advance()
		return p.arenas.Exprs.NewLiteral(tok.Span, ast.ExprLitChar, p.intern(tok.Text)), true
	case token.KwTrue, token.KwFalse:
		p.advance()
		return p.arenas.Exprs.NewLiteral(tok.Span, ast.ExprLitBool, p.intern(tok.Text)), true

	case token.LParen:
		return p.parseParenOrTuple()
	case token.LBracket:
		return p.parseArrayOrRepeat()
	case token.LBrace:
		return p.parseBlock()

	case token.KwIf:
		return p.parseIf()
	case token.KwMatch:
		return p.parseMatch()
	case token.KwUnsafe:
		return p.parseUnsafe()
	case token.KwConst:
		return p.parseConstBlock()
	case token.KwAsync:
		return p.parseAsyncBlock()
	case token.KwLoop:
		return p.parseLoop()
	case token.KwWhile:
		return p.parseWhile()
	case token.KwFor:
		return p.parseFor()

	case token.KwReturn:
		p.advance()
		value := ast.NoExprID
		span := tok.Span
		if p.canStartExpr() {
			var ok bool
			value, ok = p.parseExpr(0)
			if !ok {
				return ast.NoExprID, false
			}
			span = span.Cover(p.exprSpan(value))
		}
		return p.arenas.Exprs.NewReturn(span, value), true

	case token.KwBreak:
		p.advance()
		value := ast.NoExprID
		span := tok.Span
		if p.canStartExpr() {
			var ok bool
			value, ok = p.parseExpr(0)
			if !ok {
				return ast.NoExprID, false
			}
			span = span.Cover(p.exprSpan(value))
		}
		return p.arenas.Exprs.NewBreak(span, value), true

	case token.KwContinue:
		p.advance()
		return p.arenas.Exprs.NewContinue(tok.Span), true

	case token.KwLet:
		return p.parseLetExpr()

	case token.KwMove, token.Pipe, token.OrOr:
		return p.parseClosure()

	default:
		p.err(diag.SynExpectExpression, "expected an expression, got \""+tok.Text+"\"")
		return ast.NoExprID, false
	}
}

// parsePathOrStruct parses an identifier path and, when permitted in this
// position, a struct literal body after it.
func (p *Parser) parsePathOrStruct() (ast.ExprID, bool) {
	first := p.advance()
	span := first.Span
	segments := []source.StringID{p.intern(first.Text)}

	for p.at(token.ColonColon) {
		p.advance()
		seg, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected identifier after ::")
		if !ok {
			return ast.NoExprID, false
		}
		segments = append(segments, p.intern(seg.Text))
		span = span.Cover(seg.Span)
	}

	if p.at(token.LBrace) && !p.noStructLit {
		open := p.advance()
		if !p.skipBalanced(token.LBrace) {
			p.err(diag.SynUnclosedBrace, "unclosed struct literal")
			return ast.NoExprID, false
		}
		bodySpan := open.Span.Cover(p.lastSpan)
		return p.arenas.Exprs.NewStruct(span.Cover(bodySpan), span, bodySpan), true
	}

	if len(segments) == 1 {
		return p.arenas.Exprs.NewIdent(span, segments[0]), true
	}
	return p.arenas.Exprs.NewPath(span, segments), true
}

func (p *Parser) parseParenOrTuple() (ast.ExprID, bool) {
	open := p.advance()

	saved := p.noStructLit
	p.noStructLit = false
	defer func() { p.noStructLit = saved }()

	if p.at(token.RParen) {
		closing := p.advance()
		return p.arenas.Exprs.NewTuple(open.Span.Cover(closing.Span), nil), true
	}

	first, ok := p.parseExpr(0)
	if !ok {
		return ast.NoExprID, false
	}

	if p.at(token.Comma) {
		elems := []ast.ExprID{first}
		for p.at(token.Comma) {
			p.advance()
			if p.at(token.RParen) {
				break
			}
			elem, eok := p.parseExpr(0)
			if !eok {
				return ast.NoExprID, false
			}
			elems = append(elems, elem)
		}
		closing, cok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ) to close tuple")
		if !cok {
			return ast.NoExprID, false
		}
		return p.arenas.Exprs.NewTuple(open.Span.Cover(closing.Span), elems), true
	}

	closing, cok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ) to close expression")
	if !cok {
		return ast.NoExprID, false
	}
	return p.arenas.Exprs.NewParen(open.Span.Cover(closing.Span), first), true
}

func (p *Parser) parseArrayOrRepeat() (ast.ExprID, bool) {
	open := p.advance()

	saved := p.noStructLit
	p.noStructLit = false
	defer func() { p.noStructLit = saved }()

	if p.at(token.RBracket) {
		closing := p.advance()
		return p.arenas.Exprs.NewArray(open.Span.Cover(closing.Span), nil), true
	}

	first, ok := p.parseExpr(0)
	if !ok {
		return ast.NoExprID, false
	}

	if p.at(token.Semicolon) {
		p.advance()
		length, lok := p.parseExpr(0)
		if !lok {
			return ast.NoExprID, false
		}
		closing, cok := p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ] to close array repeat")
		if !cok {
			return ast.NoExprID, false
		}
		return p.arenas.Exprs.NewRepeat(open.Span.Cover(closing.Span), first, length), true
	}

	elems := []ast.ExprID{first}
	for p.at(token.Comma) {
		p.advance()
		if p.at(token.RBracket) {
			break
		}
		elem, eok := p.parseExpr(0)
		if !eok {
			return ast.NoExprID, false
		}
		elems = append(elems, elem)
	}
	closing, cok := p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ] to close array")
	if !cok {
		return ast.NoExprID, false
	}
	return p.arenas.Exprs.NewArray(open.Span.Cover(closing.Span), elems), true
}

// parseLetExpr parses `let <pattern> = <expr>` in condition position.
func (p *Parser) parseLetExpr() (ast.ExprID, bool) {
	letTok := p.advance()
	patSpan, ok := p.spanUntilTop(token.Assign)
	if !ok {
		p.err(diag.SynUnexpectedToken, "expected = after let pattern")
		return ast.NoExprID, false
	}
	p.advance() // =
	value, vok := p.parseExpr(precLogicalAnd + 1)
	if !vok {
		return ast.NoExprID, false
	}
	span := letTok.Span.Cover(p.exprSpan(value))
	return p.arenas.Exprs.NewLet(span, patSpan, value), true
}

// parseClosure parses `move? |params| body` or `move? || body`.
func (p *Parser) parseClosure() (ast.ExprID, bool) {
	start := p.lx.Peek().Span
	if p.at(token.KwMove) {
		p.advance()
	}

	var paramsSpan source.Span
	switch p.lx.Peek().Kind {
	case token.OrOr:
		pipes := p.advance()
		paramsSpan = start.Cover(pipes.Span)
	case token.Pipe:
		p.advance()
		for !p.at(token.Pipe) {
			if p.at(token.EOF) {
				p.err(diag.SynUnexpectedToken, "unclosed closure parameter list")
				return ast.NoExprID, false
			}
			p.advance()
		}
		closing := p.advance()
		paramsSpan = start.Cover(closing.Span)
	default:
		p.err(diag.SynUnexpectedToken, "expected | to start closure parameters")
		return ast.NoExprID, false
	}

	body, ok := p.parseExpr(0)
	if !ok {
		return ast.NoExprID, false
	}
	return p.arenas.Exprs.NewClosure(start.Cover(p.exprSpan(body)), paramsSpan, body), true
}

// spanUntilTop consumes tokens until one of the stop kinds appears outside
// any nested delimiters, leaving the stop token unconsumed. Returns the
// covered span, or false at EOF.
func (p *Parser) spanUntilTop(stops ...token.Kind) (source.Span, bool) {
	start := p.lx.Peek().Span
	consumed := false
	for {
		tok := p.lx.Peek()
		if tok.Kind == token.EOF {
			return source.Span{}, false
		}
		if p.atOr(stops...) {
			if !consumed {
				return source.Span{File: start.File, Start: start.Start, End: start.Start}, true
			}
			return start.Cover(p.lastSpan), true
		}
		switch tok.Kind {
		case token.LParen, token.LBrace, token.LBracket:
			p.advance()
			if !p.skipBalanced(tok.Kind) {
				return source.Span{}, false
			}
		default:
			p.advance()
		}
		consumed = true
	}
}
