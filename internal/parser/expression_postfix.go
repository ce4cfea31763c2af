package parser

import (
	"oneassert/internal/ast"
	"oneassert/internal/diag"
	"oneassert/internal/source"
	"oneassert/internal/token"
)

// parsePostfixChain parses a primary expression followed by any number of
// postfix forms: calls, method calls, field access, indexing, ?, .await,
// `as` casts, and macro invocations on paths.
func (p *Parser) parsePostfixChain() (ast.ExprID, bool) {
	expr, ok := p.parsePrimary()
	if !ok {
		return ast.NoExprID, false
	}

	for {
		switch p.lx.Peek().Kind {
		case token.Dot:
			expr, ok = p.parseDotSuffix(expr)
		case token.LParen:
			expr, ok = p.parseCallArgs(expr)
		case token.LBracket:
			expr, ok = p.parseIndexSuffix(expr)
		case token.Question:
			tok := p.advance()
			expr = p.arenas.Exprs.NewTry(p.exprSpan(expr).Cover(tok.Span), expr)
		case token.KwAs:
			expr, ok = p.parseCastSuffix(expr)
		case token.Bang:
			if !p.isMacroCallStart(expr) {
				return expr, true
			}
			expr, ok = p.parseMacroCallSuffix(expr)
		default:
			return expr, true
		}
		if !ok {
			return ast.NoExprID, false
		}
	}
}

func (p *Parser) parseDotSuffix(target ast.ExprID) (ast.ExprID, bool) {
	p.advance() // .

	tok := p.lx.Peek()
	switch tok.Kind {
	case token.KwAwait:
		p.advance()
		return p.arenas.Exprs.NewAwait(p.exprSpan(target).Cover(tok.Span), target), true

	case token.IntLit:
		p.advance()
		span := p.exprSpan(target).Cover(tok.Span)
		return p.arenas.Exprs.NewField(span, target, p.intern(tok.Text)), true

	case token.Ident:
		p.advance()
		if p.at(token.LParen) {
			args, argsEnd, ok := p.parseArgList()
			if !ok {
				return ast.NoExprID, false
			}
			span := p.exprSpan(target).Cover(argsEnd)
			return p.arenas.Exprs.NewMethodCall(span, target, p.intern(tok.Text), tok.Span, args), true
		}
		span := p.exprSpan(target).Cover(tok.Span)
		return p.arenas.Exprs.NewField(span, target, p.intern(tok.Text)), true

	default:
		p.err(diag.SynExpectIdentifier, "expected field or method name after .")
		return ast.NoExprID, false
	}
}

func (p *Parser) parseCallArgs(callee ast.ExprID) (ast.ExprID, bool) {
	args, argsEnd, ok := p.parseArgList()
	if !ok {
		return ast.NoExprID, false
	}
	span := p.exprSpan(callee).Cover(argsEnd)
	return p.arenas.Exprs.NewCall(span, callee, args), true
}

// parseArgList parses a parenthesized, comma-separated argument list and
// returns the closing paren's span.
func (p *Parser) parseArgList() ([]ast.ExprID, source.Span, bool) {
	p.advance() // (

	saved := p.noStructLit
	p.noStructLit = false
	defer func() { p.noStructLit = saved }()

	var args []ast.ExprID
	for !p.at(token.RParen) {
		if p.at(token.EOF) {
			p.err(diag.SynUnclosedParen, "unclosed argument list")
			return nil, source.Span{}, false
		}
		arg, ok := p.parseExpr(0)
		if !ok {
			return nil, source.Span{}, false
		}
		args = append(args, arg)
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	closing, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ) to close argument list")
	if !ok {
		return nil, source.Span{}, false
	}
	return args, closing.Span, true
}

func (p *Parser) parseIndexSuffix(target ast.ExprID) (ast.ExprID, bool) {
	p.advance() // [

	saved := p.noStructLit
	p.noStructLit = false
	index, ok := p.parseExpr(0)
	p.noStructLit = saved
	if !ok {
		return ast.NoExprID, false
	}

	closing, cok := p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ] to close index")
	if !cok {
		return ast.NoExprID, false
	}
	span := p.exprSpan(target).Cover(closing.Span)
	return p.arenas.Exprs.NewIndex(span, target, index), true
}

// parseCastSuffix parses `as <type>`. The target type is kept as interned
// text; generic arguments are not supported after `as`, which keeps
// `x as u32 < y` unambiguous.
func (p *Parser) parseCastSuffix(value ast.ExprID) (ast.ExprID, bool) {
	p.advance() // as

	typeStart := p.lx.Peek().Span
	for p.atOr(token.Amp, token.Star) {
		p.advance()
		if p.at(token.KwMut) {
			p.advance()
		}
	}
	first, ok := p.expect(token.Ident, diag.SynExpectType, "expected a type after as")
	if !ok {
		return ast.NoExprID, false
	}
	typeEnd := first.Span
	for p.at(token.ColonColon) {
		p.advance()
		seg, sok := p.expect(token.Ident, diag.SynExpectType, "expected identifier after :: in type")
		if !sok {
			return ast.NoExprID, false
		}
		typeEnd = seg.Span
	}

	typeSpan := typeStart.Cover(typeEnd)
	typeText := p.lx.File().Snippet(typeSpan)
	span := p.exprSpan(value).Cover(typeSpan)
	return p.arenas.Exprs.NewCast(span, value, p.intern(typeText), typeSpan), true
}

// isMacroCallStart reports whether a ! after expr begins a macro call.
// A bang in postfix position is never an operator, so after a bare path
// it can only start a macro invocation.
func (p *Parser) isMacroCallStart(expr ast.ExprID) bool {
	kind := p.arenas.Exprs.Get(expr).Kind
	return kind == ast.ExprIdent || kind == ast.ExprPath
}

func (p *Parser) parseMacroCallSuffix(path ast.ExprID) (ast.ExprID, bool) {
	pathSpan := p.exprSpan(path)
	p.advance() // !

	if !p.atOr(token.LParen, token.LBracket, token.LBrace) {
		p.err(diag.SynUnexpectedToken, "expected macro arguments after !")
		return ast.NoExprID, false
	}
	open := p.advance()
	if !p.skipBalanced(open.Kind) {
		p.err(diag.SynUnclosedParen, "unclosed macro arguments")
		return ast.NoExprID, false
	}
	argsSpan := open.Span.Cover(p.lastSpan)
	return p.arenas.Exprs.NewMacroCall(pathSpan.Cover(argsSpan), pathSpan, argsSpan), true
}
