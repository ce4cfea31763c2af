package parser

import (
	"oneassert/internal/ast"
	"oneassert/internal/diag"
	"oneassert/internal/token"
)

// parseBlock parses `{ stmt* tail? }`. The opening brace is at the
// current position.
func (p *Parser) parseBlock() (ast.ExprID, bool) {
	open, ok := p.expect(token.LBrace, diag.SynExpectBlock, "expected {")
	if !ok {
		return ast.NoExprID, false
	}

	saved := p.noStructLit
	p.noStructLit = false
	defer func() { p.noStructLit = saved }()

	var stmts []ast.StmtID
	tail := ast.NoExprID

	for !p.at(token.RBrace) {
		switch p.lx.Peek().Kind {
		case token.EOF:
			p.err(diag.SynUnclosedBrace, "unclosed block")
			return ast.NoExprID, false

		case token.Semicolon:
			semi := p.advance()
			stmts = append(stmts, p.arenas.Stmts.NewEmpty(semi.Span))

		case token.KwLet:
			stmt, sok := p.parseLetStmt()
			if !sok {
				return ast.NoExprID, false
			}
			stmts = append(stmts, stmt)

		default:
			expr, eok := p.parseExpr(0)
			if !eok {
				return ast.NoExprID, false
			}
			switch {
			case p.at(token.Semicolon):
				semi := p.advance()
				span := p.exprSpan(expr).Cover(semi.Span)
				stmts = append(stmts, p.arenas.Stmts.NewExpr(span, expr, true))
			case p.at(token.RBrace):
				tail = expr
			case p.exprIsBlockLike(expr):
				stmts = append(stmts, p.arenas.Stmts.NewExpr(p.exprSpan(expr), expr, false))
			default:
				p.err(diag.SynUnexpectedToken, "expected ; or } after expression")
				return ast.NoExprID, false
			}
		}
	}

	closing := p.advance()
	return p.arenas.Exprs.NewBlock(open.Span.Cover(closing.Span), stmts, tail), true
}

// parseLetStmt parses `let <pattern> (= <expr>)? ;`. The pattern span
// keeps mut keywords and type ascriptions verbatim.
func (p *Parser) parseLetStmt() (ast.StmtID, bool) {
	letTok := p.advance()

	patSpan, ok := p.spanUntilTop(token.Assign, token.Semicolon)
	if !ok {
		p.err(diag.SynUnexpectedToken, "expected = or ; after let pattern")
		return ast.NoStmtID, false
	}

	value := ast.NoExprID
	if p.at(token.Assign) {
		p.advance()
		var vok bool
		value, vok = p.parseExpr(0)
		if !vok {
			return ast.NoStmtID, false
		}
	}

	semi, sok := p.expect(token.Semicolon, diag.SynUnexpectedToken, "expected ; after let binding")
	if !sok {
		return ast.NoStmtID, false
	}
	return p.arenas.Stmts.NewLet(letTok.Span.Cover(semi.Span), patSpan, value), true
}

// exprIsBlockLike reports whether an expression statement may omit its
// trailing semicolon.
func (p *Parser) exprIsBlockLike(id ast.ExprID) bool {
	switch p.arenas.Exprs.Get(id).Kind {
	case ast.ExprBlock, ast.ExprIf, ast.ExprMatch, ast.ExprUnsafe, ast.ExprConst,
		ast.ExprLoop, ast.ExprWhile, ast.ExprForLoop, ast.ExprAsync:
		return true
	default:
		return false
	}
}

func (p *Parser) parseIf() (ast.ExprID, bool) {
	ifTok := p.advance()

	saved := p.noStructLit
	p.noStructLit = true
	cond, ok := p.parseExpr(0)
	p.noStructLit = saved
	if !ok {
		return ast.NoExprID, false
	}

	then, tok := p.parseBlock()
	if !tok {
		return ast.NoExprID, false
	}

	els := ast.NoExprID
	span := ifTok.Span.Cover(p.exprSpan(then))
	if p.at(token.KwElse) {
		p.advance()
		var eok bool
		if p.at(token.KwIf) {
			els, eok = p.parseIf()
		} else {
			els, eok = p.parseBlock()
		}
		if !eok {
			return ast.NoExprID, false
		}
		span = span.Cover(p.exprSpan(els))
	}
	return p.arenas.Exprs.NewIf(span, cond, then, els), true
}

func (p *Parser) parseMatch() (ast.ExprID, bool) {
	matchTok := p.advance()

	saved := p.noStructLit
	p.noStructLit = true
	scrutinee, ok := p.parseExpr(0)
	p.noStructLit = saved
	if !ok {
		return ast.NoExprID, false
	}

	if _, bok := p.expect(token.LBrace, diag.SynExpectBlock, "expected { after match scrutinee"); !bok {
		return ast.NoExprID, false
	}

	var arms []ast.MatchArm
	for !p.at(token.RBrace) {
		if p.at(token.EOF) {
			p.err(diag.SynUnclosedBrace, "unclosed match body")
			return ast.NoExprID, false
		}

		patSpan, pok := p.spanUntilTop(token.FatArrow)
		if !pok {
			p.err(diag.SynExpectFatArrow, "expected => after match pattern")
			return ast.NoExprID, false
		}
		p.advance() // =>

		body, bok := p.parseExpr(0)
		if !bok {
			return ast.NoExprID, false
		}
		arms = append(arms, ast.MatchArm{PatternSpan: patSpan, Body: body})

		if p.at(token.Comma) {
			p.advance()
		}
	}
	closing := p.advance()
	return p.arenas.Exprs.NewMatch(matchTok.Span.Cover(closing.Span), scrutinee, arms), true
}

func (p *Parser) parseUnsafe() (ast.ExprID, bool) {
	unsafeTok := p.advance()
	block, ok := p.parseBlock()
	if !ok {
		return ast.NoExprID, false
	}
	return p.arenas.Exprs.NewUnsafe(unsafeTok.Span.Cover(p.exprSpan(block)), block), true
}

func (p *Parser) parseConstBlock() (ast.ExprID, bool) {
	constTok := p.advance()
	block, ok := p.parseBlock()
	if !ok {
		return ast.NoExprID, false
	}
	return p.arenas.Exprs.NewConst(constTok.Span.Cover(p.exprSpan(block)), block), true
}

func (p *Parser) parseAsyncBlock() (ast.ExprID, bool) {
	asyncTok := p.advance()
	if p.at(token.KwMove) {
		p.advance()
	}
	block, ok := p.parseBlock()
	if !ok {
		return ast.NoExprID, false
	}
	return p.arenas.Exprs.NewAsync(asyncTok.Span.Cover(p.exprSpan(block)), block), true
}

func (p *Parser) parseLoop() (ast.ExprID, bool) {
	loopTok := p.advance()
	body, ok := p.parseBlock()
	if !ok {
		return ast.NoExprID, false
	}
	return p.arenas.Exprs.NewLoop(loopTok.Span.Cover(p.exprSpan(body)), body), true
}

func (p *Parser) parseWhile() (ast.ExprID, bool) {
	whileTok := p.advance()

	saved := p.noStructLit
	p.noStructLit = true
	cond, ok := p.parseExpr(0)
	p.noStructLit = saved
	if !ok {
		return ast.NoExprID, false
	}

	body, bok := p.parseBlock()
	if !bok {
		return ast.NoExprID, false
	}
	return p.arenas.Exprs.NewWhile(whileTok.Span.Cover(p.exprSpan(body)), cond, body), true
}

func (p *Parser) parseFor() (ast.ExprID, bool) {
	forTok := p.advance()

	patSpan, ok := p.spanUntilTop(token.KwIn)
	if !ok {
		p.err(diag.SynUnexpectedToken, "expected in after for pattern")
		return ast.NoExprID, false
	}
	p.advance() // in

	saved := p.noStructLit
	p.noStructLit = true
	iter, iok := p.parseExpr(0)
	p.noStructLit = saved
	if !iok {
		return ast.NoExprID, false
	}

	body, bok := p.parseBlock()
	if !bok {
		return ast.NoExprID, false
	}
	return p.arenas.Exprs.NewFor(forTok.Span.Cover(p.exprSpan(body)), patSpan, iter, body), true
}
