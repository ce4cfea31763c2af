package parser

import (
	"slices"

	"oneassert/internal/ast"
	"oneassert/internal/diag"
	"oneassert/internal/lexer"
	"oneassert/internal/source"
	"oneassert/internal/token"
)

type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough reports whether the error limit has been reached.
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

// Result is the outcome of parsing one assert argument list.
type Result struct {
	// Cond is the condition expression, NoExprID on a parse failure.
	Cond ast.ExprID
	// MsgSpan covers the format message after the comma, verbatim.
	MsgSpan source.Span
	HasMsg  bool
	Bag     *diag.Bag
}

// Parser holds the state for parsing one argument list.
type Parser struct {
	lx     *lexer.Lexer
	arenas *ast.Builder
	fs     *source.FileSet
	opts   Options
	// lastSpan is the span of the last consumed token, kept for diagnostics
	// pointing past the end of input.
	lastSpan source.Span
	// noStructLit suppresses struct literals while parsing if/while/match
	// headers, where `{` starts the body instead.
	noStructLit bool
}

// ParseMacroArgs parses the full argument list of an assert invocation:
// a condition expression optionally followed by a comma and a format
// message that is kept as an uninterpreted token span.
func ParseMacroArgs(fs *source.FileSet, lx *lexer.Lexer, arenas *ast.Builder, opts Options) Result {
	p := Parser{
		lx:       lx,
		arenas:   arenas,
		fs:       fs,
		opts:     opts,
		lastSpan: lx.EmptySpan(),
	}

	res := p.parseMacroArgs()
	if br, ok := opts.Reporter.(*diag.BagReporter); ok {
		res.Bag = br.Bag
	}
	return res
}

// ParseExpression parses the whole input as a single expression and
// reports anything left over.
func ParseExpression(fs *source.FileSet, lx *lexer.Lexer, arenas *ast.Builder, opts Options) Result {
	p := Parser{
		lx:       lx,
		arenas:   arenas,
		fs:       fs,
		opts:     opts,
		lastSpan: lx.EmptySpan(),
	}

	expr, ok := p.parseExpr(0)
	if ok && !p.at(token.EOF) {
		p.err(diag.SynTrailingTokens, "unexpected tokens after expression")
		ok = false
	}
	if !ok {
		expr = ast.NoExprID
	}

	res := Result{Cond: expr}
	if br, brOK := opts.Reporter.(*diag.BagReporter); brOK {
		res.Bag = br.Bag
	}
	return res
}

func (p *Parser) parseMacroArgs() Result {
	if p.at(token.EOF) {
		p.err(diag.MacMissingCondition, "missing condition to check")
		return Result{Cond: ast.NoExprID}
	}

	cond, ok := p.parseExpr(0)
	if !ok {
		p.err(diag.MacIncompleteCondition, "incomplete expression")
		return Result{Cond: ast.NoExprID}
	}

	switch p.lx.Peek().Kind {
	case token.EOF:
		return Result{Cond: cond}
	case token.Comma:
		p.advance()
		start := p.lx.Peek().Span.Start
		end := uint32(len(p.lx.File().Content))
		if p.at(token.EOF) || start >= end {
			// A trailing comma with nothing after it is fine.
			return Result{Cond: cond}
		}
		msg := source.Span{File: p.lx.File().ID, Start: start, End: end}
		return Result{Cond: cond, MsgSpan: msg, HasMsg: true}
	default:
		p.err(diag.MacExpectCommaBeforeMessage, "condition has to be followed by a comma, if a message is provided")
		return Result{Cond: ast.NoExprID}
	}
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

func (p *Parser) atOr(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.lx.Peek().Kind)
}

func (p *Parser) intern(s string) source.StringID {
	return p.arenas.StringsInterner.Intern(s)
}
