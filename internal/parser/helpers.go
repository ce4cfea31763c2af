package parser

import (
	"oneassert/internal/diag"
	"oneassert/internal/source"
	"oneassert/internal/token"
)

// advance consumes the next token and updates lastSpan.
func (p *Parser) advance() token.Token {
	tok := p.lx.Next()
	if tok.Kind != token.EOF && tok.Kind != token.Invalid {
		p.lastSpan = tok.Span
	}
	return tok
}

// getDiagnosticSpan returns the best span for a diagnostic. At EOF the
// position right after the last consumed token reads better than a
// zero-length span at offset 0.
func (p *Parser) getDiagnosticSpan() source.Span {
	peek := p.lx.Peek()
	if peek.Kind == token.EOF && p.lastSpan.End > 0 {
		return source.Span{
			File:  p.lastSpan.File,
			Start: p.lastSpan.End,
			End:   p.lastSpan.End,
		}
	}
	return peek.Span
}

// expect consumes a token of kind k or reports and returns (invalid, false).
func (p *Parser) expect(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	diagSpan := p.getDiagnosticSpan()
	p.report(code, diag.SevError, diagSpan, msg)
	return token.Token{Kind: token.Invalid, Span: diagSpan, Text: p.lx.Peek().Text}, false
}

// err reports an error at the current position.
func (p *Parser) err(code diag.Code, msg string) bool {
	return p.report(code, diag.SevError, p.getDiagnosticSpan(), msg)
}

func (p *Parser) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) bool {
	if p.opts.Reporter != nil {
		if sev == diag.SevError {
			p.opts.CurrentErrors++
		}
		if !p.opts.Enough() {
			p.opts.Reporter.Report(code, sev, sp, msg, nil, nil)
			return true
		}
		return false
	}
	return false
}

// skipBalanced consumes tokens until the matching closer for open,
// tracking nested delimiters of every kind. The opener has already been
// consumed. Returns false at EOF.
func (p *Parser) skipBalanced(open token.Kind) bool {
	closer := map[token.Kind]token.Kind{
		token.LParen:   token.RParen,
		token.LBrace:   token.RBrace,
		token.LBracket: token.RBracket,
	}
	want := closer[open]
	depth := 1
	for depth > 0 {
		tok := p.lx.Peek()
		switch tok.Kind {
		case token.EOF:
			return false
		case open:
			depth++
		case want:
			depth--
		case token.LParen, token.LBrace, token.LBracket:
			p.advance()
			if !p.skipBalanced(tok.Kind) {
				return false
			}
			continue
		}
		p.advance()
	}
	return true
}
