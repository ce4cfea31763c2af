package driver

import (
	"oneassert/internal/diag"
	"oneassert/internal/source"
)

// lexReporter adapts the lexer's thin report callback onto a diag.Bag.
type lexReporter struct {
	bag *diag.Bag
}

func (r lexReporter) Report(kind string, span source.Span, msg string) {
	diag.ReportError(diag.BagReporter{Bag: r.bag}, lexCode(kind), span, msg).Emit()
}

func lexCode(kind string) diag.Code {
	switch kind {
	case "unknown-char":
		return diag.LexUnknownChar
	case "unterminated-string":
		return diag.LexUnterminatedString
	case "unterminated-char":
		return diag.LexUnterminatedChar
	case "unterminated-block-comment":
		return diag.LexUnterminatedBlockComment
	case "bad-number":
		return diag.LexBadNumber
	default:
		return diag.LexUnknownChar
	}
}
