package ast

import (
	"oneassert/internal/source"
)

type StmtKind uint8

const (
	// StmtLet is a let binding statement.
	StmtLet StmtKind = iota
	// StmtExpr is an expression statement, with or without a trailing
	// semicolon. The semicolon decides whether the expression is a block
	// tail or a discarded value.
	StmtExpr
	// StmtEmpty is a bare semicolon.
	StmtEmpty
)

type Stmt struct {
	Kind    StmtKind
	Span    source.Span
	Payload PayloadID
}

type StmtLetData struct {
	// PatSpan covers the binding pattern, mut keyword and type ascription
	// included, exactly as written.
	PatSpan source.Span
	Value   ExprID // NoExprID when the binding has no initializer
}

type StmtExprData struct {
	Expr    ExprID
	HasSemi bool
}

// Stmts manages allocation of statements.
type Stmts struct {
	Arena *Arena[Stmt]
	Lets  *Arena[StmtLetData]
	Exprs *Arena[StmtExprData]
}

func NewStmts(capHint uint) *Stmts {
	return &Stmts{
		Arena: NewArena[Stmt](capHint),
		Lets:  NewArena[StmtLetData](capHint),
		Exprs: NewArena[StmtExprData](capHint),
	}
}

func (s *Stmts) new(kind StmtKind, span source.Span, payload PayloadID) StmtID {
	return StmtID(s.Arena.Allocate(Stmt{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

// Get returns the statement with the given ID.
func (s *Stmts) Get(id StmtID) *Stmt {
	return s.Arena.Get(uint32(id))
}

// NewLet creates a new let binding statement.
func (s *Stmts) NewLet(span source.Span, patSpan source.Span, value ExprID) StmtID {
	payload := s.Lets.Allocate(StmtLetData{PatSpan: patSpan, Value: value})
	return s.new(StmtLet, span, PayloadID(payload))
}

// Let returns the let binding data for the given statement ID.
func (s *Stmts) Let(id StmtID) (*StmtLetData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtLet {
		return nil, false
	}
	return s.Lets.Get(uint32(stmt.Payload)), true
}

// NewExpr creates a new expression statement.
func (s *Stmts) NewExpr(span source.Span, expr ExprID, hasSemi bool) StmtID {
	payload := s.Exprs.Allocate(StmtExprData{Expr: expr, HasSemi: hasSemi})
	return s.new(StmtExpr, span, PayloadID(payload))
}

// Expr returns the expression statement data for the given statement ID.
func (s *Stmts) Expr(id StmtID) (*StmtExprData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtExpr {
		return nil, false
	}
	return s.Exprs.Get(uint32(stmt.Payload)), true
}

// NewEmpty creates a new empty statement.
func (s *Stmts) NewEmpty(span source.Span) StmtID {
	return s.new(StmtEmpty, span, NoPayloadID)
}
