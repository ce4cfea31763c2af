package ast

import (
	"testing"

	"oneassert/internal/source"
)

func span(start, end uint32) source.Span {
	return source.Span{File: 1, Start: start, End: end}
}

func TestArenaIndexZeroIsNil(t *testing.T) {
	a := NewArena[int](4)
	if a.Get(0) != nil {
		t.Fatal("index 0 must be the reserved nil slot")
	}
	id := a.Allocate(42)
	if id != 1 {
		t.Fatalf("first allocation id = %d, want 1", id)
	}
	if got := *a.Get(id); got != 42 {
		t.Fatalf("Get(%d) = %d, want 42", id, got)
	}
}

func TestExprPayloadRoundTrip(t *testing.T) {
	e := NewExprs(0)

	left := e.NewIdent(span(0, 1), 1)
	right := e.NewLiteral(span(5, 6), ExprLitInt, 2)
	bin := e.NewBinary(span(0, 6), ExprBinaryEq, span(2, 4), left, right)

	data, ok := e.Binary(bin)
	if !ok {
		t.Fatal("Binary() reported wrong kind")
	}
	if data.Op != ExprBinaryEq || data.Left != left || data.Right != right {
		t.Fatalf("binary payload = %+v", data)
	}
	if e.Get(bin).Kind != ExprBinary {
		t.Fatalf("kind = %v, want ExprBinary", e.Get(bin).Kind)
	}
}

func TestAccessorRejectsWrongKind(t *testing.T) {
	e := NewExprs(0)
	id := e.NewIdent(span(0, 1), 1)

	if _, ok := e.Binary(id); ok {
		t.Fatal("Binary() accepted an identifier expression")
	}
	if _, ok := e.Binary(NoExprID); ok {
		t.Fatal("Binary() accepted NoExprID")
	}
}

func TestCallArgsAreCopied(t *testing.T) {
	e := NewExprs(0)
	args := []ExprID{e.NewIdent(span(2, 3), 1), e.NewIdent(span(5, 6), 2)}
	callee := e.NewIdent(span(0, 1), 3)
	call := e.NewCall(span(0, 7), callee, args)

	args[0] = NoExprID
	data, _ := e.Call(call)
	if !data.Args[0].IsValid() {
		t.Fatal("call args must be copied at allocation")
	}
}

func TestBlockTail(t *testing.T) {
	b := NewBuilder(Hints{})
	v := b.Exprs.NewIdent(span(10, 11), 1)
	letStmt := b.Stmts.NewLet(span(2, 9), span(6, 7), v)
	tail := b.Exprs.NewIdent(span(12, 13), 2)
	blk := b.Exprs.NewBlock(span(0, 15), []StmtID{letStmt}, tail)

	data, ok := b.Exprs.Block(blk)
	if !ok {
		t.Fatal("Block() reported wrong kind")
	}
	if len(data.Stmts) != 1 || data.Tail != tail {
		t.Fatalf("block payload = %+v", data)
	}
	letData, ok := b.Stmts.Let(letStmt)
	if !ok || letData.Value != v {
		t.Fatalf("let payload = %+v ok=%v", letData, ok)
	}
}

func TestMatchArms(t *testing.T) {
	e := NewExprs(0)
	scrut := e.NewIdent(span(6, 7), 1)
	body := e.NewLiteral(span(20, 24), ExprLitBool, 2)
	m := e.NewMatch(span(0, 30), scrut, []MatchArm{
		{PatternSpan: span(10, 17), Body: body},
	})

	data, ok := e.Match(m)
	if !ok || len(data.Arms) != 1 {
		t.Fatalf("match payload = %+v ok=%v", data, ok)
	}
	if data.Arms[0].Body != body {
		t.Fatal("arm body lost")
	}
}
