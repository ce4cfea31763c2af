package parser

import (
	"testing"

	"oneassert/internal/ast"
	"oneassert/internal/diag"
	"oneassert/internal/lexer"
	"oneassert/internal/source"
)

type parseFixture struct {
	fs     *source.FileSet
	file   *source.File
	arenas *ast.Builder
	bag    *diag.Bag
}

func newFixture(t *testing.T, input string) (*parseFixture, *lexer.Lexer) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.oa", []byte(input))
	file := fs.Get(id)
	bag := diag.NewBag(16)
	return &parseFixture{
		fs:     fs,
		file:   file,
		arenas: ast.NewBuilder(ast.Hints{}),
		bag:    bag,
	}, lexer.New(file, lexer.Options{})
}

func parseExpr(t *testing.T, input string) (*parseFixture, ast.ExprID) {
	t.Helper()
	fx, lx := newFixture(t, input)
	res := ParseExpression(fx.fs, lx, fx.arenas, Options{
		Reporter: &diag.BagReporter{Bag: fx.bag},
	})
	if !res.Cond.IsValid() {
		for _, d := range fx.bag.Items() {
			t.Logf("diag: %s %s", d.Code.ID(), d.Message)
		}
		t.Fatalf("parse failed for %q", input)
	}
	return fx, res.Cond
}

func (fx *parseFixture) kind(id ast.ExprID) ast.ExprKind {
	return fx.arenas.Exprs.Get(id).Kind
}

func (fx *parseFixture) text(id ast.ExprID) string {
	return fx.file.Snippet(fx.arenas.Exprs.Get(id).Span)
}

func TestParseBinaryPrecedence(t *testing.T) {
	fx, id := parseExpr(t, "a + b * c == d")
	data, ok := fx.arenas.Exprs.Binary(id)
	if !ok || data.Op != ast.ExprBinaryEq {
		t.Fatalf("top op = %+v, want ==", data)
	}
	left, _ := fx.arenas.Exprs.Binary(data.Left)
	if left == nil || left.Op != ast.ExprBinaryAdd {
		t.Fatalf("left of == is %+v, want +", left)
	}
	mul, _ := fx.arenas.Exprs.Binary(left.Right)
	if mul == nil || mul.Op != ast.ExprBinaryMul {
		t.Fatalf("b * c did not bind tighter: %+v", mul)
	}
}

func TestParseLogicalChain(t *testing.T) {
	fx, id := parseExpr(t, "a && b || c")
	data, _ := fx.arenas.Exprs.Binary(id)
	if data.Op != ast.ExprBinaryLogicalOr {
		t.Fatalf("|| must be the top operator, got %v", data.Op)
	}
	if fx.text(data.Left) != "a && b" {
		t.Fatalf("left text = %q", fx.text(data.Left))
	}
}

func TestParseUnaryNesting(t *testing.T) {
	fx, id := parseExpr(t, "!!x")
	outer, ok := fx.arenas.Exprs.Unary(id)
	if !ok || outer.Op != ast.ExprUnaryNot {
		t.Fatalf("outer = %+v", outer)
	}
	inner, ok := fx.arenas.Exprs.Unary(outer.Operand)
	if !ok || inner.Op != ast.ExprUnaryNot {
		t.Fatalf("inner = %+v", inner)
	}
	if fx.kind(inner.Operand) != ast.ExprIdent {
		t.Fatalf("operand kind = %v", fx.kind(inner.Operand))
	}
}

func TestParseCall(t *testing.T) {
	fx, id := parseExpr(t, "some_func(arg1, arg2, arg3)")
	data, ok := fx.arenas.Exprs.Call(id)
	if !ok {
		t.Fatal("not a call")
	}
	if len(data.Args) != 3 {
		t.Fatalf("args = %d, want 3", len(data.Args))
	}
	if fx.text(data.Args[1]) != "arg2" {
		t.Fatalf("arg1 text = %q", fx.text(data.Args[1]))
	}
}

func TestParseMethodCall(t *testing.T) {
	fx, id := parseExpr(t, `s.contains("world")`)
	data, ok := fx.arenas.Exprs.MethodCall(id)
	if !ok {
		t.Fatal("not a method call")
	}
	if fx.arenas.StringsInterner.MustLookup(data.Method) != "contains" {
		t.Fatalf("method = %q", fx.arenas.StringsInterner.MustLookup(data.Method))
	}
	if len(data.Args) != 1 || fx.kind(data.Args[0]) != ast.ExprLit {
		t.Fatalf("args = %+v", data.Args)
	}
	if fx.kind(data.Receiver) != ast.ExprIdent {
		t.Fatalf("receiver kind = %v", fx.kind(data.Receiver))
	}
}

func TestParseChainedPostfix(t *testing.T) {
	fx, id := parseExpr(t, "a.b.c(1)[2]?")
	try, ok := fx.arenas.Exprs.Try(id)
	if !ok {
		t.Fatal("outermost must be ?")
	}
	index, ok := fx.arenas.Exprs.Index(try.Operand)
	if !ok {
		t.Fatal("then index")
	}
	call, ok := fx.arenas.Exprs.MethodCall(index.Target)
	if !ok {
		t.Fatal("then method call")
	}
	if fx.text(call.Receiver) != "a.b" {
		t.Fatalf("receiver text = %q", fx.text(call.Receiver))
	}
}

func TestParseFieldVsMethod(t *testing.T) {
	fx, id := parseExpr(t, "pair.1")
	data, ok := fx.arenas.Exprs.Field(id)
	if !ok {
		t.Fatal("tuple index must parse as field access")
	}
	if fx.arenas.StringsInterner.MustLookup(data.Field) != "1" {
		t.Fatalf("field = %q", fx.arenas.StringsInterner.MustLookup(data.Field))
	}
}

func TestParseCast(t *testing.T) {
	fx, id := parseExpr(t, "flag as bool")
	data, ok := fx.arenas.Exprs.Cast(id)
	if !ok {
		t.Fatal("not a cast")
	}
	if fx.arenas.StringsInterner.MustLookup(data.Type) != "bool" {
		t.Fatalf("type = %q", fx.arenas.StringsInterner.MustLookup(data.Type))
	}
}

func TestParseCastBindsBeforeComparison(t *testing.T) {
	fx, id := parseExpr(t, "x as u32 < y")
	data, ok := fx.arenas.Exprs.Binary(id)
	if !ok || data.Op != ast.ExprBinaryLess {
		t.Fatalf("top = %+v, want <", data)
	}
	if fx.kind(data.Left) != ast.ExprCast {
		t.Fatalf("left kind = %v, want cast", fx.kind(data.Left))
	}
}

func TestParsePath(t *testing.T) {
	fx, id := parseExpr(t, "config::flags::VERBOSE")
	data, ok := fx.arenas.Exprs.Path(id)
	if !ok || len(data.Segments) != 3 {
		t.Fatalf("path = %+v", data)
	}
}

func TestParseMacroCall(t *testing.T) {
	fx, id := parseExpr(t, "matches!(value, Some(_))")
	data, ok := fx.arenas.Exprs.MacroCall(id)
	if !ok {
		t.Fatal("not a macro call")
	}
	if fx.file.Snippet(data.PathSpan) != "matches" {
		t.Fatalf("path = %q", fx.file.Snippet(data.PathSpan))
	}
	if fx.file.Snippet(data.ArgsSpan) != "(value, Some(_))" {
		t.Fatalf("args = %q", fx.file.Snippet(data.ArgsSpan))
	}
}

func TestParseBlockWithTail(t *testing.T) {
	fx, id := parseExpr(t, "{ let x = compute(); x > 0 }")
	data, ok := fx.arenas.Exprs.Block(id)
	if !ok {
		t.Fatal("not a block")
	}
	if len(data.Stmts) != 1 {
		t.Fatalf("stmts = %d, want 1", len(data.Stmts))
	}
	if !data.Tail.IsValid() {
		t.Fatal("tail missing")
	}
	if fx.text(data.Tail) != "x > 0" {
		t.Fatalf("tail text = %q", fx.text(data.Tail))
	}
	letData, ok := fx.arenas.Stmts.Let(data.Stmts[0])
	if !ok {
		t.Fatal("stmt 0 is not a let")
	}
	if fx.file.Snippet(letData.PatSpan) != "x" {
		t.Fatalf("pattern = %q", fx.file.Snippet(letData.PatSpan))
	}
}

func TestParseBlockWithoutTail(t *testing.T) {
	fx, id := parseExpr(t, "{ do_something(); }")
	data, _ := fx.arenas.Exprs.Block(id)
	if data.Tail.IsValid() {
		t.Fatal("semicolon-terminated call must not become the tail")
	}
	if len(data.Stmts) != 1 {
		t.Fatalf("stmts = %d", len(data.Stmts))
	}
}

func TestParseIfElseChain(t *testing.T) {
	fx, id := parseExpr(t, "if a { b } else if c { d } else { e }")
	data, ok := fx.arenas.Exprs.If(id)
	if !ok {
		t.Fatal("not an if")
	}
	if fx.text(data.Cond) != "a" {
		t.Fatalf("cond = %q", fx.text(data.Cond))
	}
	elseIf, ok := fx.arenas.Exprs.If(data.Else)
	if !ok {
		t.Fatal("else branch must be a nested if")
	}
	if !elseIf.Else.IsValid() || fx.kind(elseIf.Else) != ast.ExprBlock {
		t.Fatal("final else must be a block")
	}
}

func TestParseIfConditionRejectsStructLiteral(t *testing.T) {
	// `p { }` after if is the body, not a struct literal.
	fx, id := parseExpr(t, "if ready { go() } else { stop() }")
	data, _ := fx.arenas.Exprs.If(id)
	if fx.kind(data.Cond) != ast.ExprIdent {
		t.Fatalf("cond kind = %v, want plain identifier", fx.kind(data.Cond))
	}
}

func TestParseStructLiteralOutsideCondition(t *testing.T) {
	fx, id := parseExpr(t, "Point { x: 1, y: 2 } == other")
	data, ok := fx.arenas.Exprs.Binary(id)
	if !ok {
		t.Fatal("not a binary expression")
	}
	if fx.kind(data.Left) != ast.ExprStruct {
		t.Fatalf("left kind = %v, want struct literal", fx.kind(data.Left))
	}
}

func TestParseMatch(t *testing.T) {
	fx, id := parseExpr(t, "match val { Some(x) if x > 2 => true, None => false, }")
	data, ok := fx.arenas.Exprs.Match(id)
	if !ok {
		t.Fatal("not a match")
	}
	if len(data.Arms) != 2 {
		t.Fatalf("arms = %d, want 2", len(data.Arms))
	}
	if fx.file.Snippet(data.Arms[0].PatternSpan) != "Some(x) if x > 2" {
		t.Fatalf("arm 0 pattern = %q", fx.file.Snippet(data.Arms[0].PatternSpan))
	}
	if fx.text(data.Arms[1].Body) != "false" {
		t.Fatalf("arm 1 body = %q", fx.text(data.Arms[1].Body))
	}
}

func TestParseUnsafeBlock(t *testing.T) {
	fx, id := parseExpr(t, "unsafe { *ptr == 3 }")
	data, ok := fx.arenas.Exprs.Unsafe(id)
	if !ok {
		t.Fatal("not an unsafe block")
	}
	blk, _ := fx.arenas.Exprs.Block(data.Block)
	if !blk.Tail.IsValid() {
		t.Fatal("unsafe block tail missing")
	}
}

func TestParseClosure(t *testing.T) {
	fx, id := parseExpr(t, "|x| x + 1")
	data, ok := fx.arenas.Exprs.Closure(id)
	if !ok {
		t.Fatal("not a closure")
	}
	if fx.file.Snippet(data.ParamsSpan) != "|x|" {
		t.Fatalf("params = %q", fx.file.Snippet(data.ParamsSpan))
	}
}

func TestParseRange(t *testing.T) {
	fx, id := parseExpr(t, "0..=limit")
	data, ok := fx.arenas.Exprs.Range(id)
	if !ok || !data.Inclusive {
		t.Fatalf("range = %+v", data)
	}
	if !data.Start.IsValid() || !data.End.IsValid() {
		t.Fatal("both endpoints expected")
	}
}

func TestParseAssignIsRecognized(t *testing.T) {
	fx, id := parseExpr(t, "x = 2")
	if fx.kind(id) != ast.ExprAssign {
		t.Fatalf("kind = %v, want assignment", fx.kind(id))
	}
	fx, id = parseExpr(t, "x += 2")
	data, _ := fx.arenas.Exprs.Assign(id)
	if data.Op != ast.ExprAssignAdd {
		t.Fatalf("op = %v, want +=", data.Op)
	}
}

func runMacroArgs(t *testing.T, input string) (*parseFixture, Result) {
	t.Helper()
	fx, lx := newFixture(t, input)
	res := ParseMacroArgs(fx.fs, lx, fx.arenas, Options{
		Reporter: &diag.BagReporter{Bag: fx.bag},
	})
	return fx, res
}

func firstCode(fx *parseFixture) diag.Code {
	if fx.bag.Len() == 0 {
		return diag.UnknownCode
	}
	return fx.bag.Items()[0].Code
}

func TestMacroArgsPlainCondition(t *testing.T) {
	fx, res := runMacroArgs(t, "a == b")
	if !res.Cond.IsValid() || res.HasMsg {
		t.Fatalf("res = %+v", res)
	}
	if fx.bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %+v", fx.bag.Items())
	}
}

func TestMacroArgsWithMessage(t *testing.T) {
	fx, res := runMacroArgs(t, `x > 0, "x = {}", x`)
	if !res.HasMsg {
		t.Fatal("message not detected")
	}
	if got := fx.file.Snippet(res.MsgSpan); got != `"x = {}", x` {
		t.Fatalf("message span text = %q", got)
	}
}

func TestMacroArgsTrailingComma(t *testing.T) {
	_, res := runMacroArgs(t, "ready,")
	if !res.Cond.IsValid() || res.HasMsg {
		t.Fatalf("trailing comma must not produce a message: %+v", res)
	}
}

func TestMacroArgsEmpty(t *testing.T) {
	fx, res := runMacroArgs(t, "")
	if res.Cond.IsValid() {
		t.Fatal("empty input must fail")
	}
	if firstCode(fx) != diag.MacMissingCondition {
		t.Fatalf("code = %v", firstCode(fx))
	}
}

func TestMacroArgsIncomplete(t *testing.T) {
	fx, res := runMacroArgs(t, "a ==")
	if res.Cond.IsValid() {
		t.Fatal("dangling operator must fail")
	}
	codes := fx.bag.Items()
	last := codes[len(codes)-1].Code
	if last != diag.MacIncompleteCondition {
		t.Fatalf("last code = %v", last)
	}
}

func TestMacroArgsMissingComma(t *testing.T) {
	fx, res := runMacroArgs(t, `cond "message"`)
	if res.Cond.IsValid() {
		t.Fatal("missing comma must fail")
	}
	if firstCode(fx) != diag.MacExpectCommaBeforeMessage {
		t.Fatalf("code = %v", firstCode(fx))
	}
}
