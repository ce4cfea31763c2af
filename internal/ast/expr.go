package ast

import (
	"oneassert/internal/source"
)

type ExprIdentData struct {
	Name source.StringID
}

type ExprPathData struct {
	Segments []source.StringID
}

type ExprLiteralData struct {
	Kind  ExprLitKind
	Value source.StringID
}

type ExprBinaryData struct {
	Op     ExprBinaryOp
	OpSpan source.Span
	Left   ExprID
	Right  ExprID
}

type ExprUnaryData struct {
	Op      ExprUnaryOp
	Operand ExprID
}

type ExprCallData struct {
	Callee ExprID
	Args   []ExprID
}

type ExprMethodCallData struct {
	Receiver   ExprID
	Method     source.StringID
	MethodSpan source.Span
	Args       []ExprID
}

type ExprFieldData struct {
	Target ExprID
	Field  source.StringID
}

type ExprIndexData struct {
	Target ExprID
	Index  ExprID
}

type ExprCastData struct {
	Value ExprID
	// Type holds the interned target-type text; TypeSpan covers it in source.
	Type     source.StringID
	TypeSpan source.Span
}

type ExprParenData struct {
	Inner ExprID
}

type ExprTupleData struct {
	Elems []ExprID
}

type ExprArrayData struct {
	Elems []ExprID
}

type ExprRepeatData struct {
	Elem   ExprID
	Length ExprID
}

type ExprRangeData struct {
	Start     ExprID // NoExprID for half-open starts
	End       ExprID // NoExprID for half-open ends
	Inclusive bool
}

type ExprReferenceData struct {
	Mutable bool
	Operand ExprID
}

type ExprTryData struct {
	Operand ExprID
}

type ExprAwaitData struct {
	Operand ExprID
}

type ExprClosureData struct {
	// ParamsSpan covers the |...| parameter list, move keyword included.
	ParamsSpan source.Span
	Body       ExprID
}

type ExprMacroCallData struct {
	PathSpan source.Span
	ArgsSpan source.Span
}

type ExprBlockData struct {
	Stmts []StmtID
	Tail  ExprID // NoExprID when the block has no trailing expression
}

type ExprConstData struct {
	Block ExprID
}

type ExprUnsafeData struct {
	Block ExprID
}

type ExprIfData struct {
	Cond ExprID
	Then ExprID // always an ExprBlock
	Else ExprID // ExprBlock, ExprIf for else-if chains, or NoExprID
}

// MatchArm is one arm of a match expression. PatternSpan covers the pattern
// together with any guard, exactly as written.
type MatchArm struct {
	PatternSpan source.Span
	Body        ExprID
}

type ExprMatchData struct {
	Scrutinee ExprID
	Arms      []MatchArm
}

type ExprLoopData struct {
	Body ExprID
}

type ExprWhileData struct {
	Cond ExprID
	Body ExprID
}

type ExprForData struct {
	PatSpan source.Span
	Iter    ExprID
	Body    ExprID
}

type ExprAssignData struct {
	Op     ExprAssignOp
	Target ExprID
	Value  ExprID
}

type ExprReturnData struct {
	Value ExprID // NoExprID for a bare return
}

type ExprBreakData struct {
	Value ExprID // NoExprID for a bare break
}

type ExprLetData struct {
	PatSpan source.Span
	Value   ExprID
}

type ExprStructData struct {
	PathSpan source.Span
	BodySpan source.Span
}

type ExprAsyncData struct {
	Block ExprID
}
