package ast

import (
	"oneassert/internal/source"
)

// Exprs manages allocation of expressions.
type Exprs struct {
	Arena       *Arena[Expr]
	Idents      *Arena[ExprIdentData]
	Paths       *Arena[ExprPathData]
	Literals    *Arena[ExprLiteralData]
	Binaries    *Arena[ExprBinaryData]
	Unaries     *Arena[ExprUnaryData]
	Calls       *Arena[ExprCallData]
	MethodCalls *Arena[ExprMethodCallData]
	Fields      *Arena[ExprFieldData]
	Indices     *Arena[ExprIndexData]
	Casts       *Arena[ExprCastData]
	Parens      *Arena[ExprParenData]
	Tuples      *Arena[ExprTupleData]
	Arrays      *Arena[ExprArrayData]
	Repeats     *Arena[ExprRepeatData]
	Ranges      *Arena[ExprRangeData]
	References  *Arena[ExprReferenceData]
	Tries       *Arena[ExprTryData]
	Awaits      *Arena[ExprAwaitData]
	Closures    *Arena[ExprClosureData]
	MacroCalls  *Arena[ExprMacroCallData]
	Blocks      *Arena[ExprBlockData]
	Consts      *Arena[ExprConstData]
	Unsafes     *Arena[ExprUnsafeData]
	Ifs         *Arena[ExprIfData]
	Matches     *Arena[ExprMatchData]
	Loops       *Arena[ExprLoopData]
	Whiles      *Arena[ExprWhileData]
	Fors        *Arena[ExprForData]
	Assigns     *Arena[ExprAssignData]
	Returns     *Arena[ExprReturnData]
	Breaks      *Arena[ExprBreakData]
	Lets        *Arena[ExprLetData]
	Structs     *Arena[ExprStructData]
	Asyncs      *Arena[ExprAsyncData]
}

// NewExprs creates a new Exprs with per-kind arenas preallocated using
// capHint as the initial capacity. If capHint is 0, 1<<8 is used.
func NewExprs(capHint uint) *Exprs {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Exprs{
		Arena:       NewArena[Expr](capHint),
		Idents:      NewArena[ExprIdentData](capHint),
		Paths:       NewArena[ExprPathData](capHint),
		Literals:    NewArena[ExprLiteralData](capHint),
		Binaries:    NewArena[ExprBinaryData](capHint),
		Unaries:     NewArena[ExprUnaryData](capHint),
		Calls:       NewArena[ExprCallData](capHint),
		MethodCalls: NewArena[ExprMethodCallData](capHint),
		Fields:      NewArena[ExprFieldData](capHint),
		Indices:     NewArena[ExprIndexData](capHint),
		Casts:       NewArena[ExprCastData](capHint),
		Parens:      NewArena[ExprParenData](capHint),
		Tuples:      NewArena[ExprTupleData](capHint),
		Arrays:      NewArena[ExprArrayData](capHint),
		Repeats:     NewArena[ExprRepeatData](capHint),
		Ranges:      NewArena[ExprRangeData](capHint),
		References:  NewArena[ExprReferenceData](capHint),
		Tries:       NewArena[ExprTryData](capHint),
		Awaits:      NewArena[ExprAwaitData](capHint),
		Closures:    NewArena[ExprClosureData](capHint),
		MacroCalls:  NewArena[ExprMacroCallData](capHint),
		Blocks:      NewArena[ExprBlockData](capHint),
		Consts:      NewArena[ExprConstData](capHint),
		Unsafes:     NewArena[ExprUnsafeData](capHint),
		Ifs:         NewArena[ExprIfData](capHint),
		Matches:     NewArena[ExprMatchData](capHint),
		Loops:       NewArena[ExprLoopData](capHint),
		Whiles:      NewArena[ExprWhileData](capHint),
		Fors:        NewArena[ExprForData](capHint),
		Assigns:     NewArena[ExprAssignData](capHint),
		Returns:     NewArena[ExprReturnData](capHint),
		Breaks:      NewArena[ExprBreakData](capHint),
		Lets:        NewArena[ExprLetData](capHint),
		Structs:     NewArena[ExprStructData](capHint),
		Asyncs:      NewArena[ExprAsyncData](capHint),
	}
}

func (e *Exprs) new(kind ExprKind, span source.Span, payload PayloadID) ExprID {
	return ExprID(e.Arena.Allocate(Expr{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

// Get returns the expression with the given ID.
func (e *Exprs) Get(id ExprID) *Expr {
	return e.Arena.Get(uint32(id))
}

// NewIdent creates a new identifier expression.
func (e *Exprs) NewIdent(span source.Span, name source.StringID) ExprID {
	payload := e.Idents.Allocate(ExprIdentData{Name: name})
	return e.new(ExprIdent, span, PayloadID(payload))
}

// Ident returns the identifier data for the given expression ID.
func (e *Exprs) Ident(id ExprID) (*ExprIdentData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprIdent {
		return nil, false
	}
	return e.Idents.Get(uint32(expr.Payload)), true
}

// NewPath creates a new path expression.
func (e *Exprs) NewPath(span source.Span, segments []source.StringID) ExprID {
	payload := e.Paths.Allocate(ExprPathData{Segments: append([]source.StringID(nil), segments...)})
	return e.new(ExprPath, span, PayloadID(payload))
}

// Path returns the path data for the given expression ID.
func (e *Exprs) Path(id ExprID) (*ExprPathData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprPath {
		return nil, false
	}
	return e.Paths.Get(uint32(expr.Payload)), true
}

// NewLiteral creates a new literal expression.
func (e *Exprs) NewLiteral(span source.Span, kind ExprLitKind, value source.StringID) ExprID {
	payload := e.Literals.Allocate(ExprLiteralData{Kind: kind, Value: value})
	return e.new(ExprLit, span, PayloadID(payload))
}

// Literal returns the literal data for the given expression ID.
func (e *Exprs) Literal(id ExprID) (*ExprLiteralData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprLit {
		return nil, false
	}
	return e.Literals.Get(uint32(expr.Payload)), true
}

// NewBinary creates a new binary expression.
func (e *Exprs) NewBinary(span source.Span, op ExprBinaryOp, opSpan source.Span, left, right ExprID) ExprID {
	payload := e.Binaries.Allocate(ExprBinaryData{Op: op, OpSpan: opSpan, Left: left, Right: right})
	return e.new(ExprBinary, span, PayloadID(payload))
}

// Binary returns the binary data for the given expression ID.
func (e *Exprs) Binary(id ExprID) (*ExprBinaryData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprBinary {
		return nil, false
	}
	return e.Binaries.Get(uint32(expr.Payload)), true
}

// NewUnary creates a new prefix unary expression.
func (e *Exprs) NewUnary(span source.Span, op ExprUnaryOp, operand ExprID) ExprID {
	payload := e.Unaries.Allocate(ExprUnaryData{Op: op, Operand: operand})
	return e.new(ExprUnary, span, PayloadID(payload))
}

// Unary returns the unary data for the given expression ID.
func (e *Exprs) Unary(id ExprID) (*ExprUnaryData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprUnary {
		return nil, false
	}
	return e.Unaries.Get(uint32(expr.Payload)), true
}

// NewCall creates a new function call expression.
func (e *Exprs) NewCall(span source.Span, callee ExprID, args []ExprID) ExprID {
	payload := e.Calls.Allocate(ExprCallData{
		Callee: callee,
		Args:   append([]ExprID(nil), args...),
	})
	return e.new(ExprCall, span, PayloadID(payload))
}

// Call returns the call data for the given expression ID.
func (e *Exprs) Call(id ExprID) (*ExprCallData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprCall {
		return nil, false
	}
	return e.Calls.Get(uint32(expr.Payload)), true
}

// NewMethodCall creates a new method call expression.
func (e *Exprs) NewMethodCall(span source.Span, recv ExprID, method source.StringID, methodSpan source.Span, args []ExprID) ExprID {
	payload := e.MethodCalls.Allocate(ExprMethodCallData{
		Receiver:   recv,
		Method:     method,
		MethodSpan: methodSpan,
		Args:       append([]ExprID(nil), args...),
	})
	return e.new(ExprMethodCall, span, PayloadID(payload))
}

// MethodCall returns the method call data for the given expression ID.
func (e *Exprs) MethodCall(id ExprID) (*ExprMethodCallData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprMethodCall {
		return nil, false
	}
	return e.MethodCalls.Get(uint32(expr.Payload)), true
}

// NewField creates a new field access expression.
func (e *Exprs) NewField(span source.Span, target ExprID, field source.StringID) ExprID {
	payload := e.Fields.Allocate(ExprFieldData{Target: target, Field: field})
	return e.new(ExprField, span, PayloadID(payload))
}

// Field returns the field data for the given expression ID.
func (e *Exprs) Field(id ExprID) (*ExprFieldData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprField {
		return nil, false
	}
	return e.Fields.Get(uint32(expr.Payload)), true
}

// NewIndex creates a new index expression.
func (e *Exprs) NewIndex(span source.Span, target, index ExprID) ExprID {
	payload := e.Indices.Allocate(ExprIndexData{Target: target, Index: index})
	return e.new(ExprIndex, span, PayloadID(payload))
}

// Index returns the index data for the given expression ID.
func (e *Exprs) Index(id ExprID) (*ExprIndexData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprIndex {
		return nil, false
	}
	return e.Indices.Get(uint32(expr.Payload)), true
}

// NewCast creates a new cast expression.
func (e *Exprs) NewCast(span source.Span, value ExprID, typ source.StringID, typeSpan source.Span) ExprID {
	payload := e.Casts.Allocate(ExprCastData{Value: value, Type: typ, TypeSpan: typeSpan})
	return e.new(ExprCast, span, PayloadID(payload))
}

// Cast returns the cast data for the given expression ID.
func (e *Exprs) Cast(id ExprID) (*ExprCastData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprCast {
		return nil, false
	}
	return e.Casts.Get(uint32(expr.Payload)), true
}

// NewParen creates a new parenthesized expression.
func (e *Exprs) NewParen(span source.Span, inner ExprID) ExprID {
	payload := e.Parens.Allocate(ExprParenData{Inner: inner})
	return e.new(ExprParen, span, PayloadID(payload))
}

// Paren returns the paren data for the given expression ID.
func (e *Exprs) Paren(id ExprID) (*ExprParenData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprParen {
		return nil, false
	}
	return e.Parens.Get(uint32(expr.Payload)), true
}

// NewTuple creates a new tuple expression.
func (e *Exprs) NewTuple(span source.Span, elems []ExprID) ExprID {
	payload := e.Tuples.Allocate(ExprTupleData{Elems: append([]ExprID(nil), elems...)})
	return e.new(ExprTuple, span, PayloadID(payload))
}

// Tuple returns the tuple data for the given expression ID.
func (e *Exprs) Tuple(id ExprID) (*ExprTupleData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprTuple {
		return nil, false
	}
	return e.Tuples.Get(uint32(expr.Payload)), true
}

// NewArray creates a new array expression.
func (e *Exprs) NewArray(span source.Span, elems []ExprID) ExprID {
	payload := e.Arrays.Allocate(ExprArrayData{Elems: append([]ExprID(nil), elems...)})
	return e.new(ExprArray, span, PayloadID(payload))
}

// Array returns the array data for the given expression ID.
func (e *Exprs) Array(id ExprID) (*ExprArrayData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprArray {
		return nil, false
	}
	return e.Arrays.Get(uint32(expr.Payload)), true
}

// NewRepeat creates a new array repeat expression.
func (e *Exprs) NewRepeat(span source.Span, elem, length ExprID) ExprID {
	payload := e.Repeats.Allocate(ExprRepeatData{Elem: elem, Length: length})
	return e.new(ExprRepeat, span, PayloadID(payload))
}

// Repeat returns the repeat data for the given expression ID.
func (e *Exprs) Repeat(id ExprID) (*ExprRepeatData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprRepeat {
		return nil, false
	}
	return e.Repeats.Get(uint32(expr.Payload)), true
}

// NewRange creates a new range expression.
func (e *Exprs) NewRange(span source.Span, start, end ExprID, inclusive bool) ExprID {
	payload := e.Ranges.Allocate(ExprRangeData{Start: start, End: end, Inclusive: inclusive})
	return e.new(ExprRange, span, PayloadID(payload))
}

// Range returns the range data for the given expression ID.
func (e *Exprs) Range(id ExprID) (*ExprRangeData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprRange {
		return nil, false
	}
	return e.Ranges.Get(uint32(expr.Payload)), true
}

// NewReference creates a new reference expression.
func (e *Exprs) NewReference(span source.Span, mutable bool, operand ExprID) ExprID {
	payload := e.References.Allocate(ExprReferenceData{Mutable: mutable, Operand: operand})
	return e.new(ExprReference, span, PayloadID(payload))
}

// Reference returns the reference data for the given expression ID.
func (e *Exprs) Reference(id ExprID) (*ExprReferenceData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprReference {
		return nil, false
	}
	return e.References.Get(uint32(expr.Payload)), true
}

// NewTry creates a new try (postfix ?) expression.
func (e *Exprs) NewTry(span source.Span, operand ExprID) ExprID {
	payload := e.Tries.Allocate(ExprTryData{Operand: operand})
	return e.new(ExprTry, span, PayloadID(payload))
}

// Try returns the try data for the given expression ID.
func (e *Exprs) Try(id ExprID) (*ExprTryData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprTry {
		return nil, false
	}
	return e.Tries.Get(uint32(expr.Payload)), true
}

// NewAwait creates a new await expression.
func (e *Exprs) NewAwait(span source.Span, operand ExprID) ExprID {
	payload := e.Awaits.Allocate(ExprAwaitData{Operand: operand})
	return e.new(ExprAwait, span, PayloadID(payload))
}

// Await returns the await data for the given expression ID.
func (e *Exprs) Await(id ExprID) (*ExprAwaitData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprAwait {
		return nil, false
	}
	return e.Awaits.Get(uint32(expr.Payload)), true
}

// NewClosure creates a new closure expression.
func (e *Exprs) NewClosure(span source.Span, paramsSpan source.Span, body ExprID) ExprID {
	payload := e.Closures.Allocate(ExprClosureData{ParamsSpan: paramsSpan, Body: body})
	return e.new(ExprClosure, span, PayloadID(payload))
}

// Closure returns the closure data for the given expression ID.
func (e *Exprs) Closure(id ExprID) (*ExprClosureData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprClosure {
		return nil, false
	}
	return e.Closures.Get(uint32(expr.Payload)), true
}

// NewMacroCall creates a new macro call expression.
func (e *Exprs) NewMacroCall(span source.Span, pathSpan, argsSpan source.Span) ExprID {
	payload := e.MacroCalls.Allocate(ExprMacroCallData{PathSpan: pathSpan, ArgsSpan: argsSpan})
	return e.new(ExprMacroCall, span, PayloadID(payload))
}

// MacroCall returns the macro call data for the given expression ID.
func (e *Exprs) MacroCall(id ExprID) (*ExprMacroCallData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprMacroCall {
		return nil, false
	}
	return e.MacroCalls.Get(uint32(expr.Payload)), true
}

// NewBlock creates a new block expression.
func (e *Exprs) NewBlock(span source.Span, stmts []StmtID, tail ExprID) ExprID {
	payload := e.Blocks.Allocate(ExprBlockData{
		Stmts: append([]StmtID(nil), stmts...),
		Tail:  tail,
	})
	return e.new(ExprBlock, span, PayloadID(payload))
}

// Block returns the block data for the given expression ID.
func (e *Exprs) Block(id ExprID) (*ExprBlockData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprBlock {
		return nil, false
	}
	return e.Blocks.Get(uint32(expr.Payload)), true
}

// NewConst creates a new const block expression.
func (e *Exprs) NewConst(span source.Span, block ExprID) ExprID {
	payload := e.Consts.Allocate(ExprConstData{Block: block})
	return e.new(ExprConst, span, PayloadID(payload))
}

// Const returns the const block data for the given expression ID.
func (e *Exprs) Const(id ExprID) (*ExprConstData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprConst {
		return nil, false
	}
	return e.Consts.Get(uint32(expr.Payload)), true
}

// NewUnsafe creates a new unsafe block expression.
func (e *Exprs) NewUnsafe(span source.Span, block ExprID) ExprID {
	payload := e.Unsafes.Allocate(ExprUnsafeData{Block: block})
	return e.new(ExprUnsafe, span, PayloadID(payload))
}

// Unsafe returns the unsafe block data for the given expression ID.
func (e *Exprs) Unsafe(id ExprID) (*ExprUnsafeData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprUnsafe {
		return nil, false
	}
	return e.Unsafes.Get(uint32(expr.Payload)), true
}

// NewIf creates a new if expression.
func (e *Exprs) NewIf(span source.Span, cond, then, els ExprID) ExprID {
	payload := e.Ifs.Allocate(ExprIfData{Cond: cond, Then: then, Else: els})
	return e.new(ExprIf, span, PayloadID(payload))
}

// If returns the if data for the given expression ID.
func (e *Exprs) If(id ExprID) (*ExprIfData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprIf {
		return nil, false
	}
	return e.Ifs.Get(uint32(expr.Payload)), true
}

// NewMatch creates a new match expression.
func (e *Exprs) NewMatch(span source.Span, scrutinee ExprID, arms []MatchArm) ExprID {
	payload := e.Matches.Allocate(ExprMatchData{
		Scrutinee: scrutinee,
		Arms:      append([]MatchArm(nil), arms...),
	})
	return e.new(ExprMatch, span, PayloadID(payload))
}

// Match returns the match data for the given expression ID.
func (e *Exprs) Match(id ExprID) (*ExprMatchData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprMatch {
		return nil, false
	}
	return e.Matches.Get(uint32(expr.Payload)), true
}

// NewLoop creates a new loop expression.
func (e *Exprs) NewLoop(span source.Span, body ExprID) ExprID {
	payload := e.Loops.Allocate(ExprLoopData{Body: body})
	return e.new(ExprLoop, span, PayloadID(payload))
}

// Loop returns the loop data for the given expression ID.
func (e *Exprs) Loop(id ExprID) (*ExprLoopData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprLoop {
		return nil, false
	}
	return e.Loops.Get(uint32(expr.Payload)), true
}

// NewWhile creates a new while loop expression.
func (e *Exprs) NewWhile(span source.Span, cond, body ExprID) ExprID {
	payload := e.Whiles.Allocate(ExprWhileData{Cond: cond, Body: body})
	return e.new(ExprWhile, span, PayloadID(payload))
}

// While returns the while data for the given expression ID.
func (e *Exprs) While(id ExprID) (*ExprWhileData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprWhile {
		return nil, false
	}
	return e.Whiles.Get(uint32(expr.Payload)), true
}

// NewFor creates a new for loop expression.
func (e *Exprs) NewFor(span source.Span, patSpan source.Span, iter, body ExprID) ExprID {
	payload := e.Fors.Allocate(ExprForData{PatSpan: patSpan, Iter: iter, Body: body})
	return e.new(ExprForLoop, span, PayloadID(payload))
}

// For returns the for loop data for the given expression ID.
func (e *Exprs) For(id ExprID) (*ExprForData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprForLoop {
		return nil, false
	}
	return e.Fors.Get(uint32(expr.Payload)), true
}

// NewAssign creates a new assignment expression.
func (e *Exprs) NewAssign(span source.Span, op ExprAssignOp, target, value ExprID) ExprID {
	payload := e.Assigns.Allocate(ExprAssignData{Op: op, Target: target, Value: value})
	return e.new(ExprAssign, span, PayloadID(payload))
}

// Assign returns the assignment data for the given expression ID.
func (e *Exprs) Assign(id ExprID) (*ExprAssignData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprAssign {
		return nil, false
	}
	return e.Assigns.Get(uint32(expr.Payload)), true
}

// NewReturn creates a new return expression.
func (e *Exprs) NewReturn(span source.Span, value ExprID) ExprID {
	payload := e.Returns.Allocate(ExprReturnData{Value: value})
	return e.new(ExprReturn, span, PayloadID(payload))
}

// Return returns the return data for the given expression ID.
func (e *Exprs) Return(id ExprID) (*ExprReturnData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprReturn {
		return nil, false
	}
	return e.Returns.Get(uint32(expr.Payload)), true
}

// NewBreak creates a new break expression.
func (e *Exprs) NewBreak(span source.Span, value ExprID) ExprID {
	payload := e.Breaks.Allocate(ExprBreakData{Value: value})
	return e.new(ExprBreak, span, PayloadID(payload))
}

// Break returns the break data for the given expression ID.
func (e *Exprs) Break(id ExprID) (*ExprBreakData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprBreak {
		return nil, false
	}
	return e.Breaks.Get(uint32(expr.Payload)), true
}

// NewContinue creates a new continue expression. Continue carries no payload.
func (e *Exprs) NewContinue(span source.Span) ExprID {
	return e.new(ExprContinue, span, NoPayloadID)
}

// NewLet creates a new let binding expression.
func (e *Exprs) NewLet(span source.Span, patSpan source.Span, value ExprID) ExprID {
	payload := e.Lets.Allocate(ExprLetData{PatSpan: patSpan, Value: value})
	return e.new(ExprLet, span, PayloadID(payload))
}

// Let returns the let binding data for the given expression ID.
func (e *Exprs) Let(id ExprID) (*ExprLetData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprLet {
		return nil, false
	}
	return e.Lets.Get(uint32(expr.Payload)), true
}

// NewStruct creates a new struct literal expression.
func (e *Exprs) NewStruct(span source.Span, pathSpan, bodySpan source.Span) ExprID {
	payload := e.Structs.Allocate(ExprStructData{PathSpan: pathSpan, BodySpan: bodySpan})
	return e.new(ExprStruct, span, PayloadID(payload))
}

// Struct returns the struct literal data for the given expression ID.
func (e *Exprs) Struct(id ExprID) (*ExprStructData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprStruct {
		return nil, false
	}
	return e.Structs.Get(uint32(expr.Payload)), true
}

// NewAsync creates a new async block expression.
func (e *Exprs) NewAsync(span source.Span, block ExprID) ExprID {
	payload := e.Asyncs.Allocate(ExprAsyncData{Block: block})
	return e.new(ExprAsync, span, PayloadID(payload))
}

// Async returns the async block data for the given expression ID.
func (e *Exprs) Async(id ExprID) (*ExprAsyncData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprAsync {
		return nil, false
	}
	return e.Asyncs.Get(uint32(expr.Payload)), true
}
