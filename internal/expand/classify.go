package expand

import (
	"fmt"
	"strconv"
	"strings"

	"oneassert/internal/ast"
)

// classify dispatches on the expression's shape and returns the
// predicate code that replaces it. Side effects accumulate on st:
// hoisted bindings, pending value lines, cause lines, negation depth.
//
// Shapes fall into four policies: capture operands and rebuild the
// node over the bindings; recurse through a wrapper; pass the node
// through untouched; or reject it as non-boolean.
func (x *Expander) classify(st *state, id ast.ExprID) (code, bool) {
	expr := x.arenas.Exprs.Get(id)
	switch expr.Kind {
	case ast.ExprParen:
		d, _ := x.arenas.Exprs.Paren(id)
		return x.classify(st, d.Inner)

	case ast.ExprBinary:
		return x.classifyBinary(st, id)
	case ast.ExprUnary:
		return x.classifyUnary(st, id)
	case ast.ExprCall:
		return x.classifyCall(st, id)
	case ast.ExprMethodCall:
		return x.classifyMethodCall(st, id)
	case ast.ExprIndex:
		return x.classifyIndex(st, id)
	case ast.ExprCast:
		return x.classifyCast(st, id)

	case ast.ExprBlock:
		return x.classifyBlock(st, id)
	case ast.ExprConst:
		d, _ := x.arenas.Exprs.Const(id)
		return x.classify(st, d.Block)
	case ast.ExprUnsafe:
		d, _ := x.arenas.Exprs.Unsafe(id)
		x.hoisted = true
		return x.classify(st, d.Block)
	case ast.ExprIf:
		return x.classifyIf(st, id)
	case ast.ExprMatch:
		return x.classifyMatch(st, id)

	case ast.ExprAssign, ast.ExprAsync, ast.ExprBreak, ast.ExprContinue,
		ast.ExprForLoop, ast.ExprLet, ast.ExprReturn, ast.ExprWhile,
		ast.ExprStruct:
		x.reject(expr)
		return nil, false

	default:
		// Opaque boolean producers: literals, names, field reads,
		// closures, aggregates, ?, .await, macro calls, loops. The
		// node runs unmodified.
		return x.exprCode(id), true
	}
}

// classifyBinary captures both operands and rebuilds the operator over
// the bindings, the operator token keeping its own span.
func (x *Expander) classifyBinary(st *state, id ast.ExprID) (code, bool) {
	d, _ := x.arenas.Exprs.Binary(id)
	left := x.capture(st, "left", d.Left)
	right := x.capture(st, "right", d.Right)
	op := code{{text: d.Op.String(), span: d.OpSpan}}
	return join(raw(left+" "), op, raw(" "+right)), true
}

// classifyUnary handles the three prefix operators. Negation is
// transparent: the operand is classified in place, its value bound,
// and the binding re-negated, with a marker line recording that the
// report reads inverted. Arithmetic negation and dereference capture
// the operand as written.
func (x *Expander) classifyUnary(st *state, id ast.ExprID) (code, bool) {
	d, _ := x.arenas.Exprs.Unary(id)
	if d.Op == ast.ExprUnaryNot {
		st.addPending("assertion negated", raw("true"))
		st.negation++
		inner, ok := x.classify(st, d.Operand)
		if !ok {
			return nil, false
		}
		v := x.nextIdent()
		st.addSetup(join(raw("let "+v+" = "), inner, raw(";")))
		return raw("!" + v), true
	}
	operand := x.capture(st, "original", d.Operand)
	return raw(d.Op.String() + operand), true
}

// classifyCall captures every argument; the callee runs as written. A
// zero-argument call has nothing to report and passes through whole.
func (x *Expander) classifyCall(st *state, id ast.ExprID) (code, bool) {
	d, _ := x.arenas.Exprs.Call(id)
	if len(d.Args) == 0 {
		return x.exprCode(id), true
	}
	idents := x.captureArgs(st, d.Args)
	return join(x.exprCode(d.Callee), raw("("+strings.Join(idents, ", ")+")")), true
}

// classifyMethodCall captures the receiver as "object", records the
// method name as a static line, and captures the arguments.
func (x *Expander) classifyMethodCall(st *state, id ast.ExprID) (code, bool) {
	d, _ := x.arenas.Exprs.MethodCall(id)
	obj := x.capture(st, "object", d.Receiver)
	name := x.arenas.StringsInterner.MustLookup(d.Method)
	st.addPending("method", raw(strconv.Quote(name)))
	idents := x.captureArgs(st, d.Args)
	method := code{{text: name, span: d.MethodSpan}}
	return join(raw(obj+"."), method, raw("("+strings.Join(idents, ", ")+")")), true
}

// captureArgs captures a call's arguments as "arg N" lines, indices
// right-aligned to the widest one.
func (x *Expander) captureArgs(st *state, args []ast.ExprID) []string {
	width := len(strconv.Itoa(len(args) - 1))
	idents := make([]string, len(args))
	for i, arg := range args {
		idents[i] = x.capture(st, fmt.Sprintf("arg %*d", width, i), arg)
	}
	return idents
}

// classifyIndex captures a computed index; the indexed value runs as
// written. A literal index adds nothing a reader cannot already see,
// so the whole node passes through.
func (x *Expander) classifyIndex(st *state, id ast.ExprID) (code, bool) {
	d, _ := x.arenas.Exprs.Index(id)
	if x.arenas.Exprs.Get(d.Index).Kind == ast.ExprLit {
		return x.exprCode(id), true
	}
	index := x.capture(st, "index", d.Index)
	return join(x.exprCode(d.Target), raw("["+index+"]")), true
}

// classifyCast captures the pre-cast value of a cast to bool; casts to
// any other type cannot themselves be the condition's last step and
// pass through whole.
func (x *Expander) classifyCast(st *state, id ast.ExprID) (code, bool) {
	d, _ := x.arenas.Exprs.Cast(id)
	if x.arenas.StringsInterner.MustLookup(d.Type) != "bool" {
		return x.exprCode(id), true
	}
	input := x.capture(st, "input", d.Value)
	typ := code{{text: "bool", span: d.TypeSpan}}
	return join(raw(input+" as "), typ), true
}
