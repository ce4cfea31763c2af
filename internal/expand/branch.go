package expand

import (
	"oneassert/internal/ast"
)

// classifyBlock hoists a block's statements in front of the predicate
// and classifies the tail under a cause line. A block without a tail
// produces no boolean of its own parts and passes through whole.
func (x *Expander) classifyBlock(st *state, id ast.ExprID) (code, bool) {
	d, _ := x.arenas.Exprs.Block(id)
	if !d.Tail.IsValid() {
		return x.exprCode(id), true
	}
	for _, sid := range d.Stmts {
		sp := x.arenas.Stmts.Get(sid).Span
		st.addSetup(code{{text: x.file.Snippet(sp), span: sp}})
	}
	st.causedBy("block return assertion `" + x.condensed(d.Tail) + "` failed")
	return x.classify(st, d.Tail)
}

// classifyIf binds the condition, reports it as a value line, and
// classifies each branch under a fork of the message state. Branches
// embed their own panic, so whichever one runs reports the values on
// its own path; the chain's value feeds the (then unreachable) outer
// check. An if without an else cannot be boolean-typed, so it passes
// through and lets the host compiler say so.
func (x *Expander) classifyIf(st *state, id ast.ExprID) (code, bool) {
	d, _ := x.arenas.Exprs.If(id)
	if !d.Else.IsValid() {
		return x.exprCode(id), true
	}

	cond := x.nextIdent()
	st.addSetup(join(raw("let "+cond+" = "), x.exprCode(d.Cond), raw(";")))
	st.addPending("condition `"+x.condensed(d.Cond)+"`", raw(cond))

	thenCode, ok := x.branch(st, d.Then)
	if !ok {
		return nil, false
	}

	var elseCode code
	if x.arenas.Exprs.Get(d.Else).Kind == ast.ExprIf {
		// else-if: recurse inside the fork so the nested condition's
		// binding stays scoped to this else arm.
		fe := st.fork()
		inner, iok := x.classify(fe, d.Else)
		if !iok {
			return nil, false
		}
		elseCode = join(raw("{ "), inlineSetup(fe), inner, raw(" }"))
	} else {
		elseCode, ok = x.branch(st, d.Else)
		if !ok {
			return nil, false
		}
	}

	return join(raw("if "+cond+" "), thenCode, raw(" else "), elseCode), true
}

// classifyMatch binds the scrutinee, reports it as a value line, and
// classifies each arm body under its own fork and cause line. Patterns
// and guards are copied exactly as written.
func (x *Expander) classifyMatch(st *state, id ast.ExprID) (code, bool) {
	d, _ := x.arenas.Exprs.Match(id)
	scrutinee := x.capture(st, "matched value", d.Scrutinee)
	scrutText := x.condensed(d.Scrutinee)

	out := raw("match " + scrutinee + " {")
	for _, arm := range d.Arms {
		patText := collapse(x.file.Snippet(arm.PatternSpan))
		fa := st.fork()
		enclosing := fa.negation
		fa.causedBy("match " + scrutText + " entered arm `" + patText +
			"` where assertion `" + x.condensed(arm.Body) + "` failed")
		inner, ok := x.classify(fa, arm.Body)
		if !ok {
			return nil, false
		}
		out = append(out, raw(" ")...)
		out = append(out, chunk{text: x.file.Snippet(arm.PatternSpan), span: arm.PatternSpan})
		out = append(out, raw(" => ")...)
		out = append(out, x.embedPanic(fa, inner, enclosing)...)
		out = append(out, raw(",")...)
	}
	return append(out, raw(" }")...), true
}

// branch classifies a branch block under a fork and wraps it so the
// branch panics itself when it decides the assertion's fate.
func (x *Expander) branch(st *state, block ast.ExprID) (code, bool) {
	ft := st.fork()
	enclosing := ft.negation
	pred, ok := x.classify(ft, block)
	if !ok {
		return nil, false
	}
	return x.embedPanic(ft, pred, enclosing), true
}

// embedPanic closes a forked state into a block that evaluates the
// branch predicate, panics on the failing polarity, and yields the
// value. enclosing counts the negations wrapping the branch at fork
// time: under an odd number the branch fails when its value is true,
// otherwise when it is false. Negations inside the branch body are
// already folded into the predicate and must not flip the polarity.
func (x *Expander) embedPanic(ft *state, pred code, enclosing int) code {
	ft.flush()
	value := x.nextIdent()

	out := raw("{ ")
	out = append(out, inlineSetup(ft)...)
	out = append(out, raw("let "+value+" = ")...)
	out = append(out, pred...)
	out = append(out, raw("; ")...)
	if enclosing%2 == 1 {
		out = append(out, raw("if "+value+" { ")...)
		out = append(out, x.panicCall(ft)...)
		out = append(out, raw(" } ")...)
	} else {
		out = append(out, raw("if "+value+" { } else { ")...)
		out = append(out, x.panicCall(ft)...)
		out = append(out, raw(" } ")...)
	}
	return append(out, raw(value+" }")...)
}

// inlineSetup renders a fork's hoisted statements on one line.
func inlineSetup(ft *state) code {
	var out code
	for _, s := range ft.setup {
		out = append(out, s...)
		out = append(out, raw(" ")...)
	}
	return out
}
