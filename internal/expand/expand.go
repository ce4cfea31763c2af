// Package expand rewrites a parsed assertion condition into
// instrumented replacement code. The rewrite keeps the condition's
// runtime semantics when it holds and produces a structured failure
// report when it does not: operands are hoisted into bindings
// evaluated exactly once, and the panic template names each captured
// value on its own aligned line.
package expand

import (
	"fmt"
	"strconv"
	"strings"

	"oneassert/internal/ast"
	"oneassert/internal/diag"
	"oneassert/internal/source"
)

// DefaultPrefix is the identifier prefix for generated bindings.
const DefaultPrefix = "__assert"

// Options controls one expansion.
type Options struct {
	// Prefix overrides the identifier prefix for generated bindings.
	// Empty means DefaultPrefix.
	Prefix string
	// NoFlavor disables the joke failure messages for a literal `true`
	// condition; the generic classification handles it instead.
	NoFlavor bool
	// Reporter receives diagnostics for conditions that cannot form a
	// boolean expression. Nil means diag.NopReporter.
	Reporter diag.Reporter
}

// Expander rewrites one assertion invocation. Generated identifiers
// are numbered per invocation, so a fresh Expander is needed for each.
type Expander struct {
	fs      *source.FileSet
	file    *source.File
	arenas  *ast.Builder
	opts    Options
	rep     diag.Reporter
	counter int
	hoisted bool // an unsafe block was consumed; wrap the output in one
}

// New creates an expander over a parsed condition's arenas. fs may be
// nil when line information is not needed.
func New(fs *source.FileSet, file *source.File, arenas *ast.Builder, opts Options) *Expander {
	if opts.Prefix == "" {
		opts.Prefix = DefaultPrefix
	}
	rep := opts.Reporter
	if rep == nil {
		rep = diag.NopReporter{}
	}
	return &Expander{fs: fs, file: file, arenas: arenas, opts: opts, rep: rep}
}

// Expand classifies the condition and assembles the replacement
// fragment. msg is the raw format-message tail after the comma;
// hasMsg distinguishes an empty tail from no tail at all. The second
// return is false when the condition cannot be a boolean expression,
// in which case a diagnostic has been reported.
func (x *Expander) Expand(cond ast.ExprID, msg source.Span, hasMsg bool) (Fragment, bool) {
	expr := x.arenas.Exprs.Get(cond)
	head := x.condensed(cond)

	// Literal conditions never reach generic classification.
	if head == "false" && !hasMsg {
		return x.literalPanic(expr.Span, "surprisingly, `false` did not evaluate to true"), true
	}
	if head == "true" && !hasMsg && !x.opts.NoFlavor {
		return x.literalPanic(expr.Span, x.flavorMessage(expr.Span)), true
	}

	st := &state{template: "assertion `" + escapeBraces(head) + "` failed"}
	if hasMsg {
		st.template += ": {}"
		tail := strings.TrimSpace(x.file.Snippet(msg))
		st.args = append(st.args, join(raw("format!("), code{{text: tail, span: msg}}, raw(")")))
	}

	pred, ok := x.classify(st, cond)
	if !ok {
		return Fragment{}, false
	}
	st.flush()
	return render(x.assemble(st, pred)), true
}

// assemble lays out the outermost block: hoisted setup, then a
// conditional that is a no-op when the predicate holds and panics with
// the accumulated template otherwise. The predicate stays positive so
// type errors keep pointing at the original operands.
func (x *Expander) assemble(st *state, pred code) code {
	out := raw("{\n")
	for _, s := range st.setup {
		out = append(out, raw("    ")...)
		out = append(out, s...)
		out = append(out, raw("\n")...)
	}
	out = append(out, raw("    if ")...)
	out = append(out, pred...)
	out = append(out, raw(" { } else {\n        ")...)
	out = append(out, x.panicCall(st)...)
	out = append(out, raw("\n    }\n}")...)
	if x.hoisted {
		out = join(raw("unsafe "), out)
	}
	return out
}

// panicCall renders `panic!("template", args...);` for a finished state.
// Every `{}` hole must have exactly one argument, in order; a mismatch
// is a classification bug, not an input error.
func (x *Expander) panicCall(st *state) code {
	if n := countPlaceholders(st.template); n != len(st.args) {
		panic(fmt.Sprintf("expand: template has %d placeholders for %d arguments", n, len(st.args)))
	}
	out := raw("panic!(" + quoteTemplate(st.template))
	for _, a := range st.args {
		out = append(out, raw(", ")...)
		out = append(out, a...)
	}
	return append(out, raw(");")...)
}

// literalPanic emits the fixed-message form used for literal
// conditions: the condition itself as predicate, no captures.
func (x *Expander) literalPanic(sp source.Span, msg string) Fragment {
	out := join(
		raw("{\n    if "),
		code{{text: x.file.Snippet(sp), span: sp}},
		raw(" { } else {\n        panic!("+quoteTemplate(msg)+");\n    }\n}"),
	)
	return render(out)
}

// capture hoists a subexpression into a generated binding and queues a
// `name: value` line for it. Returns the binding's identifier.
func (x *Expander) capture(st *state, name string, value ast.ExprID) string {
	ident := x.nextIdent()
	st.addSetup(join(raw("let "+ident+" = "), x.exprCode(value), raw(";")))
	st.addPending(name, raw(ident))
	return ident
}

func (x *Expander) nextIdent() string {
	ident := x.opts.Prefix + strconv.Itoa(x.counter)
	x.counter++
	return ident
}

// exprCode copies a subexpression verbatim, keeping its span mapped.
func (x *Expander) exprCode(id ast.ExprID) code {
	sp := x.arenas.Exprs.Get(id).Span
	return code{{text: x.file.Snippet(sp), span: sp}}
}

// condensed is the one-line message form of a subexpression.
func (x *Expander) condensed(id ast.ExprID) string {
	return collapse(x.file.Snippet(x.arenas.Exprs.Get(id).Span))
}

func (x *Expander) reject(expr *ast.Expr) {
	msg := fmt.Sprintf("expected a boolean expression, found %s", expr.Kind)
	diag.ReportError(x.rep, diag.ExpUnsupportedExpression, expr.Span, msg).Emit()
}
