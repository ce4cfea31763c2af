package expand

import (
	"strings"
	"testing"

	"oneassert/internal/ast"
	"oneassert/internal/diag"
	"oneassert/internal/lexer"
	"oneassert/internal/parser"
	"oneassert/internal/source"
)

type expandFixture struct {
	fs   *source.FileSet
	file *source.File
	bag  *diag.Bag
}

func expandInput(t *testing.T, input string, opts Options) (Fragment, *expandFixture, bool) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.oa", []byte(input))
	file := fs.Get(id)
	arenas := ast.NewBuilder(ast.Hints{})
	bag := diag.NewBag(16)
	rep := &diag.BagReporter{Bag: bag}
	res := parser.ParseMacroArgs(fs, lexer.New(file, lexer.Options{}), arenas, parser.Options{Reporter: rep})
	if !res.Cond.IsValid() {
		for _, d := range bag.Items() {
			t.Logf("diag: %s %s", d.Code.ID(), d.Message)
		}
		t.Fatalf("parse failed for %q", input)
	}
	opts.Reporter = rep
	frag, ok := New(fs, file, arenas, opts).Expand(res.Cond, res.MsgSpan, res.HasMsg)
	return frag, &expandFixture{fs: fs, file: file, bag: bag}, ok
}

func expandText(t *testing.T, input string) string {
	t.Helper()
	frag, _, ok := expandInput(t, input, Options{})
	if !ok {
		t.Fatalf("expand failed for %q", input)
	}
	return frag.Text
}

func checkText(t *testing.T, input, want string) {
	t.Helper()
	if got := expandText(t, input); got != want {
		t.Errorf("expand(%q):\ngot:\n%s\nwant:\n%s", input, got, want)
	}
}

// passthrough is the shape produced for conditions that run unmodified.
func passthrough(input string) string {
	return "{\n" +
		"    if " + input + " { } else {\n" +
		"        panic!(\"assertion `" + collapse(input) + "` failed\");\n" +
		"    }\n" +
		"}"
}

func TestExpandBinary(t *testing.T) {
	checkText(t, "a == 2",
		"{\n"+
			"    let __assert0 = a;\n"+
			"    let __assert1 = 2;\n"+
			"    if __assert0 == __assert1 { } else {\n"+
			"        panic!(\"assertion `a == 2` failed\\n     left: {}\\n    right: {}\", __assert0, __assert1);\n"+
			"    }\n"+
			"}")
}

func TestExpandBinaryWithMessage(t *testing.T) {
	checkText(t, "x > 0, \"x = {}\", x",
		"{\n"+
			"    let __assert0 = x;\n"+
			"    let __assert1 = 0;\n"+
			"    if __assert0 > __assert1 { } else {\n"+
			"        panic!(\"assertion `x > 0` failed: {}\\n     left: {}\\n    right: {}\", format!(\"x = {}\", x), __assert0, __assert1);\n"+
			"    }\n"+
			"}")
}

func TestExpandNegatedComparison(t *testing.T) {
	checkText(t, "!(a == 1)",
		"{\n"+
			"    let __assert0 = a;\n"+
			"    let __assert1 = 1;\n"+
			"    let __assert2 = __assert0 == __assert1;\n"+
			"    if !__assert2 { } else {\n"+
			"        panic!(\"assertion `!(a == 1)` failed\\n    assertion negated: {}\\n                 left: {}\\n                right: {}\", true, __assert0, __assert1);\n"+
			"    }\n"+
			"}")
}

func TestExpandDoubleNegation(t *testing.T) {
	checkText(t, "!!b",
		"{\n"+
			"    let __assert0 = b;\n"+
			"    let __assert1 = !__assert0;\n"+
			"    if !__assert1 { } else {\n"+
			"        panic!(\"assertion `!!b` failed\\n    assertion negated: {}\\n    assertion negated: {}\", true, true);\n"+
			"    }\n"+
			"}")
}

func TestExpandDeref(t *testing.T) {
	checkText(t, "*p",
		"{\n"+
			"    let __assert0 = p;\n"+
			"    if *__assert0 { } else {\n"+
			"        panic!(\"assertion `*p` failed\\n    original: {}\", __assert0);\n"+
			"    }\n"+
			"}")
}

func TestExpandCall(t *testing.T) {
	checkText(t, "check(a, b)",
		"{\n"+
			"    let __assert0 = a;\n"+
			"    let __assert1 = b;\n"+
			"    if check(__assert0, __assert1) { } else {\n"+
			"        panic!(\"assertion `check(a, b)` failed\\n    arg 0: {}\\n    arg 1: {}\", __assert0, __assert1);\n"+
			"    }\n"+
			"}")
}

func TestExpandZeroArgCall(t *testing.T) {
	checkText(t, "ready()", passthrough("ready()"))
}

func TestExpandCallWideArgIndex(t *testing.T) {
	got := expandText(t, "f(a0, a1, a2, a3, a4, a5, a6, a7, a8, a9, a10)")
	if !strings.Contains(got, "arg  0: {}") {
		t.Errorf("first index not padded to the widest:\n%s", got)
	}
	if !strings.Contains(got, "arg 10: {}") {
		t.Errorf("missing widest index line:\n%s", got)
	}
}

func TestExpandMethodCall(t *testing.T) {
	checkText(t, "s.contains(\"ell\")",
		"{\n"+
			"    let __assert0 = s;\n"+
			"    let __assert1 = \"ell\";\n"+
			"    if __assert0.contains(__assert1) { } else {\n"+
			"        panic!(\"assertion `s.contains(\\\"ell\\\")` failed\\n    object: {}\\n    method: {}\\n     arg 0: {}\", __assert0, \"contains\", __assert1);\n"+
			"    }\n"+
			"}")
}

func TestExpandIndex(t *testing.T) {
	checkText(t, "arr[idx]",
		"{\n"+
			"    let __assert0 = idx;\n"+
			"    if arr[__assert0] { } else {\n"+
			"        panic!(\"assertion `arr[idx]` failed\\n    index: {}\", __assert0);\n"+
			"    }\n"+
			"}")
}

func TestExpandLiteralIndexPassesThrough(t *testing.T) {
	checkText(t, "arr[2]", passthrough("arr[2]"))
}

func TestExpandCastToBool(t *testing.T) {
	checkText(t, "flag as bool",
		"{\n"+
			"    let __assert0 = flag;\n"+
			"    if __assert0 as bool { } else {\n"+
			"        panic!(\"assertion `flag as bool` failed\\n    input: {}\", __assert0);\n"+
			"    }\n"+
			"}")
}

func TestExpandCastToOtherTypePassesThrough(t *testing.T) {
	checkText(t, "n as u32", passthrough("n as u32"))
}

func TestExpandBlock(t *testing.T) {
	checkText(t, "{ let a = compute(); a == 1 }",
		"{\n"+
			"    let a = compute();\n"+
			"    let __assert0 = a;\n"+
			"    let __assert1 = 1;\n"+
			"    if __assert0 == __assert1 { } else {\n"+
			"        panic!(\"assertion `{{ let a = compute(); a == 1 }}` failed\\n  caused by: block return assertion `a == 1` failed\\n     left: {}\\n    right: {}\", __assert0, __assert1);\n"+
			"    }\n"+
			"}")
}

func TestExpandBlockWithoutTailPassesThrough(t *testing.T) {
	checkText(t, "{ foo(); }", passthrough("{ foo(); }"))
}

func TestExpandConstBlock(t *testing.T) {
	checkText(t, "const { N == 4 }",
		"{\n"+
			"    let __assert0 = N;\n"+
			"    let __assert1 = 4;\n"+
			"    if __assert0 == __assert1 { } else {\n"+
			"        panic!(\"assertion `const {{ N == 4 }}` failed\\n  caused by: block return assertion `N == 4` failed\\n     left: {}\\n    right: {}\", __assert0, __assert1);\n"+
			"    }\n"+
			"}")
}

func TestExpandUnsafeBlock(t *testing.T) {
	checkText(t, "unsafe { launch() }",
		"unsafe {\n"+
			"    if launch() { } else {\n"+
			"        panic!(\"assertion `unsafe {{ launch() }}` failed\\n  caused by: block return assertion `launch()` failed\");\n"+
			"    }\n"+
			"}")
}

func TestExpandIf(t *testing.T) {
	head := "assertion `if x == 1 {{ y == 2 }} else {{ false }}` failed\\n    condition `x == 1`: {}"
	checkText(t, "if x == 1 { y == 2 } else { false }",
		"{\n"+
			"    let __assert0 = x == 1;\n"+
			"    if if __assert0 { let __assert1 = y; let __assert2 = 2; let __assert3 = __assert1 == __assert2; "+
			"if __assert3 { } else { panic!(\""+head+"\\n  caused by: block return assertion `y == 2` failed\\n     left: {}\\n    right: {}\", __assert0, __assert1, __assert2); } __assert3 } "+
			"else { let __assert4 = false; "+
			"if __assert4 { } else { panic!(\""+head+"\\n  caused by: block return assertion `false` failed\", __assert0); } __assert4 } { } else {\n"+
			"        panic!(\""+head+"\", __assert0);\n"+
			"    }\n"+
			"}")
}

func TestExpandNegatedIf(t *testing.T) {
	head := "assertion `!if a {{ true }} else {{ false }}` failed\\n    assertion negated: {}\\n        condition `a`: {}"
	checkText(t, "!if a { true } else { false }",
		"{\n"+
			"    let __assert0 = a;\n"+
			"    let __assert3 = if __assert0 { let __assert1 = true; "+
			"if __assert1 { panic!(\""+head+"\\n  caused by: block return assertion `true` failed\", true, __assert0); } __assert1 } "+
			"else { let __assert2 = false; "+
			"if __assert2 { panic!(\""+head+"\\n  caused by: block return assertion `false` failed\", true, __assert0); } __assert2 };\n"+
			"    if !__assert3 { } else {\n"+
			"        panic!(\""+head+"\", true, __assert0);\n"+
			"    }\n"+
			"}")
}

func TestExpandNegationInsideBranch(t *testing.T) {
	// A `!` in the branch body is folded into the branch predicate and
	// must not flip the embedded panic's polarity: with no negations
	// around the if, every branch still panics when its value is false.
	head := "assertion `if a {{ !x }} else {{ false }}` failed\\n    condition `a`: {}"
	checkText(t, "if a { !x } else { false }",
		"{\n"+
			"    let __assert0 = a;\n"+
			"    if if __assert0 { let __assert1 = x; let __assert2 = !__assert1; "+
			"if __assert2 { } else { panic!(\""+head+"\\n  caused by: block return assertion `!x` failed\\n    assertion negated: {}\", __assert0, true); } __assert2 } "+
			"else { let __assert3 = false; "+
			"if __assert3 { } else { panic!(\""+head+"\\n  caused by: block return assertion `false` failed\", __assert0); } __assert3 } { } else {\n"+
			"        panic!(\""+head+"\", __assert0);\n"+
			"    }\n"+
			"}")
}

func TestExpandElseIfChain(t *testing.T) {
	got := expandText(t, "if a { true } else if b { c == 1 } else { false }")
	if !strings.Contains(got, " else { let ") {
		t.Errorf("else-if condition not scoped inside the else arm:\n%s", got)
	}
	want := "\\n    condition `a`: {}\\n    condition `b`: {}" +
		"\\n  caused by: block return assertion `c == 1` failed" +
		"\\n     left: {}\\n    right: {}"
	if !strings.Contains(got, want) {
		t.Errorf("missing chained condition report %q in:\n%s", want, got)
	}
}

func TestExpandIfWithoutElsePassesThrough(t *testing.T) {
	checkText(t, "if a { true }", passthrough("if a { true }"))
}

func TestExpandMatch(t *testing.T) {
	head := "assertion `match x {{ 1 => true, _ => y == 2, }}` failed\\n    matched value: {}"
	checkText(t, "match x { 1 => true, _ => y == 2, }",
		"{\n"+
			"    let __assert0 = x;\n"+
			"    if match __assert0 { 1 => { let __assert1 = true; "+
			"if __assert1 { } else { panic!(\""+head+"\\n  caused by: match x entered arm `1` where assertion `true` failed\", __assert0); } __assert1 }, "+
			"_ => { let __assert2 = y; let __assert3 = 2; let __assert4 = __assert2 == __assert3; "+
			"if __assert4 { } else { panic!(\""+head+"\\n  caused by: match x entered arm `_` where assertion `y == 2` failed\\n     left: {}\\n    right: {}\", __assert0, __assert2, __assert3); } __assert4 }, } { } else {\n"+
			"        panic!(\""+head+"\", __assert0);\n"+
			"    }\n"+
			"}")
}

func TestExpandNegatedMatchArm(t *testing.T) {
	// One negation around the match: each arm panics when its value is
	// true, including an arm whose own body starts with another `!` —
	// that inner negation belongs to the arm's predicate, not to the
	// polarity of its panic.
	head := "assertion `!match x {{ 1 => true, _ => !(z == 5), }}` failed" +
		"\\n    assertion negated: {}\\n        matched value: {}"
	checkText(t, "!match x { 1 => true, _ => !(z == 5), }",
		"{\n"+
			"    let __assert0 = x;\n"+
			"    let __assert6 = match __assert0 { 1 => { let __assert1 = true; "+
			"if __assert1 { panic!(\""+head+"\\n  caused by: match x entered arm `1` where assertion `true` failed\", true, __assert0); } __assert1 }, "+
			"_ => { let __assert2 = z; let __assert3 = 5; let __assert4 = __assert2 == __assert3; let __assert5 = !__assert4; "+
			"if __assert5 { panic!(\""+head+"\\n  caused by: match x entered arm `_` where assertion `!(z == 5)` failed"+
			"\\n    assertion negated: {}\\n                 left: {}\\n                right: {}\", true, __assert0, true, __assert2, __assert3); } __assert5 }, };\n"+
			"    if !__assert6 { } else {\n"+
			"        panic!(\""+head+"\", true, __assert0);\n"+
			"    }\n"+
			"}")
}

func TestExpandMatchGuardKeptVerbatim(t *testing.T) {
	got := expandText(t, "match v { Some(x) if x > 2 => true, _ => false, }")
	if !strings.Contains(got, "Some(x) if x > 2 => {") {
		t.Errorf("guard not copied into the rewritten arm:\n%s", got)
	}
	if !strings.Contains(got, "entered arm `Some(x) if x > 2` where assertion `true` failed") {
		t.Errorf("guard missing from the cause line:\n%s", got)
	}
}

func TestExpandLiteralFalse(t *testing.T) {
	checkText(t, "false",
		"{\n"+
			"    if false { } else {\n"+
			"        panic!(\"surprisingly, `false` did not evaluate to true\");\n"+
			"    }\n"+
			"}")
}

func TestExpandLiteralFalseWithMessage(t *testing.T) {
	checkText(t, "false, \"ctx\"",
		"{\n"+
			"    if false { } else {\n"+
			"        panic!(\"assertion `false` failed: {}\", format!(\"ctx\"));\n"+
			"    }\n"+
			"}")
}

func TestExpandLiteralTrueFlavor(t *testing.T) {
	got := expandText(t, "true")
	if strings.Contains(got, "assertion `true` failed") {
		t.Errorf("flavor path fell back to the generic message:\n%s", got)
	}
	if !strings.HasPrefix(got, "{\n    if true { } else {") {
		t.Errorf("flavor path must keep the condition as predicate:\n%s", got)
	}
}

func TestExpandLiteralTrueNoFlavor(t *testing.T) {
	frag, _, ok := expandInput(t, "true", Options{NoFlavor: true})
	if !ok {
		t.Fatal("expand failed")
	}
	if frag.Text != passthrough("true") {
		t.Errorf("got:\n%s\nwant:\n%s", frag.Text, passthrough("true"))
	}
}

func TestExpandPassthroughShapes(t *testing.T) {
	inputs := []string{
		"ok",
		"pair.1",
		"config.enabled",
		"foo::bar::READY",
		"maybe()?",
		"fut.await",
		"matches!(x, 1)",
		"loop { break true }",
	}
	for _, input := range inputs {
		if got, want := expandText(t, input), passthrough(input); got != want {
			t.Errorf("expand(%q):\ngot:\n%s\nwant:\n%s", input, got, want)
		}
	}
}

func TestExpandRejectsNonBoolean(t *testing.T) {
	tests := []struct {
		input string
		found string
	}{
		{"x = 1", "assignment"},
		{"while x { }", "while loop"},
		{"return true", "return"},
		{"for i in xs { }", "for loop"},
	}
	for _, tt := range tests {
		frag, fx, ok := expandInput(t, tt.input, Options{})
		if ok {
			t.Errorf("expand(%q) succeeded:\n%s", tt.input, frag.Text)
			continue
		}
		items := fx.bag.Items()
		if len(items) == 0 {
			t.Errorf("expand(%q): no diagnostic reported", tt.input)
			continue
		}
		last := items[len(items)-1]
		if last.Code != diag.ExpUnsupportedExpression {
			t.Errorf("expand(%q): code = %s, want EXP4001", tt.input, last.Code.ID())
		}
		want := "expected a boolean expression, found " + tt.found
		if last.Message != want {
			t.Errorf("expand(%q): message = %q, want %q", tt.input, last.Message, want)
		}
	}
}

func TestExpandRejectsNestedNonBoolean(t *testing.T) {
	_, fx, ok := expandInput(t, "{ setup(); x = 1 }", Options{})
	if ok {
		t.Fatal("nested assignment accepted")
	}
	items := fx.bag.Items()
	if len(items) == 0 || items[len(items)-1].Code != diag.ExpUnsupportedExpression {
		t.Fatalf("missing rejection diagnostic, got %v", items)
	}
}

func TestExpandCustomPrefix(t *testing.T) {
	frag, _, ok := expandInput(t, "a == 2", Options{Prefix: "__oa"})
	if !ok {
		t.Fatal("expand failed")
	}
	if !strings.Contains(frag.Text, "let __oa0 = a;") {
		t.Errorf("custom prefix not used:\n%s", frag.Text)
	}
	if strings.Contains(frag.Text, DefaultPrefix) {
		t.Errorf("default prefix leaked:\n%s", frag.Text)
	}
}

func TestExpandMappingsPointBack(t *testing.T) {
	frag, fx, ok := expandInput(t, "a == 2", Options{})
	if !ok {
		t.Fatal("expand failed")
	}
	if len(frag.Mappings) == 0 {
		t.Fatal("no mappings recorded")
	}
	for _, m := range frag.Mappings {
		got := frag.Text[m.GenStart:m.GenEnd]
		want := fx.file.Snippet(m.Source)
		if got != want {
			t.Errorf("mapping %d-%d: generated %q, source %q", m.GenStart, m.GenEnd, got, want)
		}
	}
}

func TestCollapse(t *testing.T) {
	if got := collapse("a \n\t ==  1"); got != "a == 1" {
		t.Errorf("collapse = %q", got)
	}
}

func TestEscapeBraces(t *testing.T) {
	if got := escapeBraces("{ a }"); got != "{{ a }}" {
		t.Errorf("escapeBraces = %q", got)
	}
}

func TestQuoteTemplate(t *testing.T) {
	if got := quoteTemplate("a\n\"b\""); got != "\"a\\n\\\"b\\\"\"" {
		t.Errorf("quoteTemplate = %q", got)
	}
}

func TestCountPlaceholders(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"{}", 1},
		{"a {} b {}", 2},
		{"{{}} {}", 1},
		{"{{ x }} {} {}", 2},
	}
	for _, tt := range tests {
		if got := countPlaceholders(tt.in); got != tt.want {
			t.Errorf("countPlaceholders(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
