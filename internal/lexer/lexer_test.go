package lexer

import (
	"testing"

	"oneassert/internal/source"
	"oneassert/internal/token"
)

func lexAll(t *testing.T, input string) []token.Token {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.oa", []byte(input))
	lx := New(fs.Get(id), Options{})

	var out []token.Token
	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			return out
		}
		out = append(out, tok)
	}
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func expectKinds(t *testing.T, input string, want ...token.Kind) {
	t.Helper()
	got := kinds(lexAll(t, input))
	if len(got) != len(want) {
		t.Fatalf("%q: got %v, want %v", input, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("%q: token %d = %v, want %v", input, i, got[i], want[i])
		}
	}
}

func TestOperators(t *testing.T) {
	expectKinds(t, "a == 2", token.Ident, token.EqEq, token.IntLit)
	expectKinds(t, "a<<=b", token.Ident, token.ShlAssign, token.Ident)
	expectKinds(t, "x=>y", token.Ident, token.FatArrow, token.Ident)
	expectKinds(t, "0..=9", token.IntLit, token.DotDotEq, token.IntLit)
	expectKinds(t, "!b", token.Bang, token.Ident)
	expectKinds(t, "a && !b || c", token.Ident, token.AndAnd, token.Bang, token.Ident, token.OrOr, token.Ident)
}

func TestKeywordsAndIdents(t *testing.T) {
	expectKinds(t, "if x { true } else { false }",
		token.KwIf, token.Ident, token.LBrace, token.KwTrue, token.RBrace,
		token.KwElse, token.LBrace, token.KwFalse, token.RBrace)
	expectKinds(t, "matches match", token.Ident, token.KwMatch)
	expectKinds(t, "_ _x", token.Underscore, token.Ident)
}

func TestPaths(t *testing.T) {
	expectKinds(t, "foo::bar::TRUE",
		token.Ident, token.ColonColon, token.Ident, token.ColonColon, token.Ident)
}

func TestNumbers(t *testing.T) {
	expectKinds(t, "1 2.5 0xFF 0b10 1_000 1e9",
		token.IntLit, token.FloatLit, token.IntLit, token.IntLit, token.IntLit, token.FloatLit)
	// '.' not followed by a digit stays a method-call dot
	expectKinds(t, "1.max", token.IntLit, token.Dot, token.Ident)
}

func TestStrings(t *testing.T) {
	toks := lexAll(t, `s.contains("wor\"ld")`)
	want := []token.Kind{token.Ident, token.Dot, token.Ident, token.LParen, token.StringLit, token.RParen}
	got := kinds(toks)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d = %v, want %v", i, got[i], want[i])
		}
	}
	if toks[4].Text != `"wor\"ld"` {
		t.Errorf("string text = %q", toks[4].Text)
	}
}

func TestCommentsSkipped(t *testing.T) {
	expectKinds(t, "a /* nested /* deep */ */ == // trailing\n 2",
		token.Ident, token.EqEq, token.IntLit)
}

func TestSpans(t *testing.T) {
	toks := lexAll(t, "ab + cd")
	if toks[0].Span.Start != 0 || toks[0].Span.End != 2 {
		t.Errorf("ab span = %v", toks[0].Span)
	}
	if toks[2].Span.Start != 5 || toks[2].Span.End != 7 {
		t.Errorf("cd span = %v", toks[2].Span)
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.oa", []byte("x + y"))
	lx := New(fs.Get(id), Options{})

	if lx.Peek().Kind != token.Ident || lx.Peek().Kind != token.Ident {
		t.Fatal("Peek consumed the token")
	}
	if lx.Next().Kind != token.Ident {
		t.Fatal("Next after Peek broken")
	}
	if lx.Peek().Kind != token.Plus {
		t.Fatal("lookahead out of sync")
	}
}

type collectReporter struct {
	kinds []string
}

func (r *collectReporter) Report(kind string, _ source.Span, _ string) {
	r.kinds = append(r.kinds, kind)
}

func TestUnterminatedString(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.oa", []byte(`"oops`))
	rep := &collectReporter{}
	lx := New(fs.Get(id), Options{Reporter: rep})

	tok := lx.Next()
	if tok.Kind != token.Invalid {
		t.Errorf("kind = %v, want Invalid", tok.Kind)
	}
	if len(rep.kinds) != 1 || rep.kinds[0] != "unterminated-string" {
		t.Errorf("reported = %v", rep.kinds)
	}
}
