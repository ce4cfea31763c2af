package diagfmt

import (
	"encoding/json"
	"strings"
	"testing"

	"oneassert/internal/diag"
	"oneassert/internal/expand"
	"oneassert/internal/source"
	"oneassert/internal/token"
)

func TestJSONOutput(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("j.oa", []byte("a == == 2\n"))
	bag := testBag(fs, id, 5, 7)

	var buf strings.Builder
	if err := JSON(&buf, bag, fs, JSONOpts{IncludePositions: true}); err != nil {
		t.Fatal(err)
	}

	var out DiagnosticsOutput
	if err := json.Unmarshal([]byte(buf.String()), &out); err != nil {
		t.Fatal(err)
	}
	if out.Count != 1 || len(out.Diagnostics) != 1 {
		t.Fatalf("count = %d, diags = %d", out.Count, len(out.Diagnostics))
	}

	d := out.Diagnostics[0]
	if d.Severity != "ERROR" || d.Code != "SYN2001" {
		t.Errorf("severity/code = %s/%s", d.Severity, d.Code)
	}
	if d.Location.File != "j.oa" || d.Location.StartByte != 5 || d.Location.EndByte != 7 {
		t.Errorf("location = %+v", d.Location)
	}
	if d.Location.StartLine != 1 || d.Location.StartCol != 6 {
		t.Errorf("position = %+v", d.Location)
	}
}

func TestJSONTruncation(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("j.oa", []byte("abc\n"))
	bag := diag.NewBag(8)
	for i := uint32(0); i < 3; i++ {
		bag.Add(diag.NewError(diag.SynUnexpectedToken, source.Span{File: id, Start: i, End: i + 1}, "unexpected token"))
	}

	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{Max: 2})
	if out.Count != 2 || len(out.Diagnostics) != 2 {
		t.Errorf("count = %d, diags = %d", out.Count, len(out.Diagnostics))
	}
	if bag.Len() != 3 {
		t.Errorf("bag truncated to %d", bag.Len())
	}
}

func TestJSONNotesAndFixes(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("j.oa", []byte("x = 1\n"))
	span := source.Span{File: id, Start: 2, End: 3}
	bag := diag.NewBag(4)
	bag.Add(diag.NewError(diag.ExpUnsupportedExpression, span, "unsupported expression").
		WithNote(span, "assignment is a statement").
		WithFix("use a comparison", diag.FixEdit{Span: span, NewText: "=="}))

	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{IncludeNotes: true, IncludeFixes: true})
	d := out.Diagnostics[0]
	if len(d.Notes) != 1 || d.Notes[0].Message != "assignment is a statement" {
		t.Errorf("notes = %+v", d.Notes)
	}
	if len(d.Fixes) != 1 || d.Fixes[0].Title != "use a comparison" || len(d.Fixes[0].Edits) != 1 {
		t.Errorf("fixes = %+v", d.Fixes)
	}
	if d.Fixes[0].Edits[0].NewText != "==" {
		t.Errorf("edit = %+v", d.Fixes[0].Edits[0])
	}
}

func TestFormatTokens(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("t.oa", []byte("a == 2"))
	tokens := []token.Token{
		{Kind: token.Ident, Text: "a", Span: source.Span{File: id, Start: 0, End: 1}},
		{Kind: token.EqEq, Span: source.Span{File: id, Start: 2, End: 4}},
		{Kind: token.IntLit, Text: "2", Span: source.Span{File: id, Start: 5, End: 6}},
		{Kind: token.EOF, Span: source.Span{File: id, Start: 6, End: 6}},
	}

	var pretty strings.Builder
	if err := FormatTokensPretty(&pretty, tokens, fs); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(pretty.String(), `"a" at 1:1-1:2`) {
		t.Errorf("pretty output:\n%s", pretty.String())
	}

	var raw strings.Builder
	if err := FormatTokensJSON(&raw, tokens); err != nil {
		t.Fatal(err)
	}
	var out []TokenOutput
	if err := json.Unmarshal([]byte(raw.String()), &out); err != nil {
		t.Fatal(err)
	}
	if len(out) != 4 || out[1].Kind != token.EqEq.String() {
		t.Errorf("json tokens = %+v", out)
	}
}

func TestWriteFragmentJSON(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("f.oa", []byte("a == 2"))
	frag := expand.Fragment{
		Text: "let left = a;",
		Mappings: []expand.Mapping{
			{GenStart: 11, GenEnd: 12, Source: source.Span{File: id, Start: 0, End: 1}},
		},
	}

	var buf strings.Builder
	if err := WriteFragmentJSON(&buf, frag, fs, JSONOpts{IncludePositions: true}); err != nil {
		t.Fatal(err)
	}
	var out FragmentJSON
	if err := json.Unmarshal([]byte(buf.String()), &out); err != nil {
		t.Fatal(err)
	}
	if out.Text != frag.Text || len(out.Mappings) != 1 {
		t.Fatalf("fragment = %+v", out)
	}
	if out.Mappings[0].Source.File != "f.oa" || out.Mappings[0].Source.StartLine != 1 {
		t.Errorf("mapping = %+v", out.Mappings[0])
	}

	var table strings.Builder
	WriteFragmentMappings(&table, frag, fs)
	if !strings.Contains(table.String(), `"a" <- 1:1 "a"`) {
		t.Errorf("table:\n%s", table.String())
	}
}
