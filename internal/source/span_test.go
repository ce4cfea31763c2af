package source

import "testing"

func TestSpanCover(t *testing.T) {
	a := Span{File: 1, Start: 4, End: 8}
	b := Span{File: 1, Start: 2, End: 6}

	got := a.Cover(b)
	if got.Start != 2 || got.End != 8 {
		t.Errorf("Cover = %v, want 1:2-8", got)
	}

	other := Span{File: 2, Start: 0, End: 100}
	got = a.Cover(other)
	if got != a {
		t.Errorf("Cover across files changed the span: %v", got)
	}
}

func TestSpanEmptyLen(t *testing.T) {
	s := Span{File: 0, Start: 5, End: 5}
	if !s.Empty() {
		t.Error("expected empty span")
	}
	s.End = 9
	if s.Empty() || s.Len() != 4 {
		t.Errorf("Len = %d, want 4", s.Len())
	}
}
