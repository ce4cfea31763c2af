package expand

import (
	"strings"

	"oneassert/internal/source"
)

// Mapping ties a byte range of generated text back to the source span
// it was copied from.
type Mapping struct {
	GenStart uint32
	GenEnd   uint32
	Source   source.Span
}

// Fragment is the replacement code for one assertion, together with
// the mappings that keep source spans addressable through the rewrite.
type Fragment struct {
	Text     string
	Mappings []Mapping
}

// chunk is one run of generated text. Chunks copied verbatim from the
// input carry the span they came from; synthesized text carries none.
type chunk struct {
	text string
	span source.Span
}

// code is a sequence of chunks, the unit everything below is built in.
type code []chunk

func raw(s string) code {
	return code{{text: s}}
}

func join(parts ...code) code {
	var out code
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// render flattens chunks into a fragment, recording a mapping for
// every chunk that still points at the source.
func render(c code) Fragment {
	var b strings.Builder
	var maps []Mapping
	for _, ch := range c {
		if !ch.span.Empty() {
			start := uint32(b.Len())
			maps = append(maps, Mapping{
				GenStart: start,
				GenEnd:   start + uint32(len(ch.text)),
				Source:   ch.span,
			})
		}
		b.WriteString(ch.text)
	}
	return Fragment{Text: b.String(), Mappings: maps}
}
