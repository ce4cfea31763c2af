package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"oneassert/internal/expand"
	"oneassert/internal/source"
)

// MappingJSON links a slice of generated text back to its source span.
type MappingJSON struct {
	GenStart uint32       `json:"gen_start"`
	GenEnd   uint32       `json:"gen_end"`
	Source   LocationJSON `json:"source"`
}

// FragmentJSON is a generated fragment with its source mappings.
type FragmentJSON struct {
	Text     string        `json:"text"`
	Mappings []MappingJSON `json:"mappings,omitempty"`
}

// WriteFragmentJSON prints the generated fragment and its span mappings
// as indented JSON.
func WriteFragmentJSON(w io.Writer, frag expand.Fragment, fs *source.FileSet, opts JSONOpts) error {
	out := FragmentJSON{Text: frag.Text}
	for _, m := range frag.Mappings {
		out.Mappings = append(out.Mappings, MappingJSON{
			GenStart: m.GenStart,
			GenEnd:   m.GenEnd,
			Source:   makeLocation(m.Source, fs, opts),
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

// WriteFragmentMappings prints a per-mapping table: the generated slice
// next to the source text it came from.
func WriteFragmentMappings(w io.Writer, frag expand.Fragment, fs *source.FileSet) {
	for i, m := range frag.Mappings {
		gen := ""
		if int(m.GenEnd) <= len(frag.Text) && m.GenStart <= m.GenEnd {
			gen = frag.Text[m.GenStart:m.GenEnd]
		}
		src := fs.Get(m.Source.File).Snippet(m.Source)
		start, _ := fs.Resolve(m.Source)
		fmt.Fprintf(w, "%3d: [%d:%d] %q <- %d:%d %q\n", i+1, m.GenStart, m.GenEnd, gen, start.Line, start.Col, src)
	}
}
