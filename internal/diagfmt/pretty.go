package diagfmt

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"oneassert/internal/diag"
	"oneassert/internal/source"
)

var (
	sevErrorColor   = color.New(color.FgRed, color.Bold)
	sevWarningColor = color.New(color.FgYellow, color.Bold)
	sevInfoColor    = color.New(color.FgCyan, color.Bold)
	gutterColor     = color.New(color.FgHiBlack)
	underlineColor  = color.New(color.FgRed, color.Bold)
	noteColor       = color.New(color.FgCyan)
)

// Pretty formats diagnostics for humans. It walks bag.Items() in order
// (callers sort beforehand) and prints for each one:
//
//	<path>:<line>:<col>: <SEV> <CODE>: <Message>
//
// followed by the source line with a ^~~~ underline for the primary span
// and, optionally, the notes in the same shape.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		writeHeader(w, fs, d.Primary, d.Severity, d.Code, d.Message, opts)
		writeContext(w, fs, d.Primary, opts)
		if opts.ShowNotes {
			for _, note := range d.Notes {
				writeNote(w, fs, note, opts)
			}
		}
	}
}

func writeHeader(w io.Writer, fs *source.FileSet, span source.Span, sev diag.Severity, code diag.Code, msg string, opts PrettyOpts) {
	sevText := paint(opts.Color, severityColor(sev), sev.String())
	if span.Empty() && span.Start == 0 {
		// Positionless diagnostics (I/O failures) skip the location prefix.
		fmt.Fprintf(w, "%s %s: %s\n", sevText, code.ID(), msg)
		return
	}
	start, _ := fs.Resolve(span)
	path := formatPath(fs.Get(span.File).Path, opts.PathMode)
	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n", path, start.Line, start.Col, sevText, code.ID(), msg)
}

func writeContext(w io.Writer, fs *source.FileSet, span source.Span, opts PrettyOpts) {
	if span.Empty() && span.Start == 0 {
		return
	}
	file := fs.Get(span.File)
	start, end := fs.Resolve(span)

	first, last := start.Line, start.Line
	if ctx := uint32(max(int(opts.Context), 0)); ctx > 0 {
		if first > ctx {
			first -= ctx
		} else {
			first = 1
		}
		last += ctx
	}

	width := len(fmt.Sprint(last))
	for line := first; line <= last; line++ {
		text := file.Line(line)
		if text == "" && line != start.Line {
			continue
		}
		gutter := fmt.Sprintf("%*d | ", width, line)
		fmt.Fprintf(w, "%s%s\n", paint(opts.Color, gutterColor, gutter), text)
		if line == start.Line {
			writeUnderline(w, text, start, end, width, opts)
		}
	}
}

// writeUnderline draws ^~~~ under the span's portion of the primary line.
func writeUnderline(w io.Writer, text string, start, end source.LineCol, width int, opts PrettyOpts) {
	col := int(start.Col)
	if col < 1 {
		col = 1
	}

	length := 1
	if end.Line == start.Line && end.Col > start.Col {
		length = int(end.Col - start.Col)
	} else if end.Line > start.Line {
		// Multi-line span: underline to the end of the first line.
		if rest := len(text) - (col - 1); rest > length {
			length = rest
		}
	}

	// Copy tabs from the line prefix so the caret stays aligned.
	var pad strings.Builder
	for i, r := range text {
		if i >= col-1 {
			break
		}
		if r == '\t' {
			pad.WriteByte('\t')
		} else {
			pad.WriteByte(' ')
		}
	}

	marks := "^" + strings.Repeat("~", length-1)
	gutter := fmt.Sprintf("%*s | ", width, "")
	fmt.Fprintf(w, "%s%s%s\n", paint(opts.Color, gutterColor, gutter), pad.String(), paint(opts.Color, underlineColor, marks))
}

func writeNote(w io.Writer, fs *source.FileSet, note diag.Note, opts PrettyOpts) {
	label := paint(opts.Color, noteColor, "note")
	if note.Span.Empty() && note.Span.Start == 0 {
		fmt.Fprintf(w, "  %s: %s\n", label, note.Msg)
		return
	}
	start, _ := fs.Resolve(note.Span)
	path := formatPath(fs.Get(note.Span.File).Path, opts.PathMode)
	fmt.Fprintf(w, "  %s: %s:%d:%d: %s\n", label, path, start.Line, start.Col, note.Msg)
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return sevErrorColor
	case diag.SevWarning:
		return sevWarningColor
	default:
		return sevInfoColor
	}
}

func paint(enabled bool, c *color.Color, s string) string {
	if !enabled {
		return s
	}
	return c.Sprint(s)
}

func formatPath(path string, mode PathMode) string {
	switch mode {
	case PathModeAbsolute:
		if abs, err := filepath.Abs(path); err == nil {
			return abs
		}
	case PathModeRelative:
		if wd, err := os.Getwd(); err == nil {
			if rel, err := filepath.Rel(wd, path); err == nil {
				return rel
			}
		}
	case PathModeBasename:
		return filepath.Base(path)
	}
	return path
}
