package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"oneassert/internal/source"
)

// Cursor is a byte-level reader over one source file.
type Cursor struct {
	file *source.File
	off  uint32
}

func NewCursor(file *source.File) Cursor {
	return Cursor{file: file, off: 0}
}

func (c *Cursor) EOF() bool {
	return int(c.off) >= len(c.file.Content)
}

// Peek returns the current byte, or 0 at EOF.
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.file.Content[c.off]
}

// Peek2 returns the current and next byte; ok is false when fewer than
// two bytes remain.
func (c *Cursor) Peek2() (b0, b1 byte, ok bool) {
	if int(c.off)+1 >= len(c.file.Content) {
		return 0, 0, false
	}
	return c.file.Content[c.off], c.file.Content[c.off+1], true
}

func (c *Cursor) Advance() {
	if !c.EOF() {
		c.off++
	}
}

func (c *Cursor) AdvanceN(n uint32) {
	end, err := safecast.Conv[uint32](len(c.file.Content))
	if err != nil {
		panic(fmt.Errorf("file size overflow: %w", err))
	}
	c.off = min(c.off+n, end)
}

func (c *Cursor) Offset() uint32 {
	return c.off
}

// SpanFrom builds a span from a recorded start offset to the current offset.
func (c *Cursor) SpanFrom(start uint32) source.Span {
	return source.Span{File: c.file.ID, Start: start, End: c.off}
}

// Text returns the source bytes between start and the current offset.
func (c *Cursor) Text(start uint32) string {
	return string(c.file.Content[start:c.off])
}
