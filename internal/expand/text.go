package expand

import (
	"strings"
)

// collapse normalizes whitespace runs in a source snippet to single
// spaces, so multi-line conditions render on one message line.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// escapeBraces doubles braces so source text survives embedding in a
// format template.
func escapeBraces(s string) string {
	s = strings.ReplaceAll(s, "{", "{{")
	return strings.ReplaceAll(s, "}", "}}")
}

// quoteTemplate renders a template as a double-quoted string literal.
// Only the escapes the target language shares with its source form are
// produced; everything else passes through verbatim.
func quoteTemplate(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// countPlaceholders counts `{}` holes in a template, skipping escaped
// braces.
func countPlaceholders(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		switch {
		case strings.HasPrefix(s[i:], "{{"), strings.HasPrefix(s[i:], "}}"):
			i++
		case strings.HasPrefix(s[i:], "{}"):
			n++
			i++
		}
	}
	return n
}
