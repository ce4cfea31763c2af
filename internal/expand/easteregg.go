package expand

import (
	"oneassert/internal/source"
)

// Flavor messages for a literal `true` condition. The branch that
// prints them is unreachable, so the only job here is to pick one
// deterministically per call site.
var flavorMessages = []string{
	"congratulations, you broke boolean logic: `true` was false",
	"the impossible happened: `true` did not evaluate to true",
	"`true` was false; consider checking the laws of logic",
	"this assertion of `true` failed; reality may be unreliable today",
	"`true` turned out to be false; please file a bug against mathematics",
}

// flavorMessage picks the message for a call site by its line number,
// so repeated runs of the same file agree on the joke.
func (x *Expander) flavorMessage(sp source.Span) string {
	line := uint32(1)
	if x.fs != nil {
		start, _ := x.fs.Resolve(sp)
		line = start.Line
	}
	return flavorMessages[int(line)%len(flavorMessages)]
}
