package expand

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// pending is a captured value waiting to be flushed into the message
// template as one `name: value` line.
type pending struct {
	name string
	arg  code
}

// state accumulates one panic message while a condition is classified:
// setup statements hoisted in front of the predicate, the message
// template with its ordered arguments, and the not-yet-flushed value
// lines. Branching constructs fork it so each branch grows its own
// setup and finishes its own panic, while inheriting everything
// captured on the way down.
type state struct {
	setup    []code
	template string
	args     []code
	pendings []pending
	negation int
}

// fork copies the message context for a branch. Setup is not carried
// over: a branch hoists its own bindings inside its own block.
func (st *state) fork() *state {
	return &state{
		template: st.template,
		args:     append([]code(nil), st.args...),
		pendings: append([]pending(nil), st.pendings...),
		negation: st.negation,
	}
}

func (st *state) addSetup(c code) {
	st.setup = append(st.setup, c)
}

func (st *state) addPending(name string, arg code) {
	st.pendings = append(st.pendings, pending{name: name, arg: arg})
}

// flush appends all pending value lines to the template as one block,
// right-aligning the names to the widest one so the values line up.
func (st *state) flush() {
	if len(st.pendings) == 0 {
		return
	}
	width := 0
	for _, p := range st.pendings {
		if w := runewidth.StringWidth(p.name); w > width {
			width = w
		}
	}
	for _, p := range st.pendings {
		pad := width - runewidth.StringWidth(p.name)
		st.template += "\n    " + strings.Repeat(" ", pad) + escapeBraces(p.name) + ": {}"
		st.args = append(st.args, p.arg)
	}
	st.pendings = nil
}

// causedBy closes the current alignment block and appends a cause line.
// Value lines captured afterwards start a fresh block under it.
func (st *state) causedBy(line string) {
	st.flush()
	st.template += "\n  caused by: " + escapeBraces(line)
}
