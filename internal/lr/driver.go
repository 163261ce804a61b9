package lr

import (
	"github.com/dekarrin/cfgrecon/internal/cfgerr"
	"github.com/dekarrin/cfgrecon/internal/grammar"
)

// run drives the shift/reduce/accept/reject loop of spec §4.7 over the
// ACTION/GOTO tables in t, starting in state 0, against input runes
// followed by an implicit end-of-input marker.
//
// The state stack is the only stack carried: the dot position after a
// reduce is recovered by popping len(production) states rather than by
// tracking a parallel symbol stack, since acceptance never needs the
// symbols themselves - only which state GOTO lands back in.
//
// The only case run reports as cfgerr.ErrInternal is GOTO being
// undefined immediately after a valid reduce: for a table built from a
// genuinely LR(1) grammar this is guaranteed to exist (the state
// exposed by popping the reduced production's length was reached by a
// transition consistent with that same rule), so seeing it undefined
// means table construction is broken. An ordinary "no ACTION entry"
// rejection - the expected outcome for a word outside the language - is
// not an error at all and is reported as a plain false.
func run(t *Table, runes []rune) (bool, error) {
	stack := []int{0}
	pos := 0

	for {
		state := stack[len(stack)-1]
		var sym rune
		if pos < len(runes) {
			sym = runes[pos]
		} else {
			sym = grammar.EndOfInput
		}

		act := t.Lookup(state, sym)
		switch act.Kind {
		case Shift:
			stack = append(stack, act.State)
			pos++
		case Reduce:
			n := act.Rule.Production.Len()
			stack = stack[:len(stack)-n]
			from := stack[len(stack)-1]
			dest := t.GoTo(from, act.Rule.NonTerminal)
			if dest < 0 {
				return false, cfgerr.New("no GOTO entry for the state exposed by a valid reduce", cfgerr.ErrInternal)
			}
			stack = append(stack, dest)
		case Accept:
			return true, nil
		default:
			return false, nil
		}
	}
}

// validateInput returns cfgerr.ErrInvalidInput if any rune of word is
// not a terminal of g.
func validateInput(g grammar.Grammar, runes []rune) error {
	for _, c := range runes {
		if !g.IsTerminal(c) {
			return cfgerr.New("input contains a symbol outside the grammar's terminal alphabet", cfgerr.ErrInvalidInput)
		}
	}
	return nil
}
