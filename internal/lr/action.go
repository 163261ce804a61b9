package lr

import (
	"fmt"

	"github.com/dekarrin/cfgrecon/internal/cfgerr"
	"github.com/dekarrin/cfgrecon/internal/grammar"
)

// ActionKind tags the four possible ACTION table entries (spec §4.6).
type ActionKind int

const (
	Error ActionKind = iota
	Shift
	Reduce
	Accept
)

// Action is one ACTION[state, terminal] table entry.
type Action struct {
	Kind  ActionKind
	State int           // destination state, for Shift
	Rule  grammar.Rule  // rule to reduce by, for Reduce
}

// Table holds the ACTION and GOTO tables derived from a canonical LR(1)
// collection (spec §4.6), and the construction fails with
// cfgerr.ErrNotLR1 at the first shift/reduce or reduce/reduce conflict
// rather than tolerating or repairing one - this package recognizes
// LR(1) grammars only, it does not build a generalized parser.
type Table struct {
	action [][]Action     // [state][terminal index]
	goTo   [][]int        // [state][nonterminal index], -1 if absent
	termIx map[rune]int
	ntIx   map[rune]int
}

func index(symbols []rune) map[rune]int {
	ix := make(map[rune]int, len(symbols))
	for i, s := range symbols {
		ix[s] = i
	}
	return ix
}

// BuildTable constructs the ACTION/GOTO tables for the canonical LR(1)
// collection a of augmented grammar g.
func BuildTable(g grammar.Grammar, a Automaton) (*Table, error) {
	terms := g.Terminals()
	// The spec's end-of-input marker acts as an extra terminal column in
	// ACTION, the way tunaq's CLR1 builder reserves a "$" column distinct
	// from the grammar's own terminal alphabet.
	terms = append(append([]rune{}, terms...), grammar.EndOfInput)
	nts := g.NonTerminals()

	t := &Table{
		action: make([][]Action, len(a.States)),
		goTo:   make([][]int, len(a.States)),
		termIx: index(terms),
		ntIx:   index(nts),
	}

	for i := range a.States {
		t.action[i] = make([]Action, len(terms))
		t.goTo[i] = make([]int, len(nts))
		for j := range t.goTo[i] {
			t.goTo[i][j] = -1
		}
	}

	for i, state := range a.States {
		for sym, dest := range state.Goto {
			if g.IsTerminal(sym) {
				if err := t.setAction(i, sym, Action{Kind: Shift, State: dest}); err != nil {
					return nil, err
				}
			} else {
				t.goTo[i][t.ntIx[sym]] = dest
			}
		}

		for it := range state.Items {
			if !it.Complete() {
				continue
			}
			if it.NonTerminal == g.Start() {
				if it.Lookahead == grammar.EndOfInput {
					if err := t.setAction(i, grammar.EndOfInput, Action{Kind: Accept}); err != nil {
						return nil, err
					}
				}
				continue
			}
			rule := grammar.Rule{NonTerminal: it.NonTerminal, Production: it.Consumed}
			if err := t.setAction(i, it.Lookahead, Action{Kind: Reduce, Rule: rule}); err != nil {
				return nil, err
			}
		}
	}

	return t, nil
}

// setAction writes act into ACTION[state, sym], failing with
// cfgerr.ErrNotLR1 if a different, already-set action occupies that
// cell (spec §4.6's shift/reduce and reduce/reduce conflict detection).
func (t *Table) setAction(state int, sym rune, act Action) error {
	col := t.termIx[sym]
	existing := t.action[state][col]
	if existing.Kind == Error {
		t.action[state][col] = act
		return nil
	}
	if existing == act {
		return nil
	}
	return cfgerr.New(
		fmt.Sprintf("conflicting actions in state %d on symbol %q: %v vs %v", state, sym, existing, act),
		cfgerr.ErrNotLR1,
	)
}

// Lookup returns ACTION[state, sym].
func (t *Table) Lookup(state int, sym rune) Action {
	col, ok := t.termIx[sym]
	if !ok {
		return Action{Kind: Error}
	}
	return t.action[state][col]
}

// GoTo returns GOTO[state, nonTerminal], or -1 if undefined.
func (t *Table) GoTo(state int, nonTerminal rune) int {
	col, ok := t.ntIx[nonTerminal]
	if !ok {
		return -1
	}
	return t.goTo[state][col]
}
