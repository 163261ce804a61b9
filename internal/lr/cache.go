package lr

import (
	"github.com/dekarrin/cfgrecon/internal/grammar"
	"github.com/dekarrin/cfgrecon/internal/tablecache"
)

// ToCacheEntry flattens t into the primitive-slice form tablecache
// persists to disk. terms and nts fix the column order of the entry;
// each cell is looked up in t by symbol, so they may be in any order but
// must name the symbols t was built over (terms is g.Terminals() plus
// grammar.EndOfInput, nts is g.NonTerminals(), for the same g
// BuildTable was called with).
func (t *Table) ToCacheEntry(terms, nts []rune) tablecache.Entry {
	numStates := len(t.action)

	e := tablecache.Entry{
		NumStates: numStates,
		Terminals: append([]rune{}, terms...),
		NonTerms:  append([]rune{}, nts...),
	}

	for i := 0; i < numStates; i++ {
		for _, term := range terms {
			act := t.Lookup(i, term)
			e.ActionKind = append(e.ActionKind, int(act.Kind))
			e.ActionState = append(e.ActionState, act.State)
			e.ActionLHS = append(e.ActionLHS, act.Rule.NonTerminal)
			e.ActionRHS = append(e.ActionRHS, string(act.Rule.Production))
		}
		for _, nt := range nts {
			e.Goto = append(e.Goto, t.GoTo(i, nt))
		}
	}

	return e
}

// FromCacheEntry rebuilds a Table from a previously cached Entry. The
// caller is responsible for having verified e was produced from the
// same grammar (tablecache.Key on the grammar's textual encoding is the
// intended guard) - FromCacheEntry does not re-validate LR(1)-ness,
// since a cached entry by construction already passed BuildTable once.
func FromCacheEntry(e tablecache.Entry) *Table {
	t := &Table{
		action: make([][]Action, e.NumStates),
		goTo:   make([][]int, e.NumStates),
		termIx: index(e.Terminals),
		ntIx:   index(e.NonTerms),
	}

	numTerms := len(e.Terminals)
	numNonTerms := len(e.NonTerms)

	for i := 0; i < e.NumStates; i++ {
		t.action[i] = make([]Action, numTerms)
		for j := 0; j < numTerms; j++ {
			k := i*numTerms + j
			t.action[i][j] = Action{
				Kind:  ActionKind(e.ActionKind[k]),
				State: e.ActionState[k],
				Rule:  grammar.Rule{NonTerminal: e.ActionLHS[k], Production: grammar.Production(e.ActionRHS[k])},
			}
		}

		t.goTo[i] = make([]int, numNonTerms)
		for j := 0; j < numNonTerms; j++ {
			t.goTo[i][j] = e.Goto[i*numNonTerms+j]
		}
	}

	return t
}
