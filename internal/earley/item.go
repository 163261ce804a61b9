// Package earley implements the Earley chart-construction recognizer
// (spec §4.3): it accepts any context-free grammar, including ambiguous
// and epsilon-producing ones. It is grounded on the item-set machinery
// tunaq builds for its LR automaton (internal/ictiobus/grammar/item.go,
// internal/tunascript/grammar.go's Production/Rule), generalized to
// Earley's four-tuple items (A, alpha, k, j) with origin j instead of a
// lookahead.
package earley

import "github.com/dekarrin/cfgrecon/internal/grammar"

// Item is an Earley item (A, alpha, k, j): the rule A -> alpha with the
// dot after the first k symbols of alpha, and origin j (the chart
// position at which this item's recognition began).
//
// Before and after the dot are stored as separate Production values
// (Consumed is alpha[:k], Remaining is alpha[k:]) rather than alpha plus
// an integer dot index. Because every symbol is exactly one rune, this
// split is itself comparable and hashable the same way a plain string
// is, so Item can be used directly as a map key - the structural
// equality/hashing the spec requires falls out of the type system
// rather than needing a hand-rolled Equal/hash pair the way tunaq's
// LR0Item does for its multi-character, slice-based symbols.
type Item struct {
	NonTerminal rune
	Consumed    grammar.Production
	Remaining   grammar.Production
	Origin      int
}

// NextSymbol returns the symbol immediately after the dot and whether
// one exists (false if the item is complete).
func (it Item) NextSymbol() (rune, bool) {
	if it.Remaining == grammar.Epsilon {
		return 0, false
	}
	return it.Remaining.At(0), true
}

// Complete returns whether the dot has reached the end of the
// production.
func (it Item) Complete() bool {
	return it.Remaining == grammar.Epsilon
}

// Advance returns the item with the dot moved one symbol to the right.
// Panics if the item is already complete; callers must check
// NextSymbol/Complete first.
func (it Item) Advance() Item {
	sym := it.Remaining.At(0)
	remaining := it.Remaining.Symbols()[1:]
	return Item{
		NonTerminal: it.NonTerminal,
		Consumed:    it.Consumed + grammar.Production(string(sym)),
		Remaining:   grammar.Production(remaining),
		Origin:      it.Origin,
	}
}

// newItem builds the initial (dot-at-zero) item for rule nonTerminal ->
// production, with the given origin.
func newItem(nonTerminal rune, production grammar.Production, origin int) Item {
	return Item{NonTerminal: nonTerminal, Consumed: grammar.Epsilon, Remaining: production, Origin: origin}
}
