// Package lr implements the LR(1) automaton construction (canonical
// item-set collection, ACTION/GOTO tables with conflict detection) and
// its stack-driven driver (spec §4.5-§4.7). It is grounded on
// internal/ictiobus/automaton.NewLR1ViablePrefixDFA and
// internal/ictiobus/parse/clr1.go's constructCanonicalLR1ParseTable,
// generalized the same way internal/earley generalizes the Earley chart:
// single-rune symbols make items natively comparable, so the item sets
// that machinery builds out of a custom string-keyed VSet here become
// container.KeySet[Item] directly.
package lr

import "github.com/dekarrin/cfgrecon/internal/grammar"

// Item is an LR(1) item (A, alpha, k, a): the rule A -> alpha with the
// dot after the first k symbols, and lookahead a (grammar.EndOfInput
// denotes the spec's bottom, end-of-input marker).
type Item struct {
	NonTerminal rune
	Consumed    grammar.Production
	Remaining   grammar.Production
	Lookahead   rune
}

// NextSymbol returns the symbol immediately after the dot, if any.
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
func (it Item) Advance() Item {
	remaining := it.Remaining.Symbols()[1:]
	return Item{
		NonTerminal: it.NonTerminal,
		Consumed:    it.Consumed + grammar.Production(string(it.Remaining.At(0))),
		Remaining:   grammar.Production(remaining),
		Lookahead:   it.Lookahead,
	}
}

// BeyondDot returns the symbols of the production strictly after the
// symbol immediately following the dot - i.e. Remaining with its first
// symbol dropped. Used by closure to compute FIRST(beta a) for beta the
// tail of alpha . B beta.
func (it Item) BeyondDot() grammar.Production {
	if it.Remaining == grammar.Epsilon {
		return grammar.Epsilon
	}
	return grammar.Production(it.Remaining.Symbols()[1:])
}
