package grammar

import "github.com/dekarrin/cfgrecon/internal/cfgerr"

// AugmentedStartSentinel is the conventional synthetic start symbol used
// by both engines, following the sentinel the spec names as customary:
// '&'. rune 0 is reserved separately as the end-of-input marker used by
// the LR driver and is never a legal user symbol, so there is no risk of
// it colliding with AugmentedStartSentinel.
const AugmentedStartSentinel = '&'

// Augmented returns a copy of g extended with a fresh start nonterminal
// S' (AugmentedStartSentinel) and the single rule S' -> S, where S is
// g's original start symbol. The returned grammar's Start is S'.
//
// Fails with cfgerr.ErrStartSymbolConflict if AugmentedStartSentinel is
// already one of g's declared symbols.
func (g Grammar) Augmented() (Grammar, error) {
	if g.nonTerminals[AugmentedStartSentinel] || g.terminals[AugmentedStartSentinel] {
		return Grammar{}, cfgerr.New("sentinel start symbol already occurs in grammar", cfgerr.ErrStartSymbolConflict)
	}

	g2 := g.Copy()
	g2.nonTerminals[AugmentedStartSentinel] = true
	oldStart := g2.start
	g2.start = AugmentedStartSentinel
	g2.rulesByLHS[AugmentedStartSentinel] = []Production{Production([]rune{oldStart})}

	return g2, nil
}
