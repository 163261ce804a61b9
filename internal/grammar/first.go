package grammar

// EndOfInput is the synthetic end-of-input lookahead marker (⊥ in the
// spec). Rune 0 (NUL) can never be produced by the textual front end, so
// it is safe to use as a dedicated sentinel distinct from every
// terminal, unlike reusing a printable character (e.g. "$") that a
// grammar could legally declare as one of its own terminals.
const EndOfInput rune = 0

// Epsilon marker used internally by FIRST sets; distinct from EndOfInput
// and from every terminal for the same reason.
const epsilonMarker rune = -1

// FirstSets holds the precomputed FIRST(X) for every symbol X of a
// grammar (terminals trivially, nonterminals via fixed-point closure).
type FirstSets struct {
	of map[rune]map[rune]bool
}

// nullable reports whether ε is a member of FIRST(sym) in fs.
func (fs FirstSets) nullable(sym rune) bool {
	return fs.of[sym][epsilonMarker]
}

// Of returns the FIRST set of a single symbol as a set of terminals,
// plus the nullability flag (whether ε ∈ FIRST(sym)).
func (fs FirstSets) Of(sym rune) (terminals map[rune]bool, nullable bool) {
	src := fs.of[sym]
	out := make(map[rune]bool, len(src))
	for t := range src {
		if t != epsilonMarker {
			out[t] = true
		}
	}
	return out, fs.nullable(sym)
}

// ComputeFirstSets computes FIRST(X) for every terminal and nonterminal
// of g by fixed-point iteration over the inequalities in the spec: a
// worklist-free repeat-until-no-change pass, the same shape as the
// teacher's FIRST/FOLLOW fixed point in internal/tunascript/grammar.go,
// generalized from recursion (which risks stack depth on cyclic
// grammars) to explicit iteration per the design notes on deep
// recursion.
func ComputeFirstSets(g Grammar) FirstSets {
	fs := FirstSets{of: make(map[rune]map[rune]bool)}

	for t := range g.terminals {
		fs.of[t] = map[rune]bool{t: true}
	}
	for n := range g.nonTerminals {
		fs.of[n] = map[rune]bool{}
	}

	changed := true
	for changed {
		changed = false
		for n := range g.nonTerminals {
			for _, prod := range g.rulesByLHS[n] {
				if prod == Epsilon {
					if !fs.of[n][epsilonMarker] {
						fs.of[n][epsilonMarker] = true
						changed = true
					}
					continue
				}

				allNullableSoFar := true
				for _, sym := range prod.Symbols() {
					symFirst := fs.of[sym]
					for t := range symFirst {
						if t == epsilonMarker {
							continue
						}
						if !fs.of[n][t] {
							fs.of[n][t] = true
							changed = true
						}
					}
					if !symFirst[epsilonMarker] {
						allNullableSoFar = false
						break
					}
				}
				if allNullableSoFar {
					if !fs.of[n][epsilonMarker] {
						fs.of[n][epsilonMarker] = true
						changed = true
					}
				}
			}
		}
	}

	return fs
}

// FirstOfString computes FIRST(gamma . a), where gamma is a sequence of
// grammar symbols and a is a single lookahead terminal (or EndOfInput,
// treated as a one-symbol tail whose own FIRST is {a}). This implements
// first_of_string from spec §4.4: accumulate FIRST(X_i) \ {ε}
// left-to-right, stopping before the first symbol whose FIRST does not
// contain ε; if every symbol of gamma is nullable, union {a}.
func (fs FirstSets) FirstOfString(gamma Production, a rune) map[rune]bool {
	result := make(map[rune]bool)

	allNullable := true
	for _, sym := range gamma.Symbols() {
		terms, nullable := fs.Of(sym)
		for t := range terms {
			result[t] = true
		}
		if !nullable {
			allNullable = false
			break
		}
	}

	if allNullable {
		result[a] = true
	}

	return result
}
