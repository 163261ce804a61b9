package lr

import (
	"sort"
	"strings"

	"github.com/dekarrin/cfgrecon/internal/container"
	"github.com/dekarrin/cfgrecon/internal/grammar"
)

// ItemSet is an LR state's set of items, saturated under closure.
type ItemSet = container.KeySet[Item]

// signature returns a canonical string encoding of an item set, used to
// deduplicate states by item-set equality (as the spec requires) the
// same way tunaq's automaton package keys its state collection by
// util.SVSet.StringOrdered() rather than by construction identity.
func signature(items ItemSet) string {
	strs := make([]string, 0, items.Len())
	for it := range items {
		var sb strings.Builder
		sb.WriteRune(it.NonTerminal)
		sb.WriteString("->")
		sb.WriteString(string(it.Consumed))
		sb.WriteByte('.')
		sb.WriteString(string(it.Remaining))
		sb.WriteByte(',')
		sb.WriteRune(it.Lookahead)
		strs = append(strs, sb.String())
	}
	sort.Strings(strs)
	return strings.Join(strs, "|")
}

// closure computes the closure of an LR(1) item set per spec §4.5: for
// every item (A, alpha, k, a) with alpha_{k+1} = B a nonterminal, and
// every rule B -> beta, and every lookahead b in FIRST(beta' a) where
// beta' is the production tail past B, add (B, beta, 0, b).
//
// Implemented as an explicit worklist rather than recursion, per the
// design notes on deep recursion: state closures for large grammars can
// otherwise exceed stack depth.
func closure(g grammar.Grammar, fs grammar.FirstSets, seed ItemSet) ItemSet {
	result := seed.Copy()
	worklist := seed.Elements()

	for len(worklist) > 0 {
		it := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		next, ok := it.NextSymbol()
		if !ok || !g.IsNonTerminal(next) {
			continue
		}

		lookaheads := fs.FirstOfString(it.BeyondDot(), it.Lookahead)

		for _, prod := range g.RulesFor(next) {
			for la := range lookaheads {
				newItem := Item{NonTerminal: next, Consumed: grammar.Epsilon, Remaining: prod, Lookahead: la}
				if !result.Has(newItem) {
					result.Add(newItem)
					worklist = append(worklist, newItem)
				}
			}
		}
	}

	return result
}

// goTo computes goto(I, X) per spec §4.5: advance every item of I whose
// next symbol is X, then close the result.
func goTo(g grammar.Grammar, fs grammar.FirstSets, I ItemSet, X rune) ItemSet {
	kernel := container.NewKeySet[Item]()
	for it := range I {
		if next, ok := it.NextSymbol(); ok && next == X {
			kernel.Add(it.Advance())
		}
	}
	if kernel.Len() == 0 {
		return kernel
	}
	return closure(g, fs, kernel)
}

// State is one canonical LR(1) state: its saturated item set plus the
// goto transitions out of it, keyed by grammar symbol.
type State struct {
	Items ItemSet
	Goto  map[rune]int // symbol -> destination state index
}

// Automaton is the canonical collection of LR(1) states for an already
// augmented grammar, plus the GOTO map (spec §4.5).
type Automaton struct {
	States []State
}

// Build constructs the canonical LR(1) collection for augmented grammar
// g (g.Start() must be the synthetic start symbol S').
func Build(g grammar.Grammar, fs grammar.FirstSets) Automaton {
	start := g.Start()
	rules := g.RulesFor(start)
	// g is augmented, so it has exactly one rule S' -> S.
	startItem := Item{NonTerminal: start, Consumed: grammar.Epsilon, Remaining: rules[0], Lookahead: grammar.EndOfInput}

	startSet := closure(g, fs, container.KeySetOf([]Item{startItem}))

	bySignature := map[string]int{signature(startSet): 0}
	states := []State{{Items: startSet, Goto: map[rune]int{}}}

	symbols := make([]rune, 0, len(g.NonTerminals())+len(g.Terminals()))
	symbols = append(symbols, g.NonTerminals()...)
	symbols = append(symbols, g.Terminals()...)

	for i := 0; i < len(states); i++ {
		for _, X := range symbols {
			next := goTo(g, fs, states[i].Items, X)
			if next.Len() == 0 {
				continue
			}
			sig := signature(next)
			idx, exists := bySignature[sig]
			if !exists {
				idx = len(states)
				bySignature[sig] = idx
				states = append(states, State{Items: next, Goto: map[rune]int{}})
			}
			states[i].Goto[X] = idx
		}
	}

	return Automaton{States: states}
}
