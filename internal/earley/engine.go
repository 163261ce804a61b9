package earley

import (
	"fmt"

	"github.com/dekarrin/cfgrecon/internal/cfgerr"
	"github.com/dekarrin/cfgrecon/internal/container"
	"github.com/dekarrin/cfgrecon/internal/grammar"
)

// Engine recognizes membership in L(G) for an arbitrary context-free
// grammar G by building a fresh Earley chart per call to Predict. It
// holds only the augmented grammar; unlike the LR engine it has no
// precomputed tables, so construction can never fail on the grammar's
// shape (spec §4.3: Earley accepts any CFG).
type Engine struct {
	g grammar.Grammar // already augmented; g.Start() is S'
}

// New builds an Earley engine for g. g is defensively copied and
// augmented with a fresh start symbol (spec §4.2); construction fails
// only with cfgerr.ErrStartSymbolConflict if the sentinel augmented
// start symbol is already present in g.
func New(g grammar.Grammar) (*Engine, error) {
	augmented, err := g.Copy().Augmented()
	if err != nil {
		return nil, err
	}
	return &Engine{g: augmented}, nil
}

// set is one position's worth of Earley items, indexed both as a plain
// set (for membership checks during closure) and by the next symbol
// after the dot (so Scan and Complete can find their candidates in O(1)
// instead of scanning every item in a position, per spec §4.3's "Item
// indexing" requirement).
type set struct {
	items    container.KeySet[Item]
	byNext   map[rune]container.KeySet[Item]
	complete map[rune]container.KeySet[Item] // completed items, keyed by NonTerminal
}

func newSet() *set {
	return &set{
		items:    container.NewKeySet[Item](),
		byNext:   make(map[rune]container.KeySet[Item]),
		complete: make(map[rune]container.KeySet[Item]),
	}
}

// add inserts it into s if not already present, maintaining the
// by-next-symbol and completed-by-nonterminal indices. Returns whether
// it was newly added.
func (s *set) add(it Item) bool {
	if s.items.Has(it) {
		return false
	}
	s.items.Add(it)

	if next, ok := it.NextSymbol(); ok {
		if s.byNext[next] == nil {
			s.byNext[next] = container.NewKeySet[Item]()
		}
		s.byNext[next].Add(it)
	} else {
		if s.complete[it.NonTerminal] == nil {
			s.complete[it.NonTerminal] = container.NewKeySet[Item]()
		}
		s.complete[it.NonTerminal].Add(it)
	}
	return true
}

// Predict reports whether word is a member of L(G).
//
// Fails with cfgerr.ErrInvalidInput if any character of word is not one
// of G's terminals.
func (e *Engine) Predict(word string) (bool, error) {
	runes := []rune(word)
	for _, c := range runes {
		if !e.g.IsTerminal(c) {
			return false, cfgerr.New(fmt.Sprintf("character %q is not a terminal of the grammar", c), cfgerr.ErrInvalidInput)
		}
	}

	chart := make([]*set, len(runes)+1)
	for i := range chart {
		chart[i] = newSet()
	}

	start := e.g.Start()
	rules := e.g.RulesFor(start)
	if len(rules) != 1 {
		return false, cfgerr.New("augmented start symbol must have exactly one production", cfgerr.ErrInternal)
	}
	initial := newItem(start, rules[0], 0)
	e.closeAdd(chart, 0, initial)

	for i := 1; i <= len(runes); i++ {
		e.scan(chart, i, runes[i-1])
	}

	finished := newItem(start, rules[0], 0).Advance()
	return chart[len(runes)].items.Has(finished), nil
}

// closeAdd adds it to chart[i] and, if it was newly added, immediately
// runs the predict/complete closure step on it. Because closure is
// itself defined in terms of adding further items via closeAdd, the
// whole chart position is saturated to a fixed point by the time the
// outermost call returns - a depth-first worklist, as the design notes
// permit (the contract is fixed-point equality, not a particular
// traversal order).
func (e *Engine) closeAdd(chart []*set, i int, it Item) {
	if !chart[i].add(it) {
		return
	}

	next, hasNext := it.NextSymbol()
	if !hasNext {
		// Complete: advance every parent item in chart[it.Origin] whose
		// next symbol is it.NonTerminal.
		parents := chart[it.Origin].byNext[it.NonTerminal]
		for _, parent := range parents.Elements() {
			e.closeAdd(chart, i, parent.Advance())
		}
		return
	}

	if !e.g.IsNonTerminal(next) {
		return // terminal ahead of the dot; only Scan can advance this
	}

	// Predict: add every rule of next, seeded at this position.
	for _, prod := range e.g.RulesFor(next) {
		e.closeAdd(chart, i, newItem(next, prod, i))
	}

	// Epsilon-completion shortcut (spec §4.3): if chart[i] already holds
	// a completed item for `next` that originated at i, this item must
	// also be advanced now, in the same pass, rather than waiting for a
	// Complete step that no later item addition will trigger.
	if completed := chart[i].complete[next]; completed != nil {
		for _, done := range completed.Elements() {
			if done.Origin == i {
				e.closeAdd(chart, i, it.Advance())
				break
			}
		}
	}
}

// scan builds chart[i] from chart[i-1] by advancing every item whose
// next symbol matches the i-th input symbol, then closes chart[i] to a
// fixed point.
func (e *Engine) scan(chart []*set, i int, symbol rune) {
	prev := chart[i-1]
	matching := prev.byNext[symbol]
	if matching == nil {
		return
	}
	for _, it := range matching.Elements() {
		e.closeAdd(chart, i, it.Advance())
	}
}
