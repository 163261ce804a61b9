package lr

import (
	"github.com/dekarrin/cfgrecon/internal/grammar"
	"github.com/dekarrin/cfgrecon/internal/tablecache"
)

// Engine recognizes membership in L(G) in time linear in the input
// length, for grammars G whose canonical LR(1) collection has no
// shift/reduce or reduce/reduce conflict (spec §4.4-§4.7). Construction
// fails with cfgerr.ErrNotLR1 for any grammar outside that class; this
// package makes no attempt to repair or approximate such a grammar.
type Engine struct {
	g     grammar.Grammar // augmented
	table *Table
}

// New builds an LR(1) engine for g: g is defensively copied and
// augmented, its canonical LR(1) collection and ACTION/GOTO tables are
// built eagerly, and any conflict is reported immediately as
// cfgerr.ErrNotLR1 rather than deferred to Predict.
func New(g grammar.Grammar) (*Engine, error) {
	copied := g.Copy()
	augmented, err := copied.Augmented()
	if err != nil {
		return nil, err
	}

	fs := grammar.ComputeFirstSets(augmented)
	automaton := Build(augmented, fs)
	table, err := BuildTable(augmented, automaton)
	if err != nil {
		return nil, err
	}

	return &Engine{g: augmented, table: table}, nil
}

// NewCached behaves like New, but first checks cache for a table
// already compiled for a grammar with the same textual encoding as g
// (per tablecache.Key), and writes the freshly compiled table back to
// cache on a miss. Caching never changes which grammars are accepted as
// LR(1) or what Predict returns - it only skips automaton construction
// on a repeat run against the same grammar.
func NewCached(g grammar.Grammar, grammarText string, cache *tablecache.Cache) (*Engine, error) {
	copied := g.Copy()
	augmented, err := copied.Augmented()
	if err != nil {
		return nil, err
	}

	key := tablecache.Key(grammarText)
	terms := append(append([]rune{}, augmented.Terminals()...), grammar.EndOfInput)
	nts := augmented.NonTerminals()

	if e, ok, _ := cache.Get(key); ok {
		return &Engine{g: augmented, table: FromCacheEntry(e)}, nil
	}

	fs := grammar.ComputeFirstSets(augmented)
	automaton := Build(augmented, fs)
	table, err := BuildTable(augmented, automaton)
	if err != nil {
		return nil, err
	}

	// Best-effort: a cache write failure must not fail construction.
	_ = cache.Put(key, table.ToCacheEntry(terms, nts))

	return &Engine{g: augmented, table: table}, nil
}

// Predict reports whether word is a member of L(G), in O(len(word)).
func (e *Engine) Predict(word string) (bool, error) {
	runes := []rune(word)
	if err := validateInput(e.g, runes); err != nil {
		return false, err
	}
	return run(e.table, runes)
}
