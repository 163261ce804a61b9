// Package cfgrecon is the public entry point for constructing
// context-free grammars and checking word membership against them with
// either of two recognition engines: an Earley engine that accepts any
// grammar, and an LR(1) engine that rejects non-LR(1) grammars at
// construction but recognizes words in time linear in their length.
//
// It is the thin façade over internal/grammar, internal/earley and
// internal/lr that external callers (the CLI in cmd/cfgrec, or any
// other Go program embedding the recognizer) are meant to import,
// mirroring the shape of tunaq's root package wrapping internal/game
// behind a single Engine type.
package cfgrecon

import (
	"github.com/dekarrin/cfgrecon/internal/earley"
	"github.com/dekarrin/cfgrecon/internal/grammar"
	"github.com/dekarrin/cfgrecon/internal/lr"
	"github.com/dekarrin/cfgrecon/internal/tablecache"
)

// Grammar is a context-free grammar over single-character symbols: a
// disjoint set of terminals and nonterminals, a start symbol, and a set
// of production rules.
type Grammar = grammar.Grammar

// Rule is a single left-hand-side/right-hand-side production.
type Rule = grammar.Rule

// NewGrammar constructs an empty-ruled grammar over the given
// nonterminal and terminal symbol sets with the given start symbol.
func NewGrammar(nonTerminals, terminals []rune, start rune) (Grammar, error) {
	return grammar.New(nonTerminals, terminals, start)
}

// NewGrammarFromStrings is a convenience wrapper over NewGrammar taking
// nonTerminals and terminals as strings whose runes are the symbols.
func NewGrammarFromStrings(nonTerminals, terminals string, start rune) (Grammar, error) {
	return grammar.NewFromStrings(nonTerminals, terminals, start)
}

// Engine recognizes membership in a grammar's language.
type Engine interface {
	// Predict reports whether word is a member of the grammar's
	// language. It fails with an error wrapping ErrInvalidInput if word
	// contains a character outside the grammar's terminal alphabet.
	Predict(word string) (bool, error)
}

// NewEarleyEngine builds an Engine that accepts any context-free
// grammar, using Earley chart construction. Construction only fails if
// the augmented start symbol sentinel collides with an existing
// terminal or nonterminal of g.
func NewEarleyEngine(g Grammar) (Engine, error) {
	return earley.New(g)
}

// NewLREngine builds an Engine that recognizes words in time linear in
// their length, using a canonical LR(1) automaton. Construction fails
// with an error wrapping ErrNotLR1 if g's canonical collection has any
// shift/reduce or reduce/reduce conflict.
func NewLREngine(g Grammar) (Engine, error) {
	return lr.New(g)
}

// NewCachedLREngine behaves like NewLREngine, but first looks for a
// previously compiled table for a grammar with the same textual
// encoding (grammarText) under cacheDir, and writes the freshly built
// table there on a miss. Caching changes nothing about which grammars
// are accepted or what Predict returns - see internal/tablecache.
func NewCachedLREngine(g Grammar, grammarText string, cacheDir string) (Engine, error) {
	return lr.NewCached(g, grammarText, tablecache.New(cacheDir))
}
