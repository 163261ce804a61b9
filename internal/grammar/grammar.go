// Package grammar holds the immutable grammar value shared by both
// recognition engines: symbol partitions, rules grouped by left-hand
// side, and the start symbol. It is grounded on tunaq's
// internal/tunascript Grammar/Rule/Production trio and on the
// internal/ictiobus/grammar package's LR0Item, generalized from
// multi-character string symbols to single runes, as this spec requires.
package grammar

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dekarrin/cfgrecon/internal/cfgerr"
)

// Production is a (possibly empty) sequence of symbols drawn from a
// grammar's terminals and nonterminals. Because every symbol is exactly
// one character, a whole right-hand side is itself a plain, comparable,
// hashable Go string - no custom equality or hashing is needed the way
// tunaq's Production (a []string) requires its own Equal/Copy methods.
type Production string

// Epsilon is the empty production.
const Epsilon Production = ""

// Symbols returns the symbols of p in order.
func (p Production) Symbols() []rune {
	return []rune(p)
}

// Len returns the number of symbols in p.
func (p Production) Len() int {
	return len([]rune(p))
}

// At returns the k-th symbol of p (zero-indexed).
func (p Production) At(k int) rune {
	return []rune(p)[k]
}

// Rule is a single left-hand-side/right-hand-side pair, A -> alpha.
type Rule struct {
	NonTerminal rune
	Production  Production
}

func (r Rule) String() string {
	rhs := string(r.Production)
	if rhs == "" {
		rhs = "ε"
	}
	return fmt.Sprintf("%c -> %s", r.NonTerminal, rhs)
}

// Grammar is an immutable-by-convention context-free grammar value:
// disjoint terminal and nonterminal symbol sets, rules grouped by
// left-hand side with insertion order preserved, and a start symbol.
//
// Grammar is intentionally value-semantic in the same sense tunaq's
// tunascript.Grammar is: callers are expected to treat it as read-only
// after handing it to an engine, and engines take a defensive Copy so
// later mutation of the caller's grammar cannot be observed (spec
// invariant: grammar isolation).
type Grammar struct {
	nonTerminals map[rune]bool
	terminals    map[rune]bool
	start        rune

	// rulesByLHS preserves the order rules were added for each
	// nonterminal; iteration order within a nonterminal's rule list has
	// no semantic effect but is kept stable for reproducible tracing.
	rulesByLHS map[rune][]Production
}

// New constructs an empty-ruled grammar over the given nonterminal and
// terminal symbol sets with the given start symbol.
//
// Every symbol is one character by construction at this layer: callers
// pass []rune, and a rune is always a single code point, so there is no
// "not exactly one character" case for New itself to reject. That check
// only has teeth where symbols first arrive as raw text - see
// internal/ioformat, which rejects a multi-rune symbol before it ever
// reaches New.
//
// New fails with cfgerr.ErrInvalidStart if start is not in nonterminals,
// and cfgerr.ErrOverlap if nonTerminals and terminals are not disjoint.
func New(nonTerminals, terminals []rune, start rune) (Grammar, error) {
	g := Grammar{
		nonTerminals: make(map[rune]bool, len(nonTerminals)),
		terminals:    make(map[rune]bool, len(terminals)),
		rulesByLHS:   make(map[rune][]Production),
	}

	for _, n := range nonTerminals {
		g.nonTerminals[n] = true
	}
	for _, t := range terminals {
		g.terminals[t] = true
	}

	for sym := range g.nonTerminals {
		if g.terminals[sym] {
			return Grammar{}, cfgerr.New(fmt.Sprintf("symbol %q is both terminal and nonterminal", sym), cfgerr.ErrOverlap)
		}
	}

	if !g.nonTerminals[start] {
		return Grammar{}, cfgerr.New(fmt.Sprintf("start symbol %q is not a declared nonterminal", start), cfgerr.ErrInvalidStart)
	}
	g.start = start

	for n := range g.nonTerminals {
		g.rulesByLHS[n] = nil
	}

	return g, nil
}

// NewFromStrings is a convenience wrapper over New taking the textual
// encoding used at the system boundary (§6): nonTerminals and terminals
// are each a string whose runes are the symbols.
func NewFromStrings(nonTerminals, terminals string, start rune) (Grammar, error) {
	return New([]rune(nonTerminals), []rune(terminals), start)
}

// AddRule appends the rule nonTerminal -> production to nonTerminal's
// rule list, preserving add order.
//
// It fails with cfgerr.ErrInvalidRule if nonTerminal is not a declared
// nonterminal, or if any symbol of production is neither a declared
// terminal nor a declared nonterminal.
func (g *Grammar) AddRule(nonTerminal rune, production Production) error {
	if !g.nonTerminals[nonTerminal] {
		return cfgerr.New(fmt.Sprintf("left-hand side %q is not a nonterminal", nonTerminal), cfgerr.ErrInvalidRule)
	}
	for _, sym := range production.Symbols() {
		if !g.terminals[sym] && !g.nonTerminals[sym] {
			return cfgerr.New(fmt.Sprintf("right-hand side symbol %q of rule from %q is undefined", sym, nonTerminal), cfgerr.ErrInvalidRule)
		}
	}
	g.rulesByLHS[nonTerminal] = append(g.rulesByLHS[nonTerminal], production)
	return nil
}

// RulesFor returns the ordered sequence of right-hand sides for
// nonTerminal. Returns nil if nonTerminal has no rules (including if it
// is not a nonterminal at all).
func (g Grammar) RulesFor(nonTerminal rune) []Production {
	return g.rulesByLHS[nonTerminal]
}

// IsTerminal returns whether sym is one of the grammar's terminals.
func (g Grammar) IsTerminal(sym rune) bool {
	return g.terminals[sym]
}

// IsNonTerminal returns whether sym is one of the grammar's
// nonterminals.
func (g Grammar) IsNonTerminal(sym rune) bool {
	return g.nonTerminals[sym]
}

// Start returns the grammar's start symbol.
func (g Grammar) Start() rune {
	return g.start
}

// NonTerminals returns the grammar's nonterminal symbols in no
// particular guaranteed order (callers needing determinism should sort).
func (g Grammar) NonTerminals() []rune {
	out := make([]rune, 0, len(g.nonTerminals))
	for n := range g.nonTerminals {
		out = append(out, n)
	}
	return out
}

// Terminals returns the grammar's terminal symbols in no particular
// guaranteed order.
func (g Grammar) Terminals() []rune {
	out := make([]rune, 0, len(g.terminals))
	for t := range g.terminals {
		out = append(out, t)
	}
	return out
}

// SortedTerminals returns the grammar's terminals in ascending rune
// order, for reproducible table construction and tracing.
func (g Grammar) SortedTerminals() []rune {
	out := g.Terminals()
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Copy returns a deep copy of g, so that mutations applied to the
// original (via AddRule) are never observed through the copy. Engines
// call this at construction time to satisfy the grammar-isolation
// invariant.
func (g Grammar) Copy() Grammar {
	g2 := Grammar{
		nonTerminals: make(map[rune]bool, len(g.nonTerminals)),
		terminals:    make(map[rune]bool, len(g.terminals)),
		rulesByLHS:   make(map[rune][]Production, len(g.rulesByLHS)),
		start:        g.start,
	}
	for k, v := range g.nonTerminals {
		g2.nonTerminals[k] = v
	}
	for k, v := range g.terminals {
		g2.terminals[k] = v
	}
	for k, v := range g.rulesByLHS {
		cp := make([]Production, len(v))
		copy(cp, v)
		g2.rulesByLHS[k] = cp
	}
	return g2
}

func (g Grammar) String() string {
	var sb strings.Builder
	nts := g.NonTerminals()
	sort.Slice(nts, func(i, j int) bool { return nts[i] < nts[j] })
	for i, n := range nts {
		prods := g.rulesByLHS[n]
		strs := make([]string, len(prods))
		for j, p := range prods {
			s := string(p)
			if s == "" {
				s = "ε"
			}
			strs[j] = s
		}
		fmt.Fprintf(&sb, "%c -> %s", n, strings.Join(strs, " | "))
		if i+1 < len(nts) {
			sb.WriteString("; ")
		}
	}
	return sb.String()
}
