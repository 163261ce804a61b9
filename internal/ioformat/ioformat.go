// Package ioformat reads and writes the textual grammar/word-list
// encoding consumed at the system boundary (spec §6). It is the layer
// where raw, possibly-malformed user text is first turned into runes,
// so it is also where cfgerr.ErrInvalidSymbol belongs: internal/grammar
// works in terms of []rune and can never observe a multi-character
// symbol, but a line of input text certainly can contain one.
//
// Grounded on tunaq's internal/tqw loader, which reads a structured text
// format line by line and turns parse failures into typed errors rather
// than propagating bufio/strconv errors directly to the caller.
package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dekarrin/cfgrecon/internal/cfgerr"
	"github.com/dekarrin/cfgrecon/internal/grammar"
)

// Document is a fully parsed input: the grammar plus the words to test
// against it, in file order.
type Document struct {
	Grammar grammar.Grammar
	Words   []string
}

// symbol validates that s is exactly one rune and returns it.
func symbol(field, s string) (rune, error) {
	runes := []rune(s)
	if len(runes) != 1 {
		return 0, cfgerr.New(fmt.Sprintf("%s %q is not exactly one character", field, s), cfgerr.ErrInvalidSymbol)
	}
	return runes[0], nil
}

// symbols splits s into its constituent one-character symbols, per spec
// §6's "whitespace irrelevant; treated as a character sequence": every
// whitespace rune is dropped rather than merely trimmed from the ends.
func symbols(field, s string) []rune {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if !isSpace(r) {
			out = append(out, r)
		}
	}
	return out
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\r', '\n', '\v', '\f':
		return true
	}
	return false
}

// lineReader wraps a bufio.Scanner so Read can report which line number
// a malformed record came from.
type lineReader struct {
	sc   *bufio.Scanner
	line int
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{sc: bufio.NewScanner(r)}
}

func (lr *lineReader) next() (string, bool) {
	if !lr.sc.Scan() {
		return "", false
	}
	lr.line++
	return lr.sc.Text(), true
}

func (lr *lineReader) errorf(format string, args ...any) error {
	msg := fmt.Sprintf("line %d: %s", lr.line, fmt.Sprintf(format, args...))
	return cfgerr.New(msg, cfgerr.ErrInvalidRule)
}

// Read parses a Document from r per the spec §6 encoding:
//
//	n s p
//	<n nonterminal characters>
//	<s terminal characters>
//	p lines of "A -> α"
//	<start symbol>
//	m
//	<m word lines>
func Read(r io.Reader) (Document, error) {
	lr := newLineReader(r)

	header, ok := lr.next()
	if !ok {
		return Document{}, lr.errorf("expected header line \"n s p\", got end of input")
	}
	n, s, p, err := parseHeader(header)
	if err != nil {
		return Document{}, lr.errorf("%s", err)
	}

	ntLine, ok := lr.next()
	if !ok {
		return Document{}, lr.errorf("expected nonterminal line")
	}
	nonTerminals := symbols("nonterminal", ntLine)
	if len(nonTerminals) != n {
		return Document{}, lr.errorf("expected %d nonterminals, got %d", n, len(nonTerminals))
	}

	termLine, ok := lr.next()
	if !ok {
		return Document{}, lr.errorf("expected terminal line")
	}
	terminals := symbols("terminal", termLine)
	if len(terminals) != s {
		return Document{}, lr.errorf("expected %d terminals, got %d", s, len(terminals))
	}

	// Grammar.New is constructed with a placeholder start symbol and
	// fixed up below once the real start line is read, since the format
	// lists rules before the start symbol.
	placeholder := nonTerminals[0]
	g, err := grammar.New(nonTerminals, terminals, placeholder)
	if err != nil {
		return Document{}, err
	}

	for i := 0; i < p; i++ {
		ruleLine, ok := lr.next()
		if !ok {
			return Document{}, lr.errorf("expected %d rule lines, got %d", p, i)
		}
		lhs, rhs, err := parseRule(ruleLine)
		if err != nil {
			return Document{}, lr.errorf("%s", err)
		}
		lhsSym, err := symbol("rule left-hand side", lhs)
		if err != nil {
			return Document{}, err
		}
		if err := g.AddRule(lhsSym, grammar.Production(rhs)); err != nil {
			return Document{}, err
		}
	}

	startLine, ok := lr.next()
	if !ok {
		return Document{}, lr.errorf("expected start symbol line")
	}
	start, err := symbol("start symbol", strings.TrimSpace(startLine))
	if err != nil {
		return Document{}, err
	}
	g, err = reroot(g, nonTerminals, terminals, start)
	if err != nil {
		return Document{}, err
	}

	countLine, ok := lr.next()
	if !ok {
		return Document{}, lr.errorf("expected word count line")
	}
	m, err := strconv.Atoi(strings.TrimSpace(countLine))
	if err != nil {
		return Document{}, lr.errorf("word count %q is not an integer", countLine)
	}

	words := make([]string, 0, m)
	for i := 0; i < m; i++ {
		w, ok := lr.next()
		if !ok {
			return Document{}, lr.errorf("expected %d words, got %d", m, i)
		}
		words = append(words, w)
	}

	return Document{Grammar: g, Words: words}, nil
}

// reroot rebuilds g with the real start symbol, since the rule set has
// already been accumulated against a placeholder start (the format puts
// the start symbol after the rule list, not before it).
func reroot(g grammar.Grammar, nonTerminals, terminals []rune, start rune) (grammar.Grammar, error) {
	g2, err := grammar.New(nonTerminals, terminals, start)
	if err != nil {
		return grammar.Grammar{}, err
	}
	for _, nt := range nonTerminals {
		for _, prod := range g.RulesFor(nt) {
			if err := g2.AddRule(nt, prod); err != nil {
				return grammar.Grammar{}, err
			}
		}
	}
	return g2, nil
}

func parseHeader(line string) (n, s, p int, err error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return 0, 0, 0, fmt.Errorf("expected header \"n s p\", got %q", line)
	}
	vals := make([]int, 3)
	for i, f := range fields {
		v, convErr := strconv.Atoi(f)
		if convErr != nil {
			return 0, 0, 0, fmt.Errorf("header field %q is not an integer", f)
		}
		vals[i] = v
	}
	return vals[0], vals[1], vals[2], nil
}

func parseRule(line string) (lhs, rhs string, err error) {
	const arrow = "->"
	idx := strings.Index(line, arrow)
	if idx < 0 {
		return "", "", fmt.Errorf("rule %q missing \"->\"", line)
	}
	lhs = strings.TrimSpace(line[:idx])
	rhs = strings.TrimSpace(line[idx+len(arrow):])
	return lhs, rhs, nil
}

// WriteResults writes one "Yes" or "No" line per entry of results, in
// order, to w.
func WriteResults(w io.Writer, results []bool) error {
	bw := bufio.NewWriter(w)
	for _, ok := range results {
		line := "No"
		if ok {
			line = "Yes"
		}
		if _, err := bw.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
