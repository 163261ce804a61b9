// Package trace formats the ACTION/GOTO tables of an LR(1) automaton
// for human inspection (the CLI's --dump-tables flag) and tags each
// predict call with a correlation ID for --trace output. It is grounded
// on internal/ictiobus/parse/clr1.go's table-dumping method, which
// lays the ACTION and GOTO columns out side by side via
// rosed.InsertTableOpts rather than hand-aligning columns with
// text/tabwriter.
package trace

import (
	"fmt"

	"github.com/dekarrin/cfgrecon/internal/grammar"
	"github.com/dekarrin/cfgrecon/internal/lr"
	"github.com/dekarrin/rosed"
	"github.com/google/uuid"
)

// ID returns a fresh correlation ID for one predict call, to tag
// --trace output so interleaved concurrent runs can be told apart.
func ID() string {
	return uuid.NewString()
}

// DumpTables renders the ACTION/GOTO table of automaton a over grammar
// g (already augmented) as a human-readable table, one row per state.
func DumpTables(g grammar.Grammar, a lr.Automaton, t *lr.Table) string {
	terms := g.SortedTerminals()
	nts := g.NonTerminals()

	headers := []string{"state", "|"}
	for _, term := range terms {
		headers = append(headers, fmt.Sprintf("A:%c", term))
	}
	headers = append(headers, fmt.Sprintf("A:%c", '$'), "|")
	for _, nt := range nts {
		headers = append(headers, fmt.Sprintf("G:%c", nt))
	}

	data := [][]string{headers}

	for i := range a.States {
		row := []string{fmt.Sprintf("%d", i), "|"}
		for _, term := range terms {
			row = append(row, actionCell(t.Lookup(i, term)))
		}
		row = append(row, actionCell(t.Lookup(i, grammar.EndOfInput)), "|")
		for _, nt := range nts {
			dest := t.GoTo(i, nt)
			cell := ""
			if dest >= 0 {
				cell = fmt.Sprintf("%d", dest)
			}
			row = append(row, cell)
		}
		data = append(data, row)
	}

	return rosed.
		Edit("").
		InsertTableOpts(0, data, 10, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()
}

func actionCell(act lr.Action) string {
	switch act.Kind {
	case lr.Shift:
		return fmt.Sprintf("s%d", act.State)
	case lr.Reduce:
		return fmt.Sprintf("r%s", act.Rule.String())
	case lr.Accept:
		return "acc"
	default:
		return ""
	}
}
