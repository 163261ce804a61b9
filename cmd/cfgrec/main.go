/*
Cfgrec reads a context-free grammar and a list of candidate words in the
textual format described by the recognizer's system boundary, and
prints "Yes" or "No" for each word according to whether it is a member
of the grammar's language.

Usage:

	cfgrec {earley|lr} [flags] [FILE]

The first positional argument selects the recognition engine: "earley"
accepts any context-free grammar; "lr" additionally requires the
grammar to be LR(1) and exits with an error if it is not. FILE is the
path to the input document; if omitted, the document is read from
stdin.

The flags are:

	-v, --version
		Print the current version and exit.

	-i, --interactive
		After loading the grammar, read words one at a time from an
		interactive readline-backed prompt instead of the document's word
		list.

	-c, --config FILE
		Load CLI defaults from the given TOML config file instead of
		".cfgrecrc.toml" in the current directory.

	--cache DIR
		Persist (and reuse) the compiled LR(1) table under DIR, keyed by
		the grammar's content. Has no effect with the earley engine.

	--trace
		Print a correlation ID and per-call trace information to stderr
		for each predict call.

	--dump-tables
		Print the LR(1) ACTION/GOTO tables to stderr before recognizing
		any words. Has no effect with the earley engine.
*/
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/dekarrin/cfgrecon"
	"github.com/dekarrin/cfgrecon/internal/config"
	"github.com/dekarrin/cfgrecon/internal/grammar"
	"github.com/dekarrin/cfgrecon/internal/input"
	"github.com/dekarrin/cfgrecon/internal/ioformat"
	"github.com/dekarrin/cfgrecon/internal/lr"
	"github.com/dekarrin/cfgrecon/internal/trace"
	"github.com/dekarrin/cfgrecon/internal/version"
	"github.com/spf13/pflag"
)

const (
	// ExitSuccess indicates a successful program execution.
	ExitSuccess = iota

	// ExitUsageError indicates bad or missing command-line arguments.
	ExitUsageError

	// ExitInitError indicates a problem loading the grammar document,
	// config file, or engine.
	ExitInitError

	// ExitRecognitionError indicates a problem encountered while
	// reading or predicting a word.
	ExitRecognitionError
)

var (
	returnCode      int     = ExitSuccess
	flagVersion     *bool   = pflag.BoolP("version", "v", false, "Print the current version and exit")
	flagInteractive *bool   = pflag.BoolP("interactive", "i", false, "Read words from an interactive prompt instead of the document's word list")
	flagConfig      *string = pflag.StringP("config", "c", ".cfgrecrc.toml", "Path to the TOML config file with CLI defaults")
	flagCacheDir    *string = pflag.String("cache", "", "Persist/reuse the compiled LR(1) table under this directory")
	flagTrace       *bool   = pflag.Bool("trace", false, "Print a correlation ID and trace info to stderr for each predict call")
	flagDumpTables  *bool   = pflag.Bool("dump-tables", false, "Print the LR(1) ACTION/GOTO tables to stderr before recognizing words")
)

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panic(fmt.Sprintf("unrecoverable panic occurred: %v", panicErr))
		} else {
			os.Exit(returnCode)
		}
	}()

	pflag.Parse()

	if *flagVersion {
		fmt.Printf("%s\n", version.Current)
		return
	}

	args := pflag.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "ERROR: missing required engine argument (earley or lr)")
		returnCode = ExitUsageError
		return
	}

	engineName := args[0]
	if engineName != "earley" && engineName != "lr" {
		fmt.Fprintf(os.Stderr, "ERROR: unknown engine %q (must be \"earley\" or \"lr\")\n", engineName)
		returnCode = ExitUsageError
		return
	}

	cfg, err := config.Load(*flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitInitError
		return
	}
	if *flagCacheDir != "" {
		cfg.CacheDir = *flagCacheDir
	}
	if *flagTrace {
		cfg.Trace = true
	}

	r := os.Stdin
	if len(args) > 1 {
		r, err = os.Open(args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			returnCode = ExitInitError
			return
		}
		defer r.Close()
	}

	doc, err := ioformat.Read(r)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitInitError
		return
	}

	if engineName == "lr" && *flagDumpTables {
		dumpTables(doc.Grammar)
	}

	eng, err := buildEngine(engineName, doc.Grammar, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitInitError
		return
	}

	var reader input.WordReader
	if *flagInteractive {
		reader, err = input.NewInteractiveReader("word> ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			returnCode = ExitInitError
			return
		}
	} else {
		// The document's word list was already parsed by ioformat.Read;
		// route it through the same DirectWordReader/WordReader
		// interface the interactive path uses so both share one
		// read-predict-print loop. Each word becomes its own line,
		// including a trailing newline so the last word is delivered
		// before io.EOF rather than folded into it; an empty word list
		// is an empty stream, not a single blank line.
		var batchText string
		if len(doc.Words) > 0 {
			batchText = strings.Join(doc.Words, "\n") + "\n"
		}
		reader = input.NewDirectReader(strings.NewReader(batchText))
	}
	defer reader.Close()

	returnCode = runWords(eng, reader, *flagInteractive, cfg.Trace)
}

func buildEngine(engineName string, g cfgrecon.Grammar, cfg config.Config) (cfgrecon.Engine, error) {
	switch engineName {
	case "earley":
		return cfgrecon.NewEarleyEngine(g)
	case "lr":
		if cfg.CacheDir != "" {
			// g.String() lists only the rules, so the start symbol is
			// added to the key text to keep grammars that differ only in
			// their start symbol from sharing a cached table.
			return cfgrecon.NewCachedLREngine(g, fmt.Sprintf("start %c; %s", g.Start(), g.String()), cfg.CacheDir)
		}
		return cfgrecon.NewLREngine(g)
	default:
		return nil, fmt.Errorf("unknown engine %q", engineName)
	}
}

// dumpTables rebuilds the canonical LR(1) collection and ACTION/GOTO
// tables for g purely to render them; on a conflict it prints nothing
// and returns, leaving buildEngine to report the conflict moments later,
// so the dump is best-effort and never fatal to the run.
func dumpTables(g grammar.Grammar) {
	augmented, err := g.Copy().Augmented()
	if err != nil {
		return
	}
	fs := grammar.ComputeFirstSets(augmented)
	automaton := lr.Build(augmented, fs)
	table, err := lr.BuildTable(augmented, automaton)
	if err != nil {
		return
	}
	fmt.Fprintln(os.Stderr, trace.DumpTables(augmented, automaton, table))
}

// runWords drives reader to exhaustion, printing a "Yes"/"No" line per
// word as it is predicted. Both the batch path (a DirectWordReader over
// the document's already-parsed word list) and the interactive path (an
// InteractiveWordReader over a readline prompt) share this loop; they
// differ only in where ReadWord's next line comes from, how ReadWord
// eventually errors out - a prompt returns io.EOF on Ctrl-D and
// readline.ErrInterrupt on Ctrl-C, a DirectWordReader only ever returns
// io.EOF - and in interactive's tolerance of a bad word:
// continueOnPredictError lets an interactive session keep prompting
// after a rejected word instead of exiting, since the user is still
// there to try again. Any ReadWord error, not just io.EOF, ends the
// loop cleanly: there is nothing more useful to do with a reader that
// cannot produce another word.
func runWords(eng cfgrecon.Engine, reader input.WordReader, continueOnPredictError bool, traceCalls bool) int {
	for {
		w, err := reader.ReadWord()
		if err != nil {
			return ExitSuccess
		}
		if traceCalls {
			fmt.Fprintf(os.Stderr, "[%s] predict(%q)\n", trace.ID(), w)
		}
		ok, err := eng.Predict(w)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			if continueOnPredictError {
				continue
			}
			return ExitRecognitionError
		}
		if err := ioformat.WriteResults(os.Stdout, []bool{ok}); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			return ExitRecognitionError
		}
	}
}
