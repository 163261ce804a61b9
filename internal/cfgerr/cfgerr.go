// Package cfgerr holds the closed error taxonomy used across the
// recognizer core. Notably, it contains the Error type, which can be
// created with one or more "cause" errors; calling errors.Is() on this
// Error type with an argument consisting of any of the errors it has as
// a cause will return true. This is the same shape as tunaq's
// server/serr package, adapted from an HTTP-handler error model to the
// recognizer's closed set of construction/recognition failures.
package cfgerr

import "errors"

var (
	// ErrInvalidSymbol is raised while reading the textual grammar
	// (internal/ioformat) when a symbol is not exactly one character.
	ErrInvalidSymbol = errors.New("symbol is not exactly one character")

	// ErrOverlap is raised by grammar construction when a symbol is
	// claimed by both the terminal and nonterminal sets.
	ErrOverlap = errors.New("terminal and nonterminal sets overlap")

	// ErrInvalidStart is raised by grammar construction when the start
	// symbol is not a nonterminal.
	ErrInvalidStart = errors.New("start symbol is not a nonterminal")

	// ErrInvalidRule is raised by AddRule when the left-hand side is not a
	// nonterminal or the right-hand side contains an unknown symbol.
	ErrInvalidRule = errors.New("rule is not well-formed over the grammar's symbols")

	// ErrStartSymbolConflict is raised by engine construction when the
	// sentinel augmented-start symbol already occurs among the grammar's
	// terminals or nonterminals.
	ErrStartSymbolConflict = errors.New("augmented start symbol already present in grammar")

	// ErrNotLR1 is raised by LR(1) automaton construction when a
	// shift/reduce or reduce/reduce conflict is detected.
	ErrNotLR1 = errors.New("grammar is not LR(1)")

	// ErrInvalidInput is raised by predict when the input word contains a
	// character that is not one of the grammar's terminals.
	ErrInvalidInput = errors.New("word contains a character that is not a terminal of the grammar")

	// ErrInternal is raised when a recognizer reaches a branch its own
	// construction is supposed to make unreachable: the LR driver's GOTO
	// lookup immediately after a valid reduce, and the Earley engine's
	// check that the augmented start symbol has exactly one rule. Seeing
	// this escape indicates a bug in table or chart construction, not a
	// malformed grammar or word.
	ErrInternal = errors.New("internal error: reached an unreachable recognizer state")
)

// Error is a typed error returned by the recognizer core. It carries a
// message along with zero or more causes; it is compatible with
// errors.Is — calling errors.Is on an Error along with any value it
// holds as a cause returns true.
//
// Error should not be constructed directly; call New.
type Error struct {
	msg   string
	cause []error
}

// New creates a new Error with the given message and causes. causes is
// typically one of the sentinels above, optionally with additional
// context wrapped alongside it.
func New(msg string, causes ...error) Error {
	e := Error{msg: msg}
	if len(causes) > 0 {
		e.cause = make([]error, len(causes))
		copy(e.cause, causes)
	}
	return e
}

// Error returns the message defined for e, concatenated with the result
// of calling Error() on its first cause if one is defined.
func (e Error) Error() string {
	if e.msg == "" && e.cause != nil {
		return e.cause[0].Error()
	}
	if e.cause != nil {
		return e.msg + ": " + e.cause[0].Error()
	}
	return e.msg
}

// Unwrap returns the causes of e, for use by errors.Is/errors.As.
func (e Error) Unwrap() []error {
	if len(e.cause) > 0 {
		return e.cause
	}
	return nil
}

// Is returns whether target is one of e's causes.
func (e Error) Is(target error) bool {
	for _, c := range e.cause {
		if c == target {
			return true
		}
		if is, ok := c.(interface{ Is(error) bool }); ok && is.Is(target) {
			return true
		}
	}
	return false
}
