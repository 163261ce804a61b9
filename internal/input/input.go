// Package input contains identifiers used in reading words to test
// against a grammar from CLI or other sources of input. It is adapted
// from tunaq's internal/input package: the same split between a plain
// DirectWordReader and an InteractiveWordReader built on chzyer/readline
// for an interactive session, retargeted from reading whole game
// commands to reading single words - including, critically, allowing
// the blank line a game command reader would discard, since the empty
// line is this domain's encoding of the empty word epsilon (spec §6).
// Both the batch CLI path and the interactive one drive their loop over
// the same WordReader interface; batch mode builds its DirectWordReader
// over the already-parsed document word list rather than re-reading raw
// stdin, so both paths share one read-predict-print loop regardless of
// where the words came from.
package input

import (
	"bufio"
	"io"

	"github.com/chzyer/readline"
)

// WordReader reads successive words to test against a grammar.
type WordReader interface {
	// ReadWord reads the next word. Returns io.EOF once no more words
	// remain.
	ReadWord() (string, error)

	// Close releases any resources held by the reader.
	Close() error
}

// DirectWordReader reads words from a generic input stream, one per
// line, with no editing support. Build one with NewDirectReader.
type DirectWordReader struct {
	r *bufio.Reader
}

// NewDirectReader creates a DirectWordReader over r.
func NewDirectReader(r io.Reader) *DirectWordReader {
	return &DirectWordReader{r: bufio.NewReader(r)}
}

// ReadWord reads the next line from the stream, stripped of its
// trailing newline. A blank line is a valid word (the empty word) and
// is returned as-is, not skipped.
func (dwr *DirectWordReader) ReadWord() (string, error) {
	line, err := dwr.r.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return trimNewline(line), nil
}

// Close is a no-op; DirectWordReader holds no closeable resources.
func (dwr *DirectWordReader) Close() error {
	return nil
}

// InteractiveWordReader reads words from stdin using GNU-readline-style
// editing and history. Build one with NewInteractiveReader.
type InteractiveWordReader struct {
	rl *readline.Instance
}

// NewInteractiveReader creates an InteractiveWordReader with the given
// prompt.
func NewInteractiveReader(prompt string) (*InteractiveWordReader, error) {
	rl, err := readline.NewEx(&readline.Config{Prompt: prompt})
	if err != nil {
		return nil, err
	}
	return &InteractiveWordReader{rl: rl}, nil
}

// ReadWord reads the next line from stdin via readline. A blank line is
// a valid word (the empty word).
func (iwr *InteractiveWordReader) ReadWord() (string, error) {
	line, err := iwr.rl.Readline()
	if err != nil {
		return "", err
	}
	return line, nil
}

// Close tears down the readline session.
func (iwr *InteractiveWordReader) Close() error {
	return iwr.rl.Close()
}

// SetPrompt updates the interactive prompt.
func (iwr *InteractiveWordReader) SetPrompt(p string) {
	iwr.rl.SetPrompt(p)
}

func trimNewline(line string) string {
	n := len(line)
	if n > 0 && line[n-1] == '\n' {
		line = line[:n-1]
	}
	n = len(line)
	if n > 0 && line[n-1] == '\r' {
		line = line[:n-1]
	}
	return line
}
