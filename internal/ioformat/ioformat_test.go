package ioformat

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dekarrin/cfgrecon/internal/cfgerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Read_BalancedAnBn(t *testing.T) {
	input := strings.Join([]string{
		"1 2 2",
		"S",
		"ab",
		"S -> aSb",
		"S -> ",
		"S",
		"3",
		"",
		"ab",
		"aabb",
	}, "\n") + "\n"

	doc, err := Read(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []string{"", "ab", "aabb"}, doc.Words)
	assert.True(t, doc.Grammar.IsNonTerminal('S'))
	assert.True(t, doc.Grammar.IsTerminal('a'))
	assert.True(t, doc.Grammar.IsTerminal('b'))
	assert.Equal(t, 'S', doc.Grammar.Start())
}

func Test_Read_RejectsBadHeader(t *testing.T) {
	_, err := Read(strings.NewReader("not a header\n"))
	assert.Error(t, err)
}

func Test_Read_RejectsUndeclaredRuleSymbol(t *testing.T) {
	input := strings.Join([]string{
		"1 1 1",
		"S",
		"a",
		"S -> Sz",
		"S",
		"0",
	}, "\n") + "\n"

	_, err := Read(strings.NewReader(input))
	assert.ErrorIs(t, err, cfgerr.ErrInvalidRule)
}

func Test_WriteResults(t *testing.T) {
	var buf bytes.Buffer
	err := WriteResults(&buf, []bool{true, false, true})
	require.NoError(t, err)
	assert.Equal(t, "Yes\nNo\nYes\n", buf.String())
}
