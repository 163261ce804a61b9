package tablecache

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Cache_MissThenRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "tables")
	c := New(dir)

	key := Key("S;ab;S->aSb|;S")

	_, ok, err := c.Get(key)
	require.NoError(t, err)
	assert.False(t, ok)

	e := Entry{
		NumStates:   2,
		Terminals:   []rune{'a', 'b'},
		NonTerms:    []rune{'S'},
		ActionKind:  []int{1, 0, 0, 2},
		ActionState: []int{1, 0, 0, 0},
		ActionLHS:   []rune{0, 0, 'S', 'S'},
		ActionRHS:   []string{"", "", "aSb", "aSb"},
		Goto:        []int{-1, 1},
	}

	require.NoError(t, c.Put(key, e))

	got, ok, err := c.Get(key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, e, got)
}

func Test_Key_Deterministic(t *testing.T) {
	assert.Equal(t, Key("abc"), Key("abc"))
	assert.NotEqual(t, Key("abc"), Key("abd"))
}
