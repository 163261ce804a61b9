package lr

import (
	"strings"
	"testing"

	"github.com/dekarrin/cfgrecon/internal/cfgerr"
	"github.com/dekarrin/cfgrecon/internal/grammar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// arithGrammar builds S3 from the spec: S->S+M|M, M->M*T|T, T->0|...|9.
// This grammar is LR(1) (it's the textbook left-recursive expression
// grammar), unlike its ambiguous right-recursive cousin.
func arithGrammar(t *testing.T) *Engine {
	t.Helper()
	terms := []rune("0123456789+*")
	g, err := grammar.New([]rune{'S', 'M', 'T'}, terms, 'S')
	require.NoError(t, err)
	require.NoError(t, g.AddRule('S', grammar.Production("S+M")))
	require.NoError(t, g.AddRule('S', grammar.Production("M")))
	require.NoError(t, g.AddRule('M', grammar.Production("M*T")))
	require.NoError(t, g.AddRule('M', grammar.Production("T")))
	for _, d := range "0123456789" {
		require.NoError(t, g.AddRule('T', grammar.Production(string(d))))
	}
	e, err := New(g)
	require.NoError(t, err)
	return e
}

func Test_Engine_S3_Arithmetic(t *testing.T) {
	e := arithGrammar(t)

	yes := []string{"1", "1*4", "4+5*0", "1+4+7*0"}
	no := []string{"", "1**1", "1*+1", "1+*1", "1++1", "+1*", "+1*1"}

	for _, w := range yes {
		ok, err := e.Predict(w)
		assert.NoError(t, err)
		assert.Truef(t, ok, "expected Yes for %q", w)
	}
	for _, w := range no {
		ok, err := e.Predict(w)
		assert.NoError(t, err)
		assert.Falsef(t, ok, "expected No for %q", w)
	}
}

// balancedAnBn builds S -> aSb | epsilon (spec scenario S1), which is
// LR(1).
func balancedAnBn(t *testing.T) *Engine {
	t.Helper()
	g, err := grammar.New([]rune{'S'}, []rune{'a', 'b'}, 'S')
	require.NoError(t, err)
	require.NoError(t, g.AddRule('S', grammar.Production("aSb")))
	require.NoError(t, g.AddRule('S', grammar.Epsilon))
	e, err := New(g)
	require.NoError(t, err)
	return e
}

func Test_Engine_S1_BalancedAnBn(t *testing.T) {
	e := balancedAnBn(t)

	yes := []string{"", "ab", "aabb", strings.Repeat("a", 6) + strings.Repeat("b", 6)}
	no := []string{"a", "b", "abb", "aaabbbb"}

	for _, w := range yes {
		ok, err := e.Predict(w)
		assert.NoError(t, err)
		assert.Truef(t, ok, "expected Yes for %q", w)
	}
	for _, w := range no {
		ok, err := e.Predict(w)
		assert.NoError(t, err)
		assert.Falsef(t, ok, "expected No for %q", w)
	}
}

// S -> XX, X -> aX | b (spec scenario S2), LR(1).
func Test_Engine_S2_XGrammar(t *testing.T) {
	g, err := grammar.New([]rune{'S', 'X'}, []rune{'a', 'b'}, 'S')
	require.NoError(t, err)
	require.NoError(t, g.AddRule('S', grammar.Production("XX")))
	require.NoError(t, g.AddRule('X', grammar.Production("aX")))
	require.NoError(t, g.AddRule('X', grammar.Production("b")))
	e, err := New(g)
	require.NoError(t, err)

	yes := []string{"bb", "abb", "abab", "aabaab"}
	no := []string{"", "b", "a", "bbb", "aab"}

	for _, w := range yes {
		ok, err := e.Predict(w)
		assert.NoError(t, err)
		assert.Truef(t, ok, "expected Yes for %q", w)
	}
	for _, w := range no {
		ok, err := e.Predict(w)
		assert.NoError(t, err)
		assert.Falsef(t, ok, "expected No for %q", w)
	}
}

// S5: the spec's example of a grammar that is not LR(1) - two rules
// share a prefix long enough that one lookahead of lookahead can't
// distinguish the reductions needed. Construction must fail, not
// silently misrecognize.
func Test_Engine_S5_NotLR1Rejected(t *testing.T) {
	g, err := grammar.New([]rune{'S', 'A', 'B'}, []rune{'a', 'b', 'c', 'd', 'z'}, 'S')
	require.NoError(t, err)
	require.NoError(t, g.AddRule('S', grammar.Production("aAc")))
	require.NoError(t, g.AddRule('S', grammar.Production("aBcd")))
	require.NoError(t, g.AddRule('A', grammar.Production("z")))
	require.NoError(t, g.AddRule('B', grammar.Production("z")))

	_, err = New(g)
	assert.ErrorIs(t, err, cfgerr.ErrNotLR1)
}

// Classic reduce/reduce conflict: S -> A | B, A -> a, B -> a. At state
// after shifting 'a' both A->a. and B->a. are complete under the same
// lookahead ($), with no way to choose.
func Test_Engine_ReduceReduceConflictRejected(t *testing.T) {
	g, err := grammar.New([]rune{'S', 'A', 'B'}, []rune{'a'}, 'S')
	require.NoError(t, err)
	require.NoError(t, g.AddRule('S', grammar.Production("A")))
	require.NoError(t, g.AddRule('S', grammar.Production("B")))
	require.NoError(t, g.AddRule('A', grammar.Production("a")))
	require.NoError(t, g.AddRule('B', grammar.Production("a")))

	_, err = New(g)
	assert.ErrorIs(t, err, cfgerr.ErrNotLR1)
}

// Ambiguous grammar S -> SS | a | epsilon is not LR(1) (it is, in fact,
// not even unambiguous), so construction must reject it rather than
// hang or misrecognize.
func Test_Engine_AmbiguousGrammarRejected(t *testing.T) {
	g, err := grammar.New([]rune{'S'}, []rune{'a'}, 'S')
	require.NoError(t, err)
	require.NoError(t, g.AddRule('S', grammar.Production("SS")))
	require.NoError(t, g.AddRule('S', grammar.Production("a")))
	require.NoError(t, g.AddRule('S', grammar.Epsilon))

	_, err = New(g)
	assert.ErrorIs(t, err, cfgerr.ErrNotLR1)
}

func Test_Engine_InvalidInput(t *testing.T) {
	e := balancedAnBn(t)

	_, err := e.Predict("c")

	assert.ErrorIs(t, err, cfgerr.ErrInvalidInput)
}

func Test_Engine_Determinism(t *testing.T) {
	e := arithGrammar(t)

	first, err := e.Predict("1+4+7*0")
	assert.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := e.Predict("1+4+7*0")
		assert.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func Test_Engine_GrammarIsolation(t *testing.T) {
	g, err := grammar.New([]rune{'S'}, []rune{'a'}, 'S')
	require.NoError(t, err)
	require.NoError(t, g.AddRule('S', grammar.Production("a")))

	e, err := New(g)
	require.NoError(t, err)

	require.NoError(t, g.AddRule('S', grammar.Production("aa")))

	ok, err := e.Predict("aa")
	assert.NoError(t, err)
	assert.False(t, ok, "engine must not observe post-construction mutation of the caller's grammar")
}

// Property 7 of the spec: the LR stack never grows past a bound
// proportional to input length, so a long but valid input must still
// terminate promptly rather than blow up combinatorially the way an
// Earley chart over an ambiguous grammar can.
func Test_Engine_LongInputStaysLinear(t *testing.T) {
	g, err := grammar.New([]rune{'S'}, []rune{'a', 'b'}, 'S')
	require.NoError(t, err)
	require.NoError(t, g.AddRule('S', grammar.Production("aSb")))
	require.NoError(t, g.AddRule('S', grammar.Epsilon))
	e, err := New(g)
	require.NoError(t, err)

	balanced := strings.Repeat("a", 2000) + strings.Repeat("b", 2000)
	ok, err := e.Predict(balanced)
	assert.NoError(t, err)
	assert.True(t, ok)
}
