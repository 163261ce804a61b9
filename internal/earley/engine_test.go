package earley

import (
	"strings"
	"testing"

	"github.com/dekarrin/cfgrecon/internal/cfgerr"
	"github.com/dekarrin/cfgrecon/internal/grammar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// balancedAnBn builds S -> aSb | epsilon (spec scenario S1).
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

// xGrammar builds S -> XX, X -> aX | b (spec scenario S2).
func xGrammar(t *testing.T) *Engine {
	t.Helper()
	g, err := grammar.New([]rune{'S', 'X'}, []rune{'a', 'b'}, 'S')
	require.NoError(t, err)
	require.NoError(t, g.AddRule('S', grammar.Production("XX")))
	require.NoError(t, g.AddRule('X', grammar.Production("aX")))
	require.NoError(t, g.AddRule('X', grammar.Production("b")))
	e, err := New(g)
	require.NoError(t, err)
	return e
}

func countB(s string) int {
	n := 0
	for _, c := range s {
		if c == 'b' {
			n++
		}
	}
	return n
}

func Test_Engine_S2_XGrammar_ExhaustiveUpToLen9(t *testing.T) {
	e := xGrammar(t)

	var gen func(prefix string, n int)
	gen = func(prefix string, n int) {
		if n == 0 {
			want := countB(prefix) == 2 && strings.HasSuffix(prefix, "b")
			ok, err := e.Predict(prefix)
			assert.NoError(t, err)
			assert.Equalf(t, want, ok, "predict(%q)", prefix)
			return
		}
		gen(prefix+"a", n-1)
		gen(prefix+"b", n-1)
	}

	for length := 0; length <= 9; length++ {
		gen("", length)
	}
}

// arithGrammar builds S3 from the spec: S->S+M|M, M->M*T|T, T->0|...|9.
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

// balancedBrackets builds S4: S -> epsilon | (S)S.
func balancedBrackets(t *testing.T) *Engine {
	t.Helper()
	g, err := grammar.New([]rune{'S'}, []rune{'(', ')'}, 'S')
	require.NoError(t, err)
	require.NoError(t, g.AddRule('S', grammar.Epsilon))
	require.NoError(t, g.AddRule('S', grammar.Production("(S)S")))
	e, err := New(g)
	require.NoError(t, err)
	return e
}

func Test_Engine_S4_BalancedBrackets(t *testing.T) {
	e := balancedBrackets(t)

	yes := []string{"", "()()", "((()))", "()(())(()(()()))"}
	no := []string{")", "(", ")()("}

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

func Test_Engine_S4_BalancedBrackets_LongInputs(t *testing.T) {
	e := balancedBrackets(t)

	balanced := strings.Repeat("(", 500) + strings.Repeat(")", 500)
	ok, err := e.Predict(balanced)
	assert.NoError(t, err)
	assert.True(t, ok)

	unbalanced := strings.Repeat("(", 500)
	ok, err = e.Predict(unbalanced)
	assert.NoError(t, err)
	assert.False(t, ok)
}

// S5: non-LR(1) grammar that Earley must still accept.
func Test_Engine_S5_NonLR1ToleratedByEarley(t *testing.T) {
	g, err := grammar.New([]rune{'S', 'A', 'B'}, []rune{'a', 'b', 'c', 'd', 'z'}, 'S')
	require.NoError(t, err)
	require.NoError(t, g.AddRule('S', grammar.Production("aAc")))
	require.NoError(t, g.AddRule('S', grammar.Production("aBcd")))
	require.NoError(t, g.AddRule('A', grammar.Production("z")))
	require.NoError(t, g.AddRule('B', grammar.Production("z")))

	e, err := New(g)
	require.NoError(t, err)

	for w, want := range map[string]bool{"azc": true, "azcd": true, "az": false} {
		ok, err := e.Predict(w)
		assert.NoError(t, err)
		assert.Equalf(t, want, ok, "predict(%q)", w)
	}
}

// S6: ambiguous grammar S -> SS | a | epsilon; construction and predict
// must terminate despite infinite leftmost derivations.
func Test_Engine_S6_AmbiguousTerminates(t *testing.T) {
	g, err := grammar.New([]rune{'S'}, []rune{'a'}, 'S')
	require.NoError(t, err)
	require.NoError(t, g.AddRule('S', grammar.Production("SS")))
	require.NoError(t, g.AddRule('S', grammar.Production("a")))
	require.NoError(t, g.AddRule('S', grammar.Epsilon))

	e, err := New(g)
	require.NoError(t, err)

	for _, w := range []string{"", "a", "aaaa"} {
		ok, err := e.Predict(w)
		assert.NoError(t, err)
		assert.True(t, ok)
	}
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

	// mutate the caller's grammar after engine construction
	require.NoError(t, g.AddRule('S', grammar.Production("aa")))

	ok, err := e.Predict("aa")
	assert.NoError(t, err)
	assert.False(t, ok, "engine must not observe post-construction mutation of the caller's grammar")
}
