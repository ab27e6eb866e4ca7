package automaton

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"automata/internal/regex"
)

// ------------------------------------------------------------------- helpers

func ch(r rune) regex.Node           { return regex.Char{Rune: r} }
func cat(l, r regex.Node) regex.Node { return regex.Concat{Left: l, Right: r} }
func or(l, r regex.Node) regex.Node  { return regex.Or{Left: l, Right: r} }
func star(n regex.Node) regex.Node   { return regex.Star{Inner: n} }

// sampleTrees covers every node kind and the nestings that stress join reuse.
func sampleTrees() map[string]regex.Node {
	a, b, c := ch('a'), ch('b'), ch('c')
	return map[string]regex.Node{
		"a":           a,
		"ab":          cat(a, b),
		"a|b":         or(a, b),
		"a*":          star(a),
		"a(b|c)*":     cat(a, star(or(b, c))),
		"(ab)*":       star(cat(a, b)),
		"a*b*":        cat(star(a), star(b)),
		"ab|a":        or(cat(a, b), a),
		"a**":         star(star(a)),
		"(a|b)c*a":    cat(or(a, b), cat(star(c), a)),
		"((ab|a)*)c":  cat(star(or(cat(a, b), a)), c),
		"a(b(c))":     cat(a, cat(b, c)),
		"a(b*|c)":     cat(a, or(star(b), c)),
		"(a|b)*(ab)*": cat(star(or(a, b)), star(cat(a, b))),
	}
}

type shape struct {
	states, edges, epsilons int
}

func shapeOf(a *NFA) shape {
	s := shape{states: a.NumStates()}
	for _, e := range a.Edges() {
		s.edges++
		if e.Symbol.IsEpsilon() {
			s.epsilons++
		}
	}
	return s
}

// ------------------------------------------------------------------- structure

func TestBuildChar(t *testing.T) {
	a := Build(ch('x'))

	assert.Equal(t, 2, a.NumStates())
	assert.Equal(t, State(0), a.Start())
	assert.Equal(t, NewStateSet(1), a.Accepting())
	assert.Equal(t, []Edge{{From: 0, Symbol: Rune('x'), To: 1}}, a.Edges())
	assert.Equal(t, []rune{'x'}, a.Alphabet())
}

func TestBuildConcatReusesJoinState(t *testing.T) {
	left, right := ch('a'), star(or(ch('b'), ch('c')))
	l, r := shapeOf(Build(left)), shapeOf(Build(right))

	a := Build(cat(left, right))
	got := shapeOf(a)

	// The shared boundary state is counted once; no glue state or ε edge is added.
	assert.Equal(t, l.states+r.states-1, got.states)
	assert.Equal(t, l.edges+r.edges, got.edges)
	assert.Equal(t, l.epsilons+r.epsilons, got.epsilons)
}

func TestBuildConcatLayout(t *testing.T) {
	a := Build(cat(ch('a'), ch('b')))

	want := []Edge{
		{From: 0, Symbol: Rune('a'), To: 1},
		{From: 1, Symbol: Rune('b'), To: 2},
	}
	if diff := cmp.Diff(want, a.Edges(), cmp.Comparer(func(x, y Symbol) bool { return x == y })); diff != "" {
		t.Fatalf("edges mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, NewStateSet(2), a.Accepting())
}

func TestBuildOr(t *testing.T) {
	left, right := cat(ch('a'), ch('b')), star(ch('c'))
	l, r := shapeOf(Build(left)), shapeOf(Build(right))

	got := shapeOf(Build(or(left, right)))

	assert.Equal(t, l.states+r.states+2, got.states)
	assert.Equal(t, l.edges+r.edges+4, got.edges)
	assert.Equal(t, l.epsilons+r.epsilons+4, got.epsilons)
}

func TestBuildStar(t *testing.T) {
	inner := or(ch('a'), ch('b'))
	in := shapeOf(Build(inner))

	a := Build(star(inner))
	got := shapeOf(a)

	assert.Equal(t, in.states+2, got.states)
	assert.Equal(t, in.edges+4, got.edges)
	assert.Equal(t, in.epsilons+4, got.epsilons)

	// star allocates 0 (start) and 1 (end) before the inner fragment, whose
	// own start is 2 and end is 3.
	start, end, iStart, iEnd := State(0), State(1), State(2), State(3)
	assert.Equal(t, NewStateSet(end, iStart), a.Targets(start, Epsilon))
	assert.True(t, a.Targets(iEnd, Epsilon).Contains(iStart), "inner end must loop back to inner start")
	assert.True(t, a.Targets(iEnd, Epsilon).Contains(end), "inner end must exit")
}

func TestBuildInvariants(t *testing.T) {
	for name, tree := range sampleTrees() {
		t.Run(name, func(t *testing.T) {
			a := Build(tree)
			n := a.NumStates()

			require.Less(t, int(a.Start()), n)
			require.Len(t, a.Accepting(), 1)
			for _, q := range a.Accepting() {
				assert.Less(t, int(q), n)
			}
			for _, e := range a.Edges() {
				assert.Less(t, int(e.From), n)
				assert.Less(t, int(e.To), n)
			}
		})
	}
}

func TestBuildAlphabetExcludesEpsilon(t *testing.T) {
	a := Build(cat(star(or(ch('c'), ch('a'))), ch('b')))
	assert.Equal(t, []rune{'a', 'b', 'c'}, a.Alphabet())
}

func TestBuildIsDeterministic(t *testing.T) {
	for name, tree := range sampleTrees() {
		t.Run(name, func(t *testing.T) {
			first, second := Build(tree), Build(tree)
			assert.Equal(t, first.NumStates(), second.NumStates())
			assert.Equal(t, first.Edges(), second.Edges())
			assert.Equal(t, first.Start(), second.Start())
		})
	}
}

func TestTargetsOutOfRangePanics(t *testing.T) {
	a := Build(ch('a'))
	assert.Panics(t, func() { a.Targets(2, Epsilon) })
	assert.Panics(t, func() { a.Targets(-1, Rune('a')) })
}

func TestSymbolsOrder(t *testing.T) {
	a := Build(star(ch('z')))
	// inner end (3) has only ε edges, inner start (2) has only 'z'.
	assert.Equal(t, []Symbol{Epsilon}, a.Symbols(3))
	assert.Equal(t, []Symbol{Rune('z')}, a.Symbols(2))
	assert.Empty(t, a.Symbols(1))
}

func TestSymbolEpsilonIsDistinct(t *testing.T) {
	assert.True(t, Epsilon.IsEpsilon())
	assert.NotEqual(t, Epsilon, Rune(0))
	assert.NotEqual(t, Epsilon, Rune('ε'))

	r, ok := Rune('q').Rune()
	assert.True(t, ok)
	assert.Equal(t, 'q', r)

	_, ok = Epsilon.Rune()
	assert.False(t, ok)
}
