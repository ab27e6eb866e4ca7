package regex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	n := Concat{Left: Char{Rune: 'a'}, Right: Star{Inner: Or{Left: Char{Rune: 'b'}, Right: Char{Rune: '\''}}}}
	assert.Equal(t, `concat(char('a'), star(or(char('b'), char('\''))))`, n.String())
}

func TestLit(t *testing.T) {
	assert.Equal(t, Concat{Left: Concat{Left: Char{Rune: 'a'}, Right: Char{Rune: 'b'}}, Right: Char{Rune: 'c'}}, Lit("abc"))
	assert.Equal(t, Char{Rune: 'z'}, Lit("z"))
	assert.Panics(t, func() { Lit("") })
}

func TestWalkOrder(t *testing.T) {
	var kinds []Kind
	Walk(Or{Left: Star{Inner: Char{Rune: 'a'}}, Right: Lit("bc")}, func(n Node) { kinds = append(kinds, n.Kind()) })
	assert.Equal(t, []Kind{KindOr, KindStar, KindChar, KindConcat, KindChar, KindChar}, kinds)
}

func TestRunesFirstSeen(t *testing.T) {
	assert.Equal(t, []rune{'b', 'a'}, Runes(Or{Left: Lit("ba"), Right: Star{Inner: Lit("ab")}}))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "star", KindStar.String())
	assert.Equal(t, "Kind(9)", Kind(9).String())
}
