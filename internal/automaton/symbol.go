package automaton

import "strconv"

// Symbol labels a transition: either Epsilon or a single input rune.
// The zero value is Epsilon, which no rune can collide with.
type Symbol struct {
	r      rune
	isRune bool
}

// Epsilon labels transitions taken without consuming input.
var Epsilon = Symbol{}

// Rune returns the symbol consuming r.
func Rune(r rune) Symbol { return Symbol{r: r, isRune: true} }

func (s Symbol) IsEpsilon() bool { return !s.isRune }

// Rune returns the consumed rune and false for Epsilon.
func (s Symbol) Rune() (rune, bool) { return s.r, s.isRune }

func (s Symbol) String() string {
	if !s.isRune {
		return "ε"
	}
	return strconv.QuoteRune(s.r)
}

// Label is String without quotes, for diagrams.
func (s Symbol) Label() string {
	if !s.isRune {
		return "ε"
	}
	return string(s.r)
}

// compareSymbols orders Epsilon first, then runes ascending.
func compareSymbols(a, b Symbol) int {
	switch {
	case a.isRune != b.isRune:
		if !a.isRune {
			return -1
		}
		return 1
	case a.r < b.r:
		return -1
	case a.r > b.r:
		return 1
	}
	return 0
}
