// Package regex holds the abstract syntax tree consumed by the automaton
// builder. Trees are immutable once constructed and are owned by the caller.
package regex

import (
	"strconv"
	"strings"
)

type Kind int

const (
	KindChar Kind = iota
	KindConcat
	KindOr
	KindStar
)

func (k Kind) String() string {
	switch k {
	case KindChar:
		return "char"
	case KindConcat:
		return "concat"
	case KindOr:
		return "or"
	case KindStar:
		return "star"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Node is one of Char, Concat, Or or Star.
type Node interface {
	Kind() Kind
	// String renders the node in the functional form accepted by astfile.
	String() string
	node()
}

// Char matches exactly one rune.
type Char struct {
	Rune rune
}

// Concat matches Left followed by Right.
type Concat struct {
	Left, Right Node
}

// Or matches either Left or Right.
type Or struct {
	Left, Right Node
}

// Star matches zero or more repetitions of Inner.
type Star struct {
	Inner Node
}

func (Char) Kind() Kind   { return KindChar }
func (Concat) Kind() Kind { return KindConcat }
func (Or) Kind() Kind     { return KindOr }
func (Star) Kind() Kind   { return KindStar }

func (Char) node()   {}
func (Concat) node() {}
func (Or) node()     {}
func (Star) node()   {}

func (c Char) String() string   { return "char(" + strconv.QuoteRune(c.Rune) + ")" }
func (c Concat) String() string { return binary("concat", c.Left, c.Right) }
func (o Or) String() string     { return binary("or", o.Left, o.Right) }
func (s Star) String() string   { return "star(" + s.Inner.String() + ")" }

func binary(name string, l, r Node) string {
	var sb strings.Builder
	sb.WriteString(name)
	sb.WriteByte('(')
	sb.WriteString(l.String())
	sb.WriteString(", ")
	sb.WriteString(r.String())
	sb.WriteByte(')')
	return sb.String()
}

// Lit builds the concatenation of the runes of s. s must not be empty.
func Lit(s string) Node {
	var n Node
	for _, r := range s {
		if n == nil {
			n = Char{Rune: r}
			continue
		}
		n = Concat{Left: n, Right: Char{Rune: r}}
	}
	if n == nil {
		panic("regex: empty literal")
	}
	return n
}

// Walk visits n and its subtrees in pre-order, left before right.
func Walk(n Node, visit func(Node)) {
	visit(n)
	switch t := n.(type) {
	case Concat:
		Walk(t.Left, visit)
		Walk(t.Right, visit)
	case Or:
		Walk(t.Left, visit)
		Walk(t.Right, visit)
	case Star:
		Walk(t.Inner, visit)
	}
}

// Runes returns the distinct runes used by the tree in first-seen order.
func Runes(n Node) []rune {
	seen := map[rune]struct{}{}
	var out []rune
	Walk(n, func(n Node) {
		c, ok := n.(Char)
		if !ok {
			return
		}
		if _, dup := seen[c.Rune]; !dup {
			seen[c.Rune] = struct{}{}
			out = append(out, c.Rune)
		}
	})
	return out
}
