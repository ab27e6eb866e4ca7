// Package astfile reads serialised regex trees. It does not parse regular
// expression syntax: every operator is spelled out, either in functional form
//
//	concat(char('a'), star(or(char('b'), char('c'))))
//
// or as a YAML document (see DecodeYAML).
package astfile

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"automata/internal/regex"
)

var (
	ErrEmptyDocument = errors.New("empty document")
	ErrInvalidChar   = errors.New("char must be exactly one rune")
	ErrInvalidNode   = errors.New("invalid node")
)

type fnNode struct {
	Pos lexer.Position

	Char   *string `parser:"  'char' '(' @Rune ')'"`
	Concat *fnList `parser:"| 'concat' '(' @@ ')'"`
	Or     *fnList `parser:"| 'or' '(' @@ ')'"`
	Star   *fnNode `parser:"| 'star' '(' @@ ')'"`
}

// concat and or take two or more operands; extra operands fold to the left.
type fnList struct {
	Head *fnNode   `parser:"@@"`
	Tail []*fnNode `parser:"( ',' @@ )+"`
}

var (
	fnLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Comment", Pattern: `#[^\n]*`},
		{Name: "Rune", Pattern: `'(?:\\.|[^'\\])*'`},
		{Name: "Ident", Pattern: `[a-zA-Z_]\w*`},
		{Name: "Punct", Pattern: `[(),]`},
		{Name: "Whitespace", Pattern: `\s+`},
	})

	fnParser = participle.MustBuild[fnNode](
		participle.Lexer(fnLexer),
		participle.Elide("Whitespace", "Comment"),
	)
)

// Parse reads a tree in functional form. name is used in error positions.
func Parse(name, src string) (regex.Node, error) {
	if strings.TrimSpace(src) == "" {
		return nil, fmt.Errorf("%s: %w", name, ErrEmptyDocument)
	}
	root, err := fnParser.ParseString(name, src)
	if err != nil {
		return nil, err
	}
	return root.lower()
}

// MustParse is like Parse but panics on error. Intended for tests and fixed trees.
func MustParse(src string) regex.Node {
	n, err := Parse("<inline>", src)
	if err != nil {
		panic(err)
	}
	return n
}

func (n *fnNode) lower() (regex.Node, error) {
	switch {
	case n.Char != nil:
		r, err := unquoteRune(*n.Char)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", n.Pos, err)
		}
		return regex.Char{Rune: r}, nil
	case n.Concat != nil:
		return n.Concat.fold(func(l, r regex.Node) regex.Node { return regex.Concat{Left: l, Right: r} })
	case n.Or != nil:
		return n.Or.fold(func(l, r regex.Node) regex.Node { return regex.Or{Left: l, Right: r} })
	case n.Star != nil:
		inner, err := n.Star.lower()
		if err != nil {
			return nil, err
		}
		return regex.Star{Inner: inner}, nil
	}
	return nil, fmt.Errorf("%s: %w", n.Pos, ErrInvalidNode)
}

func (l *fnList) fold(join func(l, r regex.Node) regex.Node) (regex.Node, error) {
	acc, err := l.Head.lower()
	if err != nil {
		return nil, err
	}
	for _, t := range l.Tail {
		next, err := t.lower()
		if err != nil {
			return nil, err
		}
		acc = join(acc, next)
	}
	return acc, nil
}

func unquoteRune(lit string) (rune, error) {
	s, err := strconv.Unquote(lit)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidChar, lit)
	}
	return singleRune(s)
}

func singleRune(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidChar, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return 0, fmt.Errorf("%w: %q", ErrInvalidChar, s)
	}
	return r, nil
}
