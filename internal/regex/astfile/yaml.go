package astfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"automata/internal/regex"
)

// yamlNode is one mapping with exactly one key set:
//
//	concat:
//	  - char: a
//	  - star:
//	      or: [{char: b}, {char: c}]
type yamlNode struct {
	Char   *string    `yaml:"char"`
	Concat []yamlNode `yaml:"concat"`
	Or     []yamlNode `yaml:"or"`
	Star   *yamlNode  `yaml:"star"`
}

// DecodeYAML reads one tree from a YAML document. Unknown keys are rejected.
func DecodeYAML(r io.Reader) (regex.Node, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var root yamlNode
	if err := dec.Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDocument
		}
		return nil, fmt.Errorf("failed to decode tree: %w", err)
	}
	return root.lower("$")
}

func (n *yamlNode) lower(path string) (regex.Node, error) {
	set := 0
	if n.Char != nil {
		set++
	}
	if n.Concat != nil {
		set++
	}
	if n.Or != nil {
		set++
	}
	if n.Star != nil {
		set++
	}
	if set != 1 {
		return nil, fmt.Errorf("%s: %w: want exactly one of char, concat, or, star", path, ErrInvalidNode)
	}

	switch {
	case n.Char != nil:
		r, err := singleRune(*n.Char)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return regex.Char{Rune: r}, nil
	case n.Concat != nil:
		return foldYAML(path+".concat", n.Concat, func(l, r regex.Node) regex.Node { return regex.Concat{Left: l, Right: r} })
	case n.Or != nil:
		return foldYAML(path+".or", n.Or, func(l, r regex.Node) regex.Node { return regex.Or{Left: l, Right: r} })
	default:
		inner, err := n.Star.lower(path + ".star")
		if err != nil {
			return nil, err
		}
		return regex.Star{Inner: inner}, nil
	}
}

func foldYAML(path string, items []yamlNode, join func(l, r regex.Node) regex.Node) (regex.Node, error) {
	if len(items) < 2 {
		return nil, fmt.Errorf("%s: %w: need at least two operands, got %d", path, ErrInvalidNode, len(items))
	}
	var acc regex.Node
	for i := range items {
		next, err := items[i].lower(fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		if acc == nil {
			acc = next
			continue
		}
		acc = join(acc, next)
	}
	return acc, nil
}

// Load reads a tree from path: YAML for .yaml and .yml files, functional form otherwise.
func Load(path string) (regex.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tree: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		n, err := DecodeYAML(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return n, nil
	default:
		return Parse(path, string(data))
	}
}
