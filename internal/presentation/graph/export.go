package graph

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

type Format string

const (
	FormatDOT     Format = "dot"
	FormatMermaid Format = "mermaid"
	FormatJSON    Format = "json"
)

var ErrUnknownFormat = errors.New("unknown output format")

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatDOT, FormatMermaid, FormatJSON:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q (want dot, mermaid or json)", ErrUnknownFormat, s)
}

// Write renders g to w in format f.
func Write(w io.Writer, g *Graph, f Format) error {
	switch f {
	case FormatDOT:
		return WriteDOT(w, g)
	case FormatMermaid:
		_, err := io.WriteString(w, GenerateMermaid(g))
		return err
	case FormatJSON:
		return WriteJSON(w, g)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
}

func (g *Graph) nodeID(q int) string {
	if g.Kind == KindDFA {
		return fmt.Sprintf("q%d", q)
	}
	return fmt.Sprintf("n%d", q)
}

// WriteDOT prints the Graphviz form of g. Each layer shares a rank.
func WriteDOT(w io.Writer, g *Graph) error {
	var sb strings.Builder
	sb.WriteString("digraph G {\n")
	sb.WriteString("    rankdir=LR;\n")

	for _, n := range g.Nodes {
		shape := "circle"
		if n.Accepting {
			shape = "doublecircle"
		}
		label := dotEscape(n.Label)
		if len(n.Members) > 0 {
			label += `\n` + members(n.Members)
		}
		fmt.Fprintf(&sb, "    %s [shape=%s, label=\"%s\"];\n", g.nodeID(n.ID), shape, label)
	}
	for _, layer := range g.Layers {
		ids := make([]string, len(layer))
		for i, q := range layer {
			ids[i] = g.nodeID(q)
		}
		fmt.Fprintf(&sb, "    { rank=same; %s; }\n", strings.Join(ids, "; "))
	}
	for _, e := range g.Edges {
		fmt.Fprintf(&sb, "    %s -> %s [label=\"%s\"];\n", g.nodeID(e.From), g.nodeID(e.To), dotEscape(e.Label))
	}
	for _, n := range g.Nodes {
		if n.Start {
			fmt.Fprintf(&sb, "    _start [shape=point]; _start -> %s;\n", g.nodeID(n.ID))
		}
	}

	sb.WriteString("}\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

// GenerateMermaid produces a Mermaid flowchart. The start node is a circle,
// accepting nodes are double circles and the rest are rounded boxes.
func GenerateMermaid(g *Graph) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	for _, n := range g.Nodes {
		label := n.Label
		if len(n.Members) > 0 {
			label = n.Label + " " + members(n.Members)
		}
		label = mermaidEscape(label)

		opener, closer := "(", ")"
		switch {
		case n.Accepting:
			opener, closer = "(((", ")))"
		case n.Start:
			opener, closer = "((", "))"
		}
		fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", g.nodeID(n.ID), opener, label, closer)
	}
	for _, e := range g.Edges {
		fmt.Fprintf(&sb, "    %s -- \"%s\" --> %s\n", g.nodeID(e.From), mermaidEscape(e.Label), g.nodeID(e.To))
	}

	sb.WriteString("\n    classDef start stroke:#01579b,stroke-width:3px;\n")
	for _, n := range g.Nodes {
		if n.Start {
			fmt.Fprintf(&sb, "    class %s start;\n", g.nodeID(n.ID))
		}
	}
	return sb.String()
}

func WriteJSON(w io.Writer, g *Graph) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(g)
}

func members(qs []int) string {
	parts := make([]string, len(qs))
	for i, q := range qs {
		parts[i] = fmt.Sprint(q)
	}
	return "{" + strings.Join(parts, ",") + "}"
}

func dotEscape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}

func mermaidEscape(s string) string {
	return strings.ReplaceAll(s, `"`, "#quot;")
}
