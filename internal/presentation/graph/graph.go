// Package graph turns finished automata into display data: nodes grouped in
// breadth-first layers from the start state plus labelled edges. Layout and
// drawing belong to whatever consumes the exported text.
package graph

import (
	"strconv"

	"automata/internal/automaton"
)

type Kind string

const (
	KindNFA Kind = "nfa"
	KindDFA Kind = "dfa"
)

type Node struct {
	ID        int    `json:"id"`
	Label     string `json:"label"`
	Layer     int    `json:"layer"`
	Start     bool   `json:"start,omitempty"`
	Accepting bool   `json:"accepting,omitempty"`
	// Members holds the NFA states a DFA node stands for.
	Members []int `json:"members,omitempty"`
}

type Edge struct {
	From  int    `json:"from"`
	To    int    `json:"to"`
	Label string `json:"label"`
}

// Graph is indexed by state: Nodes[i].ID == i.
type Graph struct {
	Kind   Kind    `json:"kind"`
	Nodes  []Node  `json:"nodes"`
	Edges  []Edge  `json:"edges"`
	Layers [][]int `json:"layers"`
}

// automatonView is satisfied by both *automaton.NFA and *automaton.DFA.
type automatonView interface {
	NumStates() int
	Start() automaton.State
	IsAccepting(automaton.State) bool
	Edges() []automaton.Edge
}

func FromNFA(a *automaton.NFA) *Graph {
	return layout(KindNFA, a, nil)
}

func FromDFA(d *automaton.DFA) *Graph {
	return layout(KindDFA, d, func(q automaton.State) []int {
		key := d.Key(q)
		out := make([]int, len(key))
		for i, s := range key {
			out[i] = int(s)
		}
		return out
	})
}

// layout walks the automaton breadth-first from its start state. Edges come
// out in the order their source is visited; states the walk never reaches
// form one trailing layer.
func layout(kind Kind, a automatonView, members func(automaton.State) []int) *Graph {
	n := a.NumStates()
	out := make([][]automaton.Edge, n)
	for _, e := range a.Edges() {
		out[e.From] = append(out[e.From], e)
	}

	g := &Graph{Kind: kind, Nodes: make([]Node, n)}
	for q := range g.Nodes {
		st := automaton.State(q)
		g.Nodes[q] = Node{
			ID:        q,
			Label:     strconv.Itoa(q),
			Start:     st == a.Start(),
			Accepting: a.IsAccepting(st),
		}
		if members != nil {
			g.Nodes[q].Members = members(st)
		}
	}
	if n == 0 {
		return g
	}

	done := make([]bool, n)
	visit := func(layer []int) []int {
		var next []int
		for _, q := range layer {
			g.Nodes[q].Layer = len(g.Layers)
			for _, e := range out[q] {
				g.Edges = append(g.Edges, Edge{From: int(e.From), To: int(e.To), Label: e.Symbol.Label()})
				if !done[e.To] {
					done[e.To] = true
					next = append(next, int(e.To))
				}
			}
		}
		g.Layers = append(g.Layers, layer)
		return next
	}

	start := int(a.Start())
	done[start] = true
	for layer := []int{start}; len(layer) > 0; {
		layer = visit(layer)
	}

	var rest []int
	for q := range done {
		if !done[q] {
			done[q] = true
			rest = append(rest, q)
		}
	}
	if len(rest) > 0 {
		visit(rest)
	}
	return g
}
