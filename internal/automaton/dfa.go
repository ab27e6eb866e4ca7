package automaton

import (
	"fmt"
	"slices"
)

// DFA is the subset-construction result. Each state is identified by the
// canonical ε-closure it stands for. The DFA keeps no reference to its NFA.
type DFA struct {
	keys      []StateSet
	index     map[string]State
	accepting []bool
	trans     []map[rune]State
	alphabet  []rune
}

func (d *DFA) NumStates() int { return len(d.keys) }

// Start is always 0, the closure of the NFA start state.
func (d *DFA) Start() State { return 0 }

// Key returns the NFA states q stands for.
func (d *DFA) Key(q State) StateSet {
	d.check(q)
	return slices.Clone(d.keys[q])
}

// Lookup finds the DFA state whose key equals set. set must be canonical.
func (d *DFA) Lookup(set StateSet) (State, bool) {
	q, ok := d.index[set.Key()]
	return q, ok
}

func (d *DFA) IsAccepting(q State) bool {
	d.check(q)
	return d.accepting[q]
}

// Next returns the successor of q on r. A missing transition rejects.
func (d *DFA) Next(q State, r rune) (State, bool) {
	d.check(q)
	to, ok := d.trans[q][r]
	return to, ok
}

func (d *DFA) Alphabet() []rune { return slices.Clone(d.alphabet) }

// Edges lists every transition ordered by source then rune.
func (d *DFA) Edges() []Edge {
	var out []Edge
	for q := range d.trans {
		for _, r := range d.alphabet {
			if to, ok := d.trans[q][r]; ok {
				out = append(out, Edge{From: State(q), Symbol: Rune(r), To: to})
			}
		}
	}
	return out
}

func (d *DFA) check(q State) {
	if q < 0 || int(q) >= len(d.keys) {
		panic(fmt.Sprintf("automaton: dfa state %d out of range [0,%d)", q, len(d.keys)))
	}
}

// Determinize builds the DFA equivalent to a by subset construction. Subsets
// are discovered breadth-first with the alphabet in ascending order, so the
// numbering is the same on every run.
func Determinize(a *NFA) *DFA {
	d := &DFA{
		index:    map[string]State{},
		alphabet: a.Alphabet(),
	}
	add := func(key StateSet) State {
		q := State(len(d.keys))
		d.keys = append(d.keys, key)
		d.index[key.Key()] = q
		d.accepting = append(d.accepting, key.Intersects(a.accepting))
		d.trans = append(d.trans, map[rune]State{})
		return q
	}

	queue := []State{add(a.Closure(NewStateSet(a.start)))}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, r := range d.alphabet {
			moved := a.Move(d.keys[cur], r)
			if len(moved) == 0 {
				continue
			}
			next := a.Closure(moved)
			to, ok := d.index[next.Key()]
			if !ok {
				to = add(next)
				queue = append(queue, to)
			}
			d.trans[cur][r] = to
		}
	}
	return d
}
