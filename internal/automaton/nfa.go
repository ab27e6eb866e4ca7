package automaton

import (
	"fmt"
	"slices"

	"automata/internal/regex"
)

// NFA is a nondeterministic automaton over dense state indices 0..NumStates()-1.
// It is immutable once Build returns and safe for concurrent readers.
type NFA struct {
	start     State
	accepting StateSet
	trans     []map[Symbol]StateSet
	alphabet  []rune
}

// Edge is one labelled transition.
type Edge struct {
	From   State
	Symbol Symbol
	To     State
}

func (e Edge) String() string {
	return fmt.Sprintf("%d -%s-> %d", e.From, e.Symbol, e.To)
}

func (a *NFA) NumStates() int { return len(a.trans) }
func (a *NFA) Start() State   { return a.start }

// Accepting returns the accepting states. Thompson construction yields exactly one.
func (a *NFA) Accepting() StateSet { return slices.Clone(a.accepting) }

func (a *NFA) IsAccepting(q State) bool { return a.accepting.Contains(q) }

// Alphabet returns the runes used by any transition, ascending. Epsilon is excluded.
func (a *NFA) Alphabet() []rune { return slices.Clone(a.alphabet) }

// Targets returns the destinations of q on sym. It panics if q is out of range.
func (a *NFA) Targets(q State, sym Symbol) StateSet {
	return slices.Clone(a.row(q)[sym])
}

// Symbols returns the labels leaving q, Epsilon first, then runes ascending.
func (a *NFA) Symbols(q State) []Symbol {
	row := a.row(q)
	out := make([]Symbol, 0, len(row))
	for sym := range row {
		out = append(out, sym)
	}
	slices.SortFunc(out, compareSymbols)
	return out
}

// Edges lists every transition ordered by source, symbol and destination.
func (a *NFA) Edges() []Edge {
	var out []Edge
	for q := range a.trans {
		from := State(q)
		for _, sym := range a.Symbols(from) {
			for _, to := range a.trans[q][sym] {
				out = append(out, Edge{From: from, Symbol: sym, To: to})
			}
		}
	}
	return out
}

func (a *NFA) row(q State) map[Symbol]StateSet {
	if q < 0 || int(q) >= len(a.trans) {
		panic(fmt.Sprintf("automaton: state %d out of range [0,%d)", q, len(a.trans)))
	}
	return a.trans[q]
}

// builder is exclusively owned by one Build call; nothing it holds escapes
// until construction is finished.
type builder struct {
	nfa   *NFA
	runes map[rune]struct{}
}

// Build lowers tree into an NFA by Thompson's construction. The result has one
// start state and one accepting state. Equal trees yield identically numbered
// automata.
func Build(tree regex.Node) *NFA {
	b := &builder{nfa: &NFA{}, runes: map[rune]struct{}{}}
	start, end := b.build(tree, noState)

	a := b.nfa
	a.start = start
	a.accepting = NewStateSet(end)
	a.alphabet = make([]rune, 0, len(b.runes))
	for r := range b.runes {
		a.alphabet = append(a.alphabet, r)
	}
	slices.Sort(a.alphabet)
	return a
}

func (b *builder) newState() State {
	b.nfa.trans = append(b.nfa.trans, map[Symbol]StateSet{})
	return State(len(b.nfa.trans) - 1)
}

// fragmentStart reuses join when one is supplied.
func (b *builder) fragmentStart(join State) State {
	if join != noState {
		return join
	}
	return b.newState()
}

func (b *builder) addEdge(from State, sym Symbol, to State) {
	row := b.nfa.trans[from]
	row[sym] = row[sym].insert(to)
	if r, ok := sym.Rune(); ok {
		b.runes[r] = struct{}{}
	}
}

// build returns the start and end of the fragment for n. If join is not
// noState the fragment starts at join instead of a fresh state.
func (b *builder) build(n regex.Node, join State) (start, end State) {
	switch t := n.(type) {
	case regex.Char:
		start = b.fragmentStart(join)
		end = b.newState()
		b.addEdge(start, Rune(t.Rune), end)
		return start, end

	case regex.Concat:
		// The right fragment starts on the left fragment's end: no glue state, no ε edge.
		// A join handed to a Concat belongs to its leftmost leaf.
		lStart, lEnd := b.build(t.Left, join)
		_, rEnd := b.build(t.Right, lEnd)
		return lStart, rEnd

	case regex.Or:
		start = b.fragmentStart(join)
		end = b.newState()
		lStart, lEnd := b.build(t.Left, noState)
		rStart, rEnd := b.build(t.Right, noState)
		b.addEdge(start, Epsilon, lStart)
		b.addEdge(start, Epsilon, rStart)
		b.addEdge(lEnd, Epsilon, end)
		b.addEdge(rEnd, Epsilon, end)
		return start, end

	case regex.Star:
		start = b.fragmentStart(join)
		end = b.newState()
		iStart, iEnd := b.build(t.Inner, noState)
		b.addEdge(start, Epsilon, end)
		b.addEdge(start, Epsilon, iStart)
		b.addEdge(iEnd, Epsilon, iStart)
		b.addEdge(iEnd, Epsilon, end)
		return start, end

	default:
		panic(fmt.Sprintf("automaton: unknown node %T", n))
	}
}
