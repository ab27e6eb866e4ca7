package automaton

import "slices"

// Closure returns every state reachable from set through zero or more ε
// transitions, set included. The result is canonical, so
// Closure(Closure(s)) equals Closure(s). It panics on out-of-range states.
func (a *NFA) Closure(set StateSet) StateSet {
	visited := make([]bool, len(a.trans))
	result := make([]State, 0, len(set))
	frontier := make([]State, 0, len(set))
	for _, q := range set {
		a.row(q) // range check
		if visited[q] {
			continue
		}
		visited[q] = true
		result = append(result, q)
		frontier = append(frontier, q)
	}

	for len(frontier) > 0 {
		var next []State
		for _, q := range frontier {
			for _, to := range a.trans[q][Epsilon] {
				if visited[to] {
					continue
				}
				visited[to] = true
				result = append(result, to)
				next = append(next, to)
			}
		}
		frontier = next
	}

	slices.Sort(result)
	return StateSet(result)
}

// Move returns the union of the direct r-successors of set, without closure.
// States with no r transition contribute nothing.
func (a *NFA) Move(set StateSet, r rune) StateSet {
	sym := Rune(r)
	var out []State
	for _, q := range set {
		out = append(out, a.row(q)[sym]...)
	}
	return NewStateSet(out...)
}
