package automaton

// Accepts runs input through the NFA by alternating Move and Closure.
func (a *NFA) Accepts(input string) bool {
	cur := a.Closure(NewStateSet(a.start))
	for _, r := range input {
		cur = a.Closure(a.Move(cur, r))
		if len(cur) == 0 {
			return false
		}
	}
	return cur.Intersects(a.accepting)
}

// Accepts walks input through the DFA from its start state.
func (d *DFA) Accepts(input string) bool {
	q := d.Start()
	for _, r := range input {
		next, ok := d.trans[q][r]
		if !ok {
			return false
		}
		q = next
	}
	return d.accepting[q]
}
