package automaton

import (
	"slices"
	"strconv"
	"strings"
)

// State is a dense index into an automaton's states.
type State int

const noState State = -1

// StateSet is a sorted, duplicate-free set of states. Two sets hold the
// same states exactly when their slices are equal, which makes a StateSet
// usable as a canonical key.
type StateSet []State

// NewStateSet normalizes states into a StateSet. The argument is not modified.
func NewStateSet(states ...State) StateSet {
	out := slices.Clone(states)
	slices.Sort(out)
	return StateSet(slices.Compact(out))
}

func (s StateSet) Contains(q State) bool {
	_, ok := slices.BinarySearch(s, q)
	return ok
}

func (s StateSet) Equal(o StateSet) bool { return slices.Equal(s, o) }

// Intersects reports whether s and o share a state.
func (s StateSet) Intersects(o StateSet) bool {
	i, j := 0, 0
	for i < len(s) && j < len(o) {
		switch {
		case s[i] == o[j]:
			return true
		case s[i] < o[j]:
			i++
		default:
			j++
		}
	}
	return false
}

// insert returns s with q added, keeping order.
func (s StateSet) insert(q State) StateSet {
	i, ok := slices.BinarySearch(s, q)
	if ok {
		return s
	}
	return slices.Insert(s, i, q)
}

// Key encodes the set as a string suitable for map lookups.
func (s StateSet) Key() string {
	var sb strings.Builder
	for i, q := range s {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(int(q)))
	}
	return sb.String()
}

func (s StateSet) String() string { return "{" + s.Key() + "}" }
