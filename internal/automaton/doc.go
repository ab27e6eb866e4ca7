// Package automaton compiles regex trees into automata: Thompson NFAs via
// Build, ε-closure and move over NFA state sets, and DFAs via Determinize.
//
// States are dense integer indices that are never renumbered. A finished NFA
// or DFA is read-only, so any number of goroutines may query it.
package automaton
