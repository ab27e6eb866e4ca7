package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"automata/internal/automaton"
	"automata/internal/presentation/graph"
	"automata/internal/regex"
	"automata/internal/regex/astfile"
)

var errNoTree = errors.New("no tree given: use -e EXPR or a FILE argument")

func addTreeFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("expr", "e", "", "tree in functional form, e.g. star(char('a'))")
}

func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().String("format", "", "output format: dot, mermaid, json (default from config, else dot)")
	cmd.Flags().StringP("output", "o", "-", "output file, - for stdout")
}

// readTree resolves the tree from -e or, failing that, from the first
// positional argument, which is then consumed.
func readTree(cmd *cobra.Command, args []string) (regex.Node, []string, error) {
	if expr, _ := cmd.Flags().GetString("expr"); expr != "" {
		tree, err := astfile.Parse("<expr>", expr)
		return tree, args, err
	}
	if len(args) == 0 {
		return nil, nil, errNoTree
	}
	tree, err := astfile.Load(args[0])
	return tree, args[1:], err
}

func (a *app) buildNFA(tree regex.Node) *automaton.NFA {
	nfa := automaton.Build(tree)
	a.log.Debug("nfa built",
		"states", nfa.NumStates(),
		"edges", len(nfa.Edges()),
		"alphabet", string(nfa.Alphabet()),
	)
	return nfa
}

func (a *app) determinize(nfa *automaton.NFA) *automaton.DFA {
	dfa := automaton.Determinize(nfa)
	a.log.Debug("dfa built", "states", dfa.NumStates(), "edges", len(dfa.Edges()))
	return dfa
}

// writeGraph renders g in the requested format to -o.
func (a *app) writeGraph(cmd *cobra.Command, g *graph.Graph) error {
	name := a.cfg.Format
	if cmd.Flags().Changed("format") {
		name, _ = cmd.Flags().GetString("format")
	}
	format, err := graph.ParseFormat(name)
	if err != nil {
		return err
	}

	out, _ := cmd.Flags().GetString("output")
	toFile := out != "-" && out != ""
	var w io.Writer = cmd.OutOrStdout()
	if toFile {
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("cannot create %s: %w", out, err)
		}
		defer f.Close()
		w = f
	}

	if err := graph.Write(w, g, format); err != nil {
		return fmt.Errorf("failed to write %s: %w", format, err)
	}
	if toFile {
		a.log.Info("graph written", "kind", g.Kind, "format", format, "path", out)
	}
	return nil
}
