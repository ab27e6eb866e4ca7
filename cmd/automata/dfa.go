package main

import (
	"github.com/spf13/cobra"

	"automata/internal/presentation/graph"
)

func newDFACmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dfa [FILE]",
		Short: "Export the subset-construction DFA of a tree",
		Long: `Builds the Thompson NFA of the tree and determinizes it. Each DFA state is
labelled with the ε-closed set of NFA states it stands for. The DFA is not minimized.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, _, err := readTree(cmd, args)
			if err != nil {
				return err
			}
			dfa := a.determinize(a.buildNFA(tree))
			return a.writeGraph(cmd, graph.FromDFA(dfa))
		},
	}
	addTreeFlags(cmd)
	addOutputFlags(cmd)
	return cmd
}
