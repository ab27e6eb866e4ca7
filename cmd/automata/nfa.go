package main

import (
	"github.com/spf13/cobra"

	"automata/internal/presentation/graph"
)

func newNFACmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nfa [FILE]",
		Short: "Export the Thompson NFA of a tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, _, err := readTree(cmd, args)
			if err != nil {
				return err
			}
			return a.writeGraph(cmd, graph.FromNFA(a.buildNFA(tree)))
		},
	}
	addTreeFlags(cmd)
	addOutputFlags(cmd)
	return cmd
}
