package main

import (
	"fmt"
	"strconv"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

func newMatchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match [FILE] INPUT...",
		Short: "Report whether each INPUT is accepted",
		Long: `Runs every INPUT through both the NFA (alternating move and ε-closure) and
the DFA, printing one verdict per line. Without -e the first argument is the tree file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, inputs, err := readTree(cmd, args)
			if err != nil {
				return err
			}
			if len(inputs) == 0 {
				return fmt.Errorf("no INPUT given")
			}

			nfa := a.buildNFA(tree)
			dfa := a.determinize(nfa)

			opts := []termenv.OutputOption{}
			if noColor, _ := cmd.Flags().GetBool("no-color"); noColor || !a.cfg.Color {
				opts = append(opts, termenv.WithProfile(termenv.Ascii))
			}
			out := termenv.NewOutput(cmd.OutOrStdout(), opts...)
			accept := out.String("accept").Foreground(out.Color("2")).Bold()
			reject := out.String("reject").Foreground(out.Color("1"))

			for _, in := range inputs {
				viaNFA, viaDFA := nfa.Accepts(in), dfa.Accepts(in)
				if viaNFA != viaDFA {
					return fmt.Errorf("nfa and dfa disagree on %q (nfa=%t dfa=%t)", in, viaNFA, viaDFA)
				}
				verdict := reject
				if viaDFA {
					verdict = accept
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", verdict, strconv.Quote(in))
			}
			return nil
		},
	}
	addTreeFlags(cmd)
	cmd.Flags().Bool("no-color", false, "disable coloured verdicts")
	return cmd
}
