package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"automata/internal/config"
	"automata/internal/logging"
)

// app carries what PersistentPreRunE resolved for the subcommands.
type app struct {
	cfg config.Config
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: config.Default(), log: logging.NewNop()}

	root := &cobra.Command{
		Use:   "automata",
		Short: "Compile regex trees into Thompson NFAs and subset-construction DFAs",
		Long: `automata lowers a regex syntax tree into an NFA by Thompson's construction,
determinizes it by subset construction and exports either automaton as
Graphviz DOT, Mermaid or JSON. Trees are given in functional form, e.g.

    concat(char('a'), star(or(char('b'), char('c'))))

or as a YAML document (*.yaml, *.yml).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().String("config", "", "settings file (default: automata.yaml|yml|json in the working directory)")
	root.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(newNFACmd(a), newDFACmd(a), newMatchCmd(a))
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.Discover(".")
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel, _ = cmd.Flags().GetString("log-level")
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logging.New(cmd.ErrOrStderr(), level)
	if path != "" {
		a.log.Debug("config loaded", "path", path)
	}
	return nil
}
