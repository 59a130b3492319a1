package main

import (
	"github.com/spf13/cobra"
	"github.com/zoro11031/bang/internal/manifest"
	"github.com/zoro11031/bang/internal/shebang"
	"github.com/zoro11031/bang/internal/ui"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List manifest targets and their shebang lines",
	Long:  `Print each target declared in the manifest's "bang" field, in declared order, with the shebang line it would receive. Nothing is mutated.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	out := ui.New()

	m, err := manifest.Load(resolvePath(manifestFlag))
	if err != nil {
		return err
	}

	targets, err := m.Targets()
	if err != nil {
		return err
	}

	if len(targets) == 0 {
		out.Info("manifest declares no targets")
		return nil
	}

	for _, t := range targets {
		out.Printf("%s\t%s", t.Path, shebang.Line(t.Command))
	}
	return nil
}
