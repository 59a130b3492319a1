package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zoro11031/bang/internal/manifest"
	"github.com/zoro11031/bang/internal/ui"
)

var addCmd = &cobra.Command{
	Use:   "add <path> [executable...]",
	Short: "Record a target in the manifest",
	Long: `Record a file and its executable in the manifest's "bang" field,
creating the field if it does not exist yet. When the executable is
omitted, it is prompted for interactively.

The manifest file itself must already exist.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	out := ui.New()

	m, err := manifest.Load(resolvePath(manifestFlag))
	if err != nil {
		return err
	}

	path := args[0]
	var command string
	if len(args) > 1 {
		command = joinCommand(args[1:])
	} else {
		command, err = out.PromptInput(fmt.Sprintf("Command to run %s with", path), "")
		if err != nil {
			return fmt.Errorf("failed to prompt for command: %w", err)
		}
		if command == "" {
			return fmt.Errorf("no command given for %s", path)
		}
	}

	if existing, ok := m.Get(path); ok && existing != command {
		replace, err := out.PromptYesNo(fmt.Sprintf("Replace command for %s (currently %q)?", path, existing), false)
		if err != nil {
			return fmt.Errorf("failed to prompt: %w", err)
		}
		if !replace {
			out.Infof("keeping %s -> %s", path, existing)
			return nil
		}
	}

	m.Set(path, command)
	if err := m.Save(); err != nil {
		return err
	}

	out.Successf("recorded %s -> %s", path, command)
	return nil
}
