package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"
	"github.com/zoro11031/bang/internal/apply"
	"github.com/zoro11031/bang/internal/manifest"
	"github.com/zoro11031/bang/internal/system"
	"github.com/zoro11031/bang/internal/ui"
	"github.com/zoro11031/bang/pkg/version"
)

var (
	forceFlag    bool
	dryRunFlag   bool
	manifestFlag string
	dirFlag      string
)

var rootCmd = &cobra.Command{
	Use:   "bang [flags] [path] [executable...]",
	Short: "Prepend shebang lines and make files executable",
	Long: `Prepend an interpreter directive ("#!/usr/bin/env ...") to files and
mark them executable.

With a path and an executable, a single file is processed:

  bang bin/serve.js node
  bang bin/tool.py uv run --script

With no arguments, targets come from the "bang" field of the project
manifest, an object mapping file paths to commands, processed in
declared order:

  {
    "bang": {
      "bin/serve.js": "node",
      "bin/tool.py": "uv run --script"
    }
  }

Files that already start with "#!" are skipped unless --force is given,
in which case their first line is replaced.`,
	Version:       version.Short(),
	SilenceUsage:  true, // We handle errors manually, but silence usage on error
	SilenceErrors: true, // We format errors ourselves for consistent output
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			return fmt.Errorf("accepts a path and an executable, or no arguments for manifest mode; received 1 argument")
		}
		return nil
	},
	RunE: runApply,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Info())
	},
}

func init() {
	rootCmd.Flags().BoolVarP(&forceFlag, "force", "f", false, "Replace an existing shebang line")
	rootCmd.Flags().BoolVarP(&dryRunFlag, "dry-run", "n", false, "Report what would change without touching any file")
	rootCmd.PersistentFlags().StringVarP(&manifestFlag, "manifest", "m", manifest.DefaultFile, "Project manifest holding the bang field")
	rootCmd.PersistentFlags().StringVarP(&dirFlag, "dir", "C", ".", "Resolve target and manifest paths against this directory")

	rootCmd.AddCommand(versionCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	targets, err := resolveTargets(args)
	if err != nil {
		return err
	}

	applier := apply.New(system.NewFileSystem(), ui.New(), apply.Options{
		Force:  forceFlag,
		DryRun: dryRunFlag,
	})

	return applier.Run(targets)
}

// resolveTargets builds the batch from positional arguments, or from
// the manifest when none are given. Target paths are resolved against
// the --dir flag so behavior never depends on ambient process state.
func resolveTargets(args []string) ([]manifest.Target, error) {
	if len(args) >= 2 {
		return []manifest.Target{{
			Path:    resolvePath(args[0]),
			Command: joinCommand(args[1:]),
		}}, nil
	}

	m, err := manifest.Load(resolvePath(manifestFlag))
	if err != nil {
		return nil, err
	}

	declared, err := m.Targets()
	if err != nil {
		return nil, err
	}

	targets := make([]manifest.Target, 0, len(declared))
	for _, t := range declared {
		targets = append(targets, manifest.Target{
			Path:    resolvePath(t.Path),
			Command: t.Command,
		})
	}
	return targets, nil
}

// joinCommand turns the trailing positionals into one command string.
// A single argument is taken verbatim so a quoted command like
// "uv run --script" survives untouched; only separate tokens are
// shell-joined.
func joinCommand(args []string) string {
	if len(args) == 1 {
		return args[0]
	}
	return shellquote.Join(args...)
}

func resolvePath(path string) string {
	if filepath.IsAbs(path) || dirFlag == "." {
		return path
	}
	return filepath.Join(dirFlag, path)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
