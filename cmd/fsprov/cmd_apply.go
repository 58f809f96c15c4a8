package main

import (
	"github.com/spf13/cobra"
	"github.com/zoro11031/homelab-coreos-minipc/fsprov/internal/cli"
)

var (
	applyOnce   bool
	applyDryRun bool
)

var applyCmd = &cobra.Command{
	Use:   "apply [layout.yaml]",
	Short: "Provision every entry of a YAML layout",
	Long: `Provision the directories and files listed in a YAML layout.

Directories are created first, then files, in the order they are listed.
Relative entries are resolved against the layout's root. Applying stops at
the first failure; entries created before it are kept, and re-running the
command resumes safely.

Without an argument the DEFAULT_LAYOUT setting is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := newContext()
		if err != nil {
			return err
		}

		path := ""
		if len(args) == 1 {
			path = args[0]
		}
		return ctx.ApplyLayout(path, cli.ApplyOptions{Once: applyOnce, DryRun: applyDryRun})
	},
}

func init() {
	applyCmd.Flags().BoolVar(&applyOnce, "once", false, "Skip the layout if it was already applied")
	applyCmd.Flags().BoolVar(&applyDryRun, "dry-run", false, "List the entries without creating them")
	rootCmd.AddCommand(applyCmd)
}
