package main

import (
	"github.com/spf13/cobra"
)

var resetForce bool

var resetCmd = &cobra.Command{
	Use:   "reset [layout]",
	Short: "Forget applied layouts",
	Long: `Clear applied-layout markers so that "apply --once" provisions them again.

With a layout name only that layout is forgotten; otherwise every marker is
cleared. Directories and files that were already provisioned are NOT removed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := newContext()
		if err != nil {
			return err
		}

		name := ""
		if len(args) == 1 {
			name = args[0]
		}
		return ctx.Reset(name, resetForce)
	},
}

func init() {
	resetCmd.Flags().BoolVarP(&resetForce, "force", "f", false, "Skip confirmation prompt")
	rootCmd.AddCommand(resetCmd)
}
