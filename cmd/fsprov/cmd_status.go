package main

import (
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show applied layouts",
	Long:  `Display the configuration file, the marker directory and the layouts applied so far.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := newContext()
		if err != nil {
			return err
		}
		return ctx.ShowStatus()
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
