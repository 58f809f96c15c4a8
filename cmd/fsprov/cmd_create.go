package main

import (
	"github.com/spf13/cobra"
)

var assumeYes bool

var createFolderCmd = &cobra.Command{
	Use:     "create-folder <path>...",
	Aliases: []string{"mkdir"},
	Short:   "Create directories and any missing parents",
	Long: `Create each directory together with every missing parent directory.

Existing directories are left untouched. On failure, parent directories that
were already created stay in place, so the command can simply be re-run.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := newContext()
		if err != nil {
			return err
		}
		return ctx.CreateFolders(args)
	},
}

var createFileCmd = &cobra.Command{
	Use:     "create-file <path>...",
	Aliases: []string{"touch"},
	Short:   "Create empty files and any missing parent directories",
	Long: `Create each file as an empty file, creating missing parent directories first.

An existing file is truncated to zero length. When running in a terminal you
are asked before a non-empty file is truncated, unless --yes is given or
CONFIRM_TRUNCATE is set to false.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := newContext()
		if err != nil {
			return err
		}
		return ctx.CreateFiles(args, assumeYes)
	},
}

func init() {
	createFileCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Truncate existing files without asking")

	rootCmd.AddCommand(createFolderCmd)
	rootCmd.AddCommand(createFileCmd)
}
