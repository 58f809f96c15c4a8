package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/zoro11031/homelab-coreos-minipc/fsprov/internal/cli"
	"github.com/zoro11031/homelab-coreos-minipc/fsprov/pkg/version"
)

var (
	configPath     string
	verbose        bool
	nonInteractive bool
)

var rootCmd = &cobra.Command{
	Use:   "fsprov",
	Short: "Provision directories and empty files",
	Long: `fsprov creates directories and empty files on demand, creating any
missing parent directories along the way.

- create-folder ensures a directory and all of its ancestors exist
- create-file ensures the parent directories exist and creates an empty file
- apply provisions every entry listed in a YAML layout

Run without arguments to launch the interactive menu.`,
	SilenceUsage:  true, // We handle errors manually, but silence usage on error
	SilenceErrors: true, // We format errors ourselves for consistent output
	RunE:          runInteractiveMenu,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Info())
	},
}

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Launch interactive menu",
	Long:  `Launch the interactive menu interface.`,
	RunE:  runInteractiveMenu,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Configuration file (default ~/.fsprov.conf)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print debug output")
	rootCmd.PersistentFlags().BoolVar(&nonInteractive, "non-interactive", false, "Never prompt for input")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(menuCmd)
}

func newContext() (*cli.Context, error) {
	ctx, err := cli.NewContext(cli.Options{
		ConfigPath:     configPath,
		Verbose:        verbose,
		NonInteractive: nonInteractive,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize context: %w", err)
	}
	return ctx, nil
}

func runInteractiveMenu(cmd *cobra.Command, args []string) error {
	ctx, err := newContext()
	if err != nil {
		return err
	}

	menu := cli.NewMenu(ctx)
	return menu.Show()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
