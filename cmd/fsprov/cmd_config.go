package main

import (
	"fmt"
	"slices"
	"sort"

	"github.com/spf13/cobra"
	"github.com/zoro11031/homelab-coreos-minipc/fsprov/internal/common"
	"github.com/zoro11031/homelab-coreos-minipc/fsprov/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change settings",
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all settings with their effective values",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := newContext()
		if err != nil {
			return err
		}

		ctx.UI.Infof("Configuration file: %s", ctx.Config.FilePath())
		for _, line := range settingLines(ctx.Config) {
			ctx.UI.Print(line)
		}
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print a setting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := newContext()
		if err != nil {
			return err
		}
		fmt.Println(ctx.Config.GetOrDefault(args[0], ""))
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if err := validateSetting(key, value); err != nil {
			return err
		}

		ctx, err := newContext()
		if err != nil {
			return err
		}
		if err := ctx.Config.Set(key, value); err != nil {
			return fmt.Errorf("failed to save %s: %w", key, err)
		}
		ctx.UI.Successf("%s=%s", key, value)
		return nil
	},
}

var configUnsetCmd = &cobra.Command{
	Use:   "unset <key>",
	Short: "Remove a setting so its default applies",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := newContext()
		if err != nil {
			return err
		}
		if err := ctx.Config.Unset(args[0]); err != nil {
			return fmt.Errorf("failed to remove %s: %w", args[0], err)
		}
		ctx.UI.Successf("%s reset to %q", args[0], ctx.Config.GetOrDefault(args[0], ""))
		return nil
	},
}

// settingLines renders every known key plus any other key found in the
// file, marking values that come from the defaults
func settingLines(cfg *config.Config) []string {
	keys := append([]string(nil), config.KnownKeys...)
	for key := range cfg.All() {
		if !slices.Contains(keys, key) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, key := range keys {
		line := fmt.Sprintf("%s=%s", key, cfg.GetOrDefault(key, ""))
		if !cfg.IsSet(key) {
			line += "  (default)"
		}
		lines = append(lines, line)
	}
	return lines
}

func validateSetting(key, value string) error {
	switch key {
	case config.KeyColor:
		return common.ValidateColorMode(value)
	case config.KeyConfirmTruncate:
		return common.ValidateBool(value)
	case config.KeyDefaultLayout, config.KeyMarkerDir, config.KeyConfigVersion:
		return common.ValidateNotEmpty(value)
	default:
		return fmt.Errorf("unknown setting: %s", key)
	}
}

func init() {
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configUnsetCmd)
	rootCmd.AddCommand(configCmd)
}
