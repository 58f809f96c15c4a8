// Package cli provides the command layer for fsprov. It maps user commands
// and the interactive menu onto the provisioning operations and reports the
// outcome through the UI.
package cli

import (
	"fmt"
	"os"

	"github.com/zoro11031/homelab-coreos-minipc/fsprov/internal/config"
	"github.com/zoro11031/homelab-coreos-minipc/fsprov/internal/system"
	"github.com/zoro11031/homelab-coreos-minipc/fsprov/internal/ui"
)

// Context holds all dependencies needed by the commands
type Context struct {
	Config      *config.Config
	UI          *ui.UI
	Provisioner *system.Provisioner
	Markers     *config.Markers
}

// Options configures NewContext
type Options struct {
	ConfigPath     string
	Verbose        bool
	NonInteractive bool
}

// NewContext creates a new Context with all dependencies initialized
func NewContext(opts Options) (*Context, error) {
	provisioner := system.NewProvisioner()

	// Initialize configuration
	cfg := config.New(opts.ConfigPath, provisioner)
	if err := cfg.Load(); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize UI
	uiInstance := ui.New()
	uiInstance.SetColorMode(cfg.GetOrDefault(config.KeyColor, "auto"))
	uiInstance.SetVerbose(opts.Verbose)
	uiInstance.SetNonInteractive(opts.NonInteractive || !ui.IsTerminal(os.Stdin))

	return &Context{
		Config:      cfg,
		UI:          uiInstance,
		Provisioner: provisioner,
		Markers:     cfg.Markers(),
	}, nil
}
