package cli

import (
	"fmt"

	"github.com/zoro11031/homelab-coreos-minipc/fsprov/internal/config"
	"github.com/zoro11031/homelab-coreos-minipc/fsprov/internal/layout"
	"github.com/zoro11031/homelab-coreos-minipc/fsprov/internal/system"
)

// CreateFolder ensures path exists as a directory and returns a confirmation
// message. Failures are returned unchanged.
func CreateFolder(p system.ProvisionerManager, path string) (string, error) {
	if err := p.EnsureDirectory(path); err != nil {
		return "", err
	}
	return fmt.Sprintf("Folder created: %s", path), nil
}

// CreateFile ensures path exists as an empty file and returns a confirmation
// message. Failures are returned unchanged.
func CreateFile(p system.ProvisionerManager, path string) (string, error) {
	if err := p.EnsureFile(path); err != nil {
		return "", err
	}
	return fmt.Sprintf("File created: %s", path), nil
}

// CreateFolders provisions each directory in turn, stopping at the first failure
func (c *Context) CreateFolders(paths []string) error {
	for _, path := range paths {
		c.UI.Debugf("Ensuring directory %s", path)
		msg, err := CreateFolder(c.Provisioner, path)
		if err != nil {
			return err
		}
		c.UI.Success(msg)
	}
	return nil
}

// CreateFiles provisions each file in turn, stopping at the first failure.
// Unless assumeYes is set, an interactive user is asked before a non-empty
// file is truncated.
func (c *Context) CreateFiles(paths []string, assumeYes bool) error {
	for _, path := range paths {
		proceed, err := c.confirmTruncate(path, assumeYes)
		if err != nil {
			return err
		}
		if !proceed {
			c.UI.Warningf("Skipped %s", path)
			continue
		}

		c.UI.Debugf("Ensuring file %s", path)
		msg, err := CreateFile(c.Provisioner, path)
		if err != nil {
			return err
		}
		c.UI.Success(msg)
	}
	return nil
}

func (c *Context) confirmTruncate(path string, assumeYes bool) (bool, error) {
	if assumeYes || c.UI.IsNonInteractive() || !c.Config.GetBool(config.KeyConfirmTruncate, true) {
		return true, nil
	}

	// Directories are rejected by EnsureFile itself; nothing to confirm
	if isDir, err := c.Provisioner.DirectoryExists(path); err == nil && isDir {
		return true, nil
	}

	// Missing paths and empty files lose nothing
	size, err := c.Provisioner.FileSize(path)
	if err != nil || size == 0 {
		return true, nil
	}

	confirm, err := c.UI.PromptYesNo(fmt.Sprintf("%s is not empty (%d bytes). Truncate it?", path, size), false)
	if err != nil {
		return false, fmt.Errorf("failed to prompt: %w", err)
	}
	return confirm, nil
}

// ApplyOptions controls ApplyLayout
type ApplyOptions struct {
	// Once skips layouts that were already applied
	Once bool
	// DryRun lists the entries without provisioning them
	DryRun bool
}

// ApplyLayout loads the layout at path and provisions it. An empty path
// selects the DEFAULT_LAYOUT setting.
func (c *Context) ApplyLayout(path string, opts ApplyOptions) error {
	if path == "" {
		path = c.Config.GetOrDefault(config.KeyDefaultLayout, "")
	}
	if path == "" {
		return fmt.Errorf("no layout given and %s is not set", config.KeyDefaultLayout)
	}

	l, err := layout.Load(c.Provisioner.Fs(), path)
	if err != nil {
		return err
	}

	if opts.Once {
		applied, err := c.Markers.Exists(l.Name)
		if err != nil {
			return fmt.Errorf("failed to check marker: %w", err)
		}
		if applied {
			c.UI.Infof("Layout %s already applied (marker found in %s)", l.Name, c.Markers.Dir())
			return nil
		}
	}

	c.UI.Header(fmt.Sprintf("Layout: %s", l.Name))

	if opts.DryRun {
		for _, entry := range l.Entries() {
			c.UI.Infof("Would create %s %s", entry.Kind, entry.Path)
		}
		return nil
	}

	report, err := layout.Apply(c.Provisioner, l)
	for _, entry := range report.Provisioned {
		c.UI.Successf("  ✓ %s %s", entry.Kind, entry.Path)
	}
	if err != nil {
		c.UI.Warningf("%d of %d entries provisioned before the failure", len(report.Provisioned), len(l.Entries()))
		return fmt.Errorf("failed to apply layout %s: %w", l.Name, err)
	}

	if err := c.Markers.Create(l.Name); err != nil {
		return fmt.Errorf("failed to record layout %s: %w", l.Name, err)
	}

	c.UI.Separator()
	c.UI.Successf("Layout %s applied (%d entries)", l.Name, len(report.Provisioned))
	return nil
}
