package cli

import (
	"fmt"

	"github.com/zoro11031/homelab-coreos-minipc/fsprov/internal/config"
	"github.com/zoro11031/homelab-coreos-minipc/fsprov/internal/layout"
)

// ShowStatus prints where settings and markers live and which layouts have
// been applied
func (c *Context) ShowStatus() error {
	c.UI.Header("fsprov Status")
	c.UI.Infof("Configuration file: %s", c.Config.FilePath())
	c.UI.Infof("Marker directory: %s", c.Markers.Dir())
	c.UI.Print("")

	applied, err := c.Markers.List()
	if err != nil {
		return fmt.Errorf("failed to list applied layouts: %w", err)
	}

	if len(applied) == 0 {
		c.UI.Info("No layouts applied yet")
	} else {
		c.UI.Info("Applied layouts:")
		for _, name := range applied {
			c.UI.Successf("  ✓ %s", name)
		}
	}

	path := c.Config.GetOrDefault(config.KeyDefaultLayout, "")
	if path == "" {
		return nil
	}

	c.UI.Separator()
	l, err := layout.Load(c.Provisioner.Fs(), path)
	if err != nil {
		c.UI.Warningf("Default layout could not be read: %v", err)
		return nil
	}

	done, err := c.Markers.Exists(l.Name)
	if err != nil {
		return fmt.Errorf("failed to check marker: %w", err)
	}
	if done {
		c.UI.Successf("Default layout %s (%s) is applied", l.Name, path)
	} else {
		c.UI.Infof("Default layout %s (%s) is not applied yet", l.Name, path)
	}
	return nil
}

// Reset forgets applied layouts so that `apply --once` provisions them
// again. An empty name forgets every layout. Provisioned entries are kept.
func (c *Context) Reset(name string, force bool) error {
	target := "all applied layouts"
	if name != "" {
		target = fmt.Sprintf("layout %s", name)
	}

	// Confirmation prompt
	if !force {
		c.UI.Header("Reset Applied Layouts")
		c.UI.Warningf("This will forget %s", target)
		c.UI.Info("Directories and files already provisioned are not removed")
		c.UI.Print("")

		confirm, err := c.UI.PromptYesNo("Are you sure you want to reset?", false)
		if err != nil {
			return err
		}
		if !confirm {
			c.UI.Info("Reset cancelled")
			return nil
		}
	}

	var err error
	if name != "" {
		err = c.Markers.Remove(name)
	} else {
		err = c.Markers.RemoveAll()
	}
	if err != nil {
		return fmt.Errorf("failed to reset %s: %w", target, err)
	}

	c.UI.Successf("Forgot %s", target)
	return nil
}
