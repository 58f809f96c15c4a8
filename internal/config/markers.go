package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/zoro11031/homelab-coreos-minipc/fsprov/internal/common"
	"github.com/zoro11031/homelab-coreos-minipc/fsprov/internal/system"
)

// Markers records applied layouts as empty files named after the layout
type Markers struct {
	dir         string
	fs          afero.Fs
	provisioner system.ProvisionerManager
}

// NewMarkers creates a marker store in dir. An empty dir selects
// ~/.local/fsprov. Markers are created through provisioner and read from fs.
func NewMarkers(dir string, fs afero.Fs, provisioner system.ProvisionerManager) *Markers {
	if dir == "" {
		dir = filepath.Join(homeDir(), ".local", "fsprov")
	}

	return &Markers{
		dir:         dir,
		fs:          fs,
		provisioner: provisioner,
	}
}

// Create records name as applied, creating the marker directory if needed
func (m *Markers) Create(name string) error {
	path, err := m.path(name)
	if err != nil {
		return err
	}

	if err := m.provisioner.EnsureFile(path); err != nil {
		return fmt.Errorf("failed to create marker file: %w", err)
	}
	return nil
}

// Exists reports whether name was recorded. A non-nil error means the
// answer could not be determined.
func (m *Markers) Exists(name string) (bool, error) {
	path, err := m.path(name)
	if err != nil {
		return false, err
	}

	exists, err := afero.Exists(m.fs, path)
	if err != nil {
		return false, fmt.Errorf("failed to check marker existence: %w", err)
	}
	return exists, nil
}

// Remove forgets name. Removing a missing marker is not an error.
func (m *Markers) Remove(name string) error {
	path, err := m.path(name)
	if err != nil {
		return err
	}

	if err := m.fs.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove marker %s: %w", name, err)
	}
	return nil
}

// RemoveAll deletes the marker directory and every marker in it
func (m *Markers) RemoveAll() error {
	if err := m.fs.RemoveAll(m.dir); err != nil {
		return fmt.Errorf("failed to remove marker directory: %w", err)
	}
	return nil
}

// List returns the recorded layout names in directory order
func (m *Markers) List() ([]string, error) {
	entries, err := afero.ReadDir(m.fs, m.dir)
	if os.IsNotExist(err) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read marker directory: %w", err)
	}

	names := []string{}
	for _, entry := range entries {
		if !entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

// Dir returns the marker directory path
func (m *Markers) Dir() string {
	return m.dir
}

func (m *Markers) path(name string) (string, error) {
	if err := common.ValidateMarkerName(name); err != nil {
		return "", err
	}
	return filepath.Join(m.dir, name), nil
}
