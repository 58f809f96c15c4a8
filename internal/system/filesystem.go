package system

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
)

// FileExists checks if a file exists
func (p *Provisioner) FileExists(path string) (bool, error) {
	_, err := p.fs.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("failed to check if file exists %s: %w", path, err)
}

// DirectoryExists checks if a directory exists
func (p *Provisioner) DirectoryExists(path string) (bool, error) {
	isDir, err := afero.IsDir(p.fs, path)
	if err == nil {
		return isDir, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("failed to check if directory exists %s: %w", path, err)
}

// FileSize returns the size of a file in bytes
func (p *Provisioner) FileSize(path string) (int64, error) {
	info, err := p.fs.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("failed to stat file %s: %w", path, err)
	}

	return info.Size(), nil
}
