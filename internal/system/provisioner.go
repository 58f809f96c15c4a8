package system

import (
	"os"
	"path/filepath"
	"syscall"

	"github.com/spf13/afero"
)

const dirPerm os.FileMode = 0755

// ProvisionerManager defines the provisioning operations used by the command
// and layout layers. This allows for mocking the file system in tests.
type ProvisionerManager interface {
	EnsureDirectory(path string) error
	EnsureFile(path string) error
}

// Provisioner creates directories and empty files, including any missing
// parent directories. It holds no state besides the filesystem it writes to,
// so every call consults the filesystem afresh.
type Provisioner struct {
	fs afero.Fs
}

// NewProvisioner creates a Provisioner backed by the operating system
func NewProvisioner() *Provisioner {
	return NewProvisionerWithFs(afero.NewOsFs())
}

// NewProvisionerWithFs creates a Provisioner on top of the given filesystem
func NewProvisionerWithFs(fs afero.Fs) *Provisioner {
	return &Provisioner{fs: fs}
}

// Fs returns the underlying filesystem
func (p *Provisioner) Fs() afero.Fs {
	return p.fs
}

// EnsureDirectory creates path and every missing ancestor directory.
// If the directory already exists, it does nothing. Directories created
// before a failure are left in place.
func (p *Provisioner) EnsureDirectory(path string) error {
	return p.mkdirAll(OpCreateDirectory, path)
}

// EnsureFile creates the parent directory chain of path and then creates an
// empty file at path. An existing file is truncated.
func (p *Provisioner) EnsureFile(path string) error {
	// Clean first so a trailing separator does not make the target its own
	// parent. A bare file name has no parent to create.
	if parent := filepath.Dir(filepath.Clean(path)); parent != "." {
		if err := p.mkdirAll(OpCreateParent, parent); err != nil {
			return err
		}
	}

	file, err := p.fs.Create(path)
	if err != nil {
		return &ProvisionError{Op: OpCreateFile, Path: path, Err: err}
	}
	if err := file.Close(); err != nil {
		return &ProvisionError{Op: OpCreateFile, Path: path, Err: err}
	}

	return nil
}

func (p *Provisioner) mkdirAll(op, path string) error {
	// Check if directory exists
	if info, err := p.fs.Stat(path); err == nil {
		if !info.IsDir() {
			return &ProvisionError{Op: op, Path: path, Err: syscall.ENOTDIR}
		}
		return nil
	}

	if err := p.fs.MkdirAll(path, dirPerm); err != nil {
		return &ProvisionError{Op: op, Path: path, Err: err}
	}
	return nil
}
