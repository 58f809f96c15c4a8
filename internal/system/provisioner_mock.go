package system

import (
	"sync"
)

// MockProvisioner is a mock of the Provisioner for testing purposes.
// It records requested paths in memory and implements ProvisionerManager.
type MockProvisioner struct {
	mu          sync.Mutex
	Directories []string
	Files       []string
	// Errors maps a path to the error returned when it is provisioned
	Errors map[string]error
}

// NewMockProvisioner creates a new MockProvisioner.
func NewMockProvisioner() *MockProvisioner {
	return &MockProvisioner{
		Errors: make(map[string]error),
	}
}

// EnsureDirectory records a directory request.
func (m *MockProvisioner) EnsureDirectory(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err, ok := m.Errors[path]; ok {
		return err
	}
	m.Directories = append(m.Directories, path)
	return nil
}

// EnsureFile records a file request.
func (m *MockProvisioner) EnsureFile(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err, ok := m.Errors[path]; ok {
		return err
	}
	m.Files = append(m.Files, path)
	return nil
}
