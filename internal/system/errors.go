package system

import "fmt"

// Operations reported by ProvisionError
const (
	OpCreateDirectory = "create directory"
	OpCreateParent    = "create parent directory"
	OpCreateFile      = "create file"
)

// ProvisionError is returned when a directory or file could not be provisioned.
// Err holds the underlying operating system error.
type ProvisionError struct {
	Op   string
	Path string
	Err  error
}

func (e *ProvisionError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *ProvisionError) Unwrap() error {
	return e.Err
}
