// Package common holds validation helpers for configuration values and
// layout names. Filesystem paths are never validated here; the filesystem
// is the only authority on which paths are acceptable.
package common

import (
	"fmt"
	"strconv"
	"strings"
)

// ColorModes lists the accepted values for the COLOR setting
var ColorModes = []string{"auto", "always", "never"}

// ValidateNotEmpty validates that a string is not empty
func ValidateNotEmpty(value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("value cannot be empty")
	}
	return nil
}

// ValidateMarkerName ensures the marker name is safe and doesn't contain path traversal characters
func ValidateMarkerName(name string) error {
	if name == "" {
		return fmt.Errorf("marker name cannot be empty")
	}
	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("marker name cannot contain path separators: %s", name)
	}
	if name == ".." || name == "." {
		return fmt.Errorf("marker name cannot be '.' or '..': %s", name)
	}
	return nil
}

// ValidateBool validates a boolean setting such as "true" or "false"
func ValidateBool(value string) error {
	if _, err := strconv.ParseBool(value); err != nil {
		return fmt.Errorf("invalid boolean value: %s", value)
	}
	return nil
}

// ValidateColorMode validates the COLOR setting
func ValidateColorMode(mode string) error {
	for _, m := range ColorModes {
		if mode == m {
			return nil
		}
	}
	return fmt.Errorf("invalid color mode %q (expected one of %s)", mode, strings.Join(ColorModes, ", "))
}
