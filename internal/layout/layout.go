// Package layout describes a set of directories and files to provision and
// applies it through a system.ProvisionerManager.
//
// A layout is read from YAML:
//
//	name: media-stack
//	root: /srv/media
//	directories:
//	  - config
//	  - data/downloads
//	files:
//	  - config/.keep
//
// Relative entries are resolved against root. Applying a layout is not
// transactional: entries provisioned before a failure stay in place, and
// applying the layout again resumes where it stopped.
package layout

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/zoro11031/homelab-coreos-minipc/fsprov/internal/common"
	"github.com/zoro11031/homelab-coreos-minipc/fsprov/internal/system"
)

// Layout is a named list of directories and files
type Layout struct {
	Name        string   `yaml:"name"`
	Root        string   `yaml:"root"`
	Directories []string `yaml:"directories"`
	Files       []string `yaml:"files"`
}

// Kind of a layout entry
type Kind string

const (
	KindDirectory Kind = "directory"
	KindFile      Kind = "file"
)

// Entry is a single resolved path in a layout
type Entry struct {
	Kind Kind
	Path string
}

// Report lists the entries provisioned by Apply
type Report struct {
	Provisioned []Entry
}

// ApplyError is returned when an entry could not be provisioned
type ApplyError struct {
	Index int
	Entry Entry
	Err   error
}

func (e *ApplyError) Error() string {
	return fmt.Sprintf("entry %d (%s %s): %v", e.Index, e.Entry.Kind, e.Entry.Path, e.Err)
}

func (e *ApplyError) Unwrap() error {
	return e.Err
}

// Load reads and decodes a layout manifest
func Load(fs afero.Fs, path string) (*Layout, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout %s: %w", path, err)
	}

	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("failed to parse layout %s: %w", path, err)
	}

	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("invalid layout %s: %w", path, err)
	}

	return &l, nil
}

// Validate checks the layout name and entries.
// Paths themselves are left to the filesystem to accept or reject.
func (l *Layout) Validate() error {
	if err := common.ValidateMarkerName(l.Name); err != nil {
		return fmt.Errorf("invalid layout name: %w", err)
	}
	for i, dir := range l.Directories {
		if err := common.ValidateNotEmpty(dir); err != nil {
			return fmt.Errorf("directory %d: %w", i, err)
		}
	}
	for i, file := range l.Files {
		if err := common.ValidateNotEmpty(file); err != nil {
			return fmt.Errorf("file %d: %w", i, err)
		}
	}
	return nil
}

// Entries returns the resolved entries in the order Apply provisions them:
// directories first, then files, each in manifest order
func (l *Layout) Entries() []Entry {
	entries := make([]Entry, 0, len(l.Directories)+len(l.Files))
	for _, dir := range l.Directories {
		entries = append(entries, Entry{Kind: KindDirectory, Path: l.resolve(dir)})
	}
	for _, file := range l.Files {
		entries = append(entries, Entry{Kind: KindFile, Path: l.resolve(file)})
	}
	return entries
}

func (l *Layout) resolve(path string) string {
	if l.Root == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(l.Root, path)
}

// Apply provisions every entry of the layout, stopping at the first failure.
// The returned report lists what was provisioned before any failure.
func Apply(p system.ProvisionerManager, l *Layout) (*Report, error) {
	report := &Report{}

	for i, entry := range l.Entries() {
		var err error
		switch entry.Kind {
		case KindDirectory:
			err = p.EnsureDirectory(entry.Path)
		case KindFile:
			err = p.EnsureFile(entry.Path)
		}
		if err != nil {
			return report, &ApplyError{Index: i, Entry: entry, Err: err}
		}
		report.Provisioned = append(report.Provisioned, entry)
	}

	return report, nil
}
