package config

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"

	"github.com/zoro11031/homelab-coreos-minipc/fsprov/internal/system"
)

func newMemMarkers(dir string) *Markers {
	fs := afero.NewMemMapFs()
	return NewMarkers(dir, fs, system.NewProvisionerWithFs(fs))
}

func TestMarkersCreateAndExists(t *testing.T) {
	markers := newMemMarkers("/markers")

	exists, err := markers.Exists("base-layout")
	if err != nil {
		t.Fatalf("Exists() error = %v", err)
	}
	if exists {
		t.Error("Exists() = true before Create()")
	}

	// The marker directory does not exist yet; Create provisions it
	if err := markers.Create("base-layout"); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	exists, err = markers.Exists("base-layout")
	if err != nil || !exists {
		t.Errorf("Exists() = %v, %v after Create(); want true, nil", exists, err)
	}
}

func TestMarkersListAndRemove(t *testing.T) {
	markers := newMemMarkers("/markers")

	names, err := markers.List()
	if err != nil || len(names) != 0 {
		t.Errorf("List() on missing dir = %v, %v; want empty, nil", names, err)
	}

	for _, name := range []string{"media", "web"} {
		if err := markers.Create(name); err != nil {
			t.Fatalf("Create(%s) error = %v", name, err)
		}
	}

	names, err = markers.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(names) != 2 || names[0] != "media" || names[1] != "web" {
		t.Errorf("List() = %v, want [media web]", names)
	}

	if err := markers.Remove("media"); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if err := markers.Remove("media"); err != nil {
		t.Errorf("Remove() on missing marker error = %v, want nil", err)
	}
	if exists, _ := markers.Exists("media"); exists {
		t.Error("Exists(media) = true after Remove()")
	}

	if err := markers.RemoveAll(); err != nil {
		t.Fatalf("RemoveAll() error = %v", err)
	}
	names, err = markers.List()
	if err != nil || len(names) != 0 {
		t.Errorf("List() after RemoveAll() = %v, %v; want empty, nil", names, err)
	}
}

func TestMarkersCreateUsesProvisioner(t *testing.T) {
	mock := system.NewMockProvisioner()
	markers := NewMarkers("/markers", afero.NewMemMapFs(), mock)

	if err := markers.Create("layout"); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if len(mock.Files) != 1 || mock.Files[0] != filepath.Join("/markers", "layout") {
		t.Errorf("EnsureFile calls = %v, want [/markers/layout]", mock.Files)
	}

	mock.Errors[filepath.Join("/markers", "broken")] = errors.New("disk full")
	if err := markers.Create("broken"); err == nil {
		t.Error("Create() error = nil, want provisioning error")
	}
}

func TestMarkersRejectInvalidNames(t *testing.T) {
	markers := newMemMarkers("/markers")

	for _, name := range []string{"", "..", "a/b"} {
		if err := markers.Create(name); err == nil {
			t.Errorf("Create(%q) error = nil, want validation error", name)
		}
		if err := markers.Remove(name); err == nil {
			t.Errorf("Remove(%q) error = nil, want validation error", name)
		}
	}
}
