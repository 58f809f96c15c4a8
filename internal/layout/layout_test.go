package layout

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zoro11031/homelab-coreos-minipc/fsprov/internal/system"
)

const mediaLayout = `
name: media-stack
root: /srv/media
directories:
  - config
  - data/downloads
  - /var/log/media
files:
  - config/.keep
`

func TestLoad(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/layouts/media.yaml", []byte(mediaLayout), 0o644))

	l, err := Load(fs, "/layouts/media.yaml")
	require.NoError(t, err)

	assert.Equal(t, "media-stack", l.Name)
	assert.Equal(t, []Entry{
		{Kind: KindDirectory, Path: filepath.Join("/srv/media", "config")},
		{Kind: KindDirectory, Path: filepath.Join("/srv/media", "data/downloads")},
		{Kind: KindDirectory, Path: "/var/log/media"},
		{Kind: KindFile, Path: filepath.Join("/srv/media", "config/.keep")},
	}, l.Entries())
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/bad-yaml.yaml", []byte("name: [unterminated"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/no-name.yaml", []byte("directories: [a]"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/empty-entry.yaml", []byte("name: x\nfiles: ['']"), 0o644))

	tests := []struct {
		name    string
		path    string
		message string
	}{
		{name: "missing file", path: "/missing.yaml", message: "failed to read layout"},
		{name: "invalid yaml", path: "/bad-yaml.yaml", message: "failed to parse layout"},
		{name: "missing name", path: "/no-name.yaml", message: "invalid layout name"},
		{name: "empty entry", path: "/empty-entry.yaml", message: "file 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(fs, tt.path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestApplyProvisionsInOrder(t *testing.T) {
	t.Parallel()
	memFs := afero.NewMemMapFs()
	p := system.NewProvisionerWithFs(memFs)

	l := &Layout{
		Name:        "app",
		Root:        "/tmp/app",
		Directories: []string{"cache", "logs/archive"},
		Files:       []string{"data/out.txt"},
	}

	report, err := Apply(p, l)
	require.NoError(t, err)
	assert.Len(t, report.Provisioned, 3)

	for _, dir := range []string{"/tmp/app/cache", "/tmp/app/logs/archive", "/tmp/app/data"} {
		isDir, err := afero.IsDir(memFs, dir)
		require.NoError(t, err)
		assert.True(t, isDir, "%s should be a directory", dir)
	}
	size, err := p.FileSize("/tmp/app/data/out.txt")
	require.NoError(t, err)
	assert.Equal(t, int64(0), size)
}

func TestApplyStopsAtFirstFailure(t *testing.T) {
	t.Parallel()
	mock := system.NewMockProvisioner()
	cause := errors.New("permission denied")
	mock.Errors["/srv/b"] = cause

	l := &Layout{
		Name:        "partial",
		Directories: []string{"/srv/a", "/srv/b", "/srv/c"},
		Files:       []string{"/srv/a/file"},
	}

	report, err := Apply(mock, l)
	require.Error(t, err)

	var applyErr *ApplyError
	require.True(t, errors.As(err, &applyErr))
	assert.Equal(t, 1, applyErr.Index)
	assert.Equal(t, "/srv/b", applyErr.Entry.Path)
	assert.True(t, errors.Is(err, cause))

	// Earlier entries are kept, later entries are not attempted
	assert.Equal(t, []Entry{{Kind: KindDirectory, Path: "/srv/a"}}, report.Provisioned)
	assert.Equal(t, []string{"/srv/a"}, mock.Directories)
	assert.Empty(t, mock.Files)
}

func TestApplyIsRepeatable(t *testing.T) {
	t.Parallel()
	p := system.NewProvisionerWithFs(afero.NewMemMapFs())
	l := &Layout{Name: "again", Root: "/r", Directories: []string{"a/b"}, Files: []string{"a/b/c.txt"}}

	_, err := Apply(p, l)
	require.NoError(t, err)
	_, err = Apply(p, l)
	require.NoError(t, err)
}
