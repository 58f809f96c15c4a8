// Package config stores fsprov settings and the markers that record which
// layouts have been applied. Settings live in a KEY=VALUE file; keys missing
// from the file fall back to the Defaults table.
package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/spf13/afero"

	"github.com/zoro11031/homelab-coreos-minipc/fsprov/internal/system"
)

// Config is the fsprov settings file. It is safe for concurrent use.
type Config struct {
	path        string
	fs          afero.Fs
	provisioner system.ProvisionerManager

	mu     sync.Mutex
	values map[string]string
	loaded bool
}

// New creates a Config reading and writing path through the provisioner's
// filesystem. An empty path selects ~/.fsprov.conf.
func New(path string, p *system.Provisioner) *Config {
	if path == "" {
		path = filepath.Join(homeDir(), ".fsprov.conf")
	}

	return &Config{
		path:        path,
		fs:          p.Fs(),
		provisioner: p,
		values:      make(map[string]string),
	}
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return os.TempDir()
	}
	return home
}

// Load reads the settings file. A missing file is treated as empty.
func (c *Config) Load() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load()
}

// load must be called with c.mu held
func (c *Config) load() error {
	file, err := c.fs.Open(c.path)
	if os.IsNotExist(err) {
		c.loaded = true
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	values, err := parse(file)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", c.path, err)
	}

	c.values = values
	c.loaded = true
	return nil
}

// parse reads KEY=VALUE lines, skipping blanks, comments and lines without '='
func parse(r io.Reader) (map[string]string, error) {
	values := make(map[string]string)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		values[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}

	return values, scanner.Err()
}

// save writes the settings atomically (temp file + rename).
// It must be called with c.mu held.
func (c *Config) save() error {
	dir := filepath.Dir(c.path)
	if err := c.provisioner.EnsureDirectory(dir); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	tmpFile, err := afero.TempFile(c.fs, dir, ".fsprov.conf.tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer c.fs.Remove(tmpPath) // No-op once renamed

	w := bufio.NewWriter(tmpFile)
	fmt.Fprintln(w, "# fsprov configuration")
	fmt.Fprintf(w, "# Generated: %s\n\n", time.Now().Format(time.RFC3339))
	for _, key := range sortedKeys(c.values) {
		fmt.Fprintf(w, "%s=%s\n", key, c.values[key])
	}

	if err := w.Flush(); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := c.fs.Chmod(tmpPath, 0600); err != nil {
		return fmt.Errorf("failed to set permissions on temp file: %w", err)
	}

	if err := c.fs.Rename(tmpPath, c.path); err != nil {
		return fmt.Errorf("failed to replace config file: %w", err)
	}
	return nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// lookup returns the value stored in the file, loading it on first use
func (c *Config) lookup(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.loaded {
		if err := c.load(); err != nil {
			return "", false
		}
	}
	value, ok := c.values[key]
	return value, ok
}

// GetOrDefault returns the value stored in the file, then the Defaults table
// entry, then defaultValue
func (c *Config) GetOrDefault(key, defaultValue string) string {
	if value, ok := c.lookup(key); ok {
		return value
	}
	if value, ok := Defaults[key]; ok {
		return value
	}
	return defaultValue
}

// GetBool is GetOrDefault for boolean settings. Unparseable values yield
// defaultValue.
func (c *Config) GetBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(c.GetOrDefault(key, strconv.FormatBool(defaultValue)))
	if err != nil {
		return defaultValue
	}
	return value
}

// IsSet reports whether key is stored in the file rather than defaulted
func (c *Config) IsSet(key string) bool {
	_, ok := c.lookup(key)
	return ok
}

// All returns a copy of the values stored in the file
func (c *Config) All() map[string]string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.loaded {
		if err := c.load(); err != nil {
			return map[string]string{}
		}
	}
	result := make(map[string]string, len(c.values))
	for k, v := range c.values {
		result[k] = v
	}
	return result
}

// Set stores a value and saves the file
func (c *Config) Set(key, value string) error {
	return c.update(func(values map[string]string) {
		values[key] = value
	})
}

// Unset removes a value from the file so the default applies again
func (c *Config) Unset(key string) error {
	return c.update(func(values map[string]string) {
		delete(values, key)
	})
}

func (c *Config) update(change func(map[string]string)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Load first so unrelated keys already on disk are not lost
	if !c.loaded {
		if err := c.load(); err != nil {
			return fmt.Errorf("failed to load existing config: %w", err)
		}
	}

	change(c.values)
	return c.save()
}

// FilePath returns the settings file path
func (c *Config) FilePath() string {
	return c.path
}

// Markers returns the marker store in MARKER_DIR, sharing this config's
// filesystem and provisioner
func (c *Config) Markers() *Markers {
	return NewMarkers(c.GetOrDefault(KeyMarkerDir, ""), c.fs, c.provisioner)
}
