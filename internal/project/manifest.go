// Package project locates and loads oneassert.toml, the per-project
// configuration for the expander and its output.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ManifestName is the file the project root is identified by.
const ManifestName = "oneassert.toml"

// Manifest is the parsed oneassert.toml.
type Manifest struct {
	Expand ExpandConfig `toml:"expand"`
	Output OutputConfig `toml:"output"`
}

// ExpandConfig configures the rewrite itself.
type ExpandConfig struct {
	// Prefix for generated bindings; empty keeps the built-in default.
	Prefix string `toml:"prefix"`
	// Flavor enables the joke messages for `assert!(true)`. Nil means on.
	Flavor *bool `toml:"flavor"`
}

// OutputConfig configures how results are presented.
type OutputConfig struct {
	// Color is one of auto, on, off. Empty means auto.
	Color string `toml:"color"`
}

// FlavorEnabled resolves the tri-state flavor switch.
func (c ExpandConfig) FlavorEnabled() bool {
	return c.Flavor == nil || *c.Flavor
}

// FindManifest walks up from startDir to locate oneassert.toml.
func FindManifest(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// FindProjectRoot returns the directory containing oneassert.toml, if any.
func FindProjectRoot(startDir string) (root string, ok bool, err error) {
	manifestPath, ok, err := FindManifest(startDir)
	if err != nil || !ok {
		return "", ok, err
	}
	return filepath.Dir(manifestPath), true, nil
}

// LoadManifest reads and decodes a manifest file.
func LoadManifest(path string) (*Manifest, error) {
	var m Manifest
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	switch m.Output.Color {
	case "", "auto", "on", "off":
	default:
		return nil, fmt.Errorf("%s: output.color must be auto, on, or off, got %q", path, m.Output.Color)
	}
	return &m, nil
}

// LoadNearestManifest finds and loads the manifest governing startDir.
// Returns (nil, false, nil) when no manifest exists.
func LoadNearestManifest(startDir string) (*Manifest, bool, error) {
	path, ok, err := FindManifest(startDir)
	if err != nil || !ok {
		return nil, false, err
	}
	m, err := LoadManifest(path)
	if err != nil {
		return nil, true, err
	}
	return m, true, nil
}
