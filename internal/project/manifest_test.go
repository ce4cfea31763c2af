package project

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFindManifestWalksUp(t *testing.T) {
	root := t.TempDir()
	want := writeManifest(t, root, "")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	got, ok, err := FindManifest(nested)
	if err != nil || !ok {
		t.Fatalf("FindManifest = %q, %v, %v", got, ok, err)
	}
	if got != want {
		t.Errorf("found %q, want %q", got, want)
	}

	gotRoot, ok, err := FindProjectRoot(nested)
	if err != nil || !ok || gotRoot != root {
		t.Errorf("FindProjectRoot = %q, %v, %v, want %q", gotRoot, ok, err, root)
	}
}

func TestFindManifestMissing(t *testing.T) {
	_, ok, err := FindManifest(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("found a manifest in an empty tree")
	}
}

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, `
[expand]
prefix = "__oa"
flavor = false

[output]
color = "off"
`)
	m, err := LoadManifest(path)
	if err != nil {
		t.Fatal(err)
	}
	if m.Expand.Prefix != "__oa" {
		t.Errorf("prefix = %q", m.Expand.Prefix)
	}
	if m.Expand.FlavorEnabled() {
		t.Error("flavor = false not honored")
	}
	if m.Output.Color != "off" {
		t.Errorf("color = %q", m.Output.Color)
	}
}

func TestLoadManifestDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "")
	m, err := LoadManifest(path)
	if err != nil {
		t.Fatal(err)
	}
	if m.Expand.Prefix != "" {
		t.Errorf("prefix = %q, want empty", m.Expand.Prefix)
	}
	if !m.Expand.FlavorEnabled() {
		t.Error("flavor must default to on")
	}
}

func TestLoadManifestBadColor(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "[output]\ncolor = \"sometimes\"\n")
	if _, err := LoadManifest(path); err == nil {
		t.Error("invalid color accepted")
	}
}

func TestHashStringsFraming(t *testing.T) {
	if HashStrings("ab", "c") == HashStrings("a", "bc") {
		t.Error("framing failed: different splits collide")
	}
	if HashStrings("x") != HashStrings("x") {
		t.Error("hash not deterministic")
	}
}
