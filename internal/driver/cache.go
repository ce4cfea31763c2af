package driver

import (
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"oneassert/internal/expand"
	"oneassert/internal/project"
	"oneassert/internal/source"
)

// diskCacheSchemaVersion is bumped whenever DiskPayload's format
// changes, invalidating older entries.
const diskCacheSchemaVersion uint16 = 1

// DiskCache stores expanded fragments keyed by a digest of the input
// and the options that shaped the rewrite. Safe for concurrent use.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// DiskPayload is the cached form of one expansion.
type DiskPayload struct {
	Schema   uint16
	Text     string
	Mappings []PayloadMapping
}

// PayloadMapping is a Fragment mapping with the file identity dropped;
// the file is re-identified by the cache key on the way back in.
type PayloadMapping struct {
	GenStart uint32
	GenEnd   uint32
	SrcStart uint32
	SrcEnd   uint32
}

// OpenDiskCache initializes the cache at the standard user location.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return OpenDiskCacheAt(filepath.Join(base, app))
}

// OpenDiskCacheAt initializes the cache at an explicit directory.
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key project.Digest) string {
	hexKey := hex.EncodeToString(key[:])
	// A subdirectory keeps the cache root readable and easy to clear.
	return filepath.Join(c.dir, "frags", hexKey+".mp")
}

// Put serializes and writes a payload, replacing any previous entry
// atomically.
func (c *DiskCache) Put(key project.Digest, payload *DiskPayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(f.Name()) }()

	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get reads a payload. The first return is false on a clean miss.
func (c *DiskCache) Get(key project.Digest, out *DiskPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer func() { _ = f.Close() }()

	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	return true, nil
}

// DropAll invalidates the whole cache, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		return err
	}
	return os.RemoveAll(old)
}

// fragmentKey digests everything the rewrite depends on: the schema,
// the generation options, and the input bytes.
func fragmentKey(prefix string, noFlavor bool, content []byte) project.Digest {
	flavor := "flavor"
	if noFlavor {
		flavor = "no-flavor"
	}
	opts := project.HashStrings("v1", prefix, flavor)
	return project.Combine(project.HashBytes(content), opts)
}

func newDiskPayload(frag expand.Fragment) *DiskPayload {
	p := &DiskPayload{
		Schema:   diskCacheSchemaVersion,
		Text:     frag.Text,
		Mappings: make([]PayloadMapping, len(frag.Mappings)),
	}
	for i, m := range frag.Mappings {
		p.Mappings[i] = PayloadMapping{
			GenStart: m.GenStart,
			GenEnd:   m.GenEnd,
			SrcStart: m.Source.Start,
			SrcEnd:   m.Source.End,
		}
	}
	return p
}

// fragment reconstructs the cached expansion against the freshly
// loaded file. Stale schemas report invalid.
func (p *DiskPayload) fragment(file source.FileID) (expand.Fragment, bool) {
	if p.Schema != diskCacheSchemaVersion {
		return expand.Fragment{}, false
	}
	frag := expand.Fragment{Text: p.Text}
	if len(p.Mappings) > 0 {
		frag.Mappings = make([]expand.Mapping, len(p.Mappings))
		for i, m := range p.Mappings {
			frag.Mappings[i] = expand.Mapping{
				GenStart: m.GenStart,
				GenEnd:   m.GenEnd,
				Source:   source.Span{File: file, Start: m.SrcStart, End: m.SrcEnd},
			}
		}
	}
	return frag, true
}
