// Package driver wires the front-end stages together: it loads input
// files, runs the lexer, parser, and expander over them, and manages
// the on-disk fragment cache and parallel directory runs.
package driver

import (
	"fortio.org/safecast"

	"oneassert/internal/ast"
	"oneassert/internal/diag"
	"oneassert/internal/expand"
	"oneassert/internal/lexer"
	"oneassert/internal/parser"
	"oneassert/internal/source"
)

// DefaultMaxDiagnostics bounds diagnostic collection when the caller
// passes zero.
const DefaultMaxDiagnostics = 100

// ExpandOptions configures one expansion run.
type ExpandOptions struct {
	// Prefix for generated bindings; empty keeps the expander default.
	Prefix string
	// NoFlavor disables the literal-true joke messages.
	NoFlavor bool
	// MaxDiagnostics caps the bag; zero means DefaultMaxDiagnostics.
	MaxDiagnostics int
	// Cache, when set, is consulted before expanding and updated after.
	Cache *DiskCache
}

// ExpandResult is the outcome of expanding one assertion input.
type ExpandResult struct {
	Path     string
	FileSet  *source.FileSet
	FileID   source.FileID
	Fragment expand.Fragment
	Bag      *diag.Bag
	// OK means a fragment was produced and no errors were reported.
	OK bool
	// Cached means the fragment came from the disk cache.
	Cached bool
}

func maxDiag(n int) int {
	if n <= 0 {
		return DefaultMaxDiagnostics
	}
	return n
}

// ExpandSource expands an in-memory argument list (inline input, tests).
func ExpandSource(name string, src []byte, opts ExpandOptions) *ExpandResult {
	fileSet := source.NewFileSet()
	id := fileSet.AddVirtual(name, src)
	return expandInSet(fileSet, id, name, opts)
}

// ExpandFile reads one input file and expands it, going through the
// disk cache when one is configured.
func ExpandFile(path string, opts ExpandOptions) (*ExpandResult, error) {
	fileSet := source.NewFileSet()
	id, err := fileSet.Load(path)
	if err != nil {
		return nil, err
	}

	if opts.Cache != nil {
		file := fileSet.Get(id)
		key := fragmentKey(opts.Prefix, opts.NoFlavor, file.Content)
		var payload DiskPayload
		if ok, cacheErr := opts.Cache.Get(key, &payload); cacheErr == nil && ok {
			if frag, valid := payload.fragment(id); valid {
				return &ExpandResult{
					Path:     path,
					FileSet:  fileSet,
					FileID:   id,
					Fragment: frag,
					Bag:      diag.NewBag(maxDiag(opts.MaxDiagnostics)),
					OK:       true,
					Cached:   true,
				}, nil
			}
		}
	}

	res := expandInSet(fileSet, id, path, opts)
	if res.OK && opts.Cache != nil {
		file := fileSet.Get(id)
		key := fragmentKey(opts.Prefix, opts.NoFlavor, file.Content)
		// Best effort: a cold cache next run costs one re-expansion.
		_ = opts.Cache.Put(key, newDiskPayload(res.Fragment))
	}
	return res, nil
}

func expandInSet(fileSet *source.FileSet, id source.FileID, path string, opts ExpandOptions) *ExpandResult {
	file := fileSet.Get(id)
	bag := diag.NewBag(maxDiag(opts.MaxDiagnostics))
	rep := &diag.BagReporter{Bag: bag}

	maxErrors, err := safecast.Conv[uint](maxDiag(opts.MaxDiagnostics))
	if err != nil {
		maxErrors = 0
	}

	lx := lexer.New(file, lexer.Options{Reporter: lexReporter{bag: bag}})
	arenas := ast.NewBuilder(ast.Hints{})
	parsed := parser.ParseMacroArgs(fileSet, lx, arenas, parser.Options{
		Reporter:  rep,
		MaxErrors: maxErrors,
	})

	out := &ExpandResult{Path: path, FileSet: fileSet, FileID: id, Bag: bag}
	if !parsed.Cond.IsValid() {
		return out
	}

	x := expand.New(fileSet, file, arenas, expand.Options{
		Prefix:   opts.Prefix,
		NoFlavor: opts.NoFlavor,
		Reporter: rep,
	})
	frag, ok := x.Expand(parsed.Cond, parsed.MsgSpan, parsed.HasMsg)
	out.Fragment = frag
	out.OK = ok && !bag.HasErrors()
	return out
}
