package driver

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
)

// InputSuffix is the extension of assertion input files.
const InputSuffix = ".oa"

// OutputSuffix is appended to an input path for its expanded fragment.
const OutputSuffix = ".out"

// Stage names a pipeline phase for progress reporting.
type Stage uint8

const (
	StageQueued Stage = iota
	StageExpand
	StageWrite
)

// Status is the reported state of one file within a stage.
type Status uint8

const (
	StatusQueued Status = iota
	StatusWorking
	StatusDone
	StatusError
)

// Event is one progress notification from a directory run.
type Event struct {
	File   string
	Stage  Stage
	Status Status
}

// ListInputFiles returns the sorted *.oa files under dir.
func ListInputFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, InputSuffix) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	// Deterministic order regardless of walk internals.
	sort.Strings(files)
	return files, nil
}

// ExpandDir expands every *.oa file under dir in parallel. events may
// be nil; when set it receives progress notifications. The channel
// stays open so a WriteOutputs pass can reuse it; the caller closes it.
// jobs <= 0 means GOMAXPROCS.
func ExpandDir(ctx context.Context, dir string, opts ExpandOptions, jobs int, events chan<- Event) ([]*ExpandResult, error) {
	files, err := ListInputFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	emit := func(ev Event) {
		if events != nil {
			events <- ev
		}
	}

	// One slot per file; each goroutine owns its own index.
	results := make([]*ExpandResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			emit(Event{File: path, Stage: StageExpand, Status: StatusWorking})
			res, err := ExpandFile(path, opts)
			if err != nil {
				results[i] = readFailure(path, opts, err)
				emit(Event{File: path, Stage: StageExpand, Status: StatusError})
				return nil
			}
			results[i] = res
			if res.OK {
				emit(Event{File: path, Stage: StageExpand, Status: StatusDone})
			} else {
				emit(Event{File: path, Stage: StageExpand, Status: StatusError})
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return compact(results), err
	}
	return compact(results), nil
}

// WriteOutputs writes every successful fragment next to its input as
// <input>.out and reports write failures into the result's bag.
// Returns the number of files written.
func WriteOutputs(results []*ExpandResult, events chan<- Event) int {
	written := 0
	for _, res := range results {
		if res == nil || !res.OK {
			continue
		}
		out := res.Path + OutputSuffix
		if events != nil {
			events <- Event{File: res.Path, Stage: StageWrite, Status: StatusWorking}
		}
		if err := os.WriteFile(out, []byte(res.Fragment.Text+"\n"), 0o644); err != nil {
			reportIOError(res.Bag, false, out, err)
			res.OK = false
			if events != nil {
				events <- Event{File: res.Path, Stage: StageWrite, Status: StatusError}
			}
			continue
		}
		written++
		if events != nil {
			events <- Event{File: res.Path, Stage: StageWrite, Status: StatusDone}
		}
	}
	return written
}

func compact(results []*ExpandResult) []*ExpandResult {
	out := results[:0]
	for _, r := range results {
		if r != nil {
			out = append(out, r)
		}
	}
	return out
}
