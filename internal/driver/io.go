package driver

import (
	"oneassert/internal/diag"
	"oneassert/internal/source"
)

func readFailure(path string, opts ExpandOptions, err error) *ExpandResult {
	bag := diag.NewBag(maxDiag(opts.MaxDiagnostics))
	reportIOError(bag, true, path, err)
	return &ExpandResult{Path: path, Bag: bag}
}

func reportIOError(bag *diag.Bag, read bool, path string, err error) {
	code := diag.IoWriteFailed
	verb := "write"
	if read {
		code = diag.IoReadFailed
		verb = "read"
	}
	// I/O failures carry no source position.
	bag.Add(diag.NewError(code, source.Span{}, "failed to "+verb+" "+path+": "+err.Error()))
}
