package driver

import (
	"fortio.org/safecast"

	"oneassert/internal/ast"
	"oneassert/internal/diag"
	"oneassert/internal/lexer"
	"oneassert/internal/parser"
	"oneassert/internal/source"
)

// ParseResult is the outcome of parsing one assertion argument list.
type ParseResult struct {
	Path    string
	FileSet *source.FileSet
	FileID  source.FileID
	Builder *ast.Builder
	Parsed  parser.Result
	Bag     *diag.Bag
}

// Parse reads one file and parses it as an assert argument list.
func Parse(path string, maxDiagnostics int) (*ParseResult, error) {
	fileSet := source.NewFileSet()
	id, err := fileSet.Load(path)
	if err != nil {
		return nil, err
	}
	return parseInSet(fileSet, id, path, maxDiagnostics), nil
}

// ParseSource parses an in-memory argument list.
func ParseSource(name string, src []byte, maxDiagnostics int) *ParseResult {
	fileSet := source.NewFileSet()
	id := fileSet.AddVirtual(name, src)
	return parseInSet(fileSet, id, name, maxDiagnostics)
}

func parseInSet(fileSet *source.FileSet, id source.FileID, path string, maxDiagnostics int) *ParseResult {
	file := fileSet.Get(id)
	bag := diag.NewBag(maxDiag(maxDiagnostics))

	maxErrors, err := safecast.Conv[uint](maxDiag(maxDiagnostics))
	if err != nil {
		maxErrors = 0
	}

	lx := lexer.New(file, lexer.Options{Reporter: lexReporter{bag: bag}})
	builder := ast.NewBuilder(ast.Hints{})
	parsed := parser.ParseMacroArgs(fileSet, lx, builder, parser.Options{
		Reporter:  &diag.BagReporter{Bag: bag},
		MaxErrors: maxErrors,
	})

	return &ParseResult{
		Path:    path,
		FileSet: fileSet,
		FileID:  id,
		Builder: builder,
		Parsed:  parsed,
		Bag:     bag,
	}
}
