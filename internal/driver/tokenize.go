package driver

import (
	"oneassert/internal/diag"
	"oneassert/internal/lexer"
	"oneassert/internal/source"
	"oneassert/internal/token"
)

// TokenizeResult is the outcome of tokenizing one input file.
type TokenizeResult struct {
	Path    string
	FileSet *source.FileSet
	FileID  source.FileID
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize reads one file and lexes it to EOF.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fileSet := source.NewFileSet()
	id, err := fileSet.Load(path)
	if err != nil {
		return nil, err
	}
	return tokenizeInSet(fileSet, id, path, maxDiagnostics), nil
}

// TokenizeSource lexes an in-memory input.
func TokenizeSource(name string, src []byte, maxDiagnostics int) *TokenizeResult {
	fileSet := source.NewFileSet()
	id := fileSet.AddVirtual(name, src)
	return tokenizeInSet(fileSet, id, name, maxDiagnostics)
}

func tokenizeInSet(fileSet *source.FileSet, id source.FileID, path string, maxDiagnostics int) *TokenizeResult {
	file := fileSet.Get(id)
	bag := diag.NewBag(maxDiag(maxDiagnostics))
	lx := lexer.New(file, lexer.Options{Reporter: lexReporter{bag: bag}})

	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}

	return &TokenizeResult{
		Path:    path,
		FileSet: fileSet,
		FileID:  id,
		Tokens:  tokens,
		Bag:     bag,
	}
}
