package main

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pontaoski/mash/ast"
	"github.com/pontaoski/mash/errors"
	"github.com/pontaoski/mash/parser"
	"github.com/pontaoski/mash/types"
)

const sourceSuffix = ".py"

type parsedFile struct {
	Path        string
	Stmts       []ast.Stmt
	Diagnostics []error
	// Fatal is a tokenizer error that stopped the file; Stmts is nil then.
	Fatal error
}

func (f parsedFile) ok() bool {
	return f.Fatal == nil && len(f.Diagnostics) == 0
}

// parseFile parses the file at path, collecting its diagnostics. A non-nil
// live sink also sees each diagnostic as it is reported.
func parseFile(path string, live errors.Sink) (parsedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return parsedFile{}, err
	}

	var diags errors.Diagnostics
	var sink errors.Sink = &diags
	if live != nil {
		sink = errors.Tee(&diags, live)
	}
	stmts, fatal := parser.ParseSource(string(data), path, sink)

	return parsedFile{
		Path:        path,
		Stmts:       stmts,
		Diagnostics: diags.Errors,
		Fatal:       fatal,
	}, nil
}

// parseDirectory parses every source file directly inside dir, in name order.
func parseDirectory(dir string) ([]parsedFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), sourceSuffix) {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	files := make([]parsedFile, 0, len(names))
	for _, name := range names {
		file, err := parseFile(filepath.Join(dir, name), nil)
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}

	return files, nil
}

// sourceTokens drops the layout tokens the lexer synthesises, leaving only
// what is spelled in the source.
func sourceTokens(tokens []types.Token) []types.Token {
	ret := make([]types.Token, 0, len(tokens))
	for _, tok := range tokens {
		if !tok.Kind.IsStructural() {
			ret = append(ret, tok)
		}
	}
	return ret
}
