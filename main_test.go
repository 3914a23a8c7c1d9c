package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/repr"

	"github.com/pontaoski/mash/ast"
	"github.com/pontaoski/mash/errors"
	"github.com/pontaoski/mash/lexer"
	"github.com/pontaoski/mash/types"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestProjectRoundTrip(t *testing.T) {
	dir := t.TempDir()

	want := mashProject{Package: "demo", Entry: "main.py", Source: "src", Strict: true}
	if err := want.write(dir); err != nil {
		t.Fatal(err)
	}

	got, err := loadProject(dir)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("got %s, want %s", repr.String(got), repr.String(want))
	}

	path, err := got.entry(dir, "")
	if err != nil {
		t.Fatal(err)
	}
	if path != filepath.Join(dir, "src", "main.py") {
		t.Errorf("got entry %s", path)
	}
}

func TestMissingProject(t *testing.T) {
	proj, err := loadProject(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if proj.sourceDir() != "." {
		t.Errorf("got source dir %s", proj.sourceDir())
	}
	if _, err := proj.entry(".", ""); err == nil {
		t.Errorf("expected an error without Entry")
	}
	if path, _ := proj.entry(".", "x.py"); path != "x.py" {
		t.Errorf("explicit argument ignored: %s", path)
	}
}

func TestBadProject(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, projectFile, "Package: [unclosed\n")

	if _, err := loadProject(dir); err == nil {
		t.Errorf("expected a yaml error")
	}
}

func TestParseDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.py", "def f(x):\n    return x * 2\n")
	writeFile(t, dir, "a.py", "x = 1\n1 = 2\n")
	writeFile(t, dir, "c.py", "if x:\n    a\n  b\n")
	writeFile(t, dir, "notes.txt", "not python (\n")
	if err := os.Mkdir(filepath.Join(dir, "pkg.py"), 0o755); err != nil {
		t.Fatal(err)
	}

	files, err := parseDirectory(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 3 {
		t.Fatalf("got %d files: %s", len(files), repr.String(files))
	}

	a, b, c := files[0], files[1], files[2]
	if filepath.Base(a.Path) != "a.py" || filepath.Base(b.Path) != "b.py" || filepath.Base(c.Path) != "c.py" {
		t.Errorf("files out of order: %s %s %s", a.Path, b.Path, c.Path)
	}

	if a.ok() || len(a.Diagnostics) != 1 {
		t.Errorf("a.py: got %d diagnostics", len(a.Diagnostics))
	} else if _, isTarget := a.Diagnostics[0].(errors.InvalidTarget); !isTarget {
		t.Errorf("a.py: got %T", a.Diagnostics[0])
	}
	if got := ast.Sprint(a.Stmts); got != "(assign x 1)" {
		t.Errorf("a.py: got %s", got)
	}

	if !b.ok() {
		t.Errorf("b.py: %v %v", b.Diagnostics, b.Fatal)
	}
	if got := ast.Sprint(b.Stmts); got != "(def f (x) (return (* x 2)))" {
		t.Errorf("b.py: got %s", got)
	}

	if c.Fatal == nil || c.Stmts != nil || c.ok() {
		t.Errorf("c.py: want a fatal error, got %s", repr.String(c))
	}
}

func TestParseMissingFile(t *testing.T) {
	if _, err := parseFile(filepath.Join(t.TempDir(), "nope.py"), nil); err == nil {
		t.Errorf("expected an error")
	}
}

func TestParseFileLiveSink(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bad.py", "x = $\n1 = 2\n")

	var live []error
	file, err := parseFile(filepath.Join(dir, "bad.py"), errors.SinkFunc(func(err error) {
		live = append(live, err)
	}))
	if err != nil {
		t.Fatal(err)
	}
	if len(file.Diagnostics) == 0 || len(live) != len(file.Diagnostics) {
		t.Fatalf("collected %d, live %d", len(file.Diagnostics), len(live))
	}
	for i := range live {
		if live[i].Error() != file.Diagnostics[i].Error() {
			t.Errorf("diagnostic %d: live %v, collected %v", i, live[i], file.Diagnostics[i])
		}
	}
}

func TestSourceTokens(t *testing.T) {
	tokens, err := lexer.Analyze("if a:\n    b\n", "test.py", nil)
	if err != nil {
		t.Fatal(err)
	}

	got := sourceTokens(tokens)
	want := []types.TokenKind{types.IF, types.IDENT, types.COLON, types.IDENT}
	if len(got) != len(want) {
		t.Fatalf("got %s", repr.String(got))
	}
	for i, tok := range got {
		if tok.Kind != want[i] {
			t.Errorf("token %d: got %s, want %s", i, tok.Kind, want[i])
		}
	}
}
