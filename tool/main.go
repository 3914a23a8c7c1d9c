// Command adtgen turns sum-type declarations into Go interfaces with one
// struct per variant.
//
//	adtgen IN OUT PACKAGE
package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"path"

	"github.com/alecthomas/participle"

	. "github.com/dave/jennifer/jen"
)

type ADTFile struct {
	Imports      []string          `("import" @String)*`
	Declarations []*ADTDeclaration `@@*`
}

// ADTDeclaration is either a plain struct, `type N { fields };`, or a sum
// type, `type N = | A { fields } | B { fields };`.
type ADTDeclaration struct {
	Name   string      `"type" @Ident`
	Fields []*ADTField `( "{" @@* "}"`
	Cases  []*ADTCase  `| "=" ("|" @@)+ ) ";"`
}

type ADTCase struct {
	Name   string      `@Ident`
	Fields []*ADTField `"{" @@* "}"`
}

type ADTField struct {
	Name string      `@Ident`
	Type *ADTTypeRef `@@ ";"?`
}

// ADTTypeRef is `name`, `pkg.Name` or either with a `[]` prefix. The
// default lexer has already unquoted import paths.
type ADTTypeRef struct {
	Slice bool   `@("[" "]")?`
	Name  string `@Ident`
	Sel   string `("." @Ident)?`
}

var parser = participle.MustBuild(&ADTFile{})

func (t *ADTTypeRef) code(imports map[string]string) (Code, error) {
	s := &Statement{}
	if t.Slice {
		s = s.Index()
	}
	if t.Sel == "" {
		return s.Id(t.Name), nil
	}

	pkg, ok := imports[t.Name]
	if !ok {
		return nil, fmt.Errorf("%s.%s: package %s is not imported", t.Name, t.Sel, t.Name)
	}
	return s.Qual(pkg, t.Sel), nil
}

func fields(imports map[string]string, in []*ADTField) ([]Code, error) {
	var out []Code
	for _, field := range in {
		typ, err := field.Type.code(imports)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", field.Name, err)
		}
		out = append(out, Id(field.Name).Add(typ))
	}
	return out, nil
}

func GenerateDecls(pkgname string, file *ADTFile) (string, error) {
	f := NewFile(pkgname)
	f.HeaderComment("Code generated by adtgen. DO NOT EDIT.")

	imports := map[string]string{}
	for _, imp := range file.Imports {
		name := path.Base(imp)
		imports[name] = imp
		f.ImportName(imp, name)
	}

	seen := map[string]bool{}
	declare := func(name string) error {
		if seen[name] {
			return fmt.Errorf("%s is declared twice", name)
		}
		seen[name] = true
		return nil
	}

	for _, decl := range file.Declarations {
		if err := declare(decl.Name); err != nil {
			return "", err
		}

		if decl.Cases == nil {
			body, err := fields(imports, decl.Fields)
			if err != nil {
				return "", fmt.Errorf("%s: %w", decl.Name, err)
			}
			f.Type().Id(decl.Name).Struct(body...)
			continue
		}

		marker := "is_" + decl.Name
		f.Type().Id(decl.Name).Interface(
			Id(marker).Params(),
		)

		for _, it := range decl.Cases {
			if err := declare(it.Name); err != nil {
				return "", err
			}
			body, err := fields(imports, it.Fields)
			if err != nil {
				return "", fmt.Errorf("%s: %w", it.Name, err)
			}

			f.Type().Id(it.Name).Struct(body...)
			f.Func().Params(Id("v").Id(it.Name)).Id(marker).Params().Block()
		}
	}

	return fmt.Sprintf("%#v", f), nil
}

func main() {
	if len(os.Args) != 4 {
		fmt.Fprintln(os.Stderr, "usage: adtgen IN OUT PACKAGE")
		os.Exit(2)
	}
	in := os.Args[1]
	out := os.Args[2]
	pkgname := os.Args[3]

	inData, err := ioutil.ReadFile(in)
	if err != nil {
		panic(err)
	}

	file := ADTFile{}
	err = parser.ParseBytes(inData, &file)
	if err != nil {
		panic(err)
	}

	src, err := GenerateDecls(pkgname, &file)
	if err != nil {
		panic(err)
	}

	err = ioutil.WriteFile(out, []byte(src), 0644)
	if err != nil {
		panic(err)
	}
}
