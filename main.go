package main

import (
	"fmt"
	"log"
	"os"

	"github.com/alecthomas/repr"
	"github.com/urfave/cli/v2"
	"github.com/ztrue/tracerr"

	"github.com/pontaoski/mash/ast"
	"github.com/pontaoski/mash/errors"
	"github.com/pontaoski/mash/lexer"
)

func logDiagnostic(err error) {
	log.Println(errorStyle.Render("error:"), err)
}

func reportDiagnostics(errs []error) {
	for _, err := range errs {
		logDiagnostic(err)
	}
}

func strictFailure(strict bool, errs []error) error {
	if strict && len(errs) > 0 {
		return cli.Exit(fmt.Sprintf("%d diagnostics", len(errs)), 1)
	}
	return nil
}

func main() {
	log.SetPrefix("mash: ")
	log.SetFlags(0)

	strictFlag := &cli.BoolFlag{
		Name:  "strict",
		Usage: "exit non-zero when any diagnostic is reported",
	}

	app := &cli.App{
		Name:  "mash",
		Usage: "python subset front end",
		ExitErrHandler: func(context *cli.Context, err error) {
			if err == nil {
				return
			}
			if coder, ok := err.(cli.ExitCoder); ok {
				log.Println(err)
				os.Exit(coder.ExitCode())
			}
			tracerr.PrintSourceColor(err)
			os.Exit(1)
		},
		Commands: []*cli.Command{
			{
				Name:      "init",
				Usage:     "init a project in the current directory",
				ArgsUsage: "NAME",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "entry",
						Value: "main" + sourceSuffix,
					},
				},
				Action: func(c *cli.Context) error {
					name := c.Args().First()
					if name == "" {
						return cli.Exit("no project name provided", 1)
					}
					return mashProject{Package: name, Entry: c.String("entry")}.write(".")
				},
			},
			{
				Name:      "tokens",
				Usage:     "dump the tokens of a file",
				ArgsUsage: "[FILE]",
				Flags: []cli.Flag{
					strictFlag,
					&cli.BoolFlag{
						Name:  "layout",
						Value: true,
						Usage: "include NEWLINE, INDENT, DEDENT and EOF tokens",
					},
				},
				Action: func(c *cli.Context) error {
					proj, err := loadProject(".")
					if err != nil {
						return err
					}
					path, err := proj.entry(".", c.Args().First())
					if err != nil {
						return err
					}
					data, err := os.ReadFile(path)
					if err != nil {
						return err
					}

					var diags errors.Diagnostics
					tokens, err := lexer.Analyze(string(data), path, errors.Tee(&diags, errors.SinkFunc(logDiagnostic)))
					if !c.Bool("layout") {
						tokens = sourceTokens(tokens)
					}
					repr.Println(tokens)
					if err != nil {
						return err
					}

					return strictFailure(c.Bool("strict") || proj.Strict, diags.Errors)
				},
			},
			{
				Name:      "parse",
				Usage:     "dump the statements of a file",
				ArgsUsage: "[FILE]",
				Flags: []cli.Flag{
					strictFlag,
					&cli.BoolFlag{
						Name:  "tree",
						Usage: "print statements as s-expressions",
					},
				},
				Action: func(c *cli.Context) error {
					proj, err := loadProject(".")
					if err != nil {
						return err
					}
					path, err := proj.entry(".", c.Args().First())
					if err != nil {
						return err
					}
					file, err := parseFile(path, errors.SinkFunc(logDiagnostic))
					if err != nil {
						return err
					}

					if file.Fatal != nil {
						return file.Fatal
					}

					if c.Bool("tree") {
						fmt.Println(ast.Sprint(file.Stmts))
					} else {
						repr.Println(file.Stmts)
					}

					return strictFailure(c.Bool("strict") || proj.Strict, file.Diagnostics)
				},
			},
			{
				Name:      "check",
				Usage:     "parse every source file in a directory",
				ArgsUsage: "[DIR]",
				Action: func(c *cli.Context) error {
					proj, err := loadProject(".")
					if err != nil {
						return err
					}
					dir := c.Args().First()
					if dir == "" {
						dir = proj.sourceDir()
					}

					files, err := parseDirectory(dir)
					if err != nil {
						return err
					}

					failed := 0
					for _, file := range files {
						if file.ok() {
							fmt.Println(okStyle.Render("ok  "), pathStyle.Render(file.Path))
							continue
						}

						failed++
						fmt.Println(errorStyle.Render("FAIL"), pathStyle.Render(file.Path))
						reportDiagnostics(file.Diagnostics)
						if file.Fatal != nil {
							log.Println(errorStyle.Render("fatal:"), tracerr.Unwrap(file.Fatal))
						}
					}

					if failed > 0 {
						return cli.Exit(fmt.Sprintf("%d of %d files failed", failed, len(files)), 1)
					}
					return nil
				},
			},
		},
	}
	app.Run(os.Args)
}
