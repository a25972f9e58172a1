package main

import (
	"fmt"
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/urfave/cli/v2"

	"github.com/cklang/cparse/internal/lexer"
	"github.com/cklang/cparse/internal/parser"
	"github.com/cklang/cparse/internal/pipeline"
	"github.com/cklang/cparse/internal/prettyprinter"
)

func main() {
	app := &cli.App{
		Name:  "cparse",
		Usage: "parse C translation units and dump their syntax trees",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "dump",
				Usage: "dump `FORMAT` after parsing: tree, code, or tokens",
			},
			&cli.StringSliceFlag{
				Name:  "typedef",
				Usage: "predeclare `NAME` as a typedef in the global scope",
			},
			&cli.BoolFlag{
				Name:  "watch",
				Usage: "keep running and re-parse files when they change",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.NArg() == 0 {
		return cli.Exit("cparse: no input files", 2)
	}

	files := c.Args().Slice()
	dump := c.String("dump")
	typedefs := c.StringSlice("typedef")

	failed := false
	for _, path := range files {
		if !parseFile(path, dump, typedefs) {
			failed = true
		}
	}

	if c.Bool("watch") {
		return watch(files, dump, typedefs)
	}
	if failed {
		return cli.Exit("", 1)
	}
	return nil
}

// parseFile runs one file through the lexer and parser pipeline, reports
// diagnostics on stderr, and dumps the requested representation on
// stdout. Returns false if any diagnostics were produced.
func parseFile(path, dump string, typedefs []string) bool {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cparse: %v\n", err)
		return false
	}

	ctx := pipeline.NewContext(path, string(src))
	ctx.Typedefs = typedefs
	ctx = pipeline.New(&lexer.Processor{}, &parser.Processor{}).Run(ctx)

	for _, diag := range ctx.Errors {
		diag.File = path
		fmt.Fprintln(os.Stderr, diag)
	}

	switch dump {
	case "tree":
		tp := prettyprinter.NewTreePrinter()
		tp.PrintTranslationUnit(ctx.Unit)
		fmt.Print(tp.String())
	case "code":
		cp := prettyprinter.NewCodePrinter()
		cp.PrintTranslationUnit(ctx.Unit)
		fmt.Print(cp.String())
	case "tokens":
		for _, tok := range ctx.Tokens {
			pos := ctx.Position(tok)
			fmt.Printf("%s:%s\t%s\t%s\n", path, pos, tok.Kind, tok.Lexeme)
		}
	}

	return len(ctx.Errors) == 0
}

// watch re-parses each file whenever it is written, for an edit/recheck
// loop.
func watch(files []string, dump string, typedefs []string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	for _, path := range files {
		if err := watcher.Add(path); err != nil {
			return err
		}
	}

	fmt.Fprintln(os.Stderr, "cparse: watching for changes")
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				parseFile(event.Name, dump, typedefs)
				// Editors that replace the file drop the watch; re-add.
				_ = watcher.Add(event.Name)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "cparse: watch: %v\n", err)
		}
	}
}
