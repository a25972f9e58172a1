package pipeline

import (
	"github.com/cklang/cparse/internal/ast"
	"github.com/cklang/cparse/internal/diagnostics"
	"github.com/cklang/cparse/internal/source"
	"github.com/cklang/cparse/internal/token"
)

// Processor is any component that can process a Context and return a
// modified context.
type Processor interface {
	Process(ctx *Context) *Context
}

// Context holds all the data passed between pipeline stages.
type Context struct {
	Source   string
	FilePath string
	File     *source.File

	// Tokens is the lexer's output: the complete, ordered token sequence
	// for one translation unit. The parser treats it as immutable.
	Tokens []token.Token

	// Typedefs seeds the parser's global scope with predeclared typedef
	// names (e.g. __builtin_va_list).
	Typedefs []string

	Unit *ast.TranslationUnit

	Errors []*diagnostics.DiagnosticError
}

// NewContext creates and initializes a new Context.
func NewContext(path, src string) *Context {
	return &Context{
		Source:   src,
		FilePath: path,
		File:     source.NewFile(path, src),
		Errors:   []*diagnostics.DiagnosticError{},
	}
}

// Position resolves a token's offset against the context's file.
func (c *Context) Position(tok token.Token) source.Position {
	return c.File.Position(tok.Offset)
}
