package parser

import (
	"github.com/cklang/cparse/internal/pipeline"
)

type Processor struct{}

func (pp *Processor) Process(ctx *pipeline.Context) *pipeline.Context {
	p := New(ctx)
	ctx.Unit = p.ParseTranslationUnit()
	// Errors are already added to the context by the parser instance.
	return ctx
}
