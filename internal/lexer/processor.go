package lexer

import (
	"github.com/cklang/cparse/internal/diagnostics"
	"github.com/cklang/cparse/internal/pipeline"
	"github.com/cklang/cparse/internal/token"
)

type Processor struct{}

func (lp *Processor) Process(ctx *pipeline.Context) *pipeline.Context {
	l := New(ctx.Source)
	ctx.Tokens = l.Scan()

	for _, tok := range ctx.Tokens {
		if tok.Kind != token.ILLEGAL {
			continue
		}
		ctx.Errors = append(ctx.Errors, diagnostics.NewPhaseError(
			diagnostics.PhaseLexer,
			diagnostics.ErrL001,
			ctx.Position(tok),
			tok.Lexeme,
		))
	}
	return ctx
}
