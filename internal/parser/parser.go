package parser

import (
	"github.com/cklang/cparse/internal/ast"
	"github.com/cklang/cparse/internal/diagnostics"
	"github.com/cklang/cparse/internal/pipeline"
	"github.com/cklang/cparse/internal/symbols"
	"github.com/cklang/cparse/internal/token"
)

// Parser holds the state of our parser: an immutable token slice, a
// cursor, and the scope stack consulted during identifier classification.
type Parser struct {
	ctx    *pipeline.Context
	toks   []token.Token
	pos    int
	scopes *symbols.Table
}

func New(ctx *pipeline.Context) *Parser {
	return &Parser{
		ctx:    ctx,
		toks:   ctx.Tokens,
		scopes: symbols.NewSeededTable(ctx.Typedefs),
	}
}

// Scopes exposes the scope table for tests and for callers that want to
// inspect typedef bindings after a parse.
func (p *Parser) Scopes() *symbols.Table {
	return p.scopes
}

// --- Token view ---

// eofToken synthesizes an EOF sentinel at the end of the last real token,
// so out-of-range peeks report "end of file" as the offending token at a
// sane place.
func (p *Parser) eofToken() token.Token {
	offset := 0
	if n := len(p.toks); n > 0 {
		offset = p.toks[n-1].Offset + p.toks[n-1].Length
	}
	return token.Token{Kind: token.EOF, Lexeme: "end of file", Offset: offset}
}

func (p *Parser) cur() token.Token {
	return p.peek(0)
}

func (p *Parser) peek(n int) token.Token {
	if p.pos+n < len(p.toks) {
		return p.toks[p.pos+n]
	}
	return p.eofToken()
}

func (p *Parser) advance() token.Token {
	tok := p.cur()
	if p.pos < len(p.toks) {
		p.pos++
	}
	return tok
}

func (p *Parser) curIs(kind token.Kind) bool {
	return p.cur().Kind == kind
}

func (p *Parser) peekIs(n int, kind token.Kind) bool {
	return p.peek(n).Kind == kind
}

// match advances over the current token if it has the given kind.
func (p *Parser) match(kind token.Kind) bool {
	if p.curIs(kind) {
		p.advance()
		return true
	}
	return false
}

// consume advances over the current token if it has the given kind, and
// reports a diagnostic otherwise. Terminator kinds get the shorter
// missing-terminator message.
func (p *Parser) consume(kind token.Kind) bool {
	if p.curIs(kind) {
		p.advance()
		return true
	}
	switch kind {
	case token.SEMI, token.RPAREN, token.RBRACE, token.RBRACKET, token.COLON:
		p.errorAt(p.cur(), diagnostics.ErrP002, string(kind))
	default:
		p.errorAt(p.cur(), diagnostics.ErrP001, string(kind), p.cur().Lexeme)
	}
	return false
}

// expect checks the current token without advancing.
func (p *Parser) expect(kind token.Kind) bool {
	return p.curIs(kind)
}

// mark and resetTo bracket the few bounded speculative parses (the
// identifier-label check and nothing else); no backtrack spans more than a
// couple of tokens.
func (p *Parser) mark() int {
	return p.pos
}

func (p *Parser) resetTo(m int) {
	p.pos = m
}

func (p *Parser) errorAt(tok token.Token, code diagnostics.ErrorCode, args ...interface{}) {
	p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewPhaseError(
		diagnostics.PhaseParser,
		code,
		p.ctx.Position(tok),
		args...,
	))
}

// synchronize skips to the next statement/declaration boundary: past a
// top-level ';', or up to a '}' closing the current nesting level.
func (p *Parser) synchronize() {
	depth := 0
	for {
		switch p.cur().Kind {
		case token.EOF:
			return
		case token.SEMI:
			if depth <= 0 {
				p.advance()
				return
			}
		case token.LBRACE:
			depth++
		case token.RBRACE:
			if depth <= 0 {
				return
			}
			depth--
		}
		p.advance()
	}
}

// --- Translation unit ---

// ParseTranslationUnit loops over external declarations until end of
// input, resynchronising after each failed one.
func (p *Parser) ParseTranslationUnit() *ast.TranslationUnit {
	unit := &ast.TranslationUnit{}
	for !p.curIs(token.EOF) {
		// A stray ';' at file scope is an empty declaration.
		if p.match(token.SEMI) {
			continue
		}
		decl := p.parseExternalDeclaration()
		if decl != nil {
			unit.Decls = append(unit.Decls, decl)
		} else {
			before := p.pos
			p.synchronize()
			if p.pos == before {
				// A '}' with no open brace; skip it or loop forever.
				p.advance()
			}
		}
	}
	return unit
}
