package parser

import (
	"github.com/cklang/cparse/internal/ast"
	"github.com/cklang/cparse/internal/diagnostics"
	"github.com/cklang/cparse/internal/token"
)

// parseStatement dispatches on the first token. Label statements need one
// extra token of lookahead from an initial identifier; everything else is
// decided by the FIRST token alone.
func (p *Parser) parseStatement() ast.Statement {
	switch p.cur().Kind {
	case token.IDENT:
		return p.parseLabeledStatement()
	case token.CASE:
		return p.parseCaseStatement()
	case token.DEFAULT:
		return p.parseDefaultStatement()
	case token.LBRACE:
		cs := p.parseCompoundStatement()
		if cs == nil {
			return nil
		}
		return cs
	case token.IF:
		return p.parseIfStatement()
	case token.SWITCH:
		return p.parseSwitchStatement()
	case token.WHILE:
		return p.parseWhileStatement()
	case token.DO:
		return p.parseDoWhileStatement()
	case token.FOR:
		return p.parseForStatement()
	case token.GOTO:
		return p.parseGotoStatement()
	case token.CONTINUE:
		tok := p.advance()
		if !p.consume(token.SEMI) {
			return nil
		}
		return &ast.ContinueStatement{Token: tok}
	case token.BREAK:
		tok := p.advance()
		if !p.consume(token.SEMI) {
			return nil
		}
		return &ast.BreakStatement{Token: tok}
	case token.RETURN:
		return p.parseReturnStatement()
	default:
		return p.parseExpressionStatement()
	}
}

// parseLabeledStatement speculatively consumes the identifier and checks
// for ':'; on mismatch it rewinds and reparses as an expression
// statement. The backtrack never spans more than the one identifier.
func (p *Parser) parseLabeledStatement() ast.Statement {
	m := p.mark()
	tok := p.advance()
	if !p.match(token.COLON) {
		p.resetTo(m)
		return p.parseExpressionStatement()
	}
	stmt := p.parseStatement()
	if stmt == nil {
		return nil
	}
	return &ast.LabeledStatement{Token: tok, Label: tok.Lexeme, Stmt: stmt}
}

func (p *Parser) parseCaseStatement() ast.Statement {
	tok := p.advance()
	value := p.parseConditionalExpression()
	if value == nil {
		return nil
	}
	if !p.consume(token.COLON) {
		return nil
	}
	stmt := p.parseStatement()
	if stmt == nil {
		return nil
	}
	return &ast.CaseStatement{Token: tok, Value: value, Stmt: stmt}
}

func (p *Parser) parseDefaultStatement() ast.Statement {
	tok := p.advance()
	if !p.consume(token.COLON) {
		return nil
	}
	stmt := p.parseStatement()
	if stmt == nil {
		return nil
	}
	return &ast.DefaultStatement{Token: tok, Stmt: stmt}
}

// parseCompoundStatement pushes a scope, parses block items until the
// closing brace, and pops the scope. Each block item is a declaration when
// its first token can begin declaration specifiers (typedef feedback
// included), a statement otherwise.
func (p *Parser) parseCompoundStatement() *ast.CompoundStatement {
	if !p.expect(token.LBRACE) {
		p.errorAt(p.cur(), diagnostics.ErrP001, "{", p.cur().Lexeme)
		return nil
	}
	cs := &ast.CompoundStatement{Token: p.advance()}

	p.scopes.Push()
	defer p.scopes.Pop()

	for !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
		var item ast.BlockItem
		if p.isDeclarationSpecifierStart(p.cur()) {
			if d := p.parseDeclaration(); d != nil {
				item = d
			}
		} else {
			if s := p.parseStatement(); s != nil {
				item, _ = s.(ast.BlockItem)
			}
		}
		if item == nil {
			p.synchronize()
			continue
		}
		cs.Items = append(cs.Items, item)
	}

	if !p.consume(token.RBRACE) {
		return nil
	}
	return cs
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	tok := p.cur()
	if p.match(token.SEMI) {
		return &ast.ExpressionStatement{Token: tok}
	}
	expr := p.parseExpression()
	if expr == nil {
		return nil
	}
	if !p.consume(token.SEMI) {
		return nil
	}
	return &ast.ExpressionStatement{Token: tok, Expr: expr}
}

func (p *Parser) parseIfStatement() ast.Statement {
	tok := p.advance()
	if !p.consume(token.LPAREN) {
		return nil
	}
	cond := p.parseExpression()
	if cond == nil {
		return nil
	}
	if !p.consume(token.RPAREN) {
		return nil
	}
	then := p.parseStatement()
	if then == nil {
		return nil
	}
	stmt := &ast.IfStatement{Token: tok, Cond: cond, Then: then}
	if p.match(token.ELSE) {
		if stmt.Else = p.parseStatement(); stmt.Else == nil {
			return nil
		}
	}
	return stmt
}

func (p *Parser) parseSwitchStatement() ast.Statement {
	tok := p.advance()
	if !p.consume(token.LPAREN) {
		return nil
	}
	cond := p.parseExpression()
	if cond == nil {
		return nil
	}
	if !p.consume(token.RPAREN) {
		return nil
	}
	body := p.parseStatement()
	if body == nil {
		return nil
	}
	return &ast.SwitchStatement{Token: tok, Cond: cond, Body: body}
}

func (p *Parser) parseWhileStatement() ast.Statement {
	tok := p.advance()
	if !p.consume(token.LPAREN) {
		return nil
	}
	cond := p.parseExpression()
	if cond == nil {
		return nil
	}
	if !p.consume(token.RPAREN) {
		return nil
	}
	body := p.parseStatement()
	if body == nil {
		return nil
	}
	return &ast.WhileStatement{Token: tok, Cond: cond, Body: body}
}

func (p *Parser) parseDoWhileStatement() ast.Statement {
	tok := p.advance()
	body := p.parseStatement()
	if body == nil {
		return nil
	}
	if !p.consume(token.WHILE) {
		return nil
	}
	if !p.consume(token.LPAREN) {
		return nil
	}
	cond := p.parseExpression()
	if cond == nil {
		return nil
	}
	if !p.consume(token.RPAREN) {
		return nil
	}
	if !p.consume(token.SEMI) {
		return nil
	}
	return &ast.DoWhileStatement{Token: tok, Body: body, Cond: cond}
}

// parseForStatement: the init clause is a declaration when its first token
// begins declaration specifiers, an expression statement otherwise.
func (p *Parser) parseForStatement() ast.Statement {
	tok := p.advance()
	if !p.consume(token.LPAREN) {
		return nil
	}
	stmt := &ast.ForStatement{Token: tok}

	switch {
	case p.match(token.SEMI):
		// No init clause.
	case p.isDeclarationSpecifierStart(p.cur()):
		if stmt.InitDecl = p.parseDeclaration(); stmt.InitDecl == nil {
			return nil
		}
	default:
		if stmt.Init = p.parseExpression(); stmt.Init == nil {
			return nil
		}
		if !p.consume(token.SEMI) {
			return nil
		}
	}

	if !p.curIs(token.SEMI) {
		if stmt.Cond = p.parseExpression(); stmt.Cond == nil {
			return nil
		}
	}
	if !p.consume(token.SEMI) {
		return nil
	}

	if !p.curIs(token.RPAREN) {
		if stmt.Post = p.parseExpression(); stmt.Post == nil {
			return nil
		}
	}
	if !p.consume(token.RPAREN) {
		return nil
	}

	if stmt.Body = p.parseStatement(); stmt.Body == nil {
		return nil
	}
	return stmt
}

func (p *Parser) parseGotoStatement() ast.Statement {
	tok := p.advance()
	if !p.curIs(token.IDENT) {
		p.errorAt(p.cur(), diagnostics.ErrP001, "identifier", p.cur().Lexeme)
		return nil
	}
	label := p.advance().Lexeme
	if !p.consume(token.SEMI) {
		return nil
	}
	return &ast.GotoStatement{Token: tok, Label: label}
}

func (p *Parser) parseReturnStatement() ast.Statement {
	tok := p.advance()
	stmt := &ast.ReturnStatement{Token: tok}
	if !p.curIs(token.SEMI) {
		if stmt.Value = p.parseExpression(); stmt.Value == nil {
			return nil
		}
	}
	if !p.consume(token.SEMI) {
		return nil
	}
	return stmt
}
