package parser

import (
	"github.com/cklang/cparse/internal/ast"
	"github.com/cklang/cparse/internal/diagnostics"
	"github.com/cklang/cparse/internal/token"
)

// parseExpression parses the comma level: a list of assignment
// expressions.
func (p *Parser) parseExpression() ast.Expression {
	first := p.parseAssignmentExpression()
	if first == nil {
		return nil
	}
	if !p.curIs(token.COMMA) {
		return first
	}

	comma := &ast.CommaExpression{Token: p.cur(), Exprs: []ast.Expression{first}}
	for p.match(token.COMMA) {
		next := p.parseAssignmentExpression()
		if next == nil {
			return nil
		}
		comma.Exprs = append(comma.Exprs, next)
	}
	return comma
}

// parseAssignmentExpression parses a conditional expression, then, while
// the next token is an assignment operator, consumes operator plus another
// conditional expression; the collected parts fold right-associatively.
// The unary-on-LHS restriction belongs to semantic analysis.
func (p *Parser) parseAssignmentExpression() ast.Expression {
	left := p.parseConditionalExpression()
	if left == nil {
		return nil
	}

	type part struct {
		op   token.Token
		expr ast.Expression
	}
	var parts []part
	for assignmentOperators[p.cur().Kind] {
		op := p.advance()
		rhs := p.parseConditionalExpression()
		if rhs == nil {
			return nil
		}
		parts = append(parts, part{op: op, expr: rhs})
	}
	if len(parts) == 0 {
		return left
	}

	result := parts[len(parts)-1].expr
	for i := len(parts) - 1; i >= 1; i-- {
		result = &ast.AssignExpression{
			Token:    parts[i].op,
			Left:     parts[i-1].expr,
			Operator: parts[i].op.Lexeme,
			Right:    result,
		}
	}
	return &ast.AssignExpression{
		Token:    parts[0].op,
		Left:     left,
		Operator: parts[0].op.Lexeme,
		Right:    result,
	}
}

func (p *Parser) parseConditionalExpression() ast.Expression {
	cond := p.parseBinaryExpression(1)
	if cond == nil {
		return nil
	}
	if !p.curIs(token.QUESTION) {
		return cond
	}

	tok := p.advance()
	then := p.parseExpression()
	if then == nil {
		return nil
	}
	if !p.consume(token.COLON) {
		return nil
	}
	els := p.parseConditionalExpression()
	if els == nil {
		return nil
	}
	return &ast.ConditionalExpression{Token: tok, Cond: cond, Then: then, Else: els}
}

// parseBinaryExpression climbs the precedence table from logical-or down
// to multiplicative. All levels in the table are left-associative; the
// recursion with prec+1 keeps equal-precedence operators folding left.
func (p *Parser) parseBinaryExpression(minPrec int) ast.Expression {
	left := p.parseCastExpression()
	if left == nil {
		return nil
	}
	for {
		prec, ok := binaryPrecedences[p.cur().Kind]
		if !ok || prec < minPrec {
			return left
		}
		op := p.advance()
		right := p.parseBinaryExpression(prec + 1)
		if right == nil {
			return nil
		}
		left = &ast.InfixExpression{Token: op, Left: left, Operator: op.Lexeme, Right: right}
	}
}

// parseCastExpression: a '(' followed by a type-name start begins a cast
// or a compound literal; a compound literal is recognised by '{' after the
// closing ')'. Any other '(' falls through to the parenthesised-expression
// case in parsePrimaryExpression.
func (p *Parser) parseCastExpression() ast.Expression {
	if !p.curIs(token.LPAREN) || !p.isTypeNameStart(p.peek(1)) {
		return p.parseUnaryExpression()
	}

	tok := p.advance()
	tn := p.parseTypeName()
	if tn == nil {
		return nil
	}
	if !p.consume(token.RPAREN) {
		return nil
	}

	if p.curIs(token.LBRACE) {
		init := p.parseInitializerList()
		if init == nil {
			return nil
		}
		lit := &ast.CompoundLiteral{Token: tok, Type: tn, Init: init}
		return p.parsePostfixSuffixes(lit)
	}

	operand := p.parseCastExpression()
	if operand == nil {
		return nil
	}
	return &ast.CastExpression{Token: tok, Type: tn, Operand: operand}
}

func (p *Parser) parseUnaryExpression() ast.Expression {
	tok := p.cur()
	switch tok.Kind {
	case token.INCREMENT, token.DECREMENT:
		p.advance()
		operand := p.parseUnaryExpression()
		if operand == nil {
			return nil
		}
		return &ast.PrefixExpression{Token: tok, Operator: tok.Lexeme, Right: operand}

	case token.AMPERSAND, token.ASTERISK, token.PLUS, token.MINUS, token.TILDE, token.BANG:
		p.advance()
		operand := p.parseCastExpression()
		if operand == nil {
			return nil
		}
		return &ast.PrefixExpression{Token: tok, Operator: tok.Lexeme, Right: operand}

	case token.SIZEOF:
		p.advance()
		if p.curIs(token.LPAREN) && p.isTypeNameStart(p.peek(1)) {
			p.advance()
			tn := p.parseTypeName()
			if tn == nil {
				return nil
			}
			if !p.consume(token.RPAREN) {
				return nil
			}
			return &ast.SizeofExpression{Token: tok, Type: tn}
		}
		operand := p.parseUnaryExpression()
		if operand == nil {
			return nil
		}
		return &ast.SizeofExpression{Token: tok, Operand: operand}

	default:
		return p.parsePostfixExpression()
	}
}

func (p *Parser) parsePostfixExpression() ast.Expression {
	primary := p.parsePrimaryExpression()
	if primary == nil {
		return nil
	}
	return p.parsePostfixSuffixes(primary)
}

// parsePostfixSuffixes chains subscripts, calls, member accesses, and
// postfix increment/decrement onto an already parsed operand.
func (p *Parser) parsePostfixSuffixes(left ast.Expression) ast.Expression {
	for {
		tok := p.cur()
		switch tok.Kind {
		case token.LBRACKET:
			p.advance()
			index := p.parseExpression()
			if index == nil {
				return nil
			}
			if !p.consume(token.RBRACKET) {
				return nil
			}
			left = &ast.IndexExpression{Token: tok, Left: left, Index: index}

		case token.LPAREN:
			p.advance()
			call := &ast.CallExpression{Token: tok, Function: left}
			if !p.curIs(token.RPAREN) {
				for {
					arg := p.parseAssignmentExpression()
					if arg == nil {
						return nil
					}
					call.Arguments = append(call.Arguments, arg)
					if !p.match(token.COMMA) {
						break
					}
				}
			}
			if !p.consume(token.RPAREN) {
				return nil
			}
			left = call

		case token.DOT, token.ARROW:
			p.advance()
			if !p.curIs(token.IDENT) {
				p.errorAt(p.cur(), diagnostics.ErrP001, "identifier", p.cur().Lexeme)
				return nil
			}
			left = &ast.MemberExpression{
				Token:  tok,
				Left:   left,
				Member: p.advance().Lexeme,
				Arrow:  tok.Kind == token.ARROW,
			}

		case token.INCREMENT, token.DECREMENT:
			p.advance()
			left = &ast.PostfixExpression{Token: tok, Operator: tok.Lexeme, Left: left}

		default:
			return left
		}
	}
}

func (p *Parser) parsePrimaryExpression() ast.Expression {
	tok := p.cur()
	switch tok.Kind {
	case token.IDENT:
		p.advance()
		return &ast.Identifier{Token: tok, Value: tok.Lexeme}

	case token.NUMBER:
		p.advance()
		switch v := tok.Literal.(type) {
		case float64:
			return &ast.FloatLiteral{Token: tok, Value: v}
		case uint64:
			return &ast.IntegerLiteral{Token: tok, Value: int64(v)}
		case int64:
			return &ast.IntegerLiteral{Token: tok, Value: v}
		default:
			return &ast.IntegerLiteral{Token: tok}
		}

	case token.CHARLIT:
		p.advance()
		value, _ := tok.Literal.(int64)
		return &ast.CharLiteral{Token: tok, Value: value}

	case token.STRING:
		p.advance()
		value, _ := tok.Literal.(string)
		return &ast.StringLiteral{Token: tok, Value: value}

	case token.LPAREN:
		p.advance()
		expr := p.parseExpression()
		if expr == nil {
			return nil
		}
		if !p.consume(token.RPAREN) {
			return nil
		}
		return expr

	default:
		if tok.Kind == token.ILLEGAL {
			// The lexer should have rejected this byte sequence.
			p.errorAt(tok, diagnostics.ErrP006, tok.Lexeme)
		} else {
			p.errorAt(tok, diagnostics.ErrP004, tok.Lexeme)
		}
		return nil
	}
}
