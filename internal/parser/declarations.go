package parser

import (
	"github.com/cklang/cparse/internal/ast"
	"github.com/cklang/cparse/internal/diagnostics"
	"github.com/cklang/cparse/internal/token"
)

// parseExternalDeclaration handles one top-level item. The strategy avoids
// backtracking: parse specifiers, parse a declarator, then branch on the
// next token ('{' selects a function definition; '=', ',' and ';' finish a
// declaration).
func (p *Parser) parseExternalDeclaration() ast.ExternalDeclaration {
	first := p.cur()
	specs := p.parseDeclarationSpecifiers(false)
	if specs == nil {
		p.errorAt(first, diagnostics.ErrP003, first.Lexeme)
		return nil
	}

	if p.match(token.SEMI) {
		return &ast.Declaration{Token: first, Specs: specs}
	}

	decl := p.parseDeclarator()
	if decl == nil {
		return nil
	}

	if p.curIs(token.LBRACE) {
		fd := p.parseFunctionDefinition(first, specs, decl)
		if fd == nil {
			return nil
		}
		return fd
	}

	d := p.finishDeclaration(first, specs, decl)
	if d == nil {
		return nil
	}
	return d
}

func (p *Parser) parseFunctionDefinition(first token.Token, specs *ast.DeclarationSpecifiers, decl *ast.Declarator) *ast.FunctionDefinition {
	fn, ok := decl.Direct.(*ast.FuncDeclarator)
	if !ok {
		p.errorAt(p.cur(), diagnostics.ErrP005)
		return nil
	}

	p.scopes.Push()
	if fn.Params != nil {
		for _, param := range fn.Params.Params {
			if name := param.Decl.Name(); name != "" {
				p.scopes.AddOrdinary(name)
			}
		}
	}
	for _, name := range fn.Idents {
		p.scopes.AddOrdinary(name)
	}

	body := p.parseCompoundStatement()
	p.scopes.Pop()
	if body == nil {
		return nil
	}

	if name := decl.Name(); name != "" {
		p.scopes.AddOrdinary(name)
	}

	return &ast.FunctionDefinition{Token: first, Specs: specs, Decl: decl, Body: body}
}

// parseDeclaration handles a declaration in block or for-init position.
func (p *Parser) parseDeclaration() *ast.Declaration {
	first := p.cur()
	specs := p.parseDeclarationSpecifiers(false)
	if specs == nil {
		p.errorAt(first, diagnostics.ErrP003, first.Lexeme)
		return nil
	}
	if p.match(token.SEMI) {
		return &ast.Declaration{Token: first, Specs: specs}
	}
	decl := p.parseDeclarator()
	if decl == nil {
		return nil
	}
	return p.finishDeclaration(first, specs, decl)
}

// finishDeclaration parses the rest of an init-declarator list whose first
// declarator has already been consumed, then binds the declared names.
// Typedef names become visible only past the terminating ';'.
func (p *Parser) finishDeclaration(first token.Token, specs *ast.DeclarationSpecifiers, decl *ast.Declarator) *ast.Declaration {
	d := &ast.Declaration{Token: first, Specs: specs}

	init := &ast.InitDeclarator{Decl: decl}
	if p.match(token.ASSIGN) {
		if init.Init = p.parseInitializer(); init.Init == nil {
			return nil
		}
	}
	d.Declarators = append(d.Declarators, init)

	for p.match(token.COMMA) {
		next := p.parseDeclarator()
		if next == nil {
			return nil
		}
		item := &ast.InitDeclarator{Decl: next}
		if p.match(token.ASSIGN) {
			if item.Init = p.parseInitializer(); item.Init == nil {
				return nil
			}
		}
		d.Declarators = append(d.Declarators, item)
	}

	if !p.consume(token.SEMI) {
		return nil
	}

	isTypedef := specs.HasTypedef()
	for _, item := range d.Declarators {
		name := item.Decl.Name()
		if name == "" {
			continue
		}
		if isTypedef {
			p.scopes.AddTypedef(name)
		} else {
			p.scopes.AddOrdinary(name)
		}
	}
	return d
}

// --- Declaration specifiers ---

// parseDeclarationSpecifiers accumulates specifiers until a token that
// cannot extend the list. An identifier extends the list as a typedef-name
// type specifier only while no type specifier has been seen and the name
// is bound as a typedef in scope; otherwise it belongs to the declarator
// that follows. Returns nil when no specifier at all was present.
//
// With sqlOnly set it parses a specifier-qualifier list instead (no
// storage classes, no function specifiers).
func (p *Parser) parseDeclarationSpecifiers(sqlOnly bool) *ast.DeclarationSpecifiers {
	specs := &ast.DeclarationSpecifiers{Token: p.cur()}
	seenAny := false
	seenType := false

	for {
		tok := p.cur()
		switch {
		case !sqlOnly && storageClassFirst[tok.Kind]:
			specs.Storage = append(specs.Storage, &ast.StorageClassSpecifier{Token: tok, Kind: tok.Kind})
			p.advance()

		case typeQualifierFirst[tok.Kind]:
			specs.Qualifiers = append(specs.Qualifiers, &ast.TypeQualifier{Token: tok, Kind: tok.Kind})
			p.advance()

		case !sqlOnly && tok.Kind == token.INLINE:
			specs.FuncSpecs = append(specs.FuncSpecs, &ast.FunctionSpecifier{Token: tok})
			p.advance()

		case primitiveTypeFirst[tok.Kind]:
			specs.Types = append(specs.Types, &ast.PrimitiveType{Token: tok, Kind: tok.Kind})
			seenType = true
			p.advance()

		case tok.Kind == token.STRUCT || tok.Kind == token.UNION:
			su := p.parseStructOrUnionSpecifier()
			if su == nil {
				return nil
			}
			specs.Types = append(specs.Types, su)
			seenType = true

		case tok.Kind == token.ENUM:
			e := p.parseEnumSpecifier()
			if e == nil {
				return nil
			}
			specs.Types = append(specs.Types, e)
			seenType = true

		case tok.Kind == token.IDENT && !seenType && p.scopes.IsTypedefInScope(tok.Lexeme):
			specs.Types = append(specs.Types, &ast.TypedefName{Token: tok, Name: tok.Lexeme})
			seenType = true
			p.advance()

		default:
			if !seenAny {
				return nil
			}
			return specs
		}
		seenAny = true
	}
}

// --- Struct/union/enum specifiers ---

func (p *Parser) parseStructOrUnionSpecifier() *ast.StructOrUnionSpecifier {
	kw := p.advance()
	spec := &ast.StructOrUnionSpecifier{Token: kw, IsUnion: kw.Kind == token.UNION}

	if p.curIs(token.IDENT) {
		spec.Tag = p.advance().Lexeme
	}

	if p.match(token.LBRACE) {
		spec.HasBody = true
		for !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
			sd := p.parseStructDeclaration()
			if sd == nil {
				p.synchronize()
				continue
			}
			spec.Declarations = append(spec.Declarations, sd)
		}
		if !p.consume(token.RBRACE) {
			return nil
		}
	}

	if spec.Tag == "" && !spec.HasBody {
		p.errorAt(p.cur(), diagnostics.ErrP001, "identifier or '{'", p.cur().Lexeme)
		return nil
	}
	return spec
}

func (p *Parser) parseStructDeclaration() *ast.StructDeclaration {
	first := p.cur()
	specs := p.parseDeclarationSpecifiers(true)
	if specs == nil {
		p.errorAt(first, diagnostics.ErrP003, first.Lexeme)
		return nil
	}

	sd := &ast.StructDeclaration{Token: first, Specs: specs}
	if !p.curIs(token.SEMI) {
		for {
			var decl *ast.Declarator
			if !p.curIs(token.COLON) {
				if decl = p.parseDeclarator(); decl == nil {
					return nil
				}
			}
			var width ast.Expression
			if p.match(token.COLON) {
				if width = p.parseConditionalExpression(); width == nil {
					return nil
				}
			}
			sd.Declarators = append(sd.Declarators, &ast.StructDeclarator{Decl: decl, Width: width})
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	if !p.consume(token.SEMI) {
		return nil
	}
	return sd
}

func (p *Parser) parseEnumSpecifier() *ast.EnumSpecifier {
	kw := p.advance()
	spec := &ast.EnumSpecifier{Token: kw}

	if p.curIs(token.IDENT) {
		spec.Tag = p.advance().Lexeme
	}

	if p.match(token.LBRACE) {
		spec.HasBody = true
		for p.curIs(token.IDENT) {
			nameTok := p.advance()
			e := &ast.Enumerator{Token: nameTok, Name: nameTok.Lexeme}
			if p.match(token.ASSIGN) {
				if e.Value = p.parseConditionalExpression(); e.Value == nil {
					return nil
				}
			}
			// Enumeration constants live in the ordinary namespace of
			// the current scope from their point of declaration.
			p.scopes.AddOrdinary(e.Name)
			spec.Enumerators = append(spec.Enumerators, e)
			if !p.match(token.COMMA) {
				break
			}
		}
		if len(spec.Enumerators) == 0 {
			p.errorAt(p.cur(), diagnostics.ErrP001, "identifier", p.cur().Lexeme)
			return nil
		}
		if !p.consume(token.RBRACE) {
			return nil
		}
	}

	if spec.Tag == "" && !spec.HasBody {
		p.errorAt(p.cur(), diagnostics.ErrP001, "identifier or '{'", p.cur().Lexeme)
		return nil
	}
	return spec
}

// --- Declarators ---

func (p *Parser) parseDeclarator() *ast.Declarator {
	first := p.cur()
	ptrs := p.parsePointers()
	direct := p.parseDirectDeclarator()
	if direct == nil {
		return nil
	}
	return &ast.Declarator{Token: first, Pointers: ptrs, Direct: direct}
}

func (p *Parser) parsePointers() []*ast.Pointer {
	var ptrs []*ast.Pointer
	for p.curIs(token.ASTERISK) {
		ptr := &ast.Pointer{Token: p.advance()}
		for typeQualifierFirst[p.cur().Kind] {
			tok := p.advance()
			ptr.Qualifiers = append(ptr.Qualifiers, &ast.TypeQualifier{Token: tok, Kind: tok.Kind})
		}
		ptrs = append(ptrs, ptr)
	}
	return ptrs
}

// parseDirectDeclarator parses a head (identifier or parenthesised
// declarator) followed by a chain of array/function suffixes.
func (p *Parser) parseDirectDeclarator() ast.DirectDeclarator {
	var head ast.DirectDeclarator
	switch p.cur().Kind {
	case token.IDENT:
		tok := p.advance()
		head = &ast.IdentDeclarator{Token: tok, Name: tok.Lexeme}
	case token.LPAREN:
		tok := p.advance()
		inner := p.parseDeclarator()
		if inner == nil {
			return nil
		}
		if !p.consume(token.RPAREN) {
			return nil
		}
		head = &ast.ParenDeclarator{Token: tok, Inner: inner}
	default:
		p.errorAt(p.cur(), diagnostics.ErrP001, "identifier", p.cur().Lexeme)
		return nil
	}
	return p.parseDeclaratorSuffixes(head)
}

func (p *Parser) parseDeclaratorSuffixes(inner ast.DirectDeclarator) ast.DirectDeclarator {
	for {
		switch p.cur().Kind {
		case token.LBRACKET:
			arr := p.parseArraySuffix(inner)
			if arr == nil {
				return nil
			}
			inner = arr
		case token.LPAREN:
			fn := p.parseFuncSuffix(inner)
			if fn == nil {
				return nil
			}
			inner = fn
		default:
			return inner
		}
	}
}

// parseArraySuffix parses `[ static? qualifiers static? (assign-expr|*)? ]`.
func (p *Parser) parseArraySuffix(inner ast.DirectDeclarator) *ast.ArrayDeclarator {
	arr := &ast.ArrayDeclarator{Token: p.advance(), Inner: inner}

	if p.match(token.STATIC) {
		arr.Static = true
	}
	for typeQualifierFirst[p.cur().Kind] {
		tok := p.advance()
		arr.Qualifiers = append(arr.Qualifiers, &ast.TypeQualifier{Token: tok, Kind: tok.Kind})
	}
	if p.match(token.STATIC) {
		arr.Static = true
	}

	if p.curIs(token.ASTERISK) && p.peekIs(1, token.RBRACKET) {
		arr.Star = true
		p.advance()
	} else if !p.curIs(token.RBRACKET) {
		if arr.Size = p.parseAssignmentExpression(); arr.Size == nil {
			return nil
		}
	}

	if !p.consume(token.RBRACKET) {
		return nil
	}
	return arr
}

// parseFuncSuffix parses `( parameter-type-list )`, `( identifier-list )`
// (K&R), or `( )`.
func (p *Parser) parseFuncSuffix(inner ast.DirectDeclarator) *ast.FuncDeclarator {
	fn := &ast.FuncDeclarator{Token: p.advance(), Inner: inner}

	switch {
	case p.curIs(token.RPAREN):
		// Unspecified parameters; nothing to record.
	case p.isDeclarationSpecifierStart(p.cur()):
		params := p.parseParameterTypeList()
		if params == nil {
			return nil
		}
		fn.Params = params
	case p.curIs(token.IDENT):
		for {
			if !p.curIs(token.IDENT) {
				p.errorAt(p.cur(), diagnostics.ErrP001, "identifier", p.cur().Lexeme)
				return nil
			}
			fn.Idents = append(fn.Idents, p.advance().Lexeme)
			if !p.match(token.COMMA) {
				break
			}
		}
	default:
		p.errorAt(p.cur(), diagnostics.ErrP001, ")", p.cur().Lexeme)
		return nil
	}

	if !p.consume(token.RPAREN) {
		return nil
	}
	return fn
}

// parseParameterTypeList parses the declarations of a function suffix. A
// fresh scope covers the parameter list so a parameter name shadows an
// outer typedef for the parameters after it; function definitions
// re-establish the bindings around the body.
func (p *Parser) parseParameterTypeList() *ast.ParameterTypeList {
	list := &ast.ParameterTypeList{Token: p.cur(), Params: []*ast.ParameterDeclaration{}}

	p.scopes.Push()
	defer p.scopes.Pop()

	for {
		param := p.parseParameterDeclaration()
		if param == nil {
			return nil
		}
		list.Params = append(list.Params, param)
		if name := param.Decl.Name(); name != "" {
			p.scopes.AddOrdinary(name)
		}
		if !p.match(token.COMMA) {
			break
		}
		if p.curIs(token.ELLIPSIS) {
			p.advance()
			list.Ellipsis = true
			break
		}
	}

	// `(void)` declares zero parameters.
	if len(list.Params) == 1 && !list.Ellipsis {
		param := list.Params[0]
		if param.Decl == nil && param.AbsDecl == nil &&
			len(param.Specs.Storage) == 0 && len(param.Specs.Qualifiers) == 0 &&
			len(param.Specs.FuncSpecs) == 0 && len(param.Specs.Types) == 1 {
			if prim, ok := param.Specs.Types[0].(*ast.PrimitiveType); ok && prim.Kind == token.VOID {
				list.Params = list.Params[:0]
			}
		}
	}

	return list
}

func (p *Parser) parseParameterDeclaration() *ast.ParameterDeclaration {
	first := p.cur()
	specs := p.parseDeclarationSpecifiers(false)
	if specs == nil {
		p.errorAt(first, diagnostics.ErrP003, first.Lexeme)
		return nil
	}

	param := &ast.ParameterDeclaration{Token: first, Specs: specs}
	switch p.scanParameterShape() {
	case paramNamed:
		if param.Decl = p.parseDeclarator(); param.Decl == nil {
			return nil
		}
	case paramAbstract:
		if param.AbsDecl = p.parseAbstractDeclarator(); param.AbsDecl == nil {
			return nil
		}
	case paramEmpty:
		// Bare specifiers.
	}
	return param
}

type paramShape int

const (
	paramEmpty paramShape = iota
	paramNamed
	paramAbstract
)

// scanParameterShape decides, with a bounded forward scan, whether the
// tokens after the parameter's specifiers form a concrete declarator (an
// identifier sits in declarator position) or an abstract one. The scan
// steps over pointer '*'s with their qualifiers and descends through
// nested '('s; an identifier decides concrete unless it is a typedef name
// seen inside parentheses, which can only open a parameter list on an
// anonymous head.
func (p *Parser) scanParameterShape() paramShape {
	i := 0
	sawPointer := false
	inParens := false
	for {
		switch k := p.peek(i).Kind; {
		case k == token.ASTERISK:
			sawPointer = true
			i++
		case typeQualifierFirst[k] && (sawPointer || inParens):
			i++
		case k == token.LPAREN:
			inParens = true
			i++
		case k == token.LBRACKET:
			return paramAbstract
		case k == token.IDENT:
			if inParens && p.scopes.IsTypedefInScope(p.peek(i).Lexeme) {
				return paramAbstract
			}
			return paramNamed
		default:
			if sawPointer || inParens {
				return paramAbstract
			}
			return paramEmpty
		}
	}
}

// parseAbstractDeclarator mirrors parseDeclarator with an optional head.
func (p *Parser) parseAbstractDeclarator() *ast.AbstractDeclarator {
	first := p.cur()
	ad := &ast.AbstractDeclarator{Token: first, Pointers: p.parsePointers()}

	var direct ast.DirectDeclarator
	if p.curIs(token.LPAREN) && !p.isDeclarationSpecifierStart(p.peek(1)) && !p.peekIs(1, token.RPAREN) {
		// A '(' whose inside cannot start a parameter list is a
		// parenthesised abstract declarator.
		tok := p.advance()
		inner := p.parseAbstractDeclarator()
		if inner == nil {
			return nil
		}
		if !p.consume(token.RPAREN) {
			return nil
		}
		direct = &ast.ParenAbstractDeclarator{Token: tok, Inner: inner}
	}

	for {
		if p.curIs(token.LBRACKET) {
			arr := p.parseArraySuffix(direct)
			if arr == nil {
				return nil
			}
			direct = arr
			continue
		}
		if p.curIs(token.LPAREN) {
			fn := p.parseFuncSuffix(direct)
			if fn == nil {
				return nil
			}
			direct = fn
			continue
		}
		break
	}

	ad.Direct = direct
	return ad
}

// parseTypeName parses a specifier-qualifier list with an optional
// abstract declarator (casts, sizeof, compound literals).
func (p *Parser) parseTypeName() *ast.TypeName {
	first := p.cur()
	specs := p.parseDeclarationSpecifiers(true)
	if specs == nil {
		p.errorAt(first, diagnostics.ErrP003, first.Lexeme)
		return nil
	}
	tn := &ast.TypeName{Token: first, Specs: specs}
	if p.curIs(token.ASTERISK) || p.curIs(token.LPAREN) || p.curIs(token.LBRACKET) {
		if tn.AbsDecl = p.parseAbstractDeclarator(); tn.AbsDecl == nil {
			return nil
		}
	}
	return tn
}

// --- Initializers ---

func (p *Parser) parseInitializer() ast.Initializer {
	if p.curIs(token.LBRACE) {
		list := p.parseInitializerList()
		if list == nil {
			return nil
		}
		return list
	}
	first := p.cur()
	expr := p.parseAssignmentExpression()
	if expr == nil {
		return nil
	}
	return &ast.InitializerExpr{Token: first, Expr: expr}
}

func (p *Parser) parseInitializerList() *ast.InitializerList {
	list := &ast.InitializerList{Token: p.advance()}

	for !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
		item := &ast.InitializerItem{}

		for {
			if p.curIs(token.LBRACKET) {
				tok := p.advance()
				idx := p.parseConditionalExpression()
				if idx == nil {
					return nil
				}
				if !p.consume(token.RBRACKET) {
					return nil
				}
				item.Designators = append(item.Designators, &ast.IndexDesignator{Token: tok, Index: idx})
				continue
			}
			if p.curIs(token.DOT) {
				tok := p.advance()
				if !p.curIs(token.IDENT) {
					p.errorAt(p.cur(), diagnostics.ErrP001, "identifier", p.cur().Lexeme)
					return nil
				}
				item.Designators = append(item.Designators, &ast.MemberDesignator{Token: tok, Name: p.advance().Lexeme})
				continue
			}
			break
		}
		if len(item.Designators) > 0 && !p.consume(token.ASSIGN) {
			return nil
		}

		if item.Init = p.parseInitializer(); item.Init == nil {
			return nil
		}
		list.Items = append(list.Items, item)

		if !p.match(token.COMMA) {
			break
		}
	}

	if !p.consume(token.RBRACE) {
		return nil
	}
	return list
}
