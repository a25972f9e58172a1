package ast

import (
	"github.com/cklang/cparse/internal/token"
)

// TokenProvider is an interface for any AST node that can provide its
// primary token. This is useful for error reporting.
type TokenProvider interface {
	GetToken() token.Token
}

// Node is the base interface for all AST nodes.
type Node interface {
	TokenLiteral() string
}

// ExternalDeclaration is a top-level item of a translation unit: a function
// definition or a declaration.
type ExternalDeclaration interface {
	Node
	externalDeclarationNode()
	GetToken() token.Token
}

// Statement is a Node that represents a statement.
type Statement interface {
	Node
	statementNode()
	GetToken() token.Token
}

// Expression is a Node that represents an expression.
type Expression interface {
	Node
	expressionNode()
	GetToken() token.Token
}

// BlockItem is an element of a compound statement: a declaration or a
// statement.
type BlockItem interface {
	Node
	blockItemNode()
	GetToken() token.Token
}

// TranslationUnit is the root node of every AST our parser produces.
type TranslationUnit struct {
	Decls []ExternalDeclaration
}

func (tu *TranslationUnit) TokenLiteral() string {
	if len(tu.Decls) > 0 {
		return tu.Decls[0].TokenLiteral()
	}
	return ""
}

// --- Declarations ---

// Declaration represents `declaration-specifiers init-declarator-list ;`.
// An empty declarator list is a tag-only struct/union/enum declaration.
type Declaration struct {
	Token       token.Token // first specifier token
	Specs       *DeclarationSpecifiers
	Declarators []*InitDeclarator
}

func (d *Declaration) externalDeclarationNode() {}
func (d *Declaration) blockItemNode()           {}
func (d *Declaration) TokenLiteral() string     { return d.Token.Lexeme }
func (d *Declaration) GetToken() token.Token    { return d.Token }

// InitDeclarator is a declarator with an optional initializer.
type InitDeclarator struct {
	Decl *Declarator
	Init Initializer // nil if absent
}

// FunctionDefinition represents a function definition at file scope.
type FunctionDefinition struct {
	Token token.Token // first specifier token
	Specs *DeclarationSpecifiers
	Decl  *Declarator
	Body  *CompoundStatement
}

func (fd *FunctionDefinition) externalDeclarationNode() {}
func (fd *FunctionDefinition) TokenLiteral() string     { return fd.Token.Lexeme }
func (fd *FunctionDefinition) GetToken() token.Token    { return fd.Token }

// DeclarationSpecifiers collects storage classes, qualifiers, function
// specifiers, and type specifiers. Each item keeps its own token, so
// source order is recoverable by offset for diagnostics.
type DeclarationSpecifiers struct {
	Token      token.Token // first specifier token
	Storage    []*StorageClassSpecifier
	Qualifiers []*TypeQualifier
	FuncSpecs  []*FunctionSpecifier
	Types      []TypeSpecifier
}

func (ds *DeclarationSpecifiers) TokenLiteral() string  { return ds.Token.Lexeme }
func (ds *DeclarationSpecifiers) GetToken() token.Token { return ds.Token }

// HasTypedef reports whether the typedef storage class is present.
func (ds *DeclarationSpecifiers) HasTypedef() bool {
	for _, sc := range ds.Storage {
		if sc.Kind == token.TYPEDEF {
			return true
		}
	}
	return false
}

// StorageClassSpecifier is one of typedef, extern, static, auto, register.
type StorageClassSpecifier struct {
	Token token.Token
	Kind  token.Kind
}

func (s *StorageClassSpecifier) TokenLiteral() string  { return s.Token.Lexeme }
func (s *StorageClassSpecifier) GetToken() token.Token { return s.Token }

// TypeQualifier is one of const, restrict, volatile.
type TypeQualifier struct {
	Token token.Token
	Kind  token.Kind
}

func (q *TypeQualifier) TokenLiteral() string  { return q.Token.Lexeme }
func (q *TypeQualifier) GetToken() token.Token { return q.Token }

// FunctionSpecifier is inline.
type FunctionSpecifier struct {
	Token token.Token
}

func (f *FunctionSpecifier) TokenLiteral() string  { return f.Token.Lexeme }
func (f *FunctionSpecifier) GetToken() token.Token { return f.Token }

// TypeSpecifier is a primitive type keyword, a typedef name, or a
// struct/union/enum specifier.
type TypeSpecifier interface {
	Node
	typeSpecifierNode()
	GetToken() token.Token
}

// PrimitiveType is a built-in type specifier keyword.
type PrimitiveType struct {
	Token token.Token
	Kind  token.Kind
}

func (p *PrimitiveType) typeSpecifierNode()    {}
func (p *PrimitiveType) TokenLiteral() string  { return p.Token.Lexeme }
func (p *PrimitiveType) GetToken() token.Token { return p.Token }

// TypedefName is an identifier bound by a prior typedef in scope.
type TypedefName struct {
	Token token.Token
	Name  string
}

func (tn *TypedefName) typeSpecifierNode()    {}
func (tn *TypedefName) TokenLiteral() string  { return tn.Token.Lexeme }
func (tn *TypedefName) GetToken() token.Token { return tn.Token }

// StructOrUnionSpecifier covers `struct S`, `union U { ... }`, etc.
// At least one of Tag and a body is present.
type StructOrUnionSpecifier struct {
	Token        token.Token // the struct/union keyword
	IsUnion      bool
	Tag          string // "" if untagged
	HasBody      bool
	Declarations []*StructDeclaration
}

func (s *StructOrUnionSpecifier) typeSpecifierNode()    {}
func (s *StructOrUnionSpecifier) TokenLiteral() string  { return s.Token.Lexeme }
func (s *StructOrUnionSpecifier) GetToken() token.Token { return s.Token }

// StructDeclaration is one member line of a struct/union body.
type StructDeclaration struct {
	Token       token.Token
	Specs       *DeclarationSpecifiers // specifier-qualifier list
	Declarators []*StructDeclarator
}

func (sd *StructDeclaration) TokenLiteral() string  { return sd.Token.Lexeme }
func (sd *StructDeclaration) GetToken() token.Token { return sd.Token }

// StructDeclarator is a member declarator with an optional bit-field
// width. Decl is nil for an anonymous bit field.
type StructDeclarator struct {
	Decl  *Declarator
	Width Expression // nil if not a bit field
}

// EnumSpecifier covers `enum E`, `enum { A, B = 2 }`, etc.
type EnumSpecifier struct {
	Token       token.Token // the enum keyword
	Tag         string      // "" if untagged
	HasBody     bool
	Enumerators []*Enumerator
}

func (e *EnumSpecifier) typeSpecifierNode()    {}
func (e *EnumSpecifier) TokenLiteral() string  { return e.Token.Lexeme }
func (e *EnumSpecifier) GetToken() token.Token { return e.Token }

// Enumerator is a named enumeration constant with an optional value.
type Enumerator struct {
	Token token.Token
	Name  string
	Value Expression // nil if absent
}

func (e *Enumerator) TokenLiteral() string  { return e.Token.Lexeme }
func (e *Enumerator) GetToken() token.Token { return e.Token }

// --- Declarators ---

// Declarator is zero or more pointers around a direct declarator.
type Declarator struct {
	Token    token.Token
	Pointers []*Pointer
	Direct   DirectDeclarator
}

func (d *Declarator) TokenLiteral() string  { return d.Token.Lexeme }
func (d *Declarator) GetToken() token.Token { return d.Token }

// Name returns the declared identifier, or "" for abstract shapes.
func (d *Declarator) Name() string {
	if d == nil || d.Direct == nil {
		return ""
	}
	return d.Direct.DeclaredName()
}

// Pointer is one `*` with its qualifier list.
type Pointer struct {
	Token      token.Token
	Qualifiers []*TypeQualifier
}

func (p *Pointer) TokenLiteral() string  { return p.Token.Lexeme }
func (p *Pointer) GetToken() token.Token { return p.Token }

// DirectDeclarator is the head of a declarator (identifier or
// parenthesised declarator; absent in abstract declarators) plus a chain
// of array/function suffixes.
type DirectDeclarator interface {
	Node
	directDeclaratorNode()
	GetToken() token.Token
	// DeclaredName returns the identifier at the center of the
	// declarator, or "" if there is none.
	DeclaredName() string
}

// IdentDeclarator is an identifier head.
type IdentDeclarator struct {
	Token token.Token
	Name  string
}

func (i *IdentDeclarator) directDeclaratorNode() {}
func (i *IdentDeclarator) TokenLiteral() string  { return i.Token.Lexeme }
func (i *IdentDeclarator) GetToken() token.Token { return i.Token }
func (i *IdentDeclarator) DeclaredName() string  { return i.Name }

// ParenDeclarator is a parenthesised declarator head.
type ParenDeclarator struct {
	Token token.Token // the '(' token
	Inner *Declarator
}

func (p *ParenDeclarator) directDeclaratorNode() {}
func (p *ParenDeclarator) TokenLiteral() string  { return p.Token.Lexeme }
func (p *ParenDeclarator) GetToken() token.Token { return p.Token }
func (p *ParenDeclarator) DeclaredName() string  { return p.Inner.Name() }

// ParenAbstractDeclarator is a parenthesised abstract declarator head.
type ParenAbstractDeclarator struct {
	Token token.Token // the '(' token
	Inner *AbstractDeclarator
}

func (p *ParenAbstractDeclarator) directDeclaratorNode() {}
func (p *ParenAbstractDeclarator) TokenLiteral() string  { return p.Token.Lexeme }
func (p *ParenAbstractDeclarator) GetToken() token.Token { return p.Token }
func (p *ParenAbstractDeclarator) DeclaredName() string  { return "" }

// ArrayDeclarator is an `inner [ ... ]` suffix. Inner is nil when the
// suffix applies to an empty abstract head.
type ArrayDeclarator struct {
	Token      token.Token // the '[' token
	Inner      DirectDeclarator
	Size       Expression // nil if absent
	Qualifiers []*TypeQualifier
	Static     bool
	Star       bool // `[*]` VLA of unspecified size
}

func (a *ArrayDeclarator) directDeclaratorNode() {}
func (a *ArrayDeclarator) TokenLiteral() string  { return a.Token.Lexeme }
func (a *ArrayDeclarator) GetToken() token.Token { return a.Token }
func (a *ArrayDeclarator) DeclaredName() string {
	if a.Inner == nil {
		return ""
	}
	return a.Inner.DeclaredName()
}

// FuncDeclarator is an `inner ( ... )` suffix. Either Params holds a
// parameter type list, or Idents holds a K&R identifier list (possibly
// empty for `()`). Inner is nil when the suffix applies to an empty
// abstract head.
type FuncDeclarator struct {
	Token  token.Token // the '(' token
	Inner  DirectDeclarator
	Params *ParameterTypeList // nil for identifier-list form
	Idents []string           // K&R identifier list
}

func (f *FuncDeclarator) directDeclaratorNode() {}
func (f *FuncDeclarator) TokenLiteral() string  { return f.Token.Lexeme }
func (f *FuncDeclarator) GetToken() token.Token { return f.Token }
func (f *FuncDeclarator) DeclaredName() string {
	if f.Inner == nil {
		return ""
	}
	return f.Inner.DeclaredName()
}

// ParameterTypeList is the parameter declarations of a function suffix
// plus the trailing ellipsis flag.
type ParameterTypeList struct {
	Token    token.Token
	Params   []*ParameterDeclaration
	Ellipsis bool
}

func (pl *ParameterTypeList) TokenLiteral() string  { return pl.Token.Lexeme }
func (pl *ParameterTypeList) GetToken() token.Token { return pl.Token }

// ParameterDeclaration is specifiers plus either a concrete declarator, an
// abstract declarator, or neither.
type ParameterDeclaration struct {
	Token   token.Token
	Specs   *DeclarationSpecifiers
	Decl    *Declarator         // non-nil for a named parameter
	AbsDecl *AbstractDeclarator // non-nil for an unnamed parameter shape
}

func (pd *ParameterDeclaration) TokenLiteral() string  { return pd.Token.Lexeme }
func (pd *ParameterDeclaration) GetToken() token.Token { return pd.Token }

// AbstractDeclarator mirrors Declarator without requiring a name.
type AbstractDeclarator struct {
	Token    token.Token
	Pointers []*Pointer
	Direct   DirectDeclarator // nil for a pointers-only or empty shape
}

func (ad *AbstractDeclarator) TokenLiteral() string  { return ad.Token.Lexeme }
func (ad *AbstractDeclarator) GetToken() token.Token { return ad.Token }

// TypeName is the `( type-name )` production: specifier-qualifier list
// plus an optional abstract declarator. Used by casts, sizeof, and
// compound literals.
type TypeName struct {
	Token   token.Token
	Specs   *DeclarationSpecifiers
	AbsDecl *AbstractDeclarator // nil if absent
}

func (tn *TypeName) TokenLiteral() string  { return tn.Token.Lexeme }
func (tn *TypeName) GetToken() token.Token { return tn.Token }

// --- Statements ---

// LabeledStatement is `label : statement`.
type LabeledStatement struct {
	Token token.Token // the label identifier
	Label string
	Stmt  Statement
}

func (ls *LabeledStatement) statementNode()        {}
func (ls *LabeledStatement) blockItemNode()        {}
func (ls *LabeledStatement) TokenLiteral() string  { return ls.Token.Lexeme }
func (ls *LabeledStatement) GetToken() token.Token { return ls.Token }

// CaseStatement is `case constant-expression : statement`.
type CaseStatement struct {
	Token token.Token // the 'case' token
	Value Expression
	Stmt  Statement
}

func (cs *CaseStatement) statementNode()        {}
func (cs *CaseStatement) blockItemNode()        {}
func (cs *CaseStatement) TokenLiteral() string  { return cs.Token.Lexeme }
func (cs *CaseStatement) GetToken() token.Token { return cs.Token }

// DefaultStatement is `default : statement`.
type DefaultStatement struct {
	Token token.Token // the 'default' token
	Stmt  Statement
}

func (ds *DefaultStatement) statementNode()        {}
func (ds *DefaultStatement) blockItemNode()        {}
func (ds *DefaultStatement) TokenLiteral() string  { return ds.Token.Lexeme }
func (ds *DefaultStatement) GetToken() token.Token { return ds.Token }

// CompoundStatement is `{ block-item* }`; it opens a scope.
type CompoundStatement struct {
	Token token.Token // the '{' token
	Items []BlockItem
}

func (cs *CompoundStatement) statementNode()        {}
func (cs *CompoundStatement) blockItemNode()        {}
func (cs *CompoundStatement) TokenLiteral() string  { return cs.Token.Lexeme }
func (cs *CompoundStatement) GetToken() token.Token { return cs.Token }

// ExpressionStatement is `expression? ;`.
type ExpressionStatement struct {
	Token token.Token
	Expr  Expression // nil for the empty statement
}

func (es *ExpressionStatement) statementNode()        {}
func (es *ExpressionStatement) blockItemNode()        {}
func (es *ExpressionStatement) TokenLiteral() string  { return es.Token.Lexeme }
func (es *ExpressionStatement) GetToken() token.Token { return es.Token }

// IfStatement is `if ( expr ) stmt (else stmt)?`.
type IfStatement struct {
	Token token.Token // the 'if' token
	Cond  Expression
	Then  Statement
	Else  Statement // nil if absent
}

func (is *IfStatement) statementNode()        {}
func (is *IfStatement) blockItemNode()        {}
func (is *IfStatement) TokenLiteral() string  { return is.Token.Lexeme }
func (is *IfStatement) GetToken() token.Token { return is.Token }

// SwitchStatement is `switch ( expr ) stmt`.
type SwitchStatement struct {
	Token token.Token // the 'switch' token
	Cond  Expression
	Body  Statement
}

func (ss *SwitchStatement) statementNode()        {}
func (ss *SwitchStatement) blockItemNode()        {}
func (ss *SwitchStatement) TokenLiteral() string  { return ss.Token.Lexeme }
func (ss *SwitchStatement) GetToken() token.Token { return ss.Token }

// WhileStatement is `while ( expr ) stmt`.
type WhileStatement struct {
	Token token.Token // the 'while' token
	Cond  Expression
	Body  Statement
}

func (ws *WhileStatement) statementNode()        {}
func (ws *WhileStatement) blockItemNode()        {}
func (ws *WhileStatement) TokenLiteral() string  { return ws.Token.Lexeme }
func (ws *WhileStatement) GetToken() token.Token { return ws.Token }

// DoWhileStatement is `do stmt while ( expr ) ;`.
type DoWhileStatement struct {
	Token token.Token // the 'do' token
	Body  Statement
	Cond  Expression
}

func (dw *DoWhileStatement) statementNode()        {}
func (dw *DoWhileStatement) blockItemNode()        {}
func (dw *DoWhileStatement) TokenLiteral() string  { return dw.Token.Lexeme }
func (dw *DoWhileStatement) GetToken() token.Token { return dw.Token }

// ForStatement is `for ( init ; cond ; post ) stmt`. The init clause is
// either a declaration (InitDecl) or an optional expression (Init).
type ForStatement struct {
	Token    token.Token // the 'for' token
	InitDecl *Declaration
	Init     Expression // nil if absent or InitDecl used
	Cond     Expression // nil if absent
	Post     Expression // nil if absent
	Body     Statement
}

func (fs *ForStatement) statementNode()        {}
func (fs *ForStatement) blockItemNode()        {}
func (fs *ForStatement) TokenLiteral() string  { return fs.Token.Lexeme }
func (fs *ForStatement) GetToken() token.Token { return fs.Token }

// GotoStatement is `goto label ;`. The target is recorded verbatim.
type GotoStatement struct {
	Token token.Token // the 'goto' token
	Label string
}

func (gs *GotoStatement) statementNode()        {}
func (gs *GotoStatement) blockItemNode()        {}
func (gs *GotoStatement) TokenLiteral() string  { return gs.Token.Lexeme }
func (gs *GotoStatement) GetToken() token.Token { return gs.Token }

// ContinueStatement is `continue ;`.
type ContinueStatement struct {
	Token token.Token
}

func (cs *ContinueStatement) statementNode()        {}
func (cs *ContinueStatement) blockItemNode()        {}
func (cs *ContinueStatement) TokenLiteral() string  { return cs.Token.Lexeme }
func (cs *ContinueStatement) GetToken() token.Token { return cs.Token }

// BreakStatement is `break ;`.
type BreakStatement struct {
	Token token.Token
}

func (bs *BreakStatement) statementNode()        {}
func (bs *BreakStatement) blockItemNode()        {}
func (bs *BreakStatement) TokenLiteral() string  { return bs.Token.Lexeme }
func (bs *BreakStatement) GetToken() token.Token { return bs.Token }

// ReturnStatement is `return expr? ;`.
type ReturnStatement struct {
	Token token.Token // the 'return' token
	Value Expression  // nil if absent
}

func (rs *ReturnStatement) statementNode()        {}
func (rs *ReturnStatement) blockItemNode()        {}
func (rs *ReturnStatement) TokenLiteral() string  { return rs.Token.Lexeme }
func (rs *ReturnStatement) GetToken() token.Token { return rs.Token }

// --- Expressions ---

// Identifier represents an identifier in expression position.
type Identifier struct {
	Token token.Token
	Value string
}

func (i *Identifier) expressionNode()       {}
func (i *Identifier) TokenLiteral() string  { return i.Token.Lexeme }
func (i *Identifier) GetToken() token.Token { return i.Token }

// IntegerLiteral represents an integer constant. The raw decoded value is
// in Token.Literal; Value is its int64 bit pattern.
type IntegerLiteral struct {
	Token token.Token
	Value int64
}

func (il *IntegerLiteral) expressionNode()       {}
func (il *IntegerLiteral) TokenLiteral() string  { return il.Token.Lexeme }
func (il *IntegerLiteral) GetToken() token.Token { return il.Token }

// FloatLiteral represents a floating constant.
type FloatLiteral struct {
	Token token.Token
	Value float64
}

func (fl *FloatLiteral) expressionNode()       {}
func (fl *FloatLiteral) TokenLiteral() string  { return fl.Token.Lexeme }
func (fl *FloatLiteral) GetToken() token.Token { return fl.Token }

// CharLiteral represents a character constant.
type CharLiteral struct {
	Token token.Token
	Value int64
}

func (cl *CharLiteral) expressionNode()       {}
func (cl *CharLiteral) TokenLiteral() string  { return cl.Token.Lexeme }
func (cl *CharLiteral) GetToken() token.Token { return cl.Token }

// StringLiteral represents a string literal, escape-decoded.
type StringLiteral struct {
	Token token.Token
	Value string
}

func (sl *StringLiteral) expressionNode()       {}
func (sl *StringLiteral) TokenLiteral() string  { return sl.Token.Lexeme }
func (sl *StringLiteral) GetToken() token.Token { return sl.Token }

// CommaExpression is `assign-expr (, assign-expr)+`.
type CommaExpression struct {
	Token token.Token // the first ',' token
	Exprs []Expression
}

func (ce *CommaExpression) expressionNode()       {}
func (ce *CommaExpression) TokenLiteral() string  { return ce.Token.Lexeme }
func (ce *CommaExpression) GetToken() token.Token { return ce.Token }

// AssignExpression is `cond-expr op assign-expr` for any assignment
// operator; right-associative.
type AssignExpression struct {
	Token    token.Token // the operator token
	Left     Expression
	Operator string
	Right    Expression
}

func (ae *AssignExpression) expressionNode()       {}
func (ae *AssignExpression) TokenLiteral() string  { return ae.Token.Lexeme }
func (ae *AssignExpression) GetToken() token.Token { return ae.Token }

// ConditionalExpression is `cond ? then : else`.
type ConditionalExpression struct {
	Token token.Token // the '?' token
	Cond  Expression
	Then  Expression
	Else  Expression
}

func (ce *ConditionalExpression) expressionNode()       {}
func (ce *ConditionalExpression) TokenLiteral() string  { return ce.Token.Lexeme }
func (ce *ConditionalExpression) GetToken() token.Token { return ce.Token }

// InfixExpression represents a binary operation, e.g. a + b.
type InfixExpression struct {
	Token    token.Token // the operator token
	Left     Expression
	Operator string
	Right    Expression
}

func (ie *InfixExpression) expressionNode()       {}
func (ie *InfixExpression) TokenLiteral() string  { return ie.Token.Lexeme }
func (ie *InfixExpression) GetToken() token.Token { return ie.Token }

// CastExpression is `( type-name ) operand`.
type CastExpression struct {
	Token   token.Token // the '(' token
	Type    *TypeName
	Operand Expression
}

func (ce *CastExpression) expressionNode()       {}
func (ce *CastExpression) TokenLiteral() string  { return ce.Token.Lexeme }
func (ce *CastExpression) GetToken() token.Token { return ce.Token }

// PrefixExpression represents a unary prefix operation: ++ -- & * + - ~ !.
type PrefixExpression struct {
	Token    token.Token // the operator token
	Operator string
	Right    Expression
}

func (pe *PrefixExpression) expressionNode()       {}
func (pe *PrefixExpression) TokenLiteral() string  { return pe.Token.Lexeme }
func (pe *PrefixExpression) GetToken() token.Token { return pe.Token }

// SizeofExpression is `sizeof unary-expr` or `sizeof ( type-name )`.
// Exactly one of Operand and Type is set.
type SizeofExpression struct {
	Token   token.Token // the 'sizeof' token
	Operand Expression
	Type    *TypeName
}

func (se *SizeofExpression) expressionNode()       {}
func (se *SizeofExpression) TokenLiteral() string  { return se.Token.Lexeme }
func (se *SizeofExpression) GetToken() token.Token { return se.Token }

// IndexExpression represents subscripting, e.g. arr[i].
type IndexExpression struct {
	Token token.Token // the '[' token
	Left  Expression
	Index Expression
}

func (ie *IndexExpression) expressionNode()       {}
func (ie *IndexExpression) TokenLiteral() string  { return ie.Token.Lexeme }
func (ie *IndexExpression) GetToken() token.Token { return ie.Token }

// CallExpression represents a function call, e.g. f(x, y).
type CallExpression struct {
	Token     token.Token // the '(' token
	Function  Expression
	Arguments []Expression
}

func (ce *CallExpression) expressionNode()       {}
func (ce *CallExpression) TokenLiteral() string  { return ce.Token.Lexeme }
func (ce *CallExpression) GetToken() token.Token { return ce.Token }

// MemberExpression represents `expr . member` or `expr -> member`.
type MemberExpression struct {
	Token  token.Token // the '.' or '->' token
	Left   Expression
	Member string
	Arrow  bool
}

func (me *MemberExpression) expressionNode()       {}
func (me *MemberExpression) TokenLiteral() string  { return me.Token.Lexeme }
func (me *MemberExpression) GetToken() token.Token { return me.Token }

// PostfixExpression represents postfix ++ or --.
type PostfixExpression struct {
	Token    token.Token // the operator token
	Operator string
	Left     Expression
}

func (pe *PostfixExpression) expressionNode()       {}
func (pe *PostfixExpression) TokenLiteral() string  { return pe.Token.Lexeme }
func (pe *PostfixExpression) GetToken() token.Token { return pe.Token }

// CompoundLiteral is `( type-name ) { initializer-list }`.
type CompoundLiteral struct {
	Token token.Token // the '(' token
	Type  *TypeName
	Init  *InitializerList
}

func (cl *CompoundLiteral) expressionNode()       {}
func (cl *CompoundLiteral) TokenLiteral() string  { return cl.Token.Lexeme }
func (cl *CompoundLiteral) GetToken() token.Token { return cl.Token }

// --- Initializers ---

// Initializer is either a single expression or a braced list.
type Initializer interface {
	Node
	initializerNode()
	GetToken() token.Token
}

// InitializerExpr wraps an assignment expression used as an initializer.
type InitializerExpr struct {
	Token token.Token
	Expr  Expression
}

func (ie *InitializerExpr) initializerNode()      {}
func (ie *InitializerExpr) TokenLiteral() string  { return ie.Token.Lexeme }
func (ie *InitializerExpr) GetToken() token.Token { return ie.Token }

// InitializerList is `{ designation? initializer (, ...)* ,? }`.
type InitializerList struct {
	Token token.Token // the '{' token
	Items []*InitializerItem
}

func (il *InitializerList) initializerNode()      {}
func (il *InitializerList) TokenLiteral() string  { return il.Token.Lexeme }
func (il *InitializerList) GetToken() token.Token { return il.Token }

// InitializerItem is one list element with its (possibly empty)
// designation.
type InitializerItem struct {
	Designators []Designator
	Init        Initializer
}

// Designator selects the aggregate position an initializer applies to.
type Designator interface {
	Node
	designatorNode()
	GetToken() token.Token
}

// IndexDesignator is `[ constant-expression ]`.
type IndexDesignator struct {
	Token token.Token // the '[' token
	Index Expression
}

func (d *IndexDesignator) designatorNode()       {}
func (d *IndexDesignator) TokenLiteral() string  { return d.Token.Lexeme }
func (d *IndexDesignator) GetToken() token.Token { return d.Token }

// MemberDesignator is `. identifier`.
type MemberDesignator struct {
	Token token.Token // the '.' token
	Name  string
}

func (d *MemberDesignator) designatorNode()       {}
func (d *MemberDesignator) TokenLiteral() string  { return d.Token.Lexeme }
func (d *MemberDesignator) GetToken() token.Token { return d.Token }
