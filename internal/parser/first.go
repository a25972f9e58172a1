package parser

import (
	"github.com/cklang/cparse/internal/token"
)

// Precomputed FIRST sets for predictive dispatch. Identifier membership is
// context-sensitive (typedef feedback) and handled by the predicates below
// rather than the raw tables.

var storageClassFirst = map[token.Kind]bool{
	token.TYPEDEF:  true,
	token.EXTERN:   true,
	token.STATIC:   true,
	token.AUTO:     true,
	token.REGISTER: true,
}

var typeQualifierFirst = map[token.Kind]bool{
	token.CONST:    true,
	token.RESTRICT: true,
	token.VOLATILE: true,
}

var primitiveTypeFirst = map[token.Kind]bool{
	token.VOID:     true,
	token.CHAR:     true,
	token.SHORT:    true,
	token.INT:      true,
	token.LONG:     true,
	token.FLOAT:    true,
	token.DOUBLE:   true,
	token.SIGNED:   true,
	token.UNSIGNED: true,
	token.BOOL:     true,
}

func isTagSpecifier(kind token.Kind) bool {
	return kind == token.STRUCT || kind == token.UNION || kind == token.ENUM
}

var assignmentOperators = map[token.Kind]bool{
	token.ASSIGN:          true,
	token.PLUS_ASSIGN:     true,
	token.MINUS_ASSIGN:    true,
	token.ASTERISK_ASSIGN: true,
	token.SLASH_ASSIGN:    true,
	token.PERCENT_ASSIGN:  true,
	token.LSHIFT_ASSIGN:   true,
	token.RSHIFT_ASSIGN:   true,
	token.AMP_ASSIGN:      true,
	token.PIPE_ASSIGN:     true,
	token.CARET_ASSIGN:    true,
}

// binaryPrecedences drives the precedence-climbing loop from logical-or
// down to multiplicative. Higher binds tighter; all levels here are
// left-associative.
var binaryPrecedences = map[token.Kind]int{
	token.OR:        1,
	token.AND:       2,
	token.PIPE:      3,
	token.CARET:     4,
	token.AMPERSAND: 5,
	token.EQ:        6,
	token.NOT_EQ:    6,
	token.LT:        7,
	token.GT:        7,
	token.LTE:       7,
	token.GTE:       7,
	token.LSHIFT:    8,
	token.RSHIFT:    8,
	token.PLUS:      9,
	token.MINUS:     9,
	token.ASTERISK:  10,
	token.SLASH:     10,
	token.PERCENT:   10,
}

// isDeclarationSpecifierStart reports whether tok can begin a
// declaration-specifier list: storage class, qualifier, function
// specifier, type specifier keyword, or an identifier bound as a typedef
// in the current scope. This is the lexical feedback rule.
func (p *Parser) isDeclarationSpecifierStart(tok token.Token) bool {
	if storageClassFirst[tok.Kind] || typeQualifierFirst[tok.Kind] ||
		primitiveTypeFirst[tok.Kind] || isTagSpecifier(tok.Kind) ||
		tok.Kind == token.INLINE {
		return true
	}
	return tok.Kind == token.IDENT && p.scopes.IsTypedefInScope(tok.Lexeme)
}

// isTypeNameStart reports whether tok can begin a type-name
// (specifier-qualifier list): like isDeclarationSpecifierStart minus
// storage classes and function specifiers.
func (p *Parser) isTypeNameStart(tok token.Token) bool {
	if typeQualifierFirst[tok.Kind] || primitiveTypeFirst[tok.Kind] ||
		isTagSpecifier(tok.Kind) {
		return true
	}
	return tok.Kind == token.IDENT && p.scopes.IsTypedefInScope(tok.Lexeme)
}
