package diagnostics

import (
	"fmt"

	"github.com/cklang/cparse/internal/source"
)

// Phase represents the processing phase where an error occurred
type Phase string

const (
	PhaseLexer  Phase = "lexer"
	PhaseParser Phase = "parser"
)

type ErrorCode string

const (
	// Lexer Errors
	ErrL001 ErrorCode = "L001" // Invalid character
	ErrL002 ErrorCode = "L002" // Unterminated literal

	// Parser Errors
	ErrP001 ErrorCode = "P001" // Unexpected token
	ErrP002 ErrorCode = "P002" // Missing terminator
	ErrP003 ErrorCode = "P003" // Empty required production
	ErrP004 ErrorCode = "P004" // Cannot parse expression
	ErrP005 ErrorCode = "P005" // Function definition without parameter list
	ErrP006 ErrorCode = "P006" // Unreachable grammar state
)

var errorTemplates = map[ErrorCode]string{
	ErrL001: "invalid character: '%s'",
	ErrL002: "unterminated %s",
	ErrP001: "expected '%s', got '%s'",
	ErrP002: "expected '%s'",
	ErrP003: "expected declaration specifiers, got '%s'",
	ErrP004: "cannot parse expression starting with '%s'",
	ErrP005: "function definition requires a parameter list declarator",
	ErrP006: "unreachable grammar state: %s",
}

type DiagnosticError struct {
	Code  ErrorCode
	Phase Phase
	Args  []interface{}
	Pos   source.Position
	File  string
}

func (e *DiagnosticError) Error() string {
	template, ok := errorTemplates[e.Code]
	if !ok {
		return fmt.Sprintf("unknown error code: %s", e.Code)
	}

	message := fmt.Sprintf(template, e.Args...)

	prefix := ""
	if e.File != "" {
		prefix = fmt.Sprintf("%s: ", e.File)
	}

	phaseStr := ""
	if e.Phase != "" {
		phaseStr = fmt.Sprintf("[%s] ", e.Phase)
	}

	if e.Pos.Line > 0 {
		return fmt.Sprintf("%s%serror at %s [%s]: %s", prefix, phaseStr, e.Pos, e.Code, message)
	}
	return fmt.Sprintf("%s%serror [%s]: %s", prefix, phaseStr, e.Code, message)
}

// Message renders just the formatted message payload, without location.
func (e *DiagnosticError) Message() string {
	template, ok := errorTemplates[e.Code]
	if !ok {
		return fmt.Sprintf("unknown error code: %s", e.Code)
	}
	return fmt.Sprintf(template, e.Args...)
}

// NewError creates an error with code and position.
func NewError(code ErrorCode, pos source.Position, args ...interface{}) *DiagnosticError {
	return &DiagnosticError{
		Code: code,
		Pos:  pos,
		Args: args,
	}
}

// NewPhaseError creates an error with phase information
func NewPhaseError(phase Phase, code ErrorCode, pos source.Position, args ...interface{}) *DiagnosticError {
	return &DiagnosticError{
		Code:  code,
		Phase: phase,
		Pos:   pos,
		Args:  args,
	}
}
