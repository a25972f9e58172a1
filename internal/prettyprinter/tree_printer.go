package prettyprinter

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/cklang/cparse/internal/ast"
)

// --- Tree Printer (output shows AST structure) ---

type TreePrinter struct {
	buf    bytes.Buffer
	indent int
}

func NewTreePrinter() *TreePrinter {
	return &TreePrinter{}
}

func (p *TreePrinter) String() string {
	return p.buf.String()
}

func (p *TreePrinter) line(format string, args ...interface{}) {
	p.buf.WriteString(strings.Repeat("  ", p.indent))
	p.buf.WriteString(fmt.Sprintf(format, args...))
	p.buf.WriteString("\n")
}

func (p *TreePrinter) nested(fn func()) {
	p.indent++
	fn()
	p.indent--
}

func (p *TreePrinter) PrintTranslationUnit(unit *ast.TranslationUnit) {
	p.line("TranslationUnit")
	p.nested(func() {
		for _, decl := range unit.Decls {
			switch d := decl.(type) {
			case *ast.FunctionDefinition:
				p.printFunctionDefinition(d)
			case *ast.Declaration:
				p.printDeclaration(d)
			}
		}
	})
}

func (p *TreePrinter) printFunctionDefinition(fd *ast.FunctionDefinition) {
	p.line("FunctionDefinition: %s", fd.Decl.Name())
	p.nested(func() {
		p.line("Specs: %s", specsString(fd.Specs))
		p.line("Declarator: %s", declaratorString(fd.Decl))
		p.printStatement(fd.Body)
	})
}

func (p *TreePrinter) printDeclaration(d *ast.Declaration) {
	p.line("Declaration")
	p.nested(func() {
		p.line("Specs: %s", specsString(d.Specs))
		for _, item := range d.Declarators {
			p.line("Declarator: %s", declaratorString(item.Decl))
			if item.Init != nil {
				p.nested(func() {
					p.printInitializer(item.Init)
				})
			}
		}
	})
}

func (p *TreePrinter) printInitializer(init ast.Initializer) {
	switch in := init.(type) {
	case *ast.InitializerExpr:
		p.line("Init:")
		p.nested(func() { p.printExpr(in.Expr) })
	case *ast.InitializerList:
		p.line("InitList")
		p.nested(func() {
			for _, item := range in.Items {
				for _, des := range item.Designators {
					switch d := des.(type) {
					case *ast.IndexDesignator:
						p.line("Designator: [%s]", exprString(d.Index))
					case *ast.MemberDesignator:
						p.line("Designator: .%s", d.Name)
					}
				}
				p.printInitializer(item.Init)
			}
		})
	}
}

func (p *TreePrinter) printStatement(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.CompoundStatement:
		p.line("Compound")
		p.nested(func() {
			for _, item := range s.Items {
				switch it := item.(type) {
				case *ast.Declaration:
					p.printDeclaration(it)
				case ast.Statement:
					p.printStatement(it)
				}
			}
		})
	case *ast.ExpressionStatement:
		if s.Expr == nil {
			p.line("EmptyStatement")
			return
		}
		p.line("ExpressionStatement")
		p.nested(func() { p.printExpr(s.Expr) })
	case *ast.LabeledStatement:
		p.line("Label: %s", s.Label)
		p.nested(func() { p.printStatement(s.Stmt) })
	case *ast.CaseStatement:
		p.line("Case: %s", exprString(s.Value))
		p.nested(func() { p.printStatement(s.Stmt) })
	case *ast.DefaultStatement:
		p.line("Default")
		p.nested(func() { p.printStatement(s.Stmt) })
	case *ast.IfStatement:
		p.line("If: %s", exprString(s.Cond))
		p.nested(func() {
			p.printStatement(s.Then)
			if s.Else != nil {
				p.line("Else")
				p.nested(func() { p.printStatement(s.Else) })
			}
		})
	case *ast.SwitchStatement:
		p.line("Switch: %s", exprString(s.Cond))
		p.nested(func() { p.printStatement(s.Body) })
	case *ast.WhileStatement:
		p.line("While: %s", exprString(s.Cond))
		p.nested(func() { p.printStatement(s.Body) })
	case *ast.DoWhileStatement:
		p.line("DoWhile: %s", exprString(s.Cond))
		p.nested(func() { p.printStatement(s.Body) })
	case *ast.ForStatement:
		p.line("For")
		p.nested(func() {
			if s.InitDecl != nil {
				p.printDeclaration(s.InitDecl)
			} else if s.Init != nil {
				p.line("Init: %s", exprString(s.Init))
			}
			if s.Cond != nil {
				p.line("Cond: %s", exprString(s.Cond))
			}
			if s.Post != nil {
				p.line("Post: %s", exprString(s.Post))
			}
			p.printStatement(s.Body)
		})
	case *ast.GotoStatement:
		p.line("Goto: %s", s.Label)
	case *ast.ContinueStatement:
		p.line("Continue")
	case *ast.BreakStatement:
		p.line("Break")
	case *ast.ReturnStatement:
		if s.Value == nil {
			p.line("Return")
			return
		}
		p.line("Return")
		p.nested(func() { p.printExpr(s.Value) })
	}
}

func (p *TreePrinter) printExpr(e ast.Expression) {
	switch ex := e.(type) {
	case *ast.Identifier:
		p.line("Ident: %s", ex.Value)
	case *ast.IntegerLiteral:
		p.line("Int: %s", ex.Token.Lexeme)
	case *ast.FloatLiteral:
		p.line("Float: %s", ex.Token.Lexeme)
	case *ast.CharLiteral:
		p.line("Char: %s", ex.Token.Lexeme)
	case *ast.StringLiteral:
		p.line("String: %s", ex.Token.Lexeme)
	case *ast.CommaExpression:
		p.line("Comma")
		p.nested(func() {
			for _, sub := range ex.Exprs {
				p.printExpr(sub)
			}
		})
	case *ast.AssignExpression:
		p.line("Assign: %s", ex.Operator)
		p.nested(func() {
			p.printExpr(ex.Left)
			p.printExpr(ex.Right)
		})
	case *ast.ConditionalExpression:
		p.line("Conditional")
		p.nested(func() {
			p.printExpr(ex.Cond)
			p.printExpr(ex.Then)
			p.printExpr(ex.Else)
		})
	case *ast.InfixExpression:
		p.line("Infix: %s", ex.Operator)
		p.nested(func() {
			p.printExpr(ex.Left)
			p.printExpr(ex.Right)
		})
	case *ast.CastExpression:
		p.line("Cast: %s", typeNameString(ex.Type))
		p.nested(func() { p.printExpr(ex.Operand) })
	case *ast.PrefixExpression:
		p.line("Prefix: %s", ex.Operator)
		p.nested(func() { p.printExpr(ex.Right) })
	case *ast.SizeofExpression:
		if ex.Type != nil {
			p.line("SizeofType: %s", typeNameString(ex.Type))
			return
		}
		p.line("Sizeof")
		p.nested(func() { p.printExpr(ex.Operand) })
	case *ast.IndexExpression:
		p.line("Index")
		p.nested(func() {
			p.printExpr(ex.Left)
			p.printExpr(ex.Index)
		})
	case *ast.CallExpression:
		p.line("Call")
		p.nested(func() {
			p.printExpr(ex.Function)
			for _, arg := range ex.Arguments {
				p.printExpr(arg)
			}
		})
	case *ast.MemberExpression:
		op := "."
		if ex.Arrow {
			op = "->"
		}
		p.line("Member: %s%s", op, ex.Member)
		p.nested(func() { p.printExpr(ex.Left) })
	case *ast.PostfixExpression:
		p.line("Postfix: %s", ex.Operator)
		p.nested(func() { p.printExpr(ex.Left) })
	case *ast.CompoundLiteral:
		p.line("CompoundLiteral: %s", typeNameString(ex.Type))
		p.nested(func() { p.printInitializer(ex.Init) })
	}
}
