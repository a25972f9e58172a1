package prettyprinter

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/cklang/cparse/internal/ast"
)

// --- Code Printer (output looks like C source) ---

// CodePrinter renders an AST back to compilable C text. Compound operands
// are printed parenthesised, so reprinting a reparsed output is a
// fixpoint.
type CodePrinter struct {
	buf    bytes.Buffer
	indent int
}

func NewCodePrinter() *CodePrinter {
	return &CodePrinter{}
}

func (p *CodePrinter) String() string {
	return p.buf.String()
}

func (p *CodePrinter) write(s string) {
	p.buf.WriteString(s)
}

func (p *CodePrinter) writeIndent() {
	p.write(strings.Repeat("    ", p.indent))
}

func (p *CodePrinter) PrintTranslationUnit(unit *ast.TranslationUnit) {
	for _, decl := range unit.Decls {
		switch d := decl.(type) {
		case *ast.FunctionDefinition:
			p.printFunctionDefinition(d)
		case *ast.Declaration:
			p.writeIndent()
			p.printDeclaration(d)
			p.write("\n")
		}
	}
}

func (p *CodePrinter) printFunctionDefinition(fd *ast.FunctionDefinition) {
	p.write(specsString(fd.Specs))
	p.write(" ")
	p.write(declaratorString(fd.Decl))
	p.write("\n")
	p.printStatement(fd.Body)
	p.write("\n")
}

func (p *CodePrinter) printDeclaration(d *ast.Declaration) {
	p.write(specsString(d.Specs))
	for i, item := range d.Declarators {
		if i == 0 {
			p.write(" ")
		} else {
			p.write(", ")
		}
		p.write(declaratorString(item.Decl))
		if item.Init != nil {
			p.write(" = ")
			p.write(initializerString(item.Init))
		}
	}
	p.write(";")
}

// --- Specifiers ---

// specsString prints specifiers in canonical category order; reparsing
// canonical output is order-stable.
func specsString(specs *ast.DeclarationSpecifiers) string {
	var parts []string
	for _, sc := range specs.Storage {
		parts = append(parts, sc.Token.Lexeme)
	}
	for _, fs := range specs.FuncSpecs {
		parts = append(parts, fs.Token.Lexeme)
	}
	for _, q := range specs.Qualifiers {
		parts = append(parts, q.Token.Lexeme)
	}
	for _, ts := range specs.Types {
		parts = append(parts, typeSpecifierString(ts))
	}
	return strings.Join(parts, " ")
}

func typeSpecifierString(ts ast.TypeSpecifier) string {
	switch t := ts.(type) {
	case *ast.PrimitiveType:
		return t.Token.Lexeme
	case *ast.TypedefName:
		return t.Name
	case *ast.StructOrUnionSpecifier:
		return structOrUnionString(t)
	case *ast.EnumSpecifier:
		return enumString(t)
	}
	return ""
}

func structOrUnionString(s *ast.StructOrUnionSpecifier) string {
	var sb strings.Builder
	if s.IsUnion {
		sb.WriteString("union")
	} else {
		sb.WriteString("struct")
	}
	if s.Tag != "" {
		sb.WriteString(" ")
		sb.WriteString(s.Tag)
	}
	if s.HasBody {
		sb.WriteString(" { ")
		for _, sd := range s.Declarations {
			sb.WriteString(specsString(sd.Specs))
			for i, item := range sd.Declarators {
				if i == 0 {
					sb.WriteString(" ")
				} else {
					sb.WriteString(", ")
				}
				if item.Decl != nil {
					sb.WriteString(declaratorString(item.Decl))
				}
				if item.Width != nil {
					if item.Decl != nil {
						sb.WriteString(" ")
					}
					sb.WriteString(": ")
					sb.WriteString(exprString(item.Width))
				}
			}
			sb.WriteString("; ")
		}
		sb.WriteString("}")
	}
	return sb.String()
}

func enumString(e *ast.EnumSpecifier) string {
	var sb strings.Builder
	sb.WriteString("enum")
	if e.Tag != "" {
		sb.WriteString(" ")
		sb.WriteString(e.Tag)
	}
	if e.HasBody {
		sb.WriteString(" { ")
		for i, en := range e.Enumerators {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(en.Name)
			if en.Value != nil {
				sb.WriteString(" = ")
				sb.WriteString(exprString(en.Value))
			}
		}
		sb.WriteString(" }")
	}
	return sb.String()
}

// --- Declarators ---

func declaratorString(d *ast.Declarator) string {
	var sb strings.Builder
	writePointers(&sb, d.Pointers)
	sb.WriteString(directDeclaratorString(d.Direct))
	return sb.String()
}

func abstractDeclaratorString(ad *ast.AbstractDeclarator) string {
	var sb strings.Builder
	writePointers(&sb, ad.Pointers)
	if ad.Direct != nil {
		sb.WriteString(directDeclaratorString(ad.Direct))
	}
	return sb.String()
}

func writePointers(sb *strings.Builder, ptrs []*ast.Pointer) {
	for _, ptr := range ptrs {
		sb.WriteString("*")
		for _, q := range ptr.Qualifiers {
			sb.WriteString(q.Token.Lexeme)
			sb.WriteString(" ")
		}
	}
}

func directDeclaratorString(dd ast.DirectDeclarator) string {
	switch d := dd.(type) {
	case *ast.IdentDeclarator:
		return d.Name
	case *ast.ParenDeclarator:
		return "(" + declaratorString(d.Inner) + ")"
	case *ast.ParenAbstractDeclarator:
		return "(" + abstractDeclaratorString(d.Inner) + ")"
	case *ast.ArrayDeclarator:
		var sb strings.Builder
		if d.Inner != nil {
			sb.WriteString(directDeclaratorString(d.Inner))
		}
		sb.WriteString("[")
		var parts []string
		if d.Static {
			parts = append(parts, "static")
		}
		for _, q := range d.Qualifiers {
			parts = append(parts, q.Token.Lexeme)
		}
		if d.Star {
			parts = append(parts, "*")
		} else if d.Size != nil {
			parts = append(parts, exprString(d.Size))
		}
		sb.WriteString(strings.Join(parts, " "))
		sb.WriteString("]")
		return sb.String()
	case *ast.FuncDeclarator:
		var sb strings.Builder
		if d.Inner != nil {
			sb.WriteString(directDeclaratorString(d.Inner))
		}
		sb.WriteString("(")
		switch {
		case d.Params != nil:
			sb.WriteString(parameterTypeListString(d.Params))
		case len(d.Idents) > 0:
			sb.WriteString(strings.Join(d.Idents, ", "))
		}
		sb.WriteString(")")
		return sb.String()
	}
	return ""
}

func parameterTypeListString(list *ast.ParameterTypeList) string {
	if len(list.Params) == 0 && !list.Ellipsis {
		return "void"
	}
	var parts []string
	for _, param := range list.Params {
		var sb strings.Builder
		sb.WriteString(specsString(param.Specs))
		switch {
		case param.Decl != nil:
			sb.WriteString(" ")
			sb.WriteString(declaratorString(param.Decl))
		case param.AbsDecl != nil:
			sb.WriteString(" ")
			sb.WriteString(abstractDeclaratorString(param.AbsDecl))
		}
		parts = append(parts, sb.String())
	}
	if list.Ellipsis {
		parts = append(parts, "...")
	}
	return strings.Join(parts, ", ")
}

func typeNameString(tn *ast.TypeName) string {
	s := specsString(tn.Specs)
	if tn.AbsDecl != nil {
		decl := abstractDeclaratorString(tn.AbsDecl)
		if decl != "" {
			s += " " + decl
		}
	}
	return s
}

// --- Initializers ---

func initializerString(init ast.Initializer) string {
	switch in := init.(type) {
	case *ast.InitializerExpr:
		return exprString(in.Expr)
	case *ast.InitializerList:
		var sb strings.Builder
		sb.WriteString("{ ")
		for i, item := range in.Items {
			if i > 0 {
				sb.WriteString(", ")
			}
			for _, des := range item.Designators {
				switch d := des.(type) {
				case *ast.IndexDesignator:
					sb.WriteString("[")
					sb.WriteString(exprString(d.Index))
					sb.WriteString("]")
				case *ast.MemberDesignator:
					sb.WriteString(".")
					sb.WriteString(d.Name)
				}
			}
			if len(item.Designators) > 0 {
				sb.WriteString(" = ")
			}
			sb.WriteString(initializerString(item.Init))
		}
		sb.WriteString(" }")
		return sb.String()
	}
	return ""
}

// --- Statements ---

func (p *CodePrinter) printStatement(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.CompoundStatement:
		p.writeIndent()
		p.write("{\n")
		p.indent++
		for _, item := range s.Items {
			switch it := item.(type) {
			case *ast.Declaration:
				p.writeIndent()
				p.printDeclaration(it)
				p.write("\n")
			case ast.Statement:
				p.printStatement(it)
			}
		}
		p.indent--
		p.writeIndent()
		p.write("}")
		if p.indent > 0 {
			p.write("\n")
		}

	case *ast.ExpressionStatement:
		p.writeIndent()
		if s.Expr != nil {
			p.write(exprString(s.Expr))
		}
		p.write(";\n")

	case *ast.LabeledStatement:
		p.writeIndent()
		p.write(s.Label)
		p.write(":\n")
		p.printStatement(s.Stmt)

	case *ast.CaseStatement:
		p.writeIndent()
		p.write("case ")
		p.write(exprString(s.Value))
		p.write(":\n")
		p.printStatement(s.Stmt)

	case *ast.DefaultStatement:
		p.writeIndent()
		p.write("default:\n")
		p.printStatement(s.Stmt)

	case *ast.IfStatement:
		p.writeIndent()
		p.write("if (")
		p.write(exprString(s.Cond))
		p.write(")\n")
		p.printNested(s.Then)
		if s.Else != nil {
			p.writeIndent()
			p.write("else\n")
			p.printNested(s.Else)
		}

	case *ast.SwitchStatement:
		p.writeIndent()
		p.write("switch (")
		p.write(exprString(s.Cond))
		p.write(")\n")
		p.printNested(s.Body)

	case *ast.WhileStatement:
		p.writeIndent()
		p.write("while (")
		p.write(exprString(s.Cond))
		p.write(")\n")
		p.printNested(s.Body)

	case *ast.DoWhileStatement:
		p.writeIndent()
		p.write("do\n")
		p.printNested(s.Body)
		p.writeIndent()
		p.write("while (")
		p.write(exprString(s.Cond))
		p.write(");\n")

	case *ast.ForStatement:
		p.writeIndent()
		p.write("for (")
		switch {
		case s.InitDecl != nil:
			p.write(declarationInlineString(s.InitDecl))
		default:
			if s.Init != nil {
				p.write(exprString(s.Init))
			}
			p.write(";")
		}
		p.write(" ")
		if s.Cond != nil {
			p.write(exprString(s.Cond))
		}
		p.write("; ")
		if s.Post != nil {
			p.write(exprString(s.Post))
		}
		p.write(")\n")
		p.printNested(s.Body)

	case *ast.GotoStatement:
		p.writeIndent()
		p.write("goto ")
		p.write(s.Label)
		p.write(";\n")

	case *ast.ContinueStatement:
		p.writeIndent()
		p.write("continue;\n")

	case *ast.BreakStatement:
		p.writeIndent()
		p.write("break;\n")

	case *ast.ReturnStatement:
		p.writeIndent()
		p.write("return")
		if s.Value != nil {
			p.write(" ")
			p.write(exprString(s.Value))
		}
		p.write(";\n")
	}
}

// printNested indents non-compound substatements one level.
func (p *CodePrinter) printNested(stmt ast.Statement) {
	if _, ok := stmt.(*ast.CompoundStatement); ok {
		p.printStatement(stmt)
		return
	}
	p.indent++
	p.printStatement(stmt)
	p.indent--
}

// declarationInlineString renders a declaration without trailing newline
// (for-init clauses).
func declarationInlineString(d *ast.Declaration) string {
	var sb strings.Builder
	sb.WriteString(specsString(d.Specs))
	for i, item := range d.Declarators {
		if i == 0 {
			sb.WriteString(" ")
		} else {
			sb.WriteString(", ")
		}
		sb.WriteString(declaratorString(item.Decl))
		if item.Init != nil {
			sb.WriteString(" = ")
			sb.WriteString(initializerString(item.Init))
		}
	}
	sb.WriteString(";")
	return sb.String()
}

// --- Expressions ---

// isAtom reports whether an expression prints unambiguously without
// surrounding parentheses.
func isAtom(e ast.Expression) bool {
	switch e.(type) {
	case *ast.Identifier, *ast.IntegerLiteral, *ast.FloatLiteral,
		*ast.CharLiteral, *ast.StringLiteral, *ast.CallExpression,
		*ast.IndexExpression, *ast.MemberExpression, *ast.PostfixExpression,
		*ast.CompoundLiteral:
		return true
	}
	return false
}

func operandString(e ast.Expression) string {
	if isAtom(e) {
		return exprString(e)
	}
	return "(" + exprString(e) + ")"
}

func exprString(e ast.Expression) string {
	switch ex := e.(type) {
	case *ast.Identifier:
		return ex.Value
	case *ast.IntegerLiteral:
		return ex.Token.Lexeme
	case *ast.FloatLiteral:
		return ex.Token.Lexeme
	case *ast.CharLiteral:
		return ex.Token.Lexeme
	case *ast.StringLiteral:
		return ex.Token.Lexeme
	case *ast.CommaExpression:
		var parts []string
		for _, sub := range ex.Exprs {
			parts = append(parts, exprString(sub))
		}
		return strings.Join(parts, ", ")
	case *ast.AssignExpression:
		return fmt.Sprintf("%s %s %s", operandString(ex.Left), ex.Operator, operandString(ex.Right))
	case *ast.ConditionalExpression:
		return fmt.Sprintf("%s ? %s : %s",
			operandString(ex.Cond), operandString(ex.Then), operandString(ex.Else))
	case *ast.InfixExpression:
		return fmt.Sprintf("%s %s %s", operandString(ex.Left), ex.Operator, operandString(ex.Right))
	case *ast.CastExpression:
		return "(" + typeNameString(ex.Type) + ")" + operandString(ex.Operand)
	case *ast.PrefixExpression:
		return ex.Operator + operandString(ex.Right)
	case *ast.SizeofExpression:
		if ex.Type != nil {
			return "sizeof(" + typeNameString(ex.Type) + ")"
		}
		return "sizeof " + operandString(ex.Operand)
	case *ast.IndexExpression:
		return operandString(ex.Left) + "[" + exprString(ex.Index) + "]"
	case *ast.CallExpression:
		var args []string
		for _, arg := range ex.Arguments {
			args = append(args, exprString(arg))
		}
		return operandString(ex.Function) + "(" + strings.Join(args, ", ") + ")"
	case *ast.MemberExpression:
		op := "."
		if ex.Arrow {
			op = "->"
		}
		return operandString(ex.Left) + op + ex.Member
	case *ast.PostfixExpression:
		return operandString(ex.Left) + ex.Operator
	case *ast.CompoundLiteral:
		return "(" + typeNameString(ex.Type) + ")" + initializerString(ex.Init)
	}
	return ""
}
