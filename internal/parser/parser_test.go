package parser_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cklang/cparse/internal/ast"
	"github.com/cklang/cparse/internal/lexer"
	"github.com/cklang/cparse/internal/parser"
	"github.com/cklang/cparse/internal/pipeline"
)

func parseUnit(t *testing.T, src string) (*ast.TranslationUnit, *parser.Parser, *pipeline.Context) {
	t.Helper()
	ctx := pipeline.NewContext("test.c", src)
	ctx = (&lexer.Processor{}).Process(ctx)
	p := parser.New(ctx)
	unit := p.ParseTranslationUnit()
	return unit, p, ctx
}

func parseClean(t *testing.T, src string) *ast.TranslationUnit {
	t.Helper()
	unit, _, ctx := parseUnit(t, src)
	for _, err := range ctx.Errors {
		t.Logf("diagnostic: %s", err)
	}
	require.Empty(t, ctx.Errors)
	return unit
}

// parseExpr parses src as a single expression statement inside a function
// body.
func parseExpr(t *testing.T, src string) ast.Expression {
	t.Helper()
	unit := parseClean(t, "void f(void) { "+src+"; }")
	fd := unit.Decls[0].(*ast.FunctionDefinition)
	require.Len(t, fd.Body.Items, 1)
	es := fd.Body.Items[0].(*ast.ExpressionStatement)
	require.NotNil(t, es.Expr)
	return es.Expr
}

func TestEmptyTranslationUnit(t *testing.T) {
	unit := parseClean(t, "")
	require.Empty(t, unit.Decls)
}

func TestStrayFileScopeSemicolons(t *testing.T) {
	unit := parseClean(t, ";;;")
	require.Empty(t, unit.Decls)
}

func TestFunctionDefinitionMainVoid(t *testing.T) {
	unit := parseClean(t, "int main(void) { return 0; }")
	require.Len(t, unit.Decls, 1)

	fd, ok := unit.Decls[0].(*ast.FunctionDefinition)
	require.True(t, ok)
	require.Equal(t, "main", fd.Decl.Name())

	fn, ok := fd.Decl.Direct.(*ast.FuncDeclarator)
	require.True(t, ok)
	require.NotNil(t, fn.Params)
	require.Empty(t, fn.Params.Params)
	require.False(t, fn.Params.Ellipsis)

	require.Len(t, fd.Body.Items, 1)
	ret, ok := fd.Body.Items[0].(*ast.ReturnStatement)
	require.True(t, ok)
	lit, ok := ret.Value.(*ast.IntegerLiteral)
	require.True(t, ok)
	require.Equal(t, int64(0), lit.Value)
}

func TestTypedefFeedback(t *testing.T) {
	unit, p, ctx := parseUnit(t, "typedef unsigned int u32; u32 x = 7;")
	require.Empty(t, ctx.Errors)
	require.Len(t, unit.Decls, 2)

	require.True(t, p.Scopes().IsTypedefInScope("u32"))

	second := unit.Decls[1].(*ast.Declaration)
	require.Len(t, second.Specs.Types, 1)
	tn, ok := second.Specs.Types[0].(*ast.TypedefName)
	require.True(t, ok)
	require.Equal(t, "u32", tn.Name)
	require.Equal(t, "x", second.Declarators[0].Decl.Name())
}

func TestTypedefNotVisibleBeforeSemicolon(t *testing.T) {
	// u32 is used before any typedef binds it: the identifier cannot
	// begin declaration specifiers, so this is a syntax error.
	_, _, ctx := parseUnit(t, "u32 x; typedef unsigned int u32;")
	require.NotEmpty(t, ctx.Errors)
}

func TestInitDeclaratorList(t *testing.T) {
	unit := parseClean(t, "int *a, b[10], c(int);")
	require.Len(t, unit.Decls, 1)

	d := unit.Decls[0].(*ast.Declaration)
	require.Len(t, d.Declarators, 3)

	a := d.Declarators[0].Decl
	require.Equal(t, "a", a.Name())
	require.Len(t, a.Pointers, 1)

	b := d.Declarators[1].Decl
	require.Equal(t, "b", b.Name())
	require.Empty(t, b.Pointers)
	arr, ok := b.Direct.(*ast.ArrayDeclarator)
	require.True(t, ok)
	size, ok := arr.Size.(*ast.IntegerLiteral)
	require.True(t, ok)
	require.Equal(t, int64(10), size.Value)

	c := d.Declarators[2].Decl
	require.Equal(t, "c", c.Name())
	fn, ok := c.Direct.(*ast.FuncDeclarator)
	require.True(t, ok)
	require.NotNil(t, fn.Params)
	require.Len(t, fn.Params.Params, 1)
	require.Nil(t, fn.Params.Params[0].Decl)
}

func TestStructSpecifierWithBitField(t *testing.T) {
	unit := parseClean(t, "struct S { int x; float y:3; }; struct S s;")
	require.Len(t, unit.Decls, 2)

	first := unit.Decls[0].(*ast.Declaration)
	require.Empty(t, first.Declarators)
	su, ok := first.Specs.Types[0].(*ast.StructOrUnionSpecifier)
	require.True(t, ok)
	require.False(t, su.IsUnion)
	require.Equal(t, "S", su.Tag)
	require.True(t, su.HasBody)
	require.Len(t, su.Declarations, 2)

	y := su.Declarations[1].Declarators[0]
	require.Equal(t, "y", y.Decl.Name())
	width, ok := y.Width.(*ast.IntegerLiteral)
	require.True(t, ok)
	require.Equal(t, int64(3), width.Value)

	second := unit.Decls[1].(*ast.Declaration)
	ref, ok := second.Specs.Types[0].(*ast.StructOrUnionSpecifier)
	require.True(t, ok)
	require.Equal(t, "S", ref.Tag)
	require.False(t, ref.HasBody)
	require.Equal(t, "s", second.Declarators[0].Decl.Name())
}

func TestUnionKeywordSetsIsUnion(t *testing.T) {
	unit := parseClean(t, "union U { int i; float f; } u;")
	d := unit.Decls[0].(*ast.Declaration)
	su := d.Specs.Types[0].(*ast.StructOrUnionSpecifier)
	require.True(t, su.IsUnion)
	require.Equal(t, "U", su.Tag)
}

func TestAssignmentBindsLooserThanArithmetic(t *testing.T) {
	unit := parseClean(t, "int f() { int a = 1; a += 2 * (3 + 4); return a; }")
	fd := unit.Decls[0].(*ast.FunctionDefinition)
	require.Len(t, fd.Body.Items, 3)

	es := fd.Body.Items[1].(*ast.ExpressionStatement)
	assign, ok := es.Expr.(*ast.AssignExpression)
	require.True(t, ok)
	require.Equal(t, "+=", assign.Operator)
	require.Equal(t, "a", assign.Left.(*ast.Identifier).Value)

	mul, ok := assign.Right.(*ast.InfixExpression)
	require.True(t, ok)
	require.Equal(t, "*", mul.Operator)
	require.Equal(t, int64(2), mul.Left.(*ast.IntegerLiteral).Value)

	add, ok := mul.Right.(*ast.InfixExpression)
	require.True(t, ok)
	require.Equal(t, "+", add.Operator)
}

func TestCastOfPointerToFunctionType(t *testing.T) {
	expr := parseExpr(t, "(int (*)(int))p")

	cast, ok := expr.(*ast.CastExpression)
	require.True(t, ok)
	require.Equal(t, "p", cast.Operand.(*ast.Identifier).Value)

	tn := cast.Type
	prim, ok := tn.Specs.Types[0].(*ast.PrimitiveType)
	require.True(t, ok)
	require.Equal(t, "int", prim.Token.Lexeme)

	require.NotNil(t, tn.AbsDecl)
	fn, ok := tn.AbsDecl.Direct.(*ast.FuncDeclarator)
	require.True(t, ok)
	require.Len(t, fn.Params.Params, 1)

	paren, ok := fn.Inner.(*ast.ParenAbstractDeclarator)
	require.True(t, ok)
	require.Len(t, paren.Inner.Pointers, 1)
	require.Nil(t, paren.Inner.Direct)
}

func TestDeeplyParenthesisedDeclarator(t *testing.T) {
	unit := parseClean(t, "int (((x)));")
	d := unit.Decls[0].(*ast.Declaration)
	require.Equal(t, "x", d.Declarators[0].Decl.Name())
}

func TestVoidParameterListIsEmpty(t *testing.T) {
	unit := parseClean(t, "int f(void);")
	d := unit.Decls[0].(*ast.Declaration)
	fn := d.Declarators[0].Decl.Direct.(*ast.FuncDeclarator)
	require.NotNil(t, fn.Params)
	require.Empty(t, fn.Params.Params)
	require.False(t, fn.Params.Ellipsis)
}

func TestEllipsisParameterList(t *testing.T) {
	unit := parseClean(t, "int printf(const char *fmt, ...);")
	d := unit.Decls[0].(*ast.Declaration)
	fn := d.Declarators[0].Decl.Direct.(*ast.FuncDeclarator)
	require.Len(t, fn.Params.Params, 1)
	require.True(t, fn.Params.Ellipsis)
	require.Equal(t, "fmt", fn.Params.Params[0].Decl.Name())
}

func TestTypedefNameReusedAsDeclarator(t *testing.T) {
	unit, p, ctx := parseUnit(t, "typedef int T; T T;")
	require.Empty(t, ctx.Errors)
	require.Len(t, unit.Decls, 2)

	second := unit.Decls[1].(*ast.Declaration)
	_, ok := second.Specs.Types[0].(*ast.TypedefName)
	require.True(t, ok)
	require.Equal(t, "T", second.Declarators[0].Decl.Name())

	// The redeclaration rebinds T as an ordinary identifier.
	require.False(t, p.Scopes().IsTypedefInScope("T"))
}

func TestTypedefShadowedByOrdinaryInInnerScope(t *testing.T) {
	// Inside f, T is an ordinary variable, so `T * x` must parse as a
	// multiplication, not a declaration.
	unit := parseClean(t, "typedef int T; void f(void) { int T; T * x; }")
	fd := unit.Decls[1].(*ast.FunctionDefinition)
	require.Len(t, fd.Body.Items, 2)

	es, ok := fd.Body.Items[1].(*ast.ExpressionStatement)
	require.True(t, ok)
	mul, ok := es.Expr.(*ast.InfixExpression)
	require.True(t, ok)
	require.Equal(t, "*", mul.Operator)
}

func TestTypedefUsedAsPointerDeclaration(t *testing.T) {
	// With no shadowing, `T * x;` declares x as pointer-to-T.
	unit := parseClean(t, "typedef int T; void f(void) { T * x; }")
	fd := unit.Decls[1].(*ast.FunctionDefinition)
	d, ok := fd.Body.Items[0].(*ast.Declaration)
	require.True(t, ok)
	require.Equal(t, "x", d.Declarators[0].Decl.Name())
	require.Len(t, d.Declarators[0].Decl.Pointers, 1)
}

func TestScopeBalanceAfterParse(t *testing.T) {
	_, p, ctx := parseUnit(t, `
int g;
void f(int n) {
    {
        int i;
        for (int j = 0; j < n; j++) {
            i = j;
        }
    }
}
struct pair { int a, b; };
`)
	require.Empty(t, ctx.Errors)
	require.Equal(t, 1, p.Scopes().Depth())
}

func TestScopeBalanceAfterErrors(t *testing.T) {
	_, p, _ := parseUnit(t, "void f(void) { int x = ; } }")
	require.Equal(t, 1, p.Scopes().Depth())
}

func TestEnumSpecifier(t *testing.T) {
	unit := parseClean(t, "enum color { RED, GREEN = 2, BLUE, };")
	d := unit.Decls[0].(*ast.Declaration)
	e := d.Specs.Types[0].(*ast.EnumSpecifier)
	require.Equal(t, "color", e.Tag)
	require.True(t, e.HasBody)
	require.Len(t, e.Enumerators, 3)
	require.Equal(t, "GREEN", e.Enumerators[1].Name)
	val := e.Enumerators[1].Value.(*ast.IntegerLiteral)
	require.Equal(t, int64(2), val.Value)
	require.Nil(t, e.Enumerators[2].Value)
}

func TestDanglingElseBindsToNearestIf(t *testing.T) {
	unit := parseClean(t, "void f(int a, int b) { if (a) if (b) g(); else h(); }")
	fd := unit.Decls[0].(*ast.FunctionDefinition)
	outer := fd.Body.Items[0].(*ast.IfStatement)
	require.Nil(t, outer.Else)
	inner := outer.Then.(*ast.IfStatement)
	require.NotNil(t, inner.Else)
}

func TestLabeledStatementAndGoto(t *testing.T) {
	unit := parseClean(t, "void f(void) { again: x = 1; goto again; }")
	fd := unit.Decls[0].(*ast.FunctionDefinition)
	require.Len(t, fd.Body.Items, 2)

	label, ok := fd.Body.Items[0].(*ast.LabeledStatement)
	require.True(t, ok)
	require.Equal(t, "again", label.Label)
	_, ok = label.Stmt.(*ast.ExpressionStatement)
	require.True(t, ok)

	gt, ok := fd.Body.Items[1].(*ast.GotoStatement)
	require.True(t, ok)
	require.Equal(t, "again", gt.Label)
}

func TestSwitchCaseDefault(t *testing.T) {
	unit := parseClean(t, `
void f(int c) {
    switch (c) {
    case 1:
        a();
        break;
    default:
        b();
    }
}
`)
	fd := unit.Decls[0].(*ast.FunctionDefinition)
	sw := fd.Body.Items[0].(*ast.SwitchStatement)
	body := sw.Body.(*ast.CompoundStatement)
	require.Len(t, body.Items, 3)

	cs := body.Items[0].(*ast.CaseStatement)
	require.Equal(t, int64(1), cs.Value.(*ast.IntegerLiteral).Value)
	_, ok := body.Items[2].(*ast.DefaultStatement)
	require.True(t, ok)
}

func TestIterationStatements(t *testing.T) {
	unit := parseClean(t, `
void f(int n) {
    while (n) n--;
    do n++; while (n < 10);
    for (int i = 0; i < n; i++) ;
    for (;;) break;
}
`)
	fd := unit.Decls[0].(*ast.FunctionDefinition)
	require.Len(t, fd.Body.Items, 4)

	_, ok := fd.Body.Items[0].(*ast.WhileStatement)
	require.True(t, ok)
	_, ok = fd.Body.Items[1].(*ast.DoWhileStatement)
	require.True(t, ok)

	forDecl := fd.Body.Items[2].(*ast.ForStatement)
	require.NotNil(t, forDecl.InitDecl)
	require.Equal(t, "i", forDecl.InitDecl.Declarators[0].Decl.Name())
	require.NotNil(t, forDecl.Cond)
	require.NotNil(t, forDecl.Post)
	empty, ok := forDecl.Body.(*ast.ExpressionStatement)
	require.True(t, ok)
	require.Nil(t, empty.Expr)

	forever := fd.Body.Items[3].(*ast.ForStatement)
	require.Nil(t, forever.InitDecl)
	require.Nil(t, forever.Init)
	require.Nil(t, forever.Cond)
	require.Nil(t, forever.Post)
	_, ok = forever.Body.(*ast.BreakStatement)
	require.True(t, ok)
}

func TestSizeofForms(t *testing.T) {
	typeForm := parseExpr(t, "sizeof(int)").(*ast.SizeofExpression)
	require.NotNil(t, typeForm.Type)
	require.Nil(t, typeForm.Operand)

	exprForm := parseExpr(t, "sizeof x").(*ast.SizeofExpression)
	require.Nil(t, exprForm.Type)
	require.Equal(t, "x", exprForm.Operand.(*ast.Identifier).Value)

	parenExpr := parseExpr(t, "sizeof (x)").(*ast.SizeofExpression)
	require.Nil(t, parenExpr.Type)
	require.Equal(t, "x", parenExpr.Operand.(*ast.Identifier).Value)
}

func TestCompoundLiteral(t *testing.T) {
	expr := parseExpr(t, "(struct point){ .x = 1, .y = 2 }")
	lit, ok := expr.(*ast.CompoundLiteral)
	require.True(t, ok)
	require.Len(t, lit.Init.Items, 2)

	first := lit.Init.Items[0]
	require.Len(t, first.Designators, 1)
	md := first.Designators[0].(*ast.MemberDesignator)
	require.Equal(t, "x", md.Name)
}

func TestDesignatedArrayInitializer(t *testing.T) {
	unit := parseClean(t, "int a[4] = { [0] = 1, [2] = 3 };")
	d := unit.Decls[0].(*ast.Declaration)
	list := d.Declarators[0].Init.(*ast.InitializerList)
	require.Len(t, list.Items, 2)
	idx := list.Items[1].Designators[0].(*ast.IndexDesignator)
	require.Equal(t, int64(2), idx.Index.(*ast.IntegerLiteral).Value)
}

func TestCommaExpression(t *testing.T) {
	expr := parseExpr(t, "a = 1, b = 2")
	comma, ok := expr.(*ast.CommaExpression)
	require.True(t, ok)
	require.Len(t, comma.Exprs, 2)
	_, ok = comma.Exprs[0].(*ast.AssignExpression)
	require.True(t, ok)
}

func TestAssignmentIsRightAssociative(t *testing.T) {
	expr := parseExpr(t, "a = b = c")
	outer, ok := expr.(*ast.AssignExpression)
	require.True(t, ok)
	require.Equal(t, "a", outer.Left.(*ast.Identifier).Value)
	inner, ok := outer.Right.(*ast.AssignExpression)
	require.True(t, ok)
	require.Equal(t, "b", inner.Left.(*ast.Identifier).Value)
	require.Equal(t, "c", inner.Right.(*ast.Identifier).Value)
}

func TestConditionalExpression(t *testing.T) {
	expr := parseExpr(t, "a ? b : c ? d : e")
	outer, ok := expr.(*ast.ConditionalExpression)
	require.True(t, ok)
	require.Equal(t, "a", outer.Cond.(*ast.Identifier).Value)
	// ?: is right-associative: the else branch holds the second
	// conditional.
	inner, ok := outer.Else.(*ast.ConditionalExpression)
	require.True(t, ok)
	require.Equal(t, "c", inner.Cond.(*ast.Identifier).Value)
}

func TestBinaryPrecedenceShapes(t *testing.T) {
	testCases := []struct {
		name string
		src  string
		// top-level operator and the operator of its left child after
		// left-associative folding
		top  string
		left string
	}{
		{"mul_binds_tighter", "a + b * c", "+", ""},
		{"left_assoc_minus", "a - b - c", "-", "-"},
		{"shift_below_relational", "a << b < c", "<", "<<"},
		{"and_below_equality", "a == b && c != d", "&&", "=="},
		{"bitor_chain", "a | b ^ c", "|", ""},
		{"logor_lowest", "a && b || c && d", "||", "&&"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			expr := parseExpr(t, tc.src)
			infix, ok := expr.(*ast.InfixExpression)
			require.True(t, ok)
			require.Equal(t, tc.top, infix.Operator)
			if tc.left != "" {
				leftChild, ok := infix.Left.(*ast.InfixExpression)
				require.True(t, ok)
				require.Equal(t, tc.left, leftChild.Operator)
			}
		})
	}
}

func TestPostfixChains(t *testing.T) {
	expr := parseExpr(t, "a.b->c[1](x, y)++")
	post, ok := expr.(*ast.PostfixExpression)
	require.True(t, ok)
	require.Equal(t, "++", post.Operator)

	call, ok := post.Left.(*ast.CallExpression)
	require.True(t, ok)
	require.Len(t, call.Arguments, 2)

	index, ok := call.Function.(*ast.IndexExpression)
	require.True(t, ok)

	arrow, ok := index.Left.(*ast.MemberExpression)
	require.True(t, ok)
	require.True(t, arrow.Arrow)
	require.Equal(t, "c", arrow.Member)

	dot, ok := arrow.Left.(*ast.MemberExpression)
	require.True(t, ok)
	require.False(t, dot.Arrow)
	require.Equal(t, "a", dot.Left.(*ast.Identifier).Value)
}

func TestPrefixOperators(t *testing.T) {
	expr := parseExpr(t, "!*++p")
	not, ok := expr.(*ast.PrefixExpression)
	require.True(t, ok)
	require.Equal(t, "!", not.Operator)
	deref, ok := not.Right.(*ast.PrefixExpression)
	require.True(t, ok)
	require.Equal(t, "*", deref.Operator)
	inc, ok := deref.Right.(*ast.PrefixExpression)
	require.True(t, ok)
	require.Equal(t, "++", inc.Operator)
}

func TestSeededTypedefs(t *testing.T) {
	ctx := pipeline.NewContext("test.c", "__builtin_va_list ap;")
	ctx.Typedefs = []string{"__builtin_va_list"}
	ctx = (&lexer.Processor{}).Process(ctx)
	p := parser.New(ctx)
	unit := p.ParseTranslationUnit()
	require.Empty(t, ctx.Errors)
	require.Len(t, unit.Decls, 1)
	d := unit.Decls[0].(*ast.Declaration)
	_, ok := d.Specs.Types[0].(*ast.TypedefName)
	require.True(t, ok)
}

func TestMissingSemicolonDiagnostic(t *testing.T) {
	_, _, ctx := parseUnit(t, "void f(void) { return 0 }")
	require.Len(t, ctx.Errors, 1)
	require.Contains(t, ctx.Errors[0].Error(), "expected ';'")
}

func TestRecoveryContinuesAfterBadDeclaration(t *testing.T) {
	unit, _, ctx := parseUnit(t, "int 123; int y;")
	require.NotEmpty(t, ctx.Errors)
	require.Len(t, unit.Decls, 1)
	d := unit.Decls[0].(*ast.Declaration)
	require.Equal(t, "y", d.Declarators[0].Decl.Name())
}

func TestRecoveryInsideFunctionBody(t *testing.T) {
	unit, _, ctx := parseUnit(t, "int f(void) { int x = ; return 1; }")
	require.NotEmpty(t, ctx.Errors)
	fd := unit.Decls[0].(*ast.FunctionDefinition)
	require.Len(t, fd.Body.Items, 1)
	_, ok := fd.Body.Items[0].(*ast.ReturnStatement)
	require.True(t, ok)
}

func TestFunctionDefinitionRequiresFunctionDeclarator(t *testing.T) {
	_, _, ctx := parseUnit(t, "int x { return 0; }")
	require.NotEmpty(t, ctx.Errors)
	require.Contains(t, ctx.Errors[0].Error(), "parameter list")
}

func TestParameterScopeDiscardedForDeclarations(t *testing.T) {
	// The parameter n of the prototype must not leak into file scope.
	unit, p, ctx := parseUnit(t, "typedef int T; int f(T n); int n;")
	require.Empty(t, ctx.Errors)
	require.Len(t, unit.Decls, 3)
	require.Equal(t, 1, p.Scopes().Depth())
}

func TestArrayDeclaratorForms(t *testing.T) {
	unit := parseClean(t, "void f(int a[static 10], int b[], int c[*]);")
	d := unit.Decls[0].(*ast.Declaration)
	fn := d.Declarators[0].Decl.Direct.(*ast.FuncDeclarator)
	require.Len(t, fn.Params.Params, 3)

	a := fn.Params.Params[0].Decl.Direct.(*ast.ArrayDeclarator)
	require.True(t, a.Static)
	require.NotNil(t, a.Size)

	b := fn.Params.Params[1].Decl.Direct.(*ast.ArrayDeclarator)
	require.False(t, b.Static)
	require.Nil(t, b.Size)
	require.False(t, b.Star)

	c := fn.Params.Params[2].Decl.Direct.(*ast.ArrayDeclarator)
	require.True(t, c.Star)
	require.Nil(t, c.Size)
}

func TestKnRIdentifierList(t *testing.T) {
	unit := parseClean(t, "int f(a, b);")
	d := unit.Decls[0].(*ast.Declaration)
	fn := d.Declarators[0].Decl.Direct.(*ast.FuncDeclarator)
	require.Nil(t, fn.Params)
	require.Equal(t, []string{"a", "b"}, fn.Idents)
}

func TestPointerToFunctionParameterIsConcrete(t *testing.T) {
	unit := parseClean(t, "void qsort_r(int (*cmp)(int, int));")
	d := unit.Decls[0].(*ast.Declaration)
	fn := d.Declarators[0].Decl.Direct.(*ast.FuncDeclarator)
	require.Len(t, fn.Params.Params, 1)

	param := fn.Params.Params[0]
	require.NotNil(t, param.Decl)
	require.Equal(t, "cmp", param.Decl.Name())
}

func TestAbstractParameterShapes(t *testing.T) {
	unit := parseClean(t, "void f(int, int *, int [], int (*)(void));")
	d := unit.Decls[0].(*ast.Declaration)
	fn := d.Declarators[0].Decl.Direct.(*ast.FuncDeclarator)
	require.Len(t, fn.Params.Params, 4)

	bare := fn.Params.Params[0]
	require.Nil(t, bare.Decl)
	require.Nil(t, bare.AbsDecl)

	ptr := fn.Params.Params[1]
	require.NotNil(t, ptr.AbsDecl)
	require.Len(t, ptr.AbsDecl.Pointers, 1)
	require.Nil(t, ptr.AbsDecl.Direct)

	arr := fn.Params.Params[2]
	require.NotNil(t, arr.AbsDecl)
	_, ok := arr.AbsDecl.Direct.(*ast.ArrayDeclarator)
	require.True(t, ok)

	fp := fn.Params.Params[3]
	require.NotNil(t, fp.AbsDecl)
	_, ok = fp.AbsDecl.Direct.(*ast.FuncDeclarator)
	require.True(t, ok)
}
