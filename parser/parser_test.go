/*
 * glint
 *
 * Copyright 2026 The glint Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glint-lang/glint/ast"
	"github.com/glint-lang/glint/lexer"
)

func mustParse(t *testing.T, src string) *ast.Node {
	t.Helper()
	head := lexer.New([]byte(src)).Run()
	root, _, err := Parse(head, ast.NewArena())
	require.NoError(t, err)
	require.NotNil(t, root)
	return root
}

func child(t *testing.T, n *ast.Node, i int) *ast.Node {
	t.Helper()
	kids := n.Children()
	require.Greaterf(t, len(kids), i, "node %v has only %d children", n, len(kids))
	return kids[i]
}

/*
Scenario 1 (spec.md §8): a := 55 -> scope[ statement(name="a"){ literal("55") } ].
*/
func TestScenarioSimpleAssignment(t *testing.T) {
	root := mustParse(t, "a := 55")

	require.Equal(t, ast.Scope, root.Type)
	require.Len(t, root.Children(), 1)

	stmt := child(t, root, 0)
	assert.Equal(t, ast.Statement, stmt.Type)
	assert.Equal(t, "a", stmt.Name)

	lit := child(t, stmt, 0)
	assert.Equal(t, ast.Literal, lit.Type)
	assert.Equal(t, "55", lit.Name)
}

/*
Scenario 2 (spec.md §8):
c := a + b * 2 * (1 + 3)
-> scope[ statement(name="c"){ expr("+")[ literal("a"),
     expr("*")[ expr("*")[ literal("b"), literal("2") ],
                expr("(")[ expr("+")[ literal("1"), literal("3") ] ] ] ] } ].
*/
func TestScenarioPrecedenceAndGrouping(t *testing.T) {
	root := mustParse(t, "c := a + b * 2 * (1 + 3)")

	stmt := child(t, root, 0)
	require.Equal(t, ast.Statement, stmt.Type)
	require.Equal(t, "c", stmt.Name)

	plus := child(t, stmt, 0)
	require.Equal(t, ast.Expression, plus.Type)
	require.Equal(t, "+", plus.Name)
	require.Len(t, plus.Children(), 2)

	a := child(t, plus, 0)
	assert.Equal(t, "a", a.Name)

	outerMul := child(t, plus, 1)
	require.Equal(t, "*", outerMul.Name)
	require.Len(t, outerMul.Children(), 2)

	innerMul := child(t, outerMul, 0)
	require.Equal(t, "*", innerMul.Name)
	assert.Equal(t, "b", child(t, innerMul, 0).Name)
	assert.Equal(t, "2", child(t, innerMul, 1).Name)

	group := child(t, outerMul, 1)
	require.Equal(t, "(", group.Name)
	inner := child(t, group, 0)
	require.Equal(t, "+", inner.Name)
	assert.Equal(t, "1", child(t, inner, 0).Name)
	assert.Equal(t, "3", child(t, inner, 1).Name)
}

/*
Scenario 3 (spec.md §8):
point :: struct { x int32\n y int32\n }
-> scope[ struct(name="point")[ struct-field(name="x"), struct-field(name="y") ] ].
*/
func TestScenarioStructDeclaration(t *testing.T) {
	root := mustParse(t, "point :: struct {\nx int32\ny int32\n}")

	st := child(t, root, 0)
	require.Equal(t, ast.Struct, st.Type)
	require.Equal(t, "point", st.Name)
	require.Len(t, st.Children(), 2)

	x := child(t, st, 0)
	assert.Equal(t, ast.StructField, x.Type)
	assert.Equal(t, "x", x.Name)
	assert.Equal(t, "int32", x.TypeRef)

	y := child(t, st, 1)
	assert.Equal(t, "y", y.Name)
	assert.Equal(t, "int32", y.TypeRef)
}

/*
Scenario 4 (spec.md §8): increment :: function(a) => a + 1 - the "=>" form
is not in the grammar; the core rejects it at the opening "{" expectation
and returns a function node with arguments but an empty body.
*/
func TestScenarioFunctionFatArrowRejected(t *testing.T) {
	root := mustParse(t, "increment :: function(a) => a + 1")

	fn := child(t, root, 0)
	require.Equal(t, ast.Function, fn.Type)
	require.Equal(t, "increment", fn.Name)
	require.Len(t, fn.Children(), 2)

	args := child(t, fn, 0)
	require.Equal(t, ast.Arguments, args.Type)
	require.Len(t, args.Children(), 1)
	assert.Equal(t, "a", child(t, args, 0).Name)

	body := child(t, fn, 1)
	assert.Equal(t, ast.Scope, body.Type)
	assert.Empty(t, body.Children())
}

/*
Scenario 5 (spec.md §8):
if a > b { x := a }
z := 1
-> scope[ if[ if_true[ condition[ expr(">")[ literal("a"), literal("b") ] ],
                scope[ statement(name="x"){ literal("a") } ] ] ],
          statement(name="z"){ literal("1") } ].
*/
func TestScenarioIfStatement(t *testing.T) {
	root := mustParse(t, "if a > b {\nx := a\n}\nz := 1")

	require.Len(t, root.Children(), 2)

	ifNode := child(t, root, 0)
	require.Equal(t, ast.If, ifNode.Type)
	require.Equal(t, "", ifNode.Name)
	require.Len(t, ifNode.Children(), 1)

	ifTrue := child(t, ifNode, 0)
	require.Equal(t, ast.If, ifTrue.Type)
	require.Equal(t, "if_true", ifTrue.Name)
	require.Len(t, ifTrue.Children(), 2)

	cond := child(t, ifTrue, 0)
	require.Equal(t, ast.Expression, cond.Type)
	require.Equal(t, "condition", cond.Name)
	gt := child(t, cond, 0)
	require.Equal(t, ">", gt.Name)
	assert.Equal(t, "a", child(t, gt, 0).Name)
	assert.Equal(t, "b", child(t, gt, 1).Name)

	body := child(t, ifTrue, 1)
	require.Equal(t, ast.Scope, body.Type)
	stmt := child(t, body, 0)
	assert.Equal(t, "x", stmt.Name)
	assert.Equal(t, "a", child(t, stmt, 0).Name)

	z := child(t, root, 1)
	assert.Equal(t, ast.Statement, z.Type)
	assert.Equal(t, "z", z.Name)
	assert.Equal(t, "1", child(t, z, 0).Name)
}

func TestScenarioIfElseIfChain(t *testing.T) {
	root := mustParse(t, "if a > b {\nx := a\n} else if a < b {\nx := b\n} else {\nx := 0\n}")

	ifNode := child(t, root, 0)
	require.Len(t, ifNode.Children(), 2)

	elseNode := child(t, ifNode, 1)
	require.Equal(t, "else", elseNode.Name)
	require.Len(t, elseNode.Children(), 1)

	nestedIf := child(t, elseNode, 0)
	require.Equal(t, ast.If, nestedIf.Type)
	require.Equal(t, "", nestedIf.Name)
	require.Len(t, nestedIf.Children(), 2)

	innerElse := child(t, nestedIf, 1)
	assert.Equal(t, "else", innerElse.Name)
}

/*
Scenario 6 (spec.md §8):
for i := 0; i < 10; i++ { grid[i] = 0 }
-> scope[ for[ arguments[
     argument-expression[ statement(name="i"){ literal("0") } ],
     argument-expression[ expr("<")[ literal("i"), literal("10") ] ],
     argument-expression[ expr("++")[ literal("i") ] ] ],
   scope[ … ] ] ].
*/
func TestScenarioForLoop(t *testing.T) {
	root := mustParse(t, "for i := 0; i < 10; i++ {\ngrid[i] = 0\n}")

	forNode := child(t, root, 0)
	require.Equal(t, ast.For, forNode.Type)
	require.Len(t, forNode.Children(), 2)

	args := child(t, forNode, 0)
	require.Equal(t, ast.Arguments, args.Type)
	require.Len(t, args.Children(), 3)

	init := child(t, args, 0)
	require.Equal(t, "argument-expression", init.Name)
	initStmt := child(t, init, 0)
	assert.Equal(t, ast.Statement, initStmt.Type)
	assert.Equal(t, "i", initStmt.Name)
	assert.Equal(t, "0", child(t, initStmt, 0).Name)

	cond := child(t, args, 1)
	require.Equal(t, "argument-expression", cond.Name)
	lt := child(t, cond, 0)
	require.Equal(t, "<", lt.Name)
	assert.Equal(t, "i", child(t, lt, 0).Name)
	assert.Equal(t, "10", child(t, lt, 1).Name)

	post := child(t, args, 2)
	require.Equal(t, "argument-expression", post.Name)
	inc := child(t, post, 0)
	require.Equal(t, "++", inc.Name)
	require.Len(t, inc.Children(), 1)
	assert.Equal(t, "i", child(t, inc, 0).Name)

	body := child(t, forNode, 1)
	assert.Equal(t, ast.Scope, body.Type)
}

func TestScenarioForLoopElidedSections(t *testing.T) {
	root := mustParse(t, "for ;; {\n}")

	forNode := child(t, root, 0)
	args := child(t, forNode, 0)
	require.Len(t, args.Children(), 3)

	for i := 0; i < 3; i++ {
		part := child(t, args, i)
		require.Equal(t, "argument-expression", part.Name)
		placeholder := child(t, part, 0)
		assert.Equal(t, ast.Literal, placeholder.Type)
		assert.Equal(t, argumentPartEmpty, placeholder.Name)
	}
}

func TestEmptyInputProducesEmptyScope(t *testing.T) {
	root := mustParse(t, "")
	assert.Equal(t, ast.Scope, root.Type)
	assert.Empty(t, root.Children())
}

func TestWhileLoop(t *testing.T) {
	root := mustParse(t, "while a < b {\nbreak\n}")

	w := child(t, root, 0)
	require.Equal(t, ast.While, w.Type)
	require.Len(t, w.Children(), 2)

	cond := child(t, w, 0)
	require.Equal(t, "condition", cond.Name)

	body := child(t, w, 1)
	brk := child(t, body, 0)
	assert.Equal(t, ast.Break, brk.Type)
}

func TestDoWhileLoop(t *testing.T) {
	root := mustParse(t, "do {\ncontinue\n} while a < b")

	dw := child(t, root, 0)
	require.Equal(t, ast.DoWhile, dw.Type)
	require.Len(t, dw.Children(), 2)

	body := child(t, dw, 0)
	stmt := child(t, body, 0)
	assert.Equal(t, ast.Continue, stmt.Type)

	cond := child(t, dw, 1)
	assert.Equal(t, "condition", cond.Name)
}

func TestFunctionCall(t *testing.T) {
	root := mustParse(t, "a := sum(1, 2, x)")

	stmt := child(t, root, 0)
	call := child(t, stmt, 0)
	require.Equal(t, ast.Call, call.Type)
	require.Equal(t, "sum", call.Name)
	require.Len(t, call.Children(), 3)
	assert.Equal(t, "1", child(t, call, 0).Name)
	assert.Equal(t, "2", child(t, call, 1).Name)
	assert.Equal(t, "x", child(t, call, 2).Name)
}

func TestNestedFunctionCall(t *testing.T) {
	root := mustParse(t, "a := outer(inner(1), 2)")

	stmt := child(t, root, 0)
	outer := child(t, stmt, 0)
	require.Equal(t, "outer", outer.Name)
	require.Len(t, outer.Children(), 2)

	inner := child(t, outer, 0)
	require.Equal(t, ast.Call, inner.Type)
	require.Equal(t, "inner", inner.Name)
	require.Len(t, inner.Children(), 1)
	assert.Equal(t, "1", child(t, inner, 0).Name)
}

func TestTernaryExpression(t *testing.T) {
	root := mustParse(t, "a := b ? 1 : 2")

	stmt := child(t, root, 0)
	ternary := child(t, stmt, 0)
	require.Equal(t, "?", ternary.Name)
	require.Len(t, ternary.Children(), 3)
	assert.Equal(t, "b", child(t, ternary, 0).Name)
	assert.Equal(t, "1", child(t, ternary, 1).Name)
	assert.Equal(t, "2", child(t, ternary, 2).Name)
}

func TestBitwiseOperatorPrecedence(t *testing.T) {
	root := mustParse(t, "a := x & y | z ^ w")

	stmt := child(t, root, 0)
	top := child(t, stmt, 0)
	// "|" binds loosest among the bitwise trio, so it's the outermost node.
	assert.Equal(t, "|", top.Name)
}

func TestNotEqualOperator(t *testing.T) {
	// "!=" must parse as a single binary not-equal node over "a" and "b",
	// not as a dangling "a" statement followed by a bogus unary "!=" over
	// "b" alone.
	root := mustParse(t, "a := x != y")

	stmt := child(t, root, 0)
	top := child(t, stmt, 0)
	assert.Equal(t, "!=", top.Name)
	require.Len(t, top.Children(), 2)
	assert.Equal(t, "x", child(t, top, 0).Name)
	assert.Equal(t, "y", child(t, top, 1).Name)
}

func TestInvalidOperatorYieldsNilProduction(t *testing.T) {
	// ")" with no matching "(" is an invalid lead token for an expression;
	// the statement production yields nothing but the scope loop still
	// makes progress and terminates (spec.md §4.4 "Failure semantics").
	root := mustParse(t, ")")
	assert.NotNil(t, root)
}

func TestDiagnosticsRecordedOnMissingDelimiter(t *testing.T) {
	head := lexer.New([]byte("point :: struct {\nx int32\n")).Run()
	root, diagnostics, err := Parse(head, ast.NewArena())
	require.NoError(t, err)
	require.NotNil(t, root)
	assert.NotEmpty(t, diagnostics)
}
