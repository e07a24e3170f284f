package solidity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPrettyPrintRendersArithmeticExpression checks that a minimal
// contract/function/return-binary tree round-trips to readable Solidity,
// since every mutation scenario test depends on PrettyPrint faithfully
// reflecting a mutated operator or callee.
func TestPrettyPrintRendersArithmeticExpression(t *testing.T) {
	two := map[string]any{"id": float64(1), "nodeType": "Literal", "value": "2"}
	three := map[string]any{"id": float64(2), "nodeType": "Literal", "value": "3"}
	binary := map[string]any{"id": float64(3), "nodeType": "BinaryOperation", "operator": "+", "leftExpression": two, "rightExpression": three}
	ret := map[string]any{"id": float64(4), "nodeType": "Return", "expression": binary}
	block := map[string]any{"id": float64(5), "nodeType": "Block", "statements": []any{ret}}
	fn := map[string]any{"id": float64(6), "nodeType": "FunctionDefinition", "name": "f", "body": block, "visibility": "public"}
	contract := map[string]any{"id": float64(7), "nodeType": "ContractDefinition", "name": "C", "nodes": []any{fn}}
	root := map[string]any{"id": float64(8), "nodeType": "SourceUnit", "nodes": []any{contract}}

	out, err := New().PrettyPrint(context.Background(), root)
	require.NoError(t, err)

	src := string(out)
	assert.Contains(t, src, "contract C {")
	assert.Contains(t, src, "function f() public")
	assert.Contains(t, src, "return 2 + 3;")
}

// TestPrettyPrintParenthesizesNegatedCompoundExpressions guards against a
// regression where `!(a && b)` printed as `!a && b`: a prefix UnaryOperation
// wrapping a BinaryOperation must parenthesize the operand, since solc's AST
// represents boolean, comparison, and arithmetic operators with the same
// BinaryOperation node and the printer has no other way to convey that the
// negation covers the whole expression rather than just its left operand.
func TestPrettyPrintParenthesizesNegatedCompoundExpressions(t *testing.T) {
	a := map[string]any{"id": float64(1), "nodeType": "Identifier", "name": "a"}
	b := map[string]any{"id": float64(2), "nodeType": "Identifier", "name": "b"}
	cond := map[string]any{"id": float64(3), "nodeType": "BinaryOperation", "operator": "&&", "leftExpression": a, "rightExpression": b}
	negated := map[string]any{"id": float64(4), "nodeType": "UnaryOperation", "operator": "!", "prefix": true, "subExpression": cond}
	stmt := map[string]any{"id": float64(5), "nodeType": "ExpressionStatement", "expression": negated}
	block := map[string]any{"id": float64(6), "nodeType": "Block", "statements": []any{stmt}}
	fn := map[string]any{"id": float64(7), "nodeType": "FunctionDefinition", "name": "f", "body": block, "visibility": "public"}
	contract := map[string]any{"id": float64(8), "nodeType": "ContractDefinition", "name": "C", "nodes": []any{fn}}
	root := map[string]any{"id": float64(9), "nodeType": "SourceUnit", "nodes": []any{contract}}

	out, err := New().PrettyPrint(context.Background(), root)
	require.NoError(t, err)

	assert.Contains(t, string(out), "!(a && b)")
}

func TestAlgorithmsIncludesGenericAndSolidityOnlyTags(t *testing.T) {
	var tags []string
	for _, a := range New().Algorithms() {
		tags = append(tags, a.Tag())
	}
	for _, want := range []string{"ArithmeticBinaryOp", "UnaryOp", "Require", "UncheckedBlock", "ElimDelegateCall"} {
		assert.Contains(t, tags, want)
	}
}
