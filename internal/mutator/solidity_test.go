package mutator

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mutagenyx/mutagenyx/internal/jsonast"
)

func TestRequireOnlyMatchesTheRequireCallee(t *testing.T) {
	alg := Require{
		CallKind:        "FunctionCall",
		CalleeField:     "expression",
		CalleeNameField: "name",
		ArgumentsField:  "arguments",
		NegationBuilder: fakeNegationBuilder{},
	}
	cond := map[string]any{"nodeType": "Identifier", "name": "ok"}
	requireCall := map[string]any{
		"nodeType":   "FunctionCall",
		"expression": map[string]any{"nodeType": "Identifier", "name": "require"},
		"arguments":  []any{cond},
	}
	assertCall := map[string]any{
		"nodeType":   "FunctionCall",
		"expression": map[string]any{"nodeType": "Identifier", "name": "assert"},
		"arguments":  []any{cond},
	}

	assert.True(t, alg.CanMutate(requireCall, "FunctionCall"), "expected CanMutate to accept a call to require()")
	assert.False(t, alg.CanMutate(assertCall, "FunctionCall"), "expected CanMutate to reject a call to assert()")

	desc := alg.Mutate(requireCall, "FunctionCall", jsonast.Slot{}, rand.New(rand.NewSource(1)))
	require.Equal(t, "negated argument", desc)

	args, _ := requireCall["arguments"].([]any)
	negated, ok := args[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "!", negated["operator"])
}

func TestUncheckedBlockWrapsTheTargetStatement(t *testing.T) {
	alg := UncheckedBlock{
		SkipKinds:       map[string]bool{"Return": true},
		StatementsField: "statements",
		NewBlock: func(statements []any) map[string]any {
			return map[string]any{"nodeType": "UncheckedBlock", "statements": statements}
		},
	}
	stmt := map[string]any{"nodeType": "ExpressionStatement", "tag": "s"}
	require.True(t, alg.CanMutate(stmt, "ExpressionStatement"), "expected CanMutate to accept a plain expression statement")
	assert.False(t, alg.CanMutate(stmt, "Return"), "expected CanMutate to reject a skipped kind")

	owner := map[string]any{"statements": []any{stmt}}
	slot := jsonast.ListSlot(owner, "statements", 0)
	desc := alg.Mutate(stmt, "ExpressionStatement", slot, rand.New(rand.NewSource(1)))
	require.NotEmpty(t, desc)

	stmts, _ := owner["statements"].([]any)
	wrapped, ok := stmts[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "UncheckedBlock", wrapped["nodeType"])
}

func TestUncheckedBlockCanMutateSlotRejectsFieldSlots(t *testing.T) {
	alg := UncheckedBlock{StatementsField: "statements"}
	owner := map[string]any{"statements": []any{map[string]any{}}, "leftExpression": map[string]any{}}

	assert.True(t, alg.CanMutateSlot(jsonast.ListSlot(owner, "statements", 0)), "expected a statement-list element to be eligible")
	assert.False(t, alg.CanMutateSlot(jsonast.FieldSlot(owner, "leftExpression")), "expected an operand field slot to be rejected, since the printer has no expression-position case for UncheckedBlock")
}

func TestElimDelegateCallOnlyMatchesDelegatecall(t *testing.T) {
	alg := ElimDelegateCall{MemberAccessKind: "MemberAccess", MemberNameField: "memberName"}
	delegate := map[string]any{"nodeType": "MemberAccess", "memberName": "delegatecall"}
	call := map[string]any{"nodeType": "MemberAccess", "memberName": "call"}

	require.True(t, alg.CanMutate(delegate, "MemberAccess"), "expected CanMutate to accept delegatecall")
	assert.False(t, alg.CanMutate(call, "MemberAccess"), "expected CanMutate to reject an already-plain call")

	desc := alg.Mutate(delegate, "MemberAccess", jsonast.Slot{}, rand.New(rand.NewSource(1)))
	require.Equal(t, "replaced delegatecall with call", desc)
	assert.Equal(t, "call", delegate["memberName"])
}
