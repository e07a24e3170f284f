package mutator

import (
	"math/rand"

	"github.com/mutagenyx/mutagenyx/internal/jsonast"
)

// Require implements negating the argument of a Solidity require() call.
type Require struct {
	CallKind        string
	CalleeField     string
	CalleeNameField string
	ArgumentsField  string
	NegationBuilder NegationBuilder
}

func (a Require) Tag() string { return "Require" }

func (a Require) isRequireCall(node map[string]any) bool {
	callee, ok := node[a.CalleeField].(map[string]any)
	if !ok {
		return false
	}
	name, _ := callee[a.CalleeNameField].(string)
	return name == "require"
}

func (a Require) CanMutate(node map[string]any, kind string) bool {
	if kind != a.CallKind || !a.isRequireCall(node) {
		return false
	}
	args, ok := node[a.ArgumentsField].([]any)
	return ok && len(args) > 0
}

func (a Require) Mutate(node map[string]any, kind string, slot jsonast.Slot, rng *rand.Rand) string {
	args, ok := node[a.ArgumentsField].([]any)
	if !ok || len(args) == 0 {
		return ""
	}
	cond, ok := args[0].(map[string]any)
	if !ok {
		return ""
	}
	args[0] = a.NegationBuilder.Negate(cond)
	node[a.ArgumentsField] = args
	return "negated argument"
}

// UncheckedBlock implements wrapping a statement in Solidity's
// unchecked{} block.
type UncheckedBlock struct {
	SkipKinds       map[string]bool
	StatementsField string
	NewBlock        func(statements []any) map[string]any
}

func (a UncheckedBlock) Tag() string { return "UncheckedBlock" }

func (a UncheckedBlock) CanMutate(node map[string]any, kind string) bool {
	return !a.SkipKinds[kind]
}

// CanMutateSlot restricts UncheckedBlock to nodes that are themselves
// elements of a block's statement list. Any statement kind outside
// SkipKinds qualifies there, not only expression statements. Drawn against a node
// reached through a field slot (an operand, a call argument), wrapping it
// in an UncheckedBlock node and setting it back into that field would
// produce a node the printer has no expression-position case for, making
// the subexpression vanish from the output.
func (a UncheckedBlock) CanMutateSlot(slot jsonast.Slot) bool {
	return slot.Index() >= 0 && slot.Field() == a.StatementsField
}

func (a UncheckedBlock) Mutate(node map[string]any, kind string, slot jsonast.Slot, rng *rand.Rand) string {
	if !slot.Valid() {
		return ""
	}
	wrapped := a.NewBlock([]any{cloneShallow(node)})
	slot.Set(wrapped)
	return "wrapped statement in unchecked block"
}

func cloneShallow(node map[string]any) map[string]any {
	return jsonast.DeepClone(node).(map[string]any)
}

// ElimDelegateCall implements replacing a delegatecall() member access
// with call().
type ElimDelegateCall struct {
	MemberAccessKind string
	MemberNameField  string
}

func (a ElimDelegateCall) Tag() string { return "ElimDelegateCall" }

func (a ElimDelegateCall) CanMutate(node map[string]any, kind string) bool {
	if kind != a.MemberAccessKind {
		return false
	}
	name, _ := node[a.MemberNameField].(string)
	return name == "delegatecall"
}

func (a ElimDelegateCall) Mutate(node map[string]any, kind string, slot jsonast.Slot, rng *rand.Rand) string {
	node[a.MemberNameField] = "call"
	return "replaced delegatecall with call"
}
