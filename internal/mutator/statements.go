package mutator

import (
	"fmt"
	"math/rand"

	"github.com/mutagenyx/mutagenyx/internal/jsonast"
)

// DeleteStatement implements deleting a statement from a block, skipping
// declarations and return statements to avoid trivially breaking
// compilation.
type DeleteStatement struct {
	SkipKinds       map[string]bool
	StatementsField string
}

func (a DeleteStatement) Tag() string { return "DeleteStatement" }

func (a DeleteStatement) CanMutate(node map[string]any, kind string) bool {
	return !a.SkipKinds[kind]
}

// CanMutateSlot restricts DeleteStatement to nodes that are themselves
// elements of a block's statement list, never a node of the same kind
// reached through a field such as an operand or call argument, where
// Slot.Delete is a no-op.
func (a DeleteStatement) CanMutateSlot(slot jsonast.Slot) bool {
	return slot.Index() >= 0 && slot.Field() == a.StatementsField
}

func (a DeleteStatement) Mutate(node map[string]any, kind string, slot jsonast.Slot, rng *rand.Rand) string {
	slot.Delete()
	return "deleted statement"
}

// IfStatement implements replacing the condition of an if statement with
// true, false, or its logical negation.
type IfStatement struct {
	Kind            string
	ConditionField  string
	LiteralBuilder  LiteralBuilder
	NegationBuilder NegationBuilder
}

func (a IfStatement) Tag() string { return "IfStatement" }

func (a IfStatement) CanMutate(node map[string]any, kind string) bool {
	if kind != a.Kind {
		return false
	}
	_, ok := node[a.ConditionField].(map[string]any)
	return ok
}

func (a IfStatement) Mutate(node map[string]any, kind string, slot jsonast.Slot, rng *rand.Rand) string {
	cond, ok := node[a.ConditionField].(map[string]any)
	if !ok {
		return ""
	}
	switch rng.Intn(3) {
	case 0:
		node[a.ConditionField] = a.LiteralBuilder.NewLiteral("bool", true, cond)
		return "replaced condition with true"
	case 1:
		node[a.ConditionField] = a.LiteralBuilder.NewLiteral("bool", false, cond)
		return "replaced condition with false"
	default:
		node[a.ConditionField] = a.NegationBuilder.Negate(cond)
		return "negated condition"
	}
}

// FunctionCall implements replacing a call expression with one of its own
// arguments.
type FunctionCall struct {
	CallKinds      map[string]bool
	ArgumentsField string
}

func (a FunctionCall) Tag() string { return "FunctionCall" }

func (a FunctionCall) CanMutate(node map[string]any, kind string) bool {
	if !a.CallKinds[kind] {
		return false
	}
	args, ok := node[a.ArgumentsField].([]any)
	return ok && len(args) > 0
}

func (a FunctionCall) Mutate(node map[string]any, kind string, slot jsonast.Slot, rng *rand.Rand) string {
	args, ok := node[a.ArgumentsField].([]any)
	if !ok || len(args) == 0 || !slot.Valid() {
		return ""
	}
	i := rng.Intn(len(args))
	slot.Set(args[i])
	return fmt.Sprintf("replaced call with argument %d", i)
}
