package mutator

import (
	"fmt"
	"math/rand"

	"github.com/mutagenyx/mutagenyx/internal/jsonast"
)

// BinaryOperatorSubstitution implements the five binary operator-class
// algorithms (arithmetic, logical, bitwise, bitshift, comparison): find a
// binary expression whose operator is in Operators, and replace it with a
// different member of the same set.
type BinaryOperatorSubstitution struct {
	TagName   string
	Kinds     map[string]bool
	Codec     OperatorCodec
	Operators []string
}

func (a BinaryOperatorSubstitution) Tag() string { return a.TagName }

func (a BinaryOperatorSubstitution) CanMutate(node map[string]any, kind string) bool {
	if !a.Kinds[kind] {
		return false
	}
	op, ok := a.Codec.Get(node)
	if !ok {
		return false
	}
	return contains(a.Operators, op)
}

func (a BinaryOperatorSubstitution) Mutate(node map[string]any, kind string, slot jsonast.Slot, rng *rand.Rand) string {
	op, ok := a.Codec.Get(node)
	if !ok {
		return ""
	}
	choices := otherThan(a.Operators, op)
	if len(choices) == 0 {
		return ""
	}
	replacement := choices[rng.Intn(len(choices))]
	a.Codec.Set(node, replacement)
	return fmt.Sprintf("changed '%s' to '%s'", op, replacement)
}

// UnaryOperatorSubstitution implements UnaryOp: replace a unary operator
// with a different one from the same prefix/postfix operator set, without
// converting a prefix expression into a postfix one or vice versa.
type UnaryOperatorSubstitution struct {
	Kinds           map[string]bool
	Codec           OperatorCodec
	IsPrefix        func(node map[string]any) bool
	PrefixOperators []string
	PostfixOperators []string
}

func (a UnaryOperatorSubstitution) Tag() string { return "UnaryOp" }

func (a UnaryOperatorSubstitution) operatorSet(node map[string]any) []string {
	if a.IsPrefix(node) {
		return a.PrefixOperators
	}
	return a.PostfixOperators
}

func (a UnaryOperatorSubstitution) CanMutate(node map[string]any, kind string) bool {
	if !a.Kinds[kind] {
		return false
	}
	op, ok := a.Codec.Get(node)
	if !ok {
		return false
	}
	return contains(a.operatorSet(node), op)
}

func (a UnaryOperatorSubstitution) Mutate(node map[string]any, kind string, slot jsonast.Slot, rng *rand.Rand) string {
	op, ok := a.Codec.Get(node)
	if !ok {
		return ""
	}
	choices := otherThan(a.operatorSet(node), op)
	if len(choices) == 0 {
		return ""
	}
	replacement := choices[rng.Intn(len(choices))]
	a.Codec.Set(node, replacement)
	return fmt.Sprintf("changed '%s' to '%s'", op, replacement)
}

// OperatorSwapArguments implements swapping the left and right operands of
// a binary expression whose operator is non-commutative.
type OperatorSwapArguments struct {
	Kinds      map[string]bool
	Codec      OperatorCodec
	Operators  []string
	LeftField  string
	RightField string
}

func (a OperatorSwapArguments) Tag() string { return "OperatorSwapArguments" }

func (a OperatorSwapArguments) CanMutate(node map[string]any, kind string) bool {
	if !a.Kinds[kind] {
		return false
	}
	op, ok := a.Codec.Get(node)
	if !ok {
		return false
	}
	return contains(a.Operators, op)
}

func (a OperatorSwapArguments) Mutate(node map[string]any, kind string, slot jsonast.Slot, rng *rand.Rand) string {
	left, right := node[a.LeftField], node[a.RightField]
	node[a.LeftField], node[a.RightField] = right, left
	return "swapped left and right operands"
}
