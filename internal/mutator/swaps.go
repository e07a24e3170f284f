package mutator

import (
	"fmt"
	"math/rand"

	"github.com/mutagenyx/mutagenyx/internal/jsonast"
)

// FunctionSwapArguments implements swapping two arguments of a function
// call that takes two or more.
type FunctionSwapArguments struct {
	CallKinds     map[string]bool
	ArgumentsField string
}

func (a FunctionSwapArguments) Tag() string { return "FunctionSwapArguments" }

func (a FunctionSwapArguments) CanMutate(node map[string]any, kind string) bool {
	if !a.CallKinds[kind] {
		return false
	}
	args, ok := node[a.ArgumentsField].([]any)
	return ok && len(args) >= 2
}

// SiteCount reports the number of distinct unordered argument pairs a call
// with n arguments could swap: C(n,2).
func (a FunctionSwapArguments) SiteCount(node map[string]any) int {
	args, ok := node[a.ArgumentsField].([]any)
	if !ok {
		return 1
	}
	return pairCount(len(args))
}

func (a FunctionSwapArguments) Mutate(node map[string]any, kind string, slot jsonast.Slot, rng *rand.Rand) string {
	args, ok := node[a.ArgumentsField].([]any)
	if !ok {
		return ""
	}
	i, j, ok := pickTwoDistinct(rng, len(args))
	if !ok {
		return ""
	}
	if i > j {
		i, j = j, i
	}
	args[i], args[j] = args[j], args[i]
	node[a.ArgumentsField] = args
	return fmt.Sprintf("swapped arguments %d and %d", i, j)
}

// LinesSwap implements swapping two statements within the same block,
// avoiding return statements so control flow keeps making syntactic sense.
type LinesSwap struct {
	BlockKinds   map[string]bool
	StatementsField string
	ReturnKinds  map[string]bool
	StatementKindOf func(node any) (string, bool)
}

func (a LinesSwap) Tag() string { return "LinesSwap" }

func (a LinesSwap) eligibleIndices(stmts []any) []int {
	out := make([]int, 0, len(stmts))
	for i, s := range stmts {
		m, ok := s.(map[string]any)
		if !ok {
			continue
		}
		if kind, ok := a.StatementKindOf(m); ok && a.ReturnKinds[kind] {
			continue
		}
		out = append(out, i)
	}
	return out
}

func (a LinesSwap) CanMutate(node map[string]any, kind string) bool {
	if !a.BlockKinds[kind] {
		return false
	}
	stmts, ok := node[a.StatementsField].([]any)
	if !ok {
		return false
	}
	return len(a.eligibleIndices(stmts)) >= 2
}

// SiteCount reports the number of distinct unordered statement pairs a
// block with n eligible statements could swap: C(n,2).
func (a LinesSwap) SiteCount(node map[string]any) int {
	stmts, ok := node[a.StatementsField].([]any)
	if !ok {
		return 1
	}
	return pairCount(len(a.eligibleIndices(stmts)))
}

func pairCount(n int) int {
	if n < 2 {
		return 1
	}
	return n * (n - 1) / 2
}

func (a LinesSwap) Mutate(node map[string]any, kind string, slot jsonast.Slot, rng *rand.Rand) string {
	stmts, ok := node[a.StatementsField].([]any)
	if !ok {
		return ""
	}
	eligible := a.eligibleIndices(stmts)
	ei, ej, ok := pickTwoDistinct(rng, len(eligible))
	if !ok {
		return ""
	}
	i, j := eligible[ei], eligible[ej]
	if i > j {
		i, j = j, i
	}
	stmts[i], stmts[j] = stmts[j], stmts[i]
	node[a.StatementsField] = stmts
	return fmt.Sprintf("swapped statements %d and %d", i, j)
}
