package mutator

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"

	"github.com/mutagenyx/mutagenyx/internal/jsonast"
)

// Integer implements replacing an integer constant with a nearby or random
// value: existing+1, existing-1, or a fresh random value in [0, Max].
type Integer struct {
	Kind       string
	ValueField string
	// Max returns the largest value the random choice may produce for
	// node. It is capped at what fits a uint64, so it need not be the
	// upper bound of node's declared type.
	Max func(node map[string]any) uint64
}

func (a Integer) Tag() string { return "Integer" }

func (a Integer) CanMutate(node map[string]any, kind string) bool {
	if kind != a.Kind {
		return false
	}
	_, ok := parseIntField(node, a.ValueField)
	return ok
}

func (a Integer) Mutate(node map[string]any, kind string, slot jsonast.Slot, rng *rand.Rand) string {
	v, ok := parseIntField(node, a.ValueField)
	if !ok {
		return ""
	}
	max := uint64(math.MaxInt64)
	if a.Max != nil {
		if m := a.Max(node); m > 0 {
			max = m
		}
	}
	var next string
	switch rng.Intn(3) {
	case 0:
		next = strconv.FormatInt(v+1, 10)
	case 1:
		next = strconv.FormatInt(v-1, 10)
	default:
		if max == math.MaxUint64 {
			next = strconv.FormatUint(rng.Uint64(), 10)
		} else {
			next = strconv.FormatUint(rng.Uint64()%(max+1), 10)
		}
	}
	node[a.ValueField] = next
	return fmt.Sprintf("changed %d to %s", v, next)
}

func parseIntField(node map[string]any, field string) (int64, bool) {
	switch v := node[field].(type) {
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		return n, err == nil
	case float64:
		return int64(v), true
	default:
		return 0, false
	}
}

// Assignment implements replacing the right hand side of an assignment
// with a fresh, type-appropriate literal.
type Assignment struct {
	Kind           string
	RightField     string
	InferKind      func(rhs map[string]any) (string, bool)
	LiteralBuilder LiteralBuilder
}

func (a Assignment) Tag() string { return "Assignment" }

func (a Assignment) CanMutate(node map[string]any, kind string) bool {
	if kind != a.Kind {
		return false
	}
	rhs, ok := node[a.RightField].(map[string]any)
	if !ok {
		return false
	}
	_, ok = a.InferKind(rhs)
	return ok
}

func (a Assignment) Mutate(node map[string]any, kind string, slot jsonast.Slot, rng *rand.Rand) string {
	rhs, ok := node[a.RightField].(map[string]any)
	if !ok {
		return ""
	}
	litKind, ok := a.InferKind(rhs)
	if !ok {
		return ""
	}
	var value any
	switch litKind {
	case "bool":
		value = rng.Intn(2) == 0
	case "string":
		value = fmt.Sprintf("mgx%d", rng.Uint32())
	default:
		value = strconv.FormatUint(rng.Uint64()%1_000_000, 10)
		litKind = "int"
	}
	node[a.RightField] = a.LiteralBuilder.NewLiteral(litKind, value, rhs)
	return fmt.Sprintf("replaced right hand side with %v", value)
}
