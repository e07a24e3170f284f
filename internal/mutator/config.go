package mutator

import "math/rand"

// OperatorCodec reads and writes the operator carried by a binary or unary
// expression node. Solidity's solc AST stores it as a plain string field;
// a language that nests the operator in a sub-node implements OperatorCodec
// itself rather than using StringFieldCodec.
type OperatorCodec interface {
	Get(node map[string]any) (string, bool)
	Set(node map[string]any, op string)
}

// StringFieldCodec implements OperatorCodec for a plain string field.
type StringFieldCodec struct{ Field string }

func (c StringFieldCodec) Get(node map[string]any) (string, bool) {
	v, ok := node[c.Field].(string)
	return v, ok
}

func (c StringFieldCodec) Set(node map[string]any, op string) { node[c.Field] = op }

// LiteralBuilder constructs a language's node shape for a scalar literal,
// modeled after an existing node so the replacement carries compatible
// type metadata. kind is "int", "bool", or "string".
type LiteralBuilder interface {
	NewLiteral(kind string, value any, like map[string]any) map[string]any
}

// NegationBuilder wraps an expression node in a language's logical
// negation, e.g. Solidity's UnaryOperation{operator: "!", prefix: true}.
type NegationBuilder interface {
	Negate(expr map[string]any) map[string]any
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func otherThan(set []string, exclude string) []string {
	out := make([]string, 0, len(set))
	for _, s := range set {
		if s != exclude {
			out = append(out, s)
		}
	}
	return out
}

func kindSet(kinds ...string) map[string]bool {
	m := make(map[string]bool, len(kinds))
	for _, k := range kinds {
		m[k] = true
	}
	return m
}

// pickTwoDistinct returns two distinct indices in [0,n) in random order, or
// ok=false if n < 2.
func pickTwoDistinct(rng *rand.Rand, n int) (i, j int, ok bool) {
	if n < 2 {
		return 0, 0, false
	}
	i = rng.Intn(n)
	j = rng.Intn(n - 1)
	if j >= i {
		j++
	}
	return i, j, true
}
