package jsonast

// NamerSpec implements astkit.Namer by reading a configured field, e.g.
// "nodeType" for Solidity's solc AST, "ast_type" for Vyper's.
type NamerSpec struct {
	Field string
}

// Name implements astkit.Namer.
func (s NamerSpec) Name(node any) (string, bool) {
	m, ok := node.(map[string]any)
	if !ok {
		return "", false
	}
	v, ok := m[s.Field]
	if !ok {
		return "", false
	}
	name, ok := v.(string)
	return name, ok
}
