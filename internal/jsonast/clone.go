package jsonast

// DeepClone copies a decoded JSON value (map[string]any, []any, or a
// scalar) recursively. Mutation generation clones the whole AST once per
// candidate mutant rather than mutating the shared parse tree, so a bad
// mutation site or write failure never corrupts the tree other sites still
// need to visit.
func DeepClone(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = DeepClone(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = DeepClone(val)
		}
		return out
	default:
		return v
	}
}
