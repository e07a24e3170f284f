// Package jsonast implements the AST capability traits from internal/astkit
// against the shape every supported compiler actually emits: a tree of
// map[string]any, []any, and scalars decoded from compiler JSON.
package jsonast

import "fmt"

// SyntheticIDKey is the field AssignSyntheticIDs injects into nodes whose
// language does not natively carry a stable id (some Vyper node kinds).
const SyntheticIDKey = "__mgx_id"

// IdSpec implements astkit.Id by reading a configured top-level field off
// a node, falling back to SyntheticIDKey.
type IdSpec struct {
	// Field is the language's native id field, e.g. "id" for Solidity.
	Field string
}

// ID implements astkit.Id.
func (s IdSpec) ID(node any) (uint64, bool) {
	m, ok := node.(map[string]any)
	if !ok {
		return 0, false
	}
	if s.Field != "" {
		if v, ok := m[s.Field]; ok {
			if id, ok := toUint64(v); ok {
				return id, true
			}
		}
	}
	if v, ok := m[SyntheticIDKey]; ok {
		if id, ok := toUint64(v); ok {
			return id, true
		}
	}
	return 0, false
}

func toUint64(v any) (uint64, bool) {
	switch n := v.(type) {
	case float64:
		return uint64(n), true
	case int:
		return uint64(n), true
	case int64:
		return uint64(n), true
	case uint64:
		return n, true
	case string:
		var id uint64
		if _, err := fmt.Sscanf(n, "%d", &id); err == nil {
			return id, true
		}
	}
	return 0, false
}

// AssignSyntheticIDs walks root and stamps SyntheticIDKey onto every
// map[string]any node that lacks a usable id under idSpec, starting the
// counter at next. It returns the next unused counter value, so callers can
// chain it across multiple files sharing an id space (they don't have to;
// ids only need to be unique within a single AST).
func AssignSyntheticIDs(root any, idSpec IdSpec, next uint64) uint64 {
	switch v := root.(type) {
	case map[string]any:
		if _, ok := idSpec.ID(v); !ok {
			v[SyntheticIDKey] = next
			next++
		}
		for _, key := range sortedKeys(v) {
			next = AssignSyntheticIDs(v[key], idSpec, next)
		}
	case []any:
		for _, elem := range v {
			next = AssignSyntheticIDs(elem, idSpec, next)
		}
	}
	return next
}
