package jsonast

import "sort"

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Slot identifies where a node value lives inside its parent container, so
// a mutator can replace, remove, or swap it without re-walking the tree
// from the root. A zero Slot is invalid: some nodes (the AST root, or
// elements of a list nested inside another list) aren't addressable by a
// single owner/key/index triple and traverse without one.
type Slot struct {
	owner map[string]any
	key   string
	index int // -1 when the value sits directly at owner[key]
}

// FieldSlot addresses a node stored directly at owner[key].
func FieldSlot(owner map[string]any, key string) Slot {
	return Slot{owner: owner, key: key, index: -1}
}

// ListSlot addresses a node stored at owner[key].([]any)[index].
func ListSlot(owner map[string]any, key string, index int) Slot {
	return Slot{owner: owner, key: key, index: index}
}

// Valid reports whether the slot names an owner map.
func (s Slot) Valid() bool { return s.owner != nil }

// Field returns the field name the slot addresses.
func (s Slot) Field() string { return s.key }

// Index returns the list index the slot addresses, or -1 for a field slot.
func (s Slot) Index() int { return s.index }

// Get returns the value currently addressed by the slot.
func (s Slot) Get() any {
	if !s.Valid() {
		return nil
	}
	if s.index < 0 {
		return s.owner[s.key]
	}
	arr, _ := s.owner[s.key].([]any)
	if s.index < 0 || s.index >= len(arr) {
		return nil
	}
	return arr[s.index]
}

// Set overwrites the value addressed by the slot.
func (s Slot) Set(v any) {
	if !s.Valid() {
		return
	}
	if s.index < 0 {
		s.owner[s.key] = v
		return
	}
	arr, _ := s.owner[s.key].([]any)
	if s.index < len(arr) {
		arr[s.index] = v
		s.owner[s.key] = arr
	}
}

// Delete removes the element from its owning list, shifting later elements
// down. It is a no-op returning false for a field slot, since a struct
// field can't be removed, only overwritten.
func (s Slot) Delete() bool {
	if !s.Valid() || s.index < 0 {
		return false
	}
	arr, ok := s.owner[s.key].([]any)
	if !ok || s.index >= len(arr) {
		return false
	}
	out := make([]any, 0, len(arr)-1)
	out = append(out, arr[:s.index]...)
	out = append(out, arr[s.index+1:]...)
	s.owner[s.key] = out
	return true
}

// SwapInList exchanges two elements of the list field owner[key] in place.
func SwapInList(owner map[string]any, key string, i, j int) bool {
	arr, ok := owner[key].([]any)
	if !ok || i < 0 || j < 0 || i >= len(arr) || j >= len(arr) {
		return false
	}
	arr[i], arr[j] = arr[j], arr[i]
	return true
}

// Child pairs a visitable node with the Slot needed to replace it in place.
type Child struct {
	Slot  Slot
	Value map[string]any
}

// Children returns node's direct AST-node children in deterministic order:
// map fields in sorted key order, list fields in index order. Scalars and
// other non-node values are not visitable and are skipped.
func Children(node map[string]any) []Child {
	var out []Child
	for _, key := range sortedKeys(node) {
		switch v := node[key].(type) {
		case map[string]any:
			out = append(out, Child{Slot: FieldSlot(node, key), Value: v})
		case []any:
			collectListChildren(node, key, v, &out)
		}
	}
	return out
}

func collectListChildren(owner map[string]any, key string, arr []any, out *[]Child) {
	for i, elem := range arr {
		switch v := elem.(type) {
		case map[string]any:
			*out = append(*out, Child{Slot: ListSlot(owner, key, i), Value: v})
		case []any:
			for _, nested := range v {
				if m, ok := nested.(map[string]any); ok {
					*out = append(*out, Child{Value: m})
				}
			}
		}
	}
}
