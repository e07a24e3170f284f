package jsonast

import "testing"

func TestIdSpecReadsNativeField(t *testing.T) {
	spec := IdSpec{Field: "id"}
	node := map[string]any{"id": float64(7)}

	id, ok := spec.ID(node)
	if !ok || id != 7 {
		t.Fatalf("got (%d, %v), want (7, true)", id, ok)
	}
}

func TestIdSpecFallsBackToSyntheticID(t *testing.T) {
	spec := IdSpec{Field: "id"}
	node := map[string]any{SyntheticIDKey: uint64(99)}

	id, ok := spec.ID(node)
	if !ok || id != 99 {
		t.Fatalf("got (%d, %v), want (99, true)", id, ok)
	}
}

func TestIdSpecMissingBothFieldsFails(t *testing.T) {
	spec := IdSpec{Field: "id"}
	if _, ok := spec.ID(map[string]any{}); ok {
		t.Fatal("expected ID to fail on a node with neither field")
	}
}

func TestAssignSyntheticIDsSkipsNodesWithNativeIDs(t *testing.T) {
	spec := IdSpec{Field: "id"}
	root := map[string]any{
		"id": float64(1),
		"child": map[string]any{
			"name": "no id here",
		},
	}

	next := AssignSyntheticIDs(root, spec, 100)

	if _, ok := root[SyntheticIDKey]; ok {
		t.Fatal("a node with a native id should not get a synthetic one")
	}
	child := root["child"].(map[string]any)
	if child[SyntheticIDKey] != uint64(100) {
		t.Fatalf("expected synthetic id 100 on child, got %v", child[SyntheticIDKey])
	}
	if next != 101 {
		t.Fatalf("expected next counter 101, got %d", next)
	}
}
