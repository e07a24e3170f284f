package jsonast

import "testing"

type lineComment struct{}

func (lineComment) NewComment(text string) map[string]any {
	return map[string]any{"nodeType": "MutagenyxComment", "text": "// " + text}
}

func TestInsertCommentByPathSplicesBeforeMutatedStatement(t *testing.T) {
	stmt := map[string]any{"nodeType": "ExpressionStatement", "id": float64(2)}
	block := map[string]any{
		"nodeType":   "Block",
		"id":         float64(1),
		"statements": []any{stmt},
	}
	namer := NamerSpec{Field: "nodeType"}
	finder := NewNodeFinder(map[string]string{"Block": "statements"})
	factory := func(parentKind string) (Commenter, bool) {
		if parentKind != "Block" {
			return nil, false
		}
		return lineComment{}, true
	}

	path := []Step{
		{Node: block},
		{Node: stmt, Slot: ListSlot(block, "statements", 0)},
	}

	ok := InsertCommentByPath(path, "ArithmeticBinaryOp Mutator: changed '+' to '-'", finder, namer, factory)
	if !ok {
		t.Fatal("expected InsertCommentByPath to find a legal comment site")
	}

	statements := block["statements"].([]any)
	if len(statements) != 2 {
		t.Fatalf("expected 2 statements after insertion, got %d", len(statements))
	}
	comment := statements[0].(map[string]any)
	if comment["nodeType"] != "MutagenyxComment" {
		t.Fatalf("expected the first statement to be the inserted comment, got %v", comment["nodeType"])
	}
	if comment["text"] != "// ArithmeticBinaryOp Mutator: changed '+' to '-'" {
		t.Fatalf("unexpected comment text: %v", comment["text"])
	}
	if statements[1].(map[string]any)["id"] != float64(2) {
		t.Fatal("the original statement should still follow the comment")
	}
}

func TestInsertCommentByPathReturnsFalseWithoutLegalSite(t *testing.T) {
	root := map[string]any{"nodeType": "Literal", "id": float64(1)}
	namer := NamerSpec{Field: "nodeType"}
	finder := NewNodeFinder(nil)
	factory := func(string) (Commenter, bool) { return nil, false }

	ok := InsertCommentByPath([]Step{{Node: root}}, "text", finder, namer, factory)
	if ok {
		t.Fatal("expected false for a path shorter than two steps")
	}
}

func TestWalkPathResolvesByID(t *testing.T) {
	leaf := map[string]any{"id": float64(3)}
	root := map[string]any{
		"id":    float64(1),
		"nodes": []any{map[string]any{"id": float64(2), "child": leaf}},
	}
	idOf := func(node any) (uint64, bool) {
		m, ok := node.(map[string]any)
		if !ok {
			return 0, false
		}
		v, ok := m["id"].(float64)
		return uint64(v), ok
	}

	steps := WalkPath(root, []uint64{1, 2, 3}, idOf)
	if len(steps) != 3 {
		t.Fatalf("expected 3 steps, got %d", len(steps))
	}
	if steps[2].Node["id"] != float64(3) {
		t.Fatalf("expected the last step to be the leaf node, got %v", steps[2].Node)
	}
}

func TestWalkPathFailsOnUnknownID(t *testing.T) {
	root := map[string]any{"id": float64(1)}
	idOf := func(node any) (uint64, bool) {
		m, ok := node.(map[string]any)
		if !ok {
			return 0, false
		}
		v, ok := m["id"].(float64)
		return uint64(v), ok
	}

	if steps := WalkPath(root, []uint64{1, 99}, idOf); steps != nil {
		t.Fatalf("expected nil steps for an unresolvable path, got %v", steps)
	}
}
