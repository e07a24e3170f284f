package jsonast

// Step is one hop of a NodePath: the node itself plus the Slot that
// addresses it inside its parent. The root's Slot is invalid.
type Step struct {
	Node map[string]any
	Slot Slot
}

// WalkPath resolves a sequence of ids, root-first, into the Steps needed to
// reach the target node, using idOf to test each candidate child. It
// returns nil if any id along the way can't be found among the current
// node's descendants.
func WalkPath(root map[string]any, ids []uint64, idOf func(node any) (uint64, bool)) []Step {
	if len(ids) == 0 {
		return nil
	}
	if id, ok := idOf(root); !ok || id != ids[0] {
		return nil
	}
	steps := []Step{{Node: root}}
	current := root
	for _, want := range ids[1:] {
		found := false
		for _, child := range Children(current) {
			if id, ok := idOf(child.Value); ok && id == want {
				steps = append(steps, Step{Node: child.Value, Slot: child.Slot})
				current = child.Value
				found = true
				break
			}
		}
		if !found {
			return nil
		}
	}
	return steps
}
