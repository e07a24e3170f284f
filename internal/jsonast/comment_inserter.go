package jsonast

import "github.com/mutagenyx/mutagenyx/internal/astkit"

// InsertCommentByPath records why a mutation happened by splicing a comment
// node into the AST near the mutated node, so the pretty-printed mutant
// source carries a human-readable marker.
//
// It walks path from the mutated node's parent back toward the root
// (skipping the mutated node itself, since expression-level positions are
// rarely legal comment sites), looking for the first ancestor whose kind
// names a statement-list field that directly contains the next step down.
// The comment is spliced into that list immediately before the matching
// element. It returns false, non-fatally, if no ancestor along the path
// offers a legal insertion site.
func InsertCommentByPath(path []Step, text string, finder NodeFinder, namer astkit.Namer, factory CommenterFactory) bool {
	if len(path) < 2 {
		return false
	}
	for i := len(path) - 2; i >= 0; i-- {
		ancestor := path[i].Node
		child := path[i+1]
		if child.Slot.Index() < 0 {
			continue
		}
		kind, ok := namer.Name(ancestor)
		if !ok {
			continue
		}
		listField, ok := finder.StatementListField(kind)
		if !ok || listField != child.Slot.Field() {
			continue
		}
		commenter, ok := factory(kind)
		if !ok {
			continue
		}
		arr, ok := ancestor[listField].([]any)
		if !ok {
			continue
		}
		idx := child.Slot.Index()
		if idx < 0 || idx > len(arr) {
			continue
		}
		comment := commenter.NewComment(text)
		out := make([]any, 0, len(arr)+1)
		out = append(out, arr[:idx]...)
		out = append(out, comment)
		out = append(out, arr[idx:]...)
		ancestor[listField] = out
		return true
	}
	return false
}
