// Package visitor implements the generic, permission-aware traversal that
// counts and performs mutations over a decoded JSON AST. The traversal
// itself never knows what a mutation is; it only decides, per node,
// whether it may be visited at all and whether descendants are newly
// unlocked for mutation by --function scoping. What happens at each
// visited node is entirely up to the Visitor implementation.
package visitor

import (
	"github.com/mutagenyx/mutagenyx/internal/astkit"
	"github.com/mutagenyx/mutagenyx/internal/jsonast"
)

// Visitor observes a traversal over a JSON AST. Every hook receives the
// node's Slot, i.e. how to reach it from its parent, since several
// mutations (deleting a statement, swapping two list elements) act on the
// node's position rather than its fields.
type Visitor interface {
	// OnEnter fires for every node before the permission check, even one
	// that will be skipped outright.
	OnEnter(node map[string]any, kind string, slot jsonast.Slot)

	// Visit fires after the node passes the visit-permission check. perm is
	// the effective Permissions at this node, already carrying
	// InsideAllowedFunction if an ancestor unlocked it. Returning true
	// stops the whole traversal immediately.
	Visit(node map[string]any, kind string, slot jsonast.Slot, perm astkit.Permissions) bool

	// VisitChildren reports whether the generic algorithm should recurse
	// into node's children itself. A visitor doing its own child recursion
	// (a pretty printer walking fields in a fixed grammar order) returns
	// false here and recurses on its own from within Visit.
	VisitChildren(node map[string]any, kind string) bool

	// OnStartVisitChildren and OnEndVisitChildren bracket descent into
	// node's children when VisitChildren returned true.
	OnStartVisitChildren(node map[string]any, kind string)
	OnEndVisitChildren(node map[string]any, kind string)

	// OnExit fires for every node whose OnEnter fired, in the reverse
	// order, whether or not the traversal descended into its children.
	OnExit(node map[string]any, kind string, slot jsonast.Slot)
}

// BaseVisitor supplies no-op defaults for every Visitor hook so concrete
// visitors only implement what they need.
type BaseVisitor struct{}

func (BaseVisitor) OnEnter(map[string]any, string, jsonast.Slot) {}
func (BaseVisitor) Visit(map[string]any, string, jsonast.Slot, astkit.Permissions) bool {
	return false
}
func (BaseVisitor) VisitChildren(map[string]any, string) bool   { return true }
func (BaseVisitor) OnStartVisitChildren(map[string]any, string) {}
func (BaseVisitor) OnEndVisitChildren(map[string]any, string)   {}
func (BaseVisitor) OnExit(map[string]any, string, jsonast.Slot) {}

// Walk drives v over root under perm, using namer to name nodes and permit
// to gate visiting and to decide when descending unlocks mutate-permission
// for a subtree (--function scoping). It returns true if the traversal was
// stopped early by a Visit call.
func Walk(root map[string]any, namer astkit.Namer, permit astkit.Permit, perm astkit.Permissions, v Visitor) bool {
	return walk(root, jsonast.Slot{}, namer, permit, perm, v)
}

func walk(node map[string]any, slot jsonast.Slot, namer astkit.Namer, permit astkit.Permit, perm astkit.Permissions, v Visitor) bool {
	kind, _ := namer.Name(node)
	v.OnEnter(node, kind, slot)

	if !permit.MayVisit(node, kind, perm) {
		v.OnExit(node, kind, slot)
		return false
	}

	if v.Visit(node, kind, slot, perm) {
		v.OnExit(node, kind, slot)
		return true
	}

	if v.VisitChildren(node, kind) {
		v.OnStartVisitChildren(node, kind)
		childPerm := perm
		if permit.MayMutateChildren(node, kind, perm) {
			childPerm = perm.WithInsideAllowedFunction(true)
		}
		for _, child := range jsonast.Children(node) {
			if walk(child.Value, child.Slot, namer, permit, childPerm, v) {
				v.OnEndVisitChildren(node, kind)
				v.OnExit(node, kind, slot)
				return true
			}
		}
		v.OnEndVisitChildren(node, kind)
	}

	v.OnExit(node, kind, slot)
	return false
}
