// Package astkit defines the language-neutral capability traits the
// mutation engine uses to work with an opaque AST node: identifying it,
// naming its kind, and deciding whether a traversal may visit or mutate it.
package astkit

// Id converts an AST node to a stable, AST-local node id.
type Id interface {
	// ID returns the node's id and true, or false if the encoding carries
	// no id for this node (mgxerr.ErrMissingNodeId is the caller's to raise).
	ID(node any) (uint64, bool)
}

// Namer returns the textual kind of an AST node, e.g. "BinaryOperation".
type Namer interface {
	Name(node any) (string, bool)
}

// Permit answers whether a traversal may visit or mutate a given node under
// the active Permissions.
type Permit interface {
	MayVisit(node any, name string, perm Permissions) bool
	MayMutate(node any, name string, perm Permissions) bool
	MayMutateChildren(node any, name string, perm Permissions) bool
}

// Permissions scopes a traversal to a set of function names and away from a
// set of node kinds. A zero value permits everything.
type Permissions struct {
	// OnlyFunctions restricts mutation to these function names. Empty means
	// no restriction.
	OnlyFunctions map[string]bool

	// SkipKinds names node kinds that must never be visited (their subtree
	// is skipped entirely).
	SkipKinds map[string]bool

	// insideAllowedFunction is set by a Permit implementation while
	// descending inside a function matched by OnlyFunctions, so children of
	// that function don't need their own name to match.
	insideAllowedFunction bool
}

// WithInsideAllowedFunction returns a copy of perm marked as currently
// inside a function permitted by OnlyFunctions.
func (p Permissions) WithInsideAllowedFunction(v bool) Permissions {
	p.insideAllowedFunction = v
	return p
}

// InsideAllowedFunction reports whether the traversal is currently inside a
// function permitted by OnlyFunctions.
func (p Permissions) InsideAllowedFunction() bool {
	return p.insideAllowedFunction
}

// HasFunctionScope reports whether OnlyFunctions restricts the traversal at
// all.
func (p Permissions) HasFunctionScope() bool {
	return len(p.OnlyFunctions) > 0
}
