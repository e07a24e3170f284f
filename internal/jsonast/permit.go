package jsonast

import "github.com/mutagenyx/mutagenyx/internal/astkit"

// PermitSpec implements astkit.Permit for a JSON AST. It gates visiting on
// node kind (SkipKinds) and gates mutating on --function scoping
// (Permissions.OnlyFunctions), unlocked once traversal is inside a matching
// function declaration.
type PermitSpec struct {
	// FunctionKinds names the node kinds that declare a function, method,
	// or entry point whose own name gates --function scoping, e.g.
	// "FunctionDefinition" for Solidity.
	FunctionKinds map[string]bool

	// NameField holds a function node's declared name, e.g. "name".
	NameField string
}

func (s PermitSpec) declaredName(node any) (string, bool) {
	m, ok := node.(map[string]any)
	if !ok {
		return "", false
	}
	v, ok := m[s.NameField]
	if !ok {
		return "", false
	}
	name, ok := v.(string)
	return name, ok
}

// MayVisit implements astkit.Permit. Any node kind named in perm.SkipKinds
// has its whole subtree skipped.
func (s PermitSpec) MayVisit(node any, name string, perm astkit.Permissions) bool {
	if name == "" {
		return true
	}
	return !perm.SkipKinds[name]
}

// MayMutate implements astkit.Permit. With no function scope, everything is
// mutable. With a function scope, a node is mutable once the traversal is
// already inside a matching function, or if the node is itself a function
// declaration matching OnlyFunctions.
func (s PermitSpec) MayMutate(node any, name string, perm astkit.Permissions) bool {
	if !perm.HasFunctionScope() {
		return true
	}
	if perm.InsideAllowedFunction() {
		return true
	}
	if s.FunctionKinds[name] {
		if fname, ok := s.declaredName(node); ok {
			return perm.OnlyFunctions[fname]
		}
	}
	return false
}

// MayMutateChildren implements astkit.Permit, deciding whether descending
// into node's children should carry forward (or newly grant) the "inside an
// allowed function" state that unlocks MayMutate for the whole subtree.
func (s PermitSpec) MayMutateChildren(node any, name string, perm astkit.Permissions) bool {
	if !perm.HasFunctionScope() || perm.InsideAllowedFunction() {
		return true
	}
	if s.FunctionKinds[name] {
		if fname, ok := s.declaredName(node); ok {
			return perm.OnlyFunctions[fname]
		}
	}
	return false
}
