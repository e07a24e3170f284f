package visitor

import "github.com/mutagenyx/mutagenyx/internal/astkit"

// hasPermissionToMutate reports whether node may itself be the target of a
// mutation under perm, independent of whether it may be visited at all
// (Walk already enforces the visit gate before Visit is ever called).
func hasPermissionToMutate(permit astkit.Permit, node map[string]any, kind string, perm astkit.Permissions) bool {
	return permit.MayMutate(node, kind, perm)
}
