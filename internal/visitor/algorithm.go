package visitor

import (
	"math/rand"

	"github.com/mutagenyx/mutagenyx/internal/jsonast"
)

// Algorithm is a single mutation operator. A traversal asks it whether a
// node is a legal mutation site, and, once a site is chosen, has it rewrite
// the node in place.
type Algorithm interface {
	// Tag is the algorithm's stable identifier, e.g. "ArithmeticBinaryOp".
	Tag() string

	// CanMutate reports whether node (of the given kind) is a legal site
	// for this algorithm.
	CanMutate(node map[string]any, kind string) bool

	// Mutate rewrites node in place and returns a short human-readable
	// description of what changed, used verbatim in the inserted comment.
	// slot addresses node inside its parent, for algorithms that replace
	// or remove the node itself rather than one of its fields
	// (DeleteStatement, FunctionCall, UncheckedBlock).
	Mutate(node map[string]any, kind string, slot jsonast.Slot, rng *rand.Rand) string
}

// SlotScoped is implemented by algorithms that are only legal for a node
// sitting in a particular position within its parent, not for any node of
// the right kind reached by any path — DeleteStatement and UncheckedBlock
// only apply to a node that is itself an element of a block's statement
// list, never to the same node kind reached through an unrelated field
// (an operand, a call argument, a condition).
type SlotScoped interface {
	// CanMutateSlot reports whether slot is a legal position for this
	// algorithm, in addition to whatever CanMutate already checked about
	// the node itself.
	CanMutateSlot(slot jsonast.Slot) bool
}

// SiteMultiplicity is implemented by algorithms whose single legal node can
// yield more than one distinct mutant, such as the swap algorithms: a block
// of n statements has C(n,2) distinct pairwise swaps, not one. The counting
// pass asks for this count so the requested-mutants bound (spec invariant:
// emitted mutants = min(requested, Σ sites)) reflects the true number of
// distinct outcomes rather than one opportunity per node.
type SiteMultiplicity interface {
	// SiteCount reports how many distinct mutants this algorithm could draw
	// from node, which CanMutate has already confirmed is a legal site. It
	// must return at least 1.
	SiteCount(node map[string]any) int
}
