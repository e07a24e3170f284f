package visitor

import (
	"math/rand"

	"github.com/mutagenyx/mutagenyx/internal/astkit"
	"github.com/mutagenyx/mutagenyx/internal/jsonast"
)

// MutationMaker performs the second of the two mutation-generation passes:
// given a single Site recorded by MutableNodesCounter, it locates that same
// node — by id path, so it works against a freshly cloned copy of the AST
// rather than the one it was counted against — and applies the matching
// algorithm exactly once.
type MutationMaker struct {
	Namer      astkit.Namer
	Id         astkit.Id
	Algorithms map[string]Algorithm
}

// NewMutationMaker indexes algorithms by tag for lookup during Make.
func NewMutationMaker(namer astkit.Namer, id astkit.Id, algorithms []Algorithm) *MutationMaker {
	byTag := make(map[string]Algorithm, len(algorithms))
	for _, a := range algorithms {
		byTag[a.Tag()] = a
	}
	return &MutationMaker{Namer: namer, Id: id, Algorithms: byTag}
}

// Make relocates site in root and applies its algorithm, returning the
// resolved path (root-first) and the algorithm's description so callers can
// splice an explanatory comment near the mutated node. ok is false if the
// path no longer resolves, which only happens if root isn't a clone of the
// tree the site was counted against.
func (m *MutationMaker) Make(root map[string]any, site Site, rng *rand.Rand) (steps []jsonast.Step, description string, ok bool) {
	alg, known := m.Algorithms[site.Algorithm]
	if !known {
		return nil, "", false
	}
	steps = jsonast.WalkPath(root, site.Path, m.Id.ID)
	if steps == nil {
		return nil, "", false
	}
	target := steps[len(steps)-1]
	kind, _ := m.Namer.Name(target.Node)
	description = alg.Mutate(target.Node, kind, target.Slot, rng)
	return steps, description, true
}
