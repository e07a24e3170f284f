package visitor

import (
	"github.com/mutagenyx/mutagenyx/internal/astkit"
	"github.com/mutagenyx/mutagenyx/internal/jsonast"
)

// Site names one legal (algorithm, node) mutation opportunity found during
// a counting pass.
type Site struct {
	Algorithm string
	Path      []uint64
}

// MutableNodesCounter runs the first of the two mutation-generation
// passes: it visits every node reachable under the active Permissions and
// records, per algorithm, every node that algorithm could legally mutate.
// It never modifies the AST.
type MutableNodesCounter struct {
	BaseVisitor

	Namer      astkit.Namer
	Id         astkit.Id
	Permit     astkit.Permit
	Algorithms []Algorithm

	Sites []Site
	path  []uint64
}

// NewMutableNodesCounter builds a counter for the given algorithm set.
func NewMutableNodesCounter(namer astkit.Namer, id astkit.Id, permit astkit.Permit, algorithms []Algorithm) *MutableNodesCounter {
	return &MutableNodesCounter{Namer: namer, Id: id, Permit: permit, Algorithms: algorithms}
}

// Count walks root under perm and returns every legal mutation site found.
func (c *MutableNodesCounter) Count(root map[string]any, perm astkit.Permissions) []Site {
	c.Sites = nil
	c.path = nil
	Walk(root, c.Namer, c.Permit, perm, c)
	return c.Sites
}

// OnEnter and OnExit maintain c.path, the id chain from root to the node
// currently being visited, so a recorded Site can be relocated later
// against a fresh clone of the AST.
func (c *MutableNodesCounter) OnEnter(node map[string]any, kind string, slot jsonast.Slot) {
	id, _ := c.Id.ID(node)
	c.path = append(c.path, id)
}

func (c *MutableNodesCounter) OnExit(node map[string]any, kind string, slot jsonast.Slot) {
	c.path = c.path[:len(c.path)-1]
}

func (c *MutableNodesCounter) Visit(node map[string]any, kind string, slot jsonast.Slot, perm astkit.Permissions) bool {
	if !hasPermissionToMutate(c.Permit, node, kind, perm) {
		return false
	}
	for _, alg := range c.Algorithms {
		if !alg.CanMutate(node, kind) {
			continue
		}
		if s, ok := alg.(SlotScoped); ok && !s.CanMutateSlot(slot) {
			continue
		}
		multiplicity := 1
		if m, ok := alg.(SiteMultiplicity); ok {
			multiplicity = m.SiteCount(node)
		}
		for i := 0; i < multiplicity; i++ {
			path := make([]uint64, len(c.path))
			copy(path, c.path)
			c.Sites = append(c.Sites, Site{Algorithm: alg.Tag(), Path: path})
		}
	}
	return false
}
