package visitor_test

import (
	"math/rand"
	"testing"

	"github.com/mutagenyx/mutagenyx/internal/astkit"
	"github.com/mutagenyx/mutagenyx/internal/language/solidity"
	"github.com/mutagenyx/mutagenyx/internal/visitor"
)

// arithmeticContract builds a minimal solc-compact-json-shaped AST for:
//
//	contract C {
//	    function add(uint a, uint b) public {
//	        a = a + b;
//	    }
//	}
func arithmeticContract() map[string]any {
	binary := map[string]any{
		"id":              float64(4),
		"nodeType":        "BinaryOperation",
		"operator":        "+",
		"leftExpression":  map[string]any{"id": float64(5), "nodeType": "Identifier", "name": "a"},
		"rightExpression": map[string]any{"id": float64(6), "nodeType": "Identifier", "name": "b"},
	}
	assignment := map[string]any{
		"id":            float64(3),
		"nodeType":      "Assignment",
		"leftHandSide":  map[string]any{"id": float64(7), "nodeType": "Identifier", "name": "a"},
		"rightHandSide": binary,
	}
	stmt := map[string]any{
		"id":         float64(2),
		"nodeType":   "ExpressionStatement",
		"expression": assignment,
	}
	body := map[string]any{
		"id":         float64(8),
		"nodeType":   "Block",
		"statements": []any{stmt},
	}
	fn := map[string]any{
		"id":       float64(1),
		"nodeType": "FunctionDefinition",
		"name":     "add",
		"body":     body,
	}
	contract := map[string]any{
		"id":       float64(9),
		"nodeType": "ContractDefinition",
		"name":     "C",
		"nodes":    []any{fn},
	}
	return map[string]any{
		"id":       float64(10),
		"nodeType": "SourceUnit",
		"nodes":    []any{contract},
	}
}

func TestMutableNodesCounterFindsArithmeticSite(t *testing.T) {
	lang := solidity.New()
	counter := visitor.NewMutableNodesCounter(lang.Namer(), lang.Id(), lang.Permit(), lang.Algorithms())

	sites := counter.Count(arithmeticContract(), astkit.Permissions{})

	var found bool
	for _, s := range sites {
		if s.Algorithm == "ArithmeticBinaryOp" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected an ArithmeticBinaryOp site among %d sites", len(sites))
	}
}

func TestMutableNodesCounterHonorsFunctionScope(t *testing.T) {
	lang := solidity.New()
	counter := visitor.NewMutableNodesCounter(lang.Namer(), lang.Id(), lang.Permit(), lang.Algorithms())

	sites := counter.Count(arithmeticContract(), astkit.Permissions{OnlyFunctions: map[string]bool{"transfer": true}})

	if len(sites) != 0 {
		t.Fatalf("expected no sites when scoped to a function that doesn't exist, got %d", len(sites))
	}
}

// TestMutableNodesCounterScopesDeleteStatementToStatementListElements
// guards against DeleteStatement (and UncheckedBlock) matching any
// non-skipped node kind reachable by any path: arithmeticContract's
// ExpressionStatement is a statement-list element and must be the only
// DeleteStatement site, even though the Assignment and BinaryOperation
// nodes nested inside it are of node kinds DeleteStatement never skips.
func TestMutableNodesCounterScopesDeleteStatementToStatementListElements(t *testing.T) {
	lang := solidity.New()
	counter := visitor.NewMutableNodesCounter(lang.Namer(), lang.Id(), lang.Permit(), lang.Algorithms())

	sites := counter.Count(arithmeticContract(), astkit.Permissions{})

	var deleteSites []visitor.Site
	for _, s := range sites {
		if s.Algorithm == "DeleteStatement" {
			deleteSites = append(deleteSites, s)
		}
	}
	if len(deleteSites) != 1 {
		t.Fatalf("expected exactly one DeleteStatement site (the ExpressionStatement), got %d", len(deleteSites))
	}
}

func TestMutationMakerAppliesTheRecordedSite(t *testing.T) {
	lang := solidity.New()
	root := arithmeticContract()
	counter := visitor.NewMutableNodesCounter(lang.Namer(), lang.Id(), lang.Permit(), lang.Algorithms())
	sites := counter.Count(root, astkit.Permissions{})

	var site visitor.Site
	for _, s := range sites {
		if s.Algorithm == "ArithmeticBinaryOp" {
			site = s
			break
		}
	}
	if site.Algorithm == "" {
		t.Fatal("expected to find an ArithmeticBinaryOp site")
	}

	maker := visitor.NewMutationMaker(lang.Namer(), lang.Id(), lang.Algorithms())
	rng := rand.New(rand.NewSource(1))
	steps, description, ok := maker.Make(root, site, rng)
	if !ok {
		t.Fatal("expected Make to resolve the site against the same tree")
	}
	if description == "" {
		t.Fatal("expected a non-empty mutation description")
	}
	if len(steps) == 0 {
		t.Fatal("expected a non-empty resolved path")
	}
}

func TestMutationMakerFailsOnUnknownAlgorithm(t *testing.T) {
	lang := solidity.New()
	root := arithmeticContract()
	maker := visitor.NewMutationMaker(lang.Namer(), lang.Id(), lang.Algorithms())

	_, _, ok := maker.Make(root, visitor.Site{Algorithm: "NotARealAlgorithm", Path: []uint64{10}}, rand.New(rand.NewSource(1)))
	if ok {
		t.Fatal("expected Make to fail for an unregistered algorithm tag")
	}
}
