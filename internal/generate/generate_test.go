package generate_test

import (
	"context"
	"strings"
	"testing"

	"github.com/mutagenyx/mutagenyx/internal/generate"
	"github.com/mutagenyx/mutagenyx/internal/language/solidity"
	"github.com/mutagenyx/mutagenyx/internal/mgxerr"
)

// arithmeticContract mirrors the fixture in internal/visitor's tests:
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

func TestGenerateProducesRequestedMutantCount(t *testing.T) {
	gen, err := generate.New(0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	lang := solidity.New()

	result, err := gen.Generate(context.Background(), "Token.sol", arithmeticContract(), lang, generate.Options{
		Algorithms: []string{"ArithmeticBinaryOp"},
		NumMutants: 1,
		Seed:       1,
		OutputDir:  "out",
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(result.Mutants) != 1 {
		t.Fatalf("expected 1 mutant, got %d", len(result.Mutants))
	}

	m := result.Mutants[0]
	if m.Algorithm != "ArithmeticBinaryOp" {
		t.Fatalf("expected ArithmeticBinaryOp, got %s", m.Algorithm)
	}
	if !strings.HasPrefix(m.Comment, "ArithmeticBinaryOp Mutator: changed '+' to '") {
		t.Fatalf("unexpected comment: %q", m.Comment)
	}
	if !strings.Contains(string(m.Source), m.Comment) {
		t.Fatalf("expected pretty-printed source to contain the mutation comment: %s", m.Source)
	}
	if m.OutputPath != "out/Token_ArithmeticBinaryOp_0.sol" {
		t.Fatalf("unexpected output path: %s", m.OutputPath)
	}
}

func TestGenerateCapsAtAvailableSites(t *testing.T) {
	gen, _ := generate.New(0)
	lang := solidity.New()

	result, err := gen.Generate(context.Background(), "Token.sol", arithmeticContract(), lang, generate.Options{
		Algorithms: []string{"ArithmeticBinaryOp"},
		NumMutants: 50,
		Seed:       1,
		OutputDir:  "out",
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(result.Mutants) != 1 {
		t.Fatalf("expected generation to cap at the single available site, got %d", len(result.Mutants))
	}
	if len(result.Warnings) == 0 {
		t.Fatal("expected a warning about lowering the requested mutant count")
	}
}

func TestGenerateReturnsErrNoMutableNodesWhenAlgorithmDoesNotApply(t *testing.T) {
	gen, _ := generate.New(0)
	lang := solidity.New()

	_, err := gen.Generate(context.Background(), "Token.sol", arithmeticContract(), lang, generate.Options{
		Algorithms: []string{"Require"},
		NumMutants: 1,
		OutputDir:  "out",
	})
	if err == nil || !strings.Contains(err.Error(), mgxerr.ErrNoMutableNodes.Error()) {
		t.Fatalf("expected ErrNoMutableNodes, got %v", err)
	}
}

func TestGenerateIsDeterministicForAFixedSeed(t *testing.T) {
	lang := solidity.New()
	gen, _ := generate.New(0)

	first, err := gen.Generate(context.Background(), "Token.sol", arithmeticContract(), lang, generate.Options{
		Algorithms: []string{"ArithmeticBinaryOp"},
		NumMutants: 1,
		Seed:       7,
		OutputDir:  "out",
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	second, err := gen.Generate(context.Background(), "Token.sol", arithmeticContract(), lang, generate.Options{
		Algorithms: []string{"ArithmeticBinaryOp"},
		NumMutants: 1,
		Seed:       7,
		OutputDir:  "out",
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if string(first.Mutants[0].Source) != string(second.Mutants[0].Source) {
		t.Fatalf("expected the same seed to produce the same mutant:\n%s\nvs\n%s", first.Mutants[0].Source, second.Mutants[0].Source)
	}
}
