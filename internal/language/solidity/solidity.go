// Package solidity implements language.MutableLanguage against solc's JSON
// AST (nodeType-tagged nodes, camelCase fields).
package solidity

import (
	"bytes"
	"context"
	"fmt"

	"github.com/mutagenyx/mutagenyx/internal/astkit"
	"github.com/mutagenyx/mutagenyx/internal/jsonast"
	"github.com/mutagenyx/mutagenyx/internal/mutator"
	"github.com/mutagenyx/mutagenyx/internal/prettyprint"
	"github.com/mutagenyx/mutagenyx/internal/visitor"
)

const (
	kindBinaryOperation           = "BinaryOperation"
	kindUnaryOperation            = "UnaryOperation"
	kindAssignment                = "Assignment"
	kindIfStatement               = "IfStatement"
	kindFunctionCall              = "FunctionCall"
	kindBlock                     = "Block"
	kindUncheckedBlock            = "UncheckedBlock"
	kindLiteral                   = "Literal"
	kindMemberAccess              = "MemberAccess"
	kindFunctionDefinition        = "FunctionDefinition"
	kindReturn                    = "Return"
	kindVariableDeclarationStmt   = "VariableDeclarationStatement"
	kindVariableDeclaration       = "VariableDeclaration"
)

// Language implements language.MutableLanguage for Solidity.
type Language struct {
	namer  jsonast.NamerSpec
	id     jsonast.IdSpec
	permit jsonast.PermitSpec
}

// New builds the Solidity language binding.
func New() *Language {
	return &Language{
		namer: jsonast.NamerSpec{Field: "nodeType"},
		id:    jsonast.IdSpec{Field: "id"},
		permit: jsonast.PermitSpec{
			FunctionKinds: map[string]bool{kindFunctionDefinition: true},
			NameField:     "name",
		},
	}
}

func (l *Language) Name() string          { return "solidity" }
func (l *Language) Extensions() []string  { return []string{".sol"} }
func (l *Language) Namer() astkit.Namer   { return l.namer }
func (l *Language) Id() astkit.Id         { return l.id }
func (l *Language) Permit() astkit.Permit { return l.permit }

// Algorithms builds the fourteen generic algorithms plus Solidity's three,
// wired against solc's node shapes.
func (l *Language) Algorithms() []visitor.Algorithm {
	skip := map[string]bool{
		kindVariableDeclarationStmt: true,
		kindReturn:                  true,
	}
	return mutator.Build(mutator.Config{
		BinaryOpKinds: []string{kindBinaryOperation},
		LeftField:     "leftExpression",
		RightField:    "rightExpression",
		OperatorCodec: mutator.StringFieldCodec{Field: "operator"},

		UnaryOpKind: kindUnaryOperation,
		UnaryCodec:  mutator.StringFieldCodec{Field: "operator"},
		IsPrefix: func(node map[string]any) bool {
			prefix, _ := node["prefix"].(bool)
			return prefix
		},

		AssignmentKind:     kindAssignment,
		AssignmentRHSField: "rightHandSide",
		InferLiteralKind:   inferLiteralKind,
		LiteralBuilder:     literalBuilder{},
		NegationBuilder:    negationBuilder{},

		StatementSkipKinds: skip,

		IfKind:           kindIfStatement,
		IfConditionField: "condition",

		CallKind:            kindFunctionCall,
		CallArgumentsField:  "arguments",
		CallCalleeField:     "expression",
		CallCalleeNameField: "name",

		BlockKinds:      map[string]bool{kindBlock: true},
		StatementsField: "statements",
		ReturnKinds:     map[string]bool{kindReturn: true},
		StatementKindOf: func(node any) (string, bool) {
			m, ok := node.(map[string]any)
			if !ok {
				return "", false
			}
			return l.namer.Name(m)
		},

		IntegerKind:       kindLiteral,
		IntegerValueField: "value",
		IntegerMax:        func(map[string]any) uint64 { return 1<<64 - 1 },

		Solidity: &mutator.SolidityConfig{
			MemberAccessKind: kindMemberAccess,
			MemberNameField:  "memberName",
			NewUncheckedBlock: func(statements []any) map[string]any {
				return map[string]any{"nodeType": kindUncheckedBlock, "statements": statements}
			},
		},
	})
}

// PrettyPrint renders a mutated solc AST back to Solidity source using the
// language's Printer.
func (l *Language) PrettyPrint(ctx context.Context, ast map[string]any) ([]byte, error) {
	var buf bytes.Buffer
	p := prettyprint.New(&buf)
	if err := printNode(p, ast); err != nil {
		return nil, fmt.Errorf("pretty-print solidity AST: %w", err)
	}
	if err := p.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// CompileArgs builds a `solc` invocation that checks path compiles.
func (l *Language) CompileArgs(path string) (string, []string) {
	return "solc", []string{"--bin", path}
}

var nodeFinder = jsonast.NewNodeFinder(map[string]string{
	"SourceUnit":       "nodes",
	"ContractDefinition": "nodes",
	kindBlock:          "statements",
	kindUncheckedBlock: "statements",
})

// NodeFinder locates the statement list a mutation comment can be spliced
// into for a given ancestor node kind.
func (l *Language) NodeFinder() jsonast.NodeFinder { return nodeFinder }

type lineComment struct{}

func (lineComment) NewComment(text string) map[string]any {
	return map[string]any{"nodeType": "MutagenyxComment", "text": "// " + text}
}

// Commenters resolves the Commenter for every ancestor kind NodeFinder
// names; Solidity uses the same line-comment shape everywhere.
func (l *Language) Commenters() jsonast.CommenterFactory {
	return func(parentKind string) (jsonast.Commenter, bool) {
		if _, ok := nodeFinder.StatementListField(parentKind); !ok {
			return nil, false
		}
		return lineComment{}, true
	}
}

func inferLiteralKind(rhs map[string]any) (string, bool) {
	if nodeType, _ := rhs["nodeType"].(string); nodeType == kindLiteral {
		switch k, _ := rhs["kind"].(string); k {
		case "bool":
			return "bool", true
		case "string":
			return "string", true
		case "number":
			return "int", true
		}
	}
	if td, ok := rhs["typeDescriptions"].(map[string]any); ok {
		if ts, _ := td["typeString"].(string); ts != "" {
			switch {
			case ts == "bool":
				return "bool", true
			case ts == "string" || ts == "string storage ref" || ts == "string memory":
				return "string", true
			default:
				return "int", true
			}
		}
	}
	return "", false
}

type literalBuilder struct{}

func (literalBuilder) NewLiteral(kind string, value any, like map[string]any) map[string]any {
	node := map[string]any{"nodeType": kindLiteral}
	switch kind {
	case "bool":
		node["kind"] = "bool"
		node["value"] = fmt.Sprintf("%v", value)
	case "string":
		node["kind"] = "string"
		node["value"] = fmt.Sprintf("%v", value)
	default:
		node["kind"] = "number"
		node["value"] = fmt.Sprintf("%v", value)
	}
	if td, ok := like["typeDescriptions"]; ok {
		node["typeDescriptions"] = jsonast.DeepClone(td)
	}
	return node
}

type negationBuilder struct{}

func (negationBuilder) Negate(expr map[string]any) map[string]any {
	return map[string]any{
		"nodeType":      kindUnaryOperation,
		"operator":      "!",
		"prefix":        true,
		"subExpression": expr,
	}
}
