// Package vyper implements language.MutableLanguage against the Vyper
// compiler's JSON AST (ast_type-tagged nodes, snake_case fields, and
// operators nested in their own sub-node rather than a flat string field).
package vyper

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
	kindBinOp     = "BinOp"
	kindBoolOp    = "BoolOp"
	kindCompare   = "Compare"
	kindUnaryOp   = "UnaryOp"
	kindAssign    = "Assign"
	kindIf        = "If"
	kindCall      = "Call"
	kindModule    = "Module"
	kindFunctionDef = "FunctionDef"
	kindReturn    = "Return"
	kindInt       = "Int"
	kindAnnAssign = "AnnAssign"
	kindExprStmt  = "Expr"
	kindAttribute = "Attribute"
)

// astTypeToOperator and its inverse translate Vyper's nested operator node
// ast_type (e.g. "Add", "Eq", "And") to the flat operator vocabulary the
// generic algorithms share with Solidity.
var astTypeToOperator = map[string]string{
	"Add": "+", "Sub": "-", "Mult": "*", "Div": "/", "Mod": "%", "Pow": "**",
	"And": "&&", "Or": "||",
	"BitAnd": "&", "BitOr": "|", "BitXor": "^",
	"LShift": "<<", "RShift": ">>",
	"Eq": "==", "NotEq": "!=", "Gt": ">", "Lt": "<", "GtE": ">=", "LtE": "<=",
	"Not": "!", "USub": "-", "Invert": "~",
}

var operatorToASTType = invert(astTypeToOperator)

func invert(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		if _, exists := out[v]; !exists {
			out[v] = k
		}
	}
	return out
}

// Language implements language.MutableLanguage for Vyper.
type Language struct {
	namer  jsonast.NamerSpec
	id     jsonast.IdSpec
	permit jsonast.PermitSpec
}

// New builds the Vyper language binding.
func New() *Language {
	return &Language{
		namer: jsonast.NamerSpec{Field: "ast_type"},
		id:    jsonast.IdSpec{Field: "node_id"},
		permit: jsonast.PermitSpec{
			FunctionKinds: map[string]bool{kindFunctionDef: true},
			NameField:     "name",
		},
	}
}

func (l *Language) Name() string          { return "vyper" }
func (l *Language) Extensions() []string  { return []string{".vy"} }
func (l *Language) Namer() astkit.Namer   { return l.namer }
func (l *Language) Id() astkit.Id         { return l.id }
func (l *Language) Permit() astkit.Permit { return l.permit }

// opCodec reads/writes the operator carried by BinOp/BoolOp/Compare, each
// of which nests it in a different field ("op" for the first two, the
// first element of "ops" for chained comparisons).
type opCodec struct{}

func (opCodec) Get(node map[string]any) (string, bool) {
	if op, ok := node["op"].(map[string]any); ok {
		astType, _ := op["ast_type"].(string)
		flat, ok := astTypeToOperator[astType]
		return flat, ok
	}
	if ops, ok := node["ops"].([]any); ok && len(ops) > 0 {
		if opNode, ok := ops[0].(map[string]any); ok {
			astType, _ := opNode["ast_type"].(string)
			flat, ok := astTypeToOperator[astType]
			return flat, ok
		}
	}
	return "", false
}

func (opCodec) Set(node map[string]any, flatOp string) {
	astType, ok := operatorToASTType[flatOp]
	if !ok {
		return
	}
	if _, ok := node["op"]; ok {
		node["op"] = map[string]any{"ast_type": astType}
		return
	}
	if ops, ok := node["ops"].([]any); ok && len(ops) > 0 {
		ops[0] = map[string]any{"ast_type": astType}
		node["ops"] = ops
	}
}

// Algorithms builds the fourteen generic algorithms; the three Solidity-only
// ones are left unregistered, so requesting only Require, UncheckedBlock or
// ElimDelegateCall for a Vyper input finds no mutation sites and the run
// ends with mgxerr.ErrNoMutableNodes.
func (l *Language) Algorithms() []visitor.Algorithm {
	skip := map[string]bool{
		kindAnnAssign: true,
		kindReturn:    true,
	}
	return mutator.Build(mutator.Config{
		BinaryOpKinds: []string{kindBinOp, kindBoolOp, kindCompare},
		SwapKinds:     []string{kindBinOp},
		LeftField:     "left",
		RightField:    "right",
		OperatorCodec: opCodec{},

		UnaryOpKind: kindUnaryOp,
		UnaryCodec:  opCodec{},
		IsPrefix:    func(map[string]any) bool { return true },

		AssignmentKind:     kindAssign,
		AssignmentRHSField: "value",
		InferLiteralKind:   inferLiteralKind,
		LiteralBuilder:     literalBuilder{},
		NegationBuilder:    negationBuilder{},

		StatementSkipKinds: skip,

		IfKind:           kindIf,
		IfConditionField: "test",

		CallKind:            kindCall,
		CallArgumentsField:  "args",
		CallCalleeField:     "func",
		CallCalleeNameField: "id",

		BlockKinds:      map[string]bool{kindFunctionDef: true, kindIf: true, kindModule: true},
		StatementsField: "body",
		ReturnKinds:     map[string]bool{kindReturn: true},
		StatementKindOf: func(node any) (string, bool) {
			m, ok := node.(map[string]any)
			if !ok {
				return "", false
			}
			return l.namer.Name(m)
		},

		IntegerKind:       kindInt,
		IntegerValueField: "value",
		IntegerMax:        func(map[string]any) uint64 { return 1<<64 - 1 },
	})
}

// PrettyPrint renders a mutated Vyper AST back to source.
func (l *Language) PrettyPrint(ctx context.Context, ast map[string]any) ([]byte, error) {
	var buf bytes.Buffer
	p := prettyprint.New(&buf)
	if err := printNode(p, ast); err != nil {
		return nil, fmt.Errorf("pretty-print vyper AST: %w", err)
	}
	if err := p.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// CompileArgs builds a `vyper` invocation that checks path compiles.
func (l *Language) CompileArgs(path string) (string, []string) {
	return "vyper", []string{path}
}

var nodeFinder = jsonast.NewNodeFinder(map[string]string{
	kindModule:      "body",
	kindFunctionDef: "body",
	kindIf:          "body",
})

// NodeFinder locates the statement list a mutation comment can be spliced
// into for a given ancestor node kind.
func (l *Language) NodeFinder() jsonast.NodeFinder { return nodeFinder }

type hashComment struct{}

func (hashComment) NewComment(text string) map[string]any {
	return map[string]any{"ast_type": "MutagenyxComment", "text": "# " + text}
}

// Commenters resolves the Commenter for every ancestor kind NodeFinder
// names; Vyper uses the same hash-comment shape everywhere.
func (l *Language) Commenters() jsonast.CommenterFactory {
	return func(parentKind string) (jsonast.Commenter, bool) {
		if _, ok := nodeFinder.StatementListField(parentKind); !ok {
			return nil, false
		}
		return hashComment{}, true
	}
}

func inferLiteralKind(rhs map[string]any) (string, bool) {
	switch t, _ := rhs["ast_type"].(string); t {
	case kindInt:
		return "int", true
	case "NameConstant":
		return "bool", true
	case "Str":
		return "string", true
	}
	return "", false
}

type literalBuilder struct{}

func (literalBuilder) NewLiteral(kind string, value any, like map[string]any) map[string]any {
	switch kind {
	case "bool":
		return map[string]any{"ast_type": "NameConstant", "value": value}
	case "string":
		return map[string]any{"ast_type": "Str", "value": fmt.Sprintf("%v", value)}
	default:
		return map[string]any{"ast_type": kindInt, "value": fmt.Sprintf("%v", value)}
	}
}

type negationBuilder struct{}

func (negationBuilder) Negate(expr map[string]any) map[string]any {
	return map[string]any{
		"ast_type": kindUnaryOp,
		"op":       map[string]any{"ast_type": "Not"},
		"operand":  expr,
	}
}
