package mutator

import "github.com/mutagenyx/mutagenyx/internal/visitor"

// Config bundles the node-shape knowledge every generic algorithm needs to
// operate against one language's AST. internal/language/solidity and
// internal/language/vyper each build one of these.
type Config struct {
	// BinaryOpKinds lists every node kind that carries a binary operator
	// (Solidity has one, "BinaryOperation"; Vyper splits arithmetic,
	// comparison, and boolean expressions across three node kinds).
	// OperatorCodec must normalize all of them to the same operator
	// vocabulary so the per-class Operators lists still discriminate
	// correctly.
	BinaryOpKinds []string
	OperatorCodec OperatorCodec

	// SwapKinds narrows OperatorSwapArguments to node kinds whose operand
	// fields are actually named LeftField/RightField. Defaults to
	// BinaryOpKinds if left empty, which is correct for a language with a
	// single binary expression shape.
	SwapKinds  []string
	LeftField  string
	RightField string

	UnaryOpKind string
	UnaryCodec  OperatorCodec
	IsPrefix    func(node map[string]any) bool

	AssignmentKind     string
	AssignmentRHSField string
	InferLiteralKind   func(rhs map[string]any) (string, bool)
	LiteralBuilder     LiteralBuilder
	NegationBuilder    NegationBuilder

	StatementSkipKinds map[string]bool // node kinds DeleteStatement/UncheckedBlock must not target

	IfKind           string
	IfConditionField string

	CallKind            string
	CallArgumentsField  string
	CallCalleeField     string
	CallCalleeNameField string

	BlockKinds      map[string]bool // node kinds LinesSwap may target
	StatementsField string
	ReturnKinds     map[string]bool
	StatementKindOf func(node any) (string, bool)

	IntegerKind       string
	IntegerValueField string
	IntegerMax        func(node map[string]any) uint64

	// Solidity holds the algorithms with no Vyper equivalent. Left nil to
	// build a Vyper algorithm set.
	Solidity *SolidityConfig
}

// SolidityConfig adds the node shapes Require, UncheckedBlock, and
// ElimDelegateCall need.
type SolidityConfig struct {
	MemberAccessKind  string
	MemberNameField   string
	NewUncheckedBlock func(statements []any) map[string]any
}

// Build returns every mutation algorithm applicable to cfg's language: the
// fourteen generic algorithms, plus Solidity's three if cfg.Solidity is set.
func Build(cfg Config) []visitor.Algorithm {
	binKinds := kindSet(cfg.BinaryOpKinds...)
	swapKinds := cfg.SwapKinds
	if len(swapKinds) == 0 {
		swapKinds = cfg.BinaryOpKinds
	}
	callKinds := kindSet(cfg.CallKind)

	algs := []visitor.Algorithm{
		BinaryOperatorSubstitution{TagName: "ArithmeticBinaryOp", Kinds: binKinds, Codec: cfg.OperatorCodec, Operators: ArithmeticOperators()},
		BinaryOperatorSubstitution{TagName: "LogicalBinaryOp", Kinds: binKinds, Codec: cfg.OperatorCodec, Operators: LogicalOperators()},
		BinaryOperatorSubstitution{TagName: "BitwiseBinaryOp", Kinds: binKinds, Codec: cfg.OperatorCodec, Operators: BitwiseOperators()},
		BinaryOperatorSubstitution{TagName: "BitshiftBinaryOp", Kinds: binKinds, Codec: cfg.OperatorCodec, Operators: BitshiftOperators()},
		BinaryOperatorSubstitution{TagName: "ComparisonBinaryOp", Kinds: binKinds, Codec: cfg.OperatorCodec, Operators: ComparisonOperators()},
		OperatorSwapArguments{Kinds: kindSet(swapKinds...), Codec: cfg.OperatorCodec, Operators: NonCommutativeOperators(), LeftField: cfg.LeftField, RightField: cfg.RightField},
		UnaryOperatorSubstitution{Kinds: kindSet(cfg.UnaryOpKind), Codec: cfg.UnaryCodec, IsPrefix: cfg.IsPrefix, PrefixOperators: PrefixOperators(), PostfixOperators: PostfixOperators()},
		Assignment{Kind: cfg.AssignmentKind, RightField: cfg.AssignmentRHSField, InferKind: cfg.InferLiteralKind, LiteralBuilder: cfg.LiteralBuilder},
		DeleteStatement{SkipKinds: cfg.StatementSkipKinds, StatementsField: cfg.StatementsField},
		FunctionCall{CallKinds: callKinds, ArgumentsField: cfg.CallArgumentsField},
		IfStatement{Kind: cfg.IfKind, ConditionField: cfg.IfConditionField, LiteralBuilder: cfg.LiteralBuilder, NegationBuilder: cfg.NegationBuilder},
		Integer{Kind: cfg.IntegerKind, ValueField: cfg.IntegerValueField, Max: cfg.IntegerMax},
		FunctionSwapArguments{CallKinds: callKinds, ArgumentsField: cfg.CallArgumentsField},
		LinesSwap{BlockKinds: cfg.BlockKinds, StatementsField: cfg.StatementsField, ReturnKinds: cfg.ReturnKinds, StatementKindOf: cfg.StatementKindOf},
	}

	if cfg.Solidity != nil {
		algs = append(algs,
			Require{CallKind: cfg.CallKind, CalleeField: cfg.CallCalleeField, CalleeNameField: cfg.CallCalleeNameField, ArgumentsField: cfg.CallArgumentsField, NegationBuilder: cfg.NegationBuilder},
			UncheckedBlock{SkipKinds: cfg.StatementSkipKinds, StatementsField: cfg.StatementsField, NewBlock: cfg.Solidity.NewUncheckedBlock},
			ElimDelegateCall{MemberAccessKind: cfg.Solidity.MemberAccessKind, MemberNameField: cfg.Solidity.MemberNameField},
		)
	}

	return algs
}
