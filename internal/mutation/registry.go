// Package mutation defines the closed set of mutation algorithm tags this
// tool understands, along with the human-readable description each one
// prints for `mutagenyx algorithms`.
package mutation

// Tag identifies one mutation algorithm. The set is closed: a config file
// or --mutations flag naming any other string is a configuration error.
type Tag string

const (
	ArithmeticBinaryOp   Tag = "ArithmeticBinaryOp"
	LogicalBinaryOp      Tag = "LogicalBinaryOp"
	BitwiseBinaryOp      Tag = "BitwiseBinaryOp"
	BitshiftBinaryOp     Tag = "BitshiftBinaryOp"
	ComparisonBinaryOp   Tag = "ComparisonBinaryOp"
	Assignment           Tag = "Assignment"
	DeleteStatement      Tag = "DeleteStatement"
	FunctionCall         Tag = "FunctionCall"
	IfStatement          Tag = "IfStatement"
	Integer              Tag = "Integer"
	FunctionSwapArguments Tag = "FunctionSwapArguments"
	OperatorSwapArguments Tag = "OperatorSwapArguments"
	LinesSwap            Tag = "LinesSwap"
	UnaryOp              Tag = "UnaryOp"

	// Solidity-only algorithms.
	Require         Tag = "Require"
	UncheckedBlock  Tag = "UncheckedBlock"
	ElimDelegateCall Tag = "ElimDelegateCall"
)

// Description documents one algorithm for `mutagenyx algorithms` and
// `mutagenyx algorithms -d`.
type Description struct {
	Tag       Tag
	Language  string // "" for a generic algorithm usable by every language
	Summary   string
	Details   string
	Operators []string
	Example   string
}

// All lists every algorithm this tool implements, generic algorithms
// first, in the same order the CLI prints them.
func All() []Description { return descriptions }

// Find returns the Description for tag, or false if tag isn't registered.
func Find(tag Tag) (Description, bool) {
	for _, d := range descriptions {
		if d.Tag == tag {
			return d, true
		}
	}
	return Description{}, false
}

// ForLanguage returns the algorithms usable against the given language:
// every generic algorithm plus that language's own.
func ForLanguage(language string) []Description {
	out := make([]Description, 0, len(descriptions))
	for _, d := range descriptions {
		if d.Language == "" || d.Language == language {
			out = append(out, d)
		}
	}
	return out
}

var descriptions = []Description{
	{
		Tag:     ArithmeticBinaryOp,
		Summary: "Randomly replace the arithmetic operator in a binary expression.",
		Example: "a = b + c; might become a = b - c;",
	},
	{
		Tag:     LogicalBinaryOp,
		Summary: "Randomly replace the logical operator in a binary expression.",
		Example: "a = b && c; might become a = b || c;",
	},
	{
		Tag:     BitwiseBinaryOp,
		Summary: "Randomly replaces a bitwise operator in a binary expression.",
		Details: "Find bitwise binary operation expressions in the program and replace the operator with another bitwise operator.",
		Example: "a = b & c; might become a = b | c;",
	},
	{
		Tag:     BitshiftBinaryOp,
		Summary: "Randomly replaces a bitshift operator in a binary expression.",
		Details: "Find bitshift binary operator expressions in the program and replace one bitshift operator for another among the bitshift operators.",
		Example: "a = b << 2; might become a = b >> 2;",
	},
	{
		Tag:     ComparisonBinaryOp,
		Summary: "Randomly replace the comparison operator in a binary expression",
		Details: "Find comparison binary operator expressions in the program and replace the operator with another comparison operator.",
		Example: "a = b == c; might become a = b != c;",
	},
	{
		Tag:     Assignment,
		Summary: "Replace right hand side of assignment expressions with type appropriate values.",
		Details: "Find assignment expressions in the program and infer a type from the right hand side. Replace the right hand side with a randomly generated value of that type: an integer below 1000000, a boolean, or a string. Assignments whose right hand side has none of these types are not mutated.",
		Example: "a = b + 10; where a is of type uint, might become a = 294942;",
	},
	{
		Tag:     DeleteStatement,
		Summary: "Randomly select a statement in a program block and delete the statement.",
		Details: "For languages that have variable declarations and return statements the algorithm will not delete declarations or return statements in order to minimize compilation issues caused by the mutation.",
	},
	{
		Tag:     FunctionCall,
		Summary: "Replace function calls with one of the randomly selected arguments to the function call.",
		Details: "For function calls that have one or more arguments, randomly select an argument from the argument list and replace the entire function call in the expression with the selected argument. Every argument is equally likely; its type is not compared with the return type of the function call.",
		Example: "a = foo(b, c); might become a = c;",
	},
	{
		Tag:     IfStatement,
		Summary: "Replace the condition expression in an if(c) statement with true, false, or the logical negation of the condition if(!(c)).",
		Example: "if(a > b) might become if(true), if(c == 10) might become if(!(c == 10))",
	},
	{
		Tag:     Integer,
		Summary: "Randomly replace integer constants with random values.",
		Details: "The mutation algorithm chooses between three possible behaviors when mutating the constant: add one to the existing value, subtract one from the existing value, or select a random integer value between 0 and an upper bound supplied by the language binding. The bound does not depend on the constant's declared type.",
		Example: "a = 10; might become a = 11;, or a = 9;, or a = 2932;",
	},
	{
		Tag:     FunctionSwapArguments,
		Summary: "Randomly swap two arguments in a function call.",
		Details: "Find function calls in the program with two or more arguments, randomly select two arguments, and swap them. The two arguments are chosen without regard to their types.",
		Example: "a = foo(bar, bat, bug); might become a = foo(bug, bat, bar);",
	},
	{
		Tag:       OperatorSwapArguments,
		Summary:   "Swap left and right hand sides of binary expressions with non-commutative operators.",
		Details:   "Select a random binary expression that has a non-commutative operator and swap the left and right hand sides of the expression.",
		Operators: append([]string{}, nonCommutativeOperators...),
		Example:   "thing = a - b; might become thing = b - a;",
	},
	{
		Tag:     LinesSwap,
		Summary: "Randomly select two statements in a block and swap the two statements.",
		Details: "The mutation algorithm never selects a return statement; any other statement in the block may be swapped.",
		Example: "a = foo - bar(); ... foo += 8; might become foo += 8; ... a = foo - bar();",
	},
	{
		Tag:     UnaryOp,
		Summary: "Randomly replace unary operators for both prefix and postfix expressions with operators from the unary operator list.",
		Details: "This mutation algorithm will not convert a prefix unary expression into a postfix unary expression.",
	},
	{
		Tag:      Require,
		Language: "solidity",
		Summary:  "Randomly select a use of the Solidity require() function and replace the argument with the logical negation of the argument expression.",
		Example:  "require(b > 10); would become require(!(b > 10));",
	},
	{
		Tag:      UncheckedBlock,
		Language: "solidity",
		Summary:  "Take a statement in a function and decorate the statement with the Solidity unchecked{} block.",
		Example:  "a = b + c; would become unchecked { a = b + c; }",
	},
	{
		Tag:      ElimDelegateCall,
		Language: "solidity",
		Summary:  "Replace delegatecall() functions with call().",
		Example:  "let a := foo.delegatecall() would become let a := foo.call()",
	},
}

// nonCommutativeOperators mirrors mutator.NonCommutativeOperators without
// importing internal/mutator, to keep the registry free of a dependency on
// the algorithm implementations.
var nonCommutativeOperators = []string{"-", "/", "%", "**", ">", "<", "<=", ">=", "<<", ">>"}
