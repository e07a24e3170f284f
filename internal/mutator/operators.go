// Package mutator implements the mutation algorithms as visitor.Algorithm
// values: given a node kind's operator or shape, each algorithm decides
// whether it applies and how to rewrite it.
package mutator

// ArithmeticOperators lists the binary arithmetic operators eligible for
// operator substitution.
func ArithmeticOperators() []string { return []string{"+", "-", "*", "/", "%", "**"} }

// LogicalOperators lists the binary logical operators eligible for
// operator substitution.
func LogicalOperators() []string { return []string{"&&", "||"} }

// BitwiseOperators lists the binary bitwise operators eligible for
// operator substitution.
func BitwiseOperators() []string { return []string{"&", "|", "^"} }

// BitshiftOperators lists the binary bitshift operators eligible for
// operator substitution.
func BitshiftOperators() []string { return []string{"<<", ">>"} }

// ComparisonOperators lists the binary comparison operators eligible for
// operator substitution.
func ComparisonOperators() []string { return []string{"==", "!=", ">", "<", ">=", "<="} }

// NonCommutativeOperators lists the operators for which swapping the left
// and right operands changes semantics, and so are candidates for the
// argument-swap style algorithms.
func NonCommutativeOperators() []string {
	return []string{"-", "/", "%", "**", ">", "<", "<=", ">=", "<<", ">>"}
}

// PrefixOperators lists unary prefix operators eligible for substitution.
func PrefixOperators() []string { return []string{"++", "--", "~"} }

// PostfixOperators lists unary postfix operators eligible for substitution.
func PostfixOperators() []string { return []string{"++", "--"} }
