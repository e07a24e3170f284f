package solidity

import (
	"fmt"

	"github.com/mutagenyx/mutagenyx/internal/prettyprint"
)

// printNode renders the subset of solc's node grammar this tool's fixtures
// and mutation algorithms exercise: source units, contracts, functions,
// statements, and expressions. Node kinds outside that subset are skipped
// rather than causing a hard failure, so a mutation elsewhere in a larger
// file still produces readable output around it.
func printNode(p *prettyprint.Printer, node map[string]any) error {
	kind, _ := node["nodeType"].(string)
	switch kind {
	case "MutagenyxComment":
		p.Line(strField(node, "text"))
		return nil
	case "SourceUnit":
		return printList(p, node, "nodes", "\n")
	case "PragmaDirective":
		p.Line(fmt.Sprintf("pragma %s;", joinLiterals(node["literals"])))
		return nil
	case "ContractDefinition":
		p.Token(fmt.Sprintf("contract %s {", strField(node, "name")))
		p.HardBreak()
		p.Indent()
		if err := printList(p, node, "nodes", "\n"); err != nil {
			return err
		}
		p.Dedent()
		p.Line("}")
		return nil
	case "FunctionDefinition":
		return printFunctionDefinition(p, node)
	case kindBlock, kindUncheckedBlock:
		return printBlock(p, node)
	case "ExpressionStatement":
		if err := printExpr(p, subNodePtr(node, "expression")); err != nil {
			return err
		}
		p.Line(";")
		return nil
	case "VariableDeclarationStatement":
		return printVariableDeclarationStatement(p, node)
	case "IfStatement":
		return printIfStatement(p, node)
	case "Return":
		if expr := subNodePtr(node, "expression"); expr != nil {
			p.Token("return ")
			if err := printExpr(p, expr); err != nil {
				return err
			}
			p.Line(";")
		} else {
			p.Line("return;")
		}
		return nil
	default:
		return nil
	}
}

func printFunctionDefinition(p *prettyprint.Printer, node map[string]any) error {
	name := strField(node, "name")
	if name == "" {
		name = "<constructor>"
	}
	p.Token(fmt.Sprintf("function %s(", name))
	if params, ok := subNode(node, "parameters"); ok {
		_ = params
	}
	p.Token(")")
	if vis := strField(node, "visibility"); vis != "" {
		p.Token(" " + vis)
	}
	if mut := strField(node, "stateMutability"); mut != "" && mut != "nonpayable" {
		p.Token(" " + mut)
	}
	p.Token(" ")
	if body, ok := node["body"].(map[string]any); ok {
		return printNode(p, body)
	}
	p.Line(";")
	return nil
}

func printBlock(p *prettyprint.Printer, node map[string]any) error {
	kind, _ := node["nodeType"].(string)
	if kind == kindUncheckedBlock {
		p.Token("unchecked ")
	}
	p.Token("{")
	p.HardBreak()
	p.Indent()
	stmts, _ := node["statements"].([]any)
	for _, s := range stmts {
		m, ok := s.(map[string]any)
		if !ok {
			continue
		}
		if err := printNode(p, m); err != nil {
			return err
		}
	}
	p.Dedent()
	p.Line("}")
	return nil
}

func printVariableDeclarationStatement(p *prettyprint.Printer, node map[string]any) error {
	decls, _ := node["declarations"].([]any)
	names := make([]string, 0, len(decls))
	for _, d := range decls {
		if m, ok := d.(map[string]any); ok {
			names = append(names, strField(m, "name"))
		}
	}
	p.Token(fmt.Sprintf("var %s", joinStrings(names)))
	if init := subNodePtr(node, "initialValue"); init != nil {
		p.Token(" = ")
		if err := printExpr(p, init); err != nil {
			return err
		}
	}
	p.Line(";")
	return nil
}

func printIfStatement(p *prettyprint.Printer, node map[string]any) error {
	p.Token("if (")
	if err := printExpr(p, subNodePtr(node, "condition")); err != nil {
		return err
	}
	p.Token(") ")
	if trueBody, ok := node["trueBody"].(map[string]any); ok {
		if err := printNode(p, trueBody); err != nil {
			return err
		}
	}
	if falseBody, ok := node["falseBody"].(map[string]any); ok {
		p.Token(" else ")
		if err := printNode(p, falseBody); err != nil {
			return err
		}
	}
	return nil
}

func printExpr(p *prettyprint.Printer, node map[string]any) error {
	if node == nil {
		return nil
	}
	kind, _ := node["nodeType"].(string)
	switch kind {
	case kindLiteral:
		p.Token(fmt.Sprintf("%v", node["value"]))
	case "Identifier":
		p.Token(strField(node, "name"))
	case kindBinaryOperation:
		if err := printExpr(p, subNodePtr(node, "leftExpression")); err != nil {
			return err
		}
		p.Token(fmt.Sprintf(" %s ", strField(node, "operator")))
		return printExpr(p, subNodePtr(node, "rightExpression"))
	case kindUnaryOperation:
		prefix, _ := node["prefix"].(bool)
		op := strField(node, "operator")
		sub := subNodePtr(node, "subExpression")
		needsParens := exprNeedsParensUnderUnary(sub)
		if prefix {
			p.Token(op)
			if needsParens {
				p.Token("(")
			}
			if err := printExpr(p, sub); err != nil {
				return err
			}
			if needsParens {
				p.Token(")")
			}
			return nil
		}
		if needsParens {
			p.Token("(")
		}
		if err := printExpr(p, sub); err != nil {
			return err
		}
		if needsParens {
			p.Token(")")
		}
		p.Token(op)
	case kindAssignment:
		if err := printExpr(p, subNodePtr(node, "leftHandSide")); err != nil {
			return err
		}
		p.Token(" = ")
		return printExpr(p, subNodePtr(node, "rightHandSide"))
	case kindFunctionCall:
		if err := printExpr(p, subNodePtr(node, "expression")); err != nil {
			return err
		}
		p.Token("(")
		args, _ := node["arguments"].([]any)
		for i, a := range args {
			if i > 0 {
				p.Token(", ")
			}
			if m, ok := a.(map[string]any); ok {
				if err := printExpr(p, m); err != nil {
					return err
				}
			}
		}
		p.Token(")")
	case kindMemberAccess:
		if err := printExpr(p, subNodePtr(node, "expression")); err != nil {
			return err
		}
		p.Token("." + strField(node, "memberName"))
	default:
		return nil
	}
	return nil
}

// exprNeedsParensUnderUnary reports whether sub must be wrapped in
// parentheses when printed as the operand of a unary operator. solc's AST
// represents every binary operator (arithmetic, comparison, boolean) as a
// single BinaryOperation node, so "!a && b" would otherwise print
// textually identical to "(!a) && b" instead of "!(a && b)".
func exprNeedsParensUnderUnary(sub map[string]any) bool {
	kind, _ := sub["nodeType"].(string)
	return kind == kindBinaryOperation || kind == kindAssignment
}

func printList(p *prettyprint.Printer, node map[string]any, field, sep string) error {
	items, _ := node[field].([]any)
	for i, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if i > 0 && sep == "\n" {
			p.HardBreak()
		}
		if err := printNode(p, m); err != nil {
			return err
		}
	}
	return nil
}

func strField(node map[string]any, field string) string {
	s, _ := node[field].(string)
	return s
}

func subNode(node map[string]any, field string) (map[string]any, bool) {
	m, ok := node[field].(map[string]any)
	return m, ok
}

func subNodePtr(node map[string]any, field string) map[string]any {
	m, _ := node[field].(map[string]any)
	return m
}

func joinLiterals(v any) string {
	arr, _ := v.([]any)
	out := ""
	for i, s := range arr {
		if i > 0 {
			out += " "
		}
		out += fmt.Sprintf("%v", s)
	}
	return out
}

func joinStrings(ss []string) string {
	out := ""
	for i, s := range ss {
		if i > 0 {
			out += ", "
		}
		out += s
	}
	return out
}
