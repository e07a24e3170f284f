package vyper

import (
	"fmt"

	"github.com/mutagenyx/mutagenyx/internal/prettyprint"
)

// printNode renders the subset of Vyper's node grammar this tool's
// fixtures and mutation algorithms exercise.
func printNode(p *prettyprint.Printer, node map[string]any) error {
	kind, _ := node["ast_type"].(string)
	switch kind {
	case "MutagenyxComment":
		p.Line(strField(node, "text"))
		return nil
	case kindModule:
		return printList(p, node, "body")
	case kindFunctionDef:
		p.Token(fmt.Sprintf("def %s():", strField(node, "name")))
		p.HardBreak()
		p.Indent()
		if err := printList(p, node, "body"); err != nil {
			return err
		}
		p.Dedent()
		return nil
	case kindExprStmt:
		if err := printExpr(p, subNode(node, "value")); err != nil {
			return err
		}
		p.HardBreak()
		return nil
	case kindAssign:
		targets, _ := node["targets"].([]any)
		if len(targets) > 0 {
			if m, ok := targets[0].(map[string]any); ok {
				if err := printExpr(p, m); err != nil {
					return err
				}
			}
		}
		p.Token(" = ")
		if err := printExpr(p, subNode(node, "value")); err != nil {
			return err
		}
		p.HardBreak()
		return nil
	case kindAnnAssign:
		if err := printExpr(p, subNode(node, "target")); err != nil {
			return err
		}
		p.Token(": ")
		if err := printExpr(p, subNode(node, "annotation")); err != nil {
			return err
		}
		if v := subNode(node, "value"); v != nil {
			p.Token(" = ")
			if err := printExpr(p, v); err != nil {
				return err
			}
		}
		p.HardBreak()
		return nil
	case kindReturn:
		if v := subNode(node, "value"); v != nil {
			p.Token("return ")
			if err := printExpr(p, v); err != nil {
				return err
			}
		} else {
			p.Token("return")
		}
		p.HardBreak()
		return nil
	case kindIf:
		p.Token("if ")
		if err := printExpr(p, subNode(node, "test")); err != nil {
			return err
		}
		p.Token(":")
		p.HardBreak()
		p.Indent()
		if err := printList(p, node, "body"); err != nil {
			return err
		}
		p.Dedent()
		if orelse, ok := node["orelse"].([]any); ok && len(orelse) > 0 {
			p.Token("else:")
			p.HardBreak()
			p.Indent()
			for _, s := range orelse {
				if m, ok := s.(map[string]any); ok {
					if err := printNode(p, m); err != nil {
						return err
					}
				}
			}
			p.Dedent()
		}
		return nil
	default:
		return nil
	}
}

func printExpr(p *prettyprint.Printer, node map[string]any) error {
	if node == nil {
		return nil
	}
	switch kind, _ := node["ast_type"].(string); kind {
	case kindInt, "Str":
		p.Token(fmt.Sprintf("%v", node["value"]))
	case "NameConstant":
		p.Token(fmt.Sprintf("%v", node["value"]))
	case "Name":
		p.Token(strField(node, "id"))
	case kindBinOp:
		if err := printExpr(p, subNode(node, "left")); err != nil {
			return err
		}
		op, _ := opCodec{}.Get(node)
		p.Token(fmt.Sprintf(" %s ", op))
		return printExpr(p, subNode(node, "right"))
	case kindBoolOp:
		values, _ := node["values"].([]any)
		op, _ := opCodec{}.Get(node)
		for i, v := range values {
			if i > 0 {
				p.Token(fmt.Sprintf(" %s ", op))
			}
			if m, ok := v.(map[string]any); ok {
				if err := printExpr(p, m); err != nil {
					return err
				}
			}
		}
	case kindCompare:
		if err := printExpr(p, subNode(node, "left")); err != nil {
			return err
		}
		op, _ := opCodec{}.Get(node)
		p.Token(fmt.Sprintf(" %s ", op))
		comps, _ := node["comparators"].([]any)
		if len(comps) > 0 {
			if m, ok := comps[0].(map[string]any); ok {
				return printExpr(p, m)
			}
		}
	case kindUnaryOp:
		op, _ := opCodec{}.Get(node)
		p.Token(op)
		operand := subNode(node, "operand")
		needsParens := exprNeedsParensUnderUnary(operand)
		if needsParens {
			p.Token("(")
		}
		if err := printExpr(p, operand); err != nil {
			return err
		}
		if needsParens {
			p.Token(")")
		}
		return nil
	case kindCall:
		if err := printExpr(p, subNode(node, "func")); err != nil {
			return err
		}
		p.Token("(")
		args, _ := node["args"].([]any)
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
	case kindAttribute:
		if err := printExpr(p, subNode(node, "value")); err != nil {
			return err
		}
		p.Token("." + strField(node, "attr"))
	default:
		return nil
	}
	return nil
}

// exprNeedsParensUnderUnary reports whether operand must be wrapped in
// parentheses when printed under a unary operator: "not a and b" would
// otherwise print textually identical to "(not a) and b" instead of
// "not (a and b)", and similarly for BinOp/Compare operands.
func exprNeedsParensUnderUnary(operand map[string]any) bool {
	kind, _ := operand["ast_type"].(string)
	return kind == kindBinOp || kind == kindBoolOp || kind == kindCompare
}

func printList(p *prettyprint.Printer, node map[string]any, field string) error {
	items, _ := node[field].([]any)
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
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

func subNode(node map[string]any, field string) map[string]any {
	m, _ := node[field].(map[string]any)
	return m
}
