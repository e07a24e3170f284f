package jsonast

import (
	"fmt"

	"github.com/ohler55/ojg/oj"
)

// Decode parses data as a JSON-encoded AST root. It requires a top-level
// object, since every node in the ASTs this package understands is a
// map[string]any.
func Decode(data []byte) (map[string]any, error) {
	v, err := oj.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse AST json: %w", err)
	}
	root, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("AST root is not a JSON object")
	}
	return root, nil
}
