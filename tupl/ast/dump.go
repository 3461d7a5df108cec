// File: dump.go
// Title: TUPL AST Structured Dump
// Description: Converts an AST into nested maps for YAML and JSON encoding.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.2.0: Initial implementation

package ast

// Dump returns root as nested maps with the keys "type", "line", and
// optionally "value" and "children". Number literals keep their int64 value.
func Dump(root Node) map[string]interface{} {
	if root == nil {
		return nil
	}

	m := map[string]interface{}{
		"type": root.Kind().String(),
		"line": root.Pos().Line,
	}

	switch n := root.(type) {
	case *NumberLiteral:
		m["value"] = n.Value
	case *StringLiteral:
		m["value"] = n.Value
	default:
		if v, ok := Value(root); ok {
			m["value"] = v
		}
	}

	if children := Children(root); len(children) > 0 {
		list := make([]interface{}, len(children))
		for i, c := range children {
			list[i] = Dump(c)
		}
		m["children"] = list
	}

	return m
}
