// File: walk.go
// Title: TUPL AST Traversal
// Description: Depth-first traversal with pre-order and post-order callbacks
//              over the fixed child order of every node kind.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial visitor pattern implementation
// - 2026-10-14 v0.2.0: Generic Walk with enter/leave callbacks replaces Visitor

package ast

import "fmt"

// VisitFunc is called for every node during Walk with the shared context.
type VisitFunc[C any] func(n Node, ctx C)

// Walk visits root and its subtree depth-first. pre runs before a node's
// children, post after them. Either callback may be nil.
func Walk[C any](root Node, pre, post VisitFunc[C], ctx C) {
	if root == nil {
		return
	}
	if pre != nil {
		pre(root, ctx)
	}
	for _, child := range Children(root) {
		Walk(child, pre, post, ctx)
	}
	if post != nil {
		post(root, ctx)
	}
}

// Children returns the direct children of n in their fixed visiting order.
// Absent optional fields are skipped.
func Children(n Node) []Node {
	switch n := n.(type) {
	case *Program:
		children := make([]Node, 0, len(n.Definitions)+1)
		for _, d := range n.Definitions {
			children = append(children, d)
		}
		if n.Return != nil {
			children = append(children, n.Return)
		}
		return children

	case *FunctionDefinition:
		children := make([]Node, 0, len(n.Locals)+2)
		if n.Formals != nil {
			children = append(children, n.Formals)
		}
		for _, d := range n.Locals {
			children = append(children, d)
		}
		if n.Return != nil {
			children = append(children, n.Return)
		}
		return children

	case *Formals:
		children := make([]Node, len(n.Params))
		for i, p := range n.Params {
			children[i] = p
		}
		return children

	case *VariableDefinition:
		return nodes(n.Expr)
	case *ConstantDefinition:
		return nodes(n.Expr)
	case *TupleDefinition:
		return nodes(n.Expr)
	case *ReturnValue:
		return nodes(n.Expr)

	case *PipeExpression:
		return nodes(n.Expr, n.Op)
	case *TupleExpression:
		return nodes(n.Left, n.Right)

	case *TupleLiteral:
		if n.Elements == nil {
			return nil
		}
		return []Node{n.Elements}

	case *TupleRange:
		return nodes(n.From, n.To)

	case *FunctionCall:
		if n.Args == nil {
			return nil
		}
		return []Node{n.Args}

	case *Arguments:
		children := make([]Node, len(n.Exprs))
		for i, e := range n.Exprs {
			children[i] = e
		}
		return children

	case *SelectExpression:
		return nodes(n.Index, n.Tuple)
	case *SimpleExpression:
		return nodes(n.Left, n.Right)
	case *Factor:
		return nodes(n.Left, n.Right)
	case *UnaryMinus:
		return nodes(n.Operand)

	case *Parameter, *EachStatement, *ReduceOperation,
		*VarIdent, *ConstIdent, *TupleIdent, *FuncIdent,
		*NumberLiteral, *StringLiteral:
		return nil

	default:
		panic(fmt.Sprintf("ast: unexpected node type %T", n))
	}
}

// nodes drops nil interface values
func nodes(list ...Node) []Node {
	out := make([]Node, 0, len(list))
	for _, n := range list {
		if n != nil {
			out = append(out, n)
		}
	}
	return out
}
