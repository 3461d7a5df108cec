// File: doc.go
// Title: TUPL Abstract Syntax Tree Package Documentation
// Description: Defines the AST produced by the TUPL parser together with
//              traversal, printing and dump utilities.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial AST implementation
// - 2026-10-14 v0.2.0: TUPL node set, generic Walk

/*
Package ast defines the Abstract Syntax Tree for TUPL programs.

Every node type implements Node; the interface is sealed, so the set of node
kinds is closed and Children handles all of them. Definition, Expr, TupleExpr
and PipeOperation narrow the node types allowed in each field.

Walk performs a depth-first traversal with a pre-order and a post-order
callback sharing one context value:

	ast.Walk(program, enter, leave, state)

Nodes are built by the parser and never modified afterwards, so a tree may
be walked by several goroutines at once.
*/
package ast
