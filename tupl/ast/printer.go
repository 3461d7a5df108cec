// File: printer.go
// Title: TUPL AST Tree Printer
// Description: Renders an AST as an indented tree, one node per line, using
//              Walk. The tree is only read.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-25 v0.1.0: StringVisitor for command trees
// - 2026-10-14 v0.2.0: Walk-based printer with TUPL node labels

package ast

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Printer writes indented trees to an io.Writer.
type Printer struct {
	w      io.Writer
	Indent string
}

// NewPrinter creates a printer indenting with two spaces
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w, Indent: "  "}
}

type printState struct {
	p     *Printer
	depth int
	err   error
}

// Print writes the tree rooted at root. It returns the first write error.
func (p *Printer) Print(root Node) error {
	st := &printState{p: p}
	Walk(root, enterPrint, leavePrint, st)
	return st.err
}

func enterPrint(n Node, st *printState) {
	if st.err == nil {
		line := strings.Repeat(st.p.Indent, st.depth) + Label(n) + "\n"
		_, st.err = io.WriteString(st.p.w, line)
	}
	st.depth++
}

func leavePrint(_ Node, st *printState) {
	st.depth--
}

// Sprint returns the printed tree as a string
func Sprint(root Node) string {
	var buf bytes.Buffer
	_ = NewPrinter(&buf).Print(root)
	return buf.String()
}

// Label is the one-line description of a node: its tag followed by the
// name, operator or literal it carries.
func Label(n Node) string {
	if v, ok := Value(n); ok {
		return n.Kind().String() + ": " + v
	}
	return n.Kind().String()
}

// Value returns the name, operator or literal stored on n, if it has one.
func Value(n Node) (string, bool) {
	switch n := n.(type) {
	case *FunctionDefinition:
		return n.Name, true
	case *Parameter:
		return n.Name, true
	case *VariableDefinition:
		return n.Name, true
	case *ConstantDefinition:
		return n.Name, true
	case *TupleDefinition:
		return n.Name, true
	case *ReturnValue:
		return n.Form.String(), true
	case *EachStatement:
		return n.Func, true
	case *ReduceOperation:
		return n.Op, true
	case *TupleExpression:
		return n.Op, true
	case *TupleRange:
		return n.Op, true
	case *FunctionCall:
		return n.Name, true
	case *SimpleExpression:
		return n.Op, true
	case *Factor:
		return n.Op, true
	case *VarIdent:
		return n.Name, true
	case *ConstIdent:
		return n.Name, true
	case *TupleIdent:
		return n.Name, true
	case *FuncIdent:
		return n.Name, true
	case *NumberLiteral:
		return strconv.FormatInt(n.Value, 10), true
	case *StringLiteral:
		return fmt.Sprintf("%q", n.Value), true
	default:
		return "", false
	}
}
