// File: nodes.go
// Title: TUPL AST Node Definitions
// Description: Defines the closed set of AST node types produced by the
//              TUPL parser: definitions, return values, scalar expressions,
//              tuple expressions, pipe operations and leaves.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial AST node definitions
// - 2026-10-14 v0.2.0: TUPL node set as a sealed sum type

package ast

import (
	"fmt"
	"strconv"
)

// Position represents a position in the source code
type Position struct {
	Line   int // Line number (1-based)
	Column int // Column number (1-based)
}

// String returns "line:column"
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// IsValid reports whether the position was set by the parser
func (p Position) IsValid() bool {
	return p.Line > 0
}

// NodeKind identifies the shape of a node. Its String form is the node tag
// used in tree output.
type NodeKind int

const (
	KindProgram NodeKind = iota
	KindFunctionDefinition
	KindFormals
	KindParameter
	KindVariableDefinition
	KindConstantDefinition
	KindTupleDefinition
	KindReturnValue
	KindPipeExpression
	KindEachStatement
	KindReduceMult
	KindReducePlus
	KindTupleExpression
	KindTupleLiteral
	KindTupleRange
	KindFunctionCall
	KindArguments
	KindSelectExpression
	KindSimpleExpression
	KindFactor
	KindUnaryMinus
	KindVarIdent
	KindConstIdent
	KindTupleIdent
	KindFuncIdent
	KindNumberLiteral
	KindStringLiteral
)

var kindNames = [...]string{
	KindProgram:            "program",
	KindFunctionDefinition: "function_definition",
	KindFormals:            "formals",
	KindParameter:          "parameter",
	KindVariableDefinition: "variable_definition",
	KindConstantDefinition: "constant_definition",
	KindTupleDefinition:    "tuple_definition",
	KindReturnValue:        "simple_return_value",
	KindPipeExpression:     "pipe_expression",
	KindEachStatement:      "each_statement",
	KindReduceMult:         "MULT",
	KindReducePlus:         "PLUS",
	KindTupleExpression:    "tuple_expression",
	KindTupleLiteral:       "tuple_atom",
	KindTupleRange:         "tuple_range",
	KindFunctionCall:       "function_call",
	KindArguments:          "arguments",
	KindSelectExpression:   "select_expression",
	KindSimpleExpression:   "simple_expression",
	KindFactor:             "factor",
	KindUnaryMinus:         "unary_minus",
	KindVarIdent:           "varIDENT",
	KindConstIdent:         "constIDENT",
	KindTupleIdent:         "tupleIDENT",
	KindFuncIdent:          "funcIDENT",
	KindNumberLiteral:      "NUMBER_LITERAL",
	KindStringLiteral:      "STRING_LITERAL",
}

// String returns the node tag
func (k NodeKind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "NodeKind(" + strconv.Itoa(int(k)) + ")"
}

// Node is implemented only by the types in this package.
type Node interface {
	Kind() NodeKind
	Pos() Position
	node()
}

// Definition is a top-level or function-local binding.
type Definition interface {
	Node
	BoundName() string
	definitionNode()
}

// Expr is a scalar expression.
type Expr interface {
	Node
	exprNode()
}

// TupleExpr is a tuple-valued expression, including pipe chains.
type TupleExpr interface {
	Node
	tupleExprNode()
}

// PipeOperation is the right-hand side of a '|' in a pipe expression.
type PipeOperation interface {
	Node
	pipeOperationNode()
}

// ReturnKind distinguishes the two return value forms.
type ReturnKind int

const (
	// ReturnScalar is "= simple_expression"
	ReturnScalar ReturnKind = iota
	// ReturnPipeline is "!= pipe_expression"
	ReturnPipeline
)

// String returns the operator that introduces the return value
func (r ReturnKind) String() string {
	if r == ReturnPipeline {
		return "!="
	}
	return "="
}

// Program is the root of every parse.
type Program struct {
	Definitions []Definition
	Return      *ReturnValue
	Position    Position
}

// FunctionDefinition is "define Name[formals] begin ... end."
type FunctionDefinition struct {
	Name     string
	Formals  *Formals // nil when the header has no parameters
	Locals   []Definition
	Return   *ReturnValue
	Position Position
}

// Arity returns the declared parameter count
func (f *FunctionDefinition) Arity() int {
	if f.Formals == nil {
		return 0
	}
	return len(f.Formals.Params)
}

// Formals is the non-empty parameter list of a function header.
type Formals struct {
	Params   []*Parameter
	Position Position
}

// Names returns the parameter names in declaration order
func (f *Formals) Names() []string {
	names := make([]string, len(f.Params))
	for i, p := range f.Params {
		names[i] = p.Name
	}
	return names
}

// Parameter is one formal parameter.
type Parameter struct {
	Name     string
	Position Position
}

// VariableDefinition is "name <- simple_expression."
type VariableDefinition struct {
	Name     string
	Expr     Expr
	Position Position
}

// ConstantDefinition is "NAME <- constant_expression."; Expr is a
// *ConstIdent or *NumberLiteral.
type ConstantDefinition struct {
	Name     string
	Expr     Expr
	Position Position
}

// TupleDefinition binds a tuple name. Both "<t> <- e." and "e -> <t>."
// produce this node.
type TupleDefinition struct {
	Name     string
	Expr     TupleExpr
	Position Position
}

// ReturnValue is the result expression of a program or function body.
// Expr is an Expr for ReturnScalar and a TupleExpr for ReturnPipeline.
type ReturnValue struct {
	Form     ReturnKind
	Expr     Node
	Position Position
}

// PipeExpression applies Op to the tuple produced by Expr.
type PipeExpression struct {
	Expr     TupleExpr
	Op       PipeOperation
	Position Position
}

// EachStatement is the "each: Func" pipe operation.
type EachStatement struct {
	Func     string
	Position Position
}

// ReduceOperation is the '*' or '+' pipe operation.
type ReduceOperation struct {
	Op       string
	Position Position
}

// TupleExpression is "left ++ right".
type TupleExpression struct {
	Left     TupleExpr
	Op       string
	Right    TupleExpr
	Position Position
}

// TupleLiteral is "[e1, e2, ...]".
type TupleLiteral struct {
	Elements *Arguments
	Position Position
}

// TupleRange is "[from ** to]" or "[from .. to]". From and To are
// *ConstIdent or *NumberLiteral.
type TupleRange struct {
	Op       string
	From     Expr
	To       Expr
	Position Position
}

// FunctionCall is "Name[args]". It is both a scalar and a tuple expression.
type FunctionCall struct {
	Name     string
	Args     *Arguments // nil for "Name[]"
	Position Position
}

// ArgCount returns the number of actual arguments
func (f *FunctionCall) ArgCount() int {
	if f.Args == nil {
		return 0
	}
	return len(f.Args.Exprs)
}

// Arguments is a non-empty comma-separated expression list.
type Arguments struct {
	Exprs    []Expr
	Position Position
}

// SelectExpression is "select: index [tuple]".
type SelectExpression struct {
	Index    Expr
	Tuple    TupleExpr
	Position Position
}

// SimpleExpression is "left + right" or "left - right".
type SimpleExpression struct {
	Op       string
	Left     Expr
	Right    Expr
	Position Position
}

// Factor is "left * right" or "left / right".
type Factor struct {
	Op       string
	Left     Expr
	Right    Expr
	Position Position
}

// UnaryMinus is "-atom".
type UnaryMinus struct {
	Operand  Expr
	Position Position
}

// VarIdent is a variable or parameter reference.
type VarIdent struct {
	Name     string
	Position Position
}

// ConstIdent is a constant reference.
type ConstIdent struct {
	Name     string
	Position Position
}

// TupleIdent is a tuple reference; Name keeps the angle brackets.
type TupleIdent struct {
	Name     string
	Position Position
}

// FuncIdent is a named function pipe operation.
type FuncIdent struct {
	Name     string
	Position Position
}

// NumberLiteral is a non-negative integer literal.
type NumberLiteral struct {
	Value    int64
	Position Position
}

// StringLiteral holds the text between the quotes.
type StringLiteral struct {
	Value    string
	Position Position
}

func (n *Program) Kind() NodeKind            { return KindProgram }
func (n *FunctionDefinition) Kind() NodeKind { return KindFunctionDefinition }
func (n *Formals) Kind() NodeKind            { return KindFormals }
func (n *Parameter) Kind() NodeKind          { return KindParameter }
func (n *VariableDefinition) Kind() NodeKind { return KindVariableDefinition }
func (n *ConstantDefinition) Kind() NodeKind { return KindConstantDefinition }
func (n *TupleDefinition) Kind() NodeKind    { return KindTupleDefinition }
func (n *ReturnValue) Kind() NodeKind        { return KindReturnValue }
func (n *PipeExpression) Kind() NodeKind     { return KindPipeExpression }
func (n *EachStatement) Kind() NodeKind      { return KindEachStatement }
func (n *TupleExpression) Kind() NodeKind    { return KindTupleExpression }
func (n *TupleLiteral) Kind() NodeKind       { return KindTupleLiteral }
func (n *TupleRange) Kind() NodeKind         { return KindTupleRange }
func (n *FunctionCall) Kind() NodeKind       { return KindFunctionCall }
func (n *Arguments) Kind() NodeKind          { return KindArguments }
func (n *SelectExpression) Kind() NodeKind   { return KindSelectExpression }
func (n *SimpleExpression) Kind() NodeKind   { return KindSimpleExpression }
func (n *Factor) Kind() NodeKind             { return KindFactor }
func (n *UnaryMinus) Kind() NodeKind         { return KindUnaryMinus }
func (n *VarIdent) Kind() NodeKind           { return KindVarIdent }
func (n *ConstIdent) Kind() NodeKind         { return KindConstIdent }
func (n *TupleIdent) Kind() NodeKind         { return KindTupleIdent }
func (n *FuncIdent) Kind() NodeKind          { return KindFuncIdent }
func (n *NumberLiteral) Kind() NodeKind      { return KindNumberLiteral }
func (n *StringLiteral) Kind() NodeKind      { return KindStringLiteral }

// Kind is KindReduceMult for '*' and KindReducePlus for '+'
func (n *ReduceOperation) Kind() NodeKind {
	if n.Op == "*" {
		return KindReduceMult
	}
	return KindReducePlus
}

func (n *Program) Pos() Position            { return n.Position }
func (n *FunctionDefinition) Pos() Position { return n.Position }
func (n *Formals) Pos() Position            { return n.Position }
func (n *Parameter) Pos() Position          { return n.Position }
func (n *VariableDefinition) Pos() Position { return n.Position }
func (n *ConstantDefinition) Pos() Position { return n.Position }
func (n *TupleDefinition) Pos() Position    { return n.Position }
func (n *ReturnValue) Pos() Position        { return n.Position }
func (n *PipeExpression) Pos() Position     { return n.Position }
func (n *EachStatement) Pos() Position      { return n.Position }
func (n *ReduceOperation) Pos() Position    { return n.Position }
func (n *TupleExpression) Pos() Position    { return n.Position }
func (n *TupleLiteral) Pos() Position       { return n.Position }
func (n *TupleRange) Pos() Position         { return n.Position }
func (n *FunctionCall) Pos() Position       { return n.Position }
func (n *Arguments) Pos() Position          { return n.Position }
func (n *SelectExpression) Pos() Position   { return n.Position }
func (n *SimpleExpression) Pos() Position   { return n.Position }
func (n *Factor) Pos() Position             { return n.Position }
func (n *UnaryMinus) Pos() Position         { return n.Position }
func (n *VarIdent) Pos() Position           { return n.Position }
func (n *ConstIdent) Pos() Position         { return n.Position }
func (n *TupleIdent) Pos() Position         { return n.Position }
func (n *FuncIdent) Pos() Position          { return n.Position }
func (n *NumberLiteral) Pos() Position      { return n.Position }
func (n *StringLiteral) Pos() Position      { return n.Position }

func (*Program) node()            {}
func (*FunctionDefinition) node() {}
func (*Formals) node()            {}
func (*Parameter) node()          {}
func (*VariableDefinition) node() {}
func (*ConstantDefinition) node() {}
func (*TupleDefinition) node()    {}
func (*ReturnValue) node()        {}
func (*PipeExpression) node()     {}
func (*EachStatement) node()      {}
func (*ReduceOperation) node()    {}
func (*TupleExpression) node()    {}
func (*TupleLiteral) node()       {}
func (*TupleRange) node()         {}
func (*FunctionCall) node()       {}
func (*Arguments) node()          {}
func (*SelectExpression) node()   {}
func (*SimpleExpression) node()   {}
func (*Factor) node()             {}
func (*UnaryMinus) node()         {}
func (*VarIdent) node()           {}
func (*ConstIdent) node()         {}
func (*TupleIdent) node()         {}
func (*FuncIdent) node()          {}
func (*NumberLiteral) node()      {}
func (*StringLiteral) node()      {}

func (n *FunctionDefinition) BoundName() string { return n.Name }
func (n *VariableDefinition) BoundName() string { return n.Name }
func (n *ConstantDefinition) BoundName() string { return n.Name }
func (n *TupleDefinition) BoundName() string    { return n.Name }

func (*FunctionDefinition) definitionNode() {}
func (*VariableDefinition) definitionNode() {}
func (*ConstantDefinition) definitionNode() {}
func (*TupleDefinition) definitionNode()    {}

func (*FunctionCall) exprNode()     {}
func (*SelectExpression) exprNode() {}
func (*SimpleExpression) exprNode() {}
func (*Factor) exprNode()           {}
func (*UnaryMinus) exprNode()       {}
func (*VarIdent) exprNode()         {}
func (*ConstIdent) exprNode()       {}
func (*NumberLiteral) exprNode()    {}
func (*StringLiteral) exprNode()    {}

func (*PipeExpression) tupleExprNode()  {}
func (*TupleExpression) tupleExprNode() {}
func (*TupleLiteral) tupleExprNode()    {}
func (*TupleRange) tupleExprNode()      {}
func (*TupleIdent) tupleExprNode()      {}
func (*FunctionCall) tupleExprNode()    {}

func (*FuncIdent) pipeOperationNode()       {}
func (*ReduceOperation) pipeOperationNode() {}
func (*EachStatement) pipeOperationNode()   {}
