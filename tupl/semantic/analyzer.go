// File: analyzer.go
// Title: TUPL Semantic Analyzer
// Description: Checks name definitions, references and function call arity
//              over a parsed program and collects diagnostics in traversal
//              order.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package semantic

import (
	"fmt"

	"github.com/hashicorp/go-set/v2"

	mdwlog "github.com/msto63/tuplang/foundation/core/log"
	"github.com/msto63/tuplang/tupl/ast"
)

// Rule identifies the check that produced a diagnostic
type Rule int

const (
	RuleRedefinition    Rule = iota // name bound twice
	RuleUndefined                   // reference to an unbound name
	RuleUnknownFunction             // call of an undefined function
	RuleArity                       // wrong number of call arguments
)

func (r Rule) String() string {
	switch r {
	case RuleRedefinition:
		return "redefinition"
	case RuleUndefined:
		return "undefined"
	case RuleUnknownFunction:
		return "unknown_function"
	case RuleArity:
		return "arity"
	default:
		return fmt.Sprintf("Rule(%d)", int(r))
	}
}

// Diagnostic is one semantic violation
type Diagnostic struct {
	Rule    Rule
	Name    string // Offending name
	Message string
	Line    int
	Column  int
}

func (d Diagnostic) String() string {
	return d.Message
}

// Pos returns the position of the offending node
func (d Diagnostic) Pos() ast.Position {
	return ast.Position{Line: d.Line, Column: d.Column}
}

// Context holds the state of one analysis. Every analysis gets a fresh
// Context, so analyses of different programs never share state.
type Context struct {
	Defined     *set.Set[string]    // every bound name
	Funcs       map[string][]string // function name to parameter names
	Diagnostics []Diagnostic

	scopes scopeStack
}

// NewContext returns an empty analysis context
func NewContext() *Context {
	return &Context{
		Defined: set.New[string](0),
		Funcs:   make(map[string][]string),
	}
}

// Messages returns the diagnostic messages in order
func (c *Context) Messages() []string {
	messages := make([]string, len(c.Diagnostics))
	for i, d := range c.Diagnostics {
		messages[i] = d.Message
	}
	return messages
}

// HasErrors reports whether any diagnostic was recorded
func (c *Context) HasErrors() bool {
	return len(c.Diagnostics) > 0
}

func (c *Context) report(rule Rule, name string, n ast.Node, message string) {
	pos := n.Pos()
	c.Diagnostics = append(c.Diagnostics, Diagnostic{
		Rule:    rule,
		Name:    name,
		Message: message,
		Line:    pos.Line,
		Column:  pos.Column,
	})
}

// bind adds name to the defined set or reports a redefinition
func (c *Context) bind(name string, n ast.Node) {
	if !c.Defined.Insert(name) {
		c.report(RuleRedefinition, name, n, fmt.Sprintf("%s is already defined!", name))
	}
}

func (c *Context) requireDefined(name string, n ast.Node) {
	if !c.Defined.Contains(name) {
		c.report(RuleUndefined, name, n, fmt.Sprintf("%s is not defined!", name))
	}
}

// Analyzer runs the semantic checks
type Analyzer struct {
	logger *mdwlog.Logger
}

// Options configures the analyzer
type Options struct {
	Logger *mdwlog.Logger
}

// NewAnalyzer creates an analyzer with the given options
func NewAnalyzer(opts Options) *Analyzer {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	return &Analyzer{logger: opts.Logger.WithField("component", "tupl-semantic")}
}

// Analyze checks prog with a default analyzer
func Analyze(prog *ast.Program) *Context {
	return NewAnalyzer(Options{}).Analyze(prog)
}

// Analyze checks prog and returns the populated context. A nil program
// yields an empty context.
func (a *Analyzer) Analyze(prog *ast.Program) *Context {
	ctx := NewContext()
	if prog == nil {
		return ctx
	}

	timer := a.logger.StartTimer("semantic analysis")
	ast.Walk(prog, enter, leave, ctx)
	timer.WithField("diagnostics", len(ctx.Diagnostics)).
		WithField("defined", ctx.Defined.Size()).
		Stop()

	return ctx
}

func enter(n ast.Node, c *Context) {
	switch n := n.(type) {
	case *ast.ConstantDefinition:
		c.bind(n.Name, n)
	case *ast.TupleDefinition:
		c.bind(n.Name, n)
	case *ast.VariableDefinition:
		c.bind(n.Name, n)
	case *ast.FunctionDefinition:
		var params []string
		if n.Formals != nil {
			params = n.Formals.Names()
		}
		if _, exists := c.Funcs[n.Name]; !exists {
			c.Funcs[n.Name] = params
		}
		c.scopes.push(params)
		c.bind(n.Name, n)
	case *ast.ConstIdent:
		c.requireDefined(n.Name, n)
	case *ast.TupleIdent:
		c.requireDefined(n.Name, n)
	case *ast.EachStatement:
		c.requireDefined(n.Func, n)
	case *ast.VarIdent:
		if !c.scopes.visible(n.Name) {
			c.requireDefined(n.Name, n)
		}
	case *ast.FunctionCall:
		params, ok := c.Funcs[n.Name]
		if !ok {
			c.report(RuleUnknownFunction, n.Name, n, fmt.Sprintf("Function %s is not defined!", n.Name))
			return
		}
		if n.ArgCount() != len(params) {
			c.report(RuleArity, n.Name, n,
				fmt.Sprintf("The number of parameters of the function %s should be %d", n.Name, len(params)))
		}
	}
}

func leave(n ast.Node, c *Context) {
	if _, ok := n.(*ast.FunctionDefinition); ok {
		c.scopes.pop()
	}
}
