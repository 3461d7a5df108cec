// File: parser.go
// Title: TUPL Recursive Descent Parser
// Description: Builds the TUPL AST from a token stream. Stops at the first
//              token no grammar alternative accepts; no partial tree is
//              returned.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial parser implementation
// - 2026-10-14 v0.2.0: TUPL grammar, per-call parse state

package parser

import (
	"fmt"

	mdwerror "github.com/msto63/tuplang/foundation/core/error"
	mdwlog "github.com/msto63/tuplang/foundation/core/log"
	"github.com/msto63/tuplang/tupl/ast"
)

// Parser implements recursive descent parsing for TUPL. A Parser keeps no
// state between calls and may be shared by goroutines.
type Parser struct {
	logger  *mdwlog.Logger
	options Options
}

// Options configures parser behavior
type Options struct {
	Logger    *mdwlog.Logger
	MaxTokens int // 0 means unlimited
}

// New creates a new TUPL parser with the given options
func New(opts Options) (*Parser, error) {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	if opts.MaxTokens < 0 {
		return nil, mdwerror.New("MaxTokens must not be negative").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("parser.New").
			WithDetail("maxTokens", opts.MaxTokens)
	}

	return &Parser{
		logger:  opts.Logger.WithField("component", "tupl-parser"),
		options: opts,
	}, nil
}

// ParseInput tokenizes and parses src with a default parser
func ParseInput(src string) (*ast.Program, error) {
	p, err := New(Options{})
	if err != nil {
		return nil, err
	}
	return p.ParseSource(src)
}

// ParseSource tokenizes and parses src
func (p *Parser) ParseSource(src string) (*ast.Program, error) {
	tokens, err := TokenizeInput(src)
	if err != nil {
		p.logger.Debug("TUPL lexing failed", mdwlog.Fields{"error": err.Error()})
		return nil, err
	}
	return p.Parse(tokens)
}

// Parse builds a program from tokens. A missing trailing EOF token is
// tolerated.
func (p *Parser) Parse(tokens []Token) (*ast.Program, error) {
	if p.options.MaxTokens > 0 && len(tokens) > p.options.MaxTokens {
		return nil, mdwerror.New(fmt.Sprintf("token stream exceeds maximum length: %d > %d",
			len(tokens), p.options.MaxTokens)).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("parser.Parse")
	}

	p.logger.Debug("Starting TUPL parsing", mdwlog.Fields{"tokens": len(tokens)})

	st := &state{tokens: tokens}
	prog, err := st.parseProgram()
	if err != nil {
		p.logger.Debug("TUPL parsing failed", mdwlog.Fields{"error": err.Error()})
		return nil, err
	}

	p.logger.Debug("TUPL parsing completed successfully", mdwlog.Fields{
		"definitions": len(prog.Definitions),
		"return":      prog.Return.Form.String(),
	})
	return prog, nil
}

// state is the cursor of one Parse call
type state struct {
	tokens []Token
	pos    int
}

// program : definition* return_value '.' EOF
func (s *state) parseProgram() (*ast.Program, error) {
	prog := &ast.Program{Position: s.current().Pos()}

	for !s.atReturnValue() {
		def, err := s.parseDefinition(true)
		if err != nil {
			return nil, err
		}
		prog.Definitions = append(prog.Definitions, def)
	}

	ret, err := s.parseReturnValue()
	if err != nil {
		return nil, err
	}
	prog.Return = ret

	if _, err := s.expect(TokenDot); err != nil {
		return nil, err
	}
	if _, err := s.expect(TokenEOF); err != nil {
		return nil, err
	}
	return prog, nil
}

// parseDefinition parses one top-level or function-local definition.
// Function definitions are only accepted at top level.
func (s *state) parseDefinition(topLevel bool) (ast.Definition, error) {
	tok := s.current()

	switch tok.Kind {
	case TokenDefine:
		if topLevel {
			return s.parseFunctionDefinition()
		}
	case TokenVarIdent:
		return s.parseVariableDefinition()
	case TokenConstIdent:
		return s.parseConstantDefinition()
	case TokenTupleIdent:
		if s.peek(1).Kind == TokenLArrow {
			return s.parseTupleDefinition()
		}
		return s.parseExportedTupleDefinition()
	case TokenLSquare, TokenFuncIdent:
		return s.parseExportedTupleDefinition()
	}

	expected := []string{"definition", TokenEq.String(), TokenNotEq.String()}
	return nil, s.syntaxError(expected...)
}

// function_def : 'define' funcIDENT '[' formals? ']' 'begin' body_def* return_value '.'? 'end' '.'
func (s *state) parseFunctionDefinition() (*ast.FunctionDefinition, error) {
	start := s.next() // define

	name, err := s.expect(TokenFuncIdent)
	if err != nil {
		return nil, err
	}
	fn := &ast.FunctionDefinition{Name: name.Value, Position: start.Pos()}

	if _, err := s.expect(TokenLSquare); err != nil {
		return nil, err
	}
	if s.current().Kind != TokenRSquare {
		formals, err := s.parseFormals()
		if err != nil {
			return nil, err
		}
		fn.Formals = formals
	}
	if _, err := s.expect(TokenRSquare); err != nil {
		return nil, err
	}
	if _, err := s.expect(TokenBegin); err != nil {
		return nil, err
	}

	for !s.atReturnValue() {
		def, err := s.parseDefinition(false)
		if err != nil {
			return nil, err
		}
		fn.Locals = append(fn.Locals, def)
	}

	ret, err := s.parseReturnValue()
	if err != nil {
		return nil, err
	}
	fn.Return = ret

	if s.current().Kind == TokenDot && s.peek(1).Kind == TokenEnd {
		s.next()
	}
	if _, err := s.expect(TokenEnd); err != nil {
		return nil, err
	}
	if _, err := s.expect(TokenDot); err != nil {
		return nil, err
	}
	return fn, nil
}

// formals : varIDENT (',' varIDENT)*
func (s *state) parseFormals() (*ast.Formals, error) {
	formals := &ast.Formals{Position: s.current().Pos()}
	for {
		tok, err := s.expect(TokenVarIdent)
		if err != nil {
			return nil, err
		}
		formals.Params = append(formals.Params, &ast.Parameter{Name: tok.Value, Position: tok.Pos()})

		if s.current().Kind != TokenComma {
			return formals, nil
		}
		s.next()
	}
}

// return_value : '=' simple_expression | '!=' pipe_expression
func (s *state) parseReturnValue() (*ast.ReturnValue, error) {
	tok := s.current()

	switch tok.Kind {
	case TokenEq:
		s.next()
		expr, err := s.parseSimpleExpression()
		if err != nil {
			return nil, err
		}
		return &ast.ReturnValue{Form: ast.ReturnScalar, Expr: expr, Position: tok.Pos()}, nil
	case TokenNotEq:
		s.next()
		expr, err := s.parsePipeExpression()
		if err != nil {
			return nil, err
		}
		return &ast.ReturnValue{Form: ast.ReturnPipeline, Expr: expr, Position: tok.Pos()}, nil
	}

	return nil, s.syntaxError(TokenEq.String(), TokenNotEq.String())
}

// var_def : varIDENT '<-' simple_expression '.'
func (s *state) parseVariableDefinition() (*ast.VariableDefinition, error) {
	name := s.next()
	if _, err := s.expect(TokenLArrow); err != nil {
		return nil, err
	}
	expr, err := s.parseSimpleExpression()
	if err != nil {
		return nil, err
	}
	if _, err := s.expect(TokenDot); err != nil {
		return nil, err
	}
	return &ast.VariableDefinition{Name: name.Value, Expr: expr, Position: name.Pos()}, nil
}

// const_def : constIDENT '<-' constant_expression '.'
func (s *state) parseConstantDefinition() (*ast.ConstantDefinition, error) {
	name := s.next()
	if _, err := s.expect(TokenLArrow); err != nil {
		return nil, err
	}
	expr, err := s.parseConstantExpression()
	if err != nil {
		return nil, err
	}
	if _, err := s.expect(TokenDot); err != nil {
		return nil, err
	}
	return &ast.ConstantDefinition{Name: name.Value, Expr: expr, Position: name.Pos()}, nil
}

// tuple_def : tupleIDENT '<-' tuple_expression '.'
func (s *state) parseTupleDefinition() (*ast.TupleDefinition, error) {
	name := s.next()
	s.next() // <-
	expr, err := s.parseTupleExpression()
	if err != nil {
		return nil, err
	}
	if _, err := s.expect(TokenDot); err != nil {
		return nil, err
	}
	return &ast.TupleDefinition{Name: name.Value, Expr: expr, Position: name.Pos()}, nil
}

// tuple_def2 : pipe_expression '->' tupleIDENT '.'
func (s *state) parseExportedTupleDefinition() (*ast.TupleDefinition, error) {
	start := s.current()
	expr, err := s.parsePipeExpression()
	if err != nil {
		return nil, err
	}
	if _, err := s.expect(TokenRArrow); err != nil {
		return nil, err
	}
	name, err := s.expect(TokenTupleIdent)
	if err != nil {
		return nil, err
	}
	if _, err := s.expect(TokenDot); err != nil {
		return nil, err
	}
	return &ast.TupleDefinition{Name: name.Value, Expr: expr, Position: start.Pos()}, nil
}

// constant_expression : constIDENT | NUMBER_LITERAL
func (s *state) parseConstantExpression() (ast.Expr, error) {
	tok := s.current()
	switch tok.Kind {
	case TokenConstIdent:
		s.next()
		return &ast.ConstIdent{Name: tok.Value, Position: tok.Pos()}, nil
	case TokenNumber:
		s.next()
		return &ast.NumberLiteral{Value: tok.Int, Position: tok.Pos()}, nil
	}
	return nil, s.syntaxError(TokenConstIdent.String(), TokenNumber.String())
}

// pipe_expression : tuple_expression ('|' pipe_operation)*
func (s *state) parsePipeExpression() (ast.TupleExpr, error) {
	left, err := s.parseTupleExpression()
	if err != nil {
		return nil, err
	}

	for s.current().Kind == TokenPipe {
		pos := s.next().Pos()

		op, err := s.parsePipeOperation()
		if err != nil {
			return nil, err
		}
		left = &ast.PipeExpression{Expr: left, Op: op, Position: pos}
	}

	return left, nil
}

// pipe_operation : funcIDENT | '*' | '+' | 'each' ':' funcIDENT
func (s *state) parsePipeOperation() (ast.PipeOperation, error) {
	tok := s.current()

	switch tok.Kind {
	case TokenFuncIdent:
		s.next()
		return &ast.FuncIdent{Name: tok.Value, Position: tok.Pos()}, nil
	case TokenMult, TokenPlus:
		s.next()
		return &ast.ReduceOperation{Op: tok.Value, Position: tok.Pos()}, nil
	case TokenEach:
		s.next()
		if _, err := s.expect(TokenColon); err != nil {
			return nil, err
		}
		name, err := s.expect(TokenFuncIdent)
		if err != nil {
			return nil, err
		}
		return &ast.EachStatement{Func: name.Value, Position: tok.Pos()}, nil
	}

	return nil, s.syntaxError(TokenFuncIdent.String(), TokenMult.String(), TokenPlus.String(), TokenEach.String())
}

// tuple_expression : tuple_atom ('++' tuple_atom)*
func (s *state) parseTupleExpression() (ast.TupleExpr, error) {
	left, err := s.parseTupleAtom()
	if err != nil {
		return nil, err
	}

	for s.current().Kind == TokenDoublePlus {
		op := s.next()

		right, err := s.parseTupleAtom()
		if err != nil {
			return nil, err
		}
		left = &ast.TupleExpression{Left: left, Op: op.Value, Right: right, Position: op.Pos()}
	}

	return left, nil
}

// tuple_atom : '[' constant_expression ('**'|'..') constant_expression ']'
//            | '[' arguments ']' | tupleIDENT | function_call
func (s *state) parseTupleAtom() (ast.TupleExpr, error) {
	tok := s.current()

	switch tok.Kind {
	case TokenLSquare:
		if s.atRange() {
			return s.parseTupleRange()
		}
		s.next()
		args, err := s.parseArguments()
		if err != nil {
			return nil, err
		}
		if _, err := s.expect(TokenRSquare); err != nil {
			return nil, err
		}
		return &ast.TupleLiteral{Elements: args, Position: tok.Pos()}, nil
	case TokenTupleIdent:
		s.next()
		return &ast.TupleIdent{Name: tok.Value, Position: tok.Pos()}, nil
	case TokenFuncIdent:
		return s.parseFunctionCall()
	}

	return nil, s.syntaxError(TokenLSquare.String(), TokenTupleIdent.String(), TokenFuncIdent.String())
}

// atRange reports whether the '[' at the cursor opens "[K ** K]" or "[K .. K]"
func (s *state) atRange() bool {
	first := s.peek(1).Kind
	op := s.peek(2).Kind
	return (first == TokenConstIdent || first == TokenNumber) &&
		(op == TokenDoubleMult || op == TokenDoubleDot)
}

func (s *state) parseTupleRange() (*ast.TupleRange, error) {
	start := s.next() // [
	from, err := s.parseConstantExpression()
	if err != nil {
		return nil, err
	}
	op := s.next() // ** or ..
	to, err := s.parseConstantExpression()
	if err != nil {
		return nil, err
	}
	if _, err := s.expect(TokenRSquare); err != nil {
		return nil, err
	}
	return &ast.TupleRange{Op: op.Value, From: from, To: to, Position: start.Pos()}, nil
}

// function_call : funcIDENT '[' arguments? ']'
func (s *state) parseFunctionCall() (*ast.FunctionCall, error) {
	name := s.next()
	call := &ast.FunctionCall{Name: name.Value, Position: name.Pos()}

	if _, err := s.expect(TokenLSquare); err != nil {
		return nil, err
	}
	if s.current().Kind == TokenRSquare {
		s.next()
		return call, nil
	}

	args, err := s.parseArguments()
	if err != nil {
		return nil, err
	}
	if _, err := s.expect(TokenRSquare); err != nil {
		return nil, err
	}
	call.Args = args
	return call, nil
}

// arguments : simple_expression (',' simple_expression)*
func (s *state) parseArguments() (*ast.Arguments, error) {
	args := &ast.Arguments{Position: s.current().Pos()}
	for {
		expr, err := s.parseSimpleExpression()
		if err != nil {
			return nil, err
		}
		args.Exprs = append(args.Exprs, expr)

		if s.current().Kind != TokenComma {
			return args, nil
		}
		s.next()
	}
}

// simple_expression : term (('+'|'-') term)*
func (s *state) parseSimpleExpression() (ast.Expr, error) {
	left, err := s.parseTerm()
	if err != nil {
		return nil, err
	}

	for s.current().Kind == TokenPlus || s.current().Kind == TokenMinus {
		op := s.next()

		right, err := s.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &ast.SimpleExpression{Op: op.Value, Left: left, Right: right, Position: op.Pos()}
	}

	return left, nil
}

// term : factor (('*'|'/') factor)*
func (s *state) parseTerm() (ast.Expr, error) {
	left, err := s.parseFactor()
	if err != nil {
		return nil, err
	}

	for s.current().Kind == TokenMult || s.current().Kind == TokenDiv {
		op := s.next()

		right, err := s.parseFactor()
		if err != nil {
			return nil, err
		}
		left = &ast.Factor{Op: op.Value, Left: left, Right: right, Position: op.Pos()}
	}

	return left, nil
}

// factor : atom | '-' atom
func (s *state) parseFactor() (ast.Expr, error) {
	if s.current().Kind != TokenMinus {
		return s.parseAtom()
	}

	minus := s.next()
	operand, err := s.parseAtom()
	if err != nil {
		return nil, err
	}
	return &ast.UnaryMinus{Operand: operand, Position: minus.Pos()}, nil
}

// atom : function_call | '(' simple_expression ')' | NUMBER_LITERAL | STRING_LITERAL
//      | varIDENT | constIDENT | 'select' ':' constant_expression '[' tuple_expression ']'
func (s *state) parseAtom() (ast.Expr, error) {
	tok := s.current()

	switch tok.Kind {
	case TokenFuncIdent:
		return s.parseFunctionCall()
	case TokenLParen:
		s.next()
		expr, err := s.parseSimpleExpression()
		if err != nil {
			return nil, err
		}
		if _, err := s.expect(TokenRParen); err != nil {
			return nil, err
		}
		return expr, nil
	case TokenNumber:
		s.next()
		return &ast.NumberLiteral{Value: tok.Int, Position: tok.Pos()}, nil
	case TokenString:
		s.next()
		return &ast.StringLiteral{Value: tok.Value, Position: tok.Pos()}, nil
	case TokenVarIdent:
		s.next()
		return &ast.VarIdent{Name: tok.Value, Position: tok.Pos()}, nil
	case TokenConstIdent:
		s.next()
		return &ast.ConstIdent{Name: tok.Value, Position: tok.Pos()}, nil
	case TokenSelect:
		return s.parseSelect()
	}

	return nil, s.syntaxError("expression")
}

func (s *state) parseSelect() (*ast.SelectExpression, error) {
	start := s.next() // select
	if _, err := s.expect(TokenColon); err != nil {
		return nil, err
	}
	index, err := s.parseConstantExpression()
	if err != nil {
		return nil, err
	}
	if _, err := s.expect(TokenLSquare); err != nil {
		return nil, err
	}
	tuple, err := s.parseTupleExpression()
	if err != nil {
		return nil, err
	}
	if _, err := s.expect(TokenRSquare); err != nil {
		return nil, err
	}
	return &ast.SelectExpression{Index: index, Tuple: tuple, Position: start.Pos()}, nil
}

// Cursor helpers

func (s *state) atReturnValue() bool {
	k := s.current().Kind
	return k == TokenEq || k == TokenNotEq
}

func (s *state) current() Token {
	return s.peek(0)
}

// peek returns the token n positions ahead; past the end it is EOF
func (s *state) peek(n int) Token {
	if i := s.pos + n; i < len(s.tokens) {
		return s.tokens[i]
	}
	eof := Token{Kind: TokenEOF}
	if len(s.tokens) > 0 {
		last := s.tokens[len(s.tokens)-1]
		eof.Line, eof.Column = last.Line, last.Column+len(last.Value)
	}
	return eof
}

// next consumes and returns the current token
func (s *state) next() Token {
	tok := s.current()
	if s.pos < len(s.tokens) {
		s.pos++
	}
	return tok
}

func (s *state) expect(kind TokenKind) (Token, error) {
	if s.current().Kind != kind {
		return Token{}, s.syntaxError(kind.String())
	}
	return s.next(), nil
}

func (s *state) syntaxError(expected ...string) error {
	return &SyntaxError{Token: s.current(), Expected: expected}
}
