// File: tupl.go
// Title: TUPL Main Interface and Engine
// Description: High-level API running the TUPL front end: lexing, parsing
//              and semantic analysis of one source text.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial engine implementation
// - 2026-10-14 v0.2.0: TUPL check pipeline with run IDs

package tupl

import (
	"errors"
	"os"
	"time"

	"github.com/google/uuid"

	mdwerror "github.com/msto63/tuplang/foundation/core/error"
	mdwlog "github.com/msto63/tuplang/foundation/core/log"
	"github.com/msto63/tuplang/foundation/utils/filex"
	"github.com/msto63/tuplang/tupl/ast"
	"github.com/msto63/tuplang/tupl/parser"
	"github.com/msto63/tuplang/tupl/semantic"
)

// DefaultMaxSourceLength is the source size limit used when none is given
const DefaultMaxSourceLength = 1 << 20

// Engine coordinates lexer, parser and semantic analyzer
type Engine struct {
	parser   *parser.Parser
	analyzer *semantic.Analyzer
	logger   *mdwlog.Logger
	options  Options
}

// Options configures the engine
type Options struct {
	// Logger for engine operations (optional, defaults to default logger)
	Logger *mdwlog.Logger

	// MaxSourceLength limits source size in bytes (default: 1 MiB)
	MaxSourceLength int

	// MaxTokens limits the token stream handed to the parser (0 = unlimited)
	MaxTokens int
}

// Result is the outcome of checking one source text
type Result struct {
	RunID       uuid.UUID
	Path        string // Set by CheckFile
	Source      string
	Tokens      []parser.Token
	Program     *ast.Program
	Diagnostics []semantic.Diagnostic
	Duration    time.Duration
}

// Valid reports whether the program passed semantic analysis
func (r *Result) Valid() bool {
	return len(r.Diagnostics) == 0
}

// Messages returns the diagnostic messages in order
func (r *Result) Messages() []string {
	messages := make([]string, len(r.Diagnostics))
	for i, d := range r.Diagnostics {
		messages[i] = d.Message
	}
	return messages
}

// NewEngine creates an engine with the specified options
func NewEngine(opts ...Options) (*Engine, error) {
	options := Options{
		Logger:          mdwlog.GetDefault(),
		MaxSourceLength: DefaultMaxSourceLength,
	}

	if len(opts) > 0 {
		provided := opts[0]
		if provided.Logger != nil {
			options.Logger = provided.Logger
		}
		if provided.MaxSourceLength < 0 {
			return nil, mdwerror.New("MaxSourceLength must not be negative").
				WithCode(mdwerror.CodeInvalidInput).
				WithOperation("tupl.NewEngine")
		}
		if provided.MaxSourceLength > 0 {
			options.MaxSourceLength = provided.MaxSourceLength
		}
		options.MaxTokens = provided.MaxTokens
	}

	logger := options.Logger.WithField("component", "tupl-engine")

	p, err := parser.New(parser.Options{
		Logger:    logger,
		MaxTokens: options.MaxTokens,
	})
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to initialize TUPL parser").
			WithOperation("tupl.NewEngine")
	}

	engine := &Engine{
		parser:   p,
		analyzer: semantic.NewAnalyzer(semantic.Options{Logger: logger}),
		logger:   logger,
		options:  options,
	}

	logger.Debug("TUPL engine initialized", mdwlog.Fields{
		"maxSourceLength": options.MaxSourceLength,
		"maxTokens":       options.MaxTokens,
	})

	return engine, nil
}

// Tokenize returns the token stream of src
func (e *Engine) Tokenize(src string) ([]parser.Token, error) {
	if err := e.validateInput(src); err != nil {
		return nil, err
	}

	tokens, err := parser.TokenizeInput(src)
	if err != nil {
		return nil, wrapStageError(err, "tupl.Tokenize")
	}
	return tokens, nil
}

// Parse returns the syntax tree of src without semantic analysis
func (e *Engine) Parse(src string) (*ast.Program, error) {
	tokens, err := e.Tokenize(src)
	if err != nil {
		return nil, err
	}

	prog, err := e.parser.Parse(tokens)
	if err != nil {
		return nil, wrapStageError(err, "tupl.Parse")
	}
	return prog, nil
}

// Check runs the full front end on src. Lexical and syntax errors are
// returned as errors; semantic violations are collected in the result.
func (e *Engine) Check(src string) (*Result, error) {
	runID := uuid.New()
	logger := e.logger.WithRunID(runID.String())
	timer := logger.StartTimer("tupl_check")

	if err := e.validateInput(src); err != nil {
		timer.StopWithError(err)
		return nil, err
	}

	tokens, err := parser.TokenizeInput(src)
	if err != nil {
		err = wrapStageError(err, "tupl.Check")
		logger.Debug("TUPL lexing failed", mdwlog.Fields{"error": err.Error()})
		timer.Stop()
		return nil, err
	}

	prog, err := e.parser.Parse(tokens)
	if err != nil {
		err = wrapStageError(err, "tupl.Check")
		logger.Debug("TUPL parsing failed", mdwlog.Fields{"error": err.Error()})
		timer.Stop()
		return nil, err
	}

	ctx := e.analyzer.Analyze(prog)

	result := &Result{
		RunID:       runID,
		Source:      src,
		Tokens:      tokens,
		Program:     prog,
		Diagnostics: ctx.Diagnostics,
	}
	result.Duration = timer.WithField("diagnostics", len(result.Diagnostics)).Stop()

	return result, nil
}

// CheckFile reads path and checks its content
func (e *Engine) CheckFile(path string) (*Result, error) {
	src, err := filex.ReadLimited(path, int64(e.options.MaxSourceLength))
	if err != nil {
		code := mdwerror.CodeInternal
		switch {
		case errors.Is(err, os.ErrNotExist):
			code = mdwerror.CodeNotFound
		case errors.Is(err, filex.ErrTooLarge):
			code = mdwerror.CodeInvalidInput
		}
		return nil, mdwerror.Wrap(err, "failed to read TUPL source").
			WithCode(code).
			WithOperation("tupl.CheckFile").
			WithDetail("path", path)
	}

	result, err := e.Check(src)
	if err != nil {
		var mdwErr *mdwerror.Error
		if errors.As(err, &mdwErr) {
			mdwErr.WithDetail("path", path)
		}
		return nil, err
	}
	result.Path = path
	return result, nil
}

// validateInput enforces the source size limit
func (e *Engine) validateInput(src string) error {
	if len(src) > e.options.MaxSourceLength {
		return mdwerror.Newf("source exceeds maximum length: %d > %d", len(src), e.options.MaxSourceLength).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("tupl.validateInput").
			WithDetail("length", len(src))
	}
	return nil
}

// wrapStageError attaches the TUPL error code of the failing stage
func wrapStageError(err error, operation string) error {
	var lexErr *parser.LexicalError
	if errors.As(err, &lexErr) {
		return mdwerror.Wrap(err, "lexical analysis failed").
			WithCode(mdwerror.CodeLexical).
			WithOperation(operation).
			WithDetail("line", lexErr.Line).
			WithDetail("column", lexErr.Column)
	}

	var synErr *parser.SyntaxError
	if errors.As(err, &synErr) {
		return mdwerror.Wrap(err, "syntax analysis failed").
			WithCode(mdwerror.CodeSyntax).
			WithOperation(operation).
			WithDetail("line", synErr.Token.Line).
			WithDetail("column", synErr.Token.Column)
	}

	return mdwerror.Wrap(err, "TUPL processing failed").WithOperation(operation)
}
