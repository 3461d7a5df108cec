// File: doc.go
// Title: TUPL Package Documentation
// Description: Front end for TUPL, a small tuple pipeline language.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial package documentation
// - 2026-10-14 v0.2.0: TUPL front end overview

/*
Package tupl checks TUPL programs.

A TUPL program is a list of definitions followed by a return value:

	N <- 3.
	define Add[x,y] begin = x + y. end.
	<t> <- [1 .. N].
	[1, 2, 3] -> <u>.
	!= <t> ++ <u> | each:Add | +.

The Engine runs three stages on a source text. The lexer (package parser)
splits it into tokens, the parser builds an ast.Program, and the semantic
analyzer (package semantic) reports redefinitions, undefined names and call
arity mismatches.

	engine, err := tupl.NewEngine()
	if err != nil {
		return err
	}
	result, err := engine.Check(src)
	if err != nil {
		return err // TUPL_LEXICAL or TUPL_SYNTAX
	}
	for _, msg := range result.Messages() {
		fmt.Println(msg)
	}

Lexical and syntax errors stop processing and are returned as errors with
the codes TUPL_LEXICAL and TUPL_SYNTAX. Semantic diagnostics never produce
an error; they are listed on the Result together with the tree.

The language is checked, not evaluated.
*/
package tupl
