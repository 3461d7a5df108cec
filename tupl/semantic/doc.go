// File: doc.go
// Title: TUPL Semantic Analysis Package Documentation
// Description: Semantic checks over the TUPL AST.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

/*
Package semantic checks a parsed TUPL program for definition and reference
errors.

The analyzer walks the tree once. Definitions of constants, tuples,
variables and functions add their name to a single namespace; a second
definition of the same name is reported as

	A is already defined!

References to constants, tuples and each-functions must be defined before
use. A variable reference is also accepted when it names a parameter of a
function whose definition is being visited; parameters go out of scope when
the definition is left. Calls are checked against the parameter count
recorded by the first definition of the callee.

Diagnostics never stop the analysis. They are returned in traversal order
on the Context, which is created fresh for every call to Analyze.
*/
package semantic
