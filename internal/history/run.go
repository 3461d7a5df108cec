// File: run.go
// Title: Check Run Records
// Description: Run and diagnostic records stored by the history store and
//              their construction from engine results.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package history

import (
	"time"

	"github.com/google/uuid"

	mdwerror "github.com/msto63/tuplang/foundation/core/error"
	"github.com/msto63/tuplang/foundation/utils/filex"
	"github.com/msto63/tuplang/tupl"
)

// Status is the outcome of a check run
type Status string

const (
	StatusValid        Status = "valid"         // no diagnostics
	StatusInvalid      Status = "invalid"       // semantic diagnostics
	StatusLexicalError Status = "lexical_error" // stopped in the lexer
	StatusSyntaxError  Status = "syntax_error"  // stopped in the parser
	StatusError        Status = "error"         // input could not be processed
)

func (s Status) String() string {
	return string(s)
}

// Run is one recorded check
type Run struct {
	ID              string
	Timestamp       time.Time
	Path            string
	SourceHash      string // hex SHA-256 of the source, empty when unread
	Status          Status
	Error           string // set for the error statuses
	Duration        time.Duration
	DiagnosticCount int
	Diagnostics     []Diagnostic // filled by Get
}

// Diagnostic is a stored semantic diagnostic
type Diagnostic struct {
	Rule    string
	Name    string
	Message string
	Line    int
	Column  int
}

// NewRun builds the record of checking path. Exactly one of result and err
// is expected to be non-nil.
func NewRun(path string, result *tupl.Result, err error) *Run {
	run := &Run{
		Timestamp: time.Now().UTC(),
		Path:      path,
	}

	if err != nil {
		run.ID = uuid.NewString()
		run.Error = err.Error()
		switch mdwerror.GetCode(err) {
		case mdwerror.CodeLexical:
			run.Status = StatusLexicalError
		case mdwerror.CodeSyntax:
			run.Status = StatusSyntaxError
		default:
			run.Status = StatusError
		}
		return run
	}

	run.ID = result.RunID.String()
	run.SourceHash = filex.SHA256String(result.Source)
	run.Duration = result.Duration
	run.Status = StatusValid
	if !result.Valid() {
		run.Status = StatusInvalid
	}

	for _, d := range result.Diagnostics {
		run.Diagnostics = append(run.Diagnostics, Diagnostic{
			Rule:    d.Rule.String(),
			Name:    d.Name,
			Message: d.Message,
			Line:    d.Line,
			Column:  d.Column,
		})
	}
	run.DiagnosticCount = len(run.Diagnostics)

	return run
}
