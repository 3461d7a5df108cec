// File: render.go
// Title: Terminal Output Rendering
// Description: Renders check results, trees, token lists and history
//              tables for the tupl command line.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/tuplang/internal/history"
	"github.com/msto63/tuplang/tupl/parser"
	"github.com/msto63/tuplang/tupl/semantic"
)

// SyntaxOK is printed for a program without diagnostics
const SyntaxOK = "syntax OK"

// Renderer formats command output. With colors disabled every method
// returns plain text.
type Renderer struct {
	styles palette
}

// NewRenderer creates a renderer; noColor disables all styling
func NewRenderer(noColor bool) *Renderer {
	if noColor {
		return &Renderer{styles: plain()}
	}
	return &Renderer{styles: colored()}
}

// Title renders a section heading such as a file name
func (r *Renderer) Title(title string) string {
	return r.styles.title.Render(title)
}

// OK renders the success line
func (r *Renderer) OK() string {
	return r.styles.ok.Render(SyntaxOK)
}

// Error renders a fatal error line
func (r *Renderer) Error(err error) string {
	return r.styles.err.Render(err.Error())
}

// Diagnostics renders one line per diagnostic: message, then position
func (r *Renderer) Diagnostics(diags []semantic.Diagnostic) string {
	var b strings.Builder
	for _, d := range diags {
		b.WriteString(r.styles.diagnostic.Render(d.Message))
		b.WriteString(" ")
		b.WriteString(r.styles.position.Render(fmt.Sprintf("(line %d, column %d)", d.Line, d.Column)))
		b.WriteString("\n")
	}
	return b.String()
}

// Tree colors the output of ast.Sprint: kind tags and values get their
// own styles, indentation is kept.
func (r *Renderer) Tree(printed string) string {
	var b strings.Builder
	for _, line := range strings.Split(strings.TrimSuffix(printed, "\n"), "\n") {
		if line == "" {
			continue
		}
		body := strings.TrimLeft(line, " ")
		b.WriteString(line[:len(line)-len(body)])

		kind, value, hasValue := strings.Cut(body, ": ")
		b.WriteString(r.styles.kind.Render(kind))
		if hasValue {
			b.WriteString(": ")
			b.WriteString(r.styles.value.Render(value))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Tokens renders one token per line as "line:column  KIND  value"
func (r *Renderer) Tokens(tokens []parser.Token) string {
	var b strings.Builder
	pos := lipgloss.NewStyle().Width(8)
	kind := lipgloss.NewStyle().Width(16)

	for _, tok := range tokens {
		b.WriteString(r.styles.position.Render(pos.Render(fmt.Sprintf("%d:%d", tok.Line, tok.Column))))
		b.WriteString(r.styles.kind.Render(kind.Render(tok.Kind.String())))
		if tok.Kind != parser.TokenEOF {
			b.WriteString(r.styles.value.Render(tok.Value))
		}
		b.WriteString("\n")
	}
	return b.String()
}

var runColumns = []struct {
	title string
	width int
}{
	{"ID", 38},
	{"TIME", 21},
	{"STATUS", 15},
	{"DIAG", 6},
	{"PATH", 0},
}

// Runs renders history runs as a table
func (r *Renderer) Runs(runs []*history.Run) string {
	if len(runs) == 0 {
		return r.styles.subtitle.Render("no recorded runs") + "\n"
	}

	var b strings.Builder
	cells := make([]string, len(runColumns))
	for i, col := range runColumns {
		cells[i] = r.styles.header.Render(col.title)
	}
	b.WriteString(r.row(cells))

	for _, run := range runs {
		status := r.styles.ok.Render(run.Status.String())
		if run.Status != history.StatusValid {
			status = r.styles.err.Render(run.Status.String())
		}
		b.WriteString(r.row([]string{
			run.ID,
			run.Timestamp.Local().Format("2006-01-02 15:04:05"),
			status,
			fmt.Sprintf("%d", run.DiagnosticCount),
			run.Path,
		}))
	}
	return b.String()
}

func (r *Renderer) row(cells []string) string {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		if w := runColumns[i].width; w > 0 {
			cell = lipgloss.NewStyle().Width(w).Render(cell)
		}
		parts[i] = cell
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...) + "\n"
}
