package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#10B981")
	colorAccent    = lipgloss.Color("#F59E0B")
	colorError     = lipgloss.Color("#EF4444")
	colorMuted     = lipgloss.Color("#6B7280")
)

// Styles
var (
	// Title styles
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)

	// Result styles
	OKStyle = lipgloss.NewStyle().
		Foreground(colorSecondary).
		Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)

	DiagnosticStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	PositionStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	// Tree styles
	KindStyle = lipgloss.NewStyle().
			Foreground(colorPrimary)

	ValueStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	// Table styles
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorMuted).
			Underline(true)
)

// palette is the set of styles a Renderer applies
type palette struct {
	title, subtitle, ok, err, diagnostic, position, kind, value, header lipgloss.Style
}

func colored() palette {
	return palette{
		title:      TitleStyle,
		subtitle:   SubtitleStyle,
		ok:         OKStyle,
		err:        ErrorStyle,
		diagnostic: DiagnosticStyle,
		position:   PositionStyle,
		kind:       KindStyle,
		value:      ValueStyle,
		header:     HeaderStyle,
	}
}

func plain() palette {
	s := lipgloss.NewStyle()
	return palette{s, s, s, s, s, s, s, s, s}
}
