package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	ReelRed   = lipgloss.Color("#E5484D")
	DimGray   = lipgloss.Color("#6B7280")
	LightGray = lipgloss.Color("#9CA3AF")
	White     = lipgloss.Color("#F9FAFB")
)

// styles are bound to the console's writer so plain writers get plain text
type styles struct {
	Title    lipgloss.Style
	HelpKey  lipgloss.Style
	HelpArgs lipgloss.Style
	HelpDesc lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		Title: r.NewStyle().
			Foreground(White).
			Bold(true),
		HelpKey: r.NewStyle().
			Foreground(ReelRed),
		HelpArgs: r.NewStyle().
			Foreground(LightGray),
		HelpDesc: r.NewStyle().
			Foreground(DimGray),
	}
}
