package formatter

import (
	"github.com/alexanderramin/ideefase/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
)

// VerdictColor returns the style for a verdict.
func VerdictColor(v domain.Verdict) lipgloss.Style {
	if v == domain.VerdictGo {
		return StyleGreen
	}
	return StyleRed
}

// VerdictBadge returns a colored verdict indicator such as "● GO". Manual
// verdicts are marked so the reviewer sees the rules were overruled.
func VerdictBadge(v domain.Verdict, manual bool) string {
	badge := VerdictColor(v).Bold(true).Render("● " + v.Label())
	if manual {
		badge += Dim(" (handmatig)")
	}
	return badge
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}
