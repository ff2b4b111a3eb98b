package render

import (
	"notfound/pkg/domain"

	"github.com/charmbracelet/lipgloss"
)

// Palette holds the styles for one theme.
type Palette struct {
	Title  lipgloss.Style
	Muted  lipgloss.Style
	Accent lipgloss.Style
	Good   lipgloss.Style
	Warn   lipgloss.Style
	Card   lipgloss.Style
	Label  lipgloss.Style
}

func newPalette(fg, muted, accent, good, warn, border lipgloss.Color) Palette {
	base := lipgloss.NewStyle().Foreground(fg)

	return Palette{
		Title:  base.Bold(true).Foreground(accent),
		Muted:  base.Foreground(muted),
		Accent: base.Foreground(accent),
		Good:   base.Foreground(good),
		Warn:   base.Foreground(warn),
		Label:  base.Bold(true),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1),
	}
}

var (
	lightPalette = newPalette("#1F2937", "#6B7280", "#4F46E5", "#059669", "#D97706", "#D1D5DB")
	darkPalette  = newPalette("#F3F4F6", "#9CA3AF", "#A5B4FC", "#34D399", "#FBBF24", "#4B5563")
)

// PaletteFor returns the palette of t.
func PaletteFor(t domain.Theme) Palette {
	if t == domain.ThemeDark {
		return darkPalette
	}

	return lightPalette
}
