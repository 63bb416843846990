package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the color scheme and styling
type Theme struct {
	Name string

	// Background colors
	Background lipgloss.Color
	Foreground lipgloss.Color

	// UI elements
	Border        lipgloss.Color
	BorderFocused lipgloss.Color
	Selection     lipgloss.Color
	Cursor        lipgloss.Color
	Muted         lipgloss.Color

	// Status colors
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
	Info    lipgloss.Color

	// Table colors
	TableHeader      lipgloss.Color
	TableRowEven     lipgloss.Color
	TableRowOdd      lipgloss.Color
	TableRowSelected lipgloss.Color

	// Lead status badges
	LeadHot  lipgloss.Color
	LeadWarm lipgloss.Color
	LeadCold lipgloss.Color
	LeadPass lipgloss.Color

	// Filter chips
	FilterChip lipgloss.Color
	SortMarker lipgloss.Color
}

// GetTheme returns a theme by name
func GetTheme(name string) Theme {
	switch name {
	case "catppuccin", "catppuccin-mocha":
		return CatppuccinMochaTheme()
	default:
		return DefaultTheme()
	}
}

// LeadStatusColor returns the badge color for a lead status.
func (t Theme) LeadStatusColor(status string) lipgloss.Color {
	switch status {
	case "HOT":
		return t.LeadHot
	case "WARM":
		return t.LeadWarm
	case "COLD":
		return t.LeadCold
	case "PASS":
		return t.LeadPass
	default:
		return t.Foreground
	}
}
