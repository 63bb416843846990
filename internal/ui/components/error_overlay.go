package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/zaibi326/crm-success-hub-sub000/internal/ui/theme"
)

// ErrorOverlay shows a dismissable error box
type ErrorOverlay struct {
	Title   string
	Message string
	Width   int
	Theme   theme.Theme
}

// NewErrorOverlay creates a new error overlay
func NewErrorOverlay(th theme.Theme) *ErrorOverlay {
	return &ErrorOverlay{Width: 60, Theme: th}
}

// SetError sets the displayed error
func (e *ErrorOverlay) SetError(title, message string) {
	e.Title = title
	e.Message = message
}

// View renders the overlay
func (e *ErrorOverlay) View() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(e.Theme.Error).Render(e.Title)
	hint := lipgloss.NewStyle().Faint(true).Render("Press Esc or Enter to dismiss")

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(e.Theme.Error).
		Padding(1, 2).
		Width(e.Width).
		Render(title + "\n\n" + e.Message + "\n\n" + hint)
}
