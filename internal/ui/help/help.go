package help

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/zaibi326/crm-success-hub-sub000/internal/ui/theme"
)

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key         string
	Description string
}

// Section groups related key bindings under a heading.
type Section struct {
	Title string
	Keys  []KeyBinding
}

// GetGlobalKeys returns global key bindings
func GetGlobalKeys() []KeyBinding {
	return []KeyBinding{
		{"?", "Toggle help"},
		{"q, Ctrl+C", "Quit application"},
		{"Esc/Enter", "Dismiss error"},
		{"r, F5", "Reload leads"},
	}
}

// GetTableKeys returns lead table key bindings
func GetTableKeys() []KeyBinding {
	return []KeyBinding{
		{"↑/k", "Move up"},
		{"↓/j", "Move down"},
		{"g/G", "First / last lead"},
		{"/", "Search leads"},
		{"s", "Cycle sort field"},
		{"c", "Copy property address"},
	}
}

// GetFilterKeys returns filter panel key bindings
func GetFilterKeys() []KeyBinding {
	return []KeyBinding{
		{"f", "Open filter panel"},
		{"Ctrl+R", "Clear all filters"},
		{"a", "Add condition"},
		{"d", "Remove condition"},
		{"Ctrl+S", "Save filters as a view"},
		{"v", "Open saved views"},
	}
}

// Sections returns all help sections in display order.
func Sections() []Section {
	return []Section{
		{"Global", GetGlobalKeys()},
		{"Leads", GetTableKeys()},
		{"Filters", GetFilterKeys()},
	}
}

// Render creates the help view
func Render(width, height int, th theme.Theme) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(th.BorderFocused).
		Padding(1, 0)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(th.Info).
		Padding(0, 0, 0, 2)

	keyStyle := lipgloss.NewStyle().
		Foreground(th.Warning).
		Width(20)

	descStyle := lipgloss.NewStyle().
		Foreground(th.Foreground)

	var b strings.Builder

	b.WriteString(titleStyle.Render("crmview - Keyboard Shortcuts"))
	b.WriteString("\n\n")

	for _, sec := range Sections() {
		b.WriteString(sectionStyle.Render(sec.Title))
		b.WriteString("\n")
		for _, kb := range sec.Keys {
			b.WriteString("  ")
			b.WriteString(keyStyle.Render(kb.Key))
			b.WriteString(descStyle.Render(kb.Description))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(lipgloss.NewStyle().Faint(true).Render("Press '?' or Esc to close help"))

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(th.BorderFocused).
		Padding(1, 2).
		Width(max(width-4, 0)).
		Height(max(height-4, 0))

	return boxStyle.Render(b.String())
}
