package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zaibi326/crm-success-hub-sub000/internal/ui/theme"
)

// SearchChangedMsg is sent on every edit of the search query
type SearchChangedMsg struct {
	Query string
}

// CloseSearchMsg is sent when search should be closed
type CloseSearchMsg struct {
	// Cleared is true when the query was discarded.
	Cleared bool
}

// SearchInput provides a live search box
type SearchInput struct {
	Input   textinput.Model
	Theme   theme.Theme
	Width   int
	Visible bool
}

// NewSearchInput creates a new search input
func NewSearchInput(th theme.Theme) *SearchInput {
	ti := textinput.New()
	ti.Placeholder = "Search owner, address, tax ID, email..."
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 40

	return &SearchInput{
		Input: ti,
		Theme: th,
	}
}

// Value returns the current query
func (s *SearchInput) Value() string {
	return s.Input.Value()
}

// Reset clears the search input
func (s *SearchInput) Reset() {
	s.Input.SetValue("")
}

// Update handles messages
func (s *SearchInput) Update(msg tea.Msg) (*SearchInput, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "enter":
			return s, func() tea.Msg { return CloseSearchMsg{} }
		case "esc":
			s.Reset()
			return s, tea.Batch(
				func() tea.Msg { return SearchChangedMsg{} },
				func() tea.Msg { return CloseSearchMsg{Cleared: true} },
			)
		}
	}

	before := s.Input.Value()
	var cmd tea.Cmd
	s.Input, cmd = s.Input.Update(msg)

	if after := s.Input.Value(); after != before {
		changed := func() tea.Msg { return SearchChangedMsg{Query: after} }
		return s, tea.Batch(cmd, changed)
	}
	return s, cmd
}

// View renders the search input
func (s *SearchInput) View() string {
	inputWidth := s.Width - 12
	if inputWidth < 20 {
		inputWidth = 20
	}
	s.Input.Width = inputWidth

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.Theme.BorderFocused).
		Padding(0, 1).
		Width(s.Width)

	helpStyle := lipgloss.NewStyle().
		Foreground(s.Theme.Muted).
		Italic(true)

	content := lipgloss.NewStyle().Foreground(s.Theme.Info).Bold(true).Render("Search") + " " + s.Input.View()
	helpText := helpStyle.Render("Enter: keep │ Esc: clear")

	return boxStyle.Render(content + "\n" + helpText)
}
