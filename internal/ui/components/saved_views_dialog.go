package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/zaibi326/crm-success-hub-sub000/internal/models"
	"github.com/zaibi326/crm-success-hub-sub000/internal/ui/theme"
)

// SavedViewsMode represents the dialog mode
type SavedViewsMode int

const (
	SavedViewsModeList SavedViewsMode = iota
	SavedViewsModeSearch
	SavedViewsModeRename
	SavedViewsModeConfirmDelete
)

// ApplySavedViewMsg is sent when a saved view should replace the active filters
type ApplySavedViewMsg struct {
	View models.SavedFilter
}

// DeleteSavedViewMsg is sent when a saved view should be deleted
type DeleteSavedViewMsg struct {
	ID string
}

// RenameSavedViewMsg is sent when a saved view should be renamed
type RenameSavedViewMsg struct {
	ID   string
	Name string
}

// CloseSavedViewsDialogMsg is sent when dialog should close
type CloseSavedViewsDialogMsg struct{}

// ViewSource lists saved views
type ViewSource interface {
	List() []models.SavedFilter
	Search(query string) []models.SavedFilter
}

// SavedViewsDialog browses saved filter views
type SavedViewsDialog struct {
	Width  int
	Height int
	Theme  theme.Theme

	source ViewSource

	mode     SavedViewsMode
	views    []models.SavedFilter
	selected int
	offset   int

	searchInput textinput.Model
	nameInput   textinput.Model
	err         string

	// pendingDelete is the view awaiting y/n confirmation
	pendingDelete models.SavedFilter
}

// NewSavedViewsDialog creates a new saved views dialog
func NewSavedViewsDialog(source ViewSource, th theme.Theme) *SavedViewsDialog {
	si := textinput.New()
	si.Placeholder = "filter by name"
	ni := textinput.New()
	ni.CharLimit = 80

	return &SavedViewsDialog{
		Width:       70,
		Height:      20,
		Theme:       th,
		source:      source,
		searchInput: si,
		nameInput:   ni,
	}
}

// Refresh reloads the list from the source, keeping the search query
func (sd *SavedViewsDialog) Refresh() {
	sd.views = sd.source.Search(sd.searchInput.Value())
	if sd.selected >= len(sd.views) {
		sd.selected = max(len(sd.views)-1, 0)
	}
	if sd.offset > sd.selected {
		sd.offset = sd.selected
	}
}

// Reset returns to the full list
func (sd *SavedViewsDialog) Reset() {
	sd.mode = SavedViewsModeList
	sd.searchInput.SetValue("")
	sd.err = ""
	sd.selected = 0
	sd.offset = 0
	sd.Refresh()
}

// SetError shows err under the list, or clears it when nil
func (sd *SavedViewsDialog) SetError(err error) {
	if err == nil {
		sd.err = ""
		return
	}
	sd.err = err.Error()
}

// Update handles keyboard input
func (sd *SavedViewsDialog) Update(msg tea.KeyMsg) (*SavedViewsDialog, tea.Cmd) {
	switch sd.mode {
	case SavedViewsModeSearch:
		return sd.handleSearchMode(msg)
	case SavedViewsModeRename:
		return sd.handleRenameMode(msg)
	case SavedViewsModeConfirmDelete:
		return sd.handleConfirmDeleteMode(msg)
	}
	return sd.handleListMode(msg)
}

func (sd *SavedViewsDialog) visibleHeight() int {
	return max(sd.Height-8, 1)
}

func (sd *SavedViewsDialog) handleListMode(msg tea.KeyMsg) (*SavedViewsDialog, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		return sd, func() tea.Msg { return CloseSavedViewsDialogMsg{} }
	case "up", "k":
		if sd.selected > 0 {
			sd.selected--
			if sd.selected < sd.offset {
				sd.offset = sd.selected
			}
		}
	case "down", "j":
		if sd.selected < len(sd.views)-1 {
			sd.selected++
			if sd.selected >= sd.offset+sd.visibleHeight() {
				sd.offset = sd.selected - sd.visibleHeight() + 1
			}
		}
	case "/":
		sd.mode = SavedViewsModeSearch
		sd.searchInput.Focus()
	case "enter":
		if sd.selected < len(sd.views) {
			v := sd.views[sd.selected]
			return sd, func() tea.Msg { return ApplySavedViewMsg{View: v} }
		}
	case "r":
		if sd.selected < len(sd.views) {
			sd.mode = SavedViewsModeRename
			sd.nameInput.SetValue(sd.views[sd.selected].Name)
			sd.nameInput.Focus()
		}
	case "d", "x":
		if sd.selected < len(sd.views) {
			sd.pendingDelete = sd.views[sd.selected]
			sd.mode = SavedViewsModeConfirmDelete
		}
	}
	return sd, nil
}

func (sd *SavedViewsDialog) handleConfirmDeleteMode(msg tea.KeyMsg) (*SavedViewsDialog, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		id := sd.pendingDelete.ID
		sd.pendingDelete = models.SavedFilter{}
		sd.mode = SavedViewsModeList
		return sd, func() tea.Msg { return DeleteSavedViewMsg{ID: id} }
	case "n", "N", "esc":
		sd.pendingDelete = models.SavedFilter{}
		sd.mode = SavedViewsModeList
	}
	return sd, nil
}

func (sd *SavedViewsDialog) handleSearchMode(msg tea.KeyMsg) (*SavedViewsDialog, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		sd.searchInput.Blur()
		sd.mode = SavedViewsModeList
		return sd, nil
	}

	var cmd tea.Cmd
	sd.searchInput, cmd = sd.searchInput.Update(msg)
	sd.selected = 0
	sd.offset = 0
	sd.Refresh()
	return sd, cmd
}

func (sd *SavedViewsDialog) handleRenameMode(msg tea.KeyMsg) (*SavedViewsDialog, tea.Cmd) {
	switch msg.String() {
	case "esc":
		sd.nameInput.Blur()
		sd.mode = SavedViewsModeList
		return sd, nil
	case "enter":
		sd.nameInput.Blur()
		sd.mode = SavedViewsModeList
		if sd.selected < len(sd.views) {
			id, name := sd.views[sd.selected].ID, sd.nameInput.Value()
			return sd, func() tea.Msg { return RenameSavedViewMsg{ID: id, Name: name} }
		}
		return sd, nil
	}

	var cmd tea.Cmd
	sd.nameInput, cmd = sd.nameInput.Update(msg)
	return sd, cmd
}

// View renders the dialog
func (sd *SavedViewsDialog) View() string {
	var sections []string

	titleStyle := lipgloss.NewStyle().
		Foreground(sd.Theme.Foreground).
		Background(sd.Theme.Info).
		Padding(0, 1).
		Bold(true)
	sections = append(sections, titleStyle.Render("Saved Views"))

	instrStyle := lipgloss.NewStyle().
		Foreground(sd.Theme.Muted).
		Padding(0, 1)
	switch sd.mode {
	case SavedViewsModeSearch:
		sections = append(sections, instrStyle.Render("Type to filter, Enter/Esc when done"))
	case SavedViewsModeRename:
		sections = append(sections, instrStyle.Render("Enter: Rename  Esc: Cancel"))
	case SavedViewsModeConfirmDelete:
		sections = append(sections, lipgloss.NewStyle().Foreground(sd.Theme.Warning).Bold(true).Padding(0, 1).
			Render(fmt.Sprintf("Delete %q? y/n", sd.pendingDelete.Name)))
	default:
		sections = append(sections, instrStyle.Render("↑↓: Navigate  Enter: Apply  /: Search  r: Rename  d: Delete  Esc: Close"))
	}

	if sd.mode == SavedViewsModeSearch || sd.searchInput.Value() != "" {
		sections = append(sections, " Search: "+sd.searchInput.View())
	}
	if sd.mode == SavedViewsModeRename {
		sections = append(sections, " Name: "+sd.nameInput.View())
	}
	if sd.err != "" {
		sections = append(sections, lipgloss.NewStyle().Foreground(sd.Theme.Error).Bold(true).Padding(0, 1).Render("Error: "+sd.err))
	}

	if len(sd.views) == 0 {
		if sd.searchInput.Value() != "" {
			sections = append(sections, "\nNo saved views match.")
		} else {
			sections = append(sections, "\nNo saved views yet. Press Ctrl+S in the filter panel to save one.")
		}
	} else {
		sections = append(sections, "")
		end := min(sd.offset+sd.visibleHeight(), len(sd.views))
		for i := sd.offset; i < end; i++ {
			v := sd.views[i]
			line := fmt.Sprintf("%s  %s",
				truncate(v.Name, 32),
				lipgloss.NewStyle().Foreground(sd.Theme.Muted).Render(
					fmt.Sprintf("%d conditions · %s", len(v.Filters), v.CreatedAt.Local().Format("2006-01-02 15:04")),
				),
			)

			style := lipgloss.NewStyle().Padding(0, 1)
			if i == sd.selected {
				style = style.Background(sd.Theme.Selection).Foreground(sd.Theme.Foreground)
			}
			sections = append(sections, style.Render(line))
		}
	}

	containerStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(sd.Theme.BorderFocused).
		Width(sd.Width).
		Padding(1)

	return containerStyle.Render(strings.Join(sections, "\n"))
}

func truncate(s string, width int) string {
	return runewidth.Truncate(s, width, "...")
}
