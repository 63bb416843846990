package components

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zaibi326/crm-success-hub-sub000/internal/filter"
	"github.com/zaibi326/crm-success-hub-sub000/internal/models"
	"github.com/zaibi326/crm-success-hub-sub000/internal/schema"
	"github.com/zaibi326/crm-success-hub-sub000/internal/ui/theme"
	"github.com/zaibi326/crm-success-hub-sub000/internal/view"
)

// FiltersChangedMsg is sent whenever the condition list is edited
type FiltersChangedMsg struct {
	Conditions []models.FilterCondition
}

// ViewSavedMsg is sent after the current conditions were saved as a view
type ViewSavedMsg struct {
	View models.SavedFilter
}

// CloseFilterPanelMsg is sent when the filter panel should close
type CloseFilterPanelMsg struct{}

type editMode int

const (
	editNone editMode = iota
	editField
	editOperator
	editValue
)

// FilterPanel edits the active condition list of the lead view
type FilterPanel struct {
	Width  int
	Height int
	Theme  theme.Theme

	schema *schema.Schema[models.Lead]
	saver  view.Saver
	panel  view.Panel

	conditions      []models.FilterCondition
	currentIndex    int
	mode            editMode
	fieldIndex      int
	operatorIndex   int
	availableOps    []models.FilterOperator
	valueInput      textinput.Model
	nameInput       textinput.Model
	validationError string
}

// NewFilterPanel creates a closed filter panel. saver receives the
// conditions when the user saves them as a named view.
func NewFilterPanel(s *schema.Schema[models.Lead], saver view.Saver, th theme.Theme) *FilterPanel {
	vi := textinput.New()
	vi.Placeholder = "value"
	vi.CharLimit = 256

	ni := textinput.New()
	ni.Placeholder = "view name"
	ni.CharLimit = 80

	return &FilterPanel{
		Width:      70,
		Height:     24,
		Theme:      th,
		schema:     s,
		saver:      saver,
		valueInput: vi,
		nameInput:  ni,
	}
}

// State returns the panel lifecycle state
func (fp *FilterPanel) State() view.PanelState {
	return fp.panel.State()
}

// Visible reports whether the panel is showing
func (fp *FilterPanel) Visible() bool {
	return fp.panel.State() != view.PanelClosed
}

// Open shows the panel over the given active conditions
func (fp *FilterPanel) Open(conds []models.FilterCondition) error {
	if err := fp.panel.Open(); err != nil {
		return err
	}
	fp.conditions = models.CloneConditions(conds)
	fp.currentIndex = 0
	fp.mode = editNone
	fp.validationError = ""
	return nil
}

// Conditions returns the panel's working condition list
func (fp *FilterPanel) Conditions() []models.FilterCondition {
	return models.CloneConditions(fp.conditions)
}

func (fp *FilterPanel) changed() tea.Cmd {
	conds := fp.Conditions()
	return func() tea.Msg { return FiltersChangedMsg{Conditions: conds} }
}

func (fp *FilterPanel) ensureEditing() {
	if fp.panel.State() == view.PanelOpen {
		_ = fp.panel.Edit()
	}
}

// Update handles keyboard input
func (fp *FilterPanel) Update(msg tea.KeyMsg) (*FilterPanel, tea.Cmd) {
	if fp.panel.State() == view.PanelSavingView {
		return fp.handleNameMode(msg)
	}
	switch fp.mode {
	case editField:
		return fp.handleFieldMode(msg)
	case editOperator:
		return fp.handleOperatorMode(msg)
	case editValue:
		return fp.handleValueMode(msg)
	}
	return fp.handleNavigationMode(msg)
}

func (fp *FilterPanel) handleNavigationMode(msg tea.KeyMsg) (*FilterPanel, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if fp.currentIndex > 0 {
			fp.currentIndex--
		}
	case "down", "j":
		if fp.currentIndex < len(fp.conditions)-1 {
			fp.currentIndex++
		}
	case "a", "n":
		fp.ensureEditing()
		fp.mode = editField
		fp.fieldIndex = 0
		fp.validationError = ""
	case "e":
		if fp.currentIndex < len(fp.conditions) && fp.conditions[fp.currentIndex].Operator.NeedsValue() {
			fp.ensureEditing()
			fp.mode = editValue
			fp.valueInput.SetValue(fp.conditions[fp.currentIndex].Value)
			fp.valueInput.Focus()
		}
	case "d", "x":
		if fp.currentIndex < len(fp.conditions) {
			fp.ensureEditing()
			fp.conditions = append(fp.conditions[:fp.currentIndex], fp.conditions[fp.currentIndex+1:]...)
			if fp.currentIndex > 0 && fp.currentIndex >= len(fp.conditions) {
				fp.currentIndex--
			}
			return fp, fp.changed()
		}
	case "ctrl+r":
		fp.ensureEditing()
		fp.conditions = nil
		fp.currentIndex = 0
		return fp, fp.changed()
	case "ctrl+s":
		fp.ensureEditing()
		if err := fp.panel.BeginSave(); err != nil {
			fp.validationError = err.Error()
			return fp, nil
		}
		fp.validationError = ""
		fp.nameInput.SetValue("")
		fp.nameInput.Focus()
	case "enter", "esc":
		_ = fp.panel.Close()
		return fp, func() tea.Msg { return CloseFilterPanelMsg{} }
	}
	return fp, nil
}

func (fp *FilterPanel) handleFieldMode(msg tea.KeyMsg) (*FilterPanel, tea.Cmd) {
	fields := fp.schema.Fields()
	switch msg.String() {
	case "esc":
		fp.mode = editNone
	case "up", "k":
		if fp.fieldIndex > 0 {
			fp.fieldIndex--
		}
	case "down", "j":
		if fp.fieldIndex < len(fields)-1 {
			fp.fieldIndex++
		}
	case "enter":
		fp.availableOps = schema.OperatorsForType(fields[fp.fieldIndex].Type)
		fp.operatorIndex = 0
		fp.mode = editOperator
	}
	return fp, nil
}

func (fp *FilterPanel) handleOperatorMode(msg tea.KeyMsg) (*FilterPanel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		fp.mode = editField
	case "up", "k":
		if fp.operatorIndex > 0 {
			fp.operatorIndex--
		}
	case "down", "j":
		if fp.operatorIndex < len(fp.availableOps)-1 {
			fp.operatorIndex++
		}
	case "enter":
		field := fp.schema.Fields()[fp.fieldIndex]
		op := fp.availableOps[fp.operatorIndex]
		cond, err := filter.NewCondition(fp.schema, field.Key, op, "")
		if err != nil {
			fp.validationError = err.Error()
			return fp, nil
		}
		fp.conditions = append(fp.conditions, cond)
		fp.currentIndex = len(fp.conditions) - 1
		fp.validationError = ""

		if !op.NeedsValue() {
			fp.mode = editNone
			return fp, fp.changed()
		}
		fp.mode = editValue
		fp.valueInput.SetValue("")
		fp.valueInput.Focus()
		return fp, fp.changed()
	}
	return fp, nil
}

func (fp *FilterPanel) handleValueMode(msg tea.KeyMsg) (*FilterPanel, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		fp.valueInput.Blur()
		fp.mode = editNone
		return fp, nil
	}

	var cmd tea.Cmd
	fp.valueInput, cmd = fp.valueInput.Update(msg)

	cur := fp.conditions[fp.currentIndex]
	if v := fp.valueInput.Value(); v != cur.Value {
		fp.conditions[fp.currentIndex] = filter.WithValue(fp.schema, cur, v)
		return fp, tea.Batch(cmd, fp.changed())
	}
	return fp, cmd
}

func (fp *FilterPanel) handleNameMode(msg tea.KeyMsg) (*FilterPanel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		_ = fp.panel.CancelSave()
		fp.nameInput.Blur()
		fp.validationError = ""
		return fp, nil
	case "enter":
		saved, err := fp.panel.CommitSave(fp.saver, fp.nameInput.Value(), fp.conditions)
		if err != nil {
			fp.validationError = saveErrorText(err)
			return fp, nil
		}
		fp.nameInput.Blur()
		fp.validationError = ""
		return fp, func() tea.Msg { return ViewSavedMsg{View: saved} }
	}

	var cmd tea.Cmd
	fp.nameInput, cmd = fp.nameInput.Update(msg)
	return fp, cmd
}

func saveErrorText(err error) string {
	var cause error = err
	for {
		next := errors.Unwrap(cause)
		if next == nil {
			break
		}
		cause = next
	}
	if cause != err {
		return cause.Error()
	}
	return err.Error()
}

// View renders the filter panel
func (fp *FilterPanel) View() string {
	var sections []string

	titleStyle := lipgloss.NewStyle().
		Foreground(fp.Theme.Foreground).
		Background(fp.Theme.Info).
		Padding(0, 1).
		Bold(true)
	sections = append(sections, titleStyle.Render(fmt.Sprintf("Filters (%d active)", filter.ActiveCount(fp.conditions))))

	instructionStyle := lipgloss.NewStyle().
		Foreground(fp.Theme.Muted).
		Padding(0, 1)

	var instructions string
	switch {
	case fp.panel.State() == view.PanelSavingView:
		instructions = "Type a name, Enter to save, Esc to go back"
	case fp.mode == editField:
		instructions = "↑↓ Select field, Enter to confirm, Esc to cancel"
	case fp.mode == editOperator:
		instructions = "↑↓ Select operator, Enter to confirm, Esc to go back"
	case fp.mode == editValue:
		instructions = "Type value (applies live), Enter/Esc when done"
	default:
		instructions = "a=Add e=Edit d=Delete Ctrl+R=Clear Ctrl+S=Save view Enter/Esc=Done"
	}
	sections = append(sections, instructionStyle.Render(instructions))

	if fp.validationError != "" {
		errorStyle := lipgloss.NewStyle().
			Foreground(fp.Theme.Error).
			Padding(0, 1).
			Bold(true)
		sections = append(sections, errorStyle.Render("Error: "+fp.validationError))
	}

	if len(fp.conditions) == 0 {
		sections = append(sections, lipgloss.NewStyle().Foreground(fp.Theme.Muted).Italic(true).Render("\n No conditions"))
	} else {
		sections = append(sections, "\nConditions:")
		for i, cond := range fp.conditions {
			label := cond.Label
			if label == "" {
				label = fmt.Sprintf("%s %s %s", cond.Field, cond.Operator.Display(), cond.Value)
			}
			if !cond.IsActive() {
				label += " (inactive)"
			}
			style := lipgloss.NewStyle().Padding(0, 1)
			if i == fp.currentIndex && fp.mode == editNone {
				style = style.Background(fp.Theme.Selection).Foreground(fp.Theme.Foreground)
			}
			sections = append(sections, style.Render(fmt.Sprintf(" %d. %s", i+1, label)))
		}
	}

	switch {
	case fp.panel.State() == view.PanelSavingView:
		sections = append(sections, "\nSave as: "+fp.nameInput.View())
	case fp.mode == editField:
		sections = append(sections, "\nSelect field:")
		for i, f := range fp.schema.Fields() {
			sections = append(sections, fp.choice(f.Label, i == fp.fieldIndex))
		}
	case fp.mode == editOperator:
		sections = append(sections, "\nField: "+fp.schema.Fields()[fp.fieldIndex].Label, "Select operator:")
		for i, op := range fp.availableOps {
			sections = append(sections, fp.choice(op.Display(), i == fp.operatorIndex))
		}
	case fp.mode == editValue:
		sections = append(sections, "\nValue: "+fp.valueInput.View())
	}

	containerStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(fp.Theme.BorderFocused).
		Foreground(fp.Theme.Foreground).
		Width(fp.Width).
		Padding(1)

	return containerStyle.Render(strings.Join(sections, "\n"))
}

func (fp *FilterPanel) choice(text string, selected bool) string {
	style := lipgloss.NewStyle().Padding(0, 1)
	if selected {
		style = style.Background(fp.Theme.Selection).Foreground(fp.Theme.Foreground)
	}
	return style.Render("  " + text)
}
