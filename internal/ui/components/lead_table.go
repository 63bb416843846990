package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/zaibi326/crm-success-hub-sub000/internal/models"
	"github.com/zaibi326/crm-success-hub-sub000/internal/schema"
	"github.com/zaibi326/crm-success-hub-sub000/internal/ui/theme"
)

const (
	minColumnWidth = 6
	maxColumnWidth = 40
)

// LeadTable displays the visible leads with virtual scrolling
type LeadTable struct {
	Fields []schema.Field[models.Lead]
	Theme  theme.Theme
	Width  int
	Height int

	leads     []models.Lead
	rows      [][]string
	total     int
	sortField string

	// Virtual scrolling state
	TopRow      int
	VisibleRows int
	SelectedRow int

	// Column widths (calculated)
	ColumnWidths []int
}

// NewLeadTable creates a table showing the given columns of s. Unknown keys
// are skipped.
func NewLeadTable(s *schema.Schema[models.Lead], keys []string, th theme.Theme) *LeadTable {
	var fields []schema.Field[models.Lead]
	for _, k := range keys {
		if f, ok := s.Lookup(k); ok {
			fields = append(fields, f)
		}
	}
	return &LeadTable{Fields: fields, Theme: th}
}

// SetLeads replaces the visible leads. total is the size of the unfiltered
// collection.
func (lt *LeadTable) SetLeads(leads []models.Lead, total int, sortField string) {
	lt.leads = leads
	lt.total = total
	lt.sortField = sortField

	lt.rows = make([][]string, len(leads))
	for i, l := range leads {
		row := make([]string, len(lt.Fields))
		for j, f := range lt.Fields {
			row[j] = schema.Stringify(f.Get(l))
		}
		lt.rows[i] = row
	}

	lt.calculateColumnWidths()
	lt.clampSelection()
}

// Selected returns the lead under the cursor
func (lt *LeadTable) Selected() (models.Lead, bool) {
	if lt.SelectedRow < 0 || lt.SelectedRow >= len(lt.leads) {
		return models.Lead{}, false
	}
	return lt.leads[lt.SelectedRow], true
}

// Len returns the number of visible leads
func (lt *LeadTable) Len() int {
	return len(lt.leads)
}

func (lt *LeadTable) calculateColumnWidths() {
	lt.ColumnWidths = make([]int, len(lt.Fields))

	for i, f := range lt.Fields {
		lt.ColumnWidths[i] = lipgloss.Width(f.Label) + 2
	}
	for _, row := range lt.rows {
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > lt.ColumnWidths[i] {
				lt.ColumnWidths[i] = w
			}
		}
	}

	for i := range lt.ColumnWidths {
		lt.ColumnWidths[i] = min(max(lt.ColumnWidths[i], minColumnWidth), maxColumnWidth)
	}
}

// View renders the table
func (lt *LeadTable) View() string {
	if len(lt.Fields) == 0 {
		return lipgloss.NewStyle().Foreground(lt.Theme.Muted).Render("No columns")
	}

	var b strings.Builder

	b.WriteString(lt.renderHeader())
	b.WriteString("\n")
	b.WriteString(lt.renderSeparator())
	b.WriteString("\n")

	lt.VisibleRows = max(lt.Height-3, 1) // Header + separator + status

	if len(lt.rows) == 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(lt.Theme.Muted).Italic(true).Render(" No leads match the current search and filters"))
	}

	endRow := min(lt.TopRow+lt.VisibleRows, len(lt.rows))
	for i := lt.TopRow; i < endRow; i++ {
		b.WriteString(lt.renderRow(i))
		if i < endRow-1 {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(lt.renderStatus())

	return lipgloss.NewStyle().Width(lt.Width).Height(lt.Height).Render(b.String())
}

func (lt *LeadTable) renderHeader() string {
	parts := make([]string, len(lt.Fields))
	for i, f := range lt.Fields {
		label := f.Label
		if f.Key == lt.sortField {
			label += " ▲"
		}
		parts[i] = pad(label, lt.ColumnWidths[i])
	}
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lt.Theme.TableHeader).
		Background(lt.Theme.Selection)
	return headerStyle.Render(" " + strings.Join(parts, " │ ") + " ")
}

func (lt *LeadTable) renderSeparator() string {
	parts := make([]string, len(lt.ColumnWidths))
	for i, width := range lt.ColumnWidths {
		parts[i] = strings.Repeat("─", width)
	}
	return lipgloss.NewStyle().Foreground(lt.Theme.Border).Render("─" + strings.Join(parts, "─┼─") + "─")
}

func (lt *LeadTable) renderRow(i int) string {
	row := lt.rows[i]
	parts := make([]string, len(row))
	for j, cell := range row {
		cell = pad(cell, lt.ColumnWidths[j])
		if lt.Fields[j].Key == models.FieldStatus && i != lt.SelectedRow {
			cell = lipgloss.NewStyle().Foreground(lt.Theme.LeadStatusColor(row[j])).Bold(true).Render(cell)
		}
		parts[j] = cell
	}

	line := " " + strings.Join(parts, " │ ") + " "

	if i == lt.SelectedRow {
		return lipgloss.NewStyle().
			Background(lt.Theme.TableRowSelected).
			Foreground(lt.Theme.Foreground).
			Bold(true).
			Render(line)
	}
	if i%2 == 1 {
		return lipgloss.NewStyle().Background(lt.Theme.TableRowOdd).Render(line)
	}
	return line
}

func (lt *LeadTable) renderStatus() string {
	var showing string
	if len(lt.rows) == 0 {
		showing = fmt.Sprintf(" 0 of %d leads", lt.total)
	} else {
		endRow := min(lt.TopRow+lt.VisibleRows, len(lt.rows))
		showing = fmt.Sprintf(" %d-%d of %d shown (%d total)", lt.TopRow+1, endRow, len(lt.rows), lt.total)
	}
	return lipgloss.NewStyle().
		Foreground(lt.Theme.Muted).
		Italic(true).
		Render(showing)
}

// pad fits s into exactly width terminal cells
func pad(s string, width int) string {
	if runewidth.StringWidth(s) > width {
		tail := "..."
		if width <= 3 {
			tail = ""
		}
		s = runewidth.Truncate(s, width, tail)
	}
	return runewidth.FillRight(s, width)
}

// MoveSelection moves the selection up or down
func (lt *LeadTable) MoveSelection(delta int) {
	lt.SelectedRow += delta
	lt.clampSelection()
}

// GotoTop selects the first lead
func (lt *LeadTable) GotoTop() {
	lt.SelectedRow = 0
	lt.clampSelection()
}

// GotoBottom selects the last lead
func (lt *LeadTable) GotoBottom() {
	lt.SelectedRow = len(lt.rows) - 1
	lt.clampSelection()
}

// PageUp moves the selection one page up
func (lt *LeadTable) PageUp() {
	lt.MoveSelection(-max(lt.VisibleRows, 1))
}

// PageDown moves the selection one page down
func (lt *LeadTable) PageDown() {
	lt.MoveSelection(max(lt.VisibleRows, 1))
}

func (lt *LeadTable) clampSelection() {
	if lt.SelectedRow >= len(lt.rows) {
		lt.SelectedRow = len(lt.rows) - 1
	}
	if lt.SelectedRow < 0 {
		lt.SelectedRow = 0
	}

	visible := max(lt.VisibleRows, 1)
	if lt.SelectedRow < lt.TopRow {
		lt.TopRow = lt.SelectedRow
	}
	if lt.SelectedRow >= lt.TopRow+visible {
		lt.TopRow = lt.SelectedRow - visible + 1
	}
	if lt.TopRow < 0 {
		lt.TopRow = 0
	}
}
