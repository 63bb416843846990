package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"go.uber.org/zap"

	"github.com/zaibi326/crm-success-hub-sub000/internal/config"
	"github.com/zaibi326/crm-success-hub-sub000/internal/models"
	"github.com/zaibi326/crm-success-hub-sub000/internal/savedview"
	"github.com/zaibi326/crm-success-hub-sub000/internal/schema"
	"github.com/zaibi326/crm-success-hub-sub000/internal/ui/components"
	"github.com/zaibi326/crm-success-hub-sub000/internal/ui/help"
	"github.com/zaibi326/crm-success-hub-sub000/internal/ui/theme"
	"github.com/zaibi326/crm-success-hub-sub000/internal/view"
)

// LeadLoader fetches the full lead collection
type LeadLoader func(ctx context.Context) ([]models.Lead, error)

// TableColumns are the lead fields shown in the table
var TableColumns = []string{
	models.FieldOwnerName,
	models.FieldPropertyAddress,
	models.FieldStatus,
	models.FieldCounty,
	models.FieldCurrentArrears,
	models.FieldCreatedAt,
}

// Deps are the collaborators the App is built from
type Deps struct {
	Engine *view.Engine[models.Lead]
	Store  *savedview.Store
	Loader LeadLoader
	Logger *zap.Logger

	// CopyToClipboard defaults to the system clipboard
	CopyToClipboard func(string) error
}

// App is the main application model
type App struct {
	state  models.AppState
	config *config.Config
	theme  theme.Theme
	logger *zap.Logger

	schema  *schema.Schema[models.Lead]
	leads   *view.View[models.Lead]
	store   *savedview.Store
	loader  LeadLoader
	copyFn  func(string) error
	sidebar components.Panel
	content components.Panel

	table       *components.LeadTable
	search      *components.SearchInput
	filterPanel *components.FilterPanel
	savedViews  *components.SavedViewsDialog

	// Error overlay
	showError    bool
	errorOverlay *components.ErrorOverlay
}

// ErrorMsg is sent when an error occurs
type ErrorMsg struct {
	Title   string
	Message string
}

// LoadLeadsMsg requests reloading the lead collection
type LoadLeadsMsg struct{}

// LeadsLoadedMsg is sent when leads are loaded
type LeadsLoadedMsg struct {
	Leads []models.Lead
	Err   error
}

// New creates a new App instance with config
func New(cfg *config.Config, deps Deps) *App {
	if cfg == nil {
		cfg = config.GetDefaults()
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	copyFn := deps.CopyToClipboard
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}

	th := theme.GetTheme(cfg.UI.Theme)
	s := deps.Engine.Schema()

	a := &App{
		state:        models.NewAppState(),
		config:       cfg,
		theme:        th,
		logger:       logger,
		schema:       s,
		store:        deps.Store,
		loader:       deps.Loader,
		copyFn:       copyFn,
		table:        components.NewLeadTable(s, TableColumns, th),
		search:       components.NewSearchInput(th),
		filterPanel:  components.NewFilterPanel(s, deps.Store, th),
		savedViews:   components.NewSavedViewsDialog(deps.Store, th),
		errorOverlay: components.NewErrorOverlay(th),
		sidebar:      components.Panel{Title: "Filters"},
		content:      components.Panel{Title: "Leads"},
	}

	a.leads = view.New(deps.Engine, nil, view.Inputs{SortField: cfg.Data.DefaultSort})
	a.leads.Subscribe(func([]models.Lead) { a.refreshTable() })
	a.refreshTable()

	a.updatePanelDimensions()
	a.updatePanelStyles()

	return a
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	return a.loadLeads()
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ErrorMsg:
		a.ShowError(msg.Title, msg.Message)
		return a, nil

	case tea.WindowSizeMsg:
		a.state.Width = msg.Width
		a.state.Height = msg.Height
		a.updatePanelDimensions()
		return a, nil

	case LoadLeadsMsg:
		return a, a.loadLeads()

	case LeadsLoadedMsg:
		a.state.Loading = false
		if msg.Err != nil {
			a.logger.Error("Failed to load leads", zap.Error(msg.Err))
			a.ShowError("Could not load leads", msg.Err.Error())
			return a, nil
		}
		a.logger.Info("Leads loaded", zap.Int("count", len(msg.Leads)))
		a.leads.SetRecords(msg.Leads)
		a.state.Status = fmt.Sprintf("Loaded %d leads", len(msg.Leads))
		return a, nil

	case components.SearchChangedMsg:
		a.leads.OnSearchChange(msg.Query)
		return a, nil

	case components.CloseSearchMsg:
		a.state.ShowSearch = false
		return a, nil

	case components.FiltersChangedMsg:
		a.leads.OnFiltersChange(msg.Conditions)
		return a, nil

	case components.CloseFilterPanelMsg:
		return a, nil

	case components.ViewSavedMsg:
		a.state.Status = fmt.Sprintf("Saved view %q", msg.View.Name)
		return a, nil

	case components.ApplySavedViewMsg:
		a.leads.OnFiltersChange(a.store.Apply(msg.View))
		a.state.ShowSavedViews = false
		a.state.Status = fmt.Sprintf("Applied view %q", msg.View.Name)
		return a, nil

	case components.DeleteSavedViewMsg:
		ok, err := a.store.Delete(msg.ID)
		a.savedViews.SetError(err)
		if ok {
			a.state.Status = "Saved view deleted"
		}
		a.savedViews.Refresh()
		return a, nil

	case components.RenameSavedViewMsg:
		current, err := a.store.Get(msg.ID)
		if err == nil {
			_, err = a.store.Update(msg.ID, msg.Name, current.Filters)
		}
		a.savedViews.SetError(err)
		a.savedViews.Refresh()
		return a, nil

	case components.CloseSavedViewsDialogMsg:
		a.state.ShowSavedViews = false
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// Error overlay first
	if a.showError {
		switch key {
		case "esc", "enter":
			a.DismissError()
		case "ctrl+c":
			return a, tea.Quit
		}
		return a, nil
	}

	if key == "ctrl+c" {
		return a, tea.Quit
	}

	if a.state.ViewMode == models.HelpMode {
		if key == "?" || key == "esc" || key == "q" {
			a.state.ViewMode = models.NormalMode
		}
		return a, nil
	}

	if a.filterPanel.Visible() {
		var cmd tea.Cmd
		a.filterPanel, cmd = a.filterPanel.Update(msg)
		return a, cmd
	}

	if a.state.ShowSavedViews {
		var cmd tea.Cmd
		a.savedViews, cmd = a.savedViews.Update(msg)
		return a, cmd
	}

	if a.state.ShowSearch {
		var cmd tea.Cmd
		a.search, cmd = a.search.Update(msg)
		return a, cmd
	}

	switch key {
	case "q":
		return a, tea.Quit
	case "?":
		a.state.ViewMode = models.HelpMode
	case "up", "k":
		a.table.MoveSelection(-1)
	case "down", "j":
		a.table.MoveSelection(1)
	case "pgup":
		a.table.PageUp()
	case "pgdown":
		a.table.PageDown()
	case "g", "home":
		a.table.GotoTop()
	case "G", "end":
		a.table.GotoBottom()
	case "/":
		a.state.ShowSearch = true
		a.search.Input.Focus()
	case "s":
		a.leads.OnSortChange(a.nextSortField())
		a.state.Status = "Sorted by " + a.fieldLabel(a.leads.SortField())
	case "f":
		if err := a.filterPanel.Open(a.leads.Conditions()); err != nil {
			a.ShowError("Filter panel", err.Error())
		}
	case "ctrl+r":
		a.leads.OnFiltersChange(nil)
		a.state.Status = "Filters cleared"
	case "v":
		a.state.ShowSavedViews = true
		a.savedViews.Reset()
	case "c":
		a.copySelectedAddress()
	case "r", "f5":
		return a, a.loadLeads()
	}
	return a, nil
}

// nextSortField cycles through the sortable fields, then back to record order.
func (a *App) nextSortField() string {
	fields := a.schema.SortFields()
	current := a.leads.SortField()
	for i, f := range fields {
		if f == current {
			if i+1 < len(fields) {
				return fields[i+1]
			}
			return ""
		}
	}
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func (a *App) fieldLabel(key string) string {
	if f, ok := a.schema.Lookup(key); ok {
		return f.Label
	}
	return "record order"
}

func (a *App) copySelectedAddress() {
	lead, ok := a.table.Selected()
	if !ok || lead.PropertyAddress == "" {
		a.state.Status = "Nothing to copy"
		return
	}
	if err := a.copyFn(lead.PropertyAddress); err != nil {
		a.logger.Warn("Clipboard write failed", zap.Error(err))
		a.state.Status = "Copy failed: " + err.Error()
		return
	}
	a.state.Status = "Copied address of " + lead.OwnerName
}

func (a *App) loadLeads() tea.Cmd {
	if a.loader == nil {
		return nil
	}
	a.state.Loading = true
	loader := a.loader
	return func() tea.Msg {
		leads, err := loader(context.Background())
		return LeadsLoadedMsg{Leads: leads, Err: err}
	}
}

func (a *App) refreshTable() {
	a.table.SetLeads(a.leads.VisibleRecords(), a.leads.Total(), a.leads.SortField())
}

// View implements tea.Model
func (a *App) View() string {
	if a.showError {
		return lipgloss.Place(
			a.state.Width, a.state.Height,
			lipgloss.Center, lipgloss.Center,
			a.errorOverlay.View(),
		)
	}

	if a.state.ViewMode == models.HelpMode {
		return help.Render(a.state.Width, a.state.Height, a.theme)
	}

	if a.filterPanel.Visible() {
		a.filterPanel.Width = min(a.state.Width-6, 80)
		return lipgloss.Place(a.state.Width, a.state.Height, lipgloss.Center, lipgloss.Center, a.filterPanel.View())
	}

	if a.state.ShowSavedViews {
		a.savedViews.Width = min(a.state.Width-6, 80)
		a.savedViews.Height = a.state.Height - 4
		return lipgloss.Place(a.state.Width, a.state.Height, lipgloss.Center, lipgloss.Center, a.savedViews.View())
	}

	return a.renderNormalView()
}

func (a *App) renderNormalView() string {
	topBarLeft := fmt.Sprintf("crmview  %d of %d leads", len(a.leads.VisibleRecords()), a.leads.Total())
	if a.state.Loading {
		topBarLeft += "  (loading…)"
	}
	topBarRight := fmt.Sprintf("%d filters · sort: %s", a.leads.ActiveFilterCount(), a.fieldLabel(a.leads.SortField()))

	topBar := lipgloss.NewStyle().
		Width(a.state.Width).
		Background(a.theme.BorderFocused).
		Foreground(a.theme.Foreground).
		Padding(0, 2).
		Render(a.formatStatusBar(topBarLeft, topBarRight))

	bottomLeft := a.state.Status
	if bottomLeft == "" {
		bottomLeft = "[/] Search  [f] Filters  [v] Views  [s] Sort  [?] Help  [q] Quit"
	}
	bottomBar := lipgloss.NewStyle().
		Width(a.state.Width).
		Background(a.theme.Selection).
		Foreground(a.theme.Foreground).
		Padding(0, 2).
		Render(a.formatStatusBar(bottomLeft, ""))

	var searchBar string
	contentHeight := a.content.Height
	if a.state.ShowSearch || a.leads.Query() != "" {
		a.search.Width = a.state.Width - 2
		searchBar = a.search.View()
		contentHeight -= lipgloss.Height(searchBar)
	}

	a.sidebar.Content = a.renderSidebar()
	a.table.Width = a.content.Width
	a.table.Height = max(contentHeight, 3)
	content := a.content
	content.Height = a.table.Height
	content.Content = a.table.View()

	panels := lipgloss.JoinHorizontal(lipgloss.Top, a.sidebar.View(), content.View())

	parts := []string{topBar}
	if searchBar != "" {
		parts = append(parts, searchBar)
	}
	parts = append(parts, panels, bottomBar)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (a *App) renderSidebar() string {
	chip := lipgloss.NewStyle().Foreground(a.theme.FilterChip)
	muted := lipgloss.NewStyle().Foreground(a.theme.Muted).Italic(true)

	var b strings.Builder
	conds := a.leads.Conditions()
	if len(conds) == 0 {
		b.WriteString(muted.Render("No filters"))
	}
	for _, c := range conds {
		label := c.Label
		if label == "" {
			label = c.Field + " " + c.Operator.Display() + " " + c.Value
		}
		if c.IsActive() {
			b.WriteString(chip.Render("● " + label))
		} else {
			b.WriteString(muted.Render("○ " + label))
		}
		b.WriteString("\n")
	}

	if q := a.leads.Query(); q != "" {
		b.WriteString("\n")
		b.WriteString(chip.Render(fmt.Sprintf("Search: %q", q)))
	}

	b.WriteString("\n\n")
	b.WriteString(muted.Render(fmt.Sprintf("%d saved views [v]", len(a.store.List()))))
	return b.String()
}

// updatePanelDimensions calculates panel sizes based on window size
func (a *App) updatePanelDimensions() {
	if a.state.Width <= 0 || a.state.Height <= 0 {
		return
	}

	// Top and bottom bars take one line each
	contentHeight := max(a.state.Height-4, 5)

	sidebarWidth := a.state.SidebarWidth
	contentWidth := a.state.Width - sidebarWidth - 4
	if contentWidth < 30 {
		contentWidth = 30
		sidebarWidth = max(a.state.Width-contentWidth-4, 10)
	}

	a.sidebar.Width = sidebarWidth
	a.sidebar.Height = contentHeight
	a.content.Width = contentWidth
	a.content.Height = contentHeight
}

// updatePanelStyles updates panel styling based on focus
func (a *App) updatePanelStyles() {
	a.sidebar.Style = lipgloss.NewStyle().BorderForeground(a.theme.Border)
	a.content.Style = lipgloss.NewStyle().BorderForeground(a.theme.BorderFocused)
}

// formatStatusBar formats a status bar with left and right aligned content
func (a *App) formatStatusBar(left, right string) string {
	availableWidth := max(a.state.Width-4, 0)

	leftLen := lipgloss.Width(left)
	rightLen := lipgloss.Width(right)

	if leftLen+rightLen > availableWidth {
		left = runewidth.Truncate(left, max(availableWidth-rightLen, 0), "")
		return runewidth.FillRight(left, max(availableWidth-rightLen, 0)) + right
	}

	spacing := availableWidth - leftLen - rightLen
	return left + strings.Repeat(" ", spacing) + right
}

// ShowError displays an error overlay with the given title and message
func (a *App) ShowError(title, message string) {
	a.errorOverlay.SetError(title, message)
	a.showError = true
}

// DismissError hides the error overlay
func (a *App) DismissError() {
	a.showError = false
}

// VisibleLeads returns the leads currently shown in the table
func (a *App) VisibleLeads() []models.Lead {
	return a.leads.VisibleRecords()
}
