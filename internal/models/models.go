package models

// AppState holds the application state
type AppState struct {
	Width        int
	Height       int
	SidebarWidth int
	FocusedPanel PanelType
	ViewMode     ViewMode

	// Overlays
	ShowSearch     bool
	ShowSavedViews bool

	// Lead source
	Loading bool
	Status  string
}

// PanelType identifies which panel is focused
type PanelType int

const (
	TablePanel PanelType = iota
	SidebarPanel
)

// ViewMode identifies the current view
type ViewMode int

const (
	NormalMode ViewMode = iota
	HelpMode
)

// NewAppState creates a new AppState with defaults
func NewAppState() AppState {
	return AppState{
		Width:        80,
		Height:       24,
		SidebarWidth: 28,
		FocusedPanel: TablePanel,
		ViewMode:     NormalMode,
	}
}
