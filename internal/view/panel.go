package view

import (
	"errors"
	"fmt"

	"github.com/zaibi326/crm-success-hub-sub000/internal/models"
)

// PanelState is the state of the filter panel
type PanelState int

const (
	PanelClosed PanelState = iota
	PanelOpen
	PanelEditing
	PanelSavingView
)

func (s PanelState) String() string {
	switch s {
	case PanelClosed:
		return "closed"
	case PanelOpen:
		return "open"
	case PanelEditing:
		return "editing"
	case PanelSavingView:
		return "saving view"
	default:
		return "unknown"
	}
}

var ErrInvalidTransition = errors.New("invalid filter panel transition")

// Saver persists a named condition list.
type Saver interface {
	Save(name string, conds []models.FilterCondition) (models.SavedFilter, error)
}

// Panel tracks the filter panel lifecycle:
//
//	Closed -> Open -> Editing -> Closed
//	Editing -> SavingView -> Editing (cancel) | Open (saved)
//
// The condition list lives in the View, so reopening resumes it.
type Panel struct {
	state PanelState
}

// State returns the current state.
func (p *Panel) State() PanelState {
	return p.state
}

func (p *Panel) move(to PanelState, from ...PanelState) error {
	for _, f := range from {
		if p.state == f {
			p.state = to
			return nil
		}
	}
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, p.state, to)
}

// Open shows the panel.
func (p *Panel) Open() error {
	return p.move(PanelOpen, PanelClosed)
}

// Edit starts editing conditions.
func (p *Panel) Edit() error {
	return p.move(PanelEditing, PanelOpen)
}

// Close handles Done and Cancel alike.
func (p *Panel) Close() error {
	return p.move(PanelClosed, PanelOpen, PanelEditing)
}

// BeginSave starts name entry for a new saved view.
func (p *Panel) BeginSave() error {
	return p.move(PanelSavingView, PanelEditing)
}

// CancelSave abandons name entry.
func (p *Panel) CancelSave() error {
	return p.move(PanelEditing, PanelSavingView)
}

// CommitSave saves conds under name. On success the panel returns to Open;
// on failure it stays in SavingView so the name can be corrected.
func (p *Panel) CommitSave(s Saver, name string, conds []models.FilterCondition) (models.SavedFilter, error) {
	if p.state != PanelSavingView {
		return models.SavedFilter{}, fmt.Errorf("%w: commit while %s", ErrInvalidTransition, p.state)
	}
	saved, err := s.Save(name, conds)
	if err != nil {
		return models.SavedFilter{}, err
	}
	p.state = PanelOpen
	return saved, nil
}
