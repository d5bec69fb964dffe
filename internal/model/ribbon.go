package model

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrTabNotFound is returned when a tab ID is not part of the ribbon
var ErrTabNotFound = errors.New("tab not found")

// Control represents a single control inside a group box
type Control struct {
	Name  string `json:"name" yaml:"name" toml:"name"`
	Label string `json:"label" yaml:"label" toml:"label"`
	// Size is a size definition such as "Large, Middle, Small"
	Size string `json:"size,omitempty" yaml:"size,omitempty" toml:"size,omitempty"`
	// GalleryItems > 0 marks an in-ribbon gallery that can drop items when scaled
	GalleryItems int `json:"gallery_items,omitempty" yaml:"gallery_items,omitempty" toml:"gallery_items,omitempty"`
}

// IsScalable returns true if the control can shrink through intermediate scale steps
func (c *Control) IsScalable() bool {
	return c.GalleryItems > 1
}

// GroupBox represents a ribbon group box (a titled block of controls)
type GroupBox struct {
	Name     string     `json:"name" yaml:"name" toml:"name"`
	Header   string     `json:"header" yaml:"header" toml:"header"`
	Controls []*Control `json:"controls" yaml:"controls" toml:"controls"`
}

// Tab represents a ribbon tab and the group boxes shown when it is selected
type Tab struct {
	ID     string `json:"id"`
	Header string `json:"header"`
	// ContextualGroup names the contextual tab group this tab belongs to, if any
	ContextualGroup string `json:"contextual_group,omitempty"`
	// ReduceOrder lists the group box reductions applied under width pressure
	ReduceOrder string      `json:"reduce_order,omitempty"`
	Groups      []*GroupBox `json:"groups"`
	Hidden      bool        `json:"hidden,omitempty"`
}

// NewTab creates a new tab with a fresh ID
func NewTab(header string) *Tab {
	return &Tab{
		ID:     uuid.New().String(),
		Header: header,
		Groups: make([]*GroupBox, 0),
	}
}

// IsContextual returns true if the tab belongs to a contextual tab group
func (t *Tab) IsContextual() bool {
	return t.ContextualGroup != ""
}

// ContextualGroup is a set of tabs shown only while a related object is selected
type ContextualGroup struct {
	Name    string `json:"name"`
	Header  string `json:"header"`
	Visible bool   `json:"visible"`
}

// Ribbon represents a whole ribbon definition
type Ribbon struct {
	Title            string             `json:"title"`
	Tabs             []*Tab             `json:"tabs"`
	ContextualGroups []*ContextualGroup `json:"contextual_groups"`
}

// NewRibbon creates an empty ribbon
func NewRibbon(title string) *Ribbon {
	return &Ribbon{
		Title:            title,
		Tabs:             make([]*Tab, 0),
		ContextualGroups: make([]*ContextualGroup, 0),
	}
}

// AddTab adds a tab to the ribbon, assigning an ID if it has none
func (r *Ribbon) AddTab(tab *Tab) {
	if tab.ID == "" {
		tab.ID = uuid.New().String()
	}
	r.Tabs = append(r.Tabs, tab)
}

// RemoveTab removes a tab from the ribbon by ID
func (r *Ribbon) RemoveTab(tabID string) error {
	for i, tab := range r.Tabs {
		if tab.ID == tabID {
			r.Tabs = append(r.Tabs[:i], r.Tabs[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("remove %s: %w", tabID, ErrTabNotFound)
}

// FindTab returns a tab by ID
func (r *Ribbon) FindTab(tabID string) (*Tab, bool) {
	for _, tab := range r.Tabs {
		if tab.ID == tabID {
			return tab, true
		}
	}
	return nil, false
}

// FindTabByHeader returns the first tab with the given header
func (r *Ribbon) FindTabByHeader(header string) (*Tab, bool) {
	for _, tab := range r.Tabs {
		if tab.Header == header {
			return tab, true
		}
	}
	return nil, false
}

// AddContextualGroup adds a contextual tab group, hidden until activated
func (r *Ribbon) AddContextualGroup(name, header string) *ContextualGroup {
	group := &ContextualGroup{Name: name, Header: header}
	r.ContextualGroups = append(r.ContextualGroups, group)
	return group
}

// FindContextualGroup returns a contextual group by name
func (r *Ribbon) FindContextualGroup(name string) (*ContextualGroup, bool) {
	for _, group := range r.ContextualGroups {
		if group.Name == name {
			return group, true
		}
	}
	return nil, false
}

// SetContextualGroupVisible shows or hides the tabs of a contextual group
func (r *Ribbon) SetContextualGroupVisible(name string, visible bool) error {
	group, ok := r.FindContextualGroup(name)
	if !ok {
		return fmt.Errorf("contextual group not found: %s", name)
	}
	group.Visible = visible
	return nil
}

// VisibleTabs returns the tabs in display order: regular tabs in
// declaration order, then the tabs of each visible contextual group in
// group declaration order. Tabs of unknown contextual groups are not shown.
func (r *Ribbon) VisibleTabs() []*Tab {
	visible := make([]*Tab, 0, len(r.Tabs))
	for _, tab := range r.Tabs {
		if !tab.Hidden && !tab.IsContextual() {
			visible = append(visible, tab)
		}
	}

	for _, group := range r.ContextualGroups {
		if !group.Visible {
			continue
		}
		for _, tab := range r.Tabs {
			if !tab.Hidden && tab.ContextualGroup == group.Name {
				visible = append(visible, tab)
			}
		}
	}
	return visible
}
