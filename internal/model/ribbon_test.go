package model

import (
	"errors"
	"testing"
)

func newTestRibbon() *Ribbon {
	r := NewRibbon("Test")
	r.AddTab(NewTab("Home"))
	r.AddTab(&Tab{Header: "Design", ContextualGroup: "table"})
	r.AddTab(NewTab("Insert"))
	r.AddTab(&Tab{Header: "Format", ContextualGroup: "picture"})
	r.AddTab(&Tab{Header: "Layout", ContextualGroup: "table"})
	r.AddContextualGroup("table", "Table Tools")
	r.AddContextualGroup("picture", "Picture Tools")
	return r
}

func headers(tabs []*Tab) []string {
	out := make([]string, len(tabs))
	for i, tab := range tabs {
		out[i] = tab.Header
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestNewTab(t *testing.T) {
	tab := NewTab("Home")
	if tab.ID == "" {
		t.Error("Expected tab to get an ID")
	}
	if tab.Header != "Home" {
		t.Errorf("Expected header 'Home', got '%s'", tab.Header)
	}
	if tab.IsContextual() {
		t.Error("New tab should not be contextual")
	}
	if NewTab("Home").ID == tab.ID {
		t.Error("Expected distinct IDs for distinct tabs")
	}
}

func TestRibbon_AddTabAssignsID(t *testing.T) {
	r := NewRibbon("Test")
	tab := &Tab{Header: "View"}
	r.AddTab(tab)
	if tab.ID == "" {
		t.Error("Expected AddTab to assign an ID")
	}
	found, ok := r.FindTab(tab.ID)
	if !ok || found != tab {
		t.Error("Expected FindTab to return the added tab")
	}
}

func TestRibbon_VisibleTabs(t *testing.T) {
	r := newTestRibbon()

	got := headers(r.VisibleTabs())
	if !equalStrings(got, []string{"Home", "Insert"}) {
		t.Errorf("VisibleTabs() = %v, expected only regular tabs", got)
	}

	if err := r.SetContextualGroupVisible("picture", true); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if err := r.SetContextualGroupVisible("table", true); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	got = headers(r.VisibleTabs())
	expected := []string{"Home", "Insert", "Design", "Layout", "Format"}
	if !equalStrings(got, expected) {
		t.Errorf("VisibleTabs() = %v, expected %v", got, expected)
	}
}

func TestRibbon_VisibleTabsSkipsHidden(t *testing.T) {
	r := newTestRibbon()
	home, _ := r.FindTabByHeader("Home")
	home.Hidden = true

	got := headers(r.VisibleTabs())
	if !equalStrings(got, []string{"Insert"}) {
		t.Errorf("VisibleTabs() = %v, expected [Insert]", got)
	}
}

func TestRibbon_SetContextualGroupVisibleUnknown(t *testing.T) {
	r := newTestRibbon()
	if err := r.SetContextualGroupVisible("chart", true); err == nil {
		t.Error("Expected error for unknown contextual group, got nil")
	}
}

func TestRibbon_RemoveTab(t *testing.T) {
	r := newTestRibbon()
	insert, ok := r.FindTabByHeader("Insert")
	if !ok {
		t.Fatal("Expected Insert tab to exist")
	}

	if err := r.RemoveTab(insert.ID); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, ok := r.FindTab(insert.ID); ok {
		t.Error("Expected tab to be removed")
	}

	err := r.RemoveTab(insert.ID)
	if !errors.Is(err, ErrTabNotFound) {
		t.Errorf("Expected ErrTabNotFound, got %v", err)
	}
}

func TestControl_IsScalable(t *testing.T) {
	tests := []struct {
		items    int
		expected bool
	}{
		{0, false},
		{1, false},
		{2, true},
		{8, true},
	}

	for _, test := range tests {
		c := &Control{GalleryItems: test.items}
		if c.IsScalable() != test.expected {
			t.Errorf("Control{GalleryItems: %d}.IsScalable() = %v, expected %v", test.items, c.IsScalable(), test.expected)
		}
	}
}
