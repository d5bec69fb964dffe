package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fluentribbon/Fluent.Ribbon-sub003/internal/groupbox"
	"github.com/fluentribbon/Fluent.Ribbon-sub003/internal/model"
)

func homeTab() *model.Tab {
	tab := model.NewTab("Home")
	tab.ReduceOrder = "Font,Clipboard,Font,Clipboard,Font,Clipboard"
	tab.Groups = []*model.GroupBox{
		{
			Name:   "Clipboard",
			Header: "Clipboard",
			Controls: []*model.Control{
				{Name: "paste", Label: "Paste"},
				{Name: "cut", Label: "Cut", Size: "Middle, Small"},
				{Name: "copy", Label: "Copy", Size: "Middle, Small"},
			},
		},
		{
			Name:   "Font",
			Header: "Font",
			Controls: []*model.Control{
				{Name: "bold", Label: "Bold", Size: "Middle, Small, Small"},
				{Name: "italic", Label: "Italic", Size: "Middle, Small, Small"},
			},
		},
	}
	return tab
}

func newTestBar(t *testing.T, tab *model.Tab) *GroupsBar {
	t.Helper()
	bar := NewGroupsBar()
	bar.SetMeasurer(func(text string) float32 { return tenPerRune(text) / 2 })
	require.NoError(t, bar.SetTab(tab))
	return bar
}

func TestGroupsBarFit(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	bar := newTestBar(t, homeTab())
	var fitted []groupbox.Layout
	bar.OnFitted = func(l groupbox.Layout) { fitted = append(fitted, l) }

	bar.Resize(fyne.NewSize(2000, GroupsBarHeight))
	layout := bar.Fitted()
	require.Len(t, layout.Groups, 2)
	assert.Equal(t, 0, layout.StepsApplied)
	assert.False(t, layout.Overflows())
	for _, gl := range layout.Groups {
		assert.Equal(t, model.GroupBoxStateLarge, gl.State)
	}
	assert.NotEmpty(t, fitted)

	bar.Resize(fyne.NewSize(1, GroupsBarHeight))
	layout = bar.Fitted()
	assert.Equal(t, 6, layout.StepsApplied)
	assert.True(t, layout.Overflows())
	for _, gl := range layout.Groups {
		assert.Equal(t, model.GroupBoxStateCollapsed, gl.State, gl.Name)
	}
}

func TestGroupsBarReducesInOrder(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	bar := newTestBar(t, homeTab())
	bar.Resize(fyne.NewSize(2000, GroupsBarHeight))
	full := bar.Fitted().TotalWidth

	// just too narrow for the full layout: only the first step is needed
	width := float32(full) + GroupBoxGap*3 - 1
	bar.Resize(fyne.NewSize(width, GroupsBarHeight))
	layout := bar.Fitted()
	require.Equal(t, 1, layout.StepsApplied)
	assert.Equal(t, model.GroupBoxStateLarge, layout.Groups[0].State)
	assert.Equal(t, model.GroupBoxStateMiddle, layout.Groups[1].State)
	assert.Equal(t, model.ControlSizeSmall, layout.Groups[1].Controls[0].Size)
}

func TestGroupsBarInvalidTab(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	tab := homeTab()
	tab.Groups[0].Controls[0].Size = "Huge"

	bar := NewGroupsBar()
	err := bar.SetTab(tab)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Home")

	bar.Resize(fyne.NewSize(500, GroupsBarHeight))
	assert.Empty(t, bar.Fitted().Groups)

	tab = homeTab()
	tab.ReduceOrder = "(Font"
	assert.Error(t, bar.SetTab(tab))

	assert.NoError(t, bar.SetTab(nil))
	assert.Nil(t, bar.Tab())
}

func TestGroupsBarControlTapped(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	bar := newTestBar(t, homeTab())
	var group, control string
	bar.OnControlTapped = func(g, c string) { group, control = g, c }
	bar.Resize(fyne.NewSize(2000, GroupsBarHeight))

	button := findButton(test.WidgetRenderer(bar).Objects(), "Paste")
	require.NotNil(t, button)
	test.Tap(button)
	assert.Equal(t, "Clipboard", group)
	assert.Equal(t, "paste", control)
}

func TestGroupsBarShowWidths(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	bar := newTestBar(t, homeTab())
	bar.Resize(fyne.NewSize(2000, GroupsBarHeight))
	before := bar.Fitted()

	bar.SetShowWidths(true)
	assert.Equal(t, before, bar.Fitted(), "header widths do not change the fit")
}

func TestShortLabel(t *testing.T) {
	assert.Equal(t, "B", shortLabel("Bold"))
	assert.Equal(t, "Ж", shortLabel("Жирный"))
	assert.Equal(t, DashPlaceholder, shortLabel(""))
}

func findButton(objects []fyne.CanvasObject, text string) *widget.Button {
	for _, o := range objects {
		switch obj := o.(type) {
		case *widget.Button:
			if obj.Text == text {
				return obj
			}
		case *fyne.Container:
			if b := findButton(obj.Objects, text); b != nil {
				return b
			}
		}
	}
	return nil
}
