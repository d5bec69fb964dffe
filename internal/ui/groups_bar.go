package ui

import (
	"fmt"
	"log/slog"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/fluentribbon/Fluent.Ribbon-sub003/internal/groupbox"
	"github.com/fluentribbon/Fluent.Ribbon-sub003/internal/model"
)

// GroupsBar shows the group boxes of the selected tab, reducing them along
// the tab's reduce order when the window gets narrow
type GroupsBar struct {
	widget.BaseWidget

	tab        *model.Tab
	groups     []groupbox.Group
	order      []groupbox.ReduceStep
	fitted     groupbox.Layout
	err        error
	showWidths bool
	measure    TextMeasurer
	metrics    groupbox.Metrics

	// OnControlTapped is called with the group and control name of a tapped control
	OnControlTapped func(group, control string)
	// OnFitted is called after every fit
	OnFitted func(layout groupbox.Layout)
}

// NewGroupsBar creates an empty groups bar
func NewGroupsBar() *GroupsBar {
	b := &GroupsBar{metrics: groupbox.DefaultMetrics()}
	b.ExtendBaseWidget(b)
	return b
}

// SetTab shows the group boxes of tab. A definition error leaves the bar
// empty and is returned.
func (b *GroupsBar) SetTab(tab *model.Tab) error {
	b.tab = tab
	b.err = b.prepare()
	b.Refresh()
	return b.err
}

// Tab returns the tab whose groups are shown
func (b *GroupsBar) Tab() *model.Tab {
	return b.tab
}

// SetShowWidths toggles the computed width next to each group header
func (b *GroupsBar) SetShowWidths(show bool) {
	b.showWidths = show
	b.Refresh()
}

// SetMeasurer replaces the label measurer. Nil restores the theme measurer.
func (b *GroupsBar) SetMeasurer(m TextMeasurer) {
	b.measure = m
	b.err = b.prepare()
	b.Refresh()
}

// Fitted returns the last group box layout
func (b *GroupsBar) Fitted() groupbox.Layout {
	return b.fitted
}

// CreateRenderer creates the widget renderer
func (b *GroupsBar) CreateRenderer() fyne.WidgetRenderer {
	return &groupsBarRenderer{
		bar:        b,
		background: canvas.NewRectangle(theme.Color(theme.ColorNameBackground)),
	}
}

func (b *GroupsBar) prepare() error {
	b.groups, b.order = nil, nil
	if b.tab == nil {
		return nil
	}

	order, err := groupbox.ParseReduceOrder(b.tab.ReduceOrder)
	if err != nil {
		return fmt.Errorf("tab %s: %w", b.tab.Header, err)
	}
	groups, err := groupbox.FromModel(b.tab.Groups, groupbox.MeasurerFunc(b.measureLabel), b.metrics)
	if err != nil {
		return fmt.Errorf("tab %s: %w", b.tab.Header, err)
	}
	b.groups, b.order = groups, order
	return nil
}

func (b *GroupsBar) measureLabel(text string) float64 {
	if b.measure != nil {
		return float64(b.measure(text))
	}
	return float64(fyne.MeasureText(text, theme.CaptionTextSize(), fyne.TextStyle{}).Width)
}

func (b *GroupsBar) fit(width float32) groupbox.Layout {
	gaps := GroupBoxGap * float32(len(b.groups)+1)
	b.fitted = groupbox.Fit(b.groups, b.order, float64(width-gaps))
	if b.OnFitted != nil {
		b.OnFitted(b.fitted)
	}
	return b.fitted
}

type groupsBarRenderer struct {
	bar        *GroupsBar
	background *canvas.Rectangle
	views      []fyne.CanvasObject
	objects    []fyne.CanvasObject
	key        string
}

// Layout fits the group boxes into size and places them left to right
func (r *groupsBarRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)

	layout := r.bar.fit(size.Width)
	if key := layoutKey(r.bar, layout); key != r.key {
		r.rebuild(layout)
		r.key = key
		slog.Debug("group boxes fitted",
			"component", "groupsbar",
			"width", size.Width,
			"steps", layout.StepsApplied,
			"overflow", layout.Overflows())
	}

	x := GroupBoxGap
	for i, view := range r.views {
		w := float32(layout.Groups[i].Width)
		view.Move(fyne.NewPos(x, 0))
		view.Resize(fyne.NewSize(w, size.Height))
		x += w + GroupBoxGap
	}
}

// MinSize allows any width; group boxes collapse instead
func (r *groupsBarRenderer) MinSize() fyne.Size {
	return fyne.NewSize(0, GroupsBarHeight)
}

// Refresh rebuilds the group views and re-runs the layout
func (r *groupsBarRenderer) Refresh() {
	r.key = ""
	r.background.FillColor = theme.Color(theme.ColorNameBackground)
	r.Layout(r.bar.Size())
	canvas.Refresh(r.bar)
}

// Objects returns the canvas objects
func (r *groupsBarRenderer) Objects() []fyne.CanvasObject {
	if r.objects == nil {
		return []fyne.CanvasObject{r.background}
	}
	return r.objects
}

// Destroy cleans up the renderer
func (r *groupsBarRenderer) Destroy() {}

func (r *groupsBarRenderer) rebuild(layout groupbox.Layout) {
	r.views = make([]fyne.CanvasObject, 0, len(layout.Groups))
	r.objects = []fyne.CanvasObject{r.background}
	if r.bar.tab == nil {
		return
	}

	for i, gl := range layout.Groups {
		view := newGroupView(r.bar.tab.Groups[i], gl, r.bar.showWidths, r.bar.OnControlTapped)
		r.views = append(r.views, view)
		r.objects = append(r.objects, view)
	}
}

func layoutKey(bar *GroupsBar, layout groupbox.Layout) string {
	var sb strings.Builder
	if bar.tab != nil {
		sb.WriteString(bar.tab.ID)
	}
	fmt.Fprintf(&sb, "|%t", bar.showWidths)
	for _, gl := range layout.Groups {
		fmt.Fprintf(&sb, "|%s:%s:%d", gl.Name, gl.State, gl.Scale)
	}
	return sb.String()
}

// newGroupView renders one group box in its fitted state
func newGroupView(box *model.GroupBox, gl groupbox.GroupLayout, showWidth bool, onTap func(group, control string)) fyne.CanvasObject {
	tap := func(control string) func() {
		return func() {
			if onTap != nil {
				onTap(box.Name, control)
			}
		}
	}

	header := box.Header
	if showWidth {
		header += MiddleDotSeparator + fmt.Sprintf(WidthLabelFormat, gl.Width)
	}
	headerText := canvas.NewText(header, theme.Color(theme.ColorNameForeground))
	headerText.TextSize = theme.CaptionTextSize()
	headerText.Alignment = fyne.TextAlignCenter

	background := canvas.NewRectangle(theme.Color(ColorNameGroupBox))
	background.CornerRadius = theme.InputRadiusSize()

	var content fyne.CanvasObject
	if gl.State.IsCollapsed() {
		content = newCollapsedButton(box, tap)
	} else {
		content = newControlColumns(box, gl, tap)
	}

	return container.NewStack(background, container.NewBorder(nil, headerText, nil, nil, content))
}

func newCollapsedButton(box *model.GroupBox, tap func(string) func()) fyne.CanvasObject {
	var button *widget.Button
	button = widget.NewButton(box.Header+" "+IconCollapse, func() {
		items := make([]*fyne.MenuItem, 0, len(box.Controls))
		for _, c := range box.Controls {
			items = append(items, fyne.NewMenuItem(controlLabel(c), tap(c.Name)))
		}
		c := fyne.CurrentApp().Driver().CanvasForObject(button)
		if c == nil {
			return
		}
		pos := fyne.CurrentApp().Driver().AbsolutePositionForObject(button)
		widget.ShowPopUpMenuAtPosition(fyne.NewMenu(box.Header, items...), c, pos.AddXY(0, button.Size().Height))
	})
	button.Importance = widget.LowImportance
	return container.NewCenter(button)
}

func newControlColumns(box *model.GroupBox, gl groupbox.GroupLayout, tap func(string) func()) fyne.CanvasObject {
	columns := container.NewHBox()
	var stack *fyne.Container
	flush := func() {
		if stack != nil {
			columns.Add(stack)
			stack = nil
		}
	}

	scaleLeft := gl.Scale
	for i, c := range box.Controls {
		if c.IsScalable() {
			flush()
			drop := min(scaleLeft, c.GalleryItems-1)
			scaleLeft -= drop
			columns.Add(newGallery(c, c.GalleryItems-drop, tap(c.Name)))
			continue
		}

		size := model.ControlSizeLarge
		if i < len(gl.Controls) {
			size = gl.Controls[i].Size
		}

		switch size {
		case model.ControlSizeLarge:
			flush()
			button := widget.NewButton(controlLabel(c), tap(c.Name))
			button.Importance = widget.LowImportance
			columns.Add(button)
		default:
			if stack == nil {
				stack = container.NewVBox()
			}
			text := controlLabel(c)
			if size == model.ControlSizeSmall {
				text = shortLabel(text)
			}
			button := widget.NewButton(text, tap(c.Name))
			button.Importance = widget.LowImportance
			stack.Add(button)
			if len(stack.Objects) == groupbox.DefaultMetrics().RowsPerColumn {
				flush()
			}
		}
	}
	flush()
	return columns
}

func newGallery(c *model.Control, visible int, onTapped func()) fyne.CanvasObject {
	items := container.NewHBox()
	for i := 0; i < visible; i++ {
		swatch := canvas.NewRectangle(ContextualColor(i))
		swatch.SetMinSize(fyne.NewSize(SmallControlSize, SmallControlSize))
		items.Add(swatch)
	}
	more := widget.NewButton(IconOverflow, onTapped)
	more.Importance = widget.LowImportance
	return container.NewBorder(nil, nil, nil, more, items)
}

func controlLabel(c *model.Control) string {
	if c.Label != "" {
		return c.Label
	}
	return c.Name
}

// shortLabel keeps the first letter of a label for icon-only controls
func shortLabel(label string) string {
	for _, r := range label {
		return string(r)
	}
	return DashPlaceholder
}
