package ui

import (
	"image/color"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/fluentribbon/Fluent.Ribbon-sub003/internal/model"
	"github.com/fluentribbon/Fluent.Ribbon-sub003/internal/tabstrip"
)

// TextMeasurer returns the width of a single line of header text
type TextMeasurer func(text string) float32

// TabStrip shows ribbon tab headers and shrinks them under width pressure
type TabStrip struct {
	widget.BaseWidget

	tabs       []*model.Tab
	groupIndex map[string]int
	selected   string
	whitespace float32
	measure    TextMeasurer

	result    tabstrip.LayoutResult
	signature []tabstrip.TabItem
	sigWidth  float32
	scroll    tabstrip.ScrollData

	dragTravel float32

	// OnSelected is called after the user selects a tab
	OnSelected func(tab *model.Tab)
	// OnArranged is called whenever the tab widths were recomputed
	OnArranged func(result tabstrip.LayoutResult)
}

// NewTabStrip creates an empty tab strip
func NewTabStrip(whitespace float32) *TabStrip {
	s := &TabStrip{
		whitespace: whitespace,
		groupIndex: make(map[string]int),
	}
	s.ExtendBaseWidget(s)
	return s
}

// SetTabs replaces the displayed tabs. Contextual groups give the order used
// to color contextual tabs. The selection is kept when the selected tab is
// still present, then when a tab with the same header is, otherwise the
// first tab is selected.
func (s *TabStrip) SetTabs(tabs []*model.Tab, groups []*model.ContextualGroup) {
	header := ""
	if prev := s.Selected(); prev != nil {
		header = prev.Header
	}

	s.tabs = tabs
	s.groupIndex = make(map[string]int, len(groups))
	for i, g := range groups {
		s.groupIndex[g.Name] = i
	}

	if s.indexOf(s.selected) < 0 {
		s.selected = ""
		for _, tab := range tabs {
			if header != "" && tab.Header == header {
				s.selected = tab.ID
				break
			}
		}
		if s.selected == "" && len(tabs) > 0 {
			s.selected = tabs[0].ID
		}
	}
	s.Refresh()
}

// Tabs returns the displayed tabs
func (s *TabStrip) Tabs() []*model.Tab {
	return s.tabs
}

// SetWhitespace sets the padding added on each side of a header
func (s *TabStrip) SetWhitespace(whitespace float32) {
	if whitespace < 0 {
		whitespace = 0
	}
	s.whitespace = whitespace
	s.Refresh()
}

// SetMeasurer replaces the text measurer. Nil restores the theme measurer.
func (s *TabStrip) SetMeasurer(m TextMeasurer) {
	s.measure = m
	s.Refresh()
}

// Select selects the tab with the given ID and scrolls it into view.
// OnSelected is not called.
func (s *TabStrip) Select(id string) {
	if s.indexOf(id) < 0 {
		return
	}
	s.selected = id
	s.bringIntoView(id)
	s.Refresh()
}

// Selected returns the selected tab or nil
func (s *TabStrip) Selected() *model.Tab {
	if i := s.indexOf(s.selected); i >= 0 {
		return s.tabs[i]
	}
	return nil
}

// Result returns the last tab width allocation
func (s *TabStrip) Result() tabstrip.LayoutResult {
	return s.result
}

// ScrollOffset returns how far the headers are scrolled to the left
func (s *TabStrip) ScrollOffset() float32 {
	return float32(s.scroll.Offset)
}

// Tapped selects the tab under the pointer
func (s *TabStrip) Tapped(ev *fyne.PointEvent) {
	i := s.tabAt(ev.Position.X)
	if i < 0 {
		return
	}
	tab := s.tabs[i]
	s.Select(tab.ID)
	if s.OnSelected != nil {
		s.OnSelected(tab)
	}
}

// CreateRenderer creates the widget renderer
func (s *TabStrip) CreateRenderer() fyne.WidgetRenderer {
	r := &tabStripRenderer{
		strip:      s,
		background: canvas.NewRectangle(theme.Color(theme.ColorNameBackground)),
	}
	r.rebuild()
	return r
}

func (s *TabStrip) indexOf(id string) int {
	for i, tab := range s.tabs {
		if tab.ID == id {
			return i
		}
	}
	return -1
}

func (s *TabStrip) tabAt(x float32) int {
	pos := float64(x) + s.scroll.Offset
	offsets := s.result.Offsets()
	for i, left := range offsets {
		if i >= len(s.tabs) {
			break
		}
		if pos >= left && pos < left+s.result.Tabs[i].AssignedWidth {
			return i
		}
	}
	return -1
}

func (s *TabStrip) bringIntoView(id string) {
	i := s.indexOf(id)
	if i < 0 || i >= len(s.result.Tabs) {
		return
	}
	s.scroll.MakeVisible(s.result.Offsets()[i], s.result.Tabs[i].AssignedWidth)
}

func (s *TabStrip) measureText(text string) float32 {
	if s.measure != nil {
		return s.measure(text)
	}
	return fyne.MeasureText(text, theme.TextSize(), fyne.TextStyle{}).Width
}

func (s *TabStrip) headerHeight() float32 {
	return fyne.MeasureText("Mg", theme.TextSize(), fyne.TextStyle{}).Height + 2*theme.Padding()
}

// arrange runs the allocator for size, reusing the previous result when
// neither the tabs nor the width changed, then verifies the scroll state.
func (s *TabStrip) arrange(size fyne.Size) tabstrip.LayoutResult {
	height := s.headerHeight()
	items := make([]tabstrip.TabItem, len(s.tabs))
	for i, tab := range s.tabs {
		items[i] = tabstrip.TabItem{
			Key:             tab.ID,
			IntrinsicWidth:  float64(s.measureText(tab.Header) + 2*s.whitespace),
			IntrinsicHeight: float64(height),
			IsContextual:    tab.IsContextual(),
			Whitespace:      float64(s.whitespace),
		}
	}

	if !s.sameSignature(items, size.Width) {
		s.result = tabstrip.Allocate(tabstrip.LayoutInput{
			Tabs:            items,
			AvailableWidth:  float64(size.Width),
			AvailableHeight: float64(size.Height),
		})
		s.signature = items
		s.sigWidth = size.Width
		slog.Debug("tab strip arranged",
			"component", "tabstrip",
			"tabs", len(items),
			"width", size.Width,
			"step", s.result.Step.String(),
			"overflow", s.result.Overflows())
		if s.OnArranged != nil {
			s.OnArranged(s.result)
		}
	}

	if s.scroll.Verify(float64(size.Width), s.result.TotalDesiredWidth) {
		s.bringIntoView(s.selected)
	}
	return s.result
}

func (s *TabStrip) sameSignature(items []tabstrip.TabItem, width float32) bool {
	if width != s.sigWidth || len(items) != len(s.signature) {
		return false
	}
	for i := range items {
		if items[i] != s.signature[i] {
			return false
		}
	}
	return true
}

// tabHeader holds the canvas objects of one tab header
type tabHeader struct {
	text      *canvas.Text
	band      *canvas.Rectangle
	underline *canvas.Rectangle
	separator *canvas.Rectangle
}

type tabStripRenderer struct {
	strip      *TabStrip
	background *canvas.Rectangle
	headers    []*tabHeader
	objects    []fyne.CanvasObject
}

// Layout arranges the headers left to right at their allocated widths
func (r *tabStripRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	if len(r.headers) != len(r.strip.tabs) {
		r.rebuild()
	}

	result := r.strip.arrange(size)
	offsets := result.Offsets()
	scroll := float32(r.strip.scroll.Offset)
	last := len(r.headers) - 1

	for i, h := range r.headers {
		tab := r.strip.tabs[i]
		x := float32(offsets[i]) - scroll
		w := float32(result.Tabs[i].AssignedWidth)

		h.text.Text = fitText(tab.Header, w, r.strip.measureText)
		textSize := h.text.MinSize()
		textWidth := r.strip.measureText(h.text.Text)
		h.text.Move(fyne.NewPos(x+(w-textWidth)/2, (size.Height-textSize.Height)/2))
		h.text.Resize(fyne.NewSize(textWidth, textSize.Height))

		if tab.IsContextual() {
			h.band.FillColor = ContextualColor(r.strip.groupIndex[tab.ContextualGroup])
			h.band.Move(fyne.NewPos(x, 0))
			h.band.Resize(fyne.NewSize(w, ContextualBandSize))
			h.band.Show()
		} else {
			h.band.Hide()
		}

		if tab.ID == r.strip.selected {
			h.underline.Move(fyne.NewPos(x, size.Height-TabSelectedLine))
			h.underline.Resize(fyne.NewSize(w, TabSelectedLine))
			h.underline.Show()
		} else {
			h.underline.Hide()
		}

		if result.Tabs[i].SeparatorVisible && i < last {
			h.separator.Move(fyne.NewPos(x+w-TabSeparatorWidth, size.Height*0.2))
			h.separator.Resize(fyne.NewSize(TabSeparatorWidth, size.Height*0.6))
			h.separator.Show()
		} else {
			h.separator.Hide()
		}
	}
}

// MinSize lets the strip shrink below its desired width; the allocator
// handles the pressure
func (r *tabStripRenderer) MinSize() fyne.Size {
	height := r.strip.headerHeight() + ContextualBandSize
	if height < TabStripMinHeight {
		height = TabStripMinHeight
	}
	return fyne.NewSize(TabStripMinWidth, height)
}

// Refresh updates colors and re-runs the layout
func (r *tabStripRenderer) Refresh() {
	if len(r.headers) != len(r.strip.tabs) {
		r.rebuild()
	}
	r.background.FillColor = theme.Color(theme.ColorNameBackground)
	for _, h := range r.headers {
		h.text.Color = theme.Color(theme.ColorNameForeground)
		h.text.TextSize = theme.TextSize()
		h.underline.FillColor = theme.Color(ColorNameTabSelected)
		h.separator.FillColor = theme.Color(ColorNameTabSeparator)
	}
	r.Layout(r.strip.Size())
	canvas.Refresh(r.strip)
}

// Objects returns the canvas objects
func (r *tabStripRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

// Destroy cleans up the renderer
func (r *tabStripRenderer) Destroy() {}

func (r *tabStripRenderer) rebuild() {
	r.headers = make([]*tabHeader, len(r.strip.tabs))
	r.objects = []fyne.CanvasObject{r.background}
	for i, tab := range r.strip.tabs {
		h := &tabHeader{
			text:      canvas.NewText(tab.Header, theme.Color(theme.ColorNameForeground)),
			band:      canvas.NewRectangle(color.Transparent),
			underline: canvas.NewRectangle(theme.Color(ColorNameTabSelected)),
			separator: canvas.NewRectangle(theme.Color(ColorNameTabSeparator)),
		}
		h.text.TextSize = theme.TextSize()
		r.headers[i] = h
		r.objects = append(r.objects, h.band, h.text, h.underline, h.separator)
	}
}

// fitText shortens text with an ellipsis until it fits into width
func fitText(text string, width float32, measure TextMeasurer) string {
	if measure(text) <= width {
		return text
	}

	runes := []rune(text)
	lo, hi := 0, len(runes)
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if measure(string(runes[:mid])+IconEllipsis) <= width {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	if lo == 0 {
		if measure(IconEllipsis) <= width {
			return IconEllipsis
		}
		return ""
	}
	return string(runes[:lo]) + IconEllipsis
}
