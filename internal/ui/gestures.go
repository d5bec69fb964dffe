package ui

import (
	"fyne.io/fyne/v2"
)

// Gesture thresholds
const (
	// DefaultSwipeThreshold is how far a drag must travel before the strip
	// scrolls, so a shaky tap still selects a tab
	DefaultSwipeThreshold float32 = 8.0
)

// Scrolled scrolls an overflowing tab strip one line per wheel notch.
// Vertical wheels scroll horizontally, as in most tab strips.
func (s *TabStrip) Scrolled(ev *fyne.ScrollEvent) {
	if !s.scroll.CanScroll() {
		return
	}

	delta := ev.Scrolled.DX
	if delta == 0 {
		delta = ev.Scrolled.DY
	}
	switch {
	case delta > 0:
		s.scroll.LineLeft()
	case delta < 0:
		s.scroll.LineRight()
	default:
		return
	}
	s.Refresh()
}

// Dragged pans an overflowing tab strip with touch or mouse drags
func (s *TabStrip) Dragged(ev *fyne.DragEvent) {
	if !s.scroll.CanScroll() {
		return
	}

	s.dragTravel += ev.Dragged.DX
	if s.dragTravel > -DefaultSwipeThreshold && s.dragTravel < DefaultSwipeThreshold {
		return
	}
	s.scroll.SetHorizontalOffset(s.scroll.Offset - float64(ev.Dragged.DX))
	s.Refresh()
}

// DragEnd finishes a pan gesture
func (s *TabStrip) DragEnd() {
	s.dragTravel = 0
}
