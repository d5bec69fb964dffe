package tabstrip

import "math"

// Scrolling constants for hosts that scroll an overflowing tab strip
const (
	// ScrollEpsilon is how far extent or viewport may move before the
	// cached scroll state counts as changed. Hosts use it to avoid
	// invalidating layout forever on sub-pixel jitter.
	ScrollEpsilon = 1.5

	// LineStep is the distance moved by LineLeft and LineRight
	LineStep = 16.0
)

// ScrollData caches the horizontal scroll state of a tab strip host.
// It is owned by the host, never by Allocate.
type ScrollData struct {
	Extent   float64
	Viewport float64
	Offset   float64
}

// Verify stores the new viewport and extent and reports whether the cached
// state changed by more than ScrollEpsilon. An infinite viewport means the
// host is not constrained and is treated as equal to the extent.
func (s *ScrollData) Verify(viewport, extent float64) bool {
	if math.IsInf(viewport, 1) {
		viewport = extent
	}
	viewport = sanitize(viewport)
	extent = sanitize(extent)

	offset := coerceOffset(s.Offset, extent, viewport)
	valid := areClose(viewport, s.Viewport) &&
		areClose(extent, s.Extent) &&
		areClose(offset, s.Offset)

	s.Viewport = viewport
	s.Extent = extent
	s.Offset = offset
	return !valid
}

// CanScroll reports whether the extent exceeds the viewport
func (s *ScrollData) CanScroll() bool {
	return s.Extent-s.Viewport > ScrollEpsilon
}

// SetHorizontalOffset moves the offset, clamped to the scrollable range
func (s *ScrollData) SetHorizontalOffset(offset float64) {
	s.Offset = coerceOffset(offset, s.Extent, s.Viewport)
}

// LineLeft scrolls one line step to the left
func (s *ScrollData) LineLeft() {
	s.SetHorizontalOffset(s.Offset - LineStep)
}

// LineRight scrolls one line step to the right
func (s *ScrollData) LineRight() {
	s.SetHorizontalOffset(s.Offset + LineStep)
}

// MakeVisible scrolls the least amount needed to show [left, left+width)
// and returns the new offset.
func (s *ScrollData) MakeVisible(left, width float64) float64 {
	right := left + width
	switch {
	case left < s.Offset:
		s.SetHorizontalOffset(left)
	case right > s.Offset+s.Viewport:
		s.SetHorizontalOffset(right - s.Viewport)
	}
	return s.Offset
}

func coerceOffset(offset, extent, viewport float64) float64 {
	if math.IsNaN(offset) || offset < 0 {
		return 0
	}
	return math.Max(0, math.Min(offset, extent-viewport))
}

func areClose(a, b float64) bool {
	return math.Abs(a-b) < ScrollEpsilon
}
