package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconOverflow = "»"
	IconCollapse = "▾"
	IconEllipsis = "…"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
	WidthLabelFormat   = "%.0f"
)

// Tab strip sizing
const (
	TabStripMinHeight  float32 = 28
	TabStripMinWidth   float32 = 60
	TabSeparatorWidth  float32 = 1
	TabSelectedLine    float32 = 2
	ContextualBandSize float32 = 3
)

// Groups bar sizing
const (
	GroupsBarHeight  float32 = 96
	GroupBoxGap      float32 = 2
	SmallControlSize float32 = 22
)

// Window sizing
const (
	WindowWidth  float32 = 900
	WindowHeight float32 = 260
)

// UIUpdateDebounce is the minimum gap between status line updates driven by layout passes
const UIUpdateDebounce = 100 * time.Millisecond
