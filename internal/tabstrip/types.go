package tabstrip

// MinTabWidth is the narrowest width a tab is truncated to once label
// truncation begins (enough for about three characters of the header).
const MinTabWidth = 30.0

// Step identifies the cascade step that terminated an allocation
type Step int

const (
	// StepNone means there was nothing to lay out
	StepNone Step = iota

	// StepFit means every tab got its intrinsic width
	StepFit

	// StepRegularWhitespace means overflow was absorbed by regular tabs' whitespace
	StepRegularWhitespace

	// StepContextualWhitespace means contextual tabs gave up whitespace too
	StepContextualWhitespace

	// StepRegularEqualize means the widest regular tabs were cut to a common width
	StepRegularEqualize

	// StepRegularFloor means all regular tabs were shrunk uniformly, not below MinTabWidth
	StepRegularFloor

	// StepContextualReduce means regular tabs sit at the floor and contextual tabs were reduced
	StepContextualReduce
)

// String returns the string representation of Step
func (s Step) String() string {
	switch s {
	case StepNone:
		return "none"
	case StepFit:
		return "fit"
	case StepRegularWhitespace:
		return "regular-whitespace"
	case StepContextualWhitespace:
		return "contextual-whitespace"
	case StepRegularEqualize:
		return "regular-equalize"
	case StepRegularFloor:
		return "regular-floor"
	case StepContextualReduce:
		return "contextual-reduce"
	default:
		return "unknown"
	}
}

// Truncates reports whether tab labels may be cut at this step
func (s Step) Truncates() bool {
	return s >= StepRegularEqualize
}

// TabItem is one ribbon tab header as seen by the allocator.
// AssignedWidth and SeparatorVisible are outputs.
type TabItem struct {
	Key              string  // optional host correlation key, copied through
	IntrinsicWidth   float64 // fully expanded width, whitespace included
	IntrinsicHeight  float64
	IsContextual     bool
	Whitespace       float64 // horizontal padding on each side of the label
	AssignedWidth    float64
	SeparatorVisible bool
}

// LayoutInput is one layout pass worth of tabs in display order
type LayoutInput struct {
	Tabs            []TabItem
	AvailableWidth  float64
	AvailableHeight float64
}

// LayoutResult holds the tabs of a LayoutInput with outputs populated
type LayoutResult struct {
	Tabs               []TabItem
	TotalDesiredWidth  float64
	TotalDesiredHeight float64

	// AvailableWidth is the sanitized width the allocation ran against
	AvailableWidth float64

	Step                 Step
	RegularSeparators    bool
	ContextualSeparators bool
}

// Overflows reports whether the tabs still exceed the available width.
// The host is expected to clip or scroll in that case.
func (r LayoutResult) Overflows() bool {
	return r.TotalDesiredWidth > r.AvailableWidth
}

// Offsets returns the left edge of each tab when arranged left to right
func (r LayoutResult) Offsets() []float64 {
	offsets := make([]float64, len(r.Tabs))
	x := 0.0
	for i, tab := range r.Tabs {
		offsets[i] = x
		x += tab.AssignedWidth
	}
	return offsets
}
