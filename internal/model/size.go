package model

import (
	"fmt"
	"strings"
)

// ControlSize is the size a ribbon control is displayed at
type ControlSize string

const (
	// ControlSizeLarge shows a large icon with the label below it
	ControlSizeLarge ControlSize = "Large"

	// ControlSizeMiddle shows a small icon with the label beside it
	ControlSizeMiddle ControlSize = "Middle"

	// ControlSizeSmall shows the small icon only
	ControlSizeSmall ControlSize = "Small"
)

// String returns the string representation of ControlSize
func (cs ControlSize) String() string {
	return string(cs)
}

// ParseControlSize parses a control size name, ignoring case and surrounding spaces
func ParseControlSize(s string) (ControlSize, error) {
	for _, size := range []ControlSize{ControlSizeLarge, ControlSizeMiddle, ControlSizeSmall} {
		if strings.EqualFold(strings.TrimSpace(s), string(size)) {
			return size, nil
		}
	}
	return "", fmt.Errorf("unknown control size: %q", s)
}

// GroupBoxState represents how much of a ribbon group box is shown
type GroupBoxState string

const (
	// GroupBoxStateLarge shows every control at its large size
	GroupBoxStateLarge GroupBoxState = "Large"

	// GroupBoxStateMiddle shows controls at their middle size definition
	GroupBoxStateMiddle GroupBoxState = "Middle"

	// GroupBoxStateSmall shows controls at their small size definition
	GroupBoxStateSmall GroupBoxState = "Small"

	// GroupBoxStateCollapsed shows a single button opening the group in a popup
	GroupBoxStateCollapsed GroupBoxState = "Collapsed"

	// GroupBoxStateQuickAccess is used for group copies in the quick access toolbar
	GroupBoxStateQuickAccess GroupBoxState = "QuickAccess"
)

// groupBoxStateOrder lists reducible states from widest to narrowest
var groupBoxStateOrder = []GroupBoxState{
	GroupBoxStateLarge,
	GroupBoxStateMiddle,
	GroupBoxStateSmall,
	GroupBoxStateCollapsed,
}

// String returns the string representation of GroupBoxState
func (gs GroupBoxState) String() string {
	return string(gs)
}

// IsCollapsed returns true if the group box content lives in a popup
func (gs GroupBoxState) IsCollapsed() bool {
	return gs == GroupBoxStateCollapsed || gs == GroupBoxStateQuickAccess
}

// Rank returns the position of the state from widest (0) to narrowest,
// or -1 for QuickAccess and unknown states
func (gs GroupBoxState) Rank() int {
	for i, state := range groupBoxStateOrder {
		if state == gs {
			return i
		}
	}
	return -1
}

// Next returns the next narrower state. Collapsed and QuickAccess do not reduce further.
func (gs GroupBoxState) Next() GroupBoxState {
	rank := gs.Rank()
	if rank < 0 || rank == len(groupBoxStateOrder)-1 {
		return gs
	}
	return groupBoxStateOrder[rank+1]
}

// Wider returns every reducible state wider than gs, nearest first
func (gs GroupBoxState) Wider() []GroupBoxState {
	rank := gs.Rank()
	if rank <= 0 {
		return nil
	}
	wider := make([]GroupBoxState, 0, rank)
	for i := rank - 1; i >= 0; i-- {
		wider = append(wider, groupBoxStateOrder[i])
	}
	return wider
}

// ParseGroupBoxState parses a group box state name, ignoring case and surrounding spaces
func ParseGroupBoxState(s string) (GroupBoxState, error) {
	for _, state := range append(groupBoxStateOrder, GroupBoxStateQuickAccess) {
		if strings.EqualFold(strings.TrimSpace(s), string(state)) {
			return state, nil
		}
	}
	return "", fmt.Errorf("unknown group box state: %q", s)
}
