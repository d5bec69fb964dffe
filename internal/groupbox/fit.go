package groupbox

import (
	"math"

	"github.com/fluentribbon/Fluent.Ribbon-sub003/internal/model"
)

// Control is a control of a group box as seen by Fit
type Control struct {
	Name string
	Size SizeDefinition
}

// Group is a group box with its measured width per state
type Group struct {
	Name string
	// Widths holds the measured width for each state. A missing state uses
	// the nearest wider state that is present.
	Widths map[model.GroupBoxState]float64
	// ScaleWidths holds the width given up by each intermediate scale step,
	// in the order the steps are taken. Collapsed groups ignore scaling.
	ScaleWidths []float64
	Controls    []Control
}

// Width returns the width of the group in state after scale scale steps
func (g Group) Width(state model.GroupBoxState, scale int) float64 {
	width := g.stateWidth(state)
	if state.IsCollapsed() {
		return width
	}
	for i := 0; i < scale && i < len(g.ScaleWidths); i++ {
		width -= sanitize(g.ScaleWidths[i])
	}
	return math.Max(width, 0)
}

func (g Group) stateWidth(state model.GroupBoxState) float64 {
	if w, ok := g.Widths[state]; ok {
		return sanitize(w)
	}
	for _, wider := range state.Wider() {
		if w, ok := g.Widths[wider]; ok {
			return sanitize(w)
		}
	}
	return 0
}

// ControlLayout is the size picked for one control
type ControlLayout struct {
	Name string
	Size model.ControlSize
}

// GroupLayout is the outcome of Fit for one group box
type GroupLayout struct {
	Name     string
	State    model.GroupBoxState
	Scale    int
	Width    float64
	Controls []ControlLayout
}

// Layout is the outcome of Fit for all group boxes of a tab
type Layout struct {
	Groups         []GroupLayout
	TotalWidth     float64
	AvailableWidth float64
	// StepsApplied is the length of the reduce order prefix that was applied
	StepsApplied int
}

// Overflows reports whether the groups are still wider than the available width
func (l Layout) Overflows() bool {
	return l.TotalWidth > l.AvailableWidth
}

// Fit applies the shortest prefix of order that makes groups fit into
// available. When no prefix fits, the whole order is applied and the
// layout overflows. Steps naming unknown groups are skipped.
func Fit(groups []Group, order []ReduceStep, available float64) Layout {
	if !math.IsInf(available, 1) {
		available = sanitize(available)
	}

	layout := Layout{
		Groups:         make([]GroupLayout, len(groups)),
		AvailableWidth: available,
	}
	index := make(map[string]int, len(groups))
	for i, g := range groups {
		layout.Groups[i] = GroupLayout{Name: g.Name, State: model.GroupBoxStateLarge}
		if _, dup := index[g.Name]; !dup {
			index[g.Name] = i
		}
	}

	total := totalWidth(groups, layout.Groups)
	for total > available && layout.StepsApplied < len(order) {
		step := order[layout.StepsApplied]
		layout.StepsApplied++

		i, ok := index[step.Group]
		if !ok {
			continue
		}
		gl := &layout.Groups[i]
		if step.Scale {
			if gl.Scale < len(groups[i].ScaleWidths) {
				gl.Scale++
			}
		} else {
			gl.State = gl.State.Next()
		}
		total = totalWidth(groups, layout.Groups)
	}

	for i, g := range groups {
		gl := &layout.Groups[i]
		gl.Width = g.Width(gl.State, gl.Scale)
		gl.Controls = make([]ControlLayout, len(g.Controls))
		for j, c := range g.Controls {
			gl.Controls[j] = ControlLayout{Name: c.Name, Size: c.Size.For(gl.State)}
		}
	}
	layout.TotalWidth = total
	return layout
}

func totalWidth(groups []Group, layouts []GroupLayout) float64 {
	total := 0.0
	for i, g := range groups {
		total += g.Width(layouts[i].State, layouts[i].Scale)
	}
	return total
}

func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
