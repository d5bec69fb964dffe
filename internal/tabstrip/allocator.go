package tabstrip

import (
	"math"
	"sort"
)

// Allocate computes the width of every tab for the given available width.
//
// The cascade stops at the first step that fits the tabs:
//  1. everything fits, tabs keep their intrinsic width
//  2. regular tabs give up whitespace evenly
//  3. regular tabs lose all whitespace, contextual tabs give up whitespace
//     starting from the last one
//  4. all whitespace is gone and the widest regular tabs are cut to a
//     common width
//  5. regular tabs are shrunk uniformly, not below MinTabWidth
//  6. regular tabs sit at MinTabWidth and contextual tabs are reduced the
//     same way as in steps 4 and 5
//
// Widths only ever shrink. The result of step 6 may still be wider than the
// available width. Allocate never modifies in.Tabs.
func Allocate(in LayoutInput) LayoutResult {
	res := LayoutResult{AvailableWidth: sanitizeAvailable(in.AvailableWidth)}
	if len(in.Tabs) == 0 {
		return res
	}

	p := newPass(in.Tabs)
	res.Step = p.run(res.AvailableWidth)

	switch res.Step {
	case StepFit:
	case StepRegularWhitespace:
		res.RegularSeparators = true
	default:
		res.RegularSeparators = true
		res.ContextualSeparators = true
	}

	for i := range p.tabs {
		tab := &p.tabs[i]
		if tab.IsContextual {
			tab.SeparatorVisible = res.ContextualSeparators
		} else {
			tab.SeparatorVisible = res.RegularSeparators
		}
		res.TotalDesiredWidth += tab.AssignedWidth
		res.TotalDesiredHeight = math.Max(res.TotalDesiredHeight, tab.IntrinsicHeight)
	}
	res.Tabs = p.tabs
	return res
}

// pass is the working state of one Allocate call
type pass struct {
	tabs       []TabItem
	regular    []int // indexes of regular tabs in display order
	contextual []int // indexes of contextual tabs in display order
	overflow   float64
}

func newPass(src []TabItem) *pass {
	p := &pass{tabs: make([]TabItem, len(src))}
	for i, tab := range src {
		tab.IntrinsicWidth = sanitize(tab.IntrinsicWidth)
		tab.IntrinsicHeight = sanitize(tab.IntrinsicHeight)
		tab.Whitespace = sanitize(tab.Whitespace)
		tab.AssignedWidth = tab.IntrinsicWidth
		tab.SeparatorVisible = false
		p.tabs[i] = tab

		if tab.IsContextual {
			p.contextual = append(p.contextual, i)
		} else {
			p.regular = append(p.regular, i)
		}
	}
	return p
}

func (p *pass) run(available float64) Step {
	total := p.width(p.regular) + p.width(p.contextual)
	if total <= available {
		return StepFit
	}
	p.overflow = total - available

	regularWhitespace := p.whitespace(p.regular)
	if len(p.regular) > 0 && p.overflow < regularWhitespace {
		decrease := p.overflow / float64(len(p.regular))
		for _, i := range p.regular {
			p.overflow -= p.shrink(i, decrease)
		}
		return StepRegularWhitespace
	}

	if p.overflow < regularWhitespace+p.whitespace(p.contextual) {
		p.trimWhitespace()
		return StepContextualWhitespace
	}

	p.trimWhitespace()
	if p.equalize(p.regular, 0) {
		return StepRegularEqualize
	}
	if p.floorRegular() {
		return StepRegularFloor
	}

	for _, i := range p.regular {
		p.overflow -= p.shrinkTo(i, MinTabWidth)
	}
	if p.overflow > 0 && !p.equalize(p.contextual, MinTabWidth) {
		p.floorUniform(p.contextual)
	}
	return StepContextualReduce
}

// trimWhitespace removes the whitespace of every regular tab, then walks the
// contextual tabs from last to first until the overflow is consumed.
func (p *pass) trimWhitespace() {
	for _, i := range p.regular {
		p.overflow -= p.shrink(i, 2*p.tabs[i].Whitespace)
	}
	for j := len(p.contextual) - 1; j >= 0; j-- {
		if p.overflow <= 0 {
			return
		}
		i := p.contextual[j]
		p.overflow -= p.shrink(i, math.Min(2*p.tabs[i].Whitespace, p.overflow))
	}
}

// equalize cuts the widest tabs of group down to a common width so that
// exactly the overflow is consumed. It fails when even cutting every tab to
// the narrowest one is not enough, or when the common width would drop
// below floor.
func (p *pass) equalize(group []int, floor float64) bool {
	if len(group) == 0 {
		return false
	}
	if p.overflow <= 0 {
		return true
	}

	order := append([]int(nil), group...)
	sort.SliceStable(order, func(a, b int) bool {
		return p.tabs[order[a]].AssignedWidth > p.tabs[order[b]].AssignedWidth
	})

	cost := 0.0
	for rank := 0; rank < len(order)-1; rank++ {
		step := p.tabs[order[rank]].AssignedWidth - p.tabs[order[rank+1]].AssignedWidth
		cost += step * float64(rank+1)
		if cost < p.overflow {
			continue
		}

		reduceCount := rank + 1
		top := p.width(order[:reduceCount])
		target := (top - p.overflow) / float64(reduceCount)
		if target < floor {
			return false
		}
		for _, i := range order[:reduceCount] {
			p.overflow -= p.shrinkTo(i, target)
		}
		return true
	}
	return false
}

// floorRegular shrinks all regular tabs to the same width when that width
// stays above MinTabWidth.
func (p *pass) floorRegular() bool {
	n := float64(len(p.regular))
	if n == 0 {
		return false
	}
	sum := p.width(p.regular)
	if !(p.overflow < sum-MinTabWidth*n) {
		return false
	}
	target := (sum - p.overflow) / n
	for _, i := range p.regular {
		p.overflow -= p.shrinkTo(i, target)
	}
	return true
}

// floorUniform shrinks every tab of group toward a common width, never
// below MinTabWidth.
func (p *pass) floorUniform(group []int) {
	if len(group) == 0 {
		return
	}
	target := (p.width(group) - p.overflow) / float64(len(group))
	target = math.Max(target, MinTabWidth)
	for _, i := range group {
		p.overflow -= p.shrinkTo(i, target)
	}
}

// shrink reduces tab i by up to amount, never below zero, and returns the
// width actually removed.
func (p *pass) shrink(i int, amount float64) float64 {
	return p.shrinkTo(i, p.tabs[i].AssignedWidth-amount)
}

// shrinkTo sets tab i to target unless it is already narrower, and returns
// the width actually removed.
func (p *pass) shrinkTo(i int, target float64) float64 {
	tab := &p.tabs[i]
	target = math.Max(target, 0)
	if target >= tab.AssignedWidth {
		return 0
	}
	removed := tab.AssignedWidth - target
	tab.AssignedWidth = target
	return removed
}

func (p *pass) width(group []int) float64 {
	sum := 0.0
	for _, i := range group {
		sum += p.tabs[i].AssignedWidth
	}
	return sum
}

func (p *pass) whitespace(group []int) float64 {
	sum := 0.0
	for _, i := range group {
		sum += 2 * p.tabs[i].Whitespace
	}
	return sum
}

func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// sanitizeAvailable keeps +Inf, which means unconstrained
func sanitizeAvailable(v float64) float64 {
	if math.IsInf(v, 1) {
		return v
	}
	return sanitize(v)
}
