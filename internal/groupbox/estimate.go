package groupbox

import (
	"fmt"
	"math"

	"github.com/fluentribbon/Fluent.Ribbon-sub003/internal/model"
)

// Measurer measures label text in layout units
type Measurer interface {
	MeasureLabel(text string) float64
}

// MeasurerFunc adapts a function to Measurer
type MeasurerFunc func(text string) float64

// MeasureLabel calls f(text)
func (f MeasurerFunc) MeasureLabel(text string) float64 {
	return f(text)
}

// Metrics holds the dimensions used to estimate group box widths
type Metrics struct {
	LargeIcon        float64
	SmallIcon        float64
	Padding          float64
	RowsPerColumn    int
	GalleryItemWidth float64
}

// DefaultMetrics returns metrics matching a default ribbon theme
func DefaultMetrics() Metrics {
	return Metrics{
		LargeIcon:        32,
		SmallIcon:        16,
		Padding:          4,
		RowsPerColumn:    3,
		GalleryItemWidth: 40,
	}
}

// FromModel converts group boxes of a tab into Fit input, estimating the
// width of every state: large controls take a column each, middle and small
// controls stack RowsPerColumn to a column, galleries show all their items
// and give up one item per scale step.
func FromModel(boxes []*model.GroupBox, m Measurer, metrics Metrics) ([]Group, error) {
	if metrics.RowsPerColumn < 1 {
		metrics.RowsPerColumn = 1
	}

	groups := make([]Group, 0, len(boxes))
	for _, box := range boxes {
		g := Group{
			Name:     box.Name,
			Widths:   make(map[model.GroupBoxState]float64, 4),
			Controls: make([]Control, 0, len(box.Controls)),
		}
		for _, c := range box.Controls {
			def, err := ParseSizeDefinition(c.Size)
			if err != nil {
				return nil, fmt.Errorf("group %s, control %s: %w", box.Name, c.Name, err)
			}
			g.Controls = append(g.Controls, Control{Name: c.Name, Size: def})
			if c.IsScalable() {
				for i := 1; i < c.GalleryItems; i++ {
					g.ScaleWidths = append(g.ScaleWidths, metrics.GalleryItemWidth)
				}
			}
		}

		header := m.MeasureLabel(box.Header) + 2*metrics.Padding
		for _, state := range []model.GroupBoxState{model.GroupBoxStateLarge, model.GroupBoxStateMiddle, model.GroupBoxStateSmall} {
			content := estimateContent(box.Controls, g.Controls, state, m, metrics)
			g.Widths[state] = math.Max(content, header)
		}
		g.Widths[model.GroupBoxStateCollapsed] = math.Max(metrics.LargeIcon+2*metrics.Padding, header)

		groups = append(groups, g)
	}
	return groups, nil
}

func estimateContent(controls []*model.Control, defs []Control, state model.GroupBoxState, m Measurer, metrics Metrics) float64 {
	total := 0.0
	column := 0.0
	rows := 0
	flush := func() {
		if rows > 0 {
			total += column + metrics.Padding
		}
		column, rows = 0, 0
	}

	for i, c := range controls {
		if c.IsScalable() {
			flush()
			total += float64(c.GalleryItems)*metrics.GalleryItemWidth + metrics.Padding
			continue
		}

		label := m.MeasureLabel(c.Label)
		switch defs[i].Size.For(state) {
		case model.ControlSizeLarge:
			flush()
			total += math.Max(label, metrics.LargeIcon) + 2*metrics.Padding
		case model.ControlSizeMiddle:
			column = math.Max(column, metrics.SmallIcon+metrics.Padding+label)
			rows++
		default:
			column = math.Max(column, metrics.SmallIcon+metrics.Padding)
			rows++
		}
		if rows == metrics.RowsPerColumn {
			flush()
		}
	}
	flush()
	return total + metrics.Padding
}
