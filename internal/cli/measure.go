package cli

import (
	"github.com/mattn/go-runewidth"
)

// cellMeasurer measures text by its terminal cell count, so wide CJK
// headers take twice the room of latin ones
type cellMeasurer struct {
	unit float64
}

func newCellMeasurer(unit float64) cellMeasurer {
	if unit <= 0 {
		unit = DefaultCellWidth
	}
	return cellMeasurer{unit: unit}
}

// MeasureLabel implements groupbox.Measurer
func (m cellMeasurer) MeasureLabel(text string) float64 {
	return float64(runewidth.StringWidth(text)) * m.unit
}
