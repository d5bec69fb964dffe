package groupbox

import (
	"fmt"
	"strings"

	"github.com/fluentribbon/Fluent.Ribbon-sub003/internal/model"
)

// DefaultSizeDefinition is used by controls that do not declare one
const DefaultSizeDefinition = "Large, Middle, Small"

// SizeDefinition maps the state of the owning group box to a control size
type SizeDefinition struct {
	Large  model.ControlSize
	Middle model.ControlSize
	Small  model.ControlSize
}

// ParseSizeDefinition parses "Large, Middle, Small"-style definitions.
// One to three sizes are accepted; missing trailing entries repeat the last
// one. An empty string yields DefaultSizeDefinition.
func ParseSizeDefinition(s string) (SizeDefinition, error) {
	if strings.TrimSpace(s) == "" {
		s = DefaultSizeDefinition
	}

	parts := strings.Split(s, ",")
	if len(parts) > 3 {
		return SizeDefinition{}, fmt.Errorf("size definition %q: expected at most 3 sizes, got %d", s, len(parts))
	}

	sizes := make([]model.ControlSize, 0, 3)
	for _, part := range parts {
		size, err := model.ParseControlSize(part)
		if err != nil {
			return SizeDefinition{}, fmt.Errorf("size definition %q: %w", s, err)
		}
		sizes = append(sizes, size)
	}
	for len(sizes) < 3 {
		sizes = append(sizes, sizes[len(sizes)-1])
	}

	return SizeDefinition{Large: sizes[0], Middle: sizes[1], Small: sizes[2]}, nil
}

// For returns the control size used while the group box is in state.
// Collapsed group boxes show their content in a popup at the Large entry.
func (d SizeDefinition) For(state model.GroupBoxState) model.ControlSize {
	switch state {
	case model.GroupBoxStateMiddle:
		return d.Middle
	case model.GroupBoxStateSmall:
		return d.Small
	default:
		return d.Large
	}
}

// String formats the definition the way ParseSizeDefinition reads it
func (d SizeDefinition) String() string {
	return fmt.Sprintf("%s, %s, %s", d.Large, d.Middle, d.Small)
}
