package groupbox

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyStep is returned for an empty entry in a reduce order
var ErrEmptyStep = errors.New("empty reduce order step")

// ReduceStep is one entry of a reduce order
type ReduceStep struct {
	Group string
	// Scale is set for "(Name)" entries: one intermediate scale step
	// instead of a state change
	Scale bool
}

// String formats the step the way ParseReduceOrder reads it
func (s ReduceStep) String() string {
	if s.Scale {
		return "(" + s.Group + ")"
	}
	return s.Group
}

// ParseReduceOrder parses a comma separated reduce order such as
// "(Gallery),(Gallery),Clipboard,Font,Clipboard".
func ParseReduceOrder(s string) ([]ReduceStep, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	steps := make([]ReduceStep, 0, len(parts))
	for i, part := range parts {
		name := strings.TrimSpace(part)
		scale := false
		if strings.HasPrefix(name, "(") || strings.HasSuffix(name, ")") {
			if !strings.HasPrefix(name, "(") || !strings.HasSuffix(name, ")") {
				return nil, fmt.Errorf("reduce order step %d %q: unbalanced parentheses", i+1, name)
			}
			name = strings.TrimSpace(name[1 : len(name)-1])
			scale = true
		}
		if name == "" {
			return nil, fmt.Errorf("reduce order step %d: %w", i+1, ErrEmptyStep)
		}
		steps = append(steps, ReduceStep{Group: name, Scale: scale})
	}
	return steps, nil
}

// FormatReduceOrder joins steps back into reduce order syntax
func FormatReduceOrder(steps []ReduceStep) string {
	parts := make([]string, len(steps))
	for i, step := range steps {
		parts[i] = step.String()
	}
	return strings.Join(parts, ",")
}
