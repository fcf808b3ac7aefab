package valueobjects

import "fmt"

// Priority is a 1-3 scale: 1 low, 2 medium, 3 high.
type Priority int

const (
	PriorityLow    Priority = 1
	PriorityMedium Priority = 2
	PriorityHigh   Priority = 3
)

func (p Priority) IsValid() bool {
	return p >= PriorityLow && p <= PriorityHigh
}

func (p Priority) Int() int {
	return int(p)
}

func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "low"
	case PriorityMedium:
		return "medium"
	case PriorityHigh:
		return "high"
	default:
		return fmt.Sprintf("priority(%d)", int(p))
	}
}

func NewPriority(value int) (Priority, error) {
	p := Priority(value)
	if !p.IsValid() {
		return 0, fmt.Errorf("invalid priority: %d", value)
	}
	return p, nil
}
