package typebus

// Priority controls invocation order among subscribers of one event type.
// Higher priorities run first; subscribers sharing a priority run in
// registration order.
type Priority int

const (
	// PriorityVeryLow runs after everything else (cleanup, bookkeeping).
	PriorityVeryLow Priority = 100

	// PriorityLow runs after the default tier.
	PriorityLow Priority = 200

	// PriorityDefault is used when no priority is given.
	PriorityDefault Priority = 300

	// PriorityHigh runs before the default tier.
	PriorityHigh Priority = 400

	// PriorityVeryHigh runs first (validation, clamping).
	PriorityVeryHigh Priority = 500
)

// String returns a human-readable priority name.
func (p Priority) String() string {
	switch {
	case p <= PriorityVeryLow:
		return "verylow"
	case p <= PriorityLow:
		return "low"
	case p <= PriorityDefault:
		return "default"
	case p <= PriorityHigh:
		return "high"
	default:
		return "veryhigh"
	}
}
