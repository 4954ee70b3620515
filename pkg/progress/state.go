// Package progress keeps per-day tap counters for ritual items, the skip
// marker, per-item target overrides and the same-day rollover rule.
package progress

// SkipSentinel is the counter value of an item explicitly skipped for the day.
const SkipSentinel = -1

// State classifies a counter against its target.
type State int

const (
	// StateRemaining means the item still needs taps today.
	StateRemaining State = iota
	// StateCompleted means the counter reached the target.
	StateCompleted
	// StateSkipped means the item was skipped for the day.
	StateSkipped
)

func (s State) String() string {
	switch s {
	case StateRemaining:
		return "remaining"
	case StateCompleted:
		return "completed"
	case StateSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// StateOf classifies count against target. Targets below one count as one.
func StateOf(count, target int) State {
	switch {
	case count == SkipSentinel:
		return StateSkipped
	case count >= normalTarget(target):
		return StateCompleted
	default:
		return StateRemaining
	}
}

// Completed reports count >= target. A skipped item is never completed.
func Completed(count, target int) bool {
	return StateOf(count, target) == StateCompleted
}

// Skipped reports whether count is the skip sentinel.
func Skipped(count int) bool {
	return count == SkipSentinel
}

// Remaining reports whether the item still belongs in today's to-do view.
func Remaining(count, target int) bool {
	return StateOf(count, target) == StateRemaining
}

func normalTarget(target int) int {
	if target < 1 {
		return 1
	}
	return target
}

// MarshalText encodes the state by name.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
