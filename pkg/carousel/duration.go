package carousel

import "fmt"

// DefaultMaxDuration is applied to fresh state and to saved records that
// predate the max_duration field.
const DefaultMaxDuration = 0.4

const (
	minAllowed = 0.2
	maxAllowed = 1.0
)

// Duration is the maximum gap, in seconds, between two presses that still
// count as part of the same streak.
type Duration float64

// Satisfies reports whether gap is still inside the window.
func (d Duration) Satisfies(gap float64) bool {
	return gap < float64(d)
}

// WithinRange reports whether d is an acceptable user-supplied value,
// i.e. in [0.2; 1.0).
func (d Duration) WithinRange() bool {
	return float64(d) >= minAllowed && float64(d) < maxAllowed
}

// OutOfRangeError reports an attempt to set a max keypress duration outside
// the accepted range.
type OutOfRangeError struct {
	Value Duration
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("invalid max keypress duration %v: must be in range [%v; %v)", float64(e.Value), minAllowed, maxAllowed)
}
