package carousel

import "encoding/json"

// maxStreak caps the streak counter. The counter is persisted as a single
// byte; saturating here keeps a very long streak in cycle mode instead of
// silently wrapping back to an isolated press.
const maxStreak = 255

// State is the carousel record persisted between invocations. Layouts is a
// most-recently-used ordering of layout indices where positions 0 and 1 are
// the two toggle slots. The JSON field names are the on-disk format; records
// written by earlier versions must keep loading.
type State struct {
	LastTime    float64  `json:"last_time"`
	Layouts     []int    `json:"layouts"`
	Frequent    int      `json:"index_frequent"`
	Rotational  int      `json:"index_rotational"`
	SumTime     float64  `json:"sum_time"`
	Counter     uint8    `json:"counter"`
	MaxDuration Duration `json:"max_duration"`
}

// NewDefault builds a fresh record for count layouts ordered 0..count-1,
// with now as the last call time.
func NewDefault(count int, now float64) *State {
	layouts := make([]int, count)
	for i := range layouts {
		layouts[i] = i
	}

	return &State{
		LastTime:    now,
		Layouts:     layouts,
		MaxDuration: DefaultMaxDuration,
	}
}

// UnmarshalJSON fills in the default max duration for records that were
// written before the field existed.
func (s *State) UnmarshalJSON(data []byte) error {
	type plain State
	aux := plain{MaxDuration: DefaultMaxDuration}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	*s = State(aux)
	return nil
}

// AdvanceTiming classifies this press against the previous one. After the
// call, Counter == 1 means an isolated press (or the start of a new streak)
// and Counter > 1 means the streak continues. Once a streak is confirmed the
// accumulator is cleared so that every following press is measured against
// the immediately preceding call only.
func (s *State) AdvanceTiming(now float64) {
	gap := now - s.LastTime
	s.LastTime = now

	s.SumTime += gap
	if s.MaxDuration.Satisfies(s.SumTime) {
		if s.Counter < maxStreak {
			s.Counter++
		}
	} else {
		s.SumTime = 0
		s.Counter = 1
	}

	if s.Counter > 1 {
		s.SumTime = 0
	}
}

// Rotate reorders the carousel for the press classified by AdvanceTiming.
// An isolated press toggles between the two most recent layouts; presses
// deeper in a streak walk the rotational pointer through the rest of the
// list and swap the pick into the active slot. Active returns the layout
// to activate afterwards.
func (s *State) Rotate() {
	if s.Counter <= 1 {
		s.Frequent = (s.Frequent + 1) % 2
		return
	}

	if s.Counter > 2 {
		s.Rotational++
	} else {
		// The first press of this streak already toggled; take that back
		// before cycling starts, then pick candidates from the third slot.
		s.Frequent = (s.Frequent + 1) % 2
		s.Rotational = 2
	}

	s.Rotational %= len(s.Layouts)

	s.Layouts[s.Frequent], s.Layouts[s.Rotational] = s.Layouts[s.Rotational], s.Layouts[s.Frequent]
}

// Active returns the layout index to request from the compositor.
func (s *State) Active() int {
	return s.Layouts[s.Frequent]
}
