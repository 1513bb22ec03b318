package carousel

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefault(t *testing.T) {
	state := NewDefault(4, 100.0)

	assert.Equal(t, 100.0, state.LastTime)
	assert.Equal(t, []int{0, 1, 2, 3}, state.Layouts)
	assert.Equal(t, 0, state.Frequent)
	assert.Equal(t, 0, state.Rotational)
	assert.Equal(t, 0.0, state.SumTime)
	assert.Equal(t, uint8(0), state.Counter)
	assert.Equal(t, Duration(DefaultMaxDuration), state.MaxDuration)
}

func press(s *State, now float64) {
	s.AdvanceTiming(now)
	s.Rotate()
}

func TestIsolatedPressToggles(t *testing.T) {
	state := NewDefault(4, 100.0)

	press(state, 105.0)
	assert.Equal(t, uint8(1), state.Counter)
	assert.Equal(t, []int{0, 1, 2, 3}, state.Layouts)
	assert.Equal(t, 1, state.Active())

	press(state, 110.0)
	assert.Equal(t, uint8(1), state.Counter)
	assert.Equal(t, []int{0, 1, 2, 3}, state.Layouts)
	assert.Equal(t, 0, state.Active())
}

func TestDoublePressStartsCycling(t *testing.T) {
	state := NewDefault(4, 100.0)

	press(state, 105.0)
	press(state, 105.1)

	assert.Equal(t, uint8(2), state.Counter)
	assert.Equal(t, []int{2, 1, 0, 3}, state.Layouts)
	assert.Equal(t, 0, state.Frequent)
	assert.Equal(t, 2, state.Rotational)
	assert.Equal(t, 2, state.Active())
}

func TestRapidStreakCyclesForward(t *testing.T) {
	state := NewDefault(4, 100.0)

	press(state, 105.0)
	press(state, 105.1)
	require.Equal(t, []int{2, 1, 0, 3}, state.Layouts)

	press(state, 105.2)
	assert.Equal(t, uint8(3), state.Counter)
	assert.Equal(t, []int{3, 1, 0, 2}, state.Layouts)
	assert.Equal(t, 3, state.Active())

	// The rotational pointer wraps around onto the active slot once.
	press(state, 105.3)
	assert.Equal(t, []int{3, 1, 0, 2}, state.Layouts)
	assert.Equal(t, 3, state.Active())

	press(state, 105.4)
	assert.Equal(t, []int{1, 3, 0, 2}, state.Layouts)
	assert.Equal(t, 1, state.Active())
}

func TestSlowPressBreaksStreak(t *testing.T) {
	state := NewDefault(4, 100.0)

	press(state, 105.0)
	press(state, 105.1)
	require.Equal(t, uint8(2), state.Counter)

	press(state, 110.0)
	assert.Equal(t, uint8(1), state.Counter)
	assert.Equal(t, 0.0, state.SumTime)
	// Back to plain toggling, no reordering.
	assert.Equal(t, []int{2, 1, 0, 3}, state.Layouts)
	assert.Equal(t, 1, state.Active())
}

func TestStreakMeasuresAgainstPreviousPress(t *testing.T) {
	state := NewDefault(4, 100.0)

	// Each gap is 0.3s, under the 0.4s window, but the total exceeds it.
	// Every press must still count as part of the streak.
	press(state, 105.0)
	for i := 1; i <= 3; i++ {
		press(state, 105.0+0.3*float64(i))
		assert.Equal(t, uint8(1+i), state.Counter)
	}
}

func TestCounterSaturates(t *testing.T) {
	state := NewDefault(4, 100.0)
	state.Counter = 255

	state.AdvanceTiming(100.1)

	assert.Equal(t, uint8(255), state.Counter)
}

func TestTwoLayoutCarousel(t *testing.T) {
	state := NewDefault(2, 100.0)

	press(state, 105.0)
	assert.Equal(t, 1, state.Active())

	// Double press: the rotational pointer reduces to 0 and the swap lands
	// on the active slot itself.
	press(state, 105.1)
	assert.Equal(t, 0, state.Rotational)
	assert.Equal(t, []int{0, 1}, state.Layouts)
	assert.Equal(t, 0, state.Active())
}

func TestStateRoundTrip(t *testing.T) {
	state := &State{
		LastTime:    1234.5,
		Layouts:     []int{2, 0, 1, 3},
		Frequent:    1,
		Rotational:  3,
		SumTime:     0.25,
		Counter:     7,
		MaxDuration: 0.6,
	}

	raw, err := json.Marshal(state)
	require.NoError(t, err)

	var loaded State
	require.NoError(t, json.Unmarshal(raw, &loaded))
	assert.Equal(t, *state, loaded)
}

func TestUnmarshalRecordWithoutMaxDuration(t *testing.T) {
	raw := `{"last_time":1234.5,"layouts":[0,1],"index_frequent":0,"index_rotational":0,"sum_time":0,"counter":0}`

	var loaded State
	require.NoError(t, json.Unmarshal([]byte(raw), &loaded))
	assert.Equal(t, Duration(DefaultMaxDuration), loaded.MaxDuration)
}
