package memory

import (
	"errors"

	"codeberg.org/velat/layout-carousel-niri/pkg/carousel"
)

var ErrEmpty = errors.New("no state stored")

// Store keeps the carousel record in memory.
type Store struct {
	state *carousel.State
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Load() (*carousel.State, error) {
	if s.state == nil {
		return nil, ErrEmpty
	}

	// Copy, like a real store round trip would.
	state := *s.state
	state.Layouts = append([]int(nil), s.state.Layouts...)
	return &state, nil
}

func (s *Store) Save(state *carousel.State) error {
	saved := *state
	saved.Layouts = append([]int(nil), state.Layouts...)
	s.state = &saved
	return nil
}
