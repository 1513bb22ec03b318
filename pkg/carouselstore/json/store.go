package json

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"codeberg.org/velat/layout-carousel-niri/pkg/carousel"
	"github.com/adrg/xdg"
)

// ErrNoDataDir means no per-user data directory could be resolved, e.g. when
// running as a user without a home directory.
var ErrNoDataDir = errors.New("cannot determine the user data directory")

const stateSubpath = "layout-carousel-niri/data"

// Store reads and writes the carousel record as a flat JSON file.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// NewDefaultStore places the record under the user's data directory
// (~/.local/share on most setups).
func NewDefaultStore() (*Store, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}

	return NewStore(path), nil
}

func DefaultPath() (string, error) {
	if xdg.DataHome == "" {
		return "", ErrNoDataDir
	}

	return filepath.Join(xdg.DataHome, stateSubpath), nil
}

func (s *Store) Load() (*carousel.State, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read state file: %w", err)
	}

	var state carousel.State
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, fmt.Errorf("decode state: %w", err)
	}

	return &state, nil
}

func (s *Store) Save(state *carousel.State) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	if err := os.WriteFile(s.path, raw, 0644); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}

	return nil
}
