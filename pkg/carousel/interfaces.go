package carousel

// LayoutSwitcher is the compositor side of the carousel: it reports the
// configured keyboard layouts and activates one by index.
type LayoutSwitcher interface {
	LayoutNames() ([]string, error)
	SwitchLayout(idx int) error
}

// Store persists the carousel record between invocations.
type Store interface {
	Load() (*State, error)
	Save(state *State) error
}
