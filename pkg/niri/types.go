package niri

import "encoding/json"

// KeyboardLayouts is the payload of niri's KeyboardLayouts response.
type KeyboardLayouts struct {
	// XKB names of the configured layouts.
	Names []string `json:"names"`
	// Index of the currently active layout in Names.
	CurrentIdx uint8 `json:"current_idx"`
}

// Requests go over the socket as one JSON line each. A request without
// arguments is a bare string ("KeyboardLayouts"); actions nest under an
// "Action" key.
type actionRequest struct {
	Action action `json:"Action"`
}

type action struct {
	SwitchLayout *switchLayoutAction `json:"SwitchLayout,omitempty"`
}

type switchLayoutAction struct {
	Layout layoutSwitchTarget `json:"layout"`
}

type layoutSwitchTarget struct {
	Index uint8 `json:"index"`
}

// reply is niri's response envelope: exactly one of Ok or Err is present.
type reply struct {
	Ok  json.RawMessage `json:"Ok,omitempty"`
	Err *string         `json:"Err,omitempty"`
}
