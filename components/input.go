package components

import (
	cfg "github.com/automoto/paddleball/config"
	"github.com/yohamta/donburi"
)

// InputData stores the current and previous frame's pressed state for
// all actions. Gameplay systems read this instead of polling the
// device, so they stay testable without a window.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

// Pressed reports whether the action is held this frame.
func (d *InputData) Pressed(a cfg.ActionID) bool {
	return d.Current[a]
}

// JustPressed reports whether the action went down this frame.
func (d *InputData) JustPressed(a cfg.ActionID) bool {
	return d.Current[a] && !d.Previous[a]
}

var Input = donburi.NewComponentType[InputData]()
