package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionP1Up
	ActionP1Down
	ActionP2Up
	ActionP2Down
	ActionMenuSelect
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the key bindings for an action
type InputBinding struct {
	Keys []ebiten.Key
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionP1Up: {
				Keys: []ebiten.Key{ebiten.KeyW},
			},
			ActionP1Down: {
				Keys: []ebiten.Key{ebiten.KeyS},
			},
			ActionP2Up: {
				Keys: []ebiten.Key{ebiten.KeyUp},
			},
			ActionP2Down: {
				Keys: []ebiten.Key{ebiten.KeyDown},
			},
			ActionMenuSelect: {
				Keys: []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace},
			},
		},
	}
}
