package systems

import (
	"github.com/automoto/paddleball/components"
	cfg "github.com/automoto/paddleball/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput polls the keyboard into the Input singleton.
// Must run BEFORE any system that reads actions.
func UpdateInput(e *ecs.ECS) {
	entry, ok := components.Input.First(e.World)
	if !ok {
		return
	}
	input := components.Input.Get(entry)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
	}
}
