package factory

import (
	"github.com/automoto/paddleball/archetypes"
	"github.com/automoto/paddleball/components"
	cfg "github.com/automoto/paddleball/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace builds the collision space sized to the viewport.
// Spawned by the gameplay enter hook and torn down with the screen.
func CreateSpace(e *ecs.ECS) *donburi.Entry {
	space := archetypes.Space.Spawn(e)
	spaceData := resolv.NewSpace(cfg.C.Width, cfg.C.Height, 16, 16)
	components.Space.Set(space, spaceData)
	components.Lifecycle.SetValue(space, components.LifecycleData{Screen: cfg.ScreenGameplay})
	return space
}

// addToSpace registers a collision object if the space exists.
func addToSpace(e *ecs.ECS, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(e.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}
