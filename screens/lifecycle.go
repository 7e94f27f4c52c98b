package screens

import (
	"github.com/automoto/paddleball/components"
	cfg "github.com/automoto/paddleball/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// despawnScreen destroys every entity whose lifecycle tag matches the
// exiting screen, in one pass. Collection happens before any
// destruction, so no scan inside this frame observes a half-removed
// screen. Entities owned by other screens are untouched.
func despawnScreen(e *ecs.ECS, screen cfg.ScreenID) {
	var doomed []*donburi.Entry
	components.Lifecycle.Each(e.World, func(entry *donburi.Entry) {
		if components.Lifecycle.Get(entry).Screen == screen {
			doomed = append(doomed, entry)
		}
	})
	for _, entry := range doomed {
		detachFromSpace(e, entry)
		e.World.Remove(entry.Entity())
	}
}

// detachFromSpace pulls the entity's collision object out of the
// shared space, if both still exist. When the space entity itself is
// torn down in the same pass the cleanup is moot.
func detachFromSpace(e *ecs.ECS, entry *donburi.Entry) {
	if !entry.HasComponent(components.Object) {
		return
	}
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	if obj := components.Object.Get(entry); obj.Object != nil {
		components.Space.Get(spaceEntry).Remove(obj.Object)
	}
}
