package factory

import (
	"math/rand"

	"github.com/automoto/paddleball/components"
	"github.com/yohamta/donburi/ecs"
)

// CreateSingletons spawns the world-scoped state entities: score
// store, progress tracker, input buffers, frame clock, random source,
// and the screen changer handle. None of these carry a Lifecycle, so
// they survive every transition.
func CreateSingletons(e *ecs.ECS, changer components.ScreenChanger, r *rand.Rand) {
	e.World.Create(components.Score)
	e.World.Create(components.Progress)
	e.World.Create(components.Input)
	e.World.Create(components.Time)

	random := e.World.Entry(e.World.Create(components.Random))
	components.Random.SetValue(random, components.RandomData{Rand: r})

	ch := e.World.Entry(e.World.Create(components.Changer))
	components.Changer.SetValue(ch, components.ChangerData{ScreenChanger: changer})
}
