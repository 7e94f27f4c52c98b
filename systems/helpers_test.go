package systems

import (
	"math/rand"

	"github.com/automoto/paddleball/components"
	cfg "github.com/automoto/paddleball/config"
	"github.com/automoto/paddleball/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// changeRecorder captures transition requests so tests can assert on
// them without a real machine.
type changeRecorder struct {
	requests []cfg.ScreenID
}

func (r *changeRecorder) RequestTransition(target cfg.ScreenID) {
	r.requests = append(r.requests, target)
}

// newTestECS builds a world with the singleton entities and a seeded
// random source, returning the transition recorder for assertions.
func newTestECS() (*ecs.ECS, *changeRecorder) {
	e := ecs.NewECS(donburi.NewWorld())
	rec := &changeRecorder{}
	factory.CreateSingletons(e, rec, rand.New(rand.NewSource(1)))
	return e, rec
}

// setDelta fixes the frame delta instead of sampling the wall clock.
func setDelta(e *ecs.ECS, dt float64) {
	entry, ok := components.Time.First(e.World)
	if !ok {
		return
	}
	components.Time.Get(entry).Delta = dt
}

// press overwrites the input singleton's state for one frame.
func press(e *ecs.ECS, actions ...cfg.ActionID) {
	entry, ok := components.Input.First(e.World)
	if !ok {
		return
	}
	in := components.Input.Get(entry)
	in.Previous = in.Current
	in.Current = [cfg.ActionCount]bool{}
	for _, a := range actions {
		in.Current[a] = true
	}
}
