package systems

import (
	"time"

	"github.com/automoto/paddleball/components"
	cfg "github.com/automoto/paddleball/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTime refreshes the frame delta in the Time singleton.
// Must run before anything that scales by delta time.
func UpdateTime(e *ecs.ECS) {
	entry, ok := components.Time.First(e.World)
	if !ok {
		return
	}
	t := components.Time.Get(entry)

	now := time.Now()
	if t.Last.IsZero() {
		t.Last = now
		t.Delta = 0
		return
	}
	dt := now.Sub(t.Last).Seconds()
	if dt > cfg.C.MaxFrameDelta {
		dt = cfg.C.MaxFrameDelta
	}
	t.Delta = dt
	t.Last = now
}

// frameDelta returns the current frame delta, or false when the Time
// singleton is missing this frame.
func frameDelta(e *ecs.ECS) (float64, bool) {
	entry, ok := components.Time.First(e.World)
	if !ok {
		return 0, false
	}
	return components.Time.Get(entry).Delta, true
}
