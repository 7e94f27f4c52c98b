package systems

import (
	"image/color"

	"github.com/automoto/paddleball/components"
	cfg "github.com/automoto/paddleball/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFade advances overlay fades. A targeted fade requests its
// screen transition exactly once, the moment accumulated time reaches
// the midpoint where the cover is fully opaque; the request itself is
// applied by the machine at the next state flush. Finished overlays
// are removed after the pass.
func UpdateFade(e *ecs.ECS) {
	dt, ok := frameDelta(e)
	if !ok {
		return
	}

	var finished []*donburi.Entry
	components.Fade.Each(e.World, func(entry *donburi.Entry) {
		f := components.Fade.Get(entry)
		if f.Seq == nil {
			finished = append(finished, entry)
			return
		}
		alpha, _, done := f.Seq.Update(float32(dt))
		f.Alpha = alpha
		f.Elapsed += float32(dt)

		if f.HasTarget && !f.Requested && f.Elapsed >= f.Duration/2 {
			f.Requested = true
			if changerEntry, ok := components.Changer.First(e.World); ok {
				components.Changer.Get(changerEntry).RequestTransition(f.Target)
			}
		}
		if done {
			finished = append(finished, entry)
		}
	})
	for _, entry := range finished {
		e.World.Remove(entry.Entity())
	}
}

// DrawFade covers the viewport at each overlay's current opacity.
// Registered last so the fade sits above everything.
func DrawFade(e *ecs.ECS, screen *ebiten.Image) {
	components.Fade.Each(e.World, func(entry *donburi.Entry) {
		f := components.Fade.Get(entry)
		if f.Alpha <= 0 {
			return
		}
		a := f.Alpha
		if a > 1 {
			a = 1
		}
		vector.DrawFilledRect(screen,
			0, 0, float32(cfg.C.Width), float32(cfg.C.Height),
			color.RGBA{A: uint8(a * 255)}, false)
	})
}
