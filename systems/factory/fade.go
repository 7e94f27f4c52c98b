package factory

import (
	"github.com/automoto/paddleball/archetypes"
	"github.com/automoto/paddleball/components"
	cfg "github.com/automoto/paddleball/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateFadeTo spawns a full-screen fade that covers the current
// screen, requests the transition at full cover, then reveals the
// target screen.
func CreateFadeTo(e *ecs.ECS, target cfg.ScreenID, duration float32) *donburi.Entry {
	fade := archetypes.Fade.Spawn(e)

	half := duration / 2
	components.Fade.SetValue(fade, components.FadeData{
		Seq: gween.NewSequence(
			gween.New(0, 1, half, ease.Linear),
			gween.New(1, 0, half, ease.Linear),
		),
		Duration:  duration,
		Target:    target,
		HasTarget: true,
	})
	return fade
}

// CreateFadeIn spawns a reveal-only fade, used where there is no
// previous screen to cover.
func CreateFadeIn(e *ecs.ECS, duration float32) *donburi.Entry {
	fade := archetypes.Fade.Spawn(e)

	components.Fade.SetValue(fade, components.FadeData{
		Seq:      gween.NewSequence(gween.New(1, 0, duration, ease.Linear)),
		Duration: duration,
		Alpha:    1,
	})
	return fade
}
