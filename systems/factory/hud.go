package factory

import (
	"github.com/automoto/paddleball/archetypes"
	"github.com/automoto/paddleball/components"
	cfg "github.com/automoto/paddleball/config"
	"github.com/automoto/paddleball/fonts"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateScoreText spawns the score readout above the court, seeded
// with the current tally so a rejoined match shows the right numbers
// on its first frame.
func CreateScoreText(e *ecs.ECS) *donburi.Entry {
	readout := archetypes.ScoreText.Spawn(e)

	value := "0 - 0"
	if entry, ok := components.Score.First(e.World); ok {
		value = components.Score.Get(entry).Format()
	}

	components.Text.SetValue(readout, components.TextData{
		Value:    value,
		X:        cfg.C.Width / 2,
		Y:        40,
		Font:     fonts.HUD,
		Color:    cfg.White,
		Centered: true,
	})
	components.Lifecycle.SetValue(readout, components.LifecycleData{Screen: cfg.ScreenGameplay})
	return readout
}
