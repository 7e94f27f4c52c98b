package systems

import (
	"github.com/automoto/paddleball/components"
	"github.com/automoto/paddleball/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateScoreHUD overwrites the score readout from the score store,
// unconditionally every frame. Skips the frame if either entity is
// missing.
func UpdateScoreHUD(e *ecs.ECS) {
	scoreEntry, ok := components.Score.First(e.World)
	if !ok {
		return
	}
	textEntry, ok := tags.ScoreText.First(e.World)
	if !ok {
		return
	}
	text := components.Text.Get(textEntry)
	text.Value = components.Score.Get(scoreEntry).Format()
}
