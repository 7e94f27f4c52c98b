package factory

import (
	"github.com/automoto/paddleball/components"
	"github.com/yohamta/donburi/ecs"
)

// CreateGameplayScreen assembles a fresh match: collision space,
// court, both paddles, the ball, and the score readout. The score
// store itself lives outside the screen and keeps its tally.
func CreateGameplayScreen(e *ecs.ECS) {
	CreateSpace(e)
	CreateCourt(e)
	CreatePaddle(e, components.PlayerOne)
	CreatePaddle(e, components.PlayerTwo)
	CreateBall(e)
	CreateScoreText(e)
}
