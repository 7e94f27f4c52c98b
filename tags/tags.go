package tags

import "github.com/yohamta/donburi"

var (
	Paddle    = donburi.NewTag().SetName("Paddle")
	Ball      = donburi.NewTag().SetName("Ball")
	Wall      = donburi.NewTag().SetName("Wall")
	Goal      = donburi.NewTag().SetName("Goal")
	ScoreText = donburi.NewTag().SetName("ScoreText")
)

// Resolv tags for physics collision
const (
	ResolvSolid  = "solid"
	ResolvPaddle = "paddle"
	ResolvBall   = "ball"
	ResolvGoal   = "goal"
)
