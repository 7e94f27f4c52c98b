package factory

import (
	"github.com/automoto/paddleball/archetypes"
	"github.com/automoto/paddleball/components"
	cfg "github.com/automoto/paddleball/config"
	"github.com/automoto/paddleball/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePaddle spawns one player's paddle at its side of the court,
// vertically centered.
func CreatePaddle(e *ecs.ECS, player components.PlayerIndex) *donburi.Entry {
	paddle := archetypes.Paddle.Spawn(e)

	w := cfg.Paddle.Width
	h := cfg.Paddle.Height
	cx := float64(cfg.C.Width) / 2
	x := cx - cfg.Court.PaddleOffsetX - w/2
	if player == components.PlayerTwo {
		x = cx + cfg.Court.PaddleOffsetX - w/2
	}
	y := float64(cfg.C.Height)/2 - h/2

	obj := resolv.NewObject(x, y, w, h, tags.ResolvPaddle)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = paddle

	components.Paddle.SetValue(paddle, components.PaddleData{Player: player})
	components.Object.SetValue(paddle, components.ObjectData{Object: obj})
	components.Velocity.SetValue(paddle, components.VelocityData{})
	components.Shape.SetValue(paddle, components.ShapeData{Width: w, Height: h, Color: cfg.PaddleGray})
	components.Lifecycle.SetValue(paddle, components.LifecycleData{Screen: cfg.ScreenGameplay})

	addToSpace(e, obj)
	return paddle
}
