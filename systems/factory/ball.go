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

// CreateBall spawns the ball at the court center with one of the four
// diagonal serves, picked from the shared random source.
func CreateBall(e *ecs.ECS) *donburi.Entry {
	ball := archetypes.Ball.Spawn(e)

	d := cfg.Ball.Diameter
	x := float64(cfg.C.Width)/2 - d/2
	y := float64(cfg.C.Height)/2 - d/2

	obj := resolv.NewObject(x, y, d, d, tags.ResolvBall)
	obj.SetShape(resolv.NewCircle(d/2, d/2, d/2))
	obj.Data = ball

	components.Object.SetValue(ball, components.ObjectData{Object: obj})
	components.Velocity.SetValue(ball, serveVelocity(e))
	components.Shape.SetValue(ball, components.ShapeData{Width: d, Height: d, Round: true, Color: cfg.White})
	components.Lifecycle.SetValue(ball, components.LifecycleData{Screen: cfg.ScreenGameplay})

	addToSpace(e, obj)
	return ball
}

func serveVelocity(e *ecs.ECS) components.VelocityData {
	vx := cfg.Ball.ServeSpeedX
	vy := cfg.Ball.ServeSpeedY
	if entry, ok := components.Random.First(e.World); ok {
		r := components.Random.Get(entry).Rand
		if r.Intn(2) == 0 {
			vx = -vx
		}
		if r.Intn(2) == 0 {
			vy = -vy
		}
	}
	return components.VelocityData{X: vx, Y: vy}
}
