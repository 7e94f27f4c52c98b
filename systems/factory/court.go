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

// CreateCourt builds the four boundary walls just inside the viewport,
// inner faces on the play-area edge. Top and bottom are solid; the
// side walls are goal sensors with collision-event reporting. Also
// lays down the decorative midline.
func CreateCourt(e *ecs.ECS) {
	t := cfg.Court.WallThickness
	w := float64(cfg.C.Width)
	h := float64(cfg.C.Height)

	CreateWall(e, 0, 0, w, t)
	CreateWall(e, 0, h-t, w, t)
	CreateGoal(e, components.StartSide, 0, t, t, h-2*t)
	CreateGoal(e, components.EndSide, w-t, t, t, h-2*t)

	createMidline(e)
}

// CreateWall spawns one solid boundary.
func CreateWall(e *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(e)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = wall // Link for O(1) lookup

	components.Object.SetValue(wall, components.ObjectData{Object: obj})
	components.Shape.SetValue(wall, components.ShapeData{Width: w, Height: h, Color: cfg.WallGray})
	components.Lifecycle.SetValue(wall, components.LifecycleData{Screen: cfg.ScreenGameplay})

	addToSpace(e, obj)
	return wall
}

// CreateGoal spawns one side boundary sensor. It is not solid: the
// ball enters it, the contact is reported once, and the responder
// decides what the impact means.
func CreateGoal(e *ecs.ECS, side components.GoalSide, x, y, w, h float64) *donburi.Entry {
	goal := archetypes.Goal.Spawn(e)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvGoal)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = goal

	components.Goal.SetValue(goal, components.GoalData{Side: side})
	components.Object.SetValue(goal, components.ObjectData{Object: obj})
	components.Shape.SetValue(goal, components.ShapeData{Width: w, Height: h, Color: cfg.GoalShade})
	components.Lifecycle.SetValue(goal, components.LifecycleData{Screen: cfg.ScreenGameplay})

	addToSpace(e, obj)
	return goal
}

// createMidline dots the vertical center of the court. Pure decor:
// the objects never join the collision space.
func createMidline(e *ecs.ECS) {
	const dotW, dotH, gap = 4.0, 12.0, 12.0
	t := cfg.Court.WallThickness
	x := float64(cfg.C.Width)/2 - dotW/2
	for y := t + gap/2; y+dotH < float64(cfg.C.Height)-t; y += dotH + gap {
		dot := archetypes.Decor.Spawn(e)
		obj := resolv.NewObject(x, y, dotW, dotH)
		components.Object.SetValue(dot, components.ObjectData{Object: obj})
		components.Shape.SetValue(dot, components.ShapeData{Width: dotW, Height: dotH, Color: cfg.MidlineDim})
		components.Lifecycle.SetValue(dot, components.LifecycleData{Screen: cfg.ScreenGameplay})
	}
}
