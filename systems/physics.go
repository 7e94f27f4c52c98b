package systems

import (
	"github.com/automoto/paddleball/components"
	"github.com/automoto/paddleball/events"
	"github.com/automoto/paddleball/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics integrates velocity-driven movement through the resolv
// space: paddles slide on their vertical axis and stop at the walls,
// the ball bounces off solids and paddles, and new contacts against a
// goal sensor are published as collision-start events. Event delivery
// is edge-triggered here; continued overlap never re-publishes.
func UpdatePhysics(e *ecs.ECS) {
	dt, ok := frameDelta(e)
	if !ok {
		return
	}

	tags.Paddle.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		vel := components.Velocity.Get(entry)
		movePaddle(obj.Object, vel, dt)
	})

	tags.Ball.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		vel := components.Velocity.Get(entry)
		moveBall(obj.Object, vel, dt)
		reportGoalContacts(e, entry, obj.Object)
	})
}

func movePaddle(obj *resolv.Object, vel *components.VelocityData, dt float64) {
	dy := vel.Y * dt
	if dy == 0 {
		return
	}
	if check := obj.Check(0, dy, tags.ResolvSolid); check != nil {
		if walls := check.ObjectsByTags(tags.ResolvSolid); len(walls) > 0 {
			// Stop flush against the wall face.
			contact := check.ContactWithObject(walls[0])
			obj.Y += contact.Y()
			obj.Update()
			return
		}
	}
	obj.Y += dy
	obj.Update()
}

func moveBall(obj *resolv.Object, vel *components.VelocityData, dt float64) {
	dx := vel.X * dt
	if check := obj.Check(dx, 0, tags.ResolvSolid, tags.ResolvPaddle); check != nil {
		vel.X = -vel.X
	} else {
		obj.X += dx
	}

	dy := vel.Y * dt
	if check := obj.Check(0, dy, tags.ResolvSolid, tags.ResolvPaddle); check != nil {
		vel.Y = -vel.Y
	} else {
		obj.Y += dy
	}
	obj.Update()
}

// reportGoalContacts publishes one collision-start event per goal
// sensor the mover newly touches this frame. The per-sensor InContact
// flag realizes the discrete "start" semantics: a ball resting inside
// the sensor produces no further events until it leaves.
func reportGoalContacts(e *ecs.ECS, mover *donburi.Entry, obj *resolv.Object) {
	var touching []*resolv.Object
	if check := obj.Check(0, 0, tags.ResolvGoal); check != nil {
		touching = check.ObjectsByTags(tags.ResolvGoal)
	}

	tags.Goal.Each(e.World, func(goalEntry *donburi.Entry) {
		goal := components.Goal.Get(goalEntry)
		goalObj := components.Object.Get(goalEntry).Object

		now := containsObject(touching, goalObj)
		if now && !goal.InContact {
			events.CollisionStart.Publish(e.World, events.CollisionStartData{
				Boundary: goalEntry.Entity(),
				Other:    mover.Entity(),
			})
		}
		goal.InContact = now
	})
}

func containsObject(objs []*resolv.Object, target *resolv.Object) bool {
	for _, o := range objs {
		if o == target {
			return true
		}
	}
	return false
}
