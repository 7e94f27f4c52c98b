package systems

import (
	"github.com/automoto/paddleball/components"
	cfg "github.com/automoto/paddleball/config"
	"github.com/automoto/paddleball/events"
	"github.com/automoto/paddleball/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	devents "github.com/yohamta/donburi/features/events"
)

// RegisterGoalResponders subscribes the scoring responder to
// collision-start events. Call once per world at startup.
func RegisterGoalResponders(w donburi.World) {
	events.CollisionStart.Subscribe(w, onCollisionStart)
}

// ProcessEvents drains the frame's queued events so responders run in
// the same frame that published them. Ordered after the update phase.
func ProcessEvents(e *ecs.ECS) {
	devents.ProcessAllEvents(e.World)
}

// onCollisionStart converts a ball impact on a side boundary into a
// goal: the opposite player scores and the ball comes back to the
// center of the play area. Impacts by anything that is not the ball
// are ignored, so paddles and walls can touch the sensors freely.
func onCollisionStart(w donburi.World, ev events.CollisionStartData) {
	if !w.Valid(ev.Boundary) || !w.Valid(ev.Other) {
		return
	}
	boundary := w.Entry(ev.Boundary)
	if !boundary.HasComponent(components.Goal) {
		return
	}
	other := w.Entry(ev.Other)
	if !other.HasComponent(tags.Ball) {
		return
	}

	scoreEntry, ok := components.Score.First(w)
	if !ok {
		return
	}
	score := components.Score.Get(scoreEntry)

	// The goal sits behind the side that conceded, so the opposite
	// player is credited.
	switch components.Goal.Get(boundary).Side {
	case components.StartSide:
		score.Award(components.PlayerTwo)
	case components.EndSide:
		score.Award(components.PlayerOne)
	}

	// Only the ball's position resets; its velocity keeps whatever the
	// last bounce left in it, and the score store is never zeroed when
	// gameplay restarts.
	// TODO: product call pending on re-randomizing the serve after a goal.
	resetBallToCenter(other)
}

func resetBallToCenter(entry *donburi.Entry) {
	obj := components.Object.Get(entry)
	if obj.Object == nil {
		return
	}
	obj.X = float64(cfg.C.Width)/2 - obj.W/2
	obj.Y = float64(cfg.C.Height)/2 - obj.H/2
	obj.Update()
}
