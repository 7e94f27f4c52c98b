package systems

import (
	"testing"

	"github.com/automoto/paddleball/components"
	cfg "github.com/automoto/paddleball/config"
	"github.com/automoto/paddleball/events"
	"github.com/automoto/paddleball/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

func currentScore(e *ecs.ECS, t *testing.T) *components.ScoreData {
	t.Helper()
	entry, ok := components.Score.First(e.World)
	if !ok {
		t.Fatalf("score singleton missing")
	}
	return components.Score.Get(entry)
}

func TestGoalAwardsOppositePlayer(t *testing.T) {
	tests := []struct {
		name   string
		side   components.GoalSide
		wantP1 int
		wantP2 int
	}{
		{"start side concedes to player two", components.StartSide, 0, 1},
		{"end side concedes to player one", components.EndSide, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newTestECS()
			RegisterGoalResponders(e.World)
			factory.CreateSpace(e)
			goal := factory.CreateGoal(e, tt.side, 0, 16, 16, 100)
			ball := factory.CreateBall(e)

			events.CollisionStart.Publish(e.World, events.CollisionStartData{
				Boundary: goal.Entity(),
				Other:    ball.Entity(),
			})
			ProcessEvents(e)

			score := currentScore(e, t)
			if score.PlayerOne != tt.wantP1 || score.PlayerTwo != tt.wantP2 {
				t.Errorf("score = (%d, %d), want (%d, %d)",
					score.PlayerOne, score.PlayerTwo, tt.wantP1, tt.wantP2)
			}
		})
	}
}

func TestGoalResetsBallPositionOnly(t *testing.T) {
	e, _ := newTestECS()
	RegisterGoalResponders(e.World)
	factory.CreateSpace(e)
	goal := factory.CreateGoal(e, components.EndSide, 0, 16, 16, 100)
	ball := factory.CreateBall(e)

	setBallState(ball, 600, 50, 180, -120)

	events.CollisionStart.Publish(e.World, events.CollisionStartData{
		Boundary: goal.Entity(),
		Other:    ball.Entity(),
	})
	ProcessEvents(e)

	obj := components.Object.Get(ball)
	wantX := float64(cfg.C.Width)/2 - obj.W/2
	wantY := float64(cfg.C.Height)/2 - obj.H/2
	if obj.X != wantX || obj.Y != wantY {
		t.Errorf("ball at (%v, %v), want court center (%v, %v)", obj.X, obj.Y, wantX, wantY)
	}

	// The serve keeps whatever motion the last bounce left in it.
	if vel := components.Velocity.Get(ball); vel.X != 180 || vel.Y != -120 {
		t.Errorf("velocity = (%v, %v) after goal, want (180, -120)", vel.X, vel.Y)
	}
}

func TestNonBallImpactIsIgnored(t *testing.T) {
	e, _ := newTestECS()
	RegisterGoalResponders(e.World)
	factory.CreateSpace(e)
	goal := factory.CreateGoal(e, components.StartSide, 0, 16, 16, 100)
	paddle := factory.CreatePaddle(e, components.PlayerOne)

	events.CollisionStart.Publish(e.World, events.CollisionStartData{
		Boundary: goal.Entity(),
		Other:    paddle.Entity(),
	})
	ProcessEvents(e)

	if score := currentScore(e, t); score.PlayerOne != 0 || score.PlayerTwo != 0 {
		t.Errorf("paddle touch changed the score to (%d, %d)", score.PlayerOne, score.PlayerTwo)
	}
}

func TestGoalEventForRemovedEntitiesIsDropped(t *testing.T) {
	e, _ := newTestECS()
	RegisterGoalResponders(e.World)
	factory.CreateSpace(e)
	goal := factory.CreateGoal(e, components.StartSide, 0, 16, 16, 100)
	ball := factory.CreateBall(e)

	events.CollisionStart.Publish(e.World, events.CollisionStartData{
		Boundary: goal.Entity(),
		Other:    ball.Entity(),
	})
	e.World.Remove(ball.Entity())
	ProcessEvents(e)

	if score := currentScore(e, t); score.PlayerOne != 0 || score.PlayerTwo != 0 {
		t.Errorf("stale event changed the score to (%d, %d)", score.PlayerOne, score.PlayerTwo)
	}
}
