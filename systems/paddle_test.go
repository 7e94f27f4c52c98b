package systems

import (
	"testing"

	"github.com/automoto/paddleball/components"
	cfg "github.com/automoto/paddleball/config"
	"github.com/automoto/paddleball/systems/factory"
)

const testDelta = 1.0 / 60

func TestPaddleVelocityFromHeldKeys(t *testing.T) {
	speed := testDelta * cfg.Paddle.Gain

	tests := []struct {
		name   string
		held   []cfg.ActionID
		wantVY float64
	}{
		{"up", []cfg.ActionID{cfg.ActionP1Up}, -speed},
		{"down", []cfg.ActionID{cfg.ActionP1Down}, speed},
		{"both cancel", []cfg.ActionID{cfg.ActionP1Up, cfg.ActionP1Down}, 0},
		{"none", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newTestECS()
			paddle := factory.CreatePaddle(e, components.PlayerOne)

			// A stale velocity must be overwritten, not accumulated.
			components.Velocity.Get(paddle).Y = 999

			setDelta(e, testDelta)
			press(e, tt.held...)
			UpdatePaddles(e)

			vel := components.Velocity.Get(paddle)
			if vel.Y != tt.wantVY {
				t.Errorf("vel.Y = %v, want %v", vel.Y, tt.wantVY)
			}
			if vel.X != 0 {
				t.Errorf("vel.X = %v, want 0", vel.X)
			}
		})
	}
}

func TestPaddleKeysAreIndependentPerPlayer(t *testing.T) {
	e, _ := newTestECS()
	p1 := factory.CreatePaddle(e, components.PlayerOne)
	p2 := factory.CreatePaddle(e, components.PlayerTwo)

	setDelta(e, testDelta)
	press(e, cfg.ActionP1Up, cfg.ActionP2Down)
	UpdatePaddles(e)

	speed := testDelta * cfg.Paddle.Gain
	if got := components.Velocity.Get(p1).Y; got != -speed {
		t.Errorf("player one vel.Y = %v, want %v", got, -speed)
	}
	if got := components.Velocity.Get(p2).Y; got != speed {
		t.Errorf("player two vel.Y = %v, want %v", got, speed)
	}
}

func TestMissingPaddleIsSkipped(t *testing.T) {
	e, _ := newTestECS()
	p1 := factory.CreatePaddle(e, components.PlayerOne)
	// Player two's paddle never spawns.

	setDelta(e, testDelta)
	press(e, cfg.ActionP1Down, cfg.ActionP2Up)
	UpdatePaddles(e)

	if got := components.Velocity.Get(p1).Y; got != testDelta*cfg.Paddle.Gain {
		t.Errorf("present paddle not driven, vel.Y = %v", got)
	}
}
