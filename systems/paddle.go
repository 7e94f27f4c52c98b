package systems

import (
	"github.com/automoto/paddleball/components"
	cfg "github.com/automoto/paddleball/config"
	"github.com/automoto/paddleball/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// paddleBindings maps each paddle to its directional key pair.
var paddleBindings = map[components.PlayerIndex]struct {
	up   cfg.ActionID
	down cfg.ActionID
}{
	components.PlayerOne: {up: cfg.ActionP1Up, down: cfg.ActionP1Down},
	components.PlayerTwo: {up: cfg.ActionP2Up, down: cfg.ActionP2Down},
}

// UpdatePaddles writes the held key pairs into the paddles' vertical
// velocity. The velocity is set, not accumulated: the speed magnitude
// is frame delta times the configured gain, the two directions
// contribute algebraically, so opposite keys cancel to zero. A paddle
// that cannot be found this frame is skipped, never fatal.
func UpdatePaddles(e *ecs.ECS) {
	inputEntry, ok := components.Input.First(e.World)
	if !ok {
		return
	}
	input := components.Input.Get(inputEntry)

	dt, ok := frameDelta(e)
	if !ok {
		return
	}
	speed := dt * cfg.Paddle.Gain

	for player, keys := range paddleBindings {
		entry, ok := paddleEntry(e.World, player)
		if !ok {
			continue
		}
		var vy float64
		if input.Pressed(keys.up) {
			vy -= speed
		}
		if input.Pressed(keys.down) {
			vy += speed
		}
		vel := components.Velocity.Get(entry)
		vel.X = 0 // pinned to the vertical axis
		vel.Y = vy
	}
}

// paddleEntry finds the paddle for one player by single-match query.
// Handles are never cached across frames.
func paddleEntry(w donburi.World, player components.PlayerIndex) (*donburi.Entry, bool) {
	var found *donburi.Entry
	tags.Paddle.Each(w, func(entry *donburi.Entry) {
		if components.Paddle.Get(entry).Player == player {
			found = entry
		}
	})
	return found, found != nil
}
