package components

import (
	"fmt"

	"github.com/yohamta/donburi"
)

// ScoreData is the process-wide goal counter pair. It is created once
// at startup and never reset: leaving and re-entering gameplay keeps
// the running totals.
type ScoreData struct {
	PlayerOne int
	PlayerTwo int
}

// Award increments the given player's counter.
func (s *ScoreData) Award(p PlayerIndex) {
	switch p {
	case PlayerOne:
		s.PlayerOne++
	case PlayerTwo:
		s.PlayerTwo++
	}
}

// Format renders the readout string shown on screen.
func (s *ScoreData) Format() string {
	return fmt.Sprintf("%d - %d", s.PlayerOne, s.PlayerTwo)
}

var Score = donburi.NewComponentType[ScoreData]()
