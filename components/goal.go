package components

import "github.com/yohamta/donburi"

// GoalSide says which side boundary a goal sensor guards. The start
// side is the left wall, behind player one; the end side is the right
// wall, behind player two. A goal credits the opposite player.
type GoalSide int

const (
	StartSide GoalSide = iota
	EndSide
)

func (s GoalSide) String() string {
	if s == StartSide {
		return "start"
	}
	return "end"
}

type GoalData struct {
	Side GoalSide

	// InContact tracks whether something is currently overlapping the
	// sensor, so a multi-frame overlap produces a single start event.
	InContact bool
}

var Goal = donburi.NewComponentType[GoalData]()
