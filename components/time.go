package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// TimeData holds the frame delta in seconds. Animation and movement
// scale by this, never by frame count.
type TimeData struct {
	Delta float64
	Last  time.Time
}

var Time = donburi.NewComponentType[TimeData]()
