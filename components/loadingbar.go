package components

import (
	cfg "github.com/automoto/paddleball/config"
	"github.com/yohamta/donburi"
)

// LoadingBarData is a progress bar bound to one tracked screen. Fill
// is a percentage, 100 * done / total. LastDone is the consumer-side
// baseline: the fill only recomputes on frames where done moved.
type LoadingBarData struct {
	Screen   cfg.ScreenID
	LastDone int
	Fill     float64

	X float64
	Y float64
	W float64
	H float64
}

var LoadingBar = donburi.NewComponentType[LoadingBarData]()
