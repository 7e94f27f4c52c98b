package components

import "github.com/yohamta/donburi"

// SplashData watches for the loading completion edge. LastDone is the
// baseline that makes the edge fire exactly once per activation even
// though done == total persists across later frames.
type SplashData struct {
	LastDone int
}

var Splash = donburi.NewComponentType[SplashData]()
