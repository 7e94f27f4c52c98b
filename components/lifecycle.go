package components

import (
	cfg "github.com/automoto/paddleball/config"
	"github.com/yohamta/donburi"
)

// LifecycleData marks an entity as owned by a screen: when that screen
// exits, the entity is destroyed. Every factory that spawns for a
// screen's enter hook must attach this.
type LifecycleData struct {
	Screen cfg.ScreenID
}

var Lifecycle = donburi.NewComponentType[LifecycleData]()
