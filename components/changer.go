package components

import (
	cfg "github.com/automoto/paddleball/config"
	"github.com/yohamta/donburi"
)

// ScreenChanger lets systems request a screen transition without
// depending on the state machine implementation. The request is
// applied at the next state-flush phase; re-requesting before then
// overwrites the pending target.
type ScreenChanger interface {
	RequestTransition(target cfg.ScreenID)
}

type ChangerData struct {
	ScreenChanger
}

var Changer = donburi.NewComponentType[ChangerData]()
