package events

import (
	"github.com/yohamta/donburi"
	devents "github.com/yohamta/donburi/features/events"
)

// CollisionStartData is delivered once per new overlap against an
// event-reporting boundary, never for continued contact. Responders
// run when the frame's events are processed, in the same frame the
// physics step published them.
type CollisionStartData struct {
	Boundary donburi.Entity
	Other    donburi.Entity
}

var CollisionStart = devents.NewEventType[CollisionStartData]()
