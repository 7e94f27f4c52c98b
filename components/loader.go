package components

import (
	cfg "github.com/automoto/paddleball/config"
	"github.com/yohamta/donburi"
)

// LoadStep is one unit of loading work, reported to the progress
// tracker when it completes.
type LoadStep struct {
	Name string
	Run  func() error
}

// LoaderData is a loading contributor: a queue of steps executed one
// per frame while its screen is active.
type LoaderData struct {
	Screen cfg.ScreenID
	Steps  []LoadStep
	Next   int
}

var Loader = donburi.NewComponentType[LoaderData]()
