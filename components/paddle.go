package components

import "github.com/yohamta/donburi"

// PlayerIndex identifies which side a paddle (and its score field)
// belongs to.
type PlayerIndex int

const (
	PlayerOne PlayerIndex = iota
	PlayerTwo
)

type PaddleData struct {
	Player PlayerIndex
}

var Paddle = donburi.NewComponentType[PaddleData]()
