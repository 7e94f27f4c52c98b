package components

import (
	"math/rand"

	"github.com/yohamta/donburi"
)

// RandomData carries the injectable random source. Tests pin the seed
// to make the ball's serve direction deterministic.
type RandomData struct {
	Rand *rand.Rand
}

var Random = donburi.NewComponentType[RandomData]()
