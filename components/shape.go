package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// ShapeData is a flat-color shape rendered at the entity's collision
// object position.
type ShapeData struct {
	Width  float64
	Height float64
	Round  bool
	Color  color.RGBA
}

var Shape = donburi.NewComponentType[ShapeData]()
