package components

import (
	"image/color"

	"github.com/automoto/paddleball/fonts"
	"github.com/yohamta/donburi"
)

type TextData struct {
	Value string
	X     int
	Y     int
	Font  fonts.FontName
	Color color.RGBA

	// Centered draws the string centered horizontally on X.
	Centered bool
}

var Text = donburi.NewComponentType[TextData]()
