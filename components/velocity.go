package components

import "github.com/yohamta/donburi"

// VelocityData is a linear velocity in units/second, screen
// coordinates (positive Y is down).
type VelocityData struct {
	X float64
	Y float64
}

var Velocity = donburi.NewComponentType[VelocityData]()
