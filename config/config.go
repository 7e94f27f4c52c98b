package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the single render layer; the game has no parallax or
// depth stacking, so everything draws on one layer in adder order.
const Default ecs.LayerID = iota

// Config contains global game configuration values
type Config struct {
	Width  int
	Height int

	// Longest frame delta fed into the simulation, in seconds.
	// Protects against spiral-of-death after a window stall.
	MaxFrameDelta float64
}

// CourtConfig describes the play area and its boundary walls
type CourtConfig struct {
	WallThickness float64
	PaddleOffsetX float64 // distance from court center to each paddle center
}

// PaddleConfig contains paddle dimensions and movement tuning
type PaddleConfig struct {
	Width  float64
	Height float64

	// Gain converts a held directional key into a velocity magnitude:
	// speed = frame delta * Gain, in units/second.
	Gain float64
}

// BallConfig contains ball dimensions and serve tuning
type BallConfig struct {
	Diameter float64

	// The serve picks one of the four diagonals (+-ServeSpeedX, +-ServeSpeedY).
	ServeSpeedX float64
	ServeSpeedY float64
}

// FadeConfig contains fade transition durations in seconds
type FadeConfig struct {
	SplashToTitle   float32
	TitleToGameplay float32
	ScreenFadeIn    float32
}

var C *Config
var Court CourtConfig
var Paddle PaddleConfig
var Ball BallConfig
var Fade FadeConfig

// Shared RGBA color constants
var (
	White      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	PaddleGray = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	WallGray   = color.RGBA{R: 70, G: 70, B: 80, A: 255}
	GoalShade  = color.RGBA{R: 30, G: 30, B: 36, A: 255}
	MidlineDim = color.RGBA{R: 50, G: 50, B: 60, A: 255}
	BarBorder  = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	BarFill    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
)

func init() {
	C = &Config{
		Width:         640,
		Height:        360,
		MaxFrameDelta: 0.25,
	}

	Court = CourtConfig{
		WallThickness: 16,
		PaddleOffsetX: 240,
	}

	Paddle = PaddleConfig{
		Width:  20,
		Height: 80,
		Gain:   3600,
	}

	Ball = BallConfig{
		Diameter:    20,
		ServeSpeedX: 200,
		ServeSpeedY: 150,
	}

	Fade = FadeConfig{
		SplashToTitle:   0.8,
		TitleToGameplay: 0.8,
		ScreenFadeIn:    0.3,
	}
}
