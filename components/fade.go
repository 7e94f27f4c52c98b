package components

import (
	cfg "github.com/automoto/paddleball/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FadeData animates a full-screen overlay. A fade with a target covers
// the old screen over the first half of its duration, requests the
// screen transition once at full cover, then reveals the new screen
// over the second half. Progress comes from accumulated elapsed time,
// so the behavior is frame-rate independent.
type FadeData struct {
	Seq      *gween.Sequence
	Duration float32
	Elapsed  float32
	Alpha    float32

	Target    cfg.ScreenID
	HasTarget bool
	Requested bool
}

var Fade = donburi.NewComponentType[FadeData]()
