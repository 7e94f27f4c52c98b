package systems

import (
	"testing"

	"github.com/automoto/paddleball/components"
	"github.com/automoto/paddleball/systems/factory"
)

func TestScoreTextSeededFromRunningScore(t *testing.T) {
	e, _ := newTestECS()
	score := currentScore(e, t)
	score.Award(components.PlayerOne)
	score.Award(components.PlayerOne)

	readout := factory.CreateScoreText(e)

	if got := components.Text.Get(readout).Value; got != "2 - 0" {
		t.Errorf("fresh readout = %q, want %q", got, "2 - 0")
	}
}

func TestScoreHUDFollowsScoreChanges(t *testing.T) {
	e, _ := newTestECS()
	readout := factory.CreateScoreText(e)

	currentScore(e, t).Award(components.PlayerTwo)
	UpdateScoreHUD(e)

	if got := components.Text.Get(readout).Value; got != "0 - 1" {
		t.Errorf("readout = %q after a goal, want %q", got, "0 - 1")
	}
}
