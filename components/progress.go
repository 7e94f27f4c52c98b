package components

import (
	cfg "github.com/automoto/paddleball/config"
	"github.com/yohamta/donburi"
)

// ProgressState is one tracked screen's loading counters. Done never
// exceeds Total, and both only grow within one activation of the
// screen; re-entering the screen resets them before contributors
// re-register.
type ProgressState struct {
	Done  int
	Total int
}

// ProgressData aggregates loading contributors per tracked screen.
type ProgressData struct {
	screens map[cfg.ScreenID]*ProgressState
}

func (p *ProgressData) state(s cfg.ScreenID) *ProgressState {
	if p.screens == nil {
		p.screens = map[cfg.ScreenID]*ProgressState{}
	}
	st, ok := p.screens[s]
	if !ok {
		st = &ProgressState{}
		p.screens[s] = st
	}
	return st
}

// RegisterContributor adds expected work items to the screen's total.
func (p *ProgressData) RegisterContributor(s cfg.ScreenID, expected int) {
	if expected < 0 {
		return
	}
	p.state(s).Total += expected
}

// ReportDone marks n items complete, clamped so Done never passes Total.
func (p *ProgressData) ReportDone(s cfg.ScreenID, n int) {
	st := p.state(s)
	st.Done += n
	if st.Done > st.Total {
		st.Done = st.Total
	}
	if st.Done < 0 {
		st.Done = 0
	}
}

// Combined returns a read-only snapshot of the screen's counters.
func (p *ProgressData) Combined(s cfg.ScreenID) (done, total int) {
	st := p.state(s)
	return st.Done, st.Total
}

// Reset clears the screen's counters for a fresh activation.
func (p *ProgressData) Reset(s cfg.ScreenID) {
	st := p.state(s)
	st.Done = 0
	st.Total = 0
}

var Progress = donburi.NewComponentType[ProgressData]()
