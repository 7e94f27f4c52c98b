package screens

import (
	"fmt"

	cfg "github.com/automoto/paddleball/config"
	"github.com/yohamta/donburi/ecs"
)

// Hook runs against the shared ECS as part of a screen's lifecycle.
type Hook func(e *ecs.ECS)

// Machine is the top-level screen state machine. It is the single
// authority for which screen is current. Transitions are requested at
// any time but applied only during the state-flush phase, which must
// run before the per-frame update phase:
//
//	exit hooks (old) -> despawn old screen's entities -> commit ->
//	enter hooks (new)
//
// Update hooks of the new screen first run on the same frame, after
// its enter hooks have completed.
type Machine struct {
	current    cfg.ScreenID
	pending    cfg.ScreenID
	hasPending bool
	entered    bool

	registered map[cfg.ScreenID]bool
	enter      map[cfg.ScreenID][]Hook
	update     map[cfg.ScreenID][]Hook
	exit       map[cfg.ScreenID][]Hook
}

// NewMachine creates a machine over the given closed screen set,
// starting at initial. The set is fixed at construction; referencing
// any other screen later is a configuration error and panics.
func NewMachine(initial cfg.ScreenID, screens ...cfg.ScreenID) *Machine {
	m := &Machine{
		registered: map[cfg.ScreenID]bool{},
		enter:      map[cfg.ScreenID][]Hook{},
		update:     map[cfg.ScreenID][]Hook{},
		exit:       map[cfg.ScreenID][]Hook{},
	}
	for _, s := range screens {
		m.registered[s] = true
	}
	m.mustKnow(initial)
	m.current = initial
	return m
}

// Current returns the screen that is active now.
func (m *Machine) Current() cfg.ScreenID {
	return m.current
}

// OnEnter registers hooks to run once, right after the flush phase
// commits a transition into screen.
func (m *Machine) OnEnter(screen cfg.ScreenID, hooks ...Hook) {
	m.mustKnow(screen)
	m.enter[screen] = append(m.enter[screen], hooks...)
}

// OnUpdate registers hooks to run every frame while screen is current.
func (m *Machine) OnUpdate(screen cfg.ScreenID, hooks ...Hook) {
	m.mustKnow(screen)
	m.update[screen] = append(m.update[screen], hooks...)
}

// OnExit registers hooks to run once when leaving screen, before the
// new screen is committed.
func (m *Machine) OnExit(screen cfg.ScreenID, hooks ...Hook) {
	m.mustKnow(screen)
	m.exit[screen] = append(m.exit[screen], hooks...)
}

// RequestTransition records the intent to move to target. The move
// happens at the next flush; a later request before that overwrites
// this one (last request wins, no queue).
func (m *Machine) RequestTransition(target cfg.ScreenID) {
	m.mustKnow(target)
	m.pending = target
	m.hasPending = true
}

// Flush is the state-flush phase. Register it as a system ordered
// before Update.
func (m *Machine) Flush(e *ecs.ECS) {
	if !m.entered {
		// First frame: the initial screen enters without an exit pass.
		m.entered = true
		m.run(e, m.enter[m.current])
	}
	if !m.hasPending {
		return
	}
	target := m.pending
	m.hasPending = false

	m.run(e, m.exit[m.current])
	despawnScreen(e, m.current)
	m.current = target
	m.run(e, m.enter[target])
}

// Update runs the current screen's per-frame hooks.
func (m *Machine) Update(e *ecs.ECS) {
	if !m.entered {
		return
	}
	m.run(e, m.update[m.current])
}

func (m *Machine) run(e *ecs.ECS, hooks []Hook) {
	for _, h := range hooks {
		h(e)
	}
}

func (m *Machine) mustKnow(screen cfg.ScreenID) {
	if !m.registered[screen] {
		panic(fmt.Sprintf("screens: %v is not registered with this machine", screen))
	}
}
