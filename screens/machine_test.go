package screens

import (
	"testing"

	cfg "github.com/automoto/paddleball/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newTestECS() *ecs.ECS {
	return ecs.NewECS(donburi.NewWorld())
}

func TestInitialScreenEntersOnFirstFlush(t *testing.T) {
	e := newTestECS()
	m := NewMachine(cfg.ScreenSplash, cfg.ScreenSplash, cfg.ScreenTitle)

	entered := 0
	m.OnEnter(cfg.ScreenSplash, func(*ecs.ECS) { entered++ })

	if entered != 0 {
		t.Fatalf("enter hook ran at construction, want only at flush")
	}

	// Update before the first flush must not run screen hooks.
	updated := 0
	m.OnUpdate(cfg.ScreenSplash, func(*ecs.ECS) { updated++ })
	m.Update(e)
	if updated != 0 {
		t.Fatalf("update hook ran before the initial flush")
	}

	m.Flush(e)
	if entered != 1 {
		t.Fatalf("enter hooks ran %d times after first flush, want 1", entered)
	}

	// Later flushes without a pending transition re-enter nothing.
	m.Flush(e)
	if entered != 1 {
		t.Fatalf("enter hooks ran %d times after idle flush, want 1", entered)
	}
}

func TestTransitionHookOrdering(t *testing.T) {
	e := newTestECS()
	m := NewMachine(cfg.ScreenSplash, cfg.ScreenSplash, cfg.ScreenTitle)

	var order []string
	m.OnEnter(cfg.ScreenSplash, func(*ecs.ECS) { order = append(order, "enter-splash") })
	m.OnExit(cfg.ScreenSplash, func(*ecs.ECS) { order = append(order, "exit-splash") })
	m.OnEnter(cfg.ScreenTitle, func(*ecs.ECS) {
		order = append(order, "enter-title")
		if m.Current() != cfg.ScreenTitle {
			t.Errorf("enter hook observed screen %v, want %v", m.Current(), cfg.ScreenTitle)
		}
	})

	m.Flush(e)
	m.RequestTransition(cfg.ScreenTitle)

	// The request is deferred until the next flush.
	if m.Current() != cfg.ScreenSplash {
		t.Fatalf("transition applied before flush")
	}

	m.Flush(e)

	want := []string{"enter-splash", "exit-splash", "enter-title"}
	if len(order) != len(want) {
		t.Fatalf("hook order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("hook order = %v, want %v", order, want)
		}
	}
}

func TestLastTransitionRequestWins(t *testing.T) {
	e := newTestECS()
	m := NewMachine(cfg.ScreenSplash,
		cfg.ScreenSplash, cfg.ScreenTitle, cfg.ScreenGameplay)

	titleEnters, gameplayEnters := 0, 0
	m.OnEnter(cfg.ScreenTitle, func(*ecs.ECS) { titleEnters++ })
	m.OnEnter(cfg.ScreenGameplay, func(*ecs.ECS) { gameplayEnters++ })

	m.Flush(e)
	m.RequestTransition(cfg.ScreenTitle)
	m.RequestTransition(cfg.ScreenGameplay)
	m.Flush(e)

	if titleEnters != 0 {
		t.Errorf("overwritten request still entered its screen")
	}
	if gameplayEnters != 1 {
		t.Errorf("gameplay entered %d times, want 1", gameplayEnters)
	}
	if m.Current() != cfg.ScreenGameplay {
		t.Errorf("current = %v, want %v", m.Current(), cfg.ScreenGameplay)
	}
}

func TestUpdateRunsOnlyCurrentScreenHooks(t *testing.T) {
	e := newTestECS()
	m := NewMachine(cfg.ScreenSplash, cfg.ScreenSplash, cfg.ScreenTitle)

	splashUpdates, titleUpdates := 0, 0
	m.OnUpdate(cfg.ScreenSplash, func(*ecs.ECS) { splashUpdates++ })
	m.OnUpdate(cfg.ScreenTitle, func(*ecs.ECS) { titleUpdates++ })

	m.Flush(e)
	m.Update(e)
	m.RequestTransition(cfg.ScreenTitle)
	m.Flush(e)
	m.Update(e)

	if splashUpdates != 1 || titleUpdates != 1 {
		t.Errorf("updates = (%d, %d), want (1, 1)", splashUpdates, titleUpdates)
	}
}

func TestUnregisteredScreenPanics(t *testing.T) {
	mustPanic := func(name string, fn func()) {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("no panic")
				}
			}()
			fn()
		})
	}

	mustPanic("initial", func() {
		NewMachine(cfg.ScreenGameplay, cfg.ScreenSplash)
	})

	m := NewMachine(cfg.ScreenSplash, cfg.ScreenSplash)
	mustPanic("enter hook", func() { m.OnEnter(cfg.ScreenTitle, func(*ecs.ECS) {}) })
	mustPanic("update hook", func() { m.OnUpdate(cfg.ScreenTitle, func(*ecs.ECS) {}) })
	mustPanic("exit hook", func() { m.OnExit(cfg.ScreenTitle, func(*ecs.ECS) {}) })
	mustPanic("request", func() { m.RequestTransition(cfg.ScreenGameplay) })
}
