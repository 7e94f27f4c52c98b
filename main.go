package main

import (
	"log"
	"math/rand"
	"time"

	cfg "github.com/automoto/paddleball/config"
	"github.com/automoto/paddleball/screens"
	"github.com/automoto/paddleball/systems"
	"github.com/automoto/paddleball/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type Game struct {
	ecs     *ecs.ECS
	machine *screens.Machine
	quit    bool
}

func NewGame() *Game {
	g := &Game{}

	g.ecs = ecs.NewECS(donburi.NewWorld())
	g.machine = screens.NewMachine(cfg.ScreenSplash,
		cfg.ScreenSplash, cfg.ScreenTitle, cfg.ScreenGameplay)

	factory.CreateSingletons(g.ecs, g.machine,
		rand.New(rand.NewSource(time.Now().UnixNano())))
	systems.RegisterGoalResponders(g.ecs.World)

	g.machine.OnEnter(cfg.ScreenSplash, func(e *ecs.ECS) {
		factory.CreateSplashScreen(e)
		factory.CreateFadeIn(e, cfg.Fade.ScreenFadeIn)
	})
	g.machine.OnUpdate(cfg.ScreenSplash,
		systems.UpdateLoader,
		systems.UpdateSplash,
		systems.UpdateLoadingBar,
	)

	g.machine.OnEnter(cfg.ScreenTitle, func(e *ecs.ECS) {
		factory.CreateTitleScreen(e, func() { g.quit = true })
	})
	g.machine.OnUpdate(cfg.ScreenTitle, systems.UpdateTitle)

	g.machine.OnEnter(cfg.ScreenGameplay, factory.CreateGameplayScreen)
	g.machine.OnUpdate(cfg.ScreenGameplay,
		systems.UpdatePaddles,
		systems.UpdatePhysics,
		systems.UpdateScoreHUD,
	)

	// Frame schedule: clock and input first, then the state flush so
	// enter hooks see fresh state, then the current screen, then the
	// deferred event queue, then fades on top of whatever happened.
	g.ecs.AddSystem(systems.UpdateTime)
	g.ecs.AddSystem(systems.UpdateInput)
	g.ecs.AddSystem(g.machine.Flush)
	g.ecs.AddSystem(g.machine.Update)
	g.ecs.AddSystem(systems.ProcessEvents)
	g.ecs.AddSystem(systems.UpdateFade)

	g.ecs.AddRenderer(cfg.Default, systems.DrawShapes)
	g.ecs.AddRenderer(cfg.Default, systems.DrawText)
	g.ecs.AddRenderer(cfg.Default, systems.DrawLoadingBar)
	g.ecs.AddRenderer(cfg.Default, systems.DrawTitleUI)
	g.ecs.AddRenderer(cfg.Default, systems.DrawFade)

	return g
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.ecs.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Clear()
	g.ecs.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return cfg.C.Width, cfg.C.Height
}

func main() {
	ebiten.SetWindowSize(cfg.C.Width*2, cfg.C.Height*2)
	ebiten.SetWindowTitle("paddleball")

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
