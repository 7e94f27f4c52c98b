package factory

import (
	"github.com/automoto/paddleball/archetypes"
	"github.com/automoto/paddleball/components"
	cfg "github.com/automoto/paddleball/config"
	"github.com/automoto/paddleball/ui"
	"github.com/yohamta/donburi/ecs"
)

// CreateTitleScreen spawns the menu entity. Play kicks off the fade
// into the match; the fade owns the actual screen change.
func CreateTitleScreen(e *ecs.ECS, onQuit func()) {
	menu := ui.NewTitleMenu(func() {
		CreateFadeTo(e, cfg.ScreenGameplay, cfg.Fade.TitleToGameplay)
	}, onQuit)

	title := archetypes.TitleMenu.Spawn(e)
	components.Title.SetValue(title, components.TitleData{Menu: menu})
	components.Lifecycle.SetValue(title, components.LifecycleData{Screen: cfg.ScreenTitle})
}
