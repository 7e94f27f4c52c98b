package systems

import (
	"github.com/automoto/paddleball/components"
	cfg "github.com/automoto/paddleball/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTitle drives the title menu UI and its keyboard shortcut.
func UpdateTitle(e *ecs.ECS) {
	entry, ok := components.Title.First(e.World)
	if !ok {
		return
	}
	menu := components.Title.Get(entry).Menu
	if menu == nil {
		return
	}
	menu.Update()

	if inputEntry, ok := components.Input.First(e.World); ok {
		if components.Input.Get(inputEntry).JustPressed(cfg.ActionMenuSelect) {
			menu.Play()
		}
	}
}

// DrawTitleUI renders the menu widgets.
func DrawTitleUI(e *ecs.ECS, screen *ebiten.Image) {
	components.Title.Each(e.World, func(entry *donburi.Entry) {
		if menu := components.Title.Get(entry).Menu; menu != nil {
			menu.Draw(screen)
		}
	})
}
