package systems

import (
	"github.com/automoto/paddleball/components"
	cfg "github.com/automoto/paddleball/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const loadingBarBorder = 2

// DrawLoadingBar renders each bar as a bordered frame with a fill
// whose width tracks the percentage.
func DrawLoadingBar(e *ecs.ECS, screen *ebiten.Image) {
	components.LoadingBar.Each(e.World, func(entry *donburi.Entry) {
		bar := components.LoadingBar.Get(entry)

		vector.StrokeRect(screen,
			float32(bar.X), float32(bar.Y),
			float32(bar.W), float32(bar.H),
			loadingBarBorder, cfg.BarBorder, false)

		fillW := float32(bar.W-2*loadingBarBorder) * float32(bar.Fill) / 100
		if fillW <= 0 {
			return
		}
		vector.DrawFilledRect(screen,
			float32(bar.X)+loadingBarBorder, float32(bar.Y)+loadingBarBorder,
			fillW, float32(bar.H-2*loadingBarBorder),
			cfg.BarFill, false)
	})
}
