package systems

import (
	"github.com/automoto/paddleball/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// DrawShapes renders every collision-backed entity as a flat shape at
// its object's position.
func DrawShapes(e *ecs.ECS, screen *ebiten.Image) {
	components.Shape.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.Object) {
			return
		}
		s := components.Shape.Get(entry)
		obj := components.Object.Get(entry)
		if obj.Object == nil {
			return
		}
		if s.Round {
			r := float32(s.Width / 2)
			cx := float32(obj.X) + r
			cy := float32(obj.Y) + r
			vector.DrawFilledCircle(screen, cx, cy, r, s.Color, false)
			return
		}
		vector.DrawFilledRect(screen,
			float32(obj.X), float32(obj.Y),
			float32(s.Width), float32(s.Height),
			s.Color, false)
	})
}

// DrawText renders text components with their registered face.
func DrawText(e *ecs.ECS, screen *ebiten.Image) {
	components.Text.Each(e.World, func(entry *donburi.Entry) {
		t := components.Text.Get(entry)
		if t.Value == "" {
			return
		}
		face := t.Font.Get()
		x := t.X
		if t.Centered {
			x -= font.MeasureString(face, t.Value).Round() / 2
		}
		text.Draw(screen, t.Value, face, x, t.Y, t.Color)
	})
}
