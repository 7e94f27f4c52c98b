package archetypes

import (
	"github.com/automoto/paddleball/components"
	cfg "github.com/automoto/paddleball/config"
	"github.com/automoto/paddleball/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Paddle = newArchetype(
		tags.Paddle,
		components.Paddle,
		components.Object,
		components.Velocity,
		components.Shape,
		components.Lifecycle,
	)
	Ball = newArchetype(
		tags.Ball,
		components.Object,
		components.Velocity,
		components.Shape,
		components.Lifecycle,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
		components.Shape,
		components.Lifecycle,
	)
	Goal = newArchetype(
		tags.Goal,
		components.Goal,
		components.Object,
		components.Shape,
		components.Lifecycle,
	)
	Decor = newArchetype(
		components.Object,
		components.Shape,
		components.Lifecycle,
	)
	Space = newArchetype(
		components.Space,
		components.Lifecycle,
	)
	ScoreText = newArchetype(
		tags.ScoreText,
		components.Text,
		components.Lifecycle,
	)
	Label = newArchetype(
		components.Text,
		components.Lifecycle,
	)
	LoadingBar = newArchetype(
		components.LoadingBar,
		components.Lifecycle,
	)
	Splash = newArchetype(
		components.Splash,
		components.Lifecycle,
	)
	TitleMenu = newArchetype(
		components.Title,
		components.Lifecycle,
	)
	Loader = newArchetype(
		components.Loader,
		components.Lifecycle,
	)
	// Fades outlive the screen that spawned them: the out-phase plays
	// over the next screen, so no lifecycle tag.
	Fade = newArchetype(
		components.Fade,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
