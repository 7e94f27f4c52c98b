package factory

import (
	"github.com/automoto/paddleball/archetypes"
	"github.com/automoto/paddleball/components"
	cfg "github.com/automoto/paddleball/config"
	"github.com/automoto/paddleball/fonts"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/gofont/goregular"
)

// CreateSplashScreen spawns the boot screen: studio label, loading
// bar, and the loader that pulls in the real typefaces. Progress for
// the screen is registered up front so the bar knows its total before
// the first step lands.
func CreateSplashScreen(e *ecs.ECS) {
	steps := []components.LoadStep{
		{Name: "font:title", Run: func() error {
			return fonts.LoadFontWithSize(fonts.Title, goregular.TTF, 32)
		}},
		{Name: "font:hud", Run: func() error {
			return fonts.LoadFontWithSize(fonts.HUD, goregular.TTF, 16)
		}},
		{Name: "font:small", Run: func() error {
			return fonts.LoadFontWithSize(fonts.Small, goregular.TTF, 10)
		}},
	}

	if entry, ok := components.Progress.First(e.World); ok {
		progress := components.Progress.Get(entry)
		progress.Reset(cfg.ScreenSplash)
		progress.RegisterContributor(cfg.ScreenSplash, len(steps))
	}

	splash := archetypes.Splash.Spawn(e)
	components.Splash.SetValue(splash, components.SplashData{LastDone: -1})
	components.Lifecycle.SetValue(splash, components.LifecycleData{Screen: cfg.ScreenSplash})

	label := archetypes.Label.Spawn(e)
	components.Text.SetValue(label, components.TextData{
		Value:    "automoto",
		X:        cfg.C.Width / 2,
		Y:        cfg.C.Height * 2 / 5,
		Font:     fonts.Title,
		Color:    cfg.White,
		Centered: true,
	})
	components.Lifecycle.SetValue(label, components.LifecycleData{Screen: cfg.ScreenSplash})

	bar := archetypes.LoadingBar.Spawn(e)
	components.LoadingBar.SetValue(bar, components.LoadingBarData{
		Screen:   cfg.ScreenSplash,
		LastDone: -1,
		X:        float64(cfg.C.Width) * 0.2,
		Y:        float64(cfg.C.Height) * 0.6,
		W:        float64(cfg.C.Width) * 0.6,
		H:        12,
	})
	components.Lifecycle.SetValue(bar, components.LifecycleData{Screen: cfg.ScreenSplash})

	loader := archetypes.Loader.Spawn(e)
	components.Loader.SetValue(loader, components.LoaderData{
		Screen: cfg.ScreenSplash,
		Steps:  steps,
	})
	components.Lifecycle.SetValue(loader, components.LifecycleData{Screen: cfg.ScreenSplash})
}
