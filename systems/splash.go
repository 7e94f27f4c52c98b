package systems

import (
	"log"

	"github.com/automoto/paddleball/components"
	cfg "github.com/automoto/paddleball/config"
	"github.com/automoto/paddleball/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSplash watches the splash screen's combined progress and, on
// the completion edge, starts the one fade to the title screen. The
// LastDone baseline makes the edge fire at most once per activation:
// later frames where done still equals total change nothing.
func UpdateSplash(e *ecs.ECS) {
	splashEntry, ok := components.Splash.First(e.World)
	if !ok {
		return
	}
	splash := components.Splash.Get(splashEntry)

	progressEntry, ok := components.Progress.First(e.World)
	if !ok {
		return
	}
	done, total := components.Progress.Get(progressEntry).Combined(cfg.ScreenSplash)
	if done == splash.LastDone {
		return
	}
	splash.LastDone = done

	log.Printf("booting: %d / %d", done, total)

	if total > 0 && done == total {
		factory.CreateFadeTo(e, cfg.ScreenTitle, cfg.Fade.SplashToTitle)
	}
}

// UpdateLoadingBar refreshes each bar's fill percentage from the
// tracker. Like the splash watcher it keeps its own baseline and only
// recomputes on frames where done moved.
func UpdateLoadingBar(e *ecs.ECS) {
	progressEntry, ok := components.Progress.First(e.World)
	if !ok {
		return
	}
	progress := components.Progress.Get(progressEntry)

	components.LoadingBar.Each(e.World, func(entry *donburi.Entry) {
		bar := components.LoadingBar.Get(entry)
		done, total := progress.Combined(bar.Screen)
		if done == bar.LastDone {
			return
		}
		bar.LastDone = done
		if total > 0 {
			bar.Fill = 100 * float64(done) / float64(total)
		}
	})
}
