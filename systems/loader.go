package systems

import (
	"log"

	"github.com/automoto/paddleball/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLoader runs one pending load step per loader per frame and
// reports the completion to the progress tracker. A failed step is
// logged and still counted as done: progress must reach its total or
// the splash screen would never hand off.
func UpdateLoader(e *ecs.ECS) {
	progressEntry, ok := components.Progress.First(e.World)
	if !ok {
		return
	}
	progress := components.Progress.Get(progressEntry)

	components.Loader.Each(e.World, func(entry *donburi.Entry) {
		l := components.Loader.Get(entry)
		if l.Next >= len(l.Steps) {
			return
		}
		step := l.Steps[l.Next]
		l.Next++
		if step.Run != nil {
			if err := step.Run(); err != nil {
				log.Printf("load %s: %v", step.Name, err)
			}
		}
		progress.ReportDone(l.Screen, 1)
	})
}
