package scenes

import (
	"log"

	cfg "github.com/automoto/loopjump/config"
	"github.com/automoto/loopjump/leveldata"
	"github.com/automoto/loopjump/systems"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
	Quit()
}

// Run is the state every scene of one game shares: the loaded levels and
// the progression through them.
type Run struct {
	Levels   []*leveldata.Level
	Progress *systems.Progress
	Tuning   *cfg.TuningWatcher // nil unless -tuning was given
}

// NewRun returns a run over levels with saved progress applied.
func NewRun(levels []*leveldata.Level, saved *systems.SavedProgress) *Run {
	progress := &systems.Progress{LevelCount: len(levels)}
	systems.ApplySavedProgress(progress, saved)
	return &Run{Levels: levels, Progress: progress}
}

// pollTuning applies pending tuning file changes. Called between frames so
// a level never sees half-applied values.
func (r *Run) pollTuning() {
	if r.Tuning == nil {
		return
	}
	for {
		select {
		case path := <-r.Tuning.Events:
			if err := cfg.LoadTuning(path); err != nil {
				log.Printf("Warning: tuning not applied: %v", err)
				continue
			}
			log.Printf("tuning reloaded from %s", path)
		case err := <-r.Tuning.Errors:
			log.Printf("Warning: tuning watcher: %v", err)
		default:
			return
		}
	}
}
