package systems

import (
	"encoding/json"
	"log"

	cfg "github.com/automoto/loopjump/config"
	"github.com/quasilyte/gdata"
)

// SavedProgress represents the progress data stored on disk
type SavedProgress struct {
	LastAccessibleLevel int `json:"lastAccessibleLevel"`
}

const progressKey = "progress"

var gdataManager *gdata.Manager

// InitPersistence initializes the gdata manager for progress storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.C.AppName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	return nil
}

// LoadProgress returns the saved progress, or nil when nothing was saved.
func LoadProgress() (*SavedProgress, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(progressKey)
	if err != nil {
		log.Printf("Warning: Could not load progress: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var saved SavedProgress
	if err := json.Unmarshal(data, &saved); err != nil {
		log.Printf("Warning: Could not parse saved progress: %v", err)
		return nil, err
	}
	return &saved, nil
}

// ApplySavedProgress copies saved progress onto p, ignoring levels that no
// longer exist.
func ApplySavedProgress(p *Progress, saved *SavedProgress) {
	if p == nil || saved == nil {
		return
	}
	last := saved.LastAccessibleLevel
	if last < 0 {
		last = 0
	}
	if p.LevelCount > 0 && last >= p.LevelCount {
		last = p.LevelCount - 1
	}
	if last > p.LastAccessibleLevel {
		p.LastAccessibleLevel = last
	}
}

// SaveProgress writes the last accessible level to disk.
func SaveProgress(p *Progress) {
	if gdataManager == nil || p == nil {
		return
	}

	data, err := json.Marshal(SavedProgress{LastAccessibleLevel: p.LastAccessibleLevel})
	if err != nil {
		log.Printf("Warning: Could not serialize progress: %v", err)
		return
	}
	if err := gdataManager.SaveItem(progressKey, data); err != nil {
		log.Printf("Warning: Could not save progress: %v", err)
	}
}
