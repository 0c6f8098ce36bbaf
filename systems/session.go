package systems

import (
	"fmt"

	"github.com/automoto/loopjump/components"
	cfg "github.com/automoto/loopjump/config"
	"github.com/automoto/loopjump/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// Request is what the active level asks the scene layer to do after a frame.
type Request int

const (
	RequestNone Request = iota
	RequestNextLevel
	RequestLevelSelect
	RequestEndScreen
)

func (r Request) String() string {
	switch r {
	case RequestNone:
		return "None"
	case RequestNextLevel:
		return "NextLevel"
	case RequestLevelSelect:
		return "LevelSelect"
	case RequestEndScreen:
		return "EndScreen"
	}
	return "Unknown"
}

// Progress is the run-wide level progression shared across sessions.
type Progress struct {
	TargetLevel         int
	LastAccessibleLevel int
	FromLevelSelect     bool
	LevelCount          int // 0 means unbounded

	// Dim outlives a level so the next one fades in from black.
	Dim components.DimData
}

// Session owns every entity of one loaded level. Systems receive it
// instead of querying the world for singletons each frame.
type Session struct {
	World donburi.World
	Space *resolv.Space
	Level *components.LevelData

	Player       *donburi.Entry
	PlayerCamera *donburi.Entry
	Goal         *donburi.Entry
	Barrier      *donburi.Entry
	Cameras      []*donburi.Entry // parallax and HUD cameras

	Panning components.PanningData
	Dim     *components.DimData // points into Progress

	Progress *Progress
	Request  Request

	// SaveProgress is called whenever LastAccessibleLevel grows.
	SaveProgress func(*Progress)
}

// NewSession returns an empty session with the panning director at its
// level-load state.
func NewSession(w donburi.World, space *resolv.Space, progress *Progress) *Session {
	if progress == nil {
		progress = &Progress{}
	}
	return &Session{
		World:    w,
		Space:    space,
		Progress: progress,
		Panning:  newPanning(),
		Dim:      &progress.Dim,
	}
}

func newPanning() components.PanningData {
	return components.PanningData{
		State: components.PanningToGoal,
		Dwell: components.NewTimer(cfg.Camera.GoalDwell, false),
	}
}

func (s *Session) player() (*donburi.Entry, bool) {
	if s.Player == nil || !s.Player.Valid() {
		return nil, false
	}
	return s.Player, true
}

func (s *Session) playerCamera() (*components.CameraData, bool) {
	if s.PlayerCamera == nil || !s.PlayerCamera.Valid() {
		return nil, false
	}
	return components.Camera.Get(s.PlayerCamera), true
}

func (s *Session) goal() (*donburi.Entry, bool) {
	if s.Goal == nil || !s.Goal.Valid() {
		return nil, false
	}
	return s.Goal, true
}

// eachParallax calls fn for every live camera that follows the rig.
func (s *Session) eachParallax(fn func(*components.CameraData)) {
	for _, e := range s.Cameras {
		if !e.Valid() {
			continue
		}
		c := components.Camera.Get(e)
		if c.Kind.Parallax() {
			fn(c)
		}
	}
}

func (s *Session) levelWidth() float64 {
	if s.Level == nil || s.Level.Width <= 0 {
		return cfg.Camera.DefaultLevelWidth
	}
	return s.Level.Width
}

// MustSingle returns the only entity matching the given components. It
// reports false when there is none and panics when there is more than one,
// which can only happen through a leaked entity from an earlier level.
func MustSingle(w donburi.World, cs ...donburi.IComponentType) (*donburi.Entry, bool) {
	query := donburi.NewQuery(filter.Contains(cs...))
	if n := query.Count(w); n > 1 {
		panic(fmt.Sprintf("expected at most one entity with %v, found %d", cs, n))
	}
	return query.First(w)
}

// CheckSingletons panics if the world holds more than one player, goal,
// barrier or player camera.
func CheckSingletons(w donburi.World) {
	MustSingle(w, tags.Player)
	MustSingle(w, tags.Goal)
	MustSingle(w, tags.Barrier)

	playerCameras := 0
	components.Camera.Each(w, func(e *donburi.Entry) {
		if components.Camera.Get(e).Kind == components.CameraPlayer {
			playerCameras++
		}
	})
	if playerCameras > 1 {
		panic(fmt.Sprintf("expected at most one player camera, found %d", playerCameras))
	}
}
