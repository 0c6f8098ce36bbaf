package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/loopjump/components"
	"github.com/automoto/loopjump/controls"
	"github.com/automoto/loopjump/render"
	"github.com/automoto/loopjump/systems"
	"github.com/automoto/loopjump/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// WorldScene plays the level at run.Progress.TargetLevel
type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	run          *Run
	session      *systems.Session
	request      systems.Request
	once         sync.Once
}

// NewWorldScene creates a scene for the run's target level
func NewWorldScene(sc SceneChanger, run *Run) *WorldScene {
	return &WorldScene{sceneChanger: sc, run: run}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	if ws.session == nil {
		ws.sceneChanger.ChangeScene(NewMenuScene(ws.sceneChanger, ws.run))
		return
	}

	ws.run.pollTuning()
	ws.ecs.Update()

	switch ws.request {
	case systems.RequestNextLevel:
		ws.sceneChanger.ChangeScene(NewWorldScene(ws.sceneChanger, ws.run))
	case systems.RequestLevelSelect:
		ws.sceneChanger.ChangeScene(NewLevelSelectScene(ws.sceneChanger, ws.run))
	case systems.RequestEndScreen:
		ws.sceneChanger.ChangeScene(NewEndScreenScene(ws.sceneChanger, ws.run))
	}
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	s, err := factory.BuildSession(ws.run.Levels, ws.run.Progress.TargetLevel, ws.run.Progress)
	if err != nil {
		log.Printf("Warning: could not build level %d: %v", ws.run.Progress.TargetLevel, err)
		return
	}
	s.SaveProgress = systems.SaveProgress
	ws.session = s

	ws.ecs = ecs.NewECS(s.World)

	// Input is polled before the level pipeline sees it
	ws.ecs.AddSystem(ws.update)

	render.NewRenderer(s).Register(ws.ecs)
}

func (ws *WorldScene) update(_ *ecs.ECS) {
	if ws.request != systems.RequestNone {
		return
	}
	controls.Poll(components.Input.Get(ws.session.Player))
	ws.request = systems.Frame(ws.session, 1/float64(ebiten.TPS()))
}
