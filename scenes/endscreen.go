package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/loopjump/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// EndScreenScene is shown after the last level is finished
type EndScreenScene struct {
	sceneChanger SceneChanger
	run          *Run
	endUI        *ui.MenuUI
	once         sync.Once
	done         bool
}

// NewEndScreenScene creates a new end screen scene
func NewEndScreenScene(sc SceneChanger, run *Run) *EndScreenScene {
	return &EndScreenScene{sceneChanger: sc, run: run}
}

func (es *EndScreenScene) Update() {
	es.once.Do(es.configure)
	es.endUI.Update()

	if es.done {
		es.sceneChanger.ChangeScene(NewMenuScene(es.sceneChanger, es.run))
	}
}

func (es *EndScreenScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if es.endUI == nil {
		return
	}
	es.endUI.Draw(screen)
}

func (es *EndScreenScene) configure() {
	es.endUI = ui.NewEndScreenUI(func() { es.done = true })
}
