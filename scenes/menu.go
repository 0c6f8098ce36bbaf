package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/loopjump/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// MenuScene displays the main menu
type MenuScene struct {
	sceneChanger SceneChanger
	run          *Run
	menuUI       *ui.MenuUI
	once         sync.Once
	next         func()
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger, run *Run) *MenuScene {
	return &MenuScene{sceneChanger: sc, run: run}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.menuUI.Update()

	// Scene changes wait until the UI has finished its update
	if ms.next != nil {
		next := ms.next
		ms.next = nil
		next()
	}
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.menuUI == nil {
		return
	}
	ms.menuUI.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.menuUI = ui.NewMainMenuUI(
		func() { ms.next = ms.play },
		func() {
			ms.next = func() { ms.sceneChanger.ChangeScene(NewLevelSelectScene(ms.sceneChanger, ms.run)) }
		},
		func() { ms.next = ms.sceneChanger.Quit },
	)
}

// play continues from the furthest unlocked level.
func (ms *MenuScene) play() {
	p := ms.run.Progress
	p.TargetLevel = p.LastAccessibleLevel
	p.FromLevelSelect = false
	ms.sceneChanger.ChangeScene(NewWorldScene(ms.sceneChanger, ms.run))
}
