package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/loopjump/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// LevelSelectScene lists the unlocked levels
type LevelSelectScene struct {
	sceneChanger SceneChanger
	run          *Run
	selectUI     *ui.MenuUI
	once         sync.Once
	next         func()
}

func NewLevelSelectScene(sc SceneChanger, run *Run) *LevelSelectScene {
	return &LevelSelectScene{sceneChanger: sc, run: run}
}

func (ls *LevelSelectScene) Update() {
	ls.once.Do(ls.configure)
	ls.selectUI.Update()

	if ls.next != nil {
		next := ls.next
		ls.next = nil
		next()
	}
}

func (ls *LevelSelectScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{20, 20, 30, 255})

	if ls.selectUI == nil {
		return
	}
	ls.selectUI.Draw(screen)
}

func (ls *LevelSelectScene) configure() {
	ls.selectUI = ui.NewLevelSelectUI(
		ls.run.Levels,
		ls.run.Progress,
		func(index int) { ls.next = func() { ls.startLevel(index) } },
		func() {
			ls.next = func() { ls.sceneChanger.ChangeScene(NewMenuScene(ls.sceneChanger, ls.run)) }
		},
	)
}

// startLevel plays a single level; finishing it comes back here instead of
// advancing.
func (ls *LevelSelectScene) startLevel(index int) {
	p := ls.run.Progress
	if index > p.LastAccessibleLevel {
		return
	}
	p.TargetLevel = index
	p.FromLevelSelect = true
	ls.sceneChanger.ChangeScene(NewWorldScene(ls.sceneChanger, ls.run))
}
