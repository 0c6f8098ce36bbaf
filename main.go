package main

import (
	"flag"
	"image"
	"log"
	"os"

	"github.com/automoto/loopjump/assets"
	"github.com/automoto/loopjump/config"
	"github.com/automoto/loopjump/fonts"
	"github.com/automoto/loopjump/scenes"
	"github.com/automoto/loopjump/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
	quit   bool
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

// Quit ends the game after the current update
func (g *Game) Quit() {
	g.quit = true
}

func NewGame(run *scenes.Run) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		run.Progress.TargetLevel = config.Debug.StartLevel
		g.scene = scenes.NewWorldScene(g, run)
	} else {
		g.scene = scenes.NewMenuScene(g, run)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	if g.quit {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	flag.BoolVar(&config.Debug.SkipMenu, "skipmenu", false, "Skip the menu and start playing")
	flag.IntVar(&config.Debug.StartLevel, "level", 0, "Level index to start at with -skipmenu")
	flag.StringVar(&config.Debug.TuningPath, "tuning", "", "YAML tuning file, reloaded on save")
	flag.BoolVar(&config.Debug.Verbose, "debug", false, "Log player state changes and pickups")
	flag.BoolVar(&config.Debug.AllowSkip, "allowskip", false, "Let N skip the current level")
	flag.BoolVar(&config.Debug.DrawHitboxes, "hitboxes", false, "Draw colliders")
	levelsDir := flag.String("levels", "", "Directory holding levels/levels.yaml, used instead of the embedded levels")
	flag.Parse()

	if err := fonts.LoadDefaults(config.HUD.FontSize); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	loader := assets.NewLevelLoader()
	if *levelsDir != "" {
		loader = assets.NewLevelLoaderFS(os.DirFS(*levelsDir))
	}
	levels, err := loader.Levels()
	if err != nil {
		log.Fatalf("Failed to load levels: %v", err)
	}

	// Initialize persistence and load saved progress
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	saved, err := systems.LoadProgress()
	if err != nil {
		log.Printf("Warning: Could not load progress: %v", err)
	}
	run := scenes.NewRun(levels, saved)

	if path := config.Debug.TuningPath; path != "" {
		if err := config.LoadTuning(path); err != nil {
			log.Printf("Warning: %v", err)
		}
		watcher, err := config.WatchTuning(path)
		if err != nil {
			log.Printf("Warning: Could not watch tuning file: %v", err)
		} else {
			defer watcher.Close()
			run.Tuning = watcher
		}
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle(config.C.AppName)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(NewGame(run)); err != nil {
		log.Fatal(err)
	}
}
