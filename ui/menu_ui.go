package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/automoto/loopjump/leveldata"
	"github.com/automoto/loopjump/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// levelsPerRow is how many level buttons the level select grid fits on a
// 640x360 screen.
const levelsPerRow = 5

// MenuUI holds one ebitenui page: the main menu, level select or end screen
type MenuUI struct {
	UI *ebitenui.UI

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func newMenuUI() *MenuUI {
	mui := &MenuUI{}
	mui.loadFonts()
	return mui
}

// NewMainMenuUI builds the title page with Play, Level Select and Quit.
func NewMainMenuUI(onPlay, onLevelSelect, onQuit func()) *MenuUI {
	mui := newMenuUI()
	content := mui.buildPage("LOOPJUMP")

	content.AddChild(mui.button("Play", 140, onPlay))
	content.AddChild(mui.button("Level Select", 140, onLevelSelect))
	content.AddChild(mui.button("Quit", 140, onQuit))

	content.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Arrows/WASD move, Space jumps, E interacts, R restarts", &mui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{150, 150, 170, 255},
		}),
	))
	return mui
}

// NewLevelSelectUI builds a button per unlocked level. Levels past
// progress.LastAccessibleLevel are shown disabled.
func NewLevelSelectUI(levels []*leveldata.Level, progress *systems.Progress, onPick func(index int), onBack func()) *MenuUI {
	mui := newMenuUI()
	content := mui.buildPage("SELECT LEVEL")

	grid := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewGridLayout(
			widget.GridLayoutOpts.Columns(levelsPerRow),
			widget.GridLayoutOpts.Spacing(4, 4),
		)),
	)
	for i, level := range levels {
		idx := i // Capture for closure
		label := fmt.Sprintf("%d", i+1)
		if level.Name != "" {
			label = fmt.Sprintf("%d. %s", i+1, level.Name)
		}
		btn := mui.button(label, 100, func() { onPick(idx) })
		btn.GetWidget().Disabled = progress != nil && i > progress.LastAccessibleLevel
		grid.AddChild(btn)
	}
	content.AddChild(grid)

	content.AddChild(mui.button("Back", 100, onBack))
	return mui
}

// NewEndScreenUI builds the page shown after the last level.
func NewEndScreenUI(onContinue func()) *MenuUI {
	mui := newMenuUI()
	content := mui.buildPage("THE END")

	content.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Thanks for playing!", &mui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{220, 220, 230, 255},
		}),
	))
	content.AddChild(mui.button("Main Menu", 140, onContinue))
	return mui
}

func (mui *MenuUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	// Smaller fonts to fit 640x360 screen
	mui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   24,
	}
	mui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   12,
	}
	mui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   10,
	}
}

// buildPage creates the root container and returns the centred column that
// page contents are added to.
func (mui *MenuUI) buildPage(title string) *widget.Container {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(title, &mui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	))

	rootContainer.AddChild(contentContainer)
	mui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
	return contentContainer
}

func (mui *MenuUI) button(label string, minWidth int, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(minWidth, 22),
		),
		widget.ButtonOpts.Image(mui.buttonImage()),
		widget.ButtonOpts.Text(label, &mui.normalFace, &widget.ButtonTextColor{
			Idle:     color.RGBA{255, 255, 255, 255},
			Hover:    color.RGBA{255, 255, 200, 255},
			Pressed:  color.RGBA{200, 200, 200, 255},
			Disabled: color.RGBA{100, 100, 100, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if onClick != nil {
				onClick()
			}
		}),
	)
}

func (mui *MenuUI) buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{80, 80, 110, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{35, 35, 45, 255}),
	}
}

// Update calls the UI's Update method
func (mui *MenuUI) Update() {
	mui.UI.Update()
}

func (mui *MenuUI) Draw(screen *ebiten.Image) {
	mui.UI.Draw(screen)
}
