package render

import (
	"image"
	"image/color"
	"math/rand"

	"github.com/automoto/loopjump/components"
	cfg "github.com/automoto/loopjump/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	playerSheet  *ebiten.Image
	cachedFrames = map[int]*ebiten.Image{}
)

// playerFrame returns one frame of the player sheet, slicing and caching it
// on first use.
func playerFrame(frame int) *ebiten.Image {
	if playerSheet == nil {
		playerSheet = buildPlayerSheet()
	}
	if img, ok := cachedFrames[frame]; ok {
		return img
	}
	fw, fh := cfg.Player.FrameWidth, cfg.Player.FrameHeight
	sx := frame * fw
	img := playerSheet.SubImage(image.Rect(sx, 0, sx+fw, fh)).(*ebiten.Image)
	cachedFrames[frame] = img
	return img
}

// buildPlayerSheet draws a placeholder sheet with one squash-and-stretch
// pose per frame so each state reads differently on screen.
func buildPlayerSheet() *ebiten.Image {
	fw, fh := cfg.Player.FrameWidth, cfg.Player.FrameHeight
	sheet := ebiten.NewImage(fw*cfg.PlayerSheetFrames, fh)

	for i := 0; i < cfg.PlayerSheetFrames; i++ {
		w, h := 10.0, 12.0
		switch {
		case i <= 2: // take-off
			w, h = 8, 14
		case i <= 5: // falling
			w, h = 9, 13
		case i <= 9: // landing squash
			w, h = 12, 9+float64(i-6)
		case i >= 14 && i <= 16: // wall slide
			w, h = 8, 13
		case i >= 17:
			w, h = 11, 11
		}
		x := float64(i*fw) + (float64(fw)-w)/2
		y := float64(fh) - h
		vector.FillRect(sheet, float32(x), float32(y), float32(w), float32(h), cfg.PlayerBody, false)
		// Eye on the right edge; the renderer mirrors it for left-facing.
		vector.FillRect(sheet, float32(x+w-3), float32(y+2), 2, 2, cfg.PlayerAccent, false)
		if i >= movingFrameStart && i <= movingFrameStart+3 {
			stride := float32(i-movingFrameStart) - 1.5
			vector.FillRect(sheet, float32(x)+float32(w)/2+stride, float32(fh)-2, 2, 2, cfg.PlayerAccent, false)
		}
	}
	return sheet
}

const movingFrameStart = 10

type sceneryRect struct {
	X, Y, W, H float64
	Color      color.Color
}

// generateScenery builds the hills for the midground and background
// layers. Each level gets its own seed so levels look different but stable.
func generateScenery(levelIndex int, width float64) map[components.CameraKind][]sceneryRect {
	rng := rand.New(rand.NewSource(int64(levelIndex) + 1))
	out := map[components.CameraKind][]sceneryRect{}

	layers := []struct {
		kind     components.CameraKind
		coef     float64
		minH     float64
		maxH     float64
		clr      color.Color
		colWidth float64
	}{
		{components.CameraBackground, cfg.Camera.BackgroundCoefficient, 40, 110, cfg.FarHills, 48},
		{components.CameraMidground, cfg.Camera.MidgroundCoefficient, 20, 70, cfg.Hills, 32},
	}
	for _, l := range layers {
		// Hills rise from the bottom edge of the screen as seen by a camera
		// resting on its floor clamp.
		bottom := cfg.Camera.VisibleHeight / 2 * (l.coef - 1)
		h := l.minH + rng.Float64()*(l.maxH-l.minH)
		for x := 0.0; x < width; x += l.colWidth {
			h = clamp(h+(rng.Float64()-0.5)*24, l.minH, l.maxH)
			out[l.kind] = append(out[l.kind], sceneryRect{
				X: x, Y: bottom, W: l.colWidth, H: h,
				Color: l.clr,
			})
		}
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

var iconImages = map[int]*ebiten.Image{}

// iconImage returns a small square icon in the given colour.
func iconImage(key int, clr color.Color) *ebiten.Image {
	if img, ok := iconImages[key]; ok {
		return img
	}
	size := int(cfg.HUD.IconSize)
	img := ebiten.NewImage(size, size)
	img.Fill(clr)
	vector.StrokeRect(img, 0.5, 0.5, float32(size)-1, float32(size)-1, 1, cfg.Black, false)
	iconImages[key] = img
	return img
}
