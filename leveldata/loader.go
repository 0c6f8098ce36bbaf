package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"strconv"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Layer and object group names recognised in level files.
const (
	LayerSolid   = "solid"
	LayerHazards = "hazards"

	GroupPlayer = "player"
	GroupGoal   = "goal"
)

// ObjectGroups lists the interactable groups the loader keeps.
var ObjectGroups = []string{
	"keys", "doors", "levers", "platforms",
	"doublejumps", "walljumps", "jumptokens", "signs",
}

var (
	ErrNoPlayer       = errors.New("level has no player marker")
	ErrManyPlayers    = errors.New("level has more than one player marker")
	ErrNoGoal         = errors.New("level has no goal")
	ErrManyGoals      = errors.New("level has more than one goal")
	ErrEmptyLevelSize = errors.New("level has zero size")
)

// Load parses a TMX file. It takes an fs.FS so callers can pass embed.FS
// or os.DirFS.
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	lvl := &Level{
		Width:    float64(levelMap.Width) * tileW,
		Height:   float64(levelMap.Height) * tileH,
		TileSize: tileW,
	}
	if lvl.Width <= 0 || lvl.Height <= 0 {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrEmptyLevelSize)
	}

	for _, layer := range levelMap.Layers {
		switch strings.ToLower(layer.Name) {
		case LayerSolid:
			lvl.Solids = append(lvl.Solids, tileRuns(levelMap, layer, lvl.Height)...)
		case LayerHazards:
			lvl.Hazards = append(lvl.Hazards, tileRuns(levelMap, layer, lvl.Height)...)
		}
	}

	var players, goals int
	for _, og := range levelMap.ObjectGroups {
		group := strings.ToLower(og.Name)
		for _, o := range og.Objects {
			bounds := objectBounds(o, lvl.Height, tileW, tileH)
			switch group {
			case GroupPlayer:
				players++
				lvl.PlayerSpawn = bounds
			case GroupGoal:
				goals++
				lvl.Goal = bounds
			default:
				if !knownGroup(group) {
					log.Printf("Warning: %s: ignoring object group %q", tmxPath, og.Name)
					continue
				}
				lvl.Objects = append(lvl.Objects, Object{
					Class:  group,
					Bounds: bounds,
					ID:     o.Properties.GetInt("id"),
					Text:   o.Properties.GetString("text"),
					Active: parseBool(o.Properties.GetString("active"), group == "platforms"),
				})
			}
		}
	}

	switch {
	case players == 0:
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoPlayer)
	case players > 1:
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrManyPlayers)
	case goals == 0:
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoGoal)
	case goals > 1:
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrManyGoals)
	}

	return lvl, nil
}

// tileRuns merges each row's consecutive non-empty tiles into one rectangle.
func tileRuns(m *tiled.Map, layer *tiled.Layer, levelHeight float64) []Rect {
	tileW := float64(m.TileWidth)
	tileH := float64(m.TileHeight)

	var rects []Rect
	for y := 0; y < m.Height; y++ {
		start := -1
		flush := func(end int) {
			if start < 0 {
				return
			}
			rects = append(rects, Rect{
				X: float64(start) * tileW,
				Y: levelHeight - float64(y+1)*tileH,
				W: float64(end-start) * tileW,
				H: tileH,
			})
			start = -1
		}
		for x := 0; x < m.Width; x++ {
			idx := y*m.Width + x
			if idx >= len(layer.Tiles) || layer.Tiles[idx].IsNil() {
				flush(x)
				continue
			}
			if start < 0 {
				start = x
			}
		}
		flush(m.Width)
	}
	return rects
}

// objectBounds converts a TMX object to a Y-up rectangle. Point objects get
// a one-tile box centred on the point.
func objectBounds(o *tiled.Object, levelHeight, tileW, tileH float64) Rect {
	w, h := o.Width, o.Height
	x, y := o.X, o.Y
	if w == 0 || h == 0 {
		w, h = tileW, tileH
		x -= w / 2
		y -= h / 2
	}
	return Rect{X: x, Y: levelHeight - y - h, W: w, H: h}
}

func knownGroup(name string) bool {
	for _, g := range ObjectGroups {
		if g == name {
			return true
		}
	}
	return false
}

func parseBool(s string, fallback bool) bool {
	if s == "" {
		return fallback
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return fallback
	}
	return v
}
