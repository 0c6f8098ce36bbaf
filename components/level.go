package components

import "github.com/yohamta/donburi"

// LevelData is the geometry of the active level.
type LevelData struct {
	Index  int
	Name   string
	Width  float64
	Height float64
}

var Level = donburi.NewComponentType[LevelData]()
