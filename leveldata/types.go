// Package leveldata parses TMX levels into plain geometry.
// It has no dependencies on ebitengine, donburi, or resolv. Pure data only.
//
// World coordinates are Y-up with the floor at y=0; TMX files are Y-down and
// are flipped while loading.
package leveldata

// Rect is an axis-aligned box given by its bottom-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Center returns the middle of the rectangle.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Object is an entity marker from one of the level's object groups.
type Object struct {
	Class  string // object group name, e.g. "keys", "levers"
	Bounds Rect
	ID     int    // links levers to platforms
	Text   string // sign text
	Active bool   // initial state for platforms
}

// Level holds everything the factory needs to build a session.
type Level struct {
	Name     string
	Width    float64
	Height   float64
	TileSize float64

	Solids  []Rect
	Hazards []Rect

	PlayerSpawn Rect
	Goal        Rect
	Objects     []Object
}
