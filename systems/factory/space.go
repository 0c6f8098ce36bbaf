package factory

import (
	cfg "github.com/automoto/loopjump/config"
	"github.com/solarlune/resolv"
)

// spaceMargin is extra room above the level so jumps near the ceiling
// still register in the spatial hash.
const spaceMargin = 8

func CreateSpace(width, height float64) *resolv.Space {
	cell := cfg.Physics.CellSize
	return resolv.NewSpace(int(width)+cell, int(height)+spaceMargin*cell, cell, cell)
}
