package assets

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/automoto/loopjump/leveldata"
)

const ManifestPath = "levels/levels.yaml"

var (
	//go:embed all:levels
	assetFS embed.FS
)

type LevelLoader struct {
	fsys   fs.FS
	levels []*leveldata.Level
}

func NewLevelLoader() *LevelLoader {
	return &LevelLoader{fsys: assetFS}
}

// NewLevelLoaderFS loads levels from another filesystem, e.g. os.DirFS for
// editing levels without rebuilding.
func NewLevelLoaderFS(fsys fs.FS) *LevelLoader {
	return &LevelLoader{fsys: fsys}
}

// Levels loads the manifest on first use and returns every level in order.
func (l *LevelLoader) Levels() ([]*leveldata.Level, error) {
	if l.levels != nil {
		return l.levels, nil
	}
	levels, err := leveldata.LoadAll(l.fsys, ManifestPath)
	if err != nil {
		return nil, fmt.Errorf("assets: %w", err)
	}
	l.levels = levels
	return levels, nil
}
