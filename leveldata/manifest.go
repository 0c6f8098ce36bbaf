package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path"

	"gopkg.in/yaml.v3"
)

// ManifestEntry names one level in play order.
type ManifestEntry struct {
	File string `yaml:"file"`
	Name string `yaml:"name"`
}

type manifest struct {
	Levels []ManifestEntry `yaml:"levels"`
}

// LoadManifest reads the ordered level list from a YAML file.
func LoadManifest(fsys fs.FS, manifestPath string) ([]ManifestEntry, error) {
	data, err := fs.ReadFile(fsys, manifestPath)
	if err != nil {
		return nil, fmt.Errorf("leveldata: read %s: %w", manifestPath, err)
	}

	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("leveldata: unmarshal %s: %w", manifestPath, err)
	}
	if len(m.Levels) == 0 {
		return nil, errors.New("leveldata: manifest lists no levels")
	}

	dir := path.Dir(manifestPath)
	for i := range m.Levels {
		if m.Levels[i].File == "" {
			return nil, fmt.Errorf("leveldata: level %d has no file", i)
		}
		m.Levels[i].File = path.Join(dir, m.Levels[i].File)
		if m.Levels[i].Name == "" {
			m.Levels[i].Name = fmt.Sprintf("Level %d", i+1)
		}
	}
	return m.Levels, nil
}

// LoadAll loads every level in the manifest, in order.
func LoadAll(fsys fs.FS, manifestPath string) ([]*Level, error) {
	entries, err := LoadManifest(fsys, manifestPath)
	if err != nil {
		return nil, err
	}

	levels := make([]*Level, 0, len(entries))
	for _, e := range entries {
		lvl, err := Load(fsys, e.File)
		if err != nil {
			return nil, err
		}
		lvl.Name = e.Name
		levels = append(levels, lvl)
	}
	return levels, nil
}
