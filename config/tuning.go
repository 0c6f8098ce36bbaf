package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"
)

// tuningDoc is the YAML shape of a tuning override file. Sections and
// fields that are absent keep their current values.
type tuningDoc struct {
	Player     PlayerConfig     `yaml:"player"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Camera     CameraConfig     `yaml:"camera"`
	Barrier    BarrierConfig    `yaml:"barrier"`
	Transition TransitionConfig `yaml:"transition"`
	Pickups    PickupConfig     `yaml:"pickups"`
}

// ApplyTuning merges a YAML override document onto the current globals.
// Nothing is changed when the document fails to parse or validate.
func ApplyTuning(data []byte) error {
	doc := tuningDoc{
		Player:     Player,
		Physics:    Physics,
		Camera:     Camera,
		Barrier:    Barrier,
		Transition: Transition,
		Pickups:    Pickups,
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("config: parse tuning: %w", err)
	}
	if err := doc.validate(); err != nil {
		return fmt.Errorf("config: invalid tuning: %w", err)
	}

	Player = doc.Player
	Physics = doc.Physics
	Camera = doc.Camera
	Barrier = doc.Barrier
	Transition = doc.Transition
	Pickups = doc.Pickups
	return nil
}

// LoadTuning reads and applies the override file at path.
func LoadTuning(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read tuning %s: %w", path, err)
	}
	return ApplyTuning(data)
}

func (d *tuningDoc) validate() error {
	var errs []error
	if d.Player.HorizontalDamping <= 1 {
		errs = append(errs, errors.New("player.horizontal_damping must be > 1"))
	}
	if d.Player.Mass <= 0 {
		errs = append(errs, errors.New("player.mass must be > 0"))
	}
	if d.Player.JumpCooldown < 0 || d.Player.WallJumpCooldown < 0 {
		errs = append(errs, errors.New("cooldowns must not be negative"))
	}
	if d.Camera.VisibleHeight <= 0 || d.Camera.VisibleWidth <= 0 {
		errs = append(errs, errors.New("camera visible extents must be > 0"))
	}
	if d.Camera.PanningDivisor < 1 || d.Camera.SettledDivisor < 1 {
		errs = append(errs, errors.New("camera divisors must be >= 1"))
	}
	if d.Physics.CellSize <= 0 {
		errs = append(errs, errors.New("physics.cell_size must be > 0"))
	}
	if d.Transition.DimRate <= 0 {
		errs = append(errs, errors.New("transition.dim_rate must be > 0"))
	}
	return errors.Join(errs...)
}

// TuningWatcher reports writes to a tuning file.
type TuningWatcher struct {
	watcher *fsnotify.Watcher
	path    string
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// WatchTuning watches the directory holding path so editor rename-on-save
// is picked up as well as in-place writes.
func WatchTuning(path string) (*TuningWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, err
	}

	tw := &TuningWatcher{
		watcher: w,
		path:    abs,
		Events:  make(chan string, 4),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go tw.run()
	return tw, nil
}

func (w *TuningWatcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

// tuningSettle is how long the file must stay quiet before a reload, so a
// truncate followed by a write reports once, after the write.
const tuningSettle = 100 * time.Millisecond

func (w *TuningWatcher) run() {
	settle := time.NewTimer(tuningSettle)
	settle.Stop()
	defer settle.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			settle.Reset(tuningSettle)
		case <-settle.C:
			select {
			case w.Events <- w.path:
			default:
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}
