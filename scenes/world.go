package scenes

import (
	"fmt"
	"image/color"
	"io/fs"

	"github.com/automoto/doorkey/assets"
	cfg "github.com/automoto/doorkey/config"
	"github.com/automoto/doorkey/logging"
	"github.com/automoto/doorkey/shared/leveldata"
	"github.com/automoto/doorkey/systems"
	"github.com/automoto/doorkey/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LevelScene runs one level at a time. Entering a door or reloading tears
// the world down and builds a new one for the requested index.
type LevelScene struct {
	ecs     *ecs.ECS
	levels  fs.FS
	mapping cfg.Mapping
	index   string
	watcher *systems.LevelWatcher

	saveProgress func(index string) error
}

// NewLevelScene creates a scene that starts at index. The level is built on
// the first Update.
func NewLevelScene(levels fs.FS, mapping cfg.Mapping, index string) *LevelScene {
	return &LevelScene{
		levels:       levels,
		mapping:      mapping,
		index:        index,
		saveProgress: systems.SaveProgress,
	}
}

// WithWatcher reloads the current level whenever its file changes.
func (ls *LevelScene) WithWatcher(w *systems.LevelWatcher) *LevelScene {
	ls.watcher = w
	return ls
}

// Index is the level currently running.
func (ls *LevelScene) Index() string {
	return ls.index
}

// ECS exposes the current world, nil before the first load.
func (ls *LevelScene) ECS() *ecs.ECS {
	return ls.ecs
}

func (ls *LevelScene) Update() error {
	if ls.ecs == nil {
		if err := ls.Load(ls.index); err != nil {
			return err
		}
	}

	if ls.watcher != nil {
		if index, ok := ls.watcher.Poll(); ok && index == ls.index {
			logging.New("scene").Info("level file changed", "index", index)
			systems.RequestReload(ls.ecs)
			return ls.advance()
		}
	}

	ls.ecs.Update()
	return ls.advance()
}

// advance acts on what the last tick asked for: stop on a fault, quit, or
// replace the level.
func (ls *LevelScene) advance() error {
	level := systems.GetLevel(ls.ecs)
	if level == nil {
		return fmt.Errorf("level %s: %w", ls.index, systems.ErrNoLevel)
	}

	switch {
	case level.Fault != nil:
		return fmt.Errorf("level %s: %w", ls.index, level.Fault)
	case level.Quit:
		return ebiten.Termination
	case level.Next != nil:
		next := level.Next.Index
		if next != ls.index {
			if err := ls.saveProgress(next); err != nil {
				logging.New("scene").Warn("progress not saved", "level", next, "error", err)
			}
		}
		return ls.Load(next)
	}
	return nil
}

// Load builds a fresh world for index and swaps it in. On error the previous
// world is left as it was.
func (ls *LevelScene) Load(index string) error {
	desc, err := leveldata.Load(ls.levels, index)
	if err != nil {
		return err
	}

	world := ecs.NewECS(donburi.NewWorld())

	world.AddSystem(systems.UpdateInput)
	world.AddSystem(systems.UpdatePlayer)
	world.AddSystem(systems.UpdatePhysics)
	world.AddSystem(systems.UpdateCollisions)
	world.AddSystem(systems.UpdateHover)

	world.AddRenderer(cfg.Default, systems.DrawObjects)
	world.AddRenderer(cfg.Default, systems.DrawColliders)
	world.AddRenderer(cfg.Default, systems.DrawHUD)

	factory.CreateControls(world, ls.mapping)
	if _, err := systems.LoadLevel(world, index, desc, assets.NewRegistry(ls.levels)); err != nil {
		return err
	}

	ls.ecs = world
	ls.index = index
	return nil
}

func (ls *LevelScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ls.ecs == nil {
		return
	}
	ls.ecs.Draw(screen)
}
