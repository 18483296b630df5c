package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"io/fs"
	"os"
	"slices"

	"github.com/automoto/doorkey/assets"
	"github.com/automoto/doorkey/config"
	"github.com/automoto/doorkey/fonts"
	"github.com/automoto/doorkey/logging"
	"github.com/automoto/doorkey/scenes"
	"github.com/automoto/doorkey/shared/leveldata"
	"github.com/automoto/doorkey/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

const defaultLevel = "1"

type Game struct {
	bounds image.Rectangle
	scene  scenes.Scene
}

func NewGame(scene scenes.Scene) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scene,
	}
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

type options struct {
	levelsDir    string
	startLevel   string
	settingsPath string
	watch        bool
	colliders    bool
	logLevel     string
	logFormat    string
}

func main() {
	var opts options
	flag.StringVar(&opts.levelsDir, "levels", "", "directory holding <index>.json/.tmx levels (default: embedded levels)")
	flag.StringVar(&opts.startLevel, "level", "", "level index to start at (default: saved progress, then "+defaultLevel+")")
	flag.StringVar(&opts.settingsPath, "settings", "settings.yaml", "key bindings file, relative to the levels directory")
	flag.BoolVar(&opts.watch, "watch", false, "reload the current level when its file changes (needs -levels)")
	flag.BoolVar(&opts.colliders, "colliders", false, "start with collision boxes visible")
	flag.StringVar(&opts.logLevel, "log-level", config.Debug.LogLevel, "log level: debug, info, warn, error")
	flag.StringVar(&opts.logFormat, "log-format", "text", "log format: text or json")
	flag.Parse()

	logging.Setup(os.Stderr, opts.logFormat, opts.logLevel)

	if err := run(opts); err != nil {
		logging.New("main").Error("game stopped", "error", err)
		os.Exit(1)
	}
}

// run owns every resource the game opens so deferred cleanup happens before
// main exits.
func run(opts options) error {
	log := logging.New("main")
	config.Debug.LogLevel = opts.logLevel
	config.Debug.ShowColliders = opts.colliders

	levels := assets.Levels()
	if opts.levelsDir != "" {
		levels = os.DirFS(opts.levelsDir)
	}

	settings, err := config.LoadSettings(levels, opts.settingsPath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		log.Info("no settings file, using default bindings", "path", opts.settingsPath)
		settings = config.DefaultSettings
	}
	mapping, err := config.NewMapping(settings)
	if err != nil {
		return fmt.Errorf("key bindings: %w", err)
	}
	for _, id := range mapping.Ignored {
		log.Warn("unknown action in settings", "id", id)
	}
	if mapping.Len() == 0 {
		log.Warn("no keys bound; the level cannot be played or quit from the keyboard")
	}

	if err := fonts.LoadDefaults(config.UI.HUDFontSize); err != nil {
		return err
	}

	// Initialize persistence and resume saved progress
	if err := systems.InitPersistence("doorkey"); err != nil {
		log.Warn("progress will not be saved", "error", err)
	}
	var saved string
	if progress, err := systems.LoadProgress(); err == nil && progress != nil {
		saved = progress.LevelIndex
	}
	index, err := startIndex(levels, opts.startLevel, saved)
	if err != nil {
		return err
	}
	if saved != "" && opts.startLevel == "" && index != saved {
		log.Warn("saved level no longer exists", "saved", saved, "starting", index)
	}

	scene := scenes.NewLevelScene(levels, mapping, index)
	if opts.watch {
		if opts.levelsDir == "" {
			log.Warn("watch mode needs -levels; embedded levels never change")
		} else {
			watcher, err := systems.NewLevelWatcher(opts.levelsDir)
			if err != nil {
				return fmt.Errorf("watch %s: %w", opts.levelsDir, err)
			}
			defer watcher.Close()
			scene.WithWatcher(watcher)
		}
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("doorkey")
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(NewGame(scene)); err != nil {
		return fmt.Errorf("level %s: %w", scene.Index(), err)
	}
	return nil
}

var errNoLevels = errors.New("no levels found")

// startIndex picks the first level to open: an explicit request, then saved
// progress if that level still exists, then the default level, then the
// lowest available index.
func startIndex(levels fs.FS, requested, saved string) (string, error) {
	if requested != "" {
		return requested, nil
	}

	indexes, err := leveldata.Indexes(levels)
	if err != nil {
		return "", err
	}
	if len(indexes) == 0 {
		return "", errNoLevels
	}

	switch {
	case saved != "" && slices.Contains(indexes, saved):
		return saved, nil
	case slices.Contains(indexes, defaultLevel):
		return defaultLevel, nil
	default:
		return indexes[0], nil
	}
}
