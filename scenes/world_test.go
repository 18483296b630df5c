package scenes

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/automoto/doorkey/components"
	cfg "github.com/automoto/doorkey/config"
	"github.com/automoto/doorkey/logging"
	"github.com/automoto/doorkey/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

const levelOne = `{
  "elements": [
    {"type": "player", "coordinates": {"x": 20, "y": 20}},
    {"type": "rect", "coordinates": {"x1": 0, "y1": 100, "x2": 200, "y2": 120}, "function": "wall", "id": "floor"},
    {"type": "rect", "coordinates": {"x1": 150, "y1": 60, "x2": 170, "y2": 100}, "function": "door", "levelIndex": "2", "id": "exit"}
  ]
}`

const levelTwo = `{
  "elements": [
    {"type": "player", "coordinates": {"x": 20, "y": 20}},
    {"type": "rect", "coordinates": {"x1": 0, "y1": 100, "x2": 200, "y2": 120}, "function": "wall", "id": "ground"}
  ]
}`

const levelBroken = `{"elements": []}`

func testLevels() fstest.MapFS {
	return fstest.MapFS{
		"1.json": {Data: []byte(levelOne)},
		"2.json": {Data: []byte(levelTwo)},
		"9.json": {Data: []byte(levelBroken)},
	}
}

func newTestScene(t *testing.T) *LevelScene {
	t.Helper()
	ls := NewLevelScene(testLevels(), cfg.MustMapping(cfg.DefaultSettings), "1")
	if err := ls.Load("1"); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return ls
}

func TestLevelSceneTransition(t *testing.T) {
	ls := newTestScene(t)
	first := ls.ECS()

	if err := systems.EnterDoor(first, nil, systems.GetLevel(first).Objects["exit"].Entry); err != nil {
		t.Fatalf("EnterDoor: %v", err)
	}
	if err := ls.advance(); err != nil {
		t.Fatalf("advance: %v", err)
	}

	if ls.Index() != "2" {
		t.Fatalf("index: got %q, want 2", ls.Index())
	}
	if ls.ECS() == first {
		t.Fatal("transition should build a new world")
	}
	level := systems.GetLevel(ls.ECS())
	if _, ok := level.Objects["ground"]; !ok {
		t.Error("new level tables not populated")
	}
	if _, ok := level.Objects["exit"]; ok {
		t.Error("old level objects leaked into the new level")
	}
	if level.Next != nil {
		t.Error("new level starts with a pending transition")
	}
}

func TestLevelSceneReloadRebuilds(t *testing.T) {
	ls := newTestScene(t)
	first := ls.ECS()

	systems.RequestReload(first)
	if err := ls.advance(); err != nil {
		t.Fatalf("advance: %v", err)
	}
	if ls.Index() != "1" || ls.ECS() == first {
		t.Fatalf("reload: index %q, same world %v", ls.Index(), ls.ECS() == first)
	}
}

func TestLevelSceneFailedLoadKeepsWorld(t *testing.T) {
	ls := newTestScene(t)
	first := ls.ECS()

	systems.GetLevel(first).Next = nil
	if err := ls.Load("9"); err == nil {
		t.Fatal("expected an error for a level without a player")
	}
	if err := ls.Load("404"); err == nil {
		t.Fatal("expected an error for a missing level")
	}
	if ls.ECS() != first || ls.Index() != "1" {
		t.Fatal("failed load replaced the running level")
	}
}

func TestLevelSceneStops(t *testing.T) {
	t.Run("quit", func(t *testing.T) {
		ls := newTestScene(t)
		systems.HandleInput(ls.ECS(), "Escape", true)
		if err := ls.advance(); !errors.Is(err, ebiten.Termination) {
			t.Fatalf("got %v, want ebiten.Termination", err)
		}
	})
	t.Run("fault", func(t *testing.T) {
		ls := newTestScene(t)
		systems.GetLevel(ls.ECS()).Fault = systems.ErrNoRule
		if err := ls.advance(); !errors.Is(err, systems.ErrNoRule) {
			t.Fatalf("got %v, want ErrNoRule", err)
		}
	})
}

func TestLevelSceneLogsFailedProgressSave(t *testing.T) {
	var buf bytes.Buffer
	logging.Setup(&buf, "text", "warn")
	t.Cleanup(func() { logging.Setup(os.Stderr, "text", "info") })

	ls := newTestScene(t)
	var saved []string
	ls.saveProgress = func(index string) error {
		saved = append(saved, index)
		return errors.New("disk full")
	}

	systems.GetLevel(ls.ECS()).Next = &components.Transition{Index: "2"}
	if err := ls.advance(); err != nil {
		t.Fatalf("a failed save must not stop the game: %v", err)
	}
	if ls.Index() != "2" {
		t.Fatalf("index: got %q, want 2", ls.Index())
	}
	if len(saved) != 1 || saved[0] != "2" {
		t.Errorf("saved: %v", saved)
	}
	if out := buf.String(); !strings.Contains(out, "progress not saved") || !strings.Contains(out, "disk full") {
		t.Errorf("warning not logged: %q", out)
	}
}

func TestLevelSceneReloadDoesNotSave(t *testing.T) {
	ls := newTestScene(t)
	ls.saveProgress = func(index string) error {
		t.Errorf("reload saved progress for %q", index)
		return nil
	}
	systems.RequestReload(ls.ECS())
	if err := ls.advance(); err != nil {
		t.Fatalf("advance: %v", err)
	}
}
