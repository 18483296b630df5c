package systems

import (
	"testing"

	"github.com/automoto/doorkey/components"
	cfg "github.com/automoto/doorkey/config"
	"github.com/automoto/doorkey/tags"
)

func TestHandleInputMovementFlags(t *testing.T) {
	w, _ := loadTestLevel(t, keyDoorLevel())
	entry, _ := tags.Player.First(w.World)
	player := components.Player.Get(entry)

	tests := []struct {
		code   string
		isDown bool
		flag   func() bool
		want   bool
	}{
		{"ArrowRight", true, func() bool { return player.Right }, true},
		{"ArrowRight", false, func() bool { return player.Right }, false},
		{"A", true, func() bool { return player.Left }, true},
		{"W", true, func() bool { return player.Up }, true},
		{"Space", false, func() bool { return player.Up }, false},
		// Down has no logical action.
		{"ArrowDown", true, func() bool { return player.Down }, false},
		{"S", true, func() bool { return player.Down }, false},
	}
	for _, tt := range tests {
		HandleInput(w, tt.code, tt.isDown)
		if got := tt.flag(); got != tt.want {
			t.Errorf("%s down=%v: got %v, want %v", tt.code, tt.isDown, got, tt.want)
		}
	}
}

func TestHandleInputQuit(t *testing.T) {
	w, level := loadTestLevel(t, keyDoorLevel())

	HandleInput(w, "Escape", false)
	if level.Quit {
		t.Fatal("release must not quit")
	}
	HandleInput(w, "Escape", true)
	if !level.Quit {
		t.Fatal("quit not requested")
	}
}

func TestHandleInputReload(t *testing.T) {
	w, level := loadTestLevel(t, keyDoorLevel())

	HandleInput(w, "R", true)
	if level.Next == nil || level.Next.Index != level.Index {
		t.Fatalf("reload: next %+v", level.Next)
	}
}

func TestHandleInputToggleColliders(t *testing.T) {
	w, _ := loadTestLevel(t, keyDoorLevel())
	saved := cfg.Debug.ShowColliders
	t.Cleanup(func() { cfg.Debug.ShowColliders = saved })

	HandleInput(w, "F1", true)
	if cfg.Debug.ShowColliders == saved {
		t.Fatal("F1 did not toggle colliders")
	}
	HandleInput(w, "F1", false)
	if cfg.Debug.ShowColliders == saved {
		t.Fatal("release must not toggle")
	}
}

func TestHandleInputUnboundCode(t *testing.T) {
	w, level := loadTestLevel(t, keyDoorLevel())
	HandleInput(w, "Z", true)
	if level.Quit || level.Next != nil {
		t.Fatalf("unbound key changed level state: %+v", level)
	}
}
