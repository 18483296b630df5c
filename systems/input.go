package systems

import (
	"github.com/automoto/doorkey/components"
	cfg "github.com/automoto/doorkey/config"
	"github.com/automoto/doorkey/logging"
	"github.com/automoto/doorkey/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slices to avoid allocations
var (
	pressedKeys  []ebiten.Key
	releasedKeys []ebiten.Key
)

// UpdateInput forwards this frame's key transitions to HandleInput.
// Must run BEFORE UpdatePlayer in the system order.
func UpdateInput(ecs *ecs.ECS) {
	pressedKeys = inpututil.AppendJustPressedKeys(pressedKeys[:0])
	releasedKeys = inpututil.AppendJustReleasedKeys(releasedKeys[:0])

	for _, key := range pressedKeys {
		HandleInput(ecs, key.String(), true)
	}
	for _, key := range releasedKeys {
		HandleInput(ecs, key.String(), false)
	}
}

// HandleInput applies one physical key transition. Codes with no binding are
// ignored.
func HandleInput(ecs *ecs.ECS, code string, isDown bool) {
	controlsEntry, ok := components.Controls.First(ecs.World)
	if !ok {
		return
	}
	action := components.Controls.Get(controlsEntry).Mapping.Lookup(code)

	switch action {
	case cfg.ActionQuit:
		if isDown {
			if level := GetLevel(ecs); level != nil {
				level.Quit = true
			}
		}
	case cfg.ActionReloadLevel:
		if isDown {
			RequestReload(ecs)
		}
	case cfg.ActionToggleColliders:
		if isDown {
			cfg.Debug.ShowColliders = !cfg.Debug.ShowColliders
		}
	case cfg.ActionMoveUp, cfg.ActionMoveRight, cfg.ActionMoveLeft:
		setMovementFlag(ecs, action, isDown)
	default:
		logging.New("input").Debug("unbound key", "code", code, "down", isDown)
	}
}

func setMovementFlag(ecs *ecs.ECS, action cfg.ActionID, isDown bool) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)

	switch action {
	case cfg.ActionMoveUp:
		player.Up = isDown
	case cfg.ActionMoveRight:
		player.Right = isDown
	case cfg.ActionMoveLeft:
		player.Left = isDown
	}
}
