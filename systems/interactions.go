package systems

import (
	"errors"
	"fmt"

	"github.com/automoto/doorkey/components"
	"github.com/automoto/doorkey/logging"
	"github.com/automoto/doorkey/shared/gamemath"
	"github.com/automoto/doorkey/shared/leveldata"
	"github.com/automoto/doorkey/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	ErrNoRule   = errors.New("collectible has no interaction rule")
	ErrNoLevel  = errors.New("no level loaded")
	ErrNoTarget = errors.New("interaction target is not in the level")
	ErrNotAKey  = errors.New("entity is not a key")
)

// CollectKey consumes a key the player touched and applies its rule. The key
// is destroyed first, so a second contact in the same tick finds an invalid
// entry and does nothing.
func CollectKey(ecs *ecs.ECS, player, key *donburi.Entry) error {
	if key == nil || !key.Valid() {
		return nil
	}
	if !key.HasComponent(components.Key) {
		return ErrNotAKey
	}

	level := GetLevel(ecs)
	if level == nil {
		return ErrNoLevel
	}

	id := components.Key.Get(key).ID
	rule, ok := level.Interactions[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNoRule, id)
	}
	target, ok := level.Objects[rule.Target]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNoTarget, rule.Target)
	}

	destroy(ecs, key)

	// The target was itself consumed earlier; the key still goes.
	if !target.Live() {
		logging.New("interactions").Debug("key target already gone",
			"key", id,
			"target", rule.Target,
		)
		return nil
	}

	switch rule.Action {
	case leveldata.ActionEnable:
		factory.Activate(ecs, target.Entry, gamemath.ClampAlpha(leveldata.Authored(target.Description)))
	case leveldata.ActionDisable:
		factory.Deactivate(ecs, target.Entry)
	}

	logging.New("interactions").Debug("key collected",
		"key", id,
		"target", rule.Target,
		"action", rule.Action.String(),
	)
	return nil
}

// CollectKeyByID triggers a key by its element id. Keys already consumed are
// ignored.
func CollectKeyByID(ecs *ecs.ECS, id string) error {
	level := GetLevel(ecs)
	if level == nil {
		return ErrNoLevel
	}
	entry, ok := level.Objects[id]
	if !ok || !entry.Live() {
		return nil
	}
	return CollectKey(ecs, nil, entry.Entry)
}

// EnterDoor asks the scene to replace the level with the door's target.
func EnterDoor(ecs *ecs.ECS, player, door *donburi.Entry) error {
	level := GetLevel(ecs)
	if level == nil {
		return ErrNoLevel
	}
	if level.Next != nil {
		return nil
	}

	index := components.Door.Get(door).LevelIndex
	if index == "" {
		index = level.Index
	}
	level.Next = &components.Transition{Index: index}

	logging.New("interactions").Info("door entered", "from", level.Index, "to", index)
	return nil
}

// RequestReload asks the scene to rebuild the current level.
func RequestReload(ecs *ecs.ECS) {
	level := GetLevel(ecs)
	if level == nil || level.Next != nil {
		return
	}
	level.Next = &components.Transition{Index: level.Index}
}

func destroy(ecs *ecs.ECS, entry *donburi.Entry) {
	if obj := components.Object.Get(entry); obj.Object != nil && obj.Space != nil {
		obj.Space.Remove(obj.Object)
	}
	ecs.World.Remove(entry.Entity())
}
