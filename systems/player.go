package systems

import (
	"github.com/automoto/doorkey/components"
	"github.com/automoto/doorkey/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdatePlayer(ecs *ecs.ECS) {
	components.Player.Each(ecs.World, func(playerEntry *donburi.Entry) {
		MovePlayer(playerEntry)
	})
}

// MovePlayer turns the movement flags into velocity. A nil or removed entry
// (the level is being torn down) makes the call a no-op.
func MovePlayer(playerEntry *donburi.Entry) {
	if playerEntry == nil || !playerEntry.Valid() {
		return
	}
	if !playerEntry.HasComponent(components.Player) || !playerEntry.HasComponent(components.Physics) {
		return
	}

	player := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)

	dirX, dirY := gamemath.Direction(player.Up, player.Right, player.Down, player.Left)
	physics.SpeedX = dirX * player.MoveSpeed

	// Negative y is up.
	if dirY < 0 && physics.OnGround != nil {
		physics.SpeedY = -player.JumpForce
	}
}
