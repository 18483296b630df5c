package systems

import (
	"github.com/automoto/doorkey/components"
	"github.com/automoto/doorkey/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdatePhysics(ecs *ecs.ECS) {
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		physics.SpeedY = gamemath.ApplyGravity(physics.SpeedY, physics.Gravity, physics.MaxFall)
	})
}
