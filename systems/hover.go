package systems

import (
	"github.com/automoto/doorkey/components"
	cfg "github.com/automoto/doorkey/config"
	"github.com/automoto/doorkey/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHover advances each key's bob, flipping direction at either end.
func UpdateHover(ecs *ecs.ECS) {
	dt := float32(1) / float32(cfg.C.TPS)
	components.Hover.Each(ecs.World, func(e *donburi.Entry) {
		hover := components.Hover.Get(e)
		if hover.Tween == nil {
			return
		}

		value, finished := hover.Tween.Update(dt)
		hover.Offset = float64(value)
		if !finished {
			return
		}

		hover.Rising = !hover.Rising
		if hover.Rising {
			hover.Tween = factory.NewHover(0, -cfg.Key.HoverDistance)
		} else {
			hover.Tween = factory.NewHover(-cfg.Key.HoverDistance, 0)
		}
	})
}
