package factory

import (
	"github.com/automoto/doorkey/archetypes"
	"github.com/automoto/doorkey/components"
	cfg "github.com/automoto/doorkey/config"
	"github.com/automoto/doorkey/shared/gamemath"
	"github.com/automoto/doorkey/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player centered on (x, y).
func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w, h := cfg.Player.CollisionWidth, cfg.Player.CollisionHeight
	obj := resolv.NewObject(x-w/2, y-h/2, w, h, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = player

	components.Object.SetValue(player, components.ObjectData{Object: obj})
	components.Player.SetValue(player, components.PlayerData{
		MoveSpeed: cfg.Player.MoveSpeed,
		JumpForce: cfg.Player.JumpForce,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		Gravity: cfg.Physics.Gravity,
		MaxFall: cfg.Physics.MaxFallSpeed,
	})
	c := cfg.Player.Color
	components.Appearance.SetValue(player, components.AppearanceData{
		Tint:     gamemath.PackRGB(float64(c.R), float64(c.G), float64(c.B)),
		Alpha:    1,
		Active:   true,
		Collides: true,
		Width:    w,
		Height:   h,
	})

	addToSpace(ecs, obj)

	return player
}
