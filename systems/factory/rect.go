package factory

import (
	"github.com/automoto/doorkey/archetypes"
	"github.com/automoto/doorkey/components"
	"github.com/automoto/doorkey/shared/gamemath"
	"github.com/automoto/doorkey/shared/leveldata"
	"github.com/automoto/doorkey/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateRect spawns a colored rectangle. Walls become blocks, doors carry
// their target level and anything else is a ghost.
func CreateRect(ecs *ecs.ECS, el leveldata.RectElement) *donburi.Entry {
	r := gamemath.NormalizeRect(el.Coordinates.X1, el.Coordinates.Y1, el.Coordinates.X2, el.Coordinates.Y2)

	var entry *donburi.Entry
	var group components.Group
	var resolvTag string
	switch el.Function {
	case leveldata.FunctionWall:
		entry = archetypes.Block.Spawn(ecs)
		group, resolvTag = components.GroupBlocks, tags.ResolvSolid
	case leveldata.FunctionDoor:
		entry = archetypes.Door.Spawn(ecs)
		group, resolvTag = components.GroupDoors, tags.ResolvDoor
		components.Door.SetValue(entry, components.DoorData{LevelIndex: el.LevelIndex})
	default:
		entry = archetypes.Ghost.Spawn(ecs)
		group, resolvTag = components.GroupGhosts, tags.ResolvGhost
	}

	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, resolvTag)
	obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	obj.Data = entry

	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	components.Appearance.SetValue(entry, components.AppearanceData{
		Group:    group,
		Tint:     gamemath.PackRGB(el.Color.Red, el.Color.Green, el.Color.Blue),
		Alpha:    gamemath.ClampAlpha(el.Color.Opacity()),
		Active:   true,
		Collides: true,
		Width:    r.W,
		Height:   r.H,
	})

	addToSpace(ecs, obj)

	return entry
}
