package factory

import (
	"github.com/automoto/doorkey/archetypes"
	"github.com/automoto/doorkey/assets"
	"github.com/automoto/doorkey/components"
	cfg "github.com/automoto/doorkey/config"
	"github.com/automoto/doorkey/shared/gamemath"
	"github.com/automoto/doorkey/shared/leveldata"
	"github.com/automoto/doorkey/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSprite spawns an image centered on the element's coordinates, tinted
// with its packed color. Keys fall and are collectible; every other sprite
// is a ghost.
func CreateSprite(ecs *ecs.ECS, el leveldata.SpriteElement, img *assets.Image) *donburi.Entry {
	w, h := float64(img.Width), float64(img.Height)
	x, y := el.Coordinates.X-w/2, el.Coordinates.Y-h/2

	var entry *donburi.Entry
	var group components.Group
	var resolvTag string
	if el.Function == leveldata.FunctionKey {
		entry = archetypes.Key.Spawn(ecs)
		group, resolvTag = components.GroupKeys, tags.ResolvKey
		components.Key.SetValue(entry, components.KeyData{ID: el.ID})
		components.Physics.SetValue(entry, components.PhysicsData{
			Gravity: cfg.Physics.Gravity,
			MaxFall: cfg.Physics.MaxFallSpeed,
		})
		components.Hover.SetValue(entry, components.HoverData{Tween: NewHover(0, -cfg.Key.HoverDistance), Rising: true})
	} else {
		entry = archetypes.Ghost.Spawn(ecs)
		group, resolvTag = components.GroupGhosts, tags.ResolvGhost
	}

	obj := resolv.NewObject(x, y, w, h, resolvTag)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = entry

	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	components.Appearance.SetValue(entry, components.AppearanceData{
		Group:    group,
		Tint:     gamemath.PackRGB(el.Color.Red, el.Color.Green, el.Color.Blue),
		Alpha:    gamemath.ClampAlpha(el.Color.Opacity()),
		Active:   true,
		Collides: true,
		Sprite:   img.ID,
		Width:    w,
		Height:   h,
	})

	addToSpace(ecs, obj)

	return entry
}

// NewHover tweens a key's drawn offset between from and to.
func NewHover(from, to float64) *gween.Tween {
	return gween.New(float32(from), float32(to), cfg.Key.HoverDuration, ease.InOutSine)
}
