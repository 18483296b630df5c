package systems

import (
	"image/color"

	"github.com/automoto/doorkey/components"
	cfg "github.com/automoto/doorkey/config"
	"github.com/automoto/doorkey/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
)

// DrawColliders outlines every object in the collision space, colored by
// group. Toggled at runtime.
func DrawColliders(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowColliders {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	for _, obj := range space.Objects() {
		c := colliderColor(obj)
		x, y := float32(obj.X), float32(obj.Y)
		w, h := float32(obj.W), float32(obj.H)

		vector.FillRect(screen, x, y, w, 1, c, false)     // Top
		vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
		vector.FillRect(screen, x, y, 1, h, c, false)     // Left
		vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
	}
}

func colliderColor(obj *resolv.Object) color.RGBA {
	group := "ghosts"
	switch {
	case obj.HasTags(tags.ResolvSolid):
		group = "blocks"
	case obj.HasTags(tags.ResolvDoor):
		group = "doors"
	case obj.HasTags(tags.ResolvKey):
		group = "keys"
	case obj.HasTags(tags.ResolvPlayer):
		group = "player"
	}
	if c, ok := cfg.UI.DebugColors[group]; ok {
		return c
	}
	return cfg.White
}
