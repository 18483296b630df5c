package systems

import (
	"fmt"

	cfg "github.com/automoto/doorkey/config"
	"github.com/automoto/doorkey/fonts"
	"github.com/automoto/doorkey/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var hudFace text.Face

// DrawHUD renders the level index and the number of keys left in the
// top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	level := GetLevel(ecs)
	if level == nil || !fonts.Loaded(fonts.HUD) {
		return
	}

	// Lazy so tests never touch the font.
	if hudFace == nil {
		hudFace = text.NewGoXFace(fonts.HUD.Get())
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(cfg.UI.HUDMargin, cfg.UI.HUDMargin)
	op.ColorScale.ScaleWithColor(cfg.UI.HUDColor)
	text.Draw(screen, HUDLine(ecs), hudFace, op)
}

// HUDLine is the text DrawHUD shows.
func HUDLine(ecs *ecs.ECS) string {
	level := GetLevel(ecs)
	if level == nil {
		return ""
	}
	return fmt.Sprintf("Level %s  Keys %d", level.Index, RemainingKeys(ecs))
}

// RemainingKeys counts the keys not yet collected.
func RemainingKeys(ecs *ecs.ECS) int {
	return donburi.NewQuery(filter.Contains(tags.Key)).Count(ecs.World)
}
