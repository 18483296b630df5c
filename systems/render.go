package systems

import (
	"github.com/automoto/doorkey/components"
	"github.com/automoto/doorkey/shared/gamemath"
	"github.com/automoto/doorkey/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// Back to front.
var drawOrder = []*donburi.ComponentType[donburi.Tag]{tags.Ghost, tags.Block, tags.Door, tags.Key, tags.Player}

// DrawObjects renders every level object with its tint and current opacity.
func DrawObjects(ecs *ecs.ECS, screen *ebiten.Image) {
	level := GetLevel(ecs)
	if level == nil {
		return
	}

	for _, tag := range drawOrder {
		tag.Each(ecs.World, func(e *donburi.Entry) {
			drawObject(screen, level, e)
		})
	}
}

func drawObject(screen *ebiten.Image, level *components.LevelData, e *donburi.Entry) {
	obj := components.Object.Get(e)
	app := components.Appearance.Get(e)
	if app.Alpha <= 0 {
		return
	}

	y := obj.Y
	if e.HasComponent(components.Hover) {
		y += components.Hover.Get(e).Offset
	}

	if app.Sprite == "" || level.Assets == nil {
		vector.FillRect(screen,
			float32(obj.X), float32(y),
			float32(app.Width), float32(app.Height),
			gamemath.RGBA(app.Tint, app.Alpha), false)
		return
	}

	img, ok := level.Assets.Image(app.Sprite)
	if !ok {
		return
	}

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(obj.X, y)
	drawOp.ColorScale.ScaleWithColor(gamemath.RGBA(app.Tint, 1))
	drawOp.ColorScale.ScaleAlpha(float32(app.Alpha))
	screen.DrawImage(img.Ebiten(), drawOp)
}
