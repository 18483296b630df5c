package leveldata

import (
	"fmt"
	"io/fs"
	"strconv"

	"github.com/lafriks/go-tiled"
)

// Object group names a Tiled map uses to author a level.
const (
	groupAssets       = "Assets"
	groupPlayer       = "Player"
	groupSprites      = "Sprites"
	groupRects        = "Rects"
	groupInteractions = "Interactions"
)

// LoadTMX reads a level authored in Tiled. Objects in the Player, Sprites and
// Rects groups become elements in map order; the object name is the element
// id. Assets and Interactions groups carry their fields as custom properties.
func LoadTMX(fsys fs.FS, tmxPath string) (*Description, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	desc := &Description{}
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case groupAssets:
			for _, o := range og.Objects {
				desc.Assets = append(desc.Assets, Asset{
					ID:   o.Name,
					Type: o.Properties.GetString("type"),
					Path: o.Properties.GetString("path"),
				})
			}
		case groupPlayer:
			for _, o := range og.Objects {
				desc.Elements = append(desc.Elements, PlayerElement{
					Coordinates: Point{X: o.X, Y: o.Y},
				})
			}
		case groupSprites:
			for _, o := range og.Objects {
				desc.Elements = append(desc.Elements, SpriteElement{
					Coordinates: Point{X: o.X, Y: o.Y},
					Sprite:      o.Properties.GetString("sprite"),
					Color:       colorFromProperties(o.Properties, false),
					Function:    ParseFunction(objectFunction(o)),
					ID:          o.Name,
				})
			}
		case groupRects:
			for _, o := range og.Objects {
				desc.Elements = append(desc.Elements, RectElement{
					Coordinates: Corners{X1: o.X, Y1: o.Y, X2: o.X + o.Width, Y2: o.Y + o.Height},
					Color:       colorFromProperties(o.Properties, true),
					Function:    ParseFunction(objectFunction(o)),
					LevelIndex:  o.Properties.GetString("levelIndex"),
					ID:          o.Name,
				})
			}
		case groupInteractions:
			for _, o := range og.Objects {
				desc.Interactions = append(desc.Interactions, Interaction{
					Trigger: o.Properties.GetString("trigger"),
					Target:  o.Properties.GetString("target"),
					Action:  ParseAction(o.Properties.GetString("action")),
				})
			}
		default:
			desc.Skipped += len(og.Objects)
		}
	}

	return desc, nil
}

// objectFunction prefers an explicit "function" property and falls back to
// the object's class.
func objectFunction(o *tiled.Object) string {
	if f := o.Properties.GetString("function"); f != "" {
		return f
	}
	if o.Class != "" {
		return o.Class
	}
	return o.Type //nolint:staticcheck // older TMX files use type=
}

func colorFromProperties(props tiled.Properties, withAlpha bool) Color {
	c := Color{
		Red:   floatProperty(props, "red", 255),
		Green: floatProperty(props, "green", 255),
		Blue:  floatProperty(props, "blue", 255),
	}
	if withAlpha {
		a := floatProperty(props, "alpha", 1)
		c.Alpha = &a
	}
	return c
}

func floatProperty(props tiled.Properties, name string, def float64) float64 {
	s := props.GetString(name)
	if s == "" {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return v
}
