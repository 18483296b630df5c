package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// HoverData bobs a sprite's drawn position. It never moves the collider.
type HoverData struct {
	Tween  *gween.Tween
	Offset float64
	// Rising is true while the tween moves toward the top of the bob.
	Rising bool
}

var Hover = donburi.NewComponentType[HoverData]()
