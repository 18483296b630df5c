package components

import "github.com/yohamta/donburi"

// AppearanceData is the mutable state interactions act on.
type AppearanceData struct {
	Group  Group
	Tint   uint32 // packed 0xRRGGBB
	Alpha  float64
	Active bool

	// Collides mirrors whether the object is in the collision space.
	Collides bool

	// Sprite is the image asset id; empty for rectangles.
	Sprite string
	Width  float64
	Height float64
}

var Appearance = donburi.NewComponentType[AppearanceData]()
