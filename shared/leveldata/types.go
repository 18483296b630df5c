// Package leveldata describes level descriptions and decodes them from JSON
// and Tiled TMX files. It has no dependencies on ebitengine, donburi or
// resolv: pure data only.
package leveldata

// Description is one playable level: the assets it needs, the elements it
// places and the interaction rules between them. It is read-only once loaded.
type Description struct {
	Assets       []Asset
	Elements     []Element
	Interactions []Interaction

	// Skipped counts elements whose type this runtime does not understand.
	Skipped int
}

// Asset declares a file the level references by id.
type Asset struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Path string `json:"path"`
}

// Interaction is a trigger rule: touching Trigger applies Action to Target.
type Interaction struct {
	Trigger string `json:"trigger"`
	Target  string `json:"target"`
	Action  Action `json:"action"`
}

// Point is a position in world pixels.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Corners holds two opposite corners of a rectangle in no particular order.
type Corners struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

// Color is an authored color. Channels are expected in [0, 255] and alpha in
// [0, 1]; out of range values are clamped when the element is instantiated.
type Color struct {
	Red   float64  `json:"red"`
	Green float64  `json:"green"`
	Blue  float64  `json:"blue"`
	Alpha *float64 `json:"alpha,omitempty"`
}

// Opacity returns the authored alpha, defaulting to fully opaque.
func (c Color) Opacity() float64 {
	if c.Alpha == nil {
		return 1
	}
	return *c.Alpha
}

// Element is a placement record. The set of variants is closed: PlayerElement,
// SpriteElement and RectElement.
type Element interface {
	isElement()
	// ElementID returns the id the element is registered under, or "".
	ElementID() string
}

// PlayerElement places the player.
type PlayerElement struct {
	Coordinates Point
}

// SpriteElement places an image from the asset list.
type SpriteElement struct {
	Coordinates Point
	Sprite      string
	Color       Color
	Function    Function
	ID          string
}

// RectElement places a colored rectangle.
type RectElement struct {
	Coordinates Corners
	Color       Color
	Function    Function
	LevelIndex  string
	ID          string
}

func (PlayerElement) isElement() {}
func (SpriteElement) isElement() {}
func (RectElement) isElement()   {}

func (PlayerElement) ElementID() string   { return "" }
func (e SpriteElement) ElementID() string { return e.ID }
func (e RectElement) ElementID() string   { return e.ID }

// Authored returns the opacity the element was authored with.
func Authored(e Element) float64 {
	switch el := e.(type) {
	case SpriteElement:
		return el.Color.Opacity()
	case RectElement:
		return el.Color.Opacity()
	default:
		return 1
	}
}
