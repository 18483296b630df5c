package scenes

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one screen of the game. A non-nil error from Update ends the
// game loop; ebiten.Termination ends it cleanly.
type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}
