package components

import (
	"github.com/yohamta/donburi"
)

// PlayerData holds the movement flags input writes and the controller reads.
// Down is never set by input; it is kept so the controller stays symmetric.
type PlayerData struct {
	Up    bool
	Right bool
	Down  bool
	Left  bool

	MoveSpeed float64
	JumpForce float64
}

var Player = donburi.NewComponentType[PlayerData]()
