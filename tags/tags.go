package tags

import "github.com/yohamta/donburi"

// One donburi tag per collision group, plus the player.
var (
	Player = donburi.NewTag().SetName("Player")
	Block  = donburi.NewTag().SetName("Block")
	Door   = donburi.NewTag().SetName("Door")
	Ghost  = donburi.NewTag().SetName("Ghost")
	Key    = donburi.NewTag().SetName("Key")
)

// Resolv tags for physics collision
const (
	ResolvSolid  = "solid"
	ResolvDoor   = "door"
	ResolvKey    = "key"
	ResolvGhost  = "ghost"
	ResolvPlayer = "player"
)
