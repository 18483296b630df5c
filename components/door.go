package components

import "github.com/yohamta/donburi"

type DoorData struct {
	LevelIndex string
}

var Door = donburi.NewComponentType[DoorData]()
