package components

import "github.com/yohamta/donburi"

type KeyData struct {
	ID string
}

var Key = donburi.NewComponentType[KeyData]()
