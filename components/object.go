package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData links an entity to its collision shape. Ghosts and disabled
// objects keep their shape but are not part of the collision space.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Group is the collision group an element was assigned to.
type Group int

const (
	GroupGhosts Group = iota
	GroupBlocks
	GroupDoors
	GroupKeys
)

func (g Group) String() string {
	switch g {
	case GroupBlocks:
		return "blocks"
	case GroupDoors:
		return "doors"
	case GroupKeys:
		return "keys"
	default:
		return "ghosts"
	}
}
