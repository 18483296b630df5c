package components

import (
	"github.com/automoto/doorkey/config"
	"github.com/yohamta/donburi"
)

// ControlsData stores the key mapping used by the input system.
type ControlsData struct {
	Mapping config.Mapping
}

var Controls = donburi.NewComponentType[ControlsData]()
