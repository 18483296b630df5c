package factory

import (
	"github.com/automoto/doorkey/archetypes"
	"github.com/automoto/doorkey/components"
	"github.com/automoto/doorkey/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateControls(ecs *ecs.ECS, mapping config.Mapping) *donburi.Entry {
	controls := archetypes.Controls.Spawn(ecs)
	components.Controls.SetValue(controls, components.ControlsData{Mapping: mapping})
	return controls
}
