package factory

import (
	"github.com/automoto/doorkey/archetypes"
	"github.com/automoto/doorkey/components"
	"github.com/automoto/doorkey/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel spawns the level entity with empty tables for desc.
func CreateLevel(ecs *ecs.ECS, index string, desc *leveldata.Description) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)

	levelData := &components.LevelData{
		Index:        index,
		Description:  desc,
		Objects:      make(components.ObjectTable, len(desc.Elements)),
		Interactions: make(components.InteractionTable, len(desc.Interactions)),
	}

	components.Level.Set(level, levelData)

	return level
}
