package archetypes

import (
	"github.com/automoto/doorkey/components"
	cfg "github.com/automoto/doorkey/config"
	"github.com/automoto/doorkey/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Physics,
		components.Appearance,
	)
	Block = newArchetype(
		tags.Block,
		components.Object,
		components.Appearance,
	)
	Door = newArchetype(
		tags.Door,
		components.Door,
		components.Object,
		components.Appearance,
	)
	Ghost = newArchetype(
		tags.Ghost,
		components.Object,
		components.Appearance,
	)
	Key = newArchetype(
		tags.Key,
		components.Key,
		components.Object,
		components.Physics,
		components.Appearance,
		components.Hover,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Controls = newArchetype(
		components.Controls,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
