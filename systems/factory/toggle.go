package factory

import (
	"github.com/automoto/doorkey/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SetCollides adds the entity's shape to the collision space or takes it out.
// Objects outside the space are invisible to every collider.
func SetCollides(ecs *ecs.ECS, entry *donburi.Entry, on bool) {
	app := components.Appearance.Get(entry)
	if app.Collides == on {
		return
	}
	app.Collides = on

	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)
	obj := components.Object.Get(entry).Object
	if on {
		space.Add(obj)
	} else {
		space.Remove(obj)
	}
}

// Deactivate halves the current opacity, marks the entity inactive and
// turns its collision off.
func Deactivate(ecs *ecs.ECS, entry *donburi.Entry) {
	app := components.Appearance.Get(entry)
	app.Alpha /= 2
	app.Active = false
	SetCollides(ecs, entry, false)
}

// Activate restores the given opacity, marks the entity active and turns its
// collision back on.
func Activate(ecs *ecs.ECS, entry *donburi.Entry, alpha float64) {
	app := components.Appearance.Get(entry)
	app.Alpha = alpha
	app.Active = true
	SetCollides(ecs, entry, true)
}
