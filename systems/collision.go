package systems

import (
	"github.com/automoto/doorkey/components"
	"github.com/automoto/doorkey/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const maxStepSpeed = 16

type contact struct {
	collider components.Collider
	subject  *donburi.Entry
	other    *donburi.Entry
}

// UpdateCollisions moves every physics body against the solids its colliders
// name, then reports overlaps to the overlap colliders. Callbacks run after
// all bodies moved so they may remove entities.
func UpdateCollisions(ecs *ecs.ECS) {
	level := GetLevel(ecs)
	if level == nil {
		return
	}

	var contacts []contact
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e).Object
		if obj == nil || obj.Space == nil {
			return
		}
		physics := components.Physics.Get(e)

		solids := solidTagsFor(level.Colliders, obj)
		resolveHorizontalCollision(physics, obj, solids)
		resolveVerticalCollision(physics, obj, solids)
		obj.Update()

		contacts = appendOverlaps(contacts, level.Colliders, e, obj)
	})

	for _, c := range contacts {
		if level.Next != nil || level.Fault != nil {
			return
		}
		if !c.subject.Valid() || !c.other.Valid() {
			continue
		}
		if err := c.collider.OnContact(ecs, c.subject, c.other); err != nil {
			recordFault(ecs, err)
			return
		}
	}
}

func solidTagsFor(colliders []components.Collider, obj *resolv.Object) []string {
	var solids []string
	for _, c := range colliders {
		if c.Kind == components.ColliderSolid && obj.HasTags(c.Subject) {
			solids = append(solids, c.Other)
		}
	}
	return solids
}

func appendOverlaps(contacts []contact, colliders []components.Collider, e *donburi.Entry, obj *resolv.Object) []contact {
	for _, c := range colliders {
		if c.Kind != components.ColliderOverlap || c.OnContact == nil || !obj.HasTags(c.Subject) {
			continue
		}
		check := obj.Check(0, 0, c.Other)
		if check == nil {
			continue
		}
		// Check reports everything sharing a grid cell; keep real overlaps.
		for _, o := range check.ObjectsByTags(c.Other) {
			if !overlaps(obj, o) {
				continue
			}
			other, ok := o.Data.(*donburi.Entry)
			if !ok || other == nil {
				continue
			}
			contacts = append(contacts, contact{collider: c, subject: e, other: other})
		}
	}
	return contacts
}

// resolveHorizontalCollision moves the object by its horizontal speed,
// stopping flush against the first solid in the way.
func resolveHorizontalCollision(physics *components.PhysicsData, object *resolv.Object, solidTags []string) {
	dx := gamemath.ClampSpeed(physics.SpeedX, maxStepSpeed)
	if dx == 0 {
		return
	}
	if len(solidTags) == 0 {
		object.X += dx
		return
	}

	check := object.Check(dx, 0, solidTags...)
	if check == nil {
		object.X += dx
		return
	}

	if solids := check.ObjectsByTags(solidTags...); len(solids) > 0 && overlapsVertically(object, solids[0]) {
		dx = check.ContactWithObject(solids[0]).X()
		physics.SpeedX = 0
	}

	object.X += dx
}

// resolveVerticalCollision moves the object by its vertical speed and records
// the solid it lands on as ground.
func resolveVerticalCollision(physics *components.PhysicsData, object *resolv.Object, solidTags []string) {
	physics.OnGround = nil
	dy := gamemath.ClampSpeed(physics.SpeedY, maxStepSpeed)
	if len(solidTags) == 0 {
		object.Y += dy
		return
	}

	// Probe one pixel further when falling or resting so ground contact
	// survives a zero-speed tick.
	checkDistance := dy
	if dy >= 0 {
		checkDistance++
	}

	check := object.Check(0, checkDistance, solidTags...)
	if check == nil {
		object.Y += dy
		return
	}

	solids := check.ObjectsByTags(solidTags...)
	if len(solids) == 0 {
		object.Y += dy
		return
	}

	solid := solids[0]
	if dy >= 0 {
		physics.OnGround = solid
	}
	physics.SpeedY = 0
	object.Y += check.ContactWithObject(solid).Y()
}

func overlaps(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X && overlapsVertically(a, b)
}

func overlapsVertically(object, solid *resolv.Object) bool {
	return object.Y+object.H > solid.Y && object.Y < solid.Y+solid.H
}
