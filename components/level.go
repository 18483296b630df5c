package components

import (
	"github.com/automoto/doorkey/assets"
	"github.com/automoto/doorkey/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ObjectEntry pairs an element's description with its live entity.
type ObjectEntry struct {
	Description leveldata.Element
	Entry       *donburi.Entry
}

// Live reports whether the entity still exists.
func (o ObjectEntry) Live() bool {
	return o.Entry != nil && o.Entry.Valid()
}

// ObjectTable maps element ids to their entries.
type ObjectTable map[string]ObjectEntry

// Rule is what touching a trigger does.
type Rule struct {
	Target string
	Action leveldata.Action
}

// InteractionTable maps trigger ids to their rule.
type InteractionTable map[string]Rule

// ColliderKind decides how a collider pair responds to contact.
type ColliderKind int

const (
	// ColliderSolid stops the subject at the other object's edge.
	ColliderSolid ColliderKind = iota
	// ColliderOverlap reports contact without blocking movement.
	ColliderOverlap
)

// Collider is a collision relationship between objects carrying the Subject
// resolv tag and objects carrying the Other tag.
type Collider struct {
	Kind    ColliderKind
	Subject string
	Other   string

	// OnContact runs for overlap colliders.
	OnContact func(ecs *ecs.ECS, subject, other *donburi.Entry) error
}

// Transition requests a fresh build of the level at Index.
type Transition struct {
	Index string
}

type LevelData struct {
	Index        string
	Description  *leveldata.Description
	Objects      ObjectTable
	Interactions InteractionTable
	Colliders    []Collider
	Assets       *assets.Registry

	// Next is set when the level should be torn down and rebuilt.
	Next *Transition
	// Fault is a configuration error found while the level ran.
	Fault error
	// Quit is set when the player asked to leave the game.
	Quit bool
}

var Level = donburi.NewComponentType[LevelData]()
