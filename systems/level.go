package systems

import (
	"fmt"

	"github.com/automoto/doorkey/assets"
	"github.com/automoto/doorkey/components"
	cfg "github.com/automoto/doorkey/config"
	"github.com/automoto/doorkey/logging"
	"github.com/automoto/doorkey/shared/gamemath"
	"github.com/automoto/doorkey/shared/leveldata"
	"github.com/automoto/doorkey/systems/factory"
	"github.com/automoto/doorkey/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LoadLevel interprets a level description into the world: it registers the
// level's assets, spawns every element in declaration order, fills the
// object and interaction tables, and declares the level's colliders. On
// error the world is left partially built and must be discarded.
func LoadLevel(ecs *ecs.ECS, index string, desc *leveldata.Description, registry *assets.Registry) (*donburi.Entry, error) {
	log := logging.New("level")

	if err := leveldata.Validate(desc); err != nil {
		return nil, fmt.Errorf("level %s: %w", index, err)
	}

	registry.Reset()
	if err := registry.RegisterAll(desc.Assets); err != nil {
		return nil, fmt.Errorf("level %s: %w", index, err)
	}

	width, height := levelBounds(desc)
	factory.CreateSpace(ecs, width, height, cfg.Physics.CellSize, cfg.Physics.CellSize)

	level := factory.CreateLevel(ecs, index, desc)
	levelData := components.Level.Get(level)
	levelData.Assets = registry

	for i, el := range desc.Elements {
		var entry *donburi.Entry
		switch e := el.(type) {
		case leveldata.PlayerElement:
			factory.CreatePlayer(ecs, e.Coordinates.X, e.Coordinates.Y)
			continue
		case leveldata.SpriteElement:
			if !registry.Has(e.Sprite) {
				return nil, fmt.Errorf("level %s: element %d: %w: %q", index, i, leveldata.ErrUnknownAsset, e.Sprite)
			}
			img, ok := registry.Image(e.Sprite)
			if !ok {
				return nil, fmt.Errorf("level %s: element %d: sprite %q: %w", index, i, e.Sprite, assets.ErrNotAnImage)
			}
			entry = factory.CreateSprite(ecs, e, img)
		case leveldata.RectElement:
			entry = factory.CreateRect(ecs, e)
		default:
			continue
		}

		if id := el.ElementID(); id != "" {
			levelData.Objects[id] = components.ObjectEntry{Description: el, Entry: entry}
		}
	}

	for i, rule := range desc.Interactions {
		target, ok := levelData.Objects[rule.Target]
		if !ok {
			return nil, fmt.Errorf("level %s: interaction %d: %w: %q", index, i, leveldata.ErrUnknownTarget, rule.Target)
		}
		levelData.Interactions[rule.Trigger] = components.Rule{Target: rule.Target, Action: rule.Action}

		// A target unlocked by a key starts locked.
		if rule.Action == leveldata.ActionEnable {
			factory.Deactivate(ecs, target.Entry)
		}
	}

	tags.Ghost.Each(ecs.World, func(e *donburi.Entry) {
		factory.SetCollides(ecs, e, false)
	})

	levelData.Colliders = []components.Collider{
		{Kind: components.ColliderSolid, Subject: tags.ResolvPlayer, Other: tags.ResolvSolid},
		{Kind: components.ColliderSolid, Subject: tags.ResolvKey, Other: tags.ResolvSolid},
		{Kind: components.ColliderOverlap, Subject: tags.ResolvPlayer, Other: tags.ResolvDoor, OnContact: EnterDoor},
		{Kind: components.ColliderOverlap, Subject: tags.ResolvPlayer, Other: tags.ResolvKey, OnContact: CollectKey},
	}

	log.Info("level loaded",
		"index", index,
		"objects", len(levelData.Objects),
		"interactions", len(levelData.Interactions),
		"skipped", desc.Skipped,
	)

	return level, nil
}

// levelBounds sizes the collision space to hold every element.
func levelBounds(desc *leveldata.Description) (int, int) {
	w, h := float64(cfg.C.WorldWidth), float64(cfg.C.WorldHeight)
	for _, el := range desc.Elements {
		switch e := el.(type) {
		case leveldata.PlayerElement:
			w, h = gamemath.Max(w, e.Coordinates.X), gamemath.Max(h, e.Coordinates.Y)
		case leveldata.SpriteElement:
			w, h = gamemath.Max(w, e.Coordinates.X), gamemath.Max(h, e.Coordinates.Y)
		case leveldata.RectElement:
			c := e.Coordinates
			w = gamemath.Max(w, gamemath.Max(c.X1, c.X2))
			h = gamemath.Max(h, gamemath.Max(c.Y1, c.Y2))
		}
	}
	return int(w) + cfg.Physics.CellSize*4, int(h) + cfg.Physics.CellSize*4
}

// GetLevel returns the level's data, or nil before a level is loaded.
func GetLevel(ecs *ecs.ECS) *components.LevelData {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Level.Get(levelEntry)
}

// recordFault stores the first configuration error found while the level
// runs. The scene stops on it.
func recordFault(ecs *ecs.ECS, err error) {
	level := GetLevel(ecs)
	if level == nil || level.Fault != nil {
		return
	}
	logging.New("level").Error("level fault", "error", err)
	level.Fault = err
}
