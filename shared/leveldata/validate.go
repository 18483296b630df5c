package leveldata

import (
	"errors"
	"fmt"
)

var (
	ErrNoPlayer         = errors.New("level has no player element")
	ErrMultiplePlayers  = errors.New("level has more than one player element")
	ErrDuplicateID      = errors.New("duplicate element id")
	ErrDuplicateTrigger = errors.New("duplicate interaction trigger")
	ErrUnknownTarget    = errors.New("interaction target does not exist")
	ErrUnknownAsset     = errors.New("sprite references an undeclared asset")
)

// Validate checks the authoring rules a level must satisfy before any of it
// is instantiated: exactly one player, unique ids, unique triggers, every
// interaction target and sprite asset resolvable.
func Validate(desc *Description) error {
	var errs []error

	assets := make(map[string]struct{}, len(desc.Assets))
	for _, a := range desc.Assets {
		assets[a.ID] = struct{}{}
	}

	players := 0
	ids := make(map[string]struct{})
	for i, el := range desc.Elements {
		if _, ok := el.(PlayerElement); ok {
			players++
			continue
		}
		if sprite, ok := el.(SpriteElement); ok {
			if _, ok := assets[sprite.Sprite]; !ok {
				errs = append(errs, fmt.Errorf("element %d: %w: %q", i, ErrUnknownAsset, sprite.Sprite))
			}
		}
		id := el.ElementID()
		if id == "" {
			continue
		}
		if _, dup := ids[id]; dup {
			errs = append(errs, fmt.Errorf("element %d: %w: %q", i, ErrDuplicateID, id))
			continue
		}
		ids[id] = struct{}{}
	}

	switch {
	case players == 0:
		errs = append(errs, ErrNoPlayer)
	case players > 1:
		errs = append(errs, fmt.Errorf("%w: found %d", ErrMultiplePlayers, players))
	}

	triggers := make(map[string]struct{}, len(desc.Interactions))
	for i, rule := range desc.Interactions {
		if _, dup := triggers[rule.Trigger]; dup {
			errs = append(errs, fmt.Errorf("interaction %d: %w: %q", i, ErrDuplicateTrigger, rule.Trigger))
		}
		triggers[rule.Trigger] = struct{}{}
		if _, ok := ids[rule.Target]; !ok {
			errs = append(errs, fmt.Errorf("interaction %d: %w: %q", i, ErrUnknownTarget, rule.Target))
		}
	}

	return errors.Join(errs...)
}
