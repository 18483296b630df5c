package config

import (
	"errors"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionQuit
	ActionReloadLevel
	ActionMoveUp
	ActionMoveRight
	ActionMoveLeft
	ActionToggleColliders
	ActionCount // Must be last - used for array sizing
)

// There is deliberately no "down" action: the player never crouches or
// drops, so the controller's down flag is never set from input.
var actionNames = map[string]ActionID{
	"quit":            ActionQuit,
	"reloadLevel":     ActionReloadLevel,
	"up":              ActionMoveUp,
	"right":           ActionMoveRight,
	"left":            ActionMoveLeft,
	"toggleColliders": ActionToggleColliders,
}

// ParseAction returns the logical action for a settings id.
func ParseAction(id string) (ActionID, bool) {
	a, ok := actionNames[id]
	return a, ok
}

func (a ActionID) String() string {
	for name, id := range actionNames {
		if id == a {
			return name
		}
	}
	return "none"
}

// Setting binds a logical action id to the physical key codes that trigger
// it. Codes are ebiten key names as returned by ebiten.Key.String.
type Setting struct {
	ID   string   `yaml:"id" json:"id"`
	Keys []string `yaml:"keys" json:"keys"`
}

// DefaultSettings is used when no settings file is given.
var DefaultSettings = []Setting{
	{ID: "quit", Keys: []string{"Escape", "Q"}},
	{ID: "reloadLevel", Keys: []string{"R"}},
	{ID: "up", Keys: []string{"ArrowUp", "W", "Space"}},
	{ID: "right", Keys: []string{"ArrowRight", "D"}},
	{ID: "left", Keys: []string{"ArrowLeft", "A"}},
	{ID: "toggleColliders", Keys: []string{"F1"}},
}

var ErrConflictingBinding = errors.New("key bound to more than one action")

// Mapping is the reverse lookup from physical key code to logical action.
type Mapping struct {
	actions map[string]ActionID

	// Ignored lists setting ids that name no known action.
	Ignored []string
}

// NewMapping builds the reverse lookup for an ordered settings list. Many
// codes may map to one action; one code mapping to two actions is an error.
func NewMapping(settings []Setting) (Mapping, error) {
	m := Mapping{actions: make(map[string]ActionID)}

	for _, s := range settings {
		action, ok := ParseAction(s.ID)
		if !ok {
			m.Ignored = append(m.Ignored, s.ID)
			continue
		}
		for _, code := range s.Keys {
			if prev, ok := m.actions[code]; ok && prev != action {
				return Mapping{}, fmt.Errorf("%w: %q is %s and %s", ErrConflictingBinding, code, prev, action)
			}
			m.actions[code] = action
		}
	}

	return m, nil
}

// MustMapping is NewMapping for settings known to be valid.
func MustMapping(settings []Setting) Mapping {
	m, err := NewMapping(settings)
	if err != nil {
		panic(err)
	}
	return m
}

// Lookup returns the action bound to a physical code, or ActionNone.
func (m Mapping) Lookup(code string) ActionID {
	return m.actions[code]
}

// Len returns the number of bound physical codes.
func (m Mapping) Len() int {
	return len(m.actions)
}

// LoadSettings reads an ordered settings list. YAML and JSON files are both
// accepted since yaml.v3 parses JSON documents.
func LoadSettings(fsys fs.FS, name string) ([]Setting, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	var settings []Setting
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("parse settings %s: %w", name, err)
	}
	return settings, nil
}
