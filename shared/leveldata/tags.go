package leveldata

import "strings"

// Function decides which collision group an element joins.
type Function int

const (
	// FunctionGhost is decorative and never collides. Absent and unknown
	// function tags resolve to it.
	FunctionGhost Function = iota
	FunctionWall
	FunctionDoor
	FunctionKey
)

var functionNames = map[string]Function{
	"wall": FunctionWall,
	"door": FunctionDoor,
	"key":  FunctionKey,
}

// ParseFunction maps a function tag to its Function, falling back to ghost.
func ParseFunction(s string) Function {
	if f, ok := functionNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return f
	}
	return FunctionGhost
}

func (f Function) String() string {
	switch f {
	case FunctionWall:
		return "wall"
	case FunctionDoor:
		return "door"
	case FunctionKey:
		return "key"
	default:
		return "ghost"
	}
}

func (f *Function) UnmarshalText(b []byte) error {
	*f = ParseFunction(string(b))
	return nil
}

// Action is what an interaction rule does to its target.
type Action int

const (
	// ActionNone is any action this runtime does not know; it does nothing.
	ActionNone Action = iota
	ActionEnable
	ActionDisable
)

// ParseAction maps an action tag to its Action, falling back to none.
func ParseAction(s string) Action {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "enable":
		return ActionEnable
	case "disable":
		return ActionDisable
	default:
		return ActionNone
	}
}

func (a Action) String() string {
	switch a {
	case ActionEnable:
		return "enable"
	case ActionDisable:
		return "disable"
	default:
		return "none"
	}
}

func (a *Action) UnmarshalText(b []byte) error {
	*a = ParseAction(string(b))
	return nil
}
