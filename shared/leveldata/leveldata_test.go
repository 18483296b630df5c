package leveldata

import (
	"errors"
	"io/fs"
	"testing"
	"testing/fstest"
)

const sampleLevel = `{
  "assets": [{"id": "keyImg", "type": "image", "path": "key.png"}],
  "elements": [
    {"type": "player", "coordinates": {"x": 32, "y": 40}},
    {"type": "rect", "coordinates": {"x1": 50, "y1": 50, "x2": 10, "y2": 30},
     "color": {"red": 10, "green": 20, "blue": 30, "alpha": 0.8}, "function": "wall", "id": "w1"},
    {"type": "rect", "coordinates": {"x1": 0, "y1": 0, "x2": 16, "y2": 32},
     "color": {"red": 1, "green": 2, "blue": 3, "alpha": 0.8}, "function": "door", "levelIndex": 2, "id": "door1"},
    {"type": "sprite", "coordinates": {"x": 5, "y": 6}, "sprite": "keyImg",
     "color": {"red": 255, "green": 255, "blue": 0}, "function": "key", "id": "k1"},
    {"type": "particle", "coordinates": {"x": 1, "y": 1}},
    {"type": "rect", "coordinates": {"x1": 0, "y1": 0, "x2": 1, "y2": 1}, "function": "lava"}
  ],
  "interactions": [{"trigger": "k1", "target": "door1", "action": "enable"}]
}`

func TestDecodeJSON(t *testing.T) {
	desc, err := DecodeJSON([]byte(sampleLevel))
	if err != nil {
		t.Fatalf("DecodeJSON: %v", err)
	}

	if len(desc.Elements) != 5 {
		t.Fatalf("expected 5 elements, got %d", len(desc.Elements))
	}
	if desc.Skipped != 1 {
		t.Fatalf("expected 1 skipped element, got %d", desc.Skipped)
	}

	if _, ok := desc.Elements[0].(PlayerElement); !ok {
		t.Fatalf("element 0 is %T, want PlayerElement", desc.Elements[0])
	}

	wall, ok := desc.Elements[1].(RectElement)
	if !ok {
		t.Fatalf("element 1 is %T, want RectElement", desc.Elements[1])
	}
	if wall.Function != FunctionWall || wall.Coordinates != (Corners{50, 50, 10, 30}) {
		t.Fatalf("unexpected wall %+v", wall)
	}

	door := desc.Elements[2].(RectElement)
	if door.Function != FunctionDoor || door.LevelIndex != "2" {
		t.Fatalf("unexpected door %+v", door)
	}
	if door.Color.Opacity() != 0.8 {
		t.Fatalf("door opacity %v, want 0.8", door.Color.Opacity())
	}

	key := desc.Elements[3].(SpriteElement)
	if key.Function != FunctionKey || key.ID != "k1" || key.Sprite != "keyImg" {
		t.Fatalf("unexpected key %+v", key)
	}
	if key.Color.Opacity() != 1 {
		t.Fatalf("sprite without alpha should be opaque, got %v", key.Color.Opacity())
	}

	if lava := desc.Elements[4].(RectElement); lava.Function != FunctionGhost {
		t.Fatalf("unknown function should be ghost, got %v", lava.Function)
	}

	if len(desc.Interactions) != 1 || desc.Interactions[0].Action != ActionEnable {
		t.Fatalf("unexpected interactions %+v", desc.Interactions)
	}
}

func TestParseTags(t *testing.T) {
	cases := []struct {
		in       string
		function Function
		action   Action
	}{
		{"wall", FunctionWall, ActionNone},
		{"Door", FunctionDoor, ActionNone},
		{" key ", FunctionKey, ActionNone},
		{"", FunctionGhost, ActionNone},
		{"enable", FunctionGhost, ActionEnable},
		{"DISABLE", FunctionGhost, ActionDisable},
		{"explode", FunctionGhost, ActionNone},
	}

	for _, c := range cases {
		if got := ParseFunction(c.in); got != c.function {
			t.Fatalf("ParseFunction(%q) = %v, want %v", c.in, got, c.function)
		}
		if got := ParseAction(c.in); got != c.action {
			t.Fatalf("ParseAction(%q) = %v, want %v", c.in, got, c.action)
		}
	}
}

func TestValidate(t *testing.T) {
	player := PlayerElement{}
	cases := []struct {
		name string
		desc Description
		want error
	}{
		{
			name: "valid",
			desc: Description{
				Elements:     []Element{player, RectElement{ID: "d"}},
				Interactions: []Interaction{{Trigger: "k", Target: "d", Action: ActionEnable}},
			},
		},
		{
			name: "no_player",
			desc: Description{Elements: []Element{RectElement{ID: "d"}}},
			want: ErrNoPlayer,
		},
		{
			name: "two_players",
			desc: Description{Elements: []Element{player, player}},
			want: ErrMultiplePlayers,
		},
		{
			name: "duplicate_id",
			desc: Description{Elements: []Element{player, RectElement{ID: "a"}, RectElement{ID: "a"}}},
			want: ErrDuplicateID,
		},
		{
			name: "unknown_target",
			desc: Description{
				Elements:     []Element{player},
				Interactions: []Interaction{{Trigger: "k", Target: "missing"}},
			},
			want: ErrUnknownTarget,
		},
		{
			name: "duplicate_trigger",
			desc: Description{
				Elements: []Element{player, RectElement{ID: "a"}},
				Interactions: []Interaction{
					{Trigger: "k", Target: "a"},
					{Trigger: "k", Target: "a"},
				},
			},
			want: ErrDuplicateTrigger,
		},
		{
			name: "unknown_asset",
			desc: Description{Elements: []Element{player, SpriteElement{Sprite: "nope"}}},
			want: ErrUnknownAsset,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := Validate(&c.desc)
			if c.want == nil {
				if err != nil {
					t.Fatalf("Validate: %v", err)
				}
				return
			}
			if !errors.Is(err, c.want) {
				t.Fatalf("Validate error = %v, want %v", err, c.want)
			}
		})
	}
}

const sampleTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="20" height="15" tilewidth="16" tileheight="16" infinite="0" nextlayerid="6" nextobjectid="8">
 <objectgroup id="1" name="Player">
  <object id="1" x="16" y="32" width="16" height="16"/>
 </objectgroup>
 <objectgroup id="2" name="Rects">
  <object id="2" name="floor" x="0" y="200" width="320" height="16">
   <properties>
    <property name="function" value="wall"/>
    <property name="alpha" type="float" value="0.5"/>
   </properties>
  </object>
  <object id="3" name="exit" x="300" y="168" width="16" height="32">
   <properties>
    <property name="function" value="door"/>
    <property name="levelIndex" value="2"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="3" name="Interactions">
  <object id="4" x="0" y="0">
   <properties>
    <property name="trigger" value="floor"/>
    <property name="target" value="exit"/>
    <property name="action" value="disable"/>
   </properties>
  </object>
 </objectgroup>
</map>
`

func TestLoadResolvesIndex(t *testing.T) {
	fsys := fstest.MapFS{
		"1.json": {Data: []byte(sampleLevel)},
		"2.tmx":  {Data: []byte(sampleTMX)},
		"notes":  {Data: []byte("ignored")},
	}

	desc, err := Load(fsys, "1")
	if err != nil {
		t.Fatalf("Load(1): %v", err)
	}
	if len(desc.Elements) != 5 {
		t.Fatalf("level 1: expected 5 elements, got %d", len(desc.Elements))
	}

	desc, err = Load(fsys, "2")
	if err != nil {
		t.Fatalf("Load(2): %v", err)
	}
	if len(desc.Elements) != 3 {
		t.Fatalf("level 2: expected 3 elements, got %d", len(desc.Elements))
	}
	exit, ok := desc.Elements[2].(RectElement)
	if !ok || exit.Function != FunctionDoor || exit.LevelIndex != "2" || exit.ID != "exit" {
		t.Fatalf("unexpected exit %+v", desc.Elements[2])
	}
	floor := desc.Elements[1].(RectElement)
	if floor.Coordinates != (Corners{0, 200, 320, 216}) || floor.Color.Opacity() != 0.5 {
		t.Fatalf("unexpected floor %+v", floor)
	}
	if len(desc.Interactions) != 1 || desc.Interactions[0].Action != ActionDisable {
		t.Fatalf("unexpected interactions %+v", desc.Interactions)
	}

	if _, err := Load(fsys, "3"); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("Load(3) error = %v, want fs.ErrNotExist", err)
	}

	names, err := Indexes(fsys)
	if err != nil {
		t.Fatalf("Indexes: %v", err)
	}
	if len(names) != 2 || names[0] != "1" || names[1] != "2" {
		t.Fatalf("Indexes = %v", names)
	}
}
