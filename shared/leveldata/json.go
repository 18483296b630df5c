package leveldata

import (
	"encoding/json"
	"fmt"
)

type rawDescription struct {
	Assets       []Asset           `json:"assets"`
	Elements     []json.RawMessage `json:"elements"`
	Interactions []Interaction     `json:"interactions"`
}

type rawElement struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
	Sprite      string          `json:"sprite"`
	Color       Color           `json:"color"`
	Function    Function        `json:"function"`
	LevelIndex  json.RawMessage `json:"levelIndex"`
	ID          string          `json:"id"`
}

// DecodeJSON parses a level description document.
func DecodeJSON(data []byte) (*Description, error) {
	var raw rawDescription
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode level: %w", err)
	}

	desc := &Description{
		Assets:       raw.Assets,
		Elements:     make([]Element, 0, len(raw.Elements)),
		Interactions: raw.Interactions,
	}

	for i, msg := range raw.Elements {
		el, err := decodeElement(msg)
		if err != nil {
			return nil, fmt.Errorf("decode element %d: %w", i, err)
		}
		if el == nil {
			desc.Skipped++
			continue
		}
		desc.Elements = append(desc.Elements, el)
	}

	return desc, nil
}

func decodeElement(msg json.RawMessage) (Element, error) {
	var re rawElement
	if err := json.Unmarshal(msg, &re); err != nil {
		return nil, err
	}

	switch re.Type {
	case "player":
		var p Point
		if err := unmarshalOptional(re.Coordinates, &p); err != nil {
			return nil, fmt.Errorf("player coordinates: %w", err)
		}
		return PlayerElement{Coordinates: p}, nil
	case "sprite":
		var p Point
		if err := unmarshalOptional(re.Coordinates, &p); err != nil {
			return nil, fmt.Errorf("sprite coordinates: %w", err)
		}
		return SpriteElement{
			Coordinates: p,
			Sprite:      re.Sprite,
			Color:       re.Color,
			Function:    re.Function,
			ID:          re.ID,
		}, nil
	case "rect":
		var c Corners
		if err := unmarshalOptional(re.Coordinates, &c); err != nil {
			return nil, fmt.Errorf("rect coordinates: %w", err)
		}
		index, err := decodeLevelIndex(re.LevelIndex)
		if err != nil {
			return nil, err
		}
		return RectElement{
			Coordinates: c,
			Color:       re.Color,
			Function:    re.Function,
			LevelIndex:  index,
			ID:          re.ID,
		}, nil
	default:
		return nil, nil
	}
}

func unmarshalOptional(msg json.RawMessage, v any) error {
	if len(msg) == 0 {
		return nil
	}
	return json.Unmarshal(msg, v)
}

// decodeLevelIndex accepts both "2" and 2 for a door's target level.
func decodeLevelIndex(msg json.RawMessage) (string, error) {
	if len(msg) == 0 || string(msg) == "null" {
		return "", nil
	}
	var s string
	if err := json.Unmarshal(msg, &s); err == nil {
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(msg, &n); err != nil {
		return "", fmt.Errorf("levelIndex: %w", err)
	}
	return n.String(), nil
}
