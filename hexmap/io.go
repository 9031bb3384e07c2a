package hexmap

import (
	"encoding/json"
	"fmt"
)

// documentJSON mirrors the on-disk document shape. The goal marker is
// persisted under the historical "worldTree" key.
type documentJSON struct {
	HexSize     float64     `json:"hexSize"`
	Orientation Orientation `json:"orientation"`
	Map         []*Tile     `json:"map"`
	SpawnPoints []Coord     `json:"spawnPoints,omitempty"`
	WorldTree   *Coord      `json:"worldTree,omitempty"`
}

// Decode parses a document from JSON. It is all-or-nothing: any error leaves
// the caller's current document untouched because a new Document is only
// returned on full success.
func Decode(data []byte) (*Document, error) {
	var raw documentJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("hexmap: decode: %w", err)
	}
	if raw.HexSize <= 0 {
		return nil, fmt.Errorf("hexmap: decode: hexSize must be > 0, got %v", raw.HexSize)
	}
	switch raw.Orientation {
	case OrientationPointy, OrientationFlat:
	case "":
		raw.Orientation = OrientationPointy
	default:
		return nil, fmt.Errorf("hexmap: decode: unknown orientation %q", raw.Orientation)
	}

	doc := NewDocument(raw.HexSize, raw.Orientation)
	for _, t := range raw.Map {
		tile := *t
		if err := doc.AddTile(&tile); err != nil {
			return nil, fmt.Errorf("hexmap: decode: %w", err)
		}
	}
	for _, c := range raw.SpawnPoints {
		if !doc.HasSpawn(c) {
			doc.SpawnPoints = append(doc.SpawnPoints, c)
		}
	}
	if raw.WorldTree != nil {
		g := *raw.WorldTree
		doc.Goal = &g
	}
	return doc, nil
}

// Encode serializes a document to indented JSON in the same shape Decode
// accepts. Empty spawn/goal data is omitted entirely.
func Encode(d *Document) ([]byte, error) {
	raw := documentJSON{
		HexSize:     d.HexSize,
		Orientation: d.Orientation,
		Map:         d.Tiles,
		SpawnPoints: d.SpawnPoints,
		WorldTree:   d.Goal,
	}
	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("hexmap: encode: %w", err)
	}
	return data, nil
}
