package hexmap

import "fmt"

// Tile is one hex in the map. Q/R are the axial coordinate; ID is the stable
// primary key every lookup and mutation uses.
type Tile struct {
	Q       int     `json:"q"`
	R       int     `json:"r"`
	ID      string  `json:"id"`
	Terrain Terrain `json:"terrain"`
	Tier    int     `json:"tier"`
	Asset   string  `json:"asset"`
}

// Coord returns the tile's axial coordinate.
func (t *Tile) Coord() Coord {
	return Coord{Q: t.Q, R: t.R}
}

// TileID derives the conventional stable identifier for a coordinate.
func TileID(c Coord) string {
	return fmt.Sprintf("tile_%d_%d", c.Q, c.R)
}

// Document is the single live map being edited. Tiles keep insertion order;
// lookups go through the id and coordinate indexes, never slice positions.
// Exactly one document is live per editing session; import replaces it
// wholesale.
type Document struct {
	HexSize     float64
	Orientation Orientation
	Tiles       []*Tile

	// SpawnPoints is an ordered set: toggling an existing coordinate removes
	// it, so duplicates are impossible by construction. Membership does not
	// require a tile at the coordinate.
	SpawnPoints []Coord
	// Goal is the single optional goal marker ("world tree").
	Goal *Coord

	byID    map[string]*Tile
	byCoord map[Coord]*Tile
	rev     uint64
}

// NewDocument builds an empty document.
func NewDocument(hexSize float64, o Orientation) *Document {
	return &Document{
		HexSize:     hexSize,
		Orientation: o,
		byID:        make(map[string]*Tile),
		byCoord:     make(map[Coord]*Tile),
	}
}

// DefaultDocument builds the built-in starting map: a radius-3 disc of grass
// tiles around the origin.
func DefaultDocument() *Document {
	const radius = 3
	d := NewDocument(0.8, OrientationPointy)
	for q := -radius; q <= radius; q++ {
		for r := max(-radius, -q-radius); r <= min(radius, -q+radius); r++ {
			c := Coord{Q: q, R: r}
			// the disc bounds make duplicates impossible
			_ = d.AddTile(&Tile{Q: q, R: r, ID: TileID(c), Terrain: TerrainGrass})
		}
	}
	return d
}

// Revision increments whenever a mutation can move pixel centers (tile
// added or removed). The layout cache keys on it.
func (d *Document) Revision() uint64 {
	return d.rev
}

// Len returns the tile count.
func (d *Document) Len() int {
	return len(d.Tiles)
}

// AddTile appends a tile, rejecting duplicate ids or coordinates.
func (d *Document) AddTile(t *Tile) error {
	if t.ID == "" {
		t.ID = TileID(t.Coord())
	}
	if _, ok := d.byID[t.ID]; ok {
		return fmt.Errorf("hexmap: duplicate tile id %q", t.ID)
	}
	if _, ok := d.byCoord[t.Coord()]; ok {
		return fmt.Errorf("hexmap: duplicate tile at (%d, %d)", t.Q, t.R)
	}
	d.Tiles = append(d.Tiles, t)
	d.byID[t.ID] = t
	d.byCoord[t.Coord()] = t
	d.rev++
	return nil
}

// RemoveTile deletes a tile by id. Returns false when the id is unknown.
func (d *Document) RemoveTile(id string) bool {
	t, ok := d.byID[id]
	if !ok {
		return false
	}
	delete(d.byID, id)
	delete(d.byCoord, t.Coord())
	for i, cur := range d.Tiles {
		if cur == t {
			d.Tiles = append(d.Tiles[:i], d.Tiles[i+1:]...)
			break
		}
	}
	d.rev++
	return true
}

// TileByID looks a tile up by its primary key.
func (d *Document) TileByID(id string) (*Tile, bool) {
	t, ok := d.byID[id]
	return t, ok
}

// TileAt looks a tile up by coordinate.
func (d *Document) TileAt(c Coord) (*Tile, bool) {
	t, ok := d.byCoord[c]
	return t, ok
}

// SetTerrain updates a tile's terrain. Returns false for unknown ids.
func (d *Document) SetTerrain(id string, terrain Terrain) bool {
	t, ok := d.byID[id]
	if !ok {
		return false
	}
	t.Terrain = terrain
	return true
}

// SetTier updates a tile's tier, clamped into [0, TierMax].
func (d *Document) SetTier(id string, tier int) bool {
	t, ok := d.byID[id]
	if !ok {
		return false
	}
	t.Tier = ClampTier(tier)
	return true
}

// AdjustTier moves a tile's tier by delta, clamping the result. The current
// value is clamped first, so out-of-range imports come back into range on
// the first edit.
func (d *Document) AdjustTier(id string, delta int) bool {
	t, ok := d.byID[id]
	if !ok {
		return false
	}
	t.Tier = ClampTier(ClampTier(t.Tier) + delta)
	return true
}

// SetAsset updates a tile's asset reference.
func (d *Document) SetAsset(id string, asset string) bool {
	t, ok := d.byID[id]
	if !ok {
		return false
	}
	t.Asset = asset
	return true
}

// HasSpawn reports spawn-set membership.
func (d *Document) HasSpawn(c Coord) bool {
	for _, p := range d.SpawnPoints {
		if p == c {
			return true
		}
	}
	return false
}

// ToggleSpawn adds the coordinate to the spawn set, or removes it when
// already present. Returns true when the coordinate is now a spawn point.
func (d *Document) ToggleSpawn(c Coord) bool {
	for i, p := range d.SpawnPoints {
		if p == c {
			d.SpawnPoints = append(d.SpawnPoints[:i], d.SpawnPoints[i+1:]...)
			return false
		}
	}
	d.SpawnPoints = append(d.SpawnPoints, c)
	return true
}

// ToggleGoal sets the goal marker. Toggling at the current goal clears it;
// anywhere else replaces it.
func (d *Document) ToggleGoal(c Coord) {
	if d.Goal != nil && *d.Goal == c {
		d.Goal = nil
		return
	}
	g := c
	d.Goal = &g
}

// MinMaxTier returns the observed tier range across all tiles. An empty
// document reports (0, 0).
func (d *Document) MinMaxTier() (int, int) {
	if len(d.Tiles) == 0 {
		return 0, 0
	}
	lo, hi := d.Tiles[0].Tier, d.Tiles[0].Tier
	for _, t := range d.Tiles[1:] {
		if t.Tier < lo {
			lo = t.Tier
		}
		if t.Tier > hi {
			hi = t.Tier
		}
	}
	return lo, hi
}

// MaxRow returns the highest mirror-axis index across the document's tiles:
// the max R for pointy orientation, the max Q for flat. Empty documents
// report 0.
func (d *Document) MaxRow() int {
	maxRow := 0
	for i, t := range d.Tiles {
		row := t.R
		if d.Orientation == OrientationFlat {
			row = t.Q
		}
		if i == 0 || row > maxRow {
			maxRow = row
		}
	}
	return maxRow
}

// Layout derives the transform configuration for this document under the
// given toggles.
func (d *Document) Layout(rect, stagger, mirror bool) Layout {
	return Layout{
		Size:        d.HexSize,
		Orientation: d.Orientation,
		Rect:        rect,
		Stagger:     stagger,
		Mirror:      mirror,
		MaxR:        d.MaxRow(),
	}
}
