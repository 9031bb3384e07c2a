package edit

import "github.com/mordeng/hex-map-editor/hexmap"

// Selection tracks the focus tile (shown in the details panel) and the
// optional multi-select set. The focus can sit outside the multi-set: a
// modifier-click that removes a tile from the set still focuses it.
type Selection struct {
	focus string
	multi map[string]struct{}
}

func NewSelection() *Selection {
	return &Selection{}
}

// Focus returns the focused tile id, or "" when nothing is selected.
func (s *Selection) Focus() string {
	return s.focus
}

// Has reports multi-set membership.
func (s *Selection) Has(id string) bool {
	_, ok := s.multi[id]
	return ok
}

// MultiSize returns the multi-set cardinality.
func (s *Selection) MultiSize() int {
	return len(s.multi)
}

// Clear drops the focus and the multi-set.
func (s *Selection) Clear() {
	s.focus = ""
	s.multi = nil
}

// Click applies a plain click: single-select the tile, discarding any
// multi-set.
func (s *Selection) Click(id string) {
	s.focus = id
	s.multi = nil
}

// ToggleClick applies a modifier-click. An existing single selection of a
// different tile seeds the multi-set first; then the clicked tile's
// membership toggles. The clicked tile becomes focus either way.
func (s *Selection) ToggleClick(id string) {
	if s.multi == nil {
		s.multi = make(map[string]struct{})
		if s.focus != "" && s.focus != id {
			s.multi[s.focus] = struct{}{}
		}
	}
	if _, ok := s.multi[id]; ok {
		delete(s.multi, id)
	} else {
		s.multi[id] = struct{}{}
	}
	s.focus = id
}

// DragAdd applies one drag-select sample. Drag-select is strictly additive:
// tiles already in the set are left alone. Returns true when the tile was
// newly added, in which case it also takes focus.
func (s *Selection) DragAdd(id string) bool {
	if s.multi == nil {
		s.multi = make(map[string]struct{})
	}
	if _, ok := s.multi[id]; ok {
		return false
	}
	s.multi[id] = struct{}{}
	s.focus = id
	return true
}

// TargetIDs returns the ids a field edit applies to: every tile in the
// multi-set when non-empty, else the focus tile, else nothing.
func (s *Selection) TargetIDs() []string {
	if len(s.multi) > 0 {
		out := make([]string, 0, len(s.multi))
		for id := range s.multi {
			out = append(out, id)
		}
		return out
	}
	if s.focus != "" {
		return []string{s.focus}
	}
	return nil
}

// ApplyTerrain sets the terrain on every selected tile. Returns how many
// tiles changed.
func (s *Selection) ApplyTerrain(d *hexmap.Document, terrain hexmap.Terrain) int {
	n := 0
	for _, id := range s.TargetIDs() {
		if d.SetTerrain(id, terrain) {
			n++
		}
	}
	return n
}

// ApplyTierDelta adjusts the tier on every selected tile, clamped per tile.
func (s *Selection) ApplyTierDelta(d *hexmap.Document, delta int) int {
	n := 0
	for _, id := range s.TargetIDs() {
		if d.AdjustTier(id, delta) {
			n++
		}
	}
	return n
}

// ApplyAsset sets the asset reference on every selected tile.
func (s *Selection) ApplyAsset(d *hexmap.Document, asset string) int {
	n := 0
	for _, id := range s.TargetIDs() {
		if d.SetAsset(id, asset) {
			n++
		}
	}
	return n
}

// Prune drops selection entries that no longer resolve to tiles, e.g. after
// the document is replaced by an import.
func (s *Selection) Prune(d *hexmap.Document) {
	if s.focus != "" {
		if _, ok := d.TileByID(s.focus); !ok {
			s.focus = ""
		}
	}
	for id := range s.multi {
		if _, ok := d.TileByID(id); !ok {
			delete(s.multi, id)
		}
	}
}
