package edit

import "github.com/mordeng/hex-map-editor/hexmap"

// StrokeMode is what one pointer-down-to-release gesture does. It is decided
// once at pointer-down and never re-evaluated, so releasing a modifier key
// mid-drag cannot change the gesture's meaning.
type StrokeMode int

const (
	StrokePan StrokeMode = iota
	StrokePaint
	StrokeSelect
	StrokeMarker
)

func (m StrokeMode) String() string {
	switch m {
	case StrokePan:
		return "Pan"
	case StrokePaint:
		return "Paint"
	case StrokeSelect:
		return "Select"
	case StrokeMarker:
		return "Marker"
	default:
		return "Unknown"
	}
}

// StrokeModeFor picks the gesture mode for a pointer-down from the edit
// mode, the brush-enabled flag, and the active modifiers.
// Panning wins outright (middle button / pan key); a modifier in terrain
// mode means drag-select; terrain mode with the brush on paints; marker
// modes always route to the marker registry; everything else pans.
func StrokeModeFor(mode Mode, b Brush, modifier, pan bool) StrokeMode {
	switch {
	case pan:
		return StrokePan
	case mode == ModeSpawn, mode == ModeGoal:
		return StrokeMarker
	case modifier:
		return StrokeSelect
	case b.Enabled:
		return StrokePaint
	default:
		return StrokePan
	}
}

// Stroke is one continuous pointer gesture: created at pointer-down,
// discarded at pointer-up or pointer-leave. Holding the per-stroke painted
// record here (instead of on the editor) makes the cleanup-on-every-exit-path
// guarantee structural: dropping the stroke drops the record.
type Stroke struct {
	Mode StrokeMode

	// painted records tile ids mutated by this stroke; only meaningful for
	// StrokePaint.
	painted map[string]struct{}

	// lastTile is the most recent tile the stroke resolved to. Drag-select
	// dedupes against it so the pointer resting on one tile across frames
	// counts as a single sample.
	lastTile string

	// LastX/LastY anchor pan deltas and drag sampling.
	LastX, LastY float64
}

// BeginStroke opens a stroke session at the given pointer position.
func BeginStroke(mode StrokeMode, x, y float64) *Stroke {
	s := &Stroke{Mode: mode, LastX: x, LastY: y}
	if mode == StrokePaint {
		s.painted = make(map[string]struct{})
	}
	return s
}

// Painted reports whether this stroke already painted the tile.
func (s *Stroke) Painted(id string) bool {
	_, ok := s.painted[id]
	return ok
}

// Paint applies the brush to one tile, at most once per stroke. A tile that
// already matches the brush is skipped without being recorded, so a later
// pass over it in the same stroke re-evaluates (and stays a no-op). Returns
// true when the document actually changed.
func (s *Stroke) Paint(d *hexmap.Document, b Brush, id string) bool {
	if s.Mode != StrokePaint {
		return false
	}
	if _, done := s.painted[id]; done {
		return false
	}
	t, ok := d.TileByID(id)
	if !ok {
		return false
	}
	if b.Matches(t) {
		return false
	}
	d.SetTerrain(id, b.Terrain)
	d.SetTier(id, b.Tier)
	s.painted[id] = struct{}{}
	return true
}

// NoteTile records the tile the stroke started on, so the frames between
// pointer-down and the first real movement do not re-sample it.
func (s *Stroke) NoteTile(id string) {
	s.lastTile = id
}

// DragSelect applies one drag-select sample. Repeat samples of the tile the
// pointer is resting on are ignored; without that, the frames following a
// modifier-click's pointer-down would re-add the very tile the click just
// toggled off. Returns true when the tile newly joined the set.
func (s *Stroke) DragSelect(sel *Selection, id string) bool {
	if s.Mode != StrokeSelect {
		return false
	}
	if id == s.lastTile {
		return false
	}
	s.lastTile = id
	return sel.DragAdd(id)
}

// PanDelta returns the pointer movement since the last sample and advances
// the anchor.
func (s *Stroke) PanDelta(x, y float64) (float64, float64) {
	dx := x - s.LastX
	dy := y - s.LastY
	s.LastX = x
	s.LastY = y
	return dx, dy
}
