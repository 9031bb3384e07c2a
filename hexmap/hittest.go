package hexmap

import "math"

// hitThresholdFactor bounds how far (in units of hex size) a point may land
// from a tile center and still count as hitting that tile.
const hitThresholdFactor = 0.9

// LayoutCache memoizes pixel centers and bounds for one (document revision,
// layout) pair. ToPixel is pure, so the cache only needs to watch those two
// inputs; tile edits that cannot move centers (terrain, tier, markers) keep
// it valid. The zero value is ready to use.
type LayoutCache struct {
	layout Layout
	rev    uint64
	valid  bool

	centers                map[string][2]float64
	minX, minY, maxX, maxY float64
}

func (lc *LayoutCache) ensure(d *Document, l Layout) {
	if lc.valid && lc.rev == d.Revision() && lc.layout == l {
		return
	}
	lc.layout = l
	lc.rev = d.Revision()
	lc.valid = true
	lc.centers = make(map[string][2]float64, len(d.Tiles))
	for i, t := range d.Tiles {
		x, y := l.ToPixel(t.Coord())
		lc.centers[t.ID] = [2]float64{x, y}
		if i == 0 {
			lc.minX, lc.maxX = x, x
			lc.minY, lc.maxY = y, y
			continue
		}
		lc.minX = math.Min(lc.minX, x)
		lc.maxX = math.Max(lc.maxX, x)
		lc.minY = math.Min(lc.minY, y)
		lc.maxY = math.Max(lc.maxY, y)
	}
}

// Center returns the cached pixel center for a tile id.
func (lc *LayoutCache) Center(d *Document, l Layout, id string) (float64, float64, bool) {
	lc.ensure(d, l)
	c, ok := lc.centers[id]
	return c[0], c[1], ok
}

// Bounds returns the document's center-point bounding box under the layout.
// ok is false for an empty document.
func (lc *LayoutCache) Bounds(d *Document, l Layout) (minX, minY, maxX, maxY float64, ok bool) {
	if d.Len() == 0 {
		return 0, 0, 0, 0, false
	}
	lc.ensure(d, l)
	return lc.minX, lc.minY, lc.maxX, lc.maxY, true
}

// NearestTile resolves a pixel point to the tile whose center is closest,
// provided that distance is within hitThresholdFactor times the hex size.
// Ties go to the first tile in document order. A miss is a normal outcome,
// not an error.
func (lc *LayoutCache) NearestTile(d *Document, l Layout, px, py float64) (*Tile, bool) {
	lc.ensure(d, l)
	var best *Tile
	bestSq := math.Inf(1)
	for _, t := range d.Tiles {
		c := lc.centers[t.ID]
		dx := c[0] - px
		dy := c[1] - py
		if sq := dx*dx + dy*dy; sq < bestSq {
			bestSq = sq
			best = t
		}
	}
	if best == nil {
		return nil, false
	}
	limit := hitThresholdFactor * l.Size
	if bestSq > limit*limit {
		return nil, false
	}
	return best, true
}
