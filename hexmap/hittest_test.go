package hexmap

import "testing"

func hitTestDocument(t *testing.T) *Document {
	t.Helper()
	d := NewDocument(1.0, OrientationPointy)
	for q := 0; q < 3; q++ {
		for r := 0; r < 3; r++ {
			mustAdd(t, d, &Tile{Q: q, R: r, Terrain: TerrainGrass})
		}
	}
	return d
}

func TestNearestTileHit(t *testing.T) {
	d := hitTestDocument(t)
	l := d.Layout(false, false, false)
	var cache LayoutCache

	for _, tile := range d.Tiles {
		cx, cy := l.ToPixel(tile.Coord())
		// slightly off-center still resolves to the same tile
		got, ok := cache.NearestTile(d, l, cx+0.2, cy-0.1)
		if !ok || got.ID != tile.ID {
			t.Fatalf("NearestTile near %s = %v, ok=%v", tile.ID, got, ok)
		}
	}
}

func TestNearestTileMissOutsideThreshold(t *testing.T) {
	d := hitTestDocument(t)
	l := d.Layout(false, false, false)
	var cache LayoutCache

	// far off the grid: a miss is a normal, silent outcome
	if _, ok := cache.NearestTile(d, l, 100, 100); ok {
		t.Fatal("expected miss far from every tile")
	}

	// just past 0.9 x size from the corner tile, pointing away from the grid
	cx, cy := l.ToPixel(Coord{0, 0})
	if _, ok := cache.NearestTile(d, l, cx-0.95, cy-0.95); ok {
		t.Fatal("expected miss beyond hit threshold")
	}
	if got, ok := cache.NearestTile(d, l, cx-0.5, cy-0.5); !ok || got.ID != "tile_0_0" {
		t.Fatalf("expected corner tile hit, got %v ok=%v", got, ok)
	}
}

func TestNearestTileEmptyDocument(t *testing.T) {
	d := NewDocument(1.0, OrientationPointy)
	var cache LayoutCache
	if _, ok := cache.NearestTile(d, d.Layout(false, false, false), 0, 0); ok {
		t.Fatal("empty document should never hit")
	}
}

func TestLayoutCacheInvalidation(t *testing.T) {
	d := NewDocument(1.0, OrientationPointy)
	mustAdd(t, d, &Tile{Q: 0, R: 0})
	l := d.Layout(false, false, false)
	var cache LayoutCache

	if _, _, ok := cache.Center(d, l, "tile_0_0"); !ok {
		t.Fatal("center missing for existing tile")
	}

	// adding a tile bumps the revision and must refresh the cache
	mustAdd(t, d, &Tile{Q: 4, R: 0})
	if _, _, ok := cache.Center(d, l, "tile_4_0"); !ok {
		t.Fatal("cache not refreshed after AddTile")
	}

	// a changed layout is a different cache key
	mirrored := l
	mirrored.Mirror = true
	mirrored.MaxR = d.MaxRow()
	x, y := mirrored.ToPixel(Coord{Q: 0, R: 0})
	gx, gy, ok := cache.Center(d, mirrored, "tile_0_0")
	if !ok || gx != x || gy != y {
		t.Fatalf("cache center under new layout = (%v, %v), want (%v, %v)", gx, gy, x, y)
	}
}

func TestLayoutCacheBounds(t *testing.T) {
	d := NewDocument(1.0, OrientationPointy)
	var cache LayoutCache
	if _, _, _, _, ok := cache.Bounds(d, d.Layout(false, false, false)); ok {
		t.Fatal("empty document should have no bounds")
	}

	mustAdd(t, d, &Tile{Q: 0, R: 0})
	mustAdd(t, d, &Tile{Q: 2, R: 0})
	l := d.Layout(false, false, false)
	minX, minY, maxX, maxY, ok := cache.Bounds(d, l)
	if !ok {
		t.Fatal("bounds missing")
	}
	x0, y0 := l.ToPixel(Coord{0, 0})
	x1, _ := l.ToPixel(Coord{Q: 2, R: 0})
	if minX != x0 || maxX != x1 || minY != y0 || maxY != y0 {
		t.Fatalf("bounds = (%v, %v, %v, %v)", minX, minY, maxX, maxY)
	}
}
