package hexmap

import "testing"

func mustAdd(t *testing.T, d *Document, tile *Tile) {
	t.Helper()
	if err := d.AddTile(tile); err != nil {
		t.Fatal(err)
	}
}

func TestAddTileRejectsDuplicates(t *testing.T) {
	d := NewDocument(1, OrientationPointy)
	mustAdd(t, d, &Tile{Q: 0, R: 0, Terrain: TerrainGrass})

	if err := d.AddTile(&Tile{Q: 0, R: 0, ID: "elsewhere", Terrain: TerrainWater}); err == nil {
		t.Fatal("expected duplicate coordinate error")
	}
	if err := d.AddTile(&Tile{Q: 5, R: 5, ID: "tile_0_0", Terrain: TerrainWater}); err == nil {
		t.Fatal("expected duplicate id error")
	}
	if d.Len() != 1 {
		t.Fatalf("Len = %d, want 1", d.Len())
	}
}

func TestRemoveTile(t *testing.T) {
	d := NewDocument(1, OrientationPointy)
	mustAdd(t, d, &Tile{Q: 0, R: 0})
	mustAdd(t, d, &Tile{Q: 1, R: 0})

	rev := d.Revision()
	if !d.RemoveTile("tile_0_0") {
		t.Fatal("RemoveTile returned false for existing tile")
	}
	if d.Revision() == rev {
		t.Fatal("revision should change when a tile is removed")
	}
	if _, ok := d.TileAt(Coord{0, 0}); ok {
		t.Fatal("removed tile still resolvable by coordinate")
	}
	if d.RemoveTile("tile_0_0") {
		t.Fatal("RemoveTile returned true for missing tile")
	}
	// the survivor is unaffected
	if _, ok := d.TileByID("tile_1_0"); !ok {
		t.Fatal("unrelated tile lost")
	}
}

func TestTierClampSequences(t *testing.T) {
	cases := []struct {
		name   string
		start  int
		deltas []int
		want   int
	}{
		{"up_past_max", 2, []int{1, 1, 1}, TierMax},
		{"down_past_zero", 1, []int{-1, -1, -1}, 0},
		{"bounce", 0, []int{5, -1, -10, 2}, 2},
		{"imported_out_of_range_clamps_on_first_edit", 9, []int{0}, TierMax},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d := NewDocument(1, OrientationPointy)
			mustAdd(t, d, &Tile{Q: 0, R: 0, Tier: c.start})
			for _, delta := range c.deltas {
				if !d.AdjustTier("tile_0_0", delta) {
					t.Fatal("AdjustTier failed")
				}
				tile, _ := d.TileByID("tile_0_0")
				if tile.Tier < 0 || tile.Tier > TierMax {
					t.Fatalf("tier %d escaped [0, %d]", tile.Tier, TierMax)
				}
			}
			tile, _ := d.TileByID("tile_0_0")
			if tile.Tier != c.want {
				t.Fatalf("tier = %d, want %d", tile.Tier, c.want)
			}
		})
	}
}

func TestSetTierClamps(t *testing.T) {
	d := NewDocument(1, OrientationPointy)
	mustAdd(t, d, &Tile{Q: 0, R: 0})
	d.SetTier("tile_0_0", 99)
	tile, _ := d.TileByID("tile_0_0")
	if tile.Tier != TierMax {
		t.Fatalf("tier = %d, want %d", tile.Tier, TierMax)
	}
	d.SetTier("tile_0_0", -4)
	if tile.Tier != 0 {
		t.Fatalf("tier = %d, want 0", tile.Tier)
	}
}

func TestSpawnToggleLaw(t *testing.T) {
	d := NewDocument(1, OrientationPointy)
	p := Coord{Q: 2, R: -1}

	// markers do not require a tile at the coordinate
	if !d.ToggleSpawn(p) {
		t.Fatal("first toggle should add")
	}
	if !d.HasSpawn(p) {
		t.Fatal("spawn missing after toggle on")
	}
	d.ToggleSpawn(Coord{Q: 0, R: 0})
	if d.ToggleSpawn(p) {
		t.Fatal("second toggle should remove")
	}
	if d.HasSpawn(p) {
		t.Fatal("spawn present after toggle off")
	}
	if len(d.SpawnPoints) != 1 || d.SpawnPoints[0] != (Coord{Q: 0, R: 0}) {
		t.Fatalf("unrelated spawn points disturbed: %v", d.SpawnPoints)
	}
}

func TestGoalToggleLaw(t *testing.T) {
	d := NewDocument(1, OrientationPointy)
	a := Coord{Q: 1, R: 1}
	b := Coord{Q: -2, R: 0}

	d.ToggleGoal(a)
	if d.Goal == nil || *d.Goal != a {
		t.Fatalf("goal = %v, want %v", d.Goal, a)
	}
	// setting elsewhere replaces
	d.ToggleGoal(b)
	if d.Goal == nil || *d.Goal != b {
		t.Fatalf("goal = %v, want %v", d.Goal, b)
	}
	// setting at the current goal clears
	d.ToggleGoal(b)
	if d.Goal != nil {
		t.Fatalf("goal = %v, want none", d.Goal)
	}
}

func TestMinMaxTier(t *testing.T) {
	d := NewDocument(1, OrientationPointy)
	if lo, hi := d.MinMaxTier(); lo != 0 || hi != 0 {
		t.Fatalf("empty document range = (%d, %d)", lo, hi)
	}
	mustAdd(t, d, &Tile{Q: 0, R: 0, Tier: 2})
	mustAdd(t, d, &Tile{Q: 1, R: 0, Tier: 0})
	mustAdd(t, d, &Tile{Q: 2, R: 0, Tier: 3})
	if lo, hi := d.MinMaxTier(); lo != 0 || hi != 3 {
		t.Fatalf("range = (%d, %d), want (0, 3)", lo, hi)
	}
}

func TestMaxRowFollowsOrientation(t *testing.T) {
	d := NewDocument(1, OrientationPointy)
	mustAdd(t, d, &Tile{Q: 7, R: 2})
	mustAdd(t, d, &Tile{Q: -1, R: 4})
	if got := d.MaxRow(); got != 4 {
		t.Fatalf("pointy MaxRow = %d, want 4", got)
	}
	d.Orientation = OrientationFlat
	if got := d.MaxRow(); got != 7 {
		t.Fatalf("flat MaxRow = %d, want 7", got)
	}
}

func TestDefaultDocument(t *testing.T) {
	d := DefaultDocument()
	// radius-3 disc: 1 + 3*3*(3+1) = 37 tiles
	if d.Len() != 37 {
		t.Fatalf("default document has %d tiles, want 37", d.Len())
	}
	seen := make(map[Coord]bool)
	for _, tile := range d.Tiles {
		if seen[tile.Coord()] {
			t.Fatalf("duplicate coordinate %v", tile.Coord())
		}
		seen[tile.Coord()] = true
		if Distance(Coord{}, tile.Coord()) > 3 {
			t.Fatalf("tile %v outside radius 3", tile.Coord())
		}
		if tile.Terrain != TerrainGrass {
			t.Fatalf("tile %v terrain = %q", tile.Coord(), tile.Terrain)
		}
	}
}

func TestNeighborsAndDistance(t *testing.T) {
	c := Coord{Q: 1, R: -2}
	for _, n := range c.Neighbors() {
		if Distance(c, n) != 1 {
			t.Fatalf("neighbor %v at distance %d", n, Distance(c, n))
		}
	}
	if got := Distance(Coord{}, Coord{Q: 3, R: -1}); got != 3 {
		t.Fatalf("Distance = %d, want 3", got)
	}
}
