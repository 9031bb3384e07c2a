package edit

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mordeng/hex-map-editor/hexmap"
)

func threeTileDoc(t *testing.T) *hexmap.Document {
	t.Helper()
	d := hexmap.NewDocument(1, hexmap.OrientationPointy)
	for q := 0; q < 3; q++ {
		if err := d.AddTile(&hexmap.Tile{Q: q, R: 0, Terrain: hexmap.TerrainGrass, Tier: 1}); err != nil {
			t.Fatal(err)
		}
	}
	return d
}

func sortedTargets(s *Selection) []string {
	ids := s.TargetIDs()
	sort.Strings(ids)
	return ids
}

func TestPlainClickDiscardsMultiSet(t *testing.T) {
	s := NewSelection()
	s.ToggleClick("a")
	s.ToggleClick("b")
	if s.MultiSize() != 2 {
		t.Fatalf("multi size = %d, want 2", s.MultiSize())
	}
	s.Click("c")
	if s.Focus() != "c" || s.MultiSize() != 0 {
		t.Fatalf("focus=%q multi=%d after plain click", s.Focus(), s.MultiSize())
	}
	if diff := cmp.Diff([]string{"c"}, sortedTargets(s)); diff != "" {
		t.Errorf("targets mismatch (-want+got):\n%s", diff)
	}
}

// Select A, modifier-click B, modifier-click A again: the set ends as {B}
// with focus back on A.
func TestToggleClickSeedsFromSingle(t *testing.T) {
	s := NewSelection()
	s.Click("a")
	s.ToggleClick("b")
	if s.Focus() != "b" || !s.Has("a") || !s.Has("b") {
		t.Fatalf("after toggle b: focus=%q has(a)=%v has(b)=%v", s.Focus(), s.Has("a"), s.Has("b"))
	}
	s.ToggleClick("a")
	if s.Focus() != "a" {
		t.Fatalf("focus = %q, want a", s.Focus())
	}
	if diff := cmp.Diff([]string{"b"}, sortedTargets(s)); diff != "" {
		t.Errorf("multi-set mismatch (-want+got):\n%s", diff)
	}
}

func TestToggleClickSameTileTwice(t *testing.T) {
	s := NewSelection()
	s.Click("a")
	// toggling the focused tile itself must not seed the set with it first
	s.ToggleClick("a")
	if s.Focus() != "a" {
		t.Fatalf("focus = %q", s.Focus())
	}
	if diff := cmp.Diff([]string{"a"}, sortedTargets(s)); diff != "" {
		t.Errorf("multi-set mismatch (-want+got):\n%s", diff)
	}
	s.ToggleClick("a")
	// empty set, focus retained: edits now apply to the focus tile only
	if s.MultiSize() != 0 || s.Focus() != "a" {
		t.Fatalf("multi=%d focus=%q", s.MultiSize(), s.Focus())
	}
}

func TestDragAddIsStrictlyAdditive(t *testing.T) {
	s := NewSelection()
	if !s.DragAdd("a") || !s.DragAdd("b") {
		t.Fatal("new tiles should be added")
	}
	if s.DragAdd("a") {
		t.Fatal("revisited tile should not re-add")
	}
	if s.Focus() != "b" {
		t.Fatalf("focus = %q, want last added", s.Focus())
	}
	if diff := cmp.Diff([]string{"a", "b"}, sortedTargets(s)); diff != "" {
		t.Errorf("multi-set mismatch (-want+got):\n%s", diff)
	}
}

func TestApplyTargets(t *testing.T) {
	cases := []struct {
		name    string
		setup   func(s *Selection)
		changed int
		check   func(t *testing.T, d *hexmap.Document)
	}{
		{
			"no_selection_is_noop",
			func(s *Selection) {},
			0,
			func(t *testing.T, d *hexmap.Document) {
				tile, _ := d.TileByID("tile_0_0")
				if tile.Terrain != hexmap.TerrainGrass {
					t.Fatal("tile mutated without selection")
				}
			},
		},
		{
			"single_focus",
			func(s *Selection) { s.Click("tile_1_0") },
			1,
			func(t *testing.T, d *hexmap.Document) {
				tile, _ := d.TileByID("tile_1_0")
				if tile.Terrain != hexmap.TerrainWater {
					t.Fatal("focus tile not mutated")
				}
				other, _ := d.TileByID("tile_0_0")
				if other.Terrain != hexmap.TerrainGrass {
					t.Fatal("unselected tile mutated")
				}
			},
		},
		{
			"multi_set_wins_over_focus",
			func(s *Selection) {
				s.Click("tile_2_0")
				s.ToggleClick("tile_0_0")
			},
			2,
			func(t *testing.T, d *hexmap.Document) {
				for _, id := range []string{"tile_0_0", "tile_2_0"} {
					tile, _ := d.TileByID(id)
					if tile.Terrain != hexmap.TerrainWater {
						t.Fatalf("%s not mutated", id)
					}
				}
				other, _ := d.TileByID("tile_1_0")
				if other.Terrain != hexmap.TerrainGrass {
					t.Fatal("unselected tile mutated")
				}
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d := threeTileDoc(t)
			s := NewSelection()
			c.setup(s)
			if got := s.ApplyTerrain(d, hexmap.TerrainWater); got != c.changed {
				t.Fatalf("ApplyTerrain changed %d tiles, want %d", got, c.changed)
			}
			c.check(t, d)
		})
	}
}

func TestApplyTierDeltaClampsPerTile(t *testing.T) {
	d := threeTileDoc(t)
	d.SetTier("tile_0_0", hexmap.TierMax)
	s := NewSelection()
	s.ToggleClick("tile_0_0")
	s.ToggleClick("tile_1_0")

	s.ApplyTierDelta(d, 1)
	a, _ := d.TileByID("tile_0_0")
	b, _ := d.TileByID("tile_1_0")
	if a.Tier != hexmap.TierMax {
		t.Fatalf("tile_0_0 tier = %d, want clamped %d", a.Tier, hexmap.TierMax)
	}
	if b.Tier != 2 {
		t.Fatalf("tile_1_0 tier = %d, want 2", b.Tier)
	}
}

func TestPruneAfterDocumentReplacement(t *testing.T) {
	d := threeTileDoc(t)
	s := NewSelection()
	s.ToggleClick("tile_0_0")
	s.ToggleClick("ghost")

	s.Prune(d)
	if s.Has("ghost") {
		t.Fatal("ghost id survived prune")
	}
	if !s.Has("tile_0_0") {
		t.Fatal("live id dropped by prune")
	}
	if s.Focus() != "" {
		t.Fatalf("focus = %q, want cleared (pointed at ghost)", s.Focus())
	}
}
