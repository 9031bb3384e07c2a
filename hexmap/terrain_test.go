package hexmap

import (
	"image/color"
	"testing"
)

func TestTileColorBlendsTowardWhite(t *testing.T) {
	tile := &Tile{Terrain: TerrainGrass}
	base := BaseColor(TerrainGrass)

	// bottom of the range keeps the base color
	tile.Tier = 0
	if got := TileColor(tile, 0, 3); got != base {
		t.Fatalf("tier 0 color = %v, want base %v", got, base)
	}

	// top of the range is fully white
	tile.Tier = 3
	if got := TileColor(tile, 0, 3); got != (color.RGBA{255, 255, 255, 255}) {
		t.Fatalf("tier 3 color = %v, want white", got)
	}

	// midpoints move each channel linearly toward 255
	tile.Tier = 1
	got := TileColor(tile, 0, 3)
	f := float64(1) / float64(3)
	want := color.RGBA{
		R: uint8(float64(base.R) + (255-float64(base.R))*f),
		G: uint8(float64(base.G) + (255-float64(base.G))*f),
		B: uint8(float64(base.B) + (255-float64(base.B))*f),
		A: 0xff,
	}
	if got != want {
		t.Fatalf("tier 1 color = %v, want %v", got, want)
	}
}

func TestTileColorDegenerateRange(t *testing.T) {
	// a flat document (every tile the same tier) must not divide by zero
	tile := &Tile{Terrain: TerrainWater, Tier: 2}
	if got := TileColor(tile, 2, 2); got != BaseColor(TerrainWater) {
		t.Fatalf("degenerate range color = %v, want base", got)
	}
}

func TestUnknownTerrainFallsBackToNeutral(t *testing.T) {
	if got := BaseColor(Terrain("lava")); got != neutralColor {
		t.Fatalf("unknown terrain color = %v, want neutral %v", got, neutralColor)
	}
	tile := &Tile{Terrain: "lava", Tier: 0}
	if got := TileColor(tile, 0, 1); got != neutralColor {
		t.Fatalf("unknown terrain blend base = %v, want neutral", got)
	}
}

func TestClampTier(t *testing.T) {
	cases := []struct{ in, want int }{
		{-1, 0}, {0, 0}, {2, 2}, {TierMax, TierMax}, {TierMax + 5, TierMax},
	}
	for _, c := range cases {
		if got := ClampTier(c.in); got != c.want {
			t.Errorf("ClampTier(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}
