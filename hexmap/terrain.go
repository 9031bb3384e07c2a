package hexmap

import "image/color"

// Terrain classifies a tile. The palette below is the known set; unknown
// values are kept as-is and rendered with a neutral fallback color.
type Terrain string

const (
	TerrainGrass    Terrain = "grass"
	TerrainWater    Terrain = "water"
	TerrainSand     Terrain = "sand"
	TerrainMountain Terrain = "mountain"
	TerrainForest   Terrain = "forest"
	TerrainSwamp    Terrain = "swamp"
	TerrainRoad     Terrain = "road"
)

// TierMax bounds the height/walkability class stored on a tile. Imported
// documents may carry values outside [0, TierMax]; they are clamped the next
// time the tier is edited.
const TierMax = 3

// ClampTier forces a tier into [0, TierMax].
func ClampTier(t int) int {
	if t < 0 {
		return 0
	}
	if t > TierMax {
		return TierMax
	}
	return t
}

var terrainColors = map[Terrain]color.RGBA{
	TerrainGrass:    {R: 0x58, G: 0xa8, B: 0x47, A: 0xff},
	TerrainWater:    {R: 0x3a, G: 0x7b, B: 0xd5, A: 0xff},
	TerrainSand:     {R: 0xd8, G: 0xc4, B: 0x7a, A: 0xff},
	TerrainMountain: {R: 0x7d, G: 0x6e, B: 0x63, A: 0xff},
	TerrainForest:   {R: 0x2e, G: 0x6e, B: 0x33, A: 0xff},
	TerrainSwamp:    {R: 0x55, G: 0x64, B: 0x41, A: 0xff},
	TerrainRoad:     {R: 0xa8, G: 0x9a, B: 0x8a, A: 0xff},
}

// neutralColor is the base for unrecognized terrain values.
var neutralColor = color.RGBA{R: 0x9e, G: 0x9e, B: 0x9e, A: 0xff}

// BaseColor returns the flat terrain color, falling back to neutral gray for
// terrain outside the palette.
func BaseColor(t Terrain) color.RGBA {
	if c, ok := terrainColors[t]; ok {
		return c
	}
	return neutralColor
}

// SetBaseColor overrides the palette color for a terrain. Used by the editor
// settings file; the override applies process-wide.
func SetBaseColor(t Terrain, c color.RGBA) {
	terrainColors[t] = c
}

// Terrains lists the known palette in a stable order.
func Terrains() []Terrain {
	return []Terrain{
		TerrainGrass, TerrainWater, TerrainSand, TerrainMountain,
		TerrainForest, TerrainSwamp, TerrainRoad,
	}
}

// TileColor shades a tile's terrain base color toward white as its tier
// rises across the document's observed tier range. minTier and maxTier come
// from the document, so the blend factor stays in [0,1] for in-range data.
func TileColor(t *Tile, minTier, maxTier int) color.RGBA {
	base := BaseColor(t.Terrain)
	span := maxTier - minTier
	if span < 1 {
		span = 1
	}
	f := float64(t.Tier-minTier) / float64(span)
	blend := func(ch uint8) uint8 {
		return uint8(float64(ch) + (255-float64(ch))*f)
	}
	return color.RGBA{R: blend(base.R), G: blend(base.G), B: blend(base.B), A: 0xff}
}
