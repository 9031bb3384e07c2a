// Package edit holds the editor's interaction state machines: edit modes,
// selection, brush configuration, and stroke sessions. Everything here is
// pure with respect to rendering and input devices; it operates on hexmap
// values and is driven by the canvas layer.
package edit

import "github.com/mordeng/hex-map-editor/hexmap"

// Mode is the active editing mode. It decides where a resolved tile click is
// routed: selection/brush for ModeTerrain, the marker registry otherwise.
type Mode int

const (
	ModeTerrain Mode = iota
	ModeSpawn
	ModeGoal
)

func (m Mode) String() string {
	switch m {
	case ModeTerrain:
		return "Terrain"
	case ModeSpawn:
		return "Spawn"
	case ModeGoal:
		return "Goal"
	default:
		return "Unknown"
	}
}

// Brush carries the paint configuration applied during a brush stroke.
type Brush struct {
	Enabled bool
	Terrain hexmap.Terrain
	Tier    int
}

// Matches reports whether a tile already carries the brush's terrain and
// (clamped) tier, i.e. painting it would be a no-op.
func (b Brush) Matches(t *hexmap.Tile) bool {
	return t.Terrain == b.Terrain && t.Tier == hexmap.ClampTier(b.Tier)
}
