package hexmap

import "math"

// Orientation selects whether hexes present a vertex ("pointy") or an edge
// ("flat") at the top. The two orientations are exact 90-degree duals in the
// placement formulas.
type Orientation string

const (
	OrientationPointy Orientation = "pointy"
	OrientationFlat   Orientation = "flat"
)

const sqrt3 = 1.7320508075688772

// Layout captures every toggle that affects where a tile lands in pixel
// space. It is an immutable value; pass it explicitly rather than reading
// editor state so the transform stays a pure function.
type Layout struct {
	Size        float64
	Orientation Orientation
	Rect        bool // axis-aligned rows/columns instead of the sheared axial rhombus
	Stagger     bool // brick offset on odd rows (pointy) or columns (flat)
	Mirror      bool // flip placement across the maximum row/column
	MaxR        int  // highest row (pointy) or column (flat) index, used by Mirror
}

// ToPixel returns the pixel center for an axial coordinate.
//
// Mirroring flips position only: the mirrored index replaces the original on
// the major placement axis (and in the rhombus skew term), but stagger parity
// always comes from the unmirrored coordinate so staggered rows keep their
// physical alignment.
func (l Layout) ToPixel(c Coord) (float64, float64) {
	if l.Orientation == OrientationFlat {
		col := c.Q
		if l.Mirror {
			col = l.MaxR - c.Q
		}
		x := 1.5 * l.Size * float64(col)
		var y float64
		if l.Rect {
			y = sqrt3 * l.Size * float64(c.R)
		} else {
			y = sqrt3 * l.Size * (float64(c.R) + float64(col)/2)
		}
		if l.Stagger && c.Q&1 != 0 {
			y += sqrt3 * l.Size / 2
		}
		return x, y
	}

	row := c.R
	if l.Mirror {
		row = l.MaxR - c.R
	}
	var x float64
	if l.Rect {
		x = sqrt3 * l.Size * float64(c.Q)
	} else {
		x = sqrt3 * l.Size * (float64(c.Q) + float64(row)/2)
	}
	y := 1.5 * l.Size * float64(row)
	if l.Stagger && c.R&1 != 0 {
		x += sqrt3 * l.Size / 2
	}
	return x, y
}

// Vertices returns the six polygon corners for a hex centered at (cx, cy).
// Pointy hexes start at 30 degrees, flat at 0, stepping 60.
func (l Layout) Vertices(cx, cy float64) [6][2]float64 {
	start := 0.0
	if l.Orientation != OrientationFlat {
		start = 30
	}
	var out [6][2]float64
	for i := 0; i < 6; i++ {
		a := (start + 60*float64(i)) * math.Pi / 180
		out[i] = [2]float64{cx + l.Size*math.Cos(a), cy + l.Size*math.Sin(a)}
	}
	return out
}
