package main

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/mordeng/hex-map-editor/edit"
	"github.com/mordeng/hex-map-editor/hexmap"
)

// pixelsPerUnit scales world coordinates (hex-size units) to screen pixels
// at zoom 1.
const pixelsPerUnit = 64.0

var whiteImage = ebiten.NewImage(3, 3)

func init() {
	whiteImage.Fill(color.White)
}

// Canvas owns the view transform (pan/zoom) and the pointer-stroke
// lifecycle. The tool panel on the right and the toolbar on top are outside
// its active area.
type Canvas struct {
	Zoom    float64
	OffsetX float64
	OffsetY float64

	// screen layout, set on resize
	width, height int
	topInset      int
	rightInset    int

	// middle-button pan, independent of the stroke machinery
	midDragActive bool
	midLastX      int
	midLastY      int

	prevMouse bool
	stroke    *edit.Stroke
}

func NewCanvas() *Canvas {
	return &Canvas{Zoom: 1, topInset: toolbarHeight, rightInset: panelWidth}
}

func (c *Canvas) Resize(w, h int) {
	c.width = w
	c.height = h
}

// EndStroke drops any in-flight stroke with the same cleanup as a release.
func (c *Canvas) EndStroke() {
	c.stroke = nil
}

func (c *Canvas) inCanvas(mx, my int) bool {
	return mx >= 0 && mx < c.width-c.rightInset && my >= c.topInset && my < c.height
}

// screenToWorld inverts the view transform.
func (c *Canvas) screenToWorld(mx, my int) (float64, float64) {
	s := pixelsPerUnit * c.Zoom
	return (float64(mx) - c.OffsetX) / s, (float64(my) - c.OffsetY) / s
}

func (c *Canvas) worldToScreen(wx, wy float64) (float32, float32) {
	s := pixelsPerUnit * c.Zoom
	return float32(wx*s + c.OffsetX), float32(wy*s + c.OffsetY)
}

// FitDocument centers the document's bounds in the canvas at a zoom that
// shows the whole map.
func (c *Canvas) FitDocument(d *hexmap.Document, l hexmap.Layout) {
	var cache hexmap.LayoutCache
	minX, minY, maxX, maxY, ok := cache.Bounds(d, l)
	if !ok {
		c.Zoom = 1
		c.OffsetX = float64(c.width) / 2
		c.OffsetY = float64(c.height) / 2
		return
	}
	w := (maxX - minX + 4*l.Size) * pixelsPerUnit
	h := (maxY - minY + 4*l.Size) * pixelsPerUnit
	availW := float64(c.width - c.rightInset)
	availH := float64(c.height - c.topInset)
	if availW <= 0 || availH <= 0 {
		availW, availH = 1024, 768
	}
	zoom := math.Min(availW/w, availH/h)
	c.Zoom = math.Min(math.Max(zoom, minZoom), maxZoom)

	s := pixelsPerUnit * c.Zoom
	cx := (minX + maxX) / 2
	cy := (minY + maxY) / 2
	c.OffsetX = availW/2 - cx*s
	c.OffsetY = float64(c.topInset) + availH/2 - cy*s
}

const (
	minZoom = 0.25
	maxZoom = 8.0
)

// Update runs the per-frame pointer handling: wheel zoom, middle-drag pan,
// and the left-button stroke lifecycle. The stroke's mode is decided once at
// pointer-down and kept until release or leave.
func (c *Canvas) Update(e *Editor, mx, my int) {
	layout := e.layout()

	// wheel zoom anchored at the cursor
	if c.inCanvas(mx, my) {
		if _, wy := ebiten.Wheel(); wy != 0 {
			wxBefore, wyBefore := c.screenToWorld(mx, my)
			factor := 1.1
			if wy < 0 {
				factor = 1.0 / 1.1
			}
			c.Zoom = math.Min(math.Max(c.Zoom*factor, minZoom), maxZoom)
			// keep the point under the cursor fixed
			s := pixelsPerUnit * c.Zoom
			c.OffsetX = float64(mx) - wxBefore*s
			c.OffsetY = float64(my) - wyBefore*s
		}
	}

	// middle-button pan
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle) {
		if !c.midDragActive {
			c.midDragActive = true
			c.midLastX = mx
			c.midLastY = my
		}
		c.OffsetX += float64(mx - c.midLastX)
		c.OffsetY += float64(my - c.midLastY)
		c.midLastX = mx
		c.midLastY = my
	} else {
		c.midDragActive = false
	}

	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	modifier := ebiten.IsKeyPressed(ebiten.KeyShift) ||
		ebiten.IsKeyPressed(ebiten.KeyShiftLeft) ||
		ebiten.IsKeyPressed(ebiten.KeyShiftRight)
	panKey := ebiten.IsKeyPressed(ebiten.KeySpace)

	switch {
	case pressed && !c.prevMouse:
		if c.inCanvas(mx, my) {
			mode := edit.StrokeModeFor(e.mode, e.brush, modifier, panKey)
			c.stroke = edit.BeginStroke(mode, float64(mx), float64(my))
			wx, wy := c.screenToWorld(mx, my)
			if tile, ok := e.cache.NearestTile(e.doc, layout, wx, wy); ok {
				if mode == edit.StrokePaint {
					c.stroke.Paint(e.doc, e.brush, tile.ID)
				} else {
					e.tileClicked(tile, mode, modifier)
					c.stroke.NoteTile(tile.ID)
				}
			}
		}
	case pressed && c.prevMouse && c.stroke != nil:
		if !c.inCanvas(mx, my) {
			// pointer left the surface: end the stroke defensively, same
			// cleanup as a release
			c.stroke = nil
			break
		}
		switch c.stroke.Mode {
		case edit.StrokePan:
			dx, dy := c.stroke.PanDelta(float64(mx), float64(my))
			c.OffsetX += dx
			c.OffsetY += dy
		case edit.StrokePaint:
			wx, wy := c.screenToWorld(mx, my)
			if tile, ok := e.cache.NearestTile(e.doc, layout, wx, wy); ok {
				c.stroke.Paint(e.doc, e.brush, tile.ID)
			}
		case edit.StrokeSelect:
			wx, wy := c.screenToWorld(mx, my)
			if tile, ok := e.cache.NearestTile(e.doc, layout, wx, wy); ok {
				c.stroke.DragSelect(e.sel, tile.ID)
			}
		}
	case !pressed && c.prevMouse:
		c.stroke = nil
	}
	c.prevMouse = pressed
}

// Draw renders the document: filled hex polygons shaded by tier, outlines,
// selection and hover highlights, then spawn and goal markers.
func (c *Canvas) Draw(screen *ebiten.Image, e *Editor) {
	screen.Fill(color.RGBA{R: 0x20, G: 0x22, B: 0x26, A: 0xff})

	layout := e.layout()
	minTier, maxTier := e.doc.MinMaxTier()

	mx, my := ebiten.CursorPosition()
	var hover *hexmap.Tile
	if c.inCanvas(mx, my) {
		wx, wy := c.screenToWorld(mx, my)
		if t, ok := e.cache.NearestTile(e.doc, layout, wx, wy); ok {
			hover = t
		}
	}

	for _, t := range e.doc.Tiles {
		wx, wy, ok := e.cache.Center(e.doc, layout, t.ID)
		if !ok {
			continue
		}
		verts := layout.Vertices(wx, wy)
		fill := hexmap.TileColor(t, minTier, maxTier)
		if hover != nil && hover.ID == t.ID {
			fill = lighten(fill, 0.25)
		}
		c.fillHex(screen, verts, fill)

		outline := color.RGBA{R: 0x10, G: 0x10, B: 0x10, A: 0xff}
		width := float32(1)
		if e.sel.Has(t.ID) {
			outline = colornames.Gold
			width = 2
		}
		if e.sel.Focus() == t.ID {
			outline = colornames.Orange
			width = 3
		}
		c.strokeHex(screen, verts, width, outline)
	}

	markerR := float32(layout.Size * pixelsPerUnit * c.Zoom * 0.35)
	for _, p := range e.doc.SpawnPoints {
		wx, wy := layout.ToPixel(p)
		sx, sy := c.worldToScreen(wx, wy)
		vector.FillCircle(screen, sx, sy, markerR, color.RGBA{R: 0xd0, G: 0x30, B: 0x30, A: 0xc0}, true)
		vector.StrokeCircle(screen, sx, sy, markerR, 2, colornames.White, true)
	}
	if g := e.doc.Goal; g != nil {
		wx, wy := layout.ToPixel(*g)
		sx, sy := c.worldToScreen(wx, wy)
		vector.FillCircle(screen, sx, sy, markerR, color.RGBA{R: 0x30, G: 0xc0, B: 0x60, A: 0xc0}, true)
		vector.StrokeCircle(screen, sx, sy, markerR*0.55, 2, colornames.White, true)
	}
}

// fillHex draws a filled hexagon as a triangle fan around the center.
func (c *Canvas) fillHex(dst *ebiten.Image, worldVerts [6][2]float64, col color.RGBA) {
	var cx, cy float32
	screenVerts := make([]ebiten.Vertex, 0, 7)
	for _, v := range worldVerts {
		sx, sy := c.worldToScreen(v[0], v[1])
		cx += sx / 6
		cy += sy / 6
		screenVerts = append(screenVerts, vertexAt(sx, sy, col))
	}
	screenVerts = append(screenVerts, vertexAt(cx, cy, col))

	indices := make([]uint16, 0, 18)
	for i := uint16(0); i < 6; i++ {
		indices = append(indices, 6, i, (i+1)%6)
	}
	sub := whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	dst.DrawTriangles(screenVerts, indices, sub, nil)
}

func (c *Canvas) strokeHex(dst *ebiten.Image, worldVerts [6][2]float64, width float32, col color.Color) {
	for i := 0; i < 6; i++ {
		x0, y0 := c.worldToScreen(worldVerts[i][0], worldVerts[i][1])
		x1, y1 := c.worldToScreen(worldVerts[(i+1)%6][0], worldVerts[(i+1)%6][1])
		vector.StrokeLine(dst, x0, y0, x1, y1, width, col, true)
	}
}

func vertexAt(x, y float32, col color.RGBA) ebiten.Vertex {
	return ebiten.Vertex{
		DstX:   x,
		DstY:   y,
		SrcX:   1,
		SrcY:   1,
		ColorR: float32(col.R) / 255,
		ColorG: float32(col.G) / 255,
		ColorB: float32(col.B) / 255,
		ColorA: float32(col.A) / 255,
	}
}

func lighten(c color.RGBA, f float64) color.RGBA {
	blend := func(ch uint8) uint8 {
		return uint8(float64(ch) + (255-float64(ch))*f)
	}
	return color.RGBA{R: blend(c.R), G: blend(c.G), B: blend(c.B), A: c.A}
}
