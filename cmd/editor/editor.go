package main

import (
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/mordeng/hex-map-editor/edit"
	"github.com/mordeng/hex-map-editor/hexmap"
)

// Editor is the application root: the live document, the layout toggles, the
// interaction state machines, and the UI glue. All mutation happens
// synchronously inside Update, one input event at a time.
type Editor struct {
	doc   *hexmap.Document
	cache hexmap.LayoutCache

	// layout toggles; combined with the document into a hexmap.Layout each
	// frame so the transform itself stays a pure function
	rectLayout bool
	stagger    bool
	mirror     bool

	mode  edit.Mode
	brush edit.Brush
	sel   *edit.Selection

	canvas   *Canvas
	panSpeed float64

	ui     *ebitenui.UI
	panels *Panels

	filename string
	prompt   *Prompt
	notice   *Notice
	watcher  *FileWatcher

	clipboardReady bool
}

func NewEditor(doc *hexmap.Document, filename string) *Editor {
	e := &Editor{
		doc:      doc,
		filename: filename,
		mode:     edit.ModeTerrain,
		brush:    edit.Brush{Terrain: hexmap.TerrainGrass},
		sel:      edit.NewSelection(),
		canvas:   NewCanvas(),
		panSpeed: 12,
		prompt:   NewPrompt(),
		notice:   NewNotice(),
	}
	e.canvas.FitDocument(doc, e.layout())
	return e
}

// layout derives the current transform configuration.
func (e *Editor) layout() hexmap.Layout {
	return e.doc.Layout(e.rectLayout, e.stagger, e.mirror)
}

// replaceDocument swaps in a freshly imported document. The previous one is
// discarded unconditionally; selection entries that no longer resolve are
// pruned rather than migrated.
func (e *Editor) replaceDocument(doc *hexmap.Document) {
	e.doc = doc
	e.sel.Prune(doc)
	e.canvas.EndStroke()
	e.canvas.FitDocument(doc, e.layout())
	e.syncUI()
}

func (e *Editor) Update() error {
	// modal surfaces capture all input first
	if e.notice.Update() {
		return nil
	}
	if e.prompt.Update() {
		return nil
	}
	if e.ui != nil {
		e.ui.Update()
	}

	e.drainWatcher()

	// typing into a text input suppresses the editor hotkeys
	typing := false
	if e.ui != nil {
		if fw := e.ui.GetFocusedWidget(); fw != nil {
			if _, ok := fw.(*widget.TextInput); ok {
				typing = true
			}
		}
	}
	if !typing {
		e.handleKeys()
	}

	mx, my := ebiten.CursorPosition()
	e.canvas.Update(e, mx, my)

	e.syncUI()
	return nil
}

func (e *Editor) handleKeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit1):
		e.setMode(edit.ModeTerrain)
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit2):
		e.setMode(edit.ModeSpawn)
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit3):
		e.setMode(edit.ModeGoal)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		e.brush.Enabled = !e.brush.Enabled
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		e.cycleBrushTerrain(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyY) {
		e.brush.Tier = (e.brush.Tier + 1) % (hexmap.TierMax + 1)
	}

	// layout toggles: any of these changes the layout key, which refreshes
	// the center cache on the next query
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		e.rectLayout = !e.rectLayout
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		e.stagger = !e.stagger
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		e.mirror = !e.mirror
	}

	// arrow-key pan
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		e.canvas.OffsetX += e.panSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		e.canvas.OffsetX -= e.panSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		e.canvas.OffsetY += e.panSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		e.canvas.OffsetY -= e.panSpeed
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		e.flipOrientation()
	}

	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) ||
		ebiten.IsKeyPressed(ebiten.KeyControlLeft) ||
		ebiten.IsKeyPressed(ebiten.KeyControlRight)
	if !ctrl {
		return
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		e.SaveCurrent()
	case inpututil.IsKeyJustPressed(ebiten.KeyL):
		e.promptLoad()
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		e.newDocument()
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		e.CopyToClipboard()
	case inpututil.IsKeyJustPressed(ebiten.KeyV):
		e.PasteFromClipboard()
	}
}

// newDocument discards everything, including any file association.
func (e *Editor) newDocument() {
	e.replaceDocument(hexmap.DefaultDocument())
	e.filename = ""
	e.stopWatcher()
}

func (e *Editor) flipOrientation() {
	if e.doc.Orientation == hexmap.OrientationPointy {
		e.doc.Orientation = hexmap.OrientationFlat
	} else {
		e.doc.Orientation = hexmap.OrientationPointy
	}
}

func (e *Editor) setMode(m edit.Mode) {
	// switching away from terrain keeps the selection; it just goes dormant
	e.mode = m
	if e.panels != nil {
		e.panels.SetMode(m)
	}
}

func (e *Editor) cycleBrushTerrain(step int) {
	terrains := hexmap.Terrains()
	idx := 0
	for i, t := range terrains {
		if t == e.brush.Terrain {
			idx = i
			break
		}
	}
	idx = (idx + step + len(terrains)) % len(terrains)
	e.brush.Terrain = terrains[idx]
}

// tileClicked routes a resolved tile click by the stroke mode decided at
// pointer-down.
func (e *Editor) tileClicked(t *hexmap.Tile, mode edit.StrokeMode, modifier bool) {
	switch mode {
	case edit.StrokeMarker:
		switch e.mode {
		case edit.ModeSpawn:
			e.doc.ToggleSpawn(t.Coord())
		case edit.ModeGoal:
			e.doc.ToggleGoal(t.Coord())
		}
	case edit.StrokeSelect:
		e.sel.ToggleClick(t.ID)
	case edit.StrokePan:
		// a plain click still single-selects before the drag pans
		if e.mode == edit.ModeTerrain {
			e.sel.Click(t.ID)
		}
	}
}

func (e *Editor) Draw(screen *ebiten.Image) {
	e.canvas.Draw(screen, e)
	if e.ui != nil {
		e.ui.Draw(screen)
	}
	e.prompt.Draw(screen)
	e.notice.Draw(screen)
}

func (e *Editor) Layout(outsideWidth, outsideHeight int) (int, int) {
	e.canvas.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// attachUI wires the built widget tree and its mirror handles to the editor.
func (e *Editor) attachUI(ui *ebitenui.UI, panels *Panels) {
	e.ui = ui
	e.panels = panels
	e.syncUI()
}

// syncUI pushes editor state into the panel widgets. Keyboard shortcuts and
// imports change state without going through the UI, so this runs every
// frame.
func (e *Editor) syncUI() {
	if e.panels == nil {
		return
	}
	e.panels.SetBrush(e.brush)
	e.panels.SetLayoutFlags(e.rectLayout, e.stagger, e.mirror, e.doc.Orientation)
	e.panels.SetFile(e.filename)
	e.panels.SetSelection(e.sel, e.doc)
}

func (e *Editor) promptLoad() {
	e.prompt.Open("Load map file:", e.filename, func(path string) {
		if path == "" {
			return
		}
		if err := e.LoadFrom(path); err != nil {
			log.Printf("load error: %v", err)
			e.notice.Show("Load failed: " + err.Error())
		}
	})
}
