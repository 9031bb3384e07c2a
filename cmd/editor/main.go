package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/mordeng/hex-map-editor/edit"
	"github.com/mordeng/hex-map-editor/hexmap"
)

func main() {
	mapPath := flag.String("map", "", "map file to open")
	settingsPath := flag.String("settings", "editor.yaml", "editor settings file")
	flag.Parse()

	settings, err := LoadSettings(*settingsPath)
	if err != nil {
		log.Fatalf("settings: %v", err)
	}
	if err := settings.Apply(); err != nil {
		log.Fatalf("settings: %v", err)
	}

	path := *mapPath
	if path == "" {
		path = settings.DefaultMap
	}

	doc := hexmap.DefaultDocument()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Fatalf("read %s: %v", path, err)
		}
		doc, err = hexmap.Decode(data)
		if err != nil {
			log.Fatalf("decode %s: %v", path, err)
		}
	}

	editor := NewEditor(doc, path)
	editor.panSpeed = settings.PanSpeed
	editor.initClipboard()
	if path != "" {
		editor.restartWatcher(path)
	}

	ui, panels := BuildEditorUI(
		editor.setMode,
		func() { editor.rectLayout = !editor.rectLayout },
		func() { editor.stagger = !editor.stagger },
		func() { editor.mirror = !editor.mirror },
		editor.flipOrientation,
		func() { editor.brush.Enabled = !editor.brush.Enabled },
		func() { editor.cycleBrushTerrain(1) },
		func() { editor.brush.Tier = (editor.brush.Tier + 1) % (hexmap.TierMax + 1) },
		func(t hexmap.Terrain) { editor.sel.ApplyTerrain(editor.doc, t) },
		func(delta int) { editor.sel.ApplyTierDelta(editor.doc, delta) },
		func(asset string) { editor.sel.ApplyAsset(editor.doc, asset) },
		editor.SaveCurrent,
		editor.promptLoad,
		editor.newDocument,
		editor.CopyToClipboard,
		editor.PasteFromClipboard,
		edit.ModeTerrain,
	)
	editor.attachUI(ui, panels)

	ebiten.SetWindowSize(settings.WindowWidth, settings.WindowHeight)
	ebiten.SetWindowTitle("Hex Map Editor")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(editor); err != nil {
		log.Fatal(err)
	}
}
