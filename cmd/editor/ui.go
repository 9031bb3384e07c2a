package main

import (
	"bytes"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/mordeng/hex-map-editor/edit"
	"github.com/mordeng/hex-map-editor/hexmap"
)

const (
	toolbarHeight = 48
	panelWidth    = 230
)

func BuildEditorUI(
	onModeSelected func(m edit.Mode),
	onToggleRect func(),
	onToggleStagger func(),
	onToggleMirror func(),
	onFlipOrientation func(),
	onBrushToggled func(),
	onBrushTerrain func(),
	onBrushTier func(),
	onApplyTerrain func(t hexmap.Terrain),
	onTierDelta func(delta int),
	onAssetChanged func(asset string),
	onSave func(),
	onLoad func(),
	onNew func(),
	onCopy func(),
	onPaste func(),
	initialMode edit.Mode,
) (*ebitenui.UI, *Panels) {
	ui := &ebitenui.UI{}

	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic("Failed to load font: " + err.Error())
	}

	var fontFace text.Face = &text.GoTextFace{Source: s, Size: 14}
	ui.PrimaryTheme = newEditorTheme(&fontFace)

	panels := &Panels{}
	toolbar := buildToolBar(
		ui.PrimaryTheme,
		&fontFace,
		panels,
		onModeSelected,
		onToggleRect,
		onToggleStagger,
		onToggleMirror,
		onFlipOrientation,
		initialMode,
	)
	rightPanel := buildRightPanel(
		ui.PrimaryTheme,
		&fontFace,
		panels,
		onBrushToggled,
		onBrushTerrain,
		onBrushTier,
		onApplyTerrain,
		onTierDelta,
		onAssetChanged,
		onSave,
		onLoad,
		onNew,
		onCopy,
		onPaste,
	)

	// Root container: anchor layout
	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	toolbar.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionStart,
		VerticalPosition:   widget.AnchorLayoutPositionStart,
		StretchHorizontal:  true,
	}
	rightPanel.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionEnd,
		VerticalPosition:   widget.AnchorLayoutPositionCenter,
		StretchVertical:    true,
	}
	root.AddChild(toolbar)
	root.AddChild(rightPanel)

	ui.Container = root
	return ui, panels
}
