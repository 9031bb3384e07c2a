package main

import (
	"image/color"
	"strings"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/mordeng/hex-map-editor/hexmap"
)

func buildRightPanel(
	theme *widget.Theme,
	fontFace *text.Face,
	panels *Panels,
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
) *widget.Container {
	labelColor := &widget.LabelColor{Idle: color.White, Disabled: color.Gray{Y: 140}}
	buttonTextColor := &widget.ButtonTextColor{
		Idle:     color.Black,
		Hover:    color.Black,
		Pressed:  color.RGBA{0, 0, 200, 255},
		Disabled: color.Gray{Y: 128},
	}

	panel := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(panelWidth, 400),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(color.RGBA{40, 40, 40, 255})),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(8),
			),
		),
	)

	header := func(label string) {
		panel.AddChild(widget.NewLabel(
			widget.LabelOpts.Text(label, fontFace, labelColor),
		))
	}
	button := func(parent *widget.Container, label string, minW int, onClick func()) *widget.Button {
		btn := widget.NewButton(
			widget.ButtonOpts.Image(theme.ButtonTheme.Image),
			widget.ButtonOpts.Text(label, fontFace, buttonTextColor),
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(minW, 28),
			),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				if onClick != nil {
					onClick()
				}
			}),
		)
		parent.AddChild(btn)
		return btn
	}
	row := func() *widget.Container {
		r := widget.NewContainer(
			widget.ContainerOpts.Layout(
				widget.NewRowLayout(
					widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
					widget.RowLayoutOpts.Spacing(6),
				),
			),
		)
		panel.AddChild(r)
		return r
	}

	header("Brush")
	panels.brushBtn = button(panel, "Brush: Off", 180, onBrushToggled)
	panels.terrainBtn = button(panel, "Terrain: grass", 180, onBrushTerrain)
	panels.tierBtn = button(panel, "Tier: 0", 180, onBrushTier)

	header("Apply to selection")
	terrains := hexmap.Terrains()
	for i := 0; i < len(terrains); i += 2 {
		r := row()
		for j := i; j < i+2 && j < len(terrains); j++ {
			t := terrains[j]
			button(r, string(t), 86, func() {
				if onApplyTerrain != nil {
					onApplyTerrain(t)
				}
			})
		}
	}
	tierRow := row()
	button(tierRow, "Tier -", 86, func() {
		if onTierDelta != nil {
			onTierDelta(-1)
		}
	})
	button(tierRow, "Tier +", 86, func() {
		if onTierDelta != nil {
			onTierDelta(1)
		}
	})

	header("Tile asset")
	assetInput := widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(180, 28),
		),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     solidNineSlice(color.RGBA{245, 245, 245, 255}),
			Disabled: solidNineSlice(color.RGBA{200, 200, 200, 255}),
		}),
		widget.TextInputOpts.Color(&widget.TextInputColor{
			Idle:     color.Black,
			Disabled: color.Gray{Y: 120},
			Caret:    color.Black,
		}),
		widget.TextInputOpts.Face(fontFace),
		widget.TextInputOpts.ChangedHandler(func(args *widget.TextInputChangedEventArgs) {
			if panels.suppress {
				return
			}
			if onAssetChanged != nil {
				onAssetChanged(strings.TrimSpace(args.InputText))
			}
		}),
	)
	panel.AddChild(assetInput)
	panels.assetInput = assetInput

	header("Selection")
	panels.selLabel = widget.NewLabel(
		widget.LabelOpts.Text("Selected: none", fontFace, labelColor),
	)
	panel.AddChild(panels.selLabel)
	panels.focusLabel = widget.NewLabel(
		widget.LabelOpts.Text("-", fontFace, labelColor),
	)
	panel.AddChild(panels.focusLabel)

	header("File")
	panels.fileLabel = widget.NewLabel(
		widget.LabelOpts.Text("(unsaved)", fontFace, labelColor),
	)
	panel.AddChild(panels.fileLabel)
	fileRow := row()
	button(fileRow, "Save", 56, onSave)
	button(fileRow, "Load", 56, onLoad)
	button(fileRow, "New", 56, onNew)
	clipRow := row()
	button(clipRow, "Copy", 86, onCopy)
	button(clipRow, "Paste", 86, onPaste)

	return panel
}
