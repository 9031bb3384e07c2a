package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/mordeng/hex-map-editor/edit"
)

func buildToolBar(
	theme *widget.Theme,
	fontFace *text.Face,
	panels *Panels,
	onModeSelected func(m edit.Mode),
	onToggleRect func(),
	onToggleStagger func(),
	onToggleMirror func(),
	onFlipOrientation func(),
	initialMode edit.Mode,
) *widget.Container {
	modeNames := []string{"Terrain", "Spawn", "Goal"}
	buttonTextColor := &widget.ButtonTextColor{
		Idle:     color.Black,
		Hover:    color.Black,
		Pressed:  color.RGBA{0, 0, 200, 255},
		Disabled: color.Gray{Y: 128},
	}

	toolbar := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(220, toolbarHeight),
		),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(8),
			),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(color.RGBA{220, 220, 240, 255})),
	)

	var modeButtons []*widget.Button
	for _, name := range modeNames {
		btn := widget.NewButton(
			widget.ButtonOpts.Image(theme.ButtonTheme.Image),
			widget.ButtonOpts.Text(name, fontFace, buttonTextColor),
			widget.ButtonOpts.ToggleMode(),
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(64, 40),
			),
		)
		modeButtons = append(modeButtons, btn)
		toolbar.AddChild(btn)
	}

	elements := make([]widget.RadioGroupElement, 0, len(modeButtons))
	for _, b := range modeButtons {
		elements = append(elements, b)
	}
	group := widget.NewRadioGroup(
		widget.RadioGroupOpts.Elements(elements...),
		widget.RadioGroupOpts.ChangedHandler(func(args *widget.RadioGroupChangedEventArgs) {
			if panels.suppress || onModeSelected == nil {
				return
			}
			for idx, b := range modeButtons {
				if args.Active == b {
					onModeSelected(edit.Mode(idx))
					return
				}
			}
		}),
	)
	panels.modeGroup = group
	panels.modeButtons = modeButtons

	toggleBtn := func(label string, onClick func()) *widget.Button {
		btn := widget.NewButton(
			widget.ButtonOpts.Image(theme.ButtonTheme.Image),
			widget.ButtonOpts.Text(label, fontFace, buttonTextColor),
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(96, 40),
			),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				if onClick != nil {
					onClick()
				}
			}),
		)
		toolbar.AddChild(btn)
		return btn
	}

	panels.rectBtn = toggleBtn("Rect: Off", onToggleRect)
	panels.staggerBtn = toggleBtn("Stagger: Off", onToggleStagger)
	panels.mirrorBtn = toggleBtn("Mirror: Off", onToggleMirror)
	panels.orientBtn = toggleBtn("pointy", onFlipOrientation)

	if idx := int(initialMode); idx >= 0 && idx < len(modeButtons) {
		group.SetActive(modeButtons[idx])
	}

	return toolbar
}
