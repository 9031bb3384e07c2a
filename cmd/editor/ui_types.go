package main

import (
	"fmt"
	"strings"

	"github.com/ebitenui/ebitenui/widget"

	"github.com/mordeng/hex-map-editor/edit"
	"github.com/mordeng/hex-map-editor/hexmap"
)

// Panels bundles the widgets whose contents mirror editor state, so the
// editor can push updates after keyboard shortcuts change things behind the
// UI's back.
type Panels struct {
	modeGroup   *widget.RadioGroup
	modeButtons []*widget.Button

	brushBtn   *widget.Button
	terrainBtn *widget.Button
	tierBtn    *widget.Button

	rectBtn    *widget.Button
	staggerBtn *widget.Button
	mirrorBtn  *widget.Button
	orientBtn  *widget.Button

	fileLabel  *widget.Label
	selLabel   *widget.Label
	focusLabel *widget.Label

	assetInput *widget.TextInput

	// suppress guards against handler feedback loops while the editor is
	// pushing state into the widgets.
	suppress bool
}

func (p *Panels) SetMode(m edit.Mode) {
	idx := int(m)
	if p == nil || p.modeGroup == nil || idx < 0 || idx >= len(p.modeButtons) {
		return
	}
	p.suppress = true
	p.modeGroup.SetActive(p.modeButtons[idx])
	p.suppress = false
}

func setButtonLabel(btn *widget.Button, label string) {
	if btn == nil {
		return
	}
	if text := btn.Text(); text != nil {
		text.Label = label
	}
}

func onOff(v bool) string {
	if v {
		return "On"
	}
	return "Off"
}

func (p *Panels) SetBrush(b edit.Brush) {
	if p == nil {
		return
	}
	setButtonLabel(p.brushBtn, "Brush: "+onOff(b.Enabled))
	setButtonLabel(p.terrainBtn, "Terrain: "+string(b.Terrain))
	setButtonLabel(p.tierBtn, fmt.Sprintf("Tier: %d", hexmap.ClampTier(b.Tier)))
}

func (p *Panels) SetLayoutFlags(rect, stagger, mirror bool, o hexmap.Orientation) {
	if p == nil {
		return
	}
	setButtonLabel(p.rectBtn, "Rect: "+onOff(rect))
	setButtonLabel(p.staggerBtn, "Stagger: "+onOff(stagger))
	setButtonLabel(p.mirrorBtn, "Mirror: "+onOff(mirror))
	setButtonLabel(p.orientBtn, string(o))
}

func (p *Panels) SetFile(name string) {
	if p == nil || p.fileLabel == nil {
		return
	}
	if name == "" {
		name = "(unsaved)"
	}
	p.fileLabel.Label = name
}

// SetSelection refreshes the selection summary and the focus-tile detail
// line, including the asset input. The input only tracks the focus tile; it
// is disabled when nothing has focus.
func (p *Panels) SetSelection(sel *edit.Selection, doc *hexmap.Document) {
	if p == nil {
		return
	}
	if p.selLabel != nil {
		if n := sel.MultiSize(); n > 0 {
			p.selLabel.Label = fmt.Sprintf("Selected: %d tiles", n)
		} else if sel.Focus() != "" {
			p.selLabel.Label = "Selected: 1 tile"
		} else {
			p.selLabel.Label = "Selected: none"
		}
	}

	focus, _ := doc.TileByID(sel.Focus())
	if p.focusLabel != nil {
		if focus != nil {
			p.focusLabel.Label = fmt.Sprintf("(%d, %d) %s tier %d", focus.Q, focus.R, focus.Terrain, focus.Tier)
		} else {
			p.focusLabel.Label = "-"
		}
	}
	if p.assetInput != nil {
		p.suppress = true
		if focus != nil {
			p.assetInput.GetWidget().Disabled = false
			if strings.TrimSpace(p.assetInput.GetText()) != focus.Asset {
				p.assetInput.SetText(focus.Asset)
			}
		} else {
			p.assetInput.GetWidget().Disabled = true
			p.assetInput.SetText("")
		}
		p.suppress = false
	}
}
