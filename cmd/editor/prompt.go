package main

import (
	"image/color"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Prompt is a simple modal text input. When open it captures typed
// characters and calls the provided callback when the user presses Enter.
// Pressing Escape closes the prompt without invoking the callback.
type Prompt struct {
	open    bool
	label   string
	input   string
	onEnter func(string)
}

func NewPrompt() *Prompt { return &Prompt{} }

func (p *Prompt) IsOpen() bool { return p.open }

// Open shows the prompt with the given label, initial input, and callback.
func (p *Prompt) Open(label, initial string, onEnter func(string)) {
	p.label = label
	p.input = initial
	p.onEnter = onEnter
	p.open = true
}

// Close hides the prompt without invoking the callback.
func (p *Prompt) Close() {
	p.open = false
	p.label = ""
	p.input = ""
	p.onEnter = nil
}

// Update processes input for the prompt. Returns true if the prompt is open
// (so callers can early-return and avoid processing other input).
func (p *Prompt) Update() bool {
	if !p.open {
		return false
	}
	for _, r := range ebiten.AppendInputChars(nil) {
		if r == '\n' || r == '\r' {
			continue
		}
		p.input += string(r)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		p.input = trimLastRune(p.input)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		// close first so callbacks can chain into another prompt
		cur := p.input
		p.open = false
		if p.onEnter != nil {
			p.onEnter(cur)
		}
		if p.open {
			return true
		}
		p.Close()
		return false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.Close()
		return false
	}
	return true
}

// trimLastRune removes the final rune rather than the final byte; typed
// input can carry multi-byte runes.
func trimLastRune(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeLastRuneInString(s)
	return s[:len(s)-size]
}

// Draw renders the prompt overlay.
func (p *Prompt) Draw(screen *ebiten.Image) {
	if !p.open {
		return
	}
	sw := screen.Bounds().Dx()
	sh := screen.Bounds().Dy()
	o := &ebiten.DrawImageOptions{}
	back := ebiten.NewImage(sw, 48)
	back.Fill(color.RGBA{R: 0, G: 0, B: 0, A: 0x88})
	o.GeoM.Translate(0, float64(sh/2-24))
	screen.DrawImage(back, o)
	label := p.label
	if label == "" {
		label = "Input:"
	}
	ebitenutil.DebugPrintAt(screen, label+" "+p.input, 16, sh/2-8)
}

// Notice is a blocking modal message, used for import failures. It swallows
// all input until dismissed with Enter, Escape, or a click.
type Notice struct {
	open    bool
	message string
}

func NewNotice() *Notice { return &Notice{} }

// Show opens the notice with the given message.
func (n *Notice) Show(message string) {
	n.open = true
	n.message = message
}

// Update returns true while the notice is open and capturing input.
func (n *Notice) Update() bool {
	if !n.open {
		return false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		n.open = false
		n.message = ""
		return false
	}
	return true
}

func (n *Notice) Draw(screen *ebiten.Image) {
	if !n.open {
		return
	}
	sw := screen.Bounds().Dx()
	sh := screen.Bounds().Dy()
	o := &ebiten.DrawImageOptions{}
	back := ebiten.NewImage(sw, 64)
	back.Fill(color.RGBA{R: 0x60, G: 0x10, B: 0x10, A: 0xcc})
	o.GeoM.Translate(0, float64(sh/2-32))
	screen.DrawImage(back, o)
	ebitenutil.DebugPrintAt(screen, n.message, 16, sh/2-16)
	ebitenutil.DebugPrintAt(screen, "(Enter to dismiss)", 16, sh/2)
}
