package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Button is a clickable widget that fires a callback once per press.
type Button struct {
	Label   string
	X, Y    float64
	Width   float64
	Height  float64
	OnClick func()
	clicked bool // debounce: one callback per press
}

// NewButton creates a button at the given position.
func NewButton(x, y, width, height float64, label string, onClick func()) *Button {
	return &Button{
		Label:   label,
		X:       x,
		Y:       y,
		Width:   width,
		Height:  height,
		OnClick: onClick,
	}
}

func (b *Button) hover() bool {
	mx, my := ebiten.CursorPosition()
	return float64(mx) >= b.X && float64(mx) <= b.X+b.Width &&
		float64(my) >= b.Y && float64(my) <= b.Y+b.Height
}

// Update checks for mouse interaction.
func (b *Button) Update() {
	if b.hover() && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if !b.clicked && b.OnClick != nil {
			b.OnClick()
			b.clicked = true
		}
	} else {
		b.clicked = false
	}
}

// Draw renders the button with a hover highlight.
func (b *Button) Draw(screen *ebiten.Image) {
	bg := color.RGBA{R: 80, G: 120, B: 180, A: 255}
	if b.hover() {
		bg = color.RGBA{R: 100, G: 150, B: 220, A: 255}
	}
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height), bg, true)
	vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height),
		2, color.RGBA{R: 200, G: 200, B: 200, A: 255}, true)
	ebitenutil.DebugPrintAt(screen, b.Label, int(b.X+6), int(b.Y+b.Height/2-6))
}
