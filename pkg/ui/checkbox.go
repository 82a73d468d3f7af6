package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Checkbox is a clickable widget for a boolean value.
type Checkbox struct {
	Label   string
	Value   bool
	X, Y    float64
	Size    float64
	clicked bool // debounce: one toggle per press
}

// NewCheckbox creates a checkbox at the given position.
func NewCheckbox(x, y float64, label string, value bool) *Checkbox {
	return &Checkbox{
		Label: label,
		Value: value,
		X:     x,
		Y:     y,
		Size:  16,
	}
}

// Update checks for mouse interaction.
func (c *Checkbox) Update() {
	mx, my := ebiten.CursorPosition()
	isOver := float64(mx) >= c.X && float64(mx) <= c.X+c.Size &&
		float64(my) >= c.Y && float64(my) <= c.Y+c.Size

	if isOver && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if !c.clicked {
			c.Value = !c.Value
			c.clicked = true
		}
	} else {
		c.clicked = false
	}
}

// Draw renders the box and, when set, the filled check mark.
func (c *Checkbox) Draw(screen *ebiten.Image) {
	vector.StrokeRect(screen, float32(c.X), float32(c.Y), float32(c.Size), float32(c.Size),
		2, color.RGBA{R: 180, G: 180, B: 180, A: 255}, true)
	if c.Value {
		pad := float32(4)
		vector.DrawFilledRect(screen, float32(c.X)+pad, float32(c.Y)+pad,
			float32(c.Size)-2*pad, float32(c.Size)-2*pad,
			color.RGBA{R: 120, G: 200, B: 120, A: 255}, true)
	}
}
