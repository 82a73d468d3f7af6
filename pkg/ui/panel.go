package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Widget is the interface every panel entry implements.
type Widget interface {
	Update()
	Draw(screen *ebiten.Image)
}

type entry struct {
	widget Widget
	label  string
	height float64
	header bool
}

// Panel stacks labeled widgets vertically inside a translucent box.
// Widgets are laid out in insertion order; section headers are plain
// entries without a widget.
type Panel struct {
	X, Y          float64
	Width, Height float64

	entries []entry

	BGColor     color.RGBA
	BorderColor color.RGBA
}

// NewPanel creates an empty panel at the given position.
func NewPanel(x, y, width, height float64) *Panel {
	return &Panel{
		X:           x,
		Y:           y,
		Width:       width,
		Height:      height,
		BGColor:     color.RGBA{R: 40, G: 40, B: 45, A: 230},
		BorderColor: color.RGBA{R: 100, G: 100, B: 110, A: 255},
	}
}

// AddSection adds a section header row.
func (p *Panel) AddSection(title string) {
	p.entries = append(p.entries, entry{label: title, height: 22, header: true})
}

// AddSlider adds a labeled slider and returns it for value access.
func (p *Panel) AddSlider(label string, min, max, value float64) *Slider {
	s := NewSlider(p.X+10, p.Y+p.nextY()+16, p.Width-20, label, min, max, value)
	p.entries = append(p.entries, entry{widget: s, label: label, height: 34})
	return s
}

// AddCheckbox adds a labeled checkbox and returns it for value access.
func (p *Panel) AddCheckbox(label string, value bool) *Checkbox {
	c := NewCheckbox(p.X+10, p.Y+p.nextY(), label, value)
	p.entries = append(p.entries, entry{widget: c, label: label, height: 24})
	return c
}

// AddButton adds a full-width button.
func (p *Panel) AddButton(label string, onClick func()) *Button {
	b := NewButton(p.X+10, p.Y+p.nextY(), p.Width-20, 22, label, onClick)
	p.entries = append(p.entries, entry{widget: b, height: 28})
	return b
}

func (p *Panel) nextY() float64 {
	y := 28.0 // title space
	for _, e := range p.entries {
		y += e.height
	}
	return y
}

// Contains reports whether a screen point lies inside the panel, so the
// host can keep panel clicks away from the simulation.
func (p *Panel) Contains(x, y float64) bool {
	return x >= p.X && x <= p.X+p.Width && y >= p.Y && y <= p.Y+p.Height
}

// Update handles input for all widgets.
func (p *Panel) Update() {
	for _, e := range p.entries {
		if e.widget != nil {
			e.widget.Update()
		}
	}
}

// Draw renders the panel background and every entry.
func (p *Panel) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(p.Height),
		p.BGColor, true)
	vector.StrokeRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(p.Height),
		2, p.BorderColor, true)
	ebitenutil.DebugPrintAt(screen, "Controls", int(p.X+10), int(p.Y+6))

	y := p.Y + 28
	for _, e := range p.entries {
		switch {
		case e.header:
			vector.DrawFilledRect(screen, float32(p.X+5), float32(y), float32(p.Width-10), 18,
				color.RGBA{R: 60, G: 60, B: 70, A: 255}, true)
			ebitenutil.DebugPrintAt(screen, e.label, int(p.X+10), int(y+3))
		case e.label != "":
			if _, isBox := e.widget.(*Checkbox); isBox {
				// Label sits beside the box, not above it.
				ebitenutil.DebugPrintAt(screen, e.label, int(p.X+34), int(y+2))
			} else {
				ebitenutil.DebugPrintAt(screen, e.label, int(p.X+10), int(y))
			}
			e.widget.Draw(screen)
		default:
			e.widget.Draw(screen)
		}
		y += e.height
	}
}
