// Package palette maps group indices to render colors.
//
// Groups in the engine are plain integers; the palette bounds the valid
// index range and owns the group -> color lookup the renderers use.
package palette

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Palette holds one distinct color per group.
type Palette struct {
	colors []color.RGBA
}

// New generates a palette of n visually distinct colors by spacing hues
// evenly in HCL space. HCL keeps perceived brightness roughly constant
// across groups, so no faction looks "dimmer" than another.
func New(n int) *Palette {
	if n < 0 {
		n = 0
	}
	p := &Palette{colors: make([]color.RGBA, 0, n)}
	for i := 0; i < n; i++ {
		hue := float64(i) * 360.0 / float64(n)
		c := colorful.Hcl(hue, 0.55, 0.65).Clamped()
		r, g, b := c.RGB255()
		p.colors = append(p.colors, color.RGBA{R: r, G: g, B: b, A: 255})
	}
	return p
}

// Size returns the number of groups the palette can distinguish.
func (p *Palette) Size() int {
	return len(p.colors)
}

// Normalize wraps an arbitrary group index into the valid range.
// A group outside the current palette (e.g. after the palette shrank)
// simply wraps around instead of crashing. An empty palette maps
// everything to 0.
func (p *Palette) Normalize(group int) int {
	n := len(p.colors)
	if n == 0 {
		return 0
	}
	g := group % n
	if g < 0 {
		g += n
	}
	return g
}

// Color returns the render color for a group, wrapping out-of-range
// indices. An empty palette returns opaque white so a renderer never
// draws with the zero value.
func (p *Palette) Color(group int) color.RGBA {
	if len(p.colors) == 0 {
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return p.colors[p.Normalize(group)]
}
