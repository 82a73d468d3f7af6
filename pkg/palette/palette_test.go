package palette

import (
	"image/color"
	"testing"
)

func TestNewSize(t *testing.T) {
	for _, n := range []int{0, 1, 4, 12} {
		if got := New(n).Size(); got != n {
			t.Errorf("New(%d).Size() = %d", n, got)
		}
	}
	if got := New(-3).Size(); got != 0 {
		t.Errorf("negative count should yield an empty palette, got size %d", got)
	}
}

func TestNormalizeWraps(t *testing.T) {
	p := New(4)
	cases := []struct{ in, want int }{
		{0, 0},
		{3, 3},
		{4, 0},
		{7, 3},
		{-1, 3},
		{-5, 3},
	}
	for _, c := range cases {
		if got := p.Normalize(c.in); got != c.want {
			t.Errorf("Normalize(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestEmptyPalette(t *testing.T) {
	p := New(0)
	if got := p.Normalize(42); got != 0 {
		t.Errorf("empty palette Normalize(42) = %d, want 0", got)
	}
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	if got := p.Color(5); got != white {
		t.Errorf("empty palette Color(5) = %v, want opaque white", got)
	}
}

func TestColorsAreDistinctAndOpaque(t *testing.T) {
	p := New(6)
	seen := map[color.RGBA]bool{}
	for g := 0; g < p.Size(); g++ {
		c := p.Color(g)
		if c.A != 255 {
			t.Errorf("group %d color is not opaque: %v", g, c)
		}
		if seen[c] {
			t.Errorf("group %d reuses color %v", g, c)
		}
		seen[c] = true
	}
}

func TestColorWraps(t *testing.T) {
	p := New(3)
	if p.Color(0) != p.Color(3) || p.Color(1) != p.Color(-2) {
		t.Error("out-of-range groups must wrap onto the base colors")
	}
}
