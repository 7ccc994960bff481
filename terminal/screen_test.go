package terminal

import (
	"image"
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/space-shooter/render"
)

func newSimScreen(t *testing.T, cols, rows int) (tcell.SimulationScreen, *Screen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("simulation screen init: %v", err)
	}
	sim.SetSize(cols, rows)
	t.Cleanup(sim.Fini)
	return sim, NewScreen(sim, ColorModeTrueColor, 800, 600)
}

func solidImage(w, h int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func runeAt(s tcell.Screen, x, y int) rune {
	r, _, _, _ := s.GetContent(x, y)
	return r
}

func TestCellRect(t *testing.T) {
	_, screen := newSimScreen(t, 80, 24)

	tests := []struct {
		name           string
		dst            render.RectF
		x0, y0, x1, y1 int
	}{
		{"player", render.RectF{X: 400, Y: 500, W: 64, H: 64}, 40, 20, 46, 22},
		{"bullet keeps one cell", render.RectF{X: 100, Y: 100, W: 5, H: 5}, 10, 4, 11, 5},
		{"enemy above screen", render.RectF{X: 0, Y: -48, W: 48, H: 48}, 0, -2, 4, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x0, y0, x1, y1 := screen.CellRect(tt.dst)
			if x0 != tt.x0 || y0 != tt.y0 || x1 != tt.x1 || y1 != tt.y1 {
				t.Errorf("CellRect = (%d,%d)-(%d,%d), want (%d,%d)-(%d,%d)",
					x0, y0, x1, y1, tt.x0, tt.y0, tt.x1, tt.y1)
			}
		})
	}
}

func TestDrawTexture_FillsCoveredCells(t *testing.T) {
	sim, screen := newSimScreen(t, 80, 24)
	tex := NewImageTexture(solidImage(8, 8, color.NRGBA{R: 255, A: 255}))

	screen.Clear(color.Black)
	screen.DrawTexture(tex, render.RectF{X: 400, Y: 500, W: 64, H: 64})
	screen.Present()

	for y := 20; y < 22; y++ {
		for x := 40; x < 46; x++ {
			if r := runeAt(sim, x, y); r != '█' {
				t.Errorf("cell (%d,%d) = %q, want full block", x, y, r)
			}
		}
	}
	if r := runeAt(sim, 46, 20); r != ' ' {
		t.Errorf("cell right of sprite = %q, want blank", r)
	}
	if r := runeAt(sim, 40, 22); r != ' ' {
		t.Errorf("cell below sprite = %q, want blank", r)
	}
}

func TestDrawTexture_TransparentLeavesBackground(t *testing.T) {
	sim, screen := newSimScreen(t, 80, 24)
	tex := NewImageTexture(solidImage(4, 4, color.NRGBA{}))

	screen.Clear(color.Black)
	screen.DrawTexture(tex, render.RectF{X: 0, Y: 0, W: 100, H: 100})

	for y := 0; y < 4; y++ {
		for x := 0; x < 10; x++ {
			if r := runeAt(sim, x, y); r != ' ' {
				t.Fatalf("transparent texture drew %q at (%d,%d)", r, x, y)
			}
		}
	}
}

func TestDrawTexture_ClipsToScreen(t *testing.T) {
	sim, screen := newSimScreen(t, 80, 24)
	tex := NewImageTexture(solidImage(4, 4, color.NRGBA{G: 255, A: 255}))

	screen.Clear(color.Black)
	// Half above the top edge, as freshly spawned enemies are
	screen.DrawTexture(tex, render.RectF{X: 0, Y: -25, W: 48, H: 50})

	if r := runeAt(sim, 0, 0); r != '█' {
		t.Errorf("visible part not drawn, got %q", r)
	}
}

func TestDrawTexture_IgnoresForeignTextures(t *testing.T) {
	sim, screen := newSimScreen(t, 80, 24)
	screen.Clear(color.Black)
	screen.DrawTexture(foreignTexture{}, render.RectF{X: 0, Y: 0, W: 100, H: 100})

	if r := runeAt(sim, 0, 0); r != ' ' {
		t.Errorf("foreign texture drew %q", r)
	}
}

type foreignTexture struct{}

func (foreignTexture) Bounds() image.Rectangle { return image.Rect(0, 0, 1, 1) }

func TestScreenResize(t *testing.T) {
	sim, screen := newSimScreen(t, 80, 24)
	sim.SetSize(160, 48)
	screen.Resize()

	if cols, rows := screen.Size(); cols != 160 || rows != 48 {
		t.Fatalf("Size = %dx%d, want 160x48", cols, rows)
	}
	x0, y0, _, _ := screen.CellRect(render.RectF{X: 400, Y: 300, W: 1, H: 1})
	if x0 != 80 || y0 != 24 {
		t.Errorf("center maps to (%d,%d), want (80,24)", x0, y0)
	}
}
