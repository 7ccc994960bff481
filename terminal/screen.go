package terminal

import (
	"fmt"
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/space-shooter/render"
)

// Screen is a render.Surface over a tcell screen.
// Logical pixel coordinates are scaled onto the current cell grid.
type Screen struct {
	screen   tcell.Screen
	mode     ColorMode
	logicalW float64
	logicalH float64
	cols     int
	rows     int
	bg       tcell.Style
}

// Open initializes the controlling terminal
func Open(mode ColorMode, logicalW, logicalH int) (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize screen: %w", err)
	}
	s.HideCursor()
	return NewScreen(s, mode, logicalW, logicalH), nil
}

// NewScreen wraps an initialized tcell screen
func NewScreen(s tcell.Screen, mode ColorMode, logicalW, logicalH int) *Screen {
	cols, rows := s.Size()
	return &Screen{
		screen:   s,
		mode:     mode,
		logicalW: float64(logicalW),
		logicalH: float64(logicalH),
		cols:     cols,
		rows:     rows,
		bg:       tcell.StyleDefault.Background(tcellColor(color.Black, mode)),
	}
}

// TCell returns the underlying tcell screen
func (s *Screen) TCell() tcell.Screen {
	return s.screen
}

// Size returns the current grid in cells
func (s *Screen) Size() (cols, rows int) {
	return s.cols, s.rows
}

// Resize re-reads the terminal size and forces a full redraw
func (s *Screen) Resize() {
	s.cols, s.rows = s.screen.Size()
	s.screen.Sync()
}

// Close restores the terminal
func (s *Screen) Close() {
	s.screen.Fini()
}

// Clear implements render.Surface
func (s *Screen) Clear(c color.Color) {
	s.bg = tcell.StyleDefault.Background(tcellColor(c, s.mode))
	s.screen.Fill(' ', s.bg)
}

// CellRect maps a logical rectangle to the half-open cell range it covers.
// Every non-empty rectangle covers at least one cell.
func (s *Screen) CellRect(dst render.RectF) (x0, y0, x1, y1 int) {
	sx := float64(s.cols) / s.logicalW
	sy := float64(s.rows) / s.logicalH

	x0 = int(math.Floor(dst.X * sx))
	y0 = int(math.Floor(dst.Y * sy))
	x1 = int(math.Floor((dst.X + dst.W) * sx))
	y1 = int(math.Floor((dst.Y + dst.H) * sy))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return x0, y0, x1, y1
}

// DrawTexture implements render.Surface.
// Transparent regions of the texture leave the cleared background visible.
func (s *Screen) DrawTexture(tex render.Texture, dst render.RectF) {
	t, ok := tex.(*ImageTexture)
	if !ok {
		return
	}
	x0, y0, x1, y1 := s.CellRect(dst)
	cols, rows := x1-x0, y1-y0

	for cy := max(y0, 0); cy < min(y1, s.rows); cy++ {
		for cx := max(x0, 0); cx < min(x1, s.cols); cx++ {
			mask, fg := t.quadrant(cx-x0, cy-y0, cols, rows)
			if mask == 0 {
				continue
			}
			style := s.bg.Foreground(tcellColor(fg, s.mode))
			s.screen.SetContent(cx, cy, quadrantRunes[mask], nil, style)
		}
	}
}

// Present implements render.Surface
func (s *Screen) Present() {
	s.screen.Show()
}
