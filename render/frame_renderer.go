package render

import (
	"image/color"

	"github.com/lixenwraith/space-shooter/engine"
)

// FrameRenderer draws simulation state onto a Surface
type FrameRenderer struct {
	sprites    *SpriteSheet
	background color.Color
}

// NewFrameRenderer creates a renderer clearing to black
func NewFrameRenderer(sprites *SpriteSheet) *FrameRenderer {
	return &FrameRenderer{
		sprites:    sprites,
		background: color.Black,
	}
}

// RenderFrame renders the entire game frame.
// The player is always drawn; bullets and enemies only while active.
func (r *FrameRenderer) RenderFrame(s Surface, st *engine.State) {
	s.Clear(r.background)

	s.DrawTexture(r.sprites.Player.Texture, r.sprites.Player.Rect(st.Player.X, st.Player.Y))

	for _, b := range st.Bullets {
		if b.Active {
			s.DrawTexture(r.sprites.Bullet.Texture, r.sprites.Bullet.Rect(b.X, b.Y))
		}
	}

	for _, e := range st.Enemies {
		if e.Active {
			s.DrawTexture(r.sprites.Enemy.Texture, r.sprites.Enemy.Rect(e.X, e.Y))
		}
	}

	s.Present()
}
