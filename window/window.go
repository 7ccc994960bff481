// Package window runs the game in a desktop window through ebiten.
package window

import (
	"errors"
	"image"
	"image/color"
	_ "image/png"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/lixenwraith/space-shooter/constants"
	"github.com/lixenwraith/space-shooter/engine"
	"github.com/lixenwraith/space-shooter/game"
	"github.com/lixenwraith/space-shooter/input"
	"github.com/lixenwraith/space-shooter/render"
)

// Loader loads image files as GPU textures
type Loader struct{}

// LoadTexture implements render.Loader; *ebiten.Image is the texture handle
func (Loader) LoadTexture(path string) (render.Texture, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// Keyboard maps arrows and space onto logical keys
type Keyboard struct{}

// Pressed implements input.KeyState
func (Keyboard) Pressed(k input.Key) bool {
	switch k {
	case input.KeyLeft:
		return ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	case input.KeyRight:
		return ebiten.IsKeyPressed(ebiten.KeyArrowRight)
	case input.KeyShoot:
		return ebiten.IsKeyPressed(ebiten.KeySpace)
	}
	return false
}

// closeRequest reports the window's close button as the quit signal
type closeRequest struct{}

func (closeRequest) QuitRequested() bool {
	return ebiten.IsWindowBeingClosed()
}

// Platform returns the window's collaborators. Surface and Pacer stay nil:
// ebiten owns presentation and tick pacing.
func Platform(clock engine.Clock) game.Platform {
	return game.Platform{
		Keys:   Keyboard{},
		Events: closeRequest{},
		Clock:  clock,
	}
}

// Surface draws onto the frame ebiten hands to Draw
type Surface struct {
	dst *ebiten.Image
}

// Clear implements render.Surface
func (s *Surface) Clear(c color.Color) {
	s.dst.Fill(c)
}

// DrawTexture implements render.Surface
func (s *Surface) DrawTexture(tex render.Texture, dst render.RectF) {
	img, ok := tex.(*ebiten.Image)
	if !ok {
		return
	}
	sx, sy := scaleFor(img.Bounds(), dst)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(sx, sy)
	op.GeoM.Translate(dst.X, dst.Y)
	s.dst.DrawImage(img, op)
}

// Present implements render.Surface; ebiten presents once Draw returns
func (s *Surface) Present() {}

// scaleFor returns the factors stretching src onto dst
func scaleFor(src image.Rectangle, dst render.RectF) (float64, float64) {
	if src.Dx() == 0 || src.Dy() == 0 {
		return 0, 0
	}
	return dst.W / float64(src.Dx()), dst.H / float64(src.Dy())
}

// tps converts the fixed frame delay into ebiten ticks per second
func tps(delay time.Duration) int {
	if delay <= 0 {
		return ebiten.SyncWithFPS
	}
	return max(1, int(time.Second/delay))
}

// windowGame adapts the loop to ebiten's Update/Draw split
type windowGame struct {
	loop          *game.Loop
	width, height int
}

func (g *windowGame) Update() error {
	if !g.loop.Advance() {
		return ebiten.Termination
	}
	return nil
}

func (g *windowGame) Draw(screen *ebiten.Image) {
	g.loop.Draw(&Surface{dst: screen})
}

func (g *windowGame) Layout(int, int) (int, int) {
	return g.width, g.height
}

// Run opens a cfg-sized window and blocks until it is closed
func Run(cfg engine.Config, loop *game.Loop) error {
	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	ebiten.SetWindowTitle(constants.WindowTitle)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(tps(cfg.FrameDelay))

	log.Printf("Window backend: %dx%d at %d TPS", cfg.ScreenWidth, cfg.ScreenHeight, ebiten.TPS())

	err := ebiten.RunGame(&windowGame{loop: loop, width: cfg.ScreenWidth, height: cfg.ScreenHeight})
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
