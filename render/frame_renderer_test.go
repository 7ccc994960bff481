package render

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/lixenwraith/space-shooter/engine"
)

type fakeTexture struct {
	name string
}

func (f *fakeTexture) Bounds() image.Rectangle { return image.Rect(0, 0, 8, 8) }

type drawCall struct {
	tex Texture
	dst RectF
}

// recordingSurface captures draw calls in order
type recordingSurface struct {
	cleared   []color.Color
	draws     []drawCall
	presented int
}

func (r *recordingSurface) Clear(c color.Color)                { r.cleared = append(r.cleared, c) }
func (r *recordingSurface) DrawTexture(tex Texture, dst RectF) { r.draws = append(r.draws, drawCall{tex, dst}) }
func (r *recordingSurface) Present()                           { r.presented++ }

type fakeLoader struct {
	fail string
}

func (l fakeLoader) LoadTexture(path string) (Texture, error) {
	if path == l.fail {
		return nil, errors.New("no such file")
	}
	return &fakeTexture{name: path}, nil
}

func testSheet(t *testing.T) *SpriteSheet {
	t.Helper()
	sheet, err := LoadSpriteSheet(fakeLoader{}, AssetPaths{Player: "p", Bullet: "b", Enemy: "e"}, engine.DefaultConfig())
	if err != nil {
		t.Fatalf("LoadSpriteSheet: %v", err)
	}
	return sheet
}

func TestRenderFrame_DrawsActiveEntities(t *testing.T) {
	sheet := testSheet(t)
	r := NewFrameRenderer(sheet)
	surface := &recordingSurface{}

	st := &engine.State{
		Player:  engine.Player{X: 400, Y: 500},
		Bullets: []engine.Bullet{{X: 10, Y: 20, Active: true}, {X: 30, Y: 40, Active: false}},
		Enemies: []engine.Enemy{{X: 50, Y: 60, Active: false}, {X: 70, Y: 80, Active: true}},
	}
	r.RenderFrame(surface, st)

	if len(surface.cleared) != 1 || surface.cleared[0] != color.Black {
		t.Errorf("cleared = %v, want a single black clear", surface.cleared)
	}
	if surface.presented != 1 {
		t.Errorf("presented %d times, want 1", surface.presented)
	}

	want := []drawCall{
		{sheet.Player.Texture, RectF{X: 400, Y: 500, W: 64, H: 64}},
		{sheet.Bullet.Texture, RectF{X: 10, Y: 20, W: 16, H: 32}},
		{sheet.Enemy.Texture, RectF{X: 70, Y: 80, W: 48, H: 48}},
	}
	if len(surface.draws) != len(want) {
		t.Fatalf("draws = %d, want %d", len(surface.draws), len(want))
	}
	for i := range want {
		if surface.draws[i] != want[i] {
			t.Errorf("draw %d = %+v, want %+v", i, surface.draws[i], want[i])
		}
	}
}

func TestRenderFrame_PlayerAlwaysDrawn(t *testing.T) {
	r := NewFrameRenderer(testSheet(t))
	surface := &recordingSurface{}

	r.RenderFrame(surface, &engine.State{})

	if len(surface.draws) != 1 {
		t.Fatalf("draws = %d, want only the player", len(surface.draws))
	}
}

func TestLoadSpriteSheet_Failure(t *testing.T) {
	paths := AssetPaths{Player: "p", Bullet: "b", Enemy: "e"}
	_, err := LoadSpriteSheet(fakeLoader{fail: "b"}, paths, engine.DefaultConfig())
	if !errors.Is(err, ErrTextureLoad) {
		t.Fatalf("err = %v, want ErrTextureLoad", err)
	}
}

func TestDefaultAssetPaths(t *testing.T) {
	paths := DefaultAssetPaths("assets")
	if paths.Player != "assets/Ships/ship_0001.png" {
		t.Errorf("player path = %q", paths.Player)
	}
	if paths.Enemy != "assets/Ships/ship_0012.png" || paths.Bullet != "assets/Ships/ship_0011.png" {
		t.Errorf("unexpected paths %+v", paths)
	}
}
