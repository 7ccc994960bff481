package render

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/lixenwraith/space-shooter/constants"
	"github.com/lixenwraith/space-shooter/engine"
)

// ErrTextureLoad wraps every sprite loading failure
var ErrTextureLoad = errors.New("texture loading failed")

// Sprite pairs a texture with the fixed on-screen size of its entity kind
type Sprite struct {
	Texture Texture
	W, H    int
}

// Rect returns the destination rectangle for a sprite drawn at (x, y)
func (s Sprite) Rect(x, y int) RectF {
	return RectF{X: float64(x), Y: float64(y), W: float64(s.W), H: float64(s.H)}
}

// SpriteSheet holds one immutable sprite per entity kind
type SpriteSheet struct {
	Player Sprite
	Bullet Sprite
	Enemy  Sprite
}

// AssetPaths are the image files behind a SpriteSheet
type AssetPaths struct {
	Player string
	Bullet string
	Enemy  string
}

// DefaultAssetPaths returns the stock ship images under dir
func DefaultAssetPaths(dir string) AssetPaths {
	return AssetPaths{
		Player: filepath.Join(dir, constants.PlayerSpritePath),
		Bullet: filepath.Join(dir, constants.BulletSpritePath),
		Enemy:  filepath.Join(dir, constants.EnemySpritePath),
	}
}

// LoadSpriteSheet loads all three textures, sized from cfg.
// Any failure aborts the whole load; there is no fallback image.
func LoadSpriteSheet(l Loader, paths AssetPaths, cfg engine.Config) (*SpriteSheet, error) {
	load := func(path string, size engine.Size) (Sprite, error) {
		tex, err := l.LoadTexture(path)
		if err != nil {
			return Sprite{}, fmt.Errorf("%w: %s: %w", ErrTextureLoad, path, err)
		}
		if tex == nil {
			return Sprite{}, fmt.Errorf("%w: %s: loader returned no texture", ErrTextureLoad, path)
		}
		return Sprite{Texture: tex, W: size.W, H: size.H}, nil
	}

	var sheet SpriteSheet
	var err error
	if sheet.Player, err = load(paths.Player, cfg.PlayerSize); err != nil {
		return nil, err
	}
	if sheet.Bullet, err = load(paths.Bullet, cfg.BulletSize); err != nil {
		return nil, err
	}
	if sheet.Enemy, err = load(paths.Enemy, cfg.EnemySize); err != nil {
		return nil, err
	}
	return &sheet, nil
}
