package render

import (
	"image"
	"image/color"
)

// RectF is a destination rectangle in logical pixels
type RectF struct {
	X, Y float64
	W, H float64
}

// Texture is an opaque, backend-owned image handle
type Texture interface {
	// Bounds returns the source image extent in its own pixels
	Bounds() image.Rectangle
}

// Surface is the frame target a backend exposes to the renderer
type Surface interface {
	// Clear fills the whole frame with c
	Clear(c color.Color)

	// DrawTexture stretches tex into dst; no rotation, no clipping beyond the frame edge
	DrawTexture(tex Texture, dst RectF)

	// Present makes the frame visible
	Present()
}

// Loader turns an image file into a backend texture
type Loader interface {
	LoadTexture(path string) (Texture, error)
}
