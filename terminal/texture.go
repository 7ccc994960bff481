package terminal

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"os"

	"github.com/lixenwraith/space-shooter/render"
)

// quadrantRunes maps 4-bit coverage patterns to Unicode quadrant characters
// Bit order: 0=UL, 1=UR, 2=LL, 3=LR (1 = opaque)
var quadrantRunes = [16]rune{
	' ', // 0000 - empty
	'▘', // 0001 - upper-left
	'▝', // 0010 - upper-right
	'▀', // 0011 - upper half
	'▖', // 0100 - lower-left
	'▌', // 0101 - left half
	'▞', // 0110 - anti-diagonal
	'▛', // 0111 - UL + UR + LL
	'▗', // 1000 - lower-right
	'▚', // 1001 - diagonal
	'▐', // 1010 - right half
	'▜', // 1011 - UL + UR + LR
	'▄', // 1100 - lower half
	'▙', // 1101 - UL + LL + LR
	'▟', // 1110 - UR + LL + LR
	'█', // 1111 - full block
}

// quadrantOffsets are the sub-cell sample positions: UL, UR, LL, LR
var quadrantOffsets = [4][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}}

// alphaThreshold is the 16-bit alpha below which a pixel counts as transparent
const alphaThreshold = 0x8000

// ImageTexture is a decoded sprite image, resampled into cells at draw time
type ImageTexture struct {
	img image.Image
}

// NewImageTexture wraps an already decoded image
func NewImageTexture(img image.Image) *ImageTexture {
	return &ImageTexture{img: img}
}

// Bounds implements render.Texture
func (t *ImageTexture) Bounds() image.Rectangle {
	return t.img.Bounds()
}

// quadrant samples the 2x2 sub-cell block (col, row) of a cols x rows grid stretched over the image.
// It returns the opacity mask and the average color of the opaque samples.
func (t *ImageTexture) quadrant(col, row, cols, rows int) (uint8, color.RGBA) {
	b := t.img.Bounds()
	srcW, srcH := b.Dx(), b.Dy()
	gridW, gridH := cols*2, rows*2

	var mask uint8
	var sumR, sumG, sumB, n uint32
	for i, off := range quadrantOffsets {
		gx := col*2 + off[0]
		gy := row*2 + off[1]
		// Sample the center of the sub-cell's source region
		sx := b.Min.X + (gx*srcW+srcW/2)/gridW
		sy := b.Min.Y + (gy*srcH+srcH/2)/gridH
		sx = min(sx, b.Max.X-1)
		sy = min(sy, b.Max.Y-1)

		r, g, bl, a := t.img.At(sx, sy).RGBA()
		if a < alphaThreshold {
			continue
		}
		mask |= 1 << i
		// Un-premultiply so half-transparent edges keep their hue
		sumR += r * 0xffff / a
		sumG += g * 0xffff / a
		sumB += bl * 0xffff / a
		n++
	}
	if n == 0 {
		return 0, color.RGBA{}
	}
	return mask, color.RGBA{
		R: uint8(sumR / n >> 8),
		G: uint8(sumG / n >> 8),
		B: uint8(sumB / n >> 8),
		A: 0xff,
	}
}

// TextureLoader decodes PNG files into ImageTextures
type TextureLoader struct{}

// LoadTexture implements render.Loader
func (TextureLoader) LoadTexture(path string) (render.Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("decode %s: empty image", path)
	}
	return NewImageTexture(img), nil
}
