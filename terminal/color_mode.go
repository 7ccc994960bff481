package terminal

import (
	"image/color"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ColorMode selects how RGB colors reach the terminal
type ColorMode uint8

const (
	ColorMode256 ColorMode = iota
	ColorModeTrueColor
)

// String returns the flag spelling of the mode
func (m ColorMode) String() string {
	if m == ColorModeTrueColor {
		return "truecolor"
	}
	return "256"
}

// ParseColorMode resolves a -color flag value; anything unrecognized auto-detects
func ParseColorMode(s string) ColorMode {
	switch s {
	case "256":
		return ColorMode256
	case "truecolor", "true", "24bit":
		return ColorModeTrueColor
	default:
		return DetectColorMode()
	}
}

// DetectColorMode determines terminal color capability from environment
func DetectColorMode() ColorMode {
	colorterm := os.Getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ColorModeTrueColor
	}

	if os.Getenv("KITTY_WINDOW_ID") != "" ||
		os.Getenv("KONSOLE_VERSION") != "" ||
		os.Getenv("ITERM_SESSION_ID") != "" ||
		os.Getenv("ALACRITTY_WINDOW_ID") != "" ||
		os.Getenv("WEZTERM_PANE") != "" {
		return ColorModeTrueColor
	}

	term := strings.ToLower(os.Getenv("TERM"))
	if strings.Contains(term, "truecolor") ||
		strings.Contains(term, "24bit") ||
		strings.Contains(term, "direct") {
		return ColorModeTrueColor
	}

	return ColorMode256
}

// Cube256 returns the xterm 256-palette index for an RGB cube coordinate.
// r, g, b must be in [0,5]. Values outside that range are clamped.
func Cube256(r, g, b uint8) uint8 {
	r, g, b = min(r, 5), min(g, 5), min(b, 5)
	return 16 + 36*r + 6*g + b
}

// Gray256 returns the xterm 256-palette index for a grayscale step in [0,23]
func Gray256(step uint8) uint8 {
	return 232 + min(step, 23)
}

// RGBTo256 maps an 8-bit RGB triple to the nearest cube or grayscale palette entry
func RGBTo256(r, g, b uint8) uint8 {
	// Near-neutral colors use the finer grayscale ramp (levels 8..238 step 10)
	maxC, minC := max(r, g, b), min(r, g, b)
	if maxC-minC < 16 {
		avg := (int(r) + int(g) + int(b)) / 3
		switch {
		case avg < 4:
			return 16
		case avg > 246:
			return 231
		}
		return Gray256(uint8((max(avg-8, 0) + 5) / 10))
	}
	return Cube256(cubeLevel(r), cubeLevel(g), cubeLevel(b))
}

// cubeLevel maps a channel onto the 6 xterm cube levels 0,95,135,175,215,255
func cubeLevel(v uint8) uint8 {
	if v < 48 {
		return 0
	}
	if v < 115 {
		return 1
	}
	return (v - 35) / 40
}

// tcellColor converts c for the given mode
func tcellColor(c color.Color, mode ColorMode) tcell.Color {
	r, g, b, _ := c.RGBA()
	r8, g8, b8 := uint8(r>>8), uint8(g>>8), uint8(b>>8)
	if mode == ColorModeTrueColor {
		return tcell.NewRGBColor(int32(r8), int32(g8), int32(b8))
	}
	return tcell.PaletteColor(int(RGBTo256(r8, g8, b8)))
}
