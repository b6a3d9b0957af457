package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Global render configuration for the banner canvas and palette.
var (
	// Logical canvas size used when a banner does not set one.
	CanvasWidth  = 1200
	CanvasHeight = 400

	Blue      = color.RGBA{R: 30, G: 64, B: 175, A: 0xFF}   // #1e40af
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 0xFF} // #ffffff
	Gold      = color.RGBA{R: 255, G: 215, B: 0, A: 0xFF}   // #ffd700
	DarkBlue  = color.RGBA{R: 20, G: 40, B: 120, A: 0xFF}   // #142878
	Red       = color.RGBA{R: 220, G: 38, B: 38, A: 0xFF}   // #dc2626
	LightBlue = color.RGBA{R: 96, G: 165, B: 250, A: 0xFF}  // #60a5fa

	// Background used when a banner does not set one.
	Background = Blue
)

// Palette maps the color names accepted in banner descriptions.
var Palette = map[string]color.RGBA{
	"blue":       Blue,
	"white":      White,
	"gold":       Gold,
	"dark-blue":  DarkBlue,
	"red":        Red,
	"light-blue": LightBlue,
}

// ParseColor accepts #rrggbb or a Palette name.
func ParseColor(s string) (color.RGBA, error) {
	if !strings.HasPrefix(s, "#") {
		c, ok := Palette[strings.ToLower(s)]
		if !ok {
			return color.RGBA{}, fmt.Errorf("unknown color %q", s)
		}
		return c, nil
	}
	hex := s[1:]
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("color %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}, nil
}
