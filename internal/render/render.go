package render

import (
	"image"
	"image/color"

	"github.com/rook-computer/bannermaker/internal/fonts"
	"golang.org/x/image/font"
)

// Spec describes the canvas a banner is drawn on.
type Spec struct {
	Width      int
	Height     int
	Background color.Color
}

// Banner is a canvas plus the primitives drawn on it, in order.
type Banner struct {
	Name       string
	Output     string
	Spec       Spec
	Primitives []Primitive
}

// Primitive is one drawing instruction. Later primitives paint over earlier ones.
type Primitive interface {
	Draw(d Drawer) error
}

// FaceSource resolves font descriptors; see fonts.Resolver.
type FaceSource interface {
	Face(d fonts.Descriptor) font.Face
}

// Drawer is the surface primitives draw on. Rectangles are half-open, as in
// the image package.
type Drawer interface {
	// Size returns the canvas size in pixels.
	Size() (width int, height int)

	FillBackground(c color.Color)
	FillRect(rect image.Rectangle, c color.Color)
	// FillEllipse fills the ellipse inscribed in rect.
	FillEllipse(rect image.Rectangle, c color.Color)
	// FillRing fills the band of the given width just inside the ellipse
	// inscribed in rect.
	FillRing(rect image.Rectangle, width int, c color.Color)

	// Text primitives work on a single line. y is the top of the line box.
	MeasureText(text string, style TextStyle) TextMetrics
	DrawText(text string, x, y int, style TextStyle) TextMetrics

	DrawImageInRect(img image.Image, rect image.Rectangle, mode ScaleMode)

	// Anchors record where named text runs ended up so later runs can be
	// positioned relative to them.
	Anchor(id string) (image.Rectangle, bool)
	SetAnchor(id string, rect image.Rectangle)
}

// TextStyle describes how to render text.
type TextStyle struct {
	Color color.Color
	Font  fonts.Descriptor
}

// TextMetrics are in pixels. Width and Height are the ink bounds of the
// string; the rest come from the face.
type TextMetrics struct {
	Width      int
	Height     int
	Advance    int
	Ascent     int
	Descent    int
	LineHeight int
}

type ScaleMode int

const (
	ScaleModeFit ScaleMode = iota
	ScaleModeFill
	ScaleModeStretch
)
