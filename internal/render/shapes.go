package render

import (
	"image"
	"image/color"

	"github.com/rook-computer/bannermaker/internal/render/layout"
	"golang.org/x/image/vector"
)

// kappa places cubic control points for a quarter ellipse.
const kappa = 0.5522847498

// ellipsePath adds the ellipse inscribed in rect as a closed path, clockwise
// on screen unless reverse is set.
func ellipsePath(z *vector.Rasterizer, rect image.Rectangle, reverse bool) {
	rx := float32(rect.Dx()) / 2
	ry := float32(rect.Dy()) / 2
	cx := float32(rect.Min.X) + rx
	cy := float32(rect.Min.Y) + ry
	kx, ky := kappa*rx, kappa*ry

	z.MoveTo(cx+rx, cy)
	if !reverse {
		z.CubeTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
		z.CubeTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
		z.CubeTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
		z.CubeTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	} else {
		z.CubeTo(cx+rx, cy-ky, cx+kx, cy-ry, cx, cy-ry)
		z.CubeTo(cx-kx, cy-ry, cx-rx, cy-ky, cx-rx, cy)
		z.CubeTo(cx-rx, cy+ky, cx-kx, cy+ry, cx, cy+ry)
		z.CubeTo(cx+kx, cy+ry, cx+rx, cy+ky, cx+rx, cy)
	}
	z.ClosePath()
}

// Circle is a disc centered on Center whose bounding box spans
// [Center-Radius, Center+Radius] with both edges painted. The outline is drawn
// inside that box. A nil Fill leaves the interior unpainted; an Outline with a
// non-positive width is one pixel wide.
type Circle struct {
	Center       image.Point
	Radius       int
	Fill         color.Color
	Outline      color.Color
	OutlineWidth int
}

func (c Circle) Draw(d Drawer) error {
	rect := layout.Around(c.Center, c.Radius)
	if c.Fill != nil {
		d.FillEllipse(rect, c.Fill)
	}
	if c.Outline != nil {
		d.FillRing(rect, outlineWidth(c.OutlineWidth), c.Outline)
	}
	return nil
}

// Rect is an axis-aligned rectangle with both corners painted. The outline is
// drawn inward.
type Rect struct {
	Min, Max     image.Point
	Fill         color.Color
	Outline      color.Color
	OutlineWidth int
}

func (r Rect) Draw(d Drawer) error {
	rect := layout.Inclusive(r.Min.X, r.Min.Y, r.Max.X, r.Max.Y)
	if r.Fill != nil {
		d.FillRect(rect, r.Fill)
	}
	if r.Outline == nil {
		return nil
	}
	width := outlineWidth(r.OutlineWidth)
	inner := layout.Inset(rect, width)
	if inner.Empty() {
		d.FillRect(rect, r.Outline)
		return nil
	}
	top, rest := layout.SplitHorizontal(rect, inner.Min.Y-rect.Min.Y)
	middle, bottom := layout.SplitHorizontal(rest, inner.Dy())
	d.FillRect(top, r.Outline)
	d.FillRect(bottom, r.Outline)
	d.FillRect(image.Rect(middle.Min.X, middle.Min.Y, inner.Min.X, middle.Max.Y), r.Outline)
	d.FillRect(image.Rect(inner.Max.X, middle.Min.Y, middle.Max.X, middle.Max.Y), r.Outline)
	return nil
}

func outlineWidth(width int) int {
	if width <= 0 {
		return 1
	}
	return width
}
