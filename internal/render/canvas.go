package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"

	"github.com/rook-computer/bannermaker/internal/fonts"
	"github.com/rook-computer/bannermaker/internal/render/layout"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Canvas is an in-memory RGBA raster implementing Drawer.
type Canvas struct {
	img     *image.RGBA
	faces   FaceSource
	ras     *vector.Rasterizer
	anchors map[string]image.Rectangle
}

var _ Drawer = (*Canvas)(nil)

// NewCanvas allocates a canvas of the given size. The background is not
// painted until FillBackground.
func NewCanvas(spec Spec, faces FaceSource) *Canvas {
	if faces == nil {
		faces = fallbackFaces{}
	}
	return &Canvas{
		img:     image.NewRGBA(image.Rect(0, 0, spec.Width, spec.Height)),
		faces:   faces,
		anchors: map[string]image.Rectangle{},
	}
}

// Image returns the backing raster.
func (c *Canvas) Image() *image.RGBA { return c.img }

func (c *Canvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

func (c *Canvas) FillBackground(col color.Color) {
	draw.Draw(c.img, c.img.Bounds(), &image.Uniform{C: col}, image.Point{}, draw.Src)
}

func (c *Canvas) FillRect(rect image.Rectangle, col color.Color) {
	draw.Draw(c.img, layout.Normalize(rect), &image.Uniform{C: col}, image.Point{}, draw.Over)
}

func (c *Canvas) FillEllipse(rect image.Rectangle, col color.Color) {
	rect = layout.Normalize(rect)
	if rect.Empty() {
		return
	}
	z := c.rasterizer()
	ellipsePath(z, rect, false)
	z.Draw(c.img, c.img.Bounds(), &image.Uniform{C: col}, image.Point{})
}

func (c *Canvas) FillRing(rect image.Rectangle, width int, col color.Color) {
	rect = layout.Normalize(rect)
	if rect.Empty() || width <= 0 {
		return
	}
	inner := layout.Inset(rect, width)
	if inner.Empty() {
		c.FillEllipse(rect, col)
		return
	}
	// Opposite windings cancel, leaving the inner ellipse unpainted.
	z := c.rasterizer()
	ellipsePath(z, rect, false)
	ellipsePath(z, inner, true)
	z.Draw(c.img, c.img.Bounds(), &image.Uniform{C: col}, image.Point{})
}

func (c *Canvas) rasterizer() *vector.Rasterizer {
	w, h := c.Size()
	if c.ras == nil {
		c.ras = vector.NewRasterizer(w, h)
	} else {
		c.ras.Reset(w, h)
	}
	return c.ras
}

func (c *Canvas) MeasureText(text string, style TextStyle) TextMetrics {
	return measureString(c.faces.Face(style.Font), text)
}

func (c *Canvas) DrawText(text string, x, y int, style TextStyle) TextMetrics {
	face := c.faces.Face(style.Font)
	metrics := measureString(face, text)
	textColor := style.Color
	if textColor == nil {
		textColor = color.Black
	}
	drawer := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(textColor),
		Face: face,
		Dot:  fixed.P(x, y+metrics.Ascent),
	}
	drawer.DrawString(text)
	return metrics
}

func (c *Canvas) DrawImageInRect(img image.Image, rect image.Rectangle, mode ScaleMode) {
	rect = layout.Normalize(rect)
	src := img.Bounds()
	if rect.Empty() || src.Empty() {
		return
	}
	dst := rect
	switch mode {
	case ScaleModeFit:
		w, h := fitSize(src.Dx(), src.Dy(), rect.Dx(), rect.Dy())
		dst = layout.CenterIn(rect, w, h)
	case ScaleModeFill:
		// Crop the source to the destination aspect ratio.
		w, h := fitSize(rect.Dx(), rect.Dy(), src.Dx(), src.Dy())
		src = layout.CenterIn(src, w, h)
	}
	xdraw.NearestNeighbor.Scale(c.img, dst, img, src, xdraw.Over, nil)
}

func (c *Canvas) Anchor(id string) (image.Rectangle, bool) {
	rect, ok := c.anchors[id]
	return rect, ok
}

func (c *Canvas) SetAnchor(id string, rect image.Rectangle) { c.anchors[id] = rect }

// fitSize scales (w,h) to the largest size with the same aspect ratio that
// fits in (boxW,boxH).
func fitSize(w, h, boxW, boxH int) (int, int) {
	if w <= 0 || h <= 0 {
		return 0, 0
	}
	if boxW*h <= boxH*w {
		return boxW, h * boxW / w
	}
	return w * boxH / h, boxH
}

func measureString(face font.Face, text string) TextMetrics {
	bounds, advance := font.BoundString(face, text)
	metrics := face.Metrics()
	return TextMetrics{
		Width:      (bounds.Max.X - bounds.Min.X).Ceil(),
		Height:     (bounds.Max.Y - bounds.Min.Y).Ceil(),
		Advance:    advance.Ceil(),
		Ascent:     metrics.Ascent.Ceil(),
		Descent:    metrics.Descent.Ceil(),
		LineHeight: metrics.Height.Ceil(),
	}
}

type fallbackFaces struct{}

func (fallbackFaces) Face(fonts.Descriptor) font.Face { return fonts.Fallback() }

// PNGRenderer draws banners onto a Canvas and encodes them as PNG.
type PNGRenderer struct {
	Faces  FaceSource
	Logger interface {
		Infof(string, string, ...interface{})
		Errorf(string, string, ...interface{})
	}
}

func NewPNGRenderer(faces FaceSource) *PNGRenderer { return &PNGRenderer{Faces: faces} }

// Render paints the background and then every primitive in order.
func (r *PNGRenderer) Render(b *Banner) (*image.RGBA, error) {
	if b == nil {
		return nil, fmt.Errorf("render: nil banner")
	}
	background := b.Spec.Background
	if background == nil {
		background = Background
	}
	canvas := NewCanvas(b.Spec, r.Faces)
	canvas.FillBackground(background)
	for i, p := range b.Primitives {
		if err := p.Draw(canvas); err != nil {
			if r.Logger != nil {
				r.Logger.Errorf("render", "%s: primitive %d failed: %v", b.Name, i, err)
			}
			return nil, fmt.Errorf("render %s: primitive %d: %w", b.Name, i, err)
		}
	}
	if r.Logger != nil {
		w, h := canvas.Size()
		r.Logger.Infof("render", "%s: drew %d primitives on %dx%d", b.Name, len(b.Primitives), w, h)
	}
	return canvas.Image(), nil
}

// WriteFile renders b and writes it to path, replacing any existing file.
func (r *PNGRenderer) WriteFile(b *Banner, path string) error {
	img, err := r.Render(b)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	if r.Logger != nil {
		r.Logger.Infof("render", "wrote %s", path)
	}
	return nil
}

// Encode writes img as PNG. Output is byte-identical for identical images.
func Encode(w io.Writer, img image.Image) error {
	enc := png.Encoder{CompressionLevel: png.DefaultCompression}
	return enc.Encode(w, img)
}
