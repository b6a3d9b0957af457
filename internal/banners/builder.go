package banners

import (
	"fmt"
	"image"
	"image/color"
	"path"

	"github.com/rook-computer/bannermaker/internal/dsl"
	"github.com/rook-computer/bannermaker/internal/fonts"
	"github.com/rook-computer/bannermaker/internal/render"
	"github.com/rook-computer/bannermaker/internal/render/layout"
)

// Build converts a parsed banner into render primitives. Text runs may only
// be placed below runs declared earlier in the same banner.
func Build(b *dsl.Banner) (*render.Banner, error) {
	if b == nil {
		return nil, fmt.Errorf("build: nil banner")
	}
	spec := render.Spec{Width: render.CanvasWidth, Height: render.CanvasHeight, Background: render.Background}
	if b.Size != nil {
		if b.Size.Width <= 0 || b.Size.Height <= 0 {
			return nil, fmt.Errorf("%s: banner %s: size %dx%d must be positive", b.Pos, b.Name, b.Size.Width, b.Size.Height)
		}
		spec.Width, spec.Height = b.Size.Width, b.Size.Height
	}
	if b.Background != nil {
		bg, err := render.ParseColor(*b.Background)
		if err != nil {
			return nil, fmt.Errorf("%s: banner %s: background: %w", b.Pos, b.Name, err)
		}
		spec.Background = bg
	}
	output := string(b.Output)
	if output == "" || path.Base(output) != output {
		return nil, fmt.Errorf("%s: banner %s: output %q must be a plain file name", b.Pos, b.Name, output)
	}

	builder := &builder{spec: spec, ids: map[string]bool{}}
	banner := &render.Banner{Name: b.Name, Output: output, Spec: spec}
	for _, st := range b.Statements {
		p, err := builder.statement(st)
		if err != nil {
			return nil, fmt.Errorf("%s: %s: %w", st.Pos, st.Kind(), err)
		}
		banner.Primitives = append(banner.Primitives, p)
	}
	return banner, nil
}

type builder struct {
	spec render.Spec
	ids  map[string]bool
}

func (b *builder) statement(st *dsl.Statement) (render.Primitive, error) {
	switch {
	case st.Circle != nil:
		return b.circle(st.Circle)
	case st.Rect != nil:
		return b.rect(st.Rect)
	case st.Strip != nil:
		return b.strip(st.Strip)
	case st.Text != nil:
		return b.text(st.Text)
	case st.QR != nil:
		return b.qr(st.QR)
	default:
		return nil, fmt.Errorf("empty statement")
	}
}

func (b *builder) circle(c *dsl.Circle) (render.Primitive, error) {
	fill, err := optionalColor(c.Fill)
	if err != nil {
		return nil, err
	}
	outline, width, err := parseOutline(c.Outline)
	if err != nil {
		return nil, err
	}
	return render.Circle{Center: image.Pt(c.X, c.Y), Radius: c.Radius, Fill: fill, Outline: outline, OutlineWidth: width}, nil
}

func (b *builder) rect(r *dsl.Rect) (render.Primitive, error) {
	fill, err := optionalColor(r.Fill)
	if err != nil {
		return nil, err
	}
	outline, width, err := parseOutline(r.Outline)
	if err != nil {
		return nil, err
	}
	return render.Rect{Min: image.Pt(r.X0, r.Y0), Max: image.Pt(r.X1, r.Y1), Fill: fill, Outline: outline, OutlineWidth: width}, nil
}

func (b *builder) strip(s *dsl.Strip) (render.Primitive, error) {
	if s.Height <= 0 {
		return nil, fmt.Errorf("height %d must be positive", s.Height)
	}
	fill, err := render.ParseColor(s.Fill)
	if err != nil {
		return nil, err
	}
	canvas := image.Rect(0, 0, b.spec.Width, b.spec.Height)
	var band image.Rectangle
	switch s.Edge {
	case "top":
		band, _ = layout.SplitHorizontal(canvas, s.Height)
	default:
		_, band = layout.SplitHorizontal(canvas, canvas.Dy()-s.Height)
	}
	return render.Rect{Min: band.Min, Max: band.Max.Sub(image.Pt(1, 1)), Fill: fill}, nil
}

func (b *builder) text(t *dsl.Text) (render.Primitive, error) {
	if t.Size <= 0 {
		return nil, fmt.Errorf("size %d must be positive", t.Size)
	}
	if t.ID != "" && b.ids[t.ID] {
		return nil, fmt.Errorf("duplicate text id %q", t.ID)
	}
	fill, err := render.ParseColor(t.Fill)
	if err != nil {
		return nil, err
	}
	run := render.Text{
		ID:      t.ID,
		Content: string(t.Content),
		Style:   render.TextStyle{Color: fill, Font: fonts.Descriptor{Size: float64(t.Size), Bold: t.Bold}},
	}

	switch p := t.Placement; {
	case p.Center != nil:
		run.Layout = render.TextCentered
		run.X, run.Y = p.Center.X, p.Center.Y
	case p.At != nil:
		run.X = p.At.X
		v := p.At.Vertical
		switch {
		case v.Below != nil:
			if !b.ids[v.Below.Ref] {
				return nil, fmt.Errorf("text %q below %q: %w", t.ID, v.Below.Ref, render.ErrUnknownAnchor)
			}
			run.Vertical, run.Ref, run.Y = render.VerticalBelow, v.Below.Ref, v.Below.Gap
		case v.Middle != nil:
			run.Vertical, run.Y = render.VerticalMiddle, *v.Middle
		case v.Y != nil:
			run.Y = *v.Y
		}
	}

	if t.ID != "" {
		b.ids[t.ID] = true
	}
	return run, nil
}

func (b *builder) qr(q *dsl.QR) (render.Primitive, error) {
	if q.Size <= 0 {
		return nil, fmt.Errorf("size %d must be positive", q.Size)
	}
	if q.Payload == "" {
		return nil, fmt.Errorf("empty payload")
	}
	return render.QRCode{Payload: string(q.Payload), At: image.Pt(q.At.X, q.At.Y), Size: q.Size}, nil
}

func optionalColor(s *string) (color.Color, error) {
	if s == nil {
		return nil, nil
	}
	c, err := render.ParseColor(*s)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func parseOutline(o *dsl.Outline) (color.Color, int, error) {
	if o == nil {
		return nil, 0, nil
	}
	c, err := render.ParseColor(o.Color)
	if err != nil {
		return nil, 0, err
	}
	return c, o.Width, nil
}
