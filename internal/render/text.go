package render

import (
	"errors"
	"fmt"
	"image"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ErrUnknownAnchor is returned when a text run is positioned below a run
// that has not been drawn.
var ErrUnknownAnchor = errors.New("unknown text anchor")

type TextLayout int

const (
	// TextLeft left-aligns every line at X.
	TextLeft TextLayout = iota
	// TextCentered centers each line on X and the whole block on Y.
	TextCentered
)

type VerticalMode int

const (
	// VerticalAbsolute uses Y as the top of the block (its center for TextCentered).
	VerticalAbsolute VerticalMode = iota
	// VerticalBelow places the block Y pixels below the anchor named by Ref.
	VerticalBelow
	// VerticalMiddle centers the block on the canvas, shifted by Y.
	VerticalMiddle
)

// Text is a run of one or more lines separated by "\n". Each line is measured
// on its own and lines are stacked by their own ink height.
type Text struct {
	ID       string
	Content  string
	X, Y     int
	Layout   TextLayout
	Vertical VerticalMode
	Ref      string
	Style    TextStyle
}

func (t Text) Draw(d Drawer) error {
	lines := strings.Split(norm.NFC.String(t.Content), "\n")
	metrics := make([]TextMetrics, len(lines))
	blockWidth, blockHeight := 0, 0
	for i, line := range lines {
		metrics[i] = d.MeasureText(line, t.Style)
		blockWidth = max(blockWidth, metrics[i].Width)
		blockHeight += metrics[i].Height
	}

	top, err := t.top(d, blockHeight)
	if err != nil {
		return err
	}

	y := top
	for i, line := range lines {
		x := t.X
		if t.Layout == TextCentered {
			x = t.X - metrics[i].Width/2
		}
		d.DrawText(line, x, y, t.Style)
		y += metrics[i].Height
	}

	if t.ID != "" {
		left := t.X
		if t.Layout == TextCentered {
			left = t.X - blockWidth/2
		}
		d.SetAnchor(t.ID, image.Rect(left, top, left+blockWidth, top+blockHeight))
	}
	return nil
}

func (t Text) top(d Drawer, blockHeight int) (int, error) {
	switch t.Vertical {
	case VerticalBelow:
		ref, ok := d.Anchor(t.Ref)
		if !ok {
			return 0, fmt.Errorf("text %q below %q: %w", t.ID, t.Ref, ErrUnknownAnchor)
		}
		return ref.Max.Y + t.Y, nil
	case VerticalMiddle:
		_, height := d.Size()
		return height/2 - blockHeight/2 + t.Y, nil
	default:
		if t.Layout == TextCentered {
			return t.Y - blockHeight/2, nil
		}
		return t.Y, nil
	}
}
