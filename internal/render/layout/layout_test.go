package layout_test

import (
	"image"
	"testing"

	"github.com/rook-computer/bannermaker/internal/render/layout"
	"github.com/stretchr/testify/assert"
)

func TestInsetShrinksAllSides(t *testing.T) {
	got := layout.Inset(image.Rect(10, 10, 50, 30), 4)
	assert.Equal(t, image.Rect(14, 14, 46, 26), got)
}

func TestInsetCollapsesWhenPaddingTooLarge(t *testing.T) {
	got := layout.Inset(image.Rect(0, 0, 10, 40), 5)
	assert.True(t, got.Empty(), "expected empty rect, got %v", got)
}

func TestInsetIgnoresNonPositivePadding(t *testing.T) {
	rect := image.Rect(1, 2, 3, 4)
	assert.Equal(t, rect, layout.Inset(rect, 0))
	assert.Equal(t, rect, layout.Inset(rect, -3))
}

func TestNormalizeSwapsCorners(t *testing.T) {
	got := layout.Normalize(image.Rectangle{Min: image.Pt(9, 8), Max: image.Pt(1, 2)})
	assert.Equal(t, image.Rect(1, 2, 9, 8), got)
}

func TestInclusiveIncludesBothCorners(t *testing.T) {
	got := layout.Inclusive(320, 90, 360, 210)
	assert.Equal(t, 41, got.Dx())
	assert.Equal(t, 121, got.Dy())
	assert.True(t, image.Pt(360, 210).In(got))
}

func TestAroundCoversDiameterPlusCenter(t *testing.T) {
	got := layout.Around(image.Pt(150, 120), 90)
	assert.Equal(t, image.Rect(60, 30, 241, 211), got)
}

func TestSplitHorizontalClamps(t *testing.T) {
	canvas := image.Rect(0, 0, 1200, 400)

	top, bottom := layout.SplitHorizontal(canvas, 388)
	assert.Equal(t, image.Rect(0, 0, 1200, 388), top)
	assert.Equal(t, image.Rect(0, 388, 1200, 400), bottom)

	top, bottom = layout.SplitHorizontal(canvas, 1000)
	assert.Equal(t, canvas, top)
	assert.True(t, bottom.Empty())

	top, _ = layout.SplitHorizontal(canvas, -5)
	assert.True(t, top.Empty())
}

func TestCenterIn(t *testing.T) {
	got := layout.CenterIn(image.Rect(0, 0, 100, 50), 20, 10)
	assert.Equal(t, image.Rect(40, 20, 60, 30), got)

	got = layout.CenterIn(image.Rect(0, 0, 10, 10), 30, 10)
	assert.Equal(t, image.Rect(-10, 0, 20, 10), got)
}
