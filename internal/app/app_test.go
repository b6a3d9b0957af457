package app

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rook-computer/bannermaker/internal/fonts"
	"github.com/rook-computer/bannermaker/internal/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// missingFonts points at files that do not exist, so every face falls back.
func missingFonts(t *testing.T, logger Logger) *fonts.Resolver {
	t.Helper()
	missing := filepath.Join(t.TempDir(), "nope.ttf")
	r := fonts.NewResolver(fonts.Files{Regular: missing, Bold: missing}, "")
	r.Logger = logger
	return r
}

func goFonts(t *testing.T) *fonts.Resolver {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "regular.ttf"), goregular.TTF, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bold.ttf"), gobold.TTF, 0o644))
	return fonts.NewResolver(fonts.Files{Regular: "regular.ttf", Bold: "bold.ttf"}, dir)
}

func newTestApp(t *testing.T, faces render.FaceSource) (*App, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	a := New(faces, nil)
	a.Dir = t.TempDir()
	a.Stdout = &out
	return a, &out
}

func readPNG(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	return img
}

func rgba(img image.Image, x, y int) color.RGBA {
	return color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
}

func assertBottomStrip(t *testing.T, img image.Image) {
	t.Helper()
	for y := 388; y < 400; y++ {
		for _, x := range []int{0, 600, 1199} {
			assert.Equal(t, render.Gold, rgba(img, x, y), "strip pixel (%d,%d)", x, y)
		}
	}
	assert.Equal(t, render.Blue, rgba(img, 5, 387))
}

func TestGenerateDiscount(t *testing.T) {
	a, out := newTestApp(t, missingFonts(t, nil))

	path, err := a.Generate("discount")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(a.Dir, "discount_banner.png"), path)
	assert.Equal(t, "Banner saved as discount_banner.png\n", out.String())

	img := readPNG(t, path)
	assert.Equal(t, image.Rect(0, 0, 1200, 400), img.Bounds())

	// badge: gold disc with white rim centered on (150,120), radius 90
	assert.Equal(t, render.Gold, rgba(img, 150+80, 120))
	assert.Equal(t, render.Gold, rgba(img, 150, 120-80))
	assert.Equal(t, render.White, rgba(img, 150, 120-88))
	assert.Equal(t, render.White, rgba(img, 150+88, 120))
	assert.Equal(t, render.Blue, rgba(img, 150, 120-92))
	assert.Equal(t, render.Blue, rgba(img, 150-92, 120))

	// test tube body and cap
	assert.Equal(t, render.LightBlue, rgba(img, 320, 150))
	assert.Equal(t, render.White, rgba(img, 340, 150))
	assert.Equal(t, render.LightBlue, rgba(img, 340, 100))

	assertBottomStrip(t, img)
}

func TestGenerateMembership(t *testing.T) {
	a, out := newTestApp(t, missingFonts(t, nil))

	path, err := a.Generate("membership")
	require.NoError(t, err)
	assert.Equal(t, "Banner saved as membership_banner.png\n", out.String())

	img := readPNG(t, path)
	assert.Equal(t, image.Rect(0, 0, 1200, 400), img.Bounds())

	// The headline is the only white ink on the banner.
	minX := -1
	for y := 0; y < 388; y++ {
		for x := 0; x < 1200; x++ {
			if rgba(img, x, y) == render.White && (minX < 0 || x < minX) {
				minX = x
			}
		}
	}
	require.GreaterOrEqual(t, minX, 200)
	assert.Less(t, minX, 215)

	assertBottomStrip(t, img)
}

func TestGenerateIsIdempotent(t *testing.T) {
	for _, faces := range map[string]render.FaceSource{"fallback": missingFonts(t, nil), "gofont": goFonts(t)} {
		a, out := newTestApp(t, faces)

		path, err := a.Generate("discount")
		require.NoError(t, err)
		first, err := os.ReadFile(path)
		require.NoError(t, err)
		require.NotEmpty(t, first)

		_, err = a.Generate("discount")
		require.NoError(t, err)
		second, err := os.ReadFile(path)
		require.NoError(t, err)

		assert.True(t, bytes.Equal(first, second), "second run differs")
		assert.Equal(t, 2, strings.Count(out.String(), "Banner saved as discount_banner.png"))
	}
}

func TestGenerateWithOutlineFontKeepsLayout(t *testing.T) {
	a, _ := newTestApp(t, goFonts(t))

	path, err := a.Generate("membership")
	require.NoError(t, err)
	img := readPNG(t, path)
	assert.Equal(t, image.Rect(0, 0, 1200, 400), img.Bounds())
	assertBottomStrip(t, img)
}

func TestGenerateFallbackIsLoggedNotReturned(t *testing.T) {
	var logs bytes.Buffer
	logger := NewFileLogger(&logs)
	a := New(missingFonts(t, logger), logger)
	a.Dir = t.TempDir()
	a.Stdout = nil

	_, err := a.Generate("membership")
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "[ERROR] fonts: font read failed, using basicfont")
	assert.Contains(t, logs.String(), "[INFO] render: wrote ")
}

func TestGenerateUnknownBanner(t *testing.T) {
	a, out := newTestApp(t, missingFonts(t, nil))
	_, err := a.Generate("clearance")
	assert.Error(t, err)
	assert.Empty(t, out.String())
}

func TestGenerateUnwritableDir(t *testing.T) {
	a, out := newTestApp(t, missingFonts(t, nil))
	a.Dir = filepath.Join(a.Dir, "does", "not", "exist")
	_, err := a.Generate("discount")
	assert.Error(t, err)
	assert.Empty(t, out.String())
}

func TestFileLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	NewFileLogger(&buf).Infof("app", "wrote %d banners", 2)
	line := buf.String()
	assert.True(t, strings.HasSuffix(line, " [INFO] app: wrote 2 banners\n"), line)
}
