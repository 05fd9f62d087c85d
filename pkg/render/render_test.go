package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kolamkit/kolam/pkg/domain"
	"github.com/kolamkit/kolam/pkg/palette"
)

// testPattern is a small hand-built 2x2 pattern. The geometry stays well
// inside the padded box so corner pixels are always background.
func testPattern() *domain.Pattern {
	return &domain.Pattern{
		ID:   "kolam-2x2",
		Name: "Kolam 2×2",
		Dots: []domain.Dot{
			{ID: "dot-0-0", Center: domain.Point{X: 60, Y: 60}, Radius: 3},
			{ID: "dot-0-1", Center: domain.Point{X: 120, Y: 60}, Radius: 3},
			{ID: "dot-1-0", Center: domain.Point{X: 60, Y: 120}, Radius: 3},
			{ID: "dot-1-1", Center: domain.Point{X: 120, Y: 120}, Radius: 3},
		},
		Curves: []domain.Curve{
			{ID: "curve-0-0", Points: []domain.Point{
				{X: 45, Y: 60}, {X: 60, Y: 75}, {X: 75, Y: 60}, {X: 60, Y: 45}, {X: 45, Y: 60},
			}},
			{ID: "curve-1-1", Points: []domain.Point{
				{X: 105, Y: 120}, {X: 120, Y: 135}, {X: 135, Y: 120},
			}},
		},
		Dimensions: domain.Dimensions{Width: 180, Height: 180},
		Matrix:     domain.Matrix{{1, 1}, {1, 1}},
	}
}

func TestRender_CanvasSize(t *testing.T) {
	p := testPattern()

	img := Render(p, palette.Default(), Options{Width: 320, Height: 240})
	assert.Equal(t, 320, img.Bounds().Dx())
	assert.Equal(t, 240, img.Bounds().Dy())

	img = Render(p, palette.Default(), Options{})
	assert.Equal(t, 800, img.Bounds().Dx())
	assert.Equal(t, 800, img.Bounds().Dy())
}

func TestRender_BackgroundAndDots(t *testing.T) {
	// classic is black-on-black-free: white dots and lines on #000000, so
	// pixel checks are exact.
	p := testPattern()
	img := Render(p, palette.Default(), Options{Width: 440, Height: 440})

	black := color.RGBA{A: 0xFF}
	assert.Equal(t, black, img.At(0, 0))
	assert.Equal(t, black, img.At(439, 0))
	assert.Equal(t, black, img.At(0, 439))
	assert.Equal(t, black, img.At(439, 439))

	// Pattern box is 180+2*20 units mapped onto 440px, so the scale is
	// exactly 2. dot-0-0 at (60, 60) lands at (160, 280) after the y flip
	// and its 6px radius covers the centre pixel.
	r, g, b, a := img.At(160, 280).RGBA()
	assert.Equal(t, uint32(0xFFFF), a)
	assert.Greater(t, r, uint32(0xF000))
	assert.Greater(t, g, uint32(0xF000))
	assert.Greater(t, b, uint32(0xF000))
}

func TestRender_Deterministic(t *testing.T) {
	p := testPattern()
	scheme := palette.GetOrDefault("ocean")

	var a, b bytes.Buffer
	require.NoError(t, RenderPNG(&a, p, scheme, Options{Width: 200, Height: 200}))
	require.NoError(t, RenderPNG(&b, p, scheme, Options{Width: 200, Height: 200}))
	assert.Equal(t, a.Bytes(), b.Bytes())
}

func TestRender_DoesNotMutatePattern(t *testing.T) {
	p := testPattern()
	snapshot := p.Clone()

	Render(p, palette.Default(), Options{Width: 100, Height: 100})
	Render(p, palette.Default(), Options{Width: 100, Height: 100, NoSmooth: true})
	Frames(p, palette.Default(), 3, Options{Width: 64, Height: 64})

	assert.Equal(t, snapshot, p)
}

func TestRenderPNG_Decodes(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderPNG(&buf, testPattern(), palette.Default(), Options{Width: 128, Height: 96}))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 128, img.Bounds().Dx())
	assert.Equal(t, 96, img.Bounds().Dy())
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kolam.png")
	require.NoError(t, SavePNG(path, testPattern(), palette.Default(), Options{Width: 64, Height: 64}))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 64, cfg.Width)
	assert.Equal(t, 64, cfg.Height)
}

func TestFrames(t *testing.T) {
	p := testPattern()
	scheme := palette.Default()
	opts := Options{Width: 120, Height: 120}

	frames := Frames(p, scheme, 4, opts)
	require.Len(t, frames, 5)

	// The first frame shows nothing yet and the last one is the full
	// render.
	empty := Render(&domain.Pattern{Dimensions: p.Dimensions}, scheme, opts)
	assert.Equal(t, pix(t, empty), pix(t, frames[0]))

	full := Render(p, scheme, opts)
	assert.Equal(t, pix(t, full), pix(t, frames[len(frames)-1]))
}

func TestFrames_MinimumCount(t *testing.T) {
	frames := Frames(testPattern(), palette.Default(), 0, Options{Width: 32, Height: 32})
	assert.Len(t, frames, 2)
}

func TestVariants_CoversAllPalettes(t *testing.T) {
	variants := Variants(testPattern(), Options{Width: 48, Height: 48})

	keys := make([]string, 0, len(variants))
	for name := range variants {
		keys = append(keys, name)
	}
	assert.ElementsMatch(t, palette.Names(), keys)
}

func TestResample(t *testing.T) {
	line := []domain.Point{{X: 0, Y: 0}, {X: 10, Y: 10}}
	got := resample(line, 5)
	require.Len(t, got, 5)
	assert.Equal(t, domain.Point{X: 0, Y: 0}, got[0])
	assert.Equal(t, domain.Point{X: 5, Y: 5}, got[2])
	assert.Equal(t, domain.Point{X: 10, Y: 10}, got[4])

	corner := []domain.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}
	got = resample(corner, 3)
	require.Len(t, got, 3)
	assert.Equal(t, domain.Point{X: 0, Y: 0}, got[0])
	assert.Equal(t, domain.Point{X: 10, Y: 0}, got[1])
	assert.Equal(t, domain.Point{X: 10, Y: 10}, got[2])

	smoothed := resample(corner, smoothSamples)
	assert.Len(t, smoothed, smoothSamples)
	assert.Equal(t, corner[0], smoothed[0])
	assert.Equal(t, corner[len(corner)-1], smoothed[len(smoothed)-1])

	// Too short to resample: returned as is.
	single := []domain.Point{{X: 1, Y: 2}}
	assert.Equal(t, single, resample(single, 10))
}

func pix(t *testing.T, img image.Image) []uint8 {
	t.Helper()
	rgba, ok := img.(*image.RGBA)
	require.True(t, ok)
	return rgba.Pix
}
