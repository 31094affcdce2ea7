package filters

import (
	"context"
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// patternImage returns a w×h image whose every pixel is distinct.
func patternImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 40),
				G: uint8(y * 60),
				B: uint8((x + y) * 20),
				A: 255,
			})
		}
	}
	return img
}

func uniformImage(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func allEngines(t *testing.T) []Engine {
	t.Helper()
	var list []Engine
	for _, name := range EngineNames() {
		e, err := NewEngine(name)
		require.NoError(t, err)
		list = append(list, e)
	}
	return list
}

func apply(t *testing.T, f Filter, src image.Image) *image.NRGBA {
	t.Helper()
	out, err := f.Apply(context.Background(), src)
	require.NoError(t, err)
	require.NotNil(t, out)
	return out
}

func TestFlipHorizontalReversesColumns(t *testing.T) {
	src := patternImage(4, 2)

	out := apply(t, &FlipHorizontalFilter{}, src)

	require.Equal(t, 4, out.Bounds().Dx())
	require.Equal(t, 2, out.Bounds().Dy())
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			assert.Equal(t, src.NRGBAAt(3-x, y), out.NRGBAAt(x, y), "pixel (%d,%d)", x, y)
		}
	}
}

func TestFlipVerticalReversesRows(t *testing.T) {
	src := patternImage(4, 2)

	out := apply(t, &FlipVerticalFilter{}, src)

	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			assert.Equal(t, src.NRGBAAt(x, 1-y), out.NRGBAAt(x, y), "pixel (%d,%d)", x, y)
		}
	}
}

func TestFlipsAreInvolutions(t *testing.T) {
	src := patternImage(5, 3)

	for _, f := range []Filter{&FlipHorizontalFilter{}, &FlipVerticalFilter{}} {
		twice := apply(t, f, apply(t, f, src))
		assert.Equal(t, src.Pix, twice.Pix, f.Name())
		assert.Equal(t, src.Bounds(), twice.Bounds(), f.Name())
	}
}

func TestRotate90IsClockwise(t *testing.T) {
	src := patternImage(4, 2)

	out := apply(t, &Rotate90Filter{}, src)

	require.Equal(t, 2, out.Bounds().Dx())
	require.Equal(t, 4, out.Bounds().Dy())
	h := src.Bounds().Dy()
	for y := 0; y < 4; y++ {
		for x := 0; x < 2; x++ {
			assert.Equal(t, src.NRGBAAt(y, h-1-x), out.NRGBAAt(x, y), "pixel (%d,%d)", x, y)
		}
	}
	// Top-left corner moves to the top-right.
	assert.Equal(t, src.NRGBAAt(0, 0), out.NRGBAAt(1, 0))
}

func TestRotate90FourTimesIsIdentity(t *testing.T) {
	src := patternImage(5, 3)
	f := &Rotate90Filter{}

	out := src
	for i := 0; i < 4; i++ {
		out = apply(t, f, out)
	}

	assert.Equal(t, src.Bounds(), out.Bounds())
	assert.Equal(t, src.Pix, out.Pix)
}

func TestGrayscaleChannelsAreEqual(t *testing.T) {
	src := patternImage(6, 4)
	src.SetNRGBA(0, 0, color.NRGBA{R: 255, G: 0, B: 0, A: 128})

	out := apply(t, &GrayscaleFilter{}, src)

	assert.Equal(t, src.Bounds(), out.Bounds())
	for y := 0; y < 4; y++ {
		for x := 0; x < 6; x++ {
			p := out.NRGBAAt(x, y)
			assert.Equal(t, p.R, p.G, "pixel (%d,%d)", x, y)
			assert.Equal(t, p.G, p.B, "pixel (%d,%d)", x, y)
			assert.Equal(t, src.NRGBAAt(x, y).A, p.A, "alpha (%d,%d)", x, y)
		}
	}
	// 0.299 * 255 rounds to 76.
	assert.Equal(t, uint8(76), out.NRGBAAt(0, 0).R)
}

func TestFiltersDoNotModifyInput(t *testing.T) {
	src := patternImage(4, 4)
	before := append([]uint8(nil), src.Pix...)

	set := NewSet(NewImagingEngine(), 2)
	for _, kind := range Kinds {
		f, err := set.Get(kind)
		require.NoError(t, err)
		apply(t, f, src)
	}

	assert.Equal(t, before, src.Pix)
}

func TestFiltersRejectEmptyInput(t *testing.T) {
	set := NewSet(NewImagingEngine(), 0)

	for _, kind := range Kinds {
		f, err := set.Get(kind)
		require.NoError(t, err)

		_, err = f.Apply(context.Background(), nil)
		assert.ErrorIs(t, err, ErrEmptyImage, kind)

		_, err = f.Apply(context.Background(), image.NewNRGBA(image.Rect(0, 0, 0, 0)))
		assert.ErrorIs(t, err, ErrEmptyImage, kind)
	}
}

func TestFiltersHonourCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := (&GrayscaleFilter{}).Apply(ctx, patternImage(2, 2))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSharpenKeepsUniformImage(t *testing.T) {
	src := uniformImage(5, 5, color.NRGBA{R: 90, G: 120, B: 200, A: 255})

	for _, e := range allEngines(t) {
		out := apply(t, NewSharpenFilter(e), src)
		assert.Equal(t, src.Pix, out.Pix, e.Name())
	}
}

func TestSharpenClampsAndPassesAlpha(t *testing.T) {
	src := uniformImage(3, 3, color.NRGBA{R: 10, G: 10, B: 10, A: 200})
	src.SetNRGBA(1, 1, color.NRGBA{R: 250, G: 250, B: 250, A: 200})

	for _, e := range allEngines(t) {
		out := apply(t, NewSharpenFilter(e), src)

		center := out.NRGBAAt(1, 1)
		assert.Equal(t, uint8(255), center.R, e.Name())
		assert.Equal(t, uint8(0), out.NRGBAAt(0, 0).R, e.Name())
		for i := 3; i < len(out.Pix); i += 4 {
			assert.Equal(t, uint8(200), out.Pix[i], e.Name())
		}
	}
}

func TestBlurKeepsUniformImageAndSize(t *testing.T) {
	src := uniformImage(12, 7, color.NRGBA{R: 30, G: 60, B: 90, A: 255})

	for _, e := range allEngines(t) {
		out := apply(t, NewBlurFilter(e, DefaultBlurRadius), src)
		assert.Equal(t, src.Bounds(), out.Bounds(), e.Name())
		for i := range src.Pix {
			assert.InDelta(t, src.Pix[i], out.Pix[i], 1, "%s byte %d", e.Name(), i)
		}
	}
}

func TestBlurSmoothsEdges(t *testing.T) {
	src := uniformImage(20, 20, color.NRGBA{A: 255})
	for y := 0; y < 20; y++ {
		for x := 10; x < 20; x++ {
			src.SetNRGBA(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}

	for _, e := range allEngines(t) {
		out := apply(t, NewBlurFilter(e, 4), src)
		edge := out.NRGBAAt(10, 10).R
		assert.Greater(t, edge, uint8(0), e.Name())
		assert.Less(t, edge, uint8(255), e.Name())
	}
}

// gaussianWeights matches a Gaussian kernel truncated at 3 sigma.
func gaussianWeights(sigma float64) []float64 {
	r := int(math.Ceil(sigma * 3))
	w := make([]float64, 2*r+1)
	for i := range w {
		k := float64(i - r)
		w[i] = math.Exp(-k * k / (2 * sigma * sigma))
	}
	return w
}

func boxWeights(radius float64) []float64 {
	w := make([]float64, int(math.Ceil(2*radius+1)))
	for i := range w {
		w[i] = 1
	}
	return w
}

// clampedConvolve is the 1-D reference: samples past either end repeat the
// edge value.
func clampedConvolve(row []float64, x int, weights []float64) float64 {
	r := len(weights) / 2
	var sum, wsum float64
	for i, w := range weights {
		sum += w * row[clampIndex(x+i-r, len(row))]
		wsum += w
	}
	return sum / wsum
}

func TestBlurReplicatesBorderPixels(t *testing.T) {
	const radius = 2.0
	row := []float64{20, 20, 20, 20, 20, 20, 20, 240}
	src := image.NewNRGBA(image.Rect(0, 0, len(row), 1))
	for x, v := range row {
		src.SetNRGBA(x, 0, color.NRGBA{R: uint8(v), G: uint8(v), B: uint8(v), A: 255})
	}

	references := map[string][]float64{
		ImagingEngineName: gaussianWeights(radius / 2),
		BildEngineName:    boxWeights(radius),
		"opencv":          gaussianWeights(radius / 2),
	}

	for _, e := range allEngines(t) {
		weights, ok := references[e.Name()]
		if !ok {
			continue
		}

		out, err := e.Blur(src, radius)
		require.NoError(t, err, e.Name())

		for _, x := range []int{0, 1, len(row) - 2, len(row) - 1} {
			want := clampedConvolve(row, x, weights)
			assert.InDelta(t, want, float64(out.NRGBAAt(x, 0).R), 1, "%s x=%d", e.Name(), x)
		}
	}
}

func TestBlurKeepsColorUnderTransparency(t *testing.T) {
	src := uniformImage(6, 4, color.NRGBA{R: 200, G: 100, B: 50, A: 0})

	for _, e := range allEngines(t) {
		out, err := e.Blur(src, 3)
		require.NoError(t, err, e.Name())

		for y := 0; y < 4; y++ {
			for x := 0; x < 6; x++ {
				c := out.NRGBAAt(x, y)
				assert.InDelta(t, 200, float64(c.R), 1, e.Name())
				assert.InDelta(t, 100, float64(c.G), 1, e.Name())
				assert.InDelta(t, 50, float64(c.B), 1, e.Name())
				assert.Equal(t, uint8(0), c.A, e.Name())
			}
		}
	}
}

func TestReplicateBorder(t *testing.T) {
	src := patternImage(3, 2)

	padded := replicateBorder(src, 2)

	assert.Equal(t, image.Rect(0, 0, 7, 6), padded.Bounds())
	assert.Equal(t, src.NRGBAAt(0, 0), padded.NRGBAAt(0, 0))
	assert.Equal(t, src.NRGBAAt(2, 1), padded.NRGBAAt(6, 5))
	assert.Equal(t, src.NRGBAAt(1, 0), padded.NRGBAAt(3, 1))
	assert.Equal(t, src.NRGBAAt(2, 0), padded.NRGBAAt(6, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			assert.Equal(t, src.NRGBAAt(x, y), padded.NRGBAAt(x+2, y+2))
		}
	}
}

func TestSetUnknownKind(t *testing.T) {
	set := NewSet(NewImagingEngine(), 1)

	_, err := set.Get(Kind("posterize"))
	assert.Error(t, err)
	assert.Equal(t, ImagingEngineName, set.Engine().Name())
}

func TestEngineRegistry(t *testing.T) {
	names := EngineNames()
	assert.Contains(t, names, ImagingEngineName)
	assert.Contains(t, names, BildEngineName)

	_, err := NewEngine("gpu")
	assert.Error(t, err)

	set, err := NewSetFromEngineName(BildEngineName, 3)
	require.NoError(t, err)
	assert.Equal(t, BildEngineName, set.Engine().Name())

	assert.Panics(t, func() {
		RegisterEngine(ImagingEngineName, func() Engine { return NewImagingEngine() })
	})
}
