package filters

import (
	"image"

	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/convolution"
	"github.com/disintegration/imaging"
)

const BildEngineName = "bild"

// BildEngine runs convolutions with anthonynsimon/bild. Borders are
// extended rather than wrapped.
type BildEngine struct{}

func NewBildEngine() *BildEngine {
	return &BildEngine{}
}

func (e *BildEngine) Name() string {
	return BildEngineName
}

// Blur applies a box blur of the given radius to the color channels.
func (e *BildEngine) Blur(src image.Image, radius float64) (*image.NRGBA, error) {
	if err := validateSource(src); err != nil {
		return nil, err
	}
	if radius <= 0 {
		return imaging.Clone(src), nil
	}

	view, alpha := opaqueView(src)
	return withAlpha(blur.Box(view, radius), alpha), nil
}

func (e *BildEngine) Convolve3x3(src image.Image, kernel [9]float64) (*image.NRGBA, error) {
	if err := validateSource(src); err != nil {
		return nil, err
	}

	k := convolution.NewKernel(3, 3)
	copy(k.Matrix, kernel[:])

	view, alpha := opaqueView(src)
	out := convolution.Convolve(view, k, &convolution.Options{Bias: 0, Wrap: false, KeepAlpha: true})
	return withAlpha(out, alpha), nil
}

// opaqueView reinterprets the straight-alpha color channels of src as an
// opaque RGBA image, so bild does not premultiply them. The original alpha
// channel is returned separately.
func opaqueView(src image.Image) (*image.RGBA, []uint8) {
	opaque, alpha := splitAlpha(src)
	return &image.RGBA{Pix: opaque.Pix, Stride: opaque.Stride, Rect: opaque.Rect}, alpha
}

// withAlpha reverses opaqueView on a result of the same size.
func withAlpha(img *image.RGBA, alpha []uint8) *image.NRGBA {
	b := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		copy(out.Pix[y*out.Stride:y*out.Stride+b.Dx()*4], img.Pix[y*img.Stride:y*img.Stride+b.Dx()*4])
	}
	return restoreAlpha(out, alpha)
}
