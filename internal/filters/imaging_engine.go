package filters

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
)

const ImagingEngineName = "imaging"

// ImagingEngine runs convolutions with disintegration/imaging.
type ImagingEngine struct{}

func NewImagingEngine() *ImagingEngine {
	return &ImagingEngine{}
}

func (e *ImagingEngine) Name() string {
	return ImagingEngineName
}

// Blur applies a Gaussian blur with sigma = radius/2. imaging truncates the
// kernel at the image edge, so the color channels are blurred on a copy
// padded with replicated edge pixels and cropped back. Alpha is kept.
func (e *ImagingEngine) Blur(src image.Image, radius float64) (*image.NRGBA, error) {
	if err := validateSource(src); err != nil {
		return nil, err
	}
	if radius <= 0 {
		return imaging.Clone(src), nil
	}

	sigma := radius / 2
	pad := int(math.Ceil(sigma * 3))

	opaque, alpha := splitAlpha(src)
	b := opaque.Bounds()
	blurred := imaging.Blur(replicateBorder(opaque, pad), sigma)
	out := imaging.Crop(blurred, image.Rect(pad, pad, pad+b.Dx(), pad+b.Dy()))
	return restoreAlpha(out, alpha), nil
}

func (e *ImagingEngine) Convolve3x3(src image.Image, kernel [9]float64) (*image.NRGBA, error) {
	if err := validateSource(src); err != nil {
		return nil, err
	}
	return imaging.Convolve3x3(src, kernel, nil), nil
}
