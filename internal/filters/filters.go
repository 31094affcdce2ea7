package filters

import (
	"context"
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Kind identifies one of the editor's fixed filters.
type Kind string

const (
	KindGrayscale      Kind = "grayscale"
	KindRotate90       Kind = "rotate90"
	KindFlipHorizontal Kind = "flip_horizontal"
	KindFlipVertical   Kind = "flip_vertical"
	KindBlur           Kind = "blur"
	KindSharpen        Kind = "sharpen"
)

// Kinds lists every filter in toolbar order.
var Kinds = []Kind{
	KindRotate90,
	KindFlipHorizontal,
	KindFlipVertical,
	KindGrayscale,
	KindBlur,
	KindSharpen,
}

// SharpenKernel boosts the center pixel against its eight neighbours.
// Its weights sum to 1, so flat regions are unchanged.
var SharpenKernel = [9]float64{
	-1, -1, -1,
	-1, 9, -1,
	-1, -1, -1,
}

const DefaultBlurRadius = 10.0

var ErrEmptyImage = errors.New("image is empty")

// Filter is a pure image transformation. Apply never modifies src and
// always returns a freshly allocated 8-bit NRGBA image.
type Filter interface {
	Name() string
	Apply(ctx context.Context, src image.Image) (*image.NRGBA, error)
}

func validateSource(src image.Image) error {
	if src == nil {
		return ErrEmptyImage
	}
	if b := src.Bounds(); b.Dx() <= 0 || b.Dy() <= 0 {
		return ErrEmptyImage
	}
	return nil
}

func checkInput(ctx context.Context, src image.Image) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	return validateSource(src)
}

// GrayscaleFilter replaces R, G and B with the pixel's luminance
// (0.299R + 0.587G + 0.114B) and keeps alpha. Output stays 8 bits per channel.
type GrayscaleFilter struct{}

func (f *GrayscaleFilter) Name() string { return string(KindGrayscale) }

func (f *GrayscaleFilter) Apply(ctx context.Context, src image.Image) (*image.NRGBA, error) {
	if err := checkInput(ctx, src); err != nil {
		return nil, err
	}
	return imaging.Grayscale(src), nil
}

// Rotate90Filter rotates clockwise: out(x, y) = in(y, H-1-x).
type Rotate90Filter struct{}

func (f *Rotate90Filter) Name() string { return string(KindRotate90) }

func (f *Rotate90Filter) Apply(ctx context.Context, src image.Image) (*image.NRGBA, error) {
	if err := checkInput(ctx, src); err != nil {
		return nil, err
	}
	// imaging rotates counter-clockwise.
	return imaging.Rotate270(src), nil
}

// FlipHorizontalFilter mirrors left to right: out(x, y) = in(W-1-x, y).
type FlipHorizontalFilter struct{}

func (f *FlipHorizontalFilter) Name() string { return string(KindFlipHorizontal) }

func (f *FlipHorizontalFilter) Apply(ctx context.Context, src image.Image) (*image.NRGBA, error) {
	if err := checkInput(ctx, src); err != nil {
		return nil, err
	}
	return imaging.FlipH(src), nil
}

// FlipVerticalFilter mirrors top to bottom: out(x, y) = in(x, H-1-y).
type FlipVerticalFilter struct{}

func (f *FlipVerticalFilter) Name() string { return string(KindFlipVertical) }

func (f *FlipVerticalFilter) Apply(ctx context.Context, src image.Image) (*image.NRGBA, error) {
	if err := checkInput(ctx, src); err != nil {
		return nil, err
	}
	return imaging.FlipV(src), nil
}

type BlurFilter struct {
	engine Engine
	radius float64
}

func NewBlurFilter(engine Engine, radius float64) *BlurFilter {
	return &BlurFilter{engine: engine, radius: radius}
}

func (f *BlurFilter) Name() string { return string(KindBlur) }

func (f *BlurFilter) Apply(ctx context.Context, src image.Image) (*image.NRGBA, error) {
	if err := checkInput(ctx, src); err != nil {
		return nil, err
	}
	out, err := f.engine.Blur(src, f.radius)
	if err != nil {
		return nil, fmt.Errorf("%s blur failed: %w", f.engine.Name(), err)
	}
	return out, nil
}

type SharpenFilter struct {
	engine Engine
}

func NewSharpenFilter(engine Engine) *SharpenFilter {
	return &SharpenFilter{engine: engine}
}

func (f *SharpenFilter) Name() string { return string(KindSharpen) }

func (f *SharpenFilter) Apply(ctx context.Context, src image.Image) (*image.NRGBA, error) {
	if err := checkInput(ctx, src); err != nil {
		return nil, err
	}
	out, err := f.engine.Convolve3x3(src, SharpenKernel)
	if err != nil {
		return nil, fmt.Errorf("%s sharpen failed: %w", f.engine.Name(), err)
	}
	return out, nil
}
