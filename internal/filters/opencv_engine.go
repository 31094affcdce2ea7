//go:build opencv

package filters

import (
	"fmt"
	"image"

	"photo-editor/internal/opencv/conversion"

	"github.com/disintegration/imaging"
	"gocv.io/x/gocv"
)

const OpenCVEngineName = "opencv"

func init() {
	RegisterEngine(OpenCVEngineName, func() Engine { return NewOpenCVEngine() })
}

// OpenCVEngine runs convolutions through gocv. Only compiled with the
// opencv build tag because it links against the OpenCV libraries.
type OpenCVEngine struct{}

func NewOpenCVEngine() *OpenCVEngine {
	return &OpenCVEngine{}
}

func (e *OpenCVEngine) Name() string {
	return OpenCVEngineName
}

func (e *OpenCVEngine) Blur(src image.Image, radius float64) (*image.NRGBA, error) {
	if err := validateSource(src); err != nil {
		return nil, err
	}
	if radius <= 0 {
		return imaging.Clone(src), nil
	}

	sigma := radius / 2
	return e.run(src, func(in gocv.Mat, out *gocv.Mat) error {
		return gocv.GaussianBlur(in, out, image.Point{}, sigma, sigma, gocv.BorderReplicate)
	})
}

func (e *OpenCVEngine) Convolve3x3(src image.Image, kernel [9]float64) (*image.NRGBA, error) {
	if err := validateSource(src); err != nil {
		return nil, err
	}

	k := gocv.NewMatWithSize(3, 3, gocv.MatTypeCV32F)
	defer k.Close()
	for i, v := range kernel {
		k.SetFloatAt(i/3, i%3, float32(v))
	}

	return e.run(src, func(in gocv.Mat, out *gocv.Mat) error {
		return gocv.Filter2D(in, out, gocv.MatType(-1), k, image.Pt(-1, -1), 0, gocv.BorderReplicate)
	})
}

// run converts src to a BGR Mat, applies op, and restores the source alpha.
func (e *OpenCVEngine) run(src image.Image, op func(in gocv.Mat, out *gocv.Mat) error) (*image.NRGBA, error) {
	nrgba := imaging.Clone(src)

	in, err := conversion.NRGBAToBGRMat(nrgba)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	out := gocv.NewMat()
	defer out.Close()

	if err := op(in, &out); err != nil {
		return nil, fmt.Errorf("opencv: %w", err)
	}
	if out.Empty() {
		return nil, fmt.Errorf("opencv produced an empty result")
	}

	return conversion.BGRMatToNRGBA(out, nrgba)
}
