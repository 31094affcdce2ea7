//go:build opencv

package conversion

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

// NRGBAToBGRMat packs the color channels of img into a 3-channel BGR Mat.
// Alpha is dropped; callers restore it with BGRMatToNRGBA.
func NRGBAToBGRMat(img *image.NRGBA) (gocv.Mat, error) {
	if img == nil {
		return gocv.NewMat(), fmt.Errorf("input image is nil")
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 {
		return gocv.NewMat(), fmt.Errorf("invalid dimensions: %dx%d", width, height)
	}

	data := make([]byte, 0, width*height*3)
	for y := 0; y < height; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+width*4]
		for x := 0; x < width*4; x += 4 {
			data = append(data, row[x+2], row[x+1], row[x])
		}
	}

	mat, err := gocv.NewMatFromBytes(height, width, gocv.MatTypeCV8UC3, data)
	if err != nil {
		return gocv.NewMat(), fmt.Errorf("failed to create Mat: %w", err)
	}
	return mat, nil
}

// BGRMatToNRGBA unpacks a 3-channel BGR Mat, taking alpha from alphaSrc
// when given and making the result opaque otherwise.
func BGRMatToNRGBA(mat gocv.Mat, alphaSrc *image.NRGBA) (*image.NRGBA, error) {
	if mat.Empty() {
		return nil, fmt.Errorf("source Mat is empty")
	}
	if mat.Channels() != 3 {
		return nil, fmt.Errorf("unsupported channel count: %d", mat.Channels())
	}

	rows, cols := mat.Rows(), mat.Cols()
	if alphaSrc != nil {
		if b := alphaSrc.Bounds(); b.Dx() != cols || b.Dy() != rows {
			return nil, fmt.Errorf("alpha source is %dx%d, Mat is %dx%d", b.Dx(), b.Dy(), cols, rows)
		}
	}

	data := mat.ToBytes()
	if len(data) != rows*cols*3 {
		return nil, fmt.Errorf("unexpected Mat buffer size %d for %dx%d", len(data), cols, rows)
	}

	img := image.NewNRGBA(image.Rect(0, 0, cols, rows))
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			s := (y*cols + x) * 3
			d := y*img.Stride + x*4
			img.Pix[d] = data[s+2]
			img.Pix[d+1] = data[s+1]
			img.Pix[d+2] = data[s]
			img.Pix[d+3] = 255
			if alphaSrc != nil {
				img.Pix[d+3] = alphaSrc.Pix[y*alphaSrc.Stride+x*4+3]
			}
		}
	}

	return img, nil
}
