package models

import (
	"image"
	"time"
)

// ImageData is a decoded image together with where it came from.
// Image is always an 8-bit NRGBA raster and is never mutated once stored.
type ImageData struct {
	Image      *image.NRGBA
	Width      int
	Height     int
	Format     string
	SourcePath string
	FileSize   int64
	LoadTime   time.Time
}

// NewImageData wraps a raster produced in memory, e.g. by a filter.
func NewImageData(img *image.NRGBA) *ImageData {
	if img == nil {
		return nil
	}
	bounds := img.Bounds()
	return &ImageData{
		Image:  img,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}
}

// IsEmpty reports whether there is no pixel data to show or save.
func (d *ImageData) IsEmpty() bool {
	return d == nil || d.Image == nil || d.Width == 0 || d.Height == 0
}

// Clone returns a deep copy; the pixel buffer is not shared.
func (d *ImageData) Clone() *ImageData {
	if d == nil {
		return nil
	}
	clone := *d
	if d.Image != nil {
		pix := make([]uint8, len(d.Image.Pix))
		copy(pix, d.Image.Pix)
		clone.Image = &image.NRGBA{
			Pix:    pix,
			Stride: d.Image.Stride,
			Rect:   d.Image.Rect,
		}
	}
	return &clone
}

// withImage derives metadata for a filter result from its source.
func (d *ImageData) withImage(img *image.NRGBA) *ImageData {
	result := NewImageData(img)
	result.Format = d.Format
	result.SourcePath = d.SourcePath
	result.FileSize = d.FileSize
	result.LoadTime = d.LoadTime
	return result
}
