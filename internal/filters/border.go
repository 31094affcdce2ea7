package filters

import (
	"image"

	"github.com/disintegration/imaging"
)

// splitAlpha returns an opaque copy of src's straight color channels and
// src's alpha plane, one byte per pixel in row order.
func splitAlpha(src image.Image) (*image.NRGBA, []uint8) {
	opaque := imaging.Clone(src)
	alpha := make([]uint8, 0, len(opaque.Pix)/4)
	for i := 3; i < len(opaque.Pix); i += 4 {
		alpha = append(alpha, opaque.Pix[i])
		opaque.Pix[i] = 0xff
	}
	return opaque, alpha
}

// restoreAlpha writes alpha back into img in place.
func restoreAlpha(img *image.NRGBA, alpha []uint8) *image.NRGBA {
	for i, a := range alpha {
		img.Pix[i*4+3] = a
	}
	return img
}

// replicateBorder returns src grown by pad pixels on every side, each new
// pixel copying the nearest edge pixel.
func replicateBorder(src *image.NRGBA, pad int) *image.NRGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := image.NewNRGBA(image.Rect(0, 0, w+2*pad, h+2*pad))

	for y := 0; y < h+2*pad; y++ {
		sy := clampIndex(y-pad, h)
		srcRow := src.Pix[sy*src.Stride : sy*src.Stride+w*4]
		dstRow := dst.Pix[y*dst.Stride : y*dst.Stride+(w+2*pad)*4]

		left, right := srcRow[:4], srcRow[(w-1)*4:]
		for x := 0; x < pad; x++ {
			copy(dstRow[x*4:], left)
			copy(dstRow[(pad+w+x)*4:], right)
		}
		copy(dstRow[pad*4:], srcRow)
	}
	return dst
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
