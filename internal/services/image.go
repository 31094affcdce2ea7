package services

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"photo-editor/internal/logger"
	"photo-editor/internal/models"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
)

// DecodeError reports a file that could not be read as an image.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cannot decode image %q: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// SaveError reports a failed write of the current image.
type SaveError struct {
	Path string
	Err  error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("cannot save image %q: %v", e.Path, e.Err)
}

func (e *SaveError) Unwrap() error { return e.Err }

// supportedFormats maps file extensions to codec formats.
var supportedFormats = map[string]imaging.Format{
	".png":  imaging.PNG,
	".jpg":  imaging.JPEG,
	".jpeg": imaging.JPEG,
	".bmp":  imaging.BMP,
	".gif":  imaging.GIF,
	".tif":  imaging.TIFF,
	".tiff": imaging.TIFF,
}

// OpenExtensions are offered by the open dialog.
var OpenExtensions = []string{".png", ".jpg", ".jpeg", ".bmp"}

// SaveExtensions are offered by the save dialog.
var SaveExtensions = []string{".png", ".jpg", ".jpeg", ".bmp"}

// ImageService decodes and encodes image files. Codec work is delegated to
// disintegration/imaging.
type ImageService struct {
	jpegQuality int
	logger      logger.Logger
}

func NewImageService(jpegQuality int, log logger.Logger) *ImageService {
	if jpegQuality < 1 || jpegQuality > 100 {
		jpegQuality = 95
	}
	return &ImageService{
		jpegQuality: jpegQuality,
		logger:      log,
	}
}

// LoadFile decodes the image at path. Any failure is a *DecodeError.
func (is *ImageService) LoadFile(ctx context.Context, path string) (*models.ImageData, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}

	imageData, err := is.Decode(ctx, bytes.NewReader(data), path)
	if err != nil {
		return nil, err
	}
	imageData.FileSize = int64(len(data))
	return imageData, nil
}

// Decode reads an image from r; name is used for the format hint and errors.
func (is *ImageService) Decode(ctx context.Context, r io.Reader, name string) (*models.ImageData, error) {
	startTime := time.Now()

	img, format, err := image.Decode(r)
	if err != nil {
		return nil, &DecodeError{Path: name, Err: err}
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return nil, &DecodeError{Path: name, Err: fmt.Errorf("image has no pixels")}
	}

	imageData := models.NewImageData(imaging.Clone(img))
	imageData.Format = format
	imageData.SourcePath = name
	imageData.LoadTime = time.Now()

	is.logger.Debug("ImageService", "image decoded", map[string]interface{}{
		"path":     name,
		"format":   format,
		"width":    imageData.Width,
		"height":   imageData.Height,
		"duration": time.Since(startTime).String(),
	})

	return imageData, nil
}

// SaveFile encodes img to path, picking the codec from the extension. A path
// without a known extension is still written as is, encoded as PNG, so the
// file is always the one the user confirmed. The written path is returned.
// Any failure is a *SaveError.
func (is *ImageService) SaveFile(ctx context.Context, path string, img image.Image) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	if img == nil || img.Bounds().Empty() {
		return "", &SaveError{Path: path, Err: fmt.Errorf("no image data to save")}
	}

	format, ok := FormatFromPath(path)
	if !ok {
		format = imaging.PNG
	}

	file, err := os.Create(path)
	if err != nil {
		return "", &SaveError{Path: path, Err: err}
	}

	if err := is.Encode(file, img, format); err != nil {
		file.Close()
		os.Remove(path)
		return "", &SaveError{Path: path, Err: err}
	}

	if err := file.Close(); err != nil {
		return "", &SaveError{Path: path, Err: err}
	}

	is.logger.Info("ImageService", "image saved", map[string]interface{}{
		"path":   path,
		"format": format.String(),
	})

	return path, nil
}

// Encode writes img to w in the given format.
func (is *ImageService) Encode(w io.Writer, img image.Image, format imaging.Format) error {
	return imaging.Encode(w, img, format, imaging.JPEGQuality(is.jpegQuality))
}

// FormatFromPath maps a file extension onto a codec format.
func FormatFromPath(path string) (imaging.Format, bool) {
	format, ok := supportedFormats[strings.ToLower(filepath.Ext(path))]
	return format, ok
}

// IsSupported reports whether path has an extension the editor can read.
func IsSupported(path string) bool {
	_, ok := FormatFromPath(path)
	return ok
}
