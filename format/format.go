/*
Package format implements the image sink for rendered identicons.

The output format is chosen from the destination file extension. PNG, JPEG
and TIFF are encoded with the imaging package, GIF is written with an exact
palette where possible and falls back to median cut quantization otherwise,
and BMP uses the x/image encoder. Files are written atomically; the image is
encoded in full before a temporary file is created alongside the
destination and renamed over it.
*/
package format

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// Format is a supported output image format.
type Format int

// Supported output formats.
const (
	PNG Format = iota
	JPEG
	GIF
	BMP
	TIFF
)

const (
	maxColors   = 256
	jpegQuality = 100
)

// ErrUnsupportedFormat is returned for destinations with an unknown extension.
var ErrUnsupportedFormat = errors.New("format: unsupported image format")

var fromImaging = map[imaging.Format]Format{
	imaging.PNG:  PNG,
	imaging.JPEG: JPEG,
	imaging.GIF:  GIF,
	imaging.BMP:  BMP,
	imaging.TIFF: TIFF,
}

var extensions = map[Format]string{
	PNG:  ".png",
	JPEG: ".jpg",
	GIF:  ".gif",
	BMP:  ".bmp",
	TIFF: ".tif",
}

// FromFilename returns the format implied by the file extension of path.
// Matching is case-insensitive.
func FromFilename(path string) (Format, error) {
	f, err := imaging.FormatFromFilename(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
	return fromImaging[f], nil
}

// Extension returns the canonical file extension, including the dot.
func (f Format) Extension() string {
	return extensions[f]
}

func (f Format) String() string {
	switch f {
	case PNG:
		return "PNG"
	case JPEG:
		return "JPEG"
	case GIF:
		return "GIF"
	case BMP:
		return "BMP"
	case TIFF:
		return "TIFF"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}
