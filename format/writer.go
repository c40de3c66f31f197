package format

import (
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"io"

	"github.com/disintegration/imaging"
	"github.com/ericpauley/go-quantize/quantize"
	"golang.org/x/image/bmp"
)

func uniqueColors(m image.Image, limit int) (color.Palette, bool) {
	seen := make(map[color.Color]struct{})
	p := make(color.Palette, 0, limit)
	b := m.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := m.At(x, y)
			if _, ok := seen[c]; ok {
				continue
			}
			if len(p) == limit {
				return nil, false
			}
			seen[c] = struct{}{}
			p = append(p, c)
		}
	}
	return p, true
}

// paletted converts m to a paletted image. If m uses no more than 256 colors
// they are kept exactly, otherwise the palette is chosen by median cut.
func paletted(m image.Image) *image.Paletted {
	b := m.Bounds()

	p, ok := uniqueColors(m, maxColors)
	if !ok {
		q := quantize.MedianCutQuantizer{}
		p = q.Quantize(make(color.Palette, 0, maxColors), m)
	}

	pm := image.NewPaletted(b, p)
	draw.Draw(pm, b, m, b.Min, draw.Src)

	// Adjust image so that top-left corner is at (0, 0)
	if pm.Rect.Min != (image.Point{}) {
		dup := *pm
		dup.Rect = dup.Rect.Sub(dup.Rect.Min)
		pm = &dup
	}

	return pm
}

// Encode writes the Image m to w in format f.
func Encode(w io.Writer, m image.Image, f Format) error {
	switch f {
	case PNG:
		return imaging.Encode(w, m, imaging.PNG)
	case JPEG:
		return imaging.Encode(w, m, imaging.JPEG, imaging.JPEGQuality(jpegQuality))
	case TIFF:
		return imaging.Encode(w, m, imaging.TIFF)
	case GIF:
		return gif.Encode(w, paletted(m), &gif.Options{NumColors: maxColors})
	case BMP:
		return bmp.Encode(w, m)
	default:
		return ErrUnsupportedFormat
	}
}
