package identicon

import "image/color"

const colorBytes = 3

// Color is an opaque RGB color. It implements the color.Color interface.
type Color struct {
	R, G, B uint8
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA{c.R, c.G, c.B, 0xff}.RGBA()
}

func (c Color) rgba() color.RGBA {
	return color.RGBA{c.R, c.G, c.B, 0xff}
}

// PickColor returns the first three bytes of the digest as a color.
func PickColor(d Digest) (Color, error) {
	if len(d) < colorBytes {
		return Color{}, &MalformedDigestError{Len: len(d), Min: colorBytes}
	}
	return Color{R: d[0], G: d[1], B: d[2]}, nil
}
