package format

import (
	"image"
	"io"
	"os"

	"github.com/disintegration/imaging"
)

// Decode reads an image in any of the supported formats from r.
func Decode(r io.Reader) (image.Image, error) {
	return imaging.Decode(r)
}

// ReadFile decodes the image stored at path.
func ReadFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Decode(f)
}
