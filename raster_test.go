package identicon

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRasterizeHalfOpen(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	cfg := Config{Width: 4, Height: 4, CellSize: 2, ChunkSize: 1, Background: Color{1, 1, 1}}
	fg := Color{9, 8, 7}

	m := Rasterize(cfg, fg, []Region{image.Rect(0, 0, 2, 2)})
	assert.Equal(image.Rect(0, 0, 4, 4), m.Bounds())

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			want := color.RGBA{1, 1, 1, 0xff}
			if x < 2 && y < 2 {
				want = color.RGBA{9, 8, 7, 0xff}
			}
			assert.Equal(want, m.RGBAAt(x, y), "pixel (%d, %d)", x, y)
		}
	}
}

func TestRasterizeOverlap(t *testing.T) {
	t.Parallel()

	cfg := Config{Width: 6, Height: 6, CellSize: 3, ChunkSize: 1, Background: Color{}}
	fg := Color{200, 100, 50}

	once := Rasterize(cfg, fg, []Region{image.Rect(1, 1, 4, 4)})
	twice := Rasterize(cfg, fg, []Region{image.Rect(1, 1, 4, 4), image.Rect(1, 1, 4, 4), image.Rect(2, 2, 3, 3)})
	assert.Equal(t, once.Pix, twice.Pix)
}

func TestRasterizeOffCanvas(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	bg := Rasterize(cfg, Color{1, 2, 3}, nil)
	off := Rasterize(cfg, Color{1, 2, 3}, []Region{CellRegion(25, 5, 50), CellRegion(99, 5, 50)})
	assert.Equal(t, bg.Pix, off.Pix)

	assert.Equal(t, color.RGBA{250, 250, 250, 0xff}, bg.RGBAAt(125, 125))
}

func TestRasterizeBanana(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	cfg := DefaultConfig()
	fg := Color{114, 179, 2}
	m := Rasterize(cfg, fg, MapRegions(bananaCells, cfg.Columns(), cfg.CellSize))

	painted := make(map[int]bool)
	for _, c := range bananaCells {
		painted[int(c.Index)] = true
	}

	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			want := DefaultBackground.rgba()
			if painted[(y/cfg.CellSize)*cfg.Columns()+x/cfg.CellSize] {
				want = fg.rgba()
			}
			if !assert.Equal(want, m.RGBAAt(x, y), "pixel (%d, %d)", x, y) {
				return
			}
		}
	}
}
