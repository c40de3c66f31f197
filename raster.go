package identicon

import "image"

func covered(p image.Point, regions []Region) bool {
	for _, r := range regions {
		if p.In(r) {
			return true
		}
	}
	return false
}

// Rasterize paints a canvas of the configured size. Every pixel inside at
// least one region is set to c, everything else is the background.
func Rasterize(cfg Config, c Color, regions []Region) *image.RGBA {
	m := image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height))
	fg, bg := c.rgba(), cfg.Background.rgba()

	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			if covered(image.Pt(x, y), regions) {
				m.SetRGBA(x, y, fg)
			} else {
				m.SetRGBA(x, y, bg)
			}
		}
	}

	return m
}
