package identicon

import (
	"image"

	"github.com/samber/lo"
)

// Region is the area of the canvas covered by one cell. Min is the
// top-left corner and Max the bottom-right; Max is exclusive.
type Region = image.Rectangle

// CellRegion returns the region for the cell at the given index.
func CellRegion(index, columns, cellSize int) Region {
	column, row := index%columns, index/columns
	topLeft := image.Pt(column*cellSize, row*cellSize)
	return Region{
		Min: topLeft,
		Max: topLeft.Add(image.Pt(cellSize, cellSize)),
	}
}

// MapRegions returns one region per cell, in the same order as the grid.
// Indices beyond the canvas produce regions that are never drawn.
func MapRegions(g Grid, columns, cellSize int) []Region {
	if columns < 1 {
		return []Region{}
	}
	return lo.Map(g, func(c Cell, _ int) Region {
		return CellRegion(int(c.Index), columns, cellSize)
	})
}
