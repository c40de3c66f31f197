package identicon

import "github.com/samber/lo"

// Cell is a single grid value along with its position in the unfiltered
// grid. Index is never renumbered by later stages.
type Cell struct {
	Value uint8
	Index uint8
}

// Grid is the flattened, row-major sequence of cells.
type Grid []Cell

// Columns returns the width of a mirrored row built from chunks of
// chunkSize bytes.
func Columns(chunkSize int) int {
	if chunkSize < 1 {
		return 0
	}
	return chunkSize<<1 - 1
}

// mirror turns [a b c] into [a b c b a]
func mirror(row []byte) []byte {
	out := make([]byte, 0, Columns(len(row)))
	out = append(out, row...)
	for i := len(row) - 2; i >= 0; i-- {
		out = append(out, row[i])
	}
	return out
}

// BuildGrid splits the digest into chunks of chunkSize bytes, mirrors each
// chunk into a palindromic row and numbers the flattened result from zero.
// A trailing chunk shorter than chunkSize is discarded, so a digest shorter
// than chunkSize produces an empty grid.
//
// XXX MD5 leaves one byte over with the default chunk size of 3 which never
// contributes to the image.
func BuildGrid(d Digest, chunkSize int) Grid {
	if chunkSize < 1 {
		return Grid{}
	}

	chunks := lo.Filter(lo.Chunk([]byte(d), chunkSize), func(chunk []byte, _ int) bool {
		return len(chunk) == chunkSize
	})

	values := lo.FlatMap(chunks, func(chunk []byte, _ int) []byte {
		return mirror(chunk)
	})

	return Grid(lo.Map(values, func(v byte, i int) Cell {
		return Cell{Value: v, Index: uint8(i)}
	}))
}

// FilterEven returns the cells with an even value in their original order.
func FilterEven(g Grid) Grid {
	return lo.Filter(g, func(c Cell, _ int) bool {
		return c.Value%2 == 0
	})
}

// Rows splits the grid back into rows of the given width. It is only
// meaningful on an unfiltered grid.
func (g Grid) Rows(columns int) []Grid {
	if columns < 1 {
		return nil
	}
	return lo.Map(lo.Chunk([]Cell(g), columns), func(row []Cell, _ int) Grid {
		return Grid(row)
	})
}
