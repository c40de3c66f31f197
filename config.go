package identicon

import validation "github.com/go-ozzo/ozzo-validation/v4"

// Default values used by DefaultConfig.
const (
	DefaultSize      = 250
	DefaultCellSize  = 50
	DefaultChunkSize = 3
)

// DefaultBackground is the light gray painted under every identicon.
var DefaultBackground = Color{R: 250, G: 250, B: 250}

// Config holds the geometry used to lay out and paint an identicon.
type Config struct {
	Width      int
	Height     int
	CellSize   int
	ChunkSize  int
	Background Color
}

// DefaultConfig returns a 250x250 canvas of 5x5 cells each 50 pixels square.
func DefaultConfig() Config {
	return Config{
		Width:      DefaultSize,
		Height:     DefaultSize,
		CellSize:   DefaultCellSize,
		ChunkSize:  DefaultChunkSize,
		Background: DefaultBackground,
	}
}

// Columns returns the number of cells across one row.
func (c Config) Columns() int {
	return Columns(c.ChunkSize)
}

// Validate implements validation.Validatable.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Width, validation.Required, validation.Min(1)),
		validation.Field(&c.Height, validation.Required, validation.Min(1)),
		validation.Field(&c.CellSize, validation.Required, validation.Min(1)),
		validation.Field(&c.ChunkSize, validation.Required, validation.Min(1)),
	)
}
