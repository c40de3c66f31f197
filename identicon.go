/*
Package identicon derives a small symmetric avatar image from an arbitrary
string such as a username.

The input is hashed with MD5. The first three bytes of the digest pick the
foreground color, and the digest is cut into three byte chunks which are
mirrored into the rows of a 5 by 5 grid. Every cell holding an even value is
painted as a 50 by 50 pixel square on a 250 by 250 light gray canvas. The
same input always yields the same image.
*/
package identicon

import (
	"image"

	"github.com/bodgit/identicon/format"
	"go.uber.org/zap"
)

// Identicon is the complete result of rendering one input.
type Identicon struct {
	Input   string
	Digest  Digest
	Color   Color
	Grid    Grid
	Cells   Grid
	Regions []Region
	Image   *image.RGBA
}

// Generator renders identicons using a fixed configuration.
type Generator struct {
	config Config
	logger *zap.Logger
}

// New returns a Generator for the given configuration. A nil logger
// disables logging.
func New(config Config, logger *zap.Logger) (*Generator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{
		config: config,
		logger: logger,
	}, nil
}

// Config returns the configuration in use.
func (g *Generator) Config() Config {
	return g.config
}

// Generate renders the identicon for input without touching the
// filesystem.
func (g *Generator) Generate(input string) (*Identicon, error) {
	return g.generate(input, Hash(input))
}

func (g *Generator) generate(input string, digest Digest) (*Identicon, error) {
	c, err := PickColor(digest)
	if err != nil {
		return nil, err
	}

	grid := BuildGrid(digest, g.config.ChunkSize)
	cells := FilterEven(grid)
	regions := MapRegions(cells, g.config.Columns(), g.config.CellSize)

	g.logger.Debug("rendering identicon",
		zap.Stringer("digest", digest),
		zap.Int("cells", len(grid)),
		zap.Int("painted", len(cells)),
	)

	return &Identicon{
		Input:   input,
		Digest:  digest,
		Color:   c,
		Grid:    grid,
		Cells:   cells,
		Regions: regions,
		Image:   Rasterize(g.config, c, regions),
	}, nil
}

// Run renders the identicon for input and writes it to path, the format
// being chosen by the file extension. Any failure to write is returned as a
// *WriteError.
func (g *Generator) Run(input, path string) error {
	icon, err := g.Generate(input)
	if err != nil {
		return err
	}

	if err := format.WriteFile(path, icon.Image); err != nil {
		return &WriteError{Path: path, Err: err}
	}

	g.logger.Debug("wrote identicon", zap.String("path", path))

	return nil
}

// Run renders input with the default configuration and writes it to path.
func Run(input, path string) error {
	g, err := New(DefaultConfig(), nil)
	if err != nil {
		return err
	}
	return g.Run(input, path)
}
