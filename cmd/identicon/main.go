package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/bodgit/identicon"
	"github.com/bodgit/identicon/format"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newLogger(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}

	cfg := zap.Config{
		Level:       zap.NewAtomicLevelAt(zap.DebugLevel),
		Development: true,
		Encoding:    "console",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "T",
			LevelKey:       "L",
			NameKey:        "N",
			CallerKey:      "C",
			MessageKey:     "M",
			StacktraceKey:  "S",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.CapitalColorLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		},
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// outputPath returns out unless it is empty or an existing directory, in
// which case a name is derived from the input.
func outputPath(out, input string) string {
	if out != "" {
		if info, err := os.Stat(out); err != nil || !info.IsDir() {
			return out
		}
	}
	return identicon.OutputPath(out, identicon.Hash(input), format.PNG.Extension())
}

func inspect(w io.Writer, icon *identicon.Identicon, columns int) {
	fmt.Fprintf(w, "input:   %q\n", icon.Input)
	fmt.Fprintf(w, "digest:  %s\n", icon.Digest)
	fmt.Fprintf(w, "color:   #%02x%02x%02x\n", icon.Color.R, icon.Color.G, icon.Color.B)
	fmt.Fprintln(w, "grid:")
	for _, row := range icon.Grid.Rows(columns) {
		fmt.Fprint(w, "  ")
		for _, c := range row {
			fmt.Fprintf(w, " %3d", c.Value)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, "painted:")
	for i, c := range icon.Cells {
		r := icon.Regions[i]
		fmt.Fprintf(w, "  %2d %3d %v-%v\n", c.Index, c.Value, r.Min, r.Max)
	}
}

func main() {
	app := cli.NewApp()

	app.Name = "identicon"
	app.Usage = "Generate an identicon image from a string"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "generate",
			Usage:       "Render an identicon to an image file",
			Description: "The image format is taken from the output file extension. If no output is given, or it is a directory, the file is named after the input digest.",
			ArgsUsage:   "INPUT",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "out",
					Aliases: []string{"o"},
					Usage:   "output file or directory",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				logger := newLogger(c.Bool("verbose"))
				defer logger.Sync()

				g, err := identicon.New(identicon.DefaultConfig(), logger)
				if err != nil {
					return cli.Exit(err, 1)
				}

				input := c.Args().First()
				path := outputPath(c.String("out"), input)

				if err := g.Run(input, path); err != nil {
					return cli.Exit(err, 1)
				}

				fmt.Fprintln(c.App.Writer, path)

				return nil
			},
		},
		{
			Name:        "inspect",
			Usage:       "Print the digest, color and grid for a string",
			Description: "",
			ArgsUsage:   "INPUT",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				logger := newLogger(c.Bool("verbose"))
				defer logger.Sync()

				g, err := identicon.New(identicon.DefaultConfig(), logger)
				if err != nil {
					return cli.Exit(err, 1)
				}

				icon, err := g.Generate(c.Args().First())
				if err != nil {
					return cli.Exit(err, 1)
				}

				inspect(c.App.Writer, icon, g.Config().Columns())

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
