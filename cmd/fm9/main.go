package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/bodgit/fm9"
	"github.com/urfave/cli/v2"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newFM9(c *cli.Context) *fm9.FM9 {
	logger := log.New(os.Stdout, "", 0)
	if c.Bool("quiet") {
		logger.SetOutput(io.Discard)
	}

	m := fm9.New(logger)
	m.TruncateMetadata(c.Bool("lenient-metadata"))

	return m
}

func main() {
	app := cli.NewApp()

	app.Name = "fm9"
	app.Usage = "FM9 container extraction utility"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "quiet",
			Aliases: []string{"q"},
			Usage:   "suppress progress output",
		},
		&cli.BoolFlag{
			Name:  "lenient-metadata",
			Usage: "silently truncate out-of-range effects bounds instead of failing",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "extract",
			Usage:       "Extract the components bundled in an FM9 container",
			Description: "",
			ArgsUsage:   "FILE",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Usage:   "output directory, created if missing",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				m := newFM9(c)

				written, err := m.Extract(c.Args().First(), c.String("output"))
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				fmt.Printf("extracted %d file(s)\n", len(written))

				return nil
			},
		},
		{
			Name:        "info",
			Usage:       "Display the FM9 header without extracting anything",
			Description: "",
			ArgsUsage:   "FILE",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				m := newFM9(c)

				body, consumed, err := m.Parse(c.Args().First())
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				fmt.Printf("VGM stream:      %d bytes\n", len(body.Music))
				fmt.Printf("gzip member:     %d bytes\n", consumed)

				h := body.Header
				if h == nil {
					fmt.Println("no FM9 extension found, plain VGZ file")
					return nil
				}

				fmt.Printf("FM9 version:     %d\n", h.Version)
				fmt.Printf("flags:           %#02x\n", h.Flags)
				fmt.Printf("  audio:         %t\n", h.Flags&fm9.FlagAudio != 0)
				fmt.Printf("  effects:       %t\n", h.Flags&fm9.FlagMetadata != 0)
				fmt.Printf("  cover image:   %t\n", h.Flags&fm9.FlagImage != 0)
				if name := fm9.SourceFormatName(h.SourceFormat); name != "" {
					fmt.Printf("source format:   %s\n", name)
				}
				fmt.Printf("audio format:    %d\n", h.AudioFormat)
				fmt.Printf("audio offset:    %d (unused, audio follows the gzip member)\n", h.AudioOffset)
				fmt.Printf("audio size:      %d bytes\n", h.AudioSize)
				fmt.Printf("effects size:    %d bytes\n", h.MetadataSize)

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
