package main

import (
	"fmt"
	"log"
	"os"

	"github.com/recolude/rap/format"
	"github.com/recolude/rap/format/encoding"
	eulEnc "github.com/recolude/rap/format/encoding/euler"
	eventEnc "github.com/recolude/rap/format/encoding/event"
	posEnc "github.com/recolude/rap/format/encoding/position"
	rapio "github.com/recolude/rap/format/io"
	"github.com/recolude/rap/format/metadata"
	"github.com/urfave/cli/v2"

	"github.com/recolude/splat-utils/splat"
	"github.com/recolude/splat-utils/transforms"
	"github.com/recolude/splat-utils/utilites"
)

func infoAction(c *cli.Context) error {
	rs, err := splat.Decode(c.String("splat"))
	if err != nil {
		return err
	}
	fmt.Printf("points: %d\n", rs.Count())
	dims := rs.Dims()
	for _, name := range splat.FieldNames() {
		shape := dims[name]
		fmt.Printf("%-14s %d x %d\n", name, shape[0], shape[1])
	}
	return nil
}

func compareAction(c *cli.Context) error {
	a, err := splat.Decode(c.String("a"))
	if err != nil {
		return err
	}
	matching, err := splat.CompareDimensions(a, c.String("b"))
	if err != nil {
		return err
	}
	for _, group := range []string{splat.FieldXYZ, splat.FieldOpacities, splat.FieldDirectCurrent} {
		fmt.Printf("%-14s %v\n", group, matching[group])
	}
	return nil
}

func csvAction(c *cli.Context) error {
	rs, err := splat.Decode(c.String("splat"))
	if err != nil {
		return err
	}

	f, err := os.Create(c.String("out"))
	if err != nil {
		return err
	}
	defer f.Close()

	return rs.SHTable().WriteCSV(f)
}

func rapAction(c *cli.Context) error {
	rs, err := splat.Decode(c.String("splat"))
	if err != nil {
		return err
	}

	pointsBinary, err := utilites.SplatToRapBinary(rs)
	if err != nil {
		return err
	}

	subjects := []format.Recording{}
	if dir := c.String("transforms"); dir != "" {
		manifests, err := transforms.LoadSplits(dir)
		if err != nil {
			return err
		}
		for _, split := range transforms.Splits {
			manifest, ok := manifests[split]
			if !ok {
				continue
			}
			rec, err := transforms.ToRecording(split, split, manifest)
			if err != nil {
				return err
			}
			subjects = append(subjects, rec)
		}
	}

	recording := format.NewRecording(
		"splat",
		"Gaussian Splat",
		[]format.CaptureCollection{},
		subjects,
		metadata.NewBlock(map[string]metadata.Property{
			"points":   metadata.NewIntProperty(rs.Count()),
			"subjects": metadata.NewIntProperty(len(subjects)),
		}),
		[]format.Binary{pointsBinary},
		[]format.BinaryReference{},
	)

	f, err := os.Create(c.String("out"))
	if err != nil {
		return err
	}
	defer f.Close()

	rapWriter := rapio.NewWriter(
		[]encoding.Encoder{
			posEnc.NewEncoder(posEnc.Oct24),
			eulEnc.NewEncoder(eulEnc.Raw16),
			eventEnc.NewEncoder(),
		},
		true,
		f,
		rapio.BST16,
	)

	_, err = rapWriter.Write(recording)
	return err
}

func main() {
	app := &cli.App{
		Name:  "Splat Utils",
		Usage: "Inspects gaussian-splat point clouds and packages them as RAP recordings",
		Authors: []*cli.Author{
			{
				Name:  "Eli Davis",
				Email: "eli@recolude.com",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "info",
				Usage: "print point count and record group shapes",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "splat",
						Usage:    "path to splat PLY file",
						Required: true,
					},
				},
				Action: infoAction,
			},
			{
				Name:  "compare",
				Usage: "check two splat files for matching point counts",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "a",
						Usage:    "path to first splat PLY file",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "b",
						Usage:    "path to second splat PLY file",
						Required: true,
					},
				},
				Action: compareAction,
			},
			{
				Name:  "csv",
				Usage: "write the SH coefficient table as CSV",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "splat",
						Usage:    "path to splat PLY file",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "out",
						Usage:    "path to csv file",
						Required: true,
					},
				},
				Action: csvAction,
			},
			{
				Name:  "rap",
				Usage: "package a splat file, and optionally its camera manifests, as a RAP recording",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "splat",
						Usage:    "path to splat PLY file",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "transforms",
						Usage: "directory holding transforms_<split>.json manifests",
					},
					&cli.StringFlag{
						Name:     "out",
						Usage:    "path to rap file",
						Required: true,
					},
				},
				Action: rapAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
