package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"maestro/internal/export"
	"maestro/internal/library"
)

func newExportCommand(ctx *commandContext) *cobra.Command {
	var format string
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Copy the album into another directory tree",
		Long: `Copy the album into another directory tree.

The full format mirrors the canonical layout with disc folders and
untouched tags. The vw format flattens everything into one directory,
renames tracks to disc-track order, and rewrites tags with ASCII text
and a small JPEG cover for car stereos.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			album, err := ctx.loadAlbum()
			if err != nil {
				return err
			}

			var op func(*library.Track) error
			switch format {
			case "full":
				op = func(track *library.Track) error { return export.Full(track, output) }
			case "vw":
				op = func(track *library.Track) error { return export.VW(track, output) }
			default:
				return fmt.Errorf("unknown export format %q (want full or vw)", format)
			}

			if output == "" {
				return fmt.Errorf("--output is required")
			}
			absolute, err := filepath.Abs(output)
			if err != nil {
				return err
			}
			output = absolute

			return ctx.runBatch(cmd, album.Tracks(), "exporting "+format, op)
		},
	}

	cmd.Flags().StringVar(&format, "format", "full", "Export format: full or vw")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Destination directory")

	return cmd
}
