package main

import (
	"github.com/spf13/cobra"

	"maestro/internal/library"
	"maestro/internal/tags"
)

func newClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every ID3 frame from every track",
		RunE: func(cmd *cobra.Command, args []string) error {
			album, err := ctx.loadAlbum()
			if err != nil {
				return err
			}
			return ctx.runBatch(cmd, album.Tracks(), "clearing tags", func(track *library.Track) error {
				return tags.Clear(track)
			})
		},
	}
}
