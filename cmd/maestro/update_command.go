package main

import (
	"github.com/spf13/cobra"

	"maestro/internal/library"
	"maestro/internal/tags"
)

func newUpdateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "update",
		Short: "Rewrite the ID3 tags of every track from the definition",
		RunE: func(cmd *cobra.Command, args []string) error {
			album, err := ctx.loadAlbum()
			if err != nil {
				return err
			}
			return ctx.runBatch(cmd, album.Tracks(), "updating tags", func(track *library.Track) error {
				return tags.Write(track)
			})
		},
	}
}
