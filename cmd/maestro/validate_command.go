package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"maestro/internal/tags"
)

func newValidateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Compare every track's tag against the definition",
		RunE: func(cmd *cobra.Command, args []string) error {
			album, err := ctx.loadAlbum()
			if err != nil {
				return err
			}

			mismatched := 0
			for _, track := range album.Tracks() {
				findings, err := tags.Validate(track)
				if err != nil {
					return err
				}
				if len(findings) == 0 {
					continue
				}
				mismatched++
				cmd.Printf("%d-%d %s:\n", track.DiscNumber(), track.Number(), track.Title().Value())
				for _, finding := range findings {
					cmd.Printf("    %s\n", finding)
				}
			}

			if mismatched > 0 {
				return fmt.Errorf("%d of %d tracks out of date", mismatched, album.NumTracks())
			}
			cmd.Println("all tracks up to date")
			return nil
		},
	}
}
