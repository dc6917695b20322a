package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"maestro/internal/export"
)

func newRenameCommand(ctx *commandContext) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "rename",
		Short: "Move tracks to their canonical locations",
		Long: `Move tracks to their canonical locations.

Tracks whose definition carries a filename override are moved from the
overridden location to the computed disc folder and filename, and the
overrides are removed from the definition.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			album, err := ctx.loadAlbum()
			if err != nil {
				return err
			}

			renamed := 0
			for _, track := range album.Tracks() {
				source, dest := track.Path(), track.CanonicalPath()
				if source == dest {
					continue
				}
				if dryRun {
					cmd.Printf("%s -> %s\n", source, dest)
					continue
				}
				moved, err := export.Rename(track)
				if err != nil {
					return err
				}
				if moved {
					renamed++
					ctx.log().WithFields(logrus.Fields{
						"from": source,
						"to":   dest,
					}).Debug("renamed track")
				}
			}

			if dryRun || renamed == 0 {
				return nil
			}

			// The files are canonical now; drop the stale overrides.
			raw := album.Raw()
			for d := range raw.Discs {
				for t := range raw.Discs[d].Tracks {
					raw.Discs[d].Tracks[t].Filename = ""
				}
			}
			data, err := raw.Encode()
			if err != nil {
				return err
			}
			if err := os.WriteFile(album.DefinitionPath(), data, 0644); err != nil {
				return err
			}

			cmd.Printf("renamed %d tracks\n", renamed)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Print planned moves without touching files")

	return cmd
}
