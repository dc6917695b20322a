package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"maestro/internal/scan"
)

func newGenerateCommand(ctx *commandContext) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Build an album definition from existing MP3 files",
		Long: `Build an album definition from existing MP3 files.

The folder is scanned for .mp3 files, album-level fields are taken from
the most frequent tag values, and each file's current location becomes
a filename override. The result is written to extras/album.yaml for
hand editing.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			folder := *ctx.folderFlag
			definition := filepath.Join(folder, "extras", "album.yaml")
			if !force {
				if _, err := os.Stat(definition); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", definition)
				}
			}

			album, err := scan.Scan(folder)
			if err != nil {
				return err
			}

			data, err := album.Encode()
			if err != nil {
				return err
			}
			if err := os.MkdirAll(filepath.Dir(definition), 0755); err != nil {
				return err
			}
			if err := os.WriteFile(definition, data, 0644); err != nil {
				return err
			}

			cmd.Printf("wrote %s (%d discs, %d tracks)\n", definition, len(album.Discs), album.NumTracks())
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing definition")

	return cmd
}
