package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var folderFlag string
	var configFlag string
	var verboseFlag bool

	ctx := newCommandContext(&folderFlag, &configFlag, &verboseFlag)

	rootCmd := &cobra.Command{
		Use:           "maestro",
		Short:         "Organize a music library from declarative album definitions",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&folderFlag, "folder", "f", ".", "Album folder (holds extras/album.yaml)")
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newUpdateCommand(ctx))
	rootCmd.AddCommand(newExportCommand(ctx))
	rootCmd.AddCommand(newValidateCommand(ctx))
	rootCmd.AddCommand(newShowCommand(ctx))
	rootCmd.AddCommand(newClearCommand(ctx))
	rootCmd.AddCommand(newRenameCommand(ctx))
	rootCmd.AddCommand(newGenerateCommand(ctx))

	return rootCmd
}
