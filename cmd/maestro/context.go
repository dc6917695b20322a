package main

import (
	"github.com/sirupsen/logrus"

	"maestro/internal/artwork"
	"maestro/internal/config"
	"maestro/internal/library"
)

// commandContext carries the lazily loaded pieces every subcommand
// needs: settings, the logger, and the album at --folder.
type commandContext struct {
	folderFlag  *string
	configFlag  *string
	verboseFlag *bool

	logger   *logrus.Logger
	settings *config.Settings
}

func newCommandContext(folderFlag, configFlag *string, verboseFlag *bool) *commandContext {
	return &commandContext{
		folderFlag:  folderFlag,
		configFlag:  configFlag,
		verboseFlag: verboseFlag,
	}
}

func (c *commandContext) log() *logrus.Logger {
	if c.logger == nil {
		c.logger = logrus.New()
		c.logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		if *c.verboseFlag {
			c.logger.SetLevel(logrus.DebugLevel)
		}
	}
	return c.logger
}

func (c *commandContext) ensureSettings() (*config.Settings, error) {
	if c.settings == nil {
		settings, err := config.Load(*c.configFlag)
		if err != nil {
			return nil, err
		}
		c.settings = settings
	}
	return c.settings, nil
}

// transforms builds the configured cover transforms.
func (c *commandContext) transforms() (library.Transforms, error) {
	settings, err := c.ensureSettings()
	if err != nil {
		return library.Transforms{}, err
	}
	return library.Transforms{
		Standard: artwork.StandardTransform(settings.CoverSize, settings.JPEGQuality),
		Car:      artwork.CarTransform(settings.CoverVWSize, settings.JPEGQuality),
	}, nil
}

// loadAlbum reads the album definition under --folder.
func (c *commandContext) loadAlbum() (*library.Album, error) {
	transforms, err := c.transforms()
	if err != nil {
		return nil, err
	}
	album, err := library.Load(*c.folderFlag, transforms)
	if err != nil {
		return nil, err
	}
	c.log().WithFields(logrus.Fields{
		"album":  album.Title().Value(),
		"discs":  album.NumDiscs(),
		"tracks": album.NumTracks(),
	}).Debug("loaded album definition")
	return album, nil
}

// workers returns the configured batch concurrency.
func (c *commandContext) workers() int {
	if c.settings == nil {
		return config.DefaultSettings().Workers
	}
	return c.settings.Workers
}
