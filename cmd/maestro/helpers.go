package main

import (
	"fmt"

	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"maestro/internal/batch"
	"maestro/internal/library"
)

// runBatch applies op to every track with a progress bar and reports
// per-track failures through the logger. It returns an error when any
// track failed, so the process exits non-zero.
func (c *commandContext) runBatch(cmd *cobra.Command, tracks []*library.Track, description string, op batch.Op) error {
	bar := progressbar.Default(int64(len(tracks)), description)
	results, err := batch.Run(cmd.Context(), tracks, c.workers(), op, func(batch.Result) {
		_ = bar.Add(1)
	})
	_ = bar.Finish()
	if err != nil {
		return err
	}

	failed := batch.Failed(results)
	for _, result := range failed {
		c.log().WithError(result.Err).WithFields(logrus.Fields{
			"disc":  result.Track.DiscNumber(),
			"track": result.Track.Number(),
			"title": result.Track.Title().Value(),
		}).Error("track failed")
	}
	if len(failed) > 0 {
		return fmt.Errorf("%d of %d tracks failed", len(failed), len(results))
	}
	return nil
}
