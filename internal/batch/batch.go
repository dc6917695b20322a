// Package batch runs a per-track operation over an album with bounded
// concurrency, collecting failures instead of aborting on the first
// one.
package batch

import (
	"context"

	"golang.org/x/sync/errgroup"

	"maestro/internal/library"
)

// An Op is applied to a single track.
type Op func(*library.Track) error

// Result pairs a track with the outcome of its operation. Err is nil on
// success.
type Result struct {
	Track *library.Track
	Err   error
}

// Run applies op to every track using at most workers goroutines.
// Per-track failures are collected in the returned results rather than
// stopping the batch; results come back in track order. onDone, if not
// nil, is called once per finished track from the worker goroutine.
//
// Run itself only returns an error when ctx is cancelled before all
// tracks were processed.
func Run(ctx context.Context, tracks []*library.Track, workers int, op Op, onDone func(Result)) ([]Result, error) {
	if workers < 1 {
		workers = 1
	}

	results := make([]Result, len(tracks))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, track := range tracks {
		i, track := i, track
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = Result{Track: track, Err: op(track)}
			if onDone != nil {
				onDone(results[i])
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Failed filters results down to the tracks whose operation failed.
func Failed(results []Result) []Result {
	var failed []Result
	for _, result := range results {
		if result.Err != nil {
			failed = append(failed, result)
		}
	}
	return failed
}
