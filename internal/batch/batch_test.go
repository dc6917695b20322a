package batch

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maestro/internal/library"
	"maestro/internal/model"
	"maestro/internal/text"
)

func testTracks(t *testing.T, count int) []*library.Track {
	t.Helper()
	disc := model.Disc{}
	for i := 0; i < count; i++ {
		disc.Tracks = append(disc.Tracks, model.Track{Title: text.New(fmt.Sprintf("Track %d", i+1))})
	}
	raw := &model.Album{
		Title:   text.New("Batch"),
		Artists: []text.Text{text.New("Artist")},
		Discs:   []model.Disc{disc},
	}
	return library.New(raw, t.TempDir(), library.DefaultTransforms()).Tracks()
}

func TestRunCollectsPerTrackErrors(t *testing.T) {
	tracks := testTracks(t, 4)
	boom := errors.New("boom")

	results, err := Run(context.Background(), tracks, 2, func(track *library.Track) error {
		if track.Number()%2 == 0 {
			return boom
		}
		return nil
	}, nil)
	require.NoError(t, err)
	require.Len(t, results, 4)

	// Results stay in track order regardless of scheduling.
	for i, result := range results {
		assert.Equal(t, i+1, result.Track.Number())
	}
	assert.NoError(t, results[0].Err)
	assert.ErrorIs(t, results[1].Err, boom)
	assert.ErrorIs(t, results[3].Err, boom)

	failed := Failed(results)
	require.Len(t, failed, 2)
	assert.Equal(t, 2, failed[0].Track.Number())
	assert.Equal(t, 4, failed[1].Track.Number())
}

func TestRunHonorsWorkerLimit(t *testing.T) {
	tracks := testTracks(t, 8)

	var active, peak int32
	_, err := Run(context.Background(), tracks, 3, func(*library.Track) error {
		current := atomic.AddInt32(&active, 1)
		defer atomic.AddInt32(&active, -1)
		for {
			seen := atomic.LoadInt32(&peak)
			if current <= seen || atomic.CompareAndSwapInt32(&peak, seen, current) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		return nil
	}, nil)
	require.NoError(t, err)
	assert.LessOrEqual(t, atomic.LoadInt32(&peak), int32(3))
}

func TestRunReportsProgress(t *testing.T) {
	tracks := testTracks(t, 5)

	var mu sync.Mutex
	done := 0
	results, err := Run(context.Background(), tracks, 2, func(*library.Track) error {
		return nil
	}, func(Result) {
		mu.Lock()
		done++
		mu.Unlock()
	})
	require.NoError(t, err)
	assert.Len(t, results, 5)
	assert.Equal(t, 5, done)
}

func TestRunStopsOnCancelledContext(t *testing.T) {
	tracks := testTracks(t, 3)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, tracks, 1, func(*library.Track) error {
		t.Fatal("op must not run after cancellation")
		return nil
	}, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
