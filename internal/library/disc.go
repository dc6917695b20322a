package library

import (
	"fmt"
	"path/filepath"

	"maestro/internal/artwork"
	"maestro/internal/model"
)

// Disc is a disc definition bound to its 1-based position in the album.
type Disc struct {
	album  *Album
	raw    *model.Disc
	number int
	tracks []*Track

	cover   coverCell
	coverVW coverCell
}

func (d *Disc) Album() *Album { return d.album }

// Number returns the 1-based disc number.
func (d *Disc) Number() int { return d.number }

// IsOnlyDisc reports whether the album has no other discs. The only
// disc of an album has no folder, no disc-number tag, and no cover of
// its own.
func (d *Disc) IsOnlyDisc() bool { return d.album.NumDiscs() == 1 }

// Folder returns the disc's folder name, "Disc N" with N zero-padded to
// the width of the album's disc count. The only disc of an album lives
// directly in the album root and has no folder.
func (d *Disc) Folder() string {
	if d.IsOnlyDisc() {
		return ""
	}
	return fmt.Sprintf("Disc %0*d", numDigits(d.album.NumDiscs()), d.number)
}

// Path returns the directory holding the disc's tracks.
func (d *Disc) Path() string {
	folder := d.Folder()
	if folder == "" {
		return d.album.Path()
	}
	return filepath.Join(d.album.Path(), folder)
}

func (d *Disc) NumTracks() int { return len(d.tracks) }

// Track returns the 1-based n-th track view.
func (d *Disc) Track(n int) *Track { return d.tracks[n-1] }

func (d *Disc) Tracks() []*Track { return d.tracks }

// Cover resolves the disc's standard cover, named after its folder,
// falling back to the album cover when the disc has none of its own.
func (d *Disc) Cover() (*artwork.Image, error) {
	if d.IsOnlyDisc() {
		return d.album.Cover()
	}
	return d.cover.resolve(func() (*artwork.Image, error) {
		img, err := artwork.Resolve(d.album.ImagesPath(), d.album.CoversPath(), d.Folder(), d.album.transforms.Standard)
		if err != nil || img != nil {
			return img, err
		}
		return d.album.Cover()
	})
}

// CoverVW resolves the disc's car-safe cover with the same fallback as
// Cover.
func (d *Disc) CoverVW() (*artwork.Image, error) {
	if d.IsOnlyDisc() {
		return d.album.CoverVW()
	}
	return d.coverVW.resolve(func() (*artwork.Image, error) {
		img, err := artwork.Resolve(d.album.ImagesPath(), d.album.CoversVWPath(), d.Folder(), d.album.transforms.Car)
		if err != nil || img != nil {
			return img, err
		}
		return d.album.CoverVW()
	})
}
