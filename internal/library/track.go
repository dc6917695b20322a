package library

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"maestro/internal/artwork"
	"maestro/internal/model"
	"maestro/internal/text"
)

// Track is a track definition bound to its 1-based position on a disc.
type Track struct {
	disc   *Disc
	raw    *model.Track
	number int

	cover   coverCell
	coverVW coverCell
}

func (t *Track) Disc() *Disc { return t.disc }

func (t *Track) Album() *Album { return t.disc.album }

// Number returns the 1-based track number within the disc.
func (t *Track) Number() int { return t.number }

// DiscNumber returns the 1-based number of the owning disc.
func (t *Track) DiscNumber() int { return t.disc.number }

func (t *Track) Title() text.Text { return t.raw.Title }

// Artists returns the track's own artist list when the definition sets
// one, otherwise the album's. An explicitly empty list counts as set.
func (t *Track) Artists() []text.Text {
	if t.raw.Artists != nil {
		return t.raw.Artists
	}
	return t.disc.album.Artists()
}

// Artist joins Artists with ", ".
func (t *Track) Artist() text.Text { return text.CommaSeparated(t.Artists()) }

// AlbumArtists returns the album's artist list when the track's own
// list differs from it by value, signalling that the track needs an
// explicit album-artist tag. Tracks that inherit the album artists, or
// that redundantly list the same ones, return nil.
func (t *Track) AlbumArtists() []text.Text {
	if t.raw.Artists == nil {
		return nil
	}
	albumArtists := t.disc.album.Artists()
	if slices.Equal(t.raw.Artists, albumArtists) {
		return nil
	}
	return albumArtists
}

// Year returns the track's year, falling back to the album's.
func (t *Track) Year() *int {
	if t.raw.Year != nil {
		return t.raw.Year
	}
	return t.disc.album.Year()
}

// Genre returns the track's genre, falling back to the album's.
func (t *Track) Genre() *text.Text {
	if t.raw.Genre != nil {
		return t.raw.Genre
	}
	return t.disc.album.Genre()
}

// Comment returns the track's comment. There is no album fallback.
func (t *Track) Comment() *text.Text { return t.raw.Comment }

// Lyrics returns the track's lyrics. There is no album fallback.
func (t *Track) Lyrics() *text.Text { return t.raw.Lyrics }

// CanonicalFilename returns the track's computed filename. The number
// prefix is zero-padded to the width of the disc's track count and is
// omitted entirely for the only track of a single-disc album.
func (t *Track) CanonicalFilename() string {
	title := t.raw.Title.FileSafe()
	if t.disc.IsOnlyDisc() && t.disc.NumTracks() == 1 {
		return title + ".mp3"
	}
	return fmt.Sprintf("%0*d - %s.mp3", numDigits(t.disc.NumTracks()), t.number, title)
}

// Filename returns the explicit filename override from the definition
// when set, otherwise CanonicalFilename. The override names the track's
// current source file; computed names are unaffected.
func (t *Track) Filename() string {
	if t.raw.Filename != "" {
		return t.raw.Filename
	}
	return t.CanonicalFilename()
}

// FilenameVW returns the filename used by the flat car-safe export. On
// a single-disc album it matches CanonicalFilename; otherwise disc and
// track numbers are joined with a dash, each zero-padded to its own
// width.
func (t *Track) FilenameVW() string {
	if t.disc.IsOnlyDisc() {
		return t.CanonicalFilename()
	}
	return fmt.Sprintf("%0*d-%0*d - %s.mp3",
		numDigits(t.disc.album.NumDiscs()), t.disc.number,
		numDigits(t.disc.NumTracks()), t.number,
		t.raw.Title.FileSafe())
}

// CanonicalPath returns the track's computed location under the disc
// directory.
func (t *Track) CanonicalPath() string {
	return filepath.Join(t.disc.Path(), t.CanonicalFilename())
}

// Path returns the track's source file location. A filename override is
// relative to the album root, not the disc directory.
func (t *Track) Path() string {
	if t.raw.Filename != "" {
		return filepath.Join(t.disc.album.Path(), t.raw.Filename)
	}
	return t.CanonicalPath()
}

// Exists reports whether the track's source file is present.
func (t *Track) Exists() bool {
	info, err := os.Stat(t.Path())
	return err == nil && !info.IsDir()
}

// Cover resolves the track's standard cover, named after its file-safe
// title, falling back to the disc cover when the track has none of its
// own.
func (t *Track) Cover() (*artwork.Image, error) {
	return t.cover.resolve(func() (*artwork.Image, error) {
		album := t.disc.album
		img, err := artwork.Resolve(album.ImagesPath(), album.CoversPath(), t.raw.Title.FileSafe(), album.transforms.Standard)
		if err != nil || img != nil {
			return img, err
		}
		return t.disc.Cover()
	})
}

// CoverVW resolves the track's car-safe cover with the same fallback as
// Cover.
func (t *Track) CoverVW() (*artwork.Image, error) {
	return t.coverVW.resolve(func() (*artwork.Image, error) {
		album := t.disc.album
		img, err := artwork.Resolve(album.ImagesPath(), album.CoversVWPath(), t.raw.Title.FileSafe(), album.transforms.Car)
		if err != nil || img != nil {
			return img, err
		}
		return t.disc.CoverVW()
	})
}
