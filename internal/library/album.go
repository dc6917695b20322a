package library

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"maestro/internal/artwork"
	"maestro/internal/model"
	"maestro/internal/text"
)

// Names of the fixed locations under an album root.
const (
	extrasDir   = "extras"
	imagesDir   = "images"
	cacheDir    = ".cache"
	coversDir   = "covers"
	coversVWDir = "covers-vw"

	definitionFile = "album.yaml"
	albumCoverName = "Front Cover"
)

// Transforms bundles the two cover transforms an album resolves with.
type Transforms struct {
	Standard artwork.Transform
	Car      artwork.Transform
}

// DefaultTransforms returns the standard 1000px smaller-of-PNG-or-JPEG
// transform and the 300px JPEG car transform, both at quality 90.
func DefaultTransforms() Transforms {
	return Transforms{
		Standard: artwork.StandardTransform(1000, 90),
		Car:      artwork.CarTransform(300, 90),
	}
}

// coverCell memoizes one cover resolution per view. The result,
// including an error or the absence of a cover, is computed at most
// once and is safe for concurrent access.
type coverCell struct {
	once sync.Once
	img  *artwork.Image
	err  error
}

func (c *coverCell) resolve(init func() (*artwork.Image, error)) (*artwork.Image, error) {
	c.once.Do(func() {
		c.img, c.err = init()
	})
	return c.img, c.err
}

// Album is a raw album definition bound to its root directory.
type Album struct {
	raw        *model.Album
	path       string
	transforms Transforms
	discs      []*Disc

	cover   coverCell
	coverVW coverCell
}

// Load reads and parses <path>/extras/album.yaml.
func Load(path string, transforms Transforms) (*Album, error) {
	definition := filepath.Join(path, extrasDir, definitionFile)
	data, err := os.ReadFile(definition)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", definition, err)
	}

	raw, err := model.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", definition, err)
	}

	return New(raw, path, transforms), nil
}

// New binds a parsed definition to an album root directory.
func New(raw *model.Album, path string, transforms Transforms) *Album {
	album := &Album{raw: raw, path: path, transforms: transforms}
	album.discs = make([]*Disc, len(raw.Discs))
	for i := range raw.Discs {
		disc := &Disc{album: album, raw: &raw.Discs[i], number: i + 1}
		disc.tracks = make([]*Track, len(disc.raw.Tracks))
		for j := range disc.raw.Tracks {
			disc.tracks[j] = &Track{disc: disc, raw: &disc.raw.Tracks[j], number: j + 1}
		}
		album.discs[i] = disc
	}
	return album
}

// Raw returns the underlying definition.
func (a *Album) Raw() *model.Album { return a.raw }

// Path returns the album root directory.
func (a *Album) Path() string { return a.path }

// ExtrasPath returns the directory holding the definition, source
// images, and cover cache.
func (a *Album) ExtrasPath() string { return filepath.Join(a.path, extrasDir) }

// DefinitionPath returns the path of the album.yaml definition.
func (a *Album) DefinitionPath() string {
	return filepath.Join(a.ExtrasPath(), definitionFile)
}

// ImagesPath returns the source cover art directory.
func (a *Album) ImagesPath() string { return filepath.Join(a.ExtrasPath(), imagesDir) }

// CoversPath returns the cache directory for standard covers.
func (a *Album) CoversPath() string {
	return filepath.Join(a.ExtrasPath(), cacheDir, coversDir)
}

// CoversVWPath returns the cache directory for car-safe covers.
func (a *Album) CoversVWPath() string {
	return filepath.Join(a.ExtrasPath(), cacheDir, coversVWDir)
}

func (a *Album) Title() text.Text { return a.raw.Title }

func (a *Album) Artists() []text.Text { return a.raw.Artists }

// Artist joins the album artists with ", ".
func (a *Album) Artist() text.Text { return text.CommaSeparated(a.raw.Artists) }

func (a *Album) Year() *int { return a.raw.Year }

func (a *Album) Genre() *text.Text { return a.raw.Genre }

func (a *Album) NumDiscs() int { return len(a.discs) }

func (a *Album) NumTracks() int { return a.raw.NumTracks() }

// Disc returns the 1-based n-th disc view.
func (a *Album) Disc(n int) *Disc { return a.discs[n-1] }

func (a *Album) Discs() []*Disc { return a.discs }

// Tracks flattens all discs into a single slice in album order.
func (a *Album) Tracks() []*Track {
	tracks := make([]*Track, 0, a.NumTracks())
	for _, disc := range a.discs {
		tracks = append(tracks, disc.tracks...)
	}
	return tracks
}

// Cover resolves the album's standard cover, named "Front Cover". A nil
// image with a nil error means the album has no cover at all.
func (a *Album) Cover() (*artwork.Image, error) {
	return a.cover.resolve(func() (*artwork.Image, error) {
		return artwork.Resolve(a.ImagesPath(), a.CoversPath(), albumCoverName, a.transforms.Standard)
	})
}

// CoverVW resolves the album's car-safe cover.
func (a *Album) CoverVW() (*artwork.Image, error) {
	return a.coverVW.resolve(func() (*artwork.Image, error) {
		return artwork.Resolve(a.ImagesPath(), a.CoversVWPath(), albumCoverName, a.transforms.Car)
	})
}

// numDigits returns the number of decimal digits in n, used to size
// zero-padded disc and track numbers.
func numDigits(n int) int {
	digits := 1
	for n >= 10 {
		n /= 10
		digits++
	}
	return digits
}
