// Package scan builds an album definition from an existing folder of
// MP3 files by reading their tags.
//
// Album-level fields are chosen by majority vote across the scanned
// files, so a single mistagged track does not skew the definition.
// Values that deviate from the winning album field become per-track
// overrides. Every track records its current location as a filename
// override, leaving later canonical renames to the rename command.
package scan

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dhowden/tag"

	"maestro/internal/model"
	"maestro/internal/text"
)

// extrasDirName matches the directory reserved for the definition and
// cover cache, which never holds tracks.
const extrasDirName = "extras"

// scanned holds the metadata read from one MP3 file.
type scanned struct {
	rel     string
	title   string
	artist  string
	album   string
	genre   string
	comment string
	lyrics  string
	year    int
	disc    int
	track   int
}

// Scan walks root for .mp3 files and derives an album definition from
// their tags. Files are grouped into discs by their disc-number frame;
// untagged files land on disc 1.
func Scan(root string) (*model.Album, error) {
	files, err := readAll(root)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .mp3 files under %s", root)
	}

	albumTitle := vote(files, func(f scanned) string { return f.album })
	albumArtist := vote(files, func(f scanned) string { return f.artist })
	albumGenre := vote(files, func(f scanned) string { return f.genre })
	albumYear := voteYear(files)

	album := &model.Album{
		Title:   text.New(albumTitle),
		Artists: []text.Text{text.New(albumArtist)},
		Year:    albumYear,
	}
	if albumGenre != "" {
		genre := text.New(albumGenre)
		album.Genre = &genre
	}

	for _, disc := range groupDiscs(files) {
		var tracks []model.Track
		for _, file := range disc {
			tracks = append(tracks, buildTrack(file, albumArtist, albumYear, albumGenre))
		}
		album.Discs = append(album.Discs, model.Disc{Tracks: tracks})
	}

	return album, nil
}

func readAll(root string) ([]scanned, error) {
	var files []scanned
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			if entry.Name() == extrasDirName {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.EqualFold(filepath.Ext(path), ".mp3") {
			return nil
		}

		file, err := readFile(root, path)
		if err != nil {
			return err
		}
		files = append(files, file)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

func readFile(root, path string) (scanned, error) {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return scanned{}, err
	}
	result := scanned{rel: filepath.ToSlash(rel)}

	f, err := os.Open(path)
	if err != nil {
		return scanned{}, err
	}
	defer f.Close()

	meta, err := tag.ReadFrom(f)
	if err != nil {
		// Untagged files still become tracks, named after the file.
		if errors.Is(err, tag.ErrNoTagsFound) {
			result.title = stem(path)
			return result, nil
		}
		return scanned{}, fmt.Errorf("reading tags of %s: %w", path, err)
	}

	result.title = meta.Title()
	if result.title == "" {
		result.title = stem(path)
	}
	result.artist = meta.Artist()
	result.album = meta.Album()
	result.genre = meta.Genre()
	result.comment = meta.Comment()
	result.lyrics = meta.Lyrics()
	result.year = meta.Year()
	result.track, _ = meta.Track()
	result.disc, _ = meta.Disc()
	return result, nil
}

func stem(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

// vote picks the most frequent non-empty value; earlier files win ties.
func vote(files []scanned, field func(scanned) string) string {
	counts := make(map[string]int)
	var order []string
	for _, file := range files {
		value := field(file)
		if value == "" {
			continue
		}
		if counts[value] == 0 {
			order = append(order, value)
		}
		counts[value]++
	}

	best := ""
	for _, value := range order {
		if best == "" || counts[value] > counts[best] {
			best = value
		}
	}
	return best
}

func voteYear(files []scanned) *int {
	counts := make(map[int]int)
	var order []int
	for _, file := range files {
		if file.year == 0 {
			continue
		}
		if counts[file.year] == 0 {
			order = append(order, file.year)
		}
		counts[file.year]++
	}

	best := 0
	for _, year := range order {
		if best == 0 || counts[year] > counts[best] {
			best = year
		}
	}
	if best == 0 {
		return nil
	}
	return &best
}

// groupDiscs splits files by disc number, treating a missing number as
// disc 1, and orders tracks by track number with walk order breaking
// ties.
func groupDiscs(files []scanned) [][]scanned {
	byDisc := make(map[int][]scanned)
	for _, file := range files {
		disc := file.disc
		if disc < 1 {
			disc = 1
		}
		byDisc[disc] = append(byDisc[disc], file)
	}

	var numbers []int
	for number := range byDisc {
		numbers = append(numbers, number)
	}
	sort.Ints(numbers)

	discs := make([][]scanned, 0, len(numbers))
	for _, number := range numbers {
		disc := byDisc[number]
		sort.SliceStable(disc, func(i, j int) bool { return disc[i].track < disc[j].track })
		discs = append(discs, disc)
	}
	return discs
}

func buildTrack(file scanned, albumArtist string, albumYear *int, albumGenre string) model.Track {
	track := model.Track{
		Title:    text.New(file.title),
		Filename: file.rel,
	}
	if file.artist != "" && file.artist != albumArtist {
		track.Artists = []text.Text{text.New(file.artist)}
	}
	if file.year != 0 && (albumYear == nil || file.year != *albumYear) {
		year := file.year
		track.Year = &year
	}
	if file.genre != "" && file.genre != albumGenre {
		genre := text.New(file.genre)
		track.Genre = &genre
	}
	if file.comment != "" {
		comment := text.New(file.comment)
		track.Comment = &comment
	}
	if file.lyrics != "" {
		lyrics := text.New(file.lyrics)
		track.Lyrics = &lyrics
	}
	return track
}
