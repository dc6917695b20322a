// Package tags writes, validates, and clears ID3v2.4 tags derived from
// resolved track metadata.
//
// Write rebuilds a track's tag from scratch rather than patching the
// frames already present, so stale frames from previous tools never
// survive an update. WriteVW produces the reduced ASCII-only variant
// used on car-safe export copies.
package tags

import (
	"fmt"
	"strconv"

	id3v2 "github.com/bogem/id3v2/v2"

	"maestro/internal/artwork"
	"maestro/internal/library"
	"maestro/internal/text"
)

// frameSet is the full set of frames a track's tag should carry.
type frameSet struct {
	texts   map[string]string
	comment string
	lyrics  string
	cover   *artwork.Image
}

// buildFrames resolves a track into its expected frames. The vw variant
// uses ASCII forms, the smaller car-safe cover, and drops the year,
// genre, comment, and lyrics frames.
func buildFrames(track *library.Track, vw bool) (*frameSet, error) {
	render := text.Text.Value
	if vw {
		render = text.Text.ASCII
	}

	frames := &frameSet{texts: map[string]string{
		"TIT2": render(track.Title()),
		"TALB": render(track.Album().Title()),
		"TRCK": strconv.Itoa(track.Number()),
	}}

	if artists := track.Artists(); len(artists) > 0 {
		frames.texts["TPE1"] = render(track.Artist())
	}
	if albumArtists := track.AlbumArtists(); albumArtists != nil {
		frames.texts["TPE2"] = render(text.CommaSeparated(albumArtists))
	}
	if !track.Disc().IsOnlyDisc() {
		frames.texts["TPOS"] = strconv.Itoa(track.DiscNumber())
	}

	if !vw {
		if year := track.Year(); year != nil {
			frames.texts["TDRC"] = strconv.Itoa(*year)
		}
		if genre := track.Genre(); genre != nil {
			frames.texts["TCON"] = genre.Value()
		}
		if comment := track.Comment(); comment != nil {
			frames.comment = comment.Value()
		}
		if lyrics := track.Lyrics(); lyrics != nil {
			frames.lyrics = lyrics.Value()
		}
	}

	var err error
	if vw {
		frames.cover, err = track.CoverVW()
	} else {
		frames.cover, err = track.Cover()
	}
	if err != nil {
		return nil, fmt.Errorf("resolving cover: %w", err)
	}

	return frames, nil
}

// Write rebuilds the ID3v2.4 tag on the track's source file from the
// track's resolved metadata.
func Write(track *library.Track) error {
	frames, err := buildFrames(track, false)
	if err != nil {
		return err
	}
	return save(track.Path(), frames)
}

// WriteVW rebuilds the tag on an exported car-safe copy at path. All
// text frames use ASCII forms and the cover is the car-safe variant.
func WriteVW(track *library.Track, path string) error {
	frames, err := buildFrames(track, true)
	if err != nil {
		return err
	}
	return save(path, frames)
}

// Clear removes every frame from the track's tag.
func Clear(track *library.Track) error {
	tag, err := open(track.Path())
	if err != nil {
		return err
	}
	defer tag.Close()

	tag.DeleteAllFrames()
	return tag.Save()
}

func open(path string) (*id3v2.Tag, error) {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return nil, fmt.Errorf("opening tag of %s: %w", path, err)
	}
	return tag, nil
}

func save(path string, frames *frameSet) error {
	tag, err := open(path)
	if err != nil {
		return err
	}
	defer tag.Close()

	tag.DeleteAllFrames()
	tag.SetVersion(4)
	tag.SetDefaultEncoding(id3v2.EncodingUTF8)

	for id, value := range frames.texts {
		tag.AddTextFrame(id, id3v2.EncodingUTF8, value)
	}

	if frames.comment != "" {
		tag.AddCommentFrame(id3v2.CommentFrame{
			Encoding: id3v2.EncodingUTF8,
			Language: "eng",
			Text:     frames.comment,
		})
	}

	if frames.lyrics != "" {
		tag.AddUnsynchronisedLyricsFrame(id3v2.UnsynchronisedLyricsFrame{
			Encoding: id3v2.EncodingUTF8,
			Language: "eng",
			Lyrics:   frames.lyrics,
		})
	}

	if frames.cover != nil {
		tag.AddAttachedPicture(id3v2.PictureFrame{
			Encoding:    id3v2.EncodingUTF8,
			MimeType:    frames.cover.Format.MIME(),
			PictureType: id3v2.PTFrontCover,
			Description: "Front Cover",
			Picture:     frames.cover.Data,
		})
	}

	return tag.Save()
}
