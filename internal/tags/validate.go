package tags

import (
	"fmt"

	id3v2 "github.com/bogem/id3v2/v2"

	"maestro/internal/library"
)

// textFrameOrder fixes the reporting order of text frame findings.
var textFrameOrder = [...]string{"TIT2", "TPE1", "TPE2", "TALB", "TRCK", "TPOS", "TDRC", "TCON"}

// A Finding reports one frame whose content differs from the track's
// resolved metadata. An empty Got means the frame is missing; an empty
// Want means the frame should not be present.
type Finding struct {
	Frame string
	Want  string
	Got   string
}

func (f Finding) String() string {
	switch {
	case f.Got == "":
		return fmt.Sprintf("%s: missing, want %q", f.Frame, f.Want)
	case f.Want == "":
		return fmt.Sprintf("%s: unexpected %q", f.Frame, f.Got)
	default:
		return fmt.Sprintf("%s: want %q, got %q", f.Frame, f.Want, f.Got)
	}
}

// Validate compares the tag on the track's source file against the
// track's resolved metadata and returns one finding per mismatched
// frame. An empty result means the tag is up to date.
func Validate(track *library.Track) ([]Finding, error) {
	frames, err := buildFrames(track, false)
	if err != nil {
		return nil, err
	}

	tag, err := open(track.Path())
	if err != nil {
		return nil, err
	}
	defer tag.Close()

	var findings []Finding
	report := func(frame, want, got string) {
		if want != got {
			findings = append(findings, Finding{Frame: frame, Want: want, Got: got})
		}
	}

	for _, id := range textFrameOrder {
		report(id, frames.texts[id], tag.GetTextFrame(id).Text)
	}

	report("COMM", frames.comment, commentText(tag))
	report("USLT", frames.lyrics, lyricsText(tag))

	wantCover := ""
	if frames.cover != nil {
		wantCover = frames.cover.Format.MIME()
	}
	report("APIC", wantCover, pictureMIME(tag))

	return findings, nil
}

func commentText(tag *id3v2.Tag) string {
	for _, framer := range tag.GetFrames(tag.CommonID("Comments")) {
		if comment, ok := framer.(id3v2.CommentFrame); ok {
			return comment.Text
		}
	}
	return ""
}

func lyricsText(tag *id3v2.Tag) string {
	for _, framer := range tag.GetFrames(tag.CommonID("Unsynchronised lyrics/text transcription")) {
		if lyrics, ok := framer.(id3v2.UnsynchronisedLyricsFrame); ok {
			return lyrics.Lyrics
		}
	}
	return ""
}

func pictureMIME(tag *id3v2.Tag) string {
	for _, framer := range tag.GetFrames(tag.CommonID("Attached picture")) {
		if picture, ok := framer.(id3v2.PictureFrame); ok {
			return picture.MimeType
		}
	}
	return ""
}
