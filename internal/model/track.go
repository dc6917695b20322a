package model

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"maestro/internal/text"
)

// Track is a single track in an album definition.
//
// All fields except the title are optional. Artists, Year, and Genre
// override the album-level values when present; Comment and Lyrics
// exist only at the track level.
type Track struct {
	// Title is the track title.
	Title text.Text

	// Artists overrides the album artists when non-nil.
	Artists []text.Text

	// Year overrides the album year when non-nil.
	Year *int

	// Genre overrides the album genre when non-nil.
	Genre *text.Text

	// Comment is a free-form comment tagged onto the track.
	Comment *text.Text

	// Lyrics holds the track's lyrics.
	Lyrics *text.Text

	// Filename, when non-empty, names the track's source file relative
	// to the album root instead of the canonical computed name. It
	// never affects export names.
	Filename string
}

// UnmarshalYAML decodes a track, which is either a bare string (the
// title) or a mapping. "artist" is accepted as a one-element "artists"
// list, but giving both is an error; unknown keys are ignored.
func (t *Track) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		title, err := decodeText(node)
		if err != nil {
			return fmt.Errorf("track: %w", err)
		}
		*t = Track{Title: title}
		return nil
	}

	var out Track
	var hasTitle, hasArt bool

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		switch key.Value {
		case "title":
			title, err := decodeText(val)
			if err != nil {
				return fmt.Errorf("track title: %w", err)
			}
			out.Title, hasTitle = title, true
		case "artists":
			if hasArt {
				return fmt.Errorf("line %d: track definition has both %q and %q", key.Line, "artist", "artists")
			}
			list, err := decodeTextList(val)
			if err != nil {
				return fmt.Errorf("track artists: %w", err)
			}
			out.Artists, hasArt = list, true
		case "artist":
			if hasArt {
				return fmt.Errorf("line %d: track definition has both %q and %q", key.Line, "artist", "artists")
			}
			artist, err := decodeText(val)
			if err != nil {
				return fmt.Errorf("track artist: %w", err)
			}
			out.Artists, hasArt = []text.Text{artist}, true
		case "year":
			year, err := decodeYear(val)
			if err != nil {
				return fmt.Errorf("track year: %w", err)
			}
			out.Year = year
		case "genre":
			genre, err := decodeText(val)
			if err != nil {
				return fmt.Errorf("track genre: %w", err)
			}
			out.Genre = &genre
		case "comment":
			comment, err := decodeText(val)
			if err != nil {
				return fmt.Errorf("track comment: %w", err)
			}
			out.Comment = &comment
		case "lyrics":
			lyrics, err := decodeText(val)
			if err != nil {
				return fmt.Errorf("track lyrics: %w", err)
			}
			out.Lyrics = &lyrics
		case "filename":
			if err := val.Decode(&out.Filename); err != nil {
				return fmt.Errorf("track filename: %w", err)
			}
		}
	}

	if !hasTitle {
		return fmt.Errorf("line %d: track definition missing %q", node.Line, "title")
	}

	*t = out
	return nil
}

// MarshalYAML encodes the track as a bare string when only the title is
// set, and as a mapping otherwise.
func (t Track) MarshalYAML() (interface{}, error) {
	bare := t.Artists == nil && t.Year == nil && t.Genre == nil &&
		t.Comment == nil && t.Lyrics == nil && t.Filename == ""
	if bare {
		return textNode(t.Title), nil
	}

	root := mappingNode()
	appendPair(root, "title", textNode(t.Title))

	if len(t.Artists) == 1 {
		appendPair(root, "artist", textNode(t.Artists[0]))
	} else if t.Artists != nil {
		appendPair(root, "artists", textListNode(t.Artists))
	}
	if t.Year != nil {
		appendPair(root, "year", intNode(*t.Year))
	}
	if t.Genre != nil {
		appendPair(root, "genre", textNode(*t.Genre))
	}
	if t.Comment != nil {
		appendPair(root, "comment", textNode(*t.Comment))
	}
	if t.Lyrics != nil {
		appendPair(root, "lyrics", textNode(*t.Lyrics))
	}
	if t.Filename != "" {
		appendPair(root, "filename", stringNode(t.Filename))
	}

	return root, nil
}
