package model

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"maestro/internal/text"
)

// Album is the root of a raw album definition.
//
// Albums own their discs and discs own their tracks; nothing in the
// tree points back up. Positional numbering (disc 1, track 1, ...) is
// derived by the library package when views are constructed.
type Album struct {
	// Title is the album title.
	Title text.Text

	// Artists is the album artist list. An empty list is a valid
	// value (for example a various-artists compilation tagged only
	// per-track); tracks always fall back to this list, never past it.
	Artists []text.Text

	// Year is the album release year, if known.
	Year *int

	// Genre is the album genre, if any.
	Genre *text.Text

	// Discs holds the album's discs in order.
	Discs []Disc
}

// Artist returns the album's artists joined with ", ".
func (a *Album) Artist() text.Text {
	return text.CommaSeparated(a.Artists)
}

// NumDiscs returns the number of discs in the album.
func (a *Album) NumDiscs() int {
	return len(a.Discs)
}

// NumTracks returns the total number of tracks across all discs.
func (a *Album) NumTracks() int {
	n := 0
	for i := range a.Discs {
		n += len(a.Discs[i].Tracks)
	}
	return n
}

// UnmarshalYAML decodes an album definition.
//
// "artist" is accepted as a one-element "artists" list, and "tracks"
// as a single anonymous disc; giving both forms of either pair is an
// error. "title", an artist list, and a disc list are required;
// unknown keys are ignored.
func (a *Album) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: album definition must be a mapping", node.Line)
	}

	var (
		title   *text.Text
		artists []text.Text
		hasArt  bool
		year    *int
		genre   *text.Text
		discs   []Disc
		hasDsc  bool
	)

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		switch key.Value {
		case "title":
			t, err := decodeText(val)
			if err != nil {
				return fmt.Errorf("album title: %w", err)
			}
			title = &t
		case "artists":
			if hasArt {
				return fmt.Errorf("line %d: album definition has both %q and %q", key.Line, "artist", "artists")
			}
			list, err := decodeTextList(val)
			if err != nil {
				return fmt.Errorf("album artists: %w", err)
			}
			artists, hasArt = list, true
		case "artist":
			if hasArt {
				return fmt.Errorf("line %d: album definition has both %q and %q", key.Line, "artist", "artists")
			}
			t, err := decodeText(val)
			if err != nil {
				return fmt.Errorf("album artist: %w", err)
			}
			artists, hasArt = []text.Text{t}, true
		case "year":
			y, err := decodeYear(val)
			if err != nil {
				return fmt.Errorf("album year: %w", err)
			}
			year = y
		case "genre":
			t, err := decodeText(val)
			if err != nil {
				return fmt.Errorf("album genre: %w", err)
			}
			genre = &t
		case "discs":
			if hasDsc {
				return fmt.Errorf("line %d: album definition has both %q and %q", key.Line, "tracks", "discs")
			}
			if err := val.Decode(&discs); err != nil {
				return fmt.Errorf("album discs: %w", err)
			}
			hasDsc = true
		case "tracks":
			if hasDsc {
				return fmt.Errorf("line %d: album definition has both %q and %q", key.Line, "tracks", "discs")
			}
			var disc Disc
			if err := val.Decode(&disc); err != nil {
				return fmt.Errorf("album tracks: %w", err)
			}
			discs, hasDsc = []Disc{disc}, true
		}
	}

	switch {
	case title == nil:
		return fmt.Errorf("line %d: album definition missing %q", node.Line, "title")
	case !hasArt:
		return fmt.Errorf("line %d: album definition missing %q", node.Line, "artists")
	case !hasDsc:
		return fmt.Errorf("line %d: album definition missing %q", node.Line, "discs")
	}

	*a = Album{
		Title:   *title,
		Artists: artists,
		Year:    year,
		Genre:   genre,
		Discs:   discs,
	}
	return nil
}

// MarshalYAML encodes the album using the singular forms where they
// apply, matching the shape a person would write by hand.
func (a Album) MarshalYAML() (interface{}, error) {
	root := mappingNode()

	appendPair(root, "title", textNode(a.Title))

	if len(a.Artists) == 1 {
		appendPair(root, "artist", textNode(a.Artists[0]))
	} else {
		appendPair(root, "artists", textListNode(a.Artists))
	}

	if a.Year != nil {
		appendPair(root, "year", intNode(*a.Year))
	}
	if a.Genre != nil {
		appendPair(root, "genre", textNode(*a.Genre))
	}

	if len(a.Discs) == 1 {
		node, err := encodeNode(a.Discs[0])
		if err != nil {
			return nil, err
		}
		appendPair(root, "tracks", node)
	} else {
		node, err := encodeNode(a.Discs)
		if err != nil {
			return nil, err
		}
		appendPair(root, "discs", node)
	}

	return root, nil
}
