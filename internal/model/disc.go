package model

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Disc is an ordered list of tracks. It carries no metadata of its own;
// a disc's number is its 1-based position in the album's disc list.
type Disc struct {
	Tracks []Track
}

// NumTracks returns the number of tracks on the disc.
func (d *Disc) NumTracks() int {
	return len(d.Tracks)
}

// UnmarshalYAML decodes a disc, which is written as a bare track
// sequence.
func (d *Disc) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: disc must be a track list", node.Line)
	}
	return node.Decode(&d.Tracks)
}

// MarshalYAML encodes the disc as its track sequence.
func (d Disc) MarshalYAML() (interface{}, error) {
	return d.Tracks, nil
}
