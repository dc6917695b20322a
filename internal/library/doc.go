// Package library attaches raw album definitions to their location on
// disk and derives everything the rest of the program consumes:
// positional disc and track numbers, inherited attributes, canonical
// filenames, and lazily resolved cover art.
//
// The package wraps model entities in view types. A view pairs an
// entity with its 1-based position in the owning sequence, so numbers
// are never stored and renumber automatically when a definition is
// edited. Views are built once per Album and shared, which lets a
// disc-level cover resolve a single time no matter how many of its
// tracks ask for it.
//
// Attribute lookups fall back upward: a track without its own artists,
// year, or genre inherits the album's. Cover art falls back the same
// way, Track to Disc to Album, with each level probing a cache
// directory before the source images directory.
//
// Directory layout under the album root:
//
//	extras/album.yaml           definition
//	extras/images/              source cover art
//	extras/.cache/covers/       transformed covers
//	extras/.cache/covers-vw/    car-safe covers
package library
