// Package model defines the raw album definition tree and its YAML
// representation.
//
// An album definition lives in extras/album.yaml under the album folder
// and describes the album exactly once: titles, artists, year, genre,
// and the ordered discs and tracks. Disc and track numbers are never
// written down; they follow from position in the definition, so
// inserting a track renumbers everything after it automatically.
//
// # Definition shapes
//
// Every text field accepts either a bare string or a mapping with a
// "text" key and an optional "ascii" key that overrides the automatic
// transliteration:
//
//	title: Nevermind
//	genre:
//	    text: Métal
//	    ascii: Metal
//
// Artist lists and disc lists accept a singular form: an "artist" key
// is a one-element "artists" list, and a top-level "tracks" key is a
// one-disc "discs" list.
//
// Parsing is all-or-nothing: a malformed definition yields an error and
// no partially constructed album.
package model
