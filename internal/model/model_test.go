package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"maestro/internal/text"
)

func parseTrack(t *testing.T, src string) Track {
	t.Helper()
	var track Track
	require.NoError(t, yaml.Unmarshal([]byte(src), &track))
	return track
}

func TestTrackFromBareString(t *testing.T) {
	track := parseTrack(t, `"foo"`)
	assert.Equal(t, text.New("foo"), track.Title)
	assert.Nil(t, track.Artists)
}

func TestTrackSimpleTitle(t *testing.T) {
	track := parseTrack(t, "title: foo")
	assert.Equal(t, text.New("foo"), track.Title)
}

func TestTrackTitleWithASCIIOverride(t *testing.T) {
	track := parseTrack(t, `
title:
    text: foo
    ascii: bar
`)
	assert.Equal(t, text.WithASCII("foo", "bar"), track.Title)
}

func TestTrackSingularArtist(t *testing.T) {
	track := parseTrack(t, `
title: foo
artist: bar
`)
	assert.Equal(t, []text.Text{text.New("bar")}, track.Artists)
}

func TestTrackArtistList(t *testing.T) {
	track := parseTrack(t, `
title: foo
artists:
    - bar
    - text: baz
      ascii: quux
`)
	assert.Equal(t,
		[]text.Text{text.New("bar"), text.WithASCII("baz", "quux")},
		track.Artists)
}

func TestTrackOptionalFields(t *testing.T) {
	track := parseTrack(t, `
title: foo
year: 1990
genre: Music
comment: stuff
lyrics: words
filename: oddly named.mp3
`)
	require.NotNil(t, track.Year)
	assert.Equal(t, 1990, *track.Year)
	require.NotNil(t, track.Genre)
	assert.Equal(t, text.New("Music"), *track.Genre)
	require.NotNil(t, track.Comment)
	assert.Equal(t, text.New("stuff"), *track.Comment)
	require.NotNil(t, track.Lyrics)
	assert.Equal(t, text.New("words"), *track.Lyrics)
	assert.Equal(t, "oddly named.mp3", track.Filename)
}

func TestTrackRejectsBadShapes(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"missing title", "artist: foo"},
		{"numeric title", "title: 123"},
		{"list in singular artist", "title: foo\nartist:\n    - a\n    - b"},
		{"string in plural artists", "title: foo\nartists: bar"},
		{"string year", "title: foo\nyear: nineteen-ninety"},
		{"text mapping without text key", "title:\n    ascii: bar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var track Track
			if err := yaml.Unmarshal([]byte(tt.src), &track); err == nil {
				t.Fatalf("expected error for %q", tt.src)
			}
		})
	}
}

func TestDiscIsTransparentTrackList(t *testing.T) {
	var disc Disc
	require.NoError(t, yaml.Unmarshal([]byte(`
- foo
- title:
      text: bar
      ascii: baz
- title: quux
  artists:
      - a
      - b
`), &disc))

	require.Equal(t, 3, disc.NumTracks())
	assert.Equal(t, text.New("foo"), disc.Tracks[0].Title)
	assert.Equal(t, text.WithASCII("bar", "baz"), disc.Tracks[1].Title)
	assert.Equal(t, []text.Text{text.New("a"), text.New("b")}, disc.Tracks[2].Artists)
}

func TestAlbumSingularForms(t *testing.T) {
	album, err := Parse([]byte(`
title: foo
artist: bar
tracks:
    - a
    - b
`))
	require.NoError(t, err)

	assert.Equal(t, text.New("foo"), album.Title)
	assert.Equal(t, []text.Text{text.New("bar")}, album.Artists)
	require.Equal(t, 1, album.NumDiscs())
	assert.Equal(t, 2, album.Discs[0].NumTracks())
	assert.Equal(t, 2, album.NumTracks())
}

func TestAlbumFullForm(t *testing.T) {
	album, err := Parse([]byte(`
title: foo
artists:
    - bar
    - baz
year: 1973
genre: Rock
discs:
    - - one
      - two
    - - three
`))
	require.NoError(t, err)

	assert.Equal(t, []text.Text{text.New("bar"), text.New("baz")}, album.Artists)
	require.NotNil(t, album.Year)
	assert.Equal(t, 1973, *album.Year)
	require.NotNil(t, album.Genre)
	assert.Equal(t, text.New("Rock"), *album.Genre)
	require.Equal(t, 2, album.NumDiscs())
	assert.Equal(t, 3, album.NumTracks())
}

func TestAlbumMissingRequiredFields(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"missing title", "artist: a\ntracks:\n    - x"},
		{"missing artists", "title: t\ntracks:\n    - x"},
		{"missing discs", "title: t\nartist: a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.src)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestConflictingSingularAndPluralKeys(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			"album artist and artists",
			"title: t\nartist: a\nartists:\n    - b\ntracks:\n    - x",
			`album definition has both "artist" and "artists"`,
		},
		{
			"album tracks and discs",
			"title: t\nartist: a\ntracks:\n    - x\ndiscs:\n    - - y",
			`album definition has both "tracks" and "discs"`,
		},
		{
			"track artist and artists",
			"title: t\nartist: a\ntracks:\n    - title: x\n      artists:\n          - b\n      artist: c",
			`track definition has both "artist" and "artists"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestAlbumArtistJoinsList(t *testing.T) {
	album := &Album{
		Title:   text.New("foo"),
		Artists: []text.Text{text.New("a"), text.WithASCII("b", "c")},
	}
	artist := album.Artist()
	assert.Equal(t, "a, b", artist.Value())
	assert.Equal(t, "a, c", artist.ASCII())
}

func TestEncodeRoundTrip(t *testing.T) {
	year := 1999
	album := &Album{
		Title:   text.WithASCII("bók", "the book"),
		Artists: []text.Text{text.New("solo artist")},
		Year:    &year,
		Discs: []Disc{
			{Tracks: []Track{
				{Title: text.New("plain")},
				{Title: text.New("detailed"), Artists: []text.Text{text.New("guest")}},
			}},
		},
	}

	data, err := album.Encode()
	require.NoError(t, err)

	// Singular forms come back out.
	assert.Contains(t, string(data), "artist: solo artist")
	assert.Contains(t, string(data), "tracks:")
	assert.NotContains(t, string(data), "discs:")

	parsed, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, album, parsed)
}

func TestEncodePlainTrackIsBareString(t *testing.T) {
	album := &Album{
		Title:   text.New("t"),
		Artists: []text.Text{text.New("a")},
		Discs:   []Disc{{Tracks: []Track{{Title: text.New("just a title")}}}},
	}
	data, err := album.Encode()
	require.NoError(t, err)

	for _, line := range strings.Split(string(data), "\n") {
		if strings.Contains(line, "just a title") && strings.Contains(line, "title:") {
			t.Fatalf("plain track encoded as mapping: %q", line)
		}
	}
}
