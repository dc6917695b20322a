package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	id3v2 "github.com/bogem/id3v2/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maestro/internal/library"
	"maestro/internal/model"
	"maestro/internal/text"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// fakeAudio stands in for MP3 audio data, long enough that id3v2 sees
// an untagged file rather than a truncated header.
var fakeAudio = []byte("\xff\xfbfake mp3 audio data")

func writeTrack(t *testing.T, path, title, artist, album string, number int) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, fakeAudio, 0644))

	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	require.NoError(t, err)
	defer tag.Close()
	tag.SetTitle(title)
	tag.SetArtist(artist)
	tag.SetAlbum(album)
	tag.AddTextFrame("TRCK", id3v2.EncodingUTF8, strconv.Itoa(number))
	require.NoError(t, tag.Save())
}

func TestRootCommandListsSubcommands(t *testing.T) {
	cmd := newRootCommand()
	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	for _, want := range []string{"update", "export", "validate", "show", "clear", "rename", "generate"} {
		assert.Contains(t, names, want)
	}
}

func TestGenerateThenUpdateAndValidate(t *testing.T) {
	folder := t.TempDir()
	writeTrack(t, filepath.Join(folder, "b-side.mp3"), "B Side", "Band", "Singles", 2)
	writeTrack(t, filepath.Join(folder, "a-side.mp3"), "A Side", "Band", "Singles", 1)

	out, err := runCommand(t, "generate", "--folder", folder)
	require.NoError(t, err)
	assert.Contains(t, out, "album.yaml")

	definition, err := os.ReadFile(filepath.Join(folder, "extras", "album.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(definition), "title: Singles")
	assert.Contains(t, string(definition), "artist: Band")

	// A second generate refuses to clobber the definition.
	_, err = runCommand(t, "generate", "--folder", folder)
	assert.Error(t, err)

	_, err = runCommand(t, "update", "--folder", folder)
	require.NoError(t, err)

	out, err = runCommand(t, "validate", "--folder", folder)
	require.NoError(t, err)
	assert.Contains(t, out, "up to date")
}

func TestRenameCanonicalizesGeneratedAlbum(t *testing.T) {
	folder := t.TempDir()
	writeTrack(t, filepath.Join(folder, "loose", "second take.mp3"), "Second", "Band", "Record", 2)
	writeTrack(t, filepath.Join(folder, "first.mp3"), "First", "Band", "Record", 1)

	_, err := runCommand(t, "generate", "--folder", folder)
	require.NoError(t, err)

	// A dry run plans the moves without performing them.
	out, err := runCommand(t, "rename", "--folder", folder, "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, out, "->")
	_, err = os.Stat(filepath.Join(folder, "loose", "second take.mp3"))
	require.NoError(t, err)

	_, err = runCommand(t, "rename", "--folder", folder)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(folder, "1 - First.mp3"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(folder, "2 - Second.mp3"))
	assert.NoError(t, err)

	// The overrides are gone from the definition.
	definition, err := os.ReadFile(filepath.Join(folder, "extras", "album.yaml"))
	require.NoError(t, err)
	assert.NotContains(t, string(definition), "filename:")
}

func TestExportUnknownFormat(t *testing.T) {
	folder := t.TempDir()
	writeTrack(t, filepath.Join(folder, "one.mp3"), "One", "Band", "Record", 1)
	_, err := runCommand(t, "generate", "--folder", folder)
	require.NoError(t, err)

	_, err = runCommand(t, "export", "--folder", folder, "--format", "flac", "--output", t.TempDir())
	assert.Error(t, err)
}

func TestExportVWEndToEnd(t *testing.T) {
	folder := t.TempDir()
	writeTrack(t, filepath.Join(folder, "one.mp3"), "One", "Band", "Record", 1)
	writeTrack(t, filepath.Join(folder, "two.mp3"), "Two", "Band", "Record", 2)
	_, err := runCommand(t, "generate", "--folder", folder)
	require.NoError(t, err)

	dest := t.TempDir()
	_, err = runCommand(t, "export", "--folder", folder, "--format", "vw", "--output", dest)
	require.NoError(t, err)

	entries, err := os.ReadDir(dest)
	require.NoError(t, err)
	var names []string
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	assert.ElementsMatch(t, []string{"1 - One.mp3", "2 - Two.mp3"}, names)
}

func TestRenderAlbum(t *testing.T) {
	year := 1984
	raw := &model.Album{
		Title:   text.WithASCII("Göld", "Gold"),
		Artists: []text.Text{text.New("Band")},
		Year:    &year,
		Discs: []model.Disc{
			{Tracks: []model.Track{{Title: text.New("Opener")}}},
			{Tracks: []model.Track{{Title: text.New("Closer"), Filename: "alt/closer.mp3"}}},
		},
	}
	album := library.New(raw, t.TempDir(), library.DefaultTransforms())

	rendered := renderAlbum(album)
	assert.Contains(t, rendered, "Göld")
	assert.Contains(t, rendered, "(Gold)")
	assert.Contains(t, rendered, "Band")
	assert.Contains(t, rendered, "1984")
	assert.Contains(t, rendered, "Disc 1")
	assert.Contains(t, rendered, "Disc 2")
	assert.Contains(t, rendered, "Opener")
	assert.Contains(t, rendered, "at alt/closer.mp3")
	assert.Contains(t, rendered, "missing")
}
