// Package export copies an album's tracks into an external directory
// tree, either mirroring the canonical layout or flattened for car
// stereos.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"maestro/internal/library"
	"maestro/internal/tags"
)

// Full copies the track's source file into destRoot under its
// canonical disc folder and filename. Tags are copied as-is.
func Full(track *library.Track, destRoot string) error {
	destDir := destRoot
	if folder := track.Disc().Folder(); folder != "" {
		destDir = filepath.Join(destRoot, folder)
	}
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return err
	}
	return copyFile(track.Path(), filepath.Join(destDir, track.CanonicalFilename()))
}

// VW copies the track flat into destRoot under its car-safe filename
// and rewrites the copy's tag with ASCII forms and the small cover.
// The source file is never modified.
func VW(track *library.Track, destRoot string) error {
	if err := os.MkdirAll(destRoot, 0755); err != nil {
		return err
	}
	dest := filepath.Join(destRoot, track.FilenameVW())
	if err := copyFile(track.Path(), dest); err != nil {
		return err
	}
	return tags.WriteVW(track, dest)
}

// Rename moves the track's source file to its canonical location,
// reporting whether a move happened. A track already in place is left
// alone.
func Rename(track *library.Track) (bool, error) {
	source := track.Path()
	dest := track.CanonicalPath()
	if source == dest {
		return false, nil
	}
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return false, err
	}
	if err := os.Rename(source, dest); err != nil {
		return false, err
	}
	return true, nil
}

func copyFile(src, dst string) error {
	source, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening %s: %w", src, err)
	}
	defer source.Close()

	dest, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(dest, source); err != nil {
		dest.Close()
		return fmt.Errorf("copying %s: %w", src, err)
	}
	return dest.Close()
}
