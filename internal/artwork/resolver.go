package artwork

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder registration
	_ "image/png"  // PNG decoder registration
	"os"
	"path/filepath"
)

// probeExtensions lists the extensions tried when looking a cover up
// by name, in priority order.
var probeExtensions = [...]string{"png", "jpg", "jpeg"}

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

// Resolve looks up the cover named name, first in cacheDir and then in
// imagesDir. A cached image is returned unchanged. An image found in
// imagesDir is decoded, passed through transform, written to cacheDir
// under name with the extension of the transformed format, and
// returned. If neither directory holds the cover, Resolve returns
// (nil, nil).
//
// A failure to write the cache entry after a successful transform is
// reported as an error rather than silently recomputing on every run.
func Resolve(imagesDir, cacheDir, name string, transform Transform) (*Image, error) {
	if path, ok := probe(cacheDir, name); ok {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading cached cover %s: %w", path, err)
		}
		return &Image{Data: data, Format: sniffFormat(data)}, nil
	}

	path, ok := probe(imagesDir, name)
	if !ok {
		return nil, nil
	}

	source, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening cover %s: %w", path, err)
	}
	defer source.Close()

	decoded, _, err := image.Decode(source)
	if err != nil {
		return nil, fmt.Errorf("decoding cover %s: %w", path, err)
	}

	img, err := transform(decoded)
	if err != nil {
		return nil, fmt.Errorf("transforming cover %s: %w", path, err)
	}

	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return nil, err
	}
	cachePath := filepath.Join(cacheDir, name+"."+img.Format.Ext())
	if err := os.WriteFile(cachePath, img.Data, 0644); err != nil {
		return nil, fmt.Errorf("caching cover %s: %w", cachePath, err)
	}

	return &img, nil
}

// probe returns the path of the first existing file named name with
// one of the probe extensions under dir.
func probe(dir, name string) (string, bool) {
	for _, ext := range probeExtensions {
		path := filepath.Join(dir, name+"."+ext)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

// sniffFormat detects the format of encoded image data. Anything that
// is not PNG is treated as JPEG, matching the formats Resolve writes.
func sniffFormat(data []byte) Format {
	if bytes.HasPrefix(data, pngMagic) {
		return PNG
	}
	return JPEG
}
