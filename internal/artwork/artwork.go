// Package artwork loads, transforms, and caches album cover images.
//
// Covers are looked up by name in two directories: a cache directory
// holding already-transformed images, and a source directory holding
// originals. A cache hit is returned as-is; a source hit is decoded,
// transformed, written to the cache, and returned. A miss in both
// directories is not an error.
package artwork

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"

	"golang.org/x/image/draw"
)

// Format identifies the encoding of a cover image.
type Format uint8

const (
	PNG Format = iota
	JPEG
)

// Ext returns the file extension used when writing an image of this
// format to the cache, without the leading dot.
func (f Format) Ext() string {
	if f == PNG {
		return "png"
	}
	return "jpg"
}

// MIME returns the MIME type for the format, suitable for ID3 picture
// frames.
func (f Format) MIME() string {
	if f == PNG {
		return "image/png"
	}
	return "image/jpeg"
}

// Image is an encoded cover image together with its format.
type Image struct {
	Data   []byte
	Format Format
}

// A Transform converts a decoded source image into an encoded cover.
type Transform func(src image.Image) (Image, error)

// StandardTransform scales the source to fit within size x size,
// preserving aspect ratio, then encodes it as both PNG and JPEG (at the
// given quality) and keeps whichever is smaller. PNG wins ties since it
// is lossless.
func StandardTransform(size, quality int) Transform {
	return func(src image.Image) (Image, error) {
		scaled := scaleToFit(src, size)

		var pngBuf bytes.Buffer
		if err := png.Encode(&pngBuf, scaled); err != nil {
			return Image{}, err
		}

		var jpegBuf bytes.Buffer
		if err := jpeg.Encode(&jpegBuf, scaled, &jpeg.Options{Quality: quality}); err != nil {
			return Image{}, err
		}

		if jpegBuf.Len() < pngBuf.Len() {
			return Image{Data: jpegBuf.Bytes(), Format: JPEG}, nil
		}
		return Image{Data: pngBuf.Bytes(), Format: PNG}, nil
	}
}

// CarTransform scales the source to fit within size x size and always
// encodes it as JPEG. Car stereo displays are small and tend to only
// accept JPEG cover art.
func CarTransform(size, quality int) Transform {
	return func(src image.Image) (Image, error) {
		var buf bytes.Buffer
		if err := jpeg.Encode(&buf, scaleToFit(src, size), &jpeg.Options{Quality: quality}); err != nil {
			return Image{}, err
		}
		return Image{Data: buf.Bytes(), Format: JPEG}, nil
	}
}

// scaleToFit scales img to the largest dimensions that fit within
// size x size while preserving aspect ratio. Catmull-Rom is used for
// high-quality scaling.
func scaleToFit(img image.Image, size int) image.Image {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if width == size && height == size {
		return img
	}

	if width > height {
		height = height * size / width
		width = size
	} else {
		width = width * size / height
		height = size
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}
