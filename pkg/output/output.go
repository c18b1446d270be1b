// Package output encodes rendered images and writes them to files or blob buckets.
package output

import (
	"context"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Format is an image encoding
type Format string

const (
	PNG  Format = "png"
	BMP  Format = "bmp"
	TIFF Format = "tiff"
)

// ErrUnknownFormat is returned for file extensions with no encoder
var ErrUnknownFormat = errors.New("output: unknown image format")

// FormatFromPath picks the encoding from a file extension
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return PNG, nil
	case ".bmp":
		return BMP, nil
	case ".tif", ".tiff":
		return TIFF, nil
	default:
		return "", errors.Wrapf(ErrUnknownFormat, "%q", ext)
	}
}

// ContentType returns the MIME type of the format
func (f Format) ContentType() string {
	switch f {
	case BMP:
		return "image/bmp"
	case TIFF:
		return "image/tiff"
	default:
		return "image/png"
	}
}

// Encode writes img to w in the given format
func Encode(w io.Writer, img image.Image, format Format) error {
	var err error
	switch format {
	case PNG:
		err = png.Encode(w, img)
	case BMP:
		err = bmp.Encode(w, img)
	case TIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return errors.Wrapf(ErrUnknownFormat, "%q", format)
	}
	return errors.Wrapf(err, "failed to encode %s", format)
}

// WriteFile encodes img into path, creating parent directories as needed.
// The format follows the file extension.
func WriteFile(path string, img image.Image) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(err, "failed to create output directory")
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "failed to create output file")
	}

	if err := Encode(file, img, format); err != nil {
		file.Close()
		return err
	}
	return errors.Wrap(file.Close(), "failed to close output file")
}

// WriteToBucket encodes img under key in the bucket at bucketURL, for
// example file:///tmp/renders or mem://. The format follows the key's extension.
func WriteToBucket(ctx context.Context, bucketURL, key string, img image.Image) error {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}
	defer bucket.Close()

	return WriteBlob(ctx, bucket, key, img)
}

// WriteBlob encodes img under key in an open bucket
func WriteBlob(ctx context.Context, bucket *blob.Bucket, key string, img image.Image) error {
	format, err := FormatFromPath(key)
	if err != nil {
		return err
	}

	w, err := bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: format.ContentType()})
	if err != nil {
		return errors.Wrapf(err, "failed to open %s for writing", key)
	}
	if err := Encode(w, img, format); err != nil {
		w.Close()
		return err
	}
	return errors.Wrapf(w.Close(), "failed to write %s", key)
}
